package picoplaca

import (
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestIsPeakHour(t *testing.T) {
	tests := []struct {
		at   ClockTime
		want bool
	}{
		{ClockTime{Hour: 0, Minute: 0}, false},
		{ClockTime{Hour: 6, Minute: 59}, false},
		{ClockTime{Hour: 7, Minute: 0}, true},
		{ClockTime{Hour: 8, Minute: 15}, true},
		{ClockTime{Hour: 9, Minute: 30}, true},
		{ClockTime{Hour: 9, Minute: 31}, false},
		{ClockTime{Hour: 12, Minute: 0}, false},
		{ClockTime{Hour: 15, Minute: 59}, false},
		{ClockTime{Hour: 16, Minute: 0}, true},
		{ClockTime{Hour: 19, Minute: 30}, true},
		{ClockTime{Hour: 19, Minute: 31}, false},
		{ClockTime{Hour: 23, Minute: 59}, false},
	}
	for _, tt := range tests {
		t.Run(tt.at.String(), func(t *testing.T) {
			is := is.New(t)
			is.Equal(IsPeakHour(tt.at), tt.want)
		})
	}
}

func TestRestrictedDigits(t *testing.T) {
	is := is.New(t)
	seen := make(map[int]time.Weekday)
	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		for _, digit := range RestrictedDigits(weekday) {
			_, duplicate := seen[digit]
			is.True(!duplicate) // each digit is restricted on a single weekday
			seen[digit] = weekday
			is.True(IsRestrictedDigit(weekday, digit))
		}
	}
	is.Equal(len(seen), 10)
	is.Equal(len(RestrictedDigits(time.Saturday)), 0)
	is.Equal(len(RestrictedDigits(time.Sunday)), 0)
	is.Equal(seen[7], time.Thursday)
	is.Equal(seen[0], time.Friday)
	is.True(!IsRestrictedDigit(time.Tuesday, 7))
}

func TestWeekdayName(t *testing.T) {
	is := is.New(t)
	is.Equal(WeekdayName(time.Monday), "Lunes")
	is.Equal(WeekdayName(time.Wednesday), "Miércoles")
	is.Equal(WeekdayName(time.Saturday), "Sábado")
}

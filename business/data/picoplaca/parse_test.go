package picoplaca

import (
	"errors"
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestParsePlate(t *testing.T) {
	tests := []struct {
		plate         string
		wantErr       bool
		wantPrefix    string
		wantLastDigit int
		wantExempt    bool
	}{
		{plate: "PBX-1234", wantPrefix: "PBX", wantLastDigit: 4},
		{plate: "PAX-1234", wantPrefix: "PAX", wantLastDigit: 4, wantExempt: true},
		{plate: "GUA-0010", wantPrefix: "GUA", wantLastDigit: 0, wantExempt: true},
		{plate: "PZB-7777", wantPrefix: "PZB", wantLastDigit: 7, wantExempt: true},
		{plate: "PEA-1111", wantPrefix: "PEA", wantLastDigit: 1, wantExempt: true},
		{plate: "PXC-2222", wantPrefix: "PXC", wantLastDigit: 2, wantExempt: true},
		{plate: "PMC-3333", wantPrefix: "PMC", wantLastDigit: 3, wantExempt: true},
		{plate: "AB-1239", wantPrefix: "AB", wantLastDigit: 9, wantExempt: true},
		{plate: "AB-12", wantErr: true},
		{plate: "abc-1234", wantErr: true},
		{plate: "ABCD-1234", wantErr: true},
		{plate: "ABC1234", wantErr: true},
		{plate: "ABC-12345", wantErr: true},
		{plate: "A-1234", wantErr: true},
		{plate: " ABC-1234", wantErr: true},
		{plate: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.plate, func(t *testing.T) {
			is := is.New(t)
			got, err := ParsePlate(tt.plate)
			if tt.wantErr {
				is.True(errors.Is(err, ErrInvalidPlateFormat))
				return
			}
			is.NoErr(err)
			is.Equal(got.String(), tt.plate)
			is.Equal(got.Prefix(), tt.wantPrefix)
			is.Equal(got.LastDigit(), tt.wantLastDigit)
			is.Equal(got.IsExempt(), tt.wantExempt)
		})
	}
}

func TestParseCalendarDate(t *testing.T) {
	tests := []struct {
		date    string
		wantErr bool
		want    CalendarDate
	}{
		{date: "2021-04-02", want: CalendarDate{Year: 2021, Month: time.April, Day: 2}},
		{date: "2024-02-29", want: CalendarDate{Year: 2024, Month: time.February, Day: 29}},
		{date: "2023-02-29", wantErr: true},
		{date: "2021-13-01", wantErr: true},
		{date: "2021-4-02", wantErr: true},
		{date: "2021-04-2", wantErr: true},
		{date: "2021/04/02", wantErr: true},
		{date: "02-04-2021", wantErr: true},
		{date: "2021-04-02 ", wantErr: true},
		{date: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			is := is.New(t)
			got, err := ParseCalendarDate(tt.date)
			if tt.wantErr {
				is.True(errors.Is(err, ErrInvalidDateFormat))
				return
			}
			is.NoErr(err)
			is.Equal(got, tt.want)
		})
	}
}

func TestCalendarDate_roundTrip(t *testing.T) {
	is := is.New(t)
	start := time.Date(2019, time.December, 1, 0, 0, 0, 0, time.UTC)
	for day := 0; day < 800; day++ {
		date := MakeCalendarDate(start.AddDate(0, 0, day))
		parsed, err := ParseCalendarDate(date.String())
		is.NoErr(err)
		is.Equal(parsed, date)
	}
}

func TestCalendarDate_Weekday(t *testing.T) {
	is := is.New(t)
	is.Equal(CalendarDate{Year: 2021, Month: time.June, Day: 17}.Weekday(), time.Thursday)
	is.Equal(CalendarDate{Year: 2024, Month: time.February, Day: 29}.Weekday(), time.Thursday)
}

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		time    string
		wantErr bool
		want    ClockTime
	}{
		{time: "00:00", want: ClockTime{Hour: 0, Minute: 0}},
		{time: "08:35", want: ClockTime{Hour: 8, Minute: 35}},
		{time: "19:30", want: ClockTime{Hour: 19, Minute: 30}},
		{time: "23:59", want: ClockTime{Hour: 23, Minute: 59}},
		{time: "24:00", wantErr: true},
		{time: "12:60", wantErr: true},
		{time: "8:35", wantErr: true},
		{time: "08:", wantErr: true},
		{time: "08:35:00", wantErr: true},
		{time: "0835", wantErr: true},
		{time: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.time, func(t *testing.T) {
			is := is.New(t)
			got, err := ParseClockTime(tt.time)
			if tt.wantErr {
				is.True(errors.Is(err, ErrInvalidTimeFormat))
				return
			}
			is.NoErr(err)
			is.Equal(got, tt.want)
			is.Equal(got.String(), tt.time)
		})
	}
}

package picoplaca

import (
	"fmt"
	"time"

	"github.com/OpenTransitTools/picoyplaca/business/data/holiday"
)

// CalendarDate is a validated year, month and day
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseCalendarDate validates s as an ISO 8601 YYYY-MM-DD date that exists on the calendar
func ParseCalendarDate(s string) (CalendarDate, error) {
	if len(s) != len(holiday.DateLayout) {
		return CalendarDate{}, fmt.Errorf("invalid date %q: %w", s, ErrInvalidDateFormat)
	}
	t, err := time.Parse(holiday.DateLayout, s)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("invalid date %q: %w", s, ErrInvalidDateFormat)
	}
	return MakeCalendarDate(t), nil
}

// MakeCalendarDate takes the calendar date of t in its own location
func MakeCalendarDate(t time.Time) CalendarDate {
	year, month, day := t.Date()
	return CalendarDate{Year: year, Month: month, Day: day}
}

// Time returns midnight UTC at the start of the date
func (d CalendarDate) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the day of the week the date falls on
func (d CalendarDate) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// String formats the date as YYYY-MM-DD
func (d CalendarDate) String() string {
	return d.Time().Format(holiday.DateLayout)
}

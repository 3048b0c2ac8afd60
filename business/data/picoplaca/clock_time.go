package picoplaca

import (
	"fmt"
	"regexp"
	"strconv"
)

var clockTimePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// ClockTime is a validated 24 hour time of day
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClockTime validates s as HH:MM between 00:00 and 23:59
func ParseClockTime(s string) (ClockTime, error) {
	matches := clockTimePattern.FindStringSubmatch(s)
	if matches == nil {
		return ClockTime{}, fmt.Errorf("invalid time %q: %w", s, ErrInvalidTimeFormat)
	}
	hour, _ := strconv.Atoi(matches[1])
	minute, _ := strconv.Atoi(matches[2])
	return ClockTime{Hour: hour, Minute: minute}, nil
}

// minuteOfDay returns minutes since midnight
func (c ClockTime) minuteOfDay() int {
	return c.Hour*60 + c.Minute
}

// String formats the time as HH:MM
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

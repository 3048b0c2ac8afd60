package picoplaca

import "time"

// peakWindow is an inclusive range of minutes of the day during which restricted plates may not circulate
type peakWindow struct {
	from ClockTime
	to   ClockTime
}

func (w peakWindow) contains(at ClockTime) bool {
	m := at.minuteOfDay()
	return m >= w.from.minuteOfDay() && m <= w.to.minuteOfDay()
}

// peakWindows are the morning and evening restricted periods of Ordenanza Metropolitana N° 0305
var peakWindows = []peakWindow{
	{from: ClockTime{Hour: 7, Minute: 0}, to: ClockTime{Hour: 9, Minute: 30}},
	{from: ClockTime{Hour: 16, Minute: 0}, to: ClockTime{Hour: 19, Minute: 30}},
}

// restrictedDigits holds the last plate digits that may not circulate during peak hours on each weekday
var restrictedDigits = map[time.Weekday][]int{
	time.Monday:    {1, 2},
	time.Tuesday:   {3, 4},
	time.Wednesday: {5, 6},
	time.Thursday:  {7, 8},
	time.Friday:    {9, 0},
	time.Saturday:  {},
	time.Sunday:    {},
}

// weekdayNames are the Spanish names of the days of the week
var weekdayNames = map[time.Weekday]string{
	time.Monday:    "Lunes",
	time.Tuesday:   "Martes",
	time.Wednesday: "Miércoles",
	time.Thursday:  "Jueves",
	time.Friday:    "Viernes",
	time.Saturday:  "Sábado",
	time.Sunday:    "Domingo",
}

// IsPeakHour returns true if at falls within either restricted window, both ends included
func IsPeakHour(at ClockTime) bool {
	for _, w := range peakWindows {
		if w.contains(at) {
			return true
		}
	}
	return false
}

// RestrictedDigits returns the last digits restricted on weekday. The result must not be modified.
func RestrictedDigits(weekday time.Weekday) []int {
	return restrictedDigits[weekday]
}

// IsRestrictedDigit returns true if plates ending in digit are restricted on weekday
func IsRestrictedDigit(weekday time.Weekday, digit int) bool {
	for _, d := range restrictedDigits[weekday] {
		if d == digit {
			return true
		}
	}
	return false
}

// WeekdayName returns the Spanish name of weekday
func WeekdayName(weekday time.Weekday) string {
	return weekdayNames[weekday]
}

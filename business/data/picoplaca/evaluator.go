// Package picoplaca decides whether a vehicle may circulate in Quito under the Pico y Placa restriction
// (Ordenanza Metropolitana N° 0305).
package picoplaca

import (
	"context"
	"fmt"
	"time"

	"github.com/OpenTransitTools/picoyplaca/business/data/holiday"
)

// Reason names the rule that decided a Verdict
type Reason string

const (
	// ReasonHoliday the date is a public holiday, the restriction is suspended
	ReasonHoliday Reason = "holiday"
	// ReasonExempt the plate belongs to a vehicle class excluded from the restriction
	ReasonExempt Reason = "exempt"
	// ReasonOffPeak the time is outside both peak windows
	ReasonOffPeak Reason = "off_peak"
	// ReasonUnrestrictedDigit the plate's last digit is not restricted on that weekday
	ReasonUnrestrictedDigit Reason = "unrestricted_digit"
	// ReasonRestricted the vehicle may not circulate
	ReasonRestricted Reason = "restricted"
)

// holidayNamer is implemented by lookups able to name the holiday on a date, such as holiday.Calendar
type holidayNamer interface {
	HolidayName(date time.Time) (string, bool)
}

// Evaluator applies the Pico y Placa rules, consulting holidays to suspend them
type Evaluator struct {
	holidays holiday.Lookup
	now      func() time.Time
}

// MakeEvaluator builds Evaluator using holidays to decide which dates are public holidays
func MakeEvaluator(holidays holiday.Lookup) *Evaluator {
	return &Evaluator{
		holidays: holidays,
		now:      time.Now,
	}
}

// Check validates plate, date and at before evaluating them. No holiday lookup is made on invalid input.
func (e *Evaluator) Check(ctx context.Context, plate string, date string, at string) (*Verdict, error) {
	p, err := ParsePlate(plate)
	if err != nil {
		return nil, err
	}
	d, err := ParseCalendarDate(date)
	if err != nil {
		return nil, err
	}
	c, err := ParseClockTime(at)
	if err != nil {
		return nil, err
	}
	return e.Evaluate(ctx, p, d, c)
}

// Predict returns true if the vehicle with plate can be on the road on date at the given time
func (e *Evaluator) Predict(ctx context.Context, plate Plate, date CalendarDate, at ClockTime) (bool, error) {
	verdict, err := e.Evaluate(ctx, plate, date, at)
	if err != nil {
		return false, err
	}
	return verdict.Permitted, nil
}

// Evaluate applies the rules in order, the first one that permits circulation decides:
// holidays, exempt plates, off peak times and finally the weekday's restricted digits.
func (e *Evaluator) Evaluate(ctx context.Context, plate Plate, date CalendarDate, at ClockTime) (*Verdict, error) {
	verdict := &Verdict{
		Plate:       plate.String(),
		Date:        date.String(),
		Time:        at.String(),
		Weekday:     WeekdayName(date.Weekday()),
		EvaluatedAt: e.now(),
	}

	isHoliday, err := e.holidays.IsHoliday(ctx, date.Time())
	if err != nil {
		return nil, fmt.Errorf("checking holiday on %s: %w", date, err)
	}
	if isHoliday {
		if namer, ok := e.holidays.(holidayNamer); ok {
			verdict.HolidayName, _ = namer.HolidayName(date.Time())
		}
		return verdict.decide(true, ReasonHoliday), nil
	}

	if plate.IsExempt() {
		return verdict.decide(true, ReasonExempt), nil
	}

	if !IsPeakHour(at) {
		return verdict.decide(true, ReasonOffPeak), nil
	}

	if !IsRestrictedDigit(date.Weekday(), plate.LastDigit()) {
		return verdict.decide(true, ReasonUnrestrictedDigit), nil
	}

	return verdict.decide(false, ReasonRestricted), nil
}

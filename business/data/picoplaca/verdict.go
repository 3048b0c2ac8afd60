package picoplaca

import (
	"fmt"
	"time"
)

// Verdict is the outcome of evaluating a plate on a date and time
type Verdict struct {
	Id          int64     `json:"-" db:"id"`
	Plate       string    `json:"plate" db:"plate"`
	Date        string    `json:"date" db:"travel_date"`
	Time        string    `json:"time" db:"travel_time"`
	Weekday     string    `json:"weekday" db:"weekday"`
	Permitted   bool      `json:"permitted" db:"permitted"`
	Reason      Reason    `json:"reason" db:"reason"`
	HolidayName string    `json:"holiday_name,omitempty" db:"holiday_name"`
	EvaluatedAt time.Time `json:"evaluated_at" db:"evaluated_at"`
}

func (v *Verdict) decide(permitted bool, reason Reason) *Verdict {
	v.Permitted = permitted
	v.Reason = reason
	return v
}

// Message describes the verdict in a sentence
func (v *Verdict) Message() string {
	can := "CAN"
	if !v.Permitted {
		can = "CANNOT"
	}
	return fmt.Sprintf("The vehicle with plate %s %s be on the road on %s at %s.", v.Plate, can, v.Date, v.Time)
}

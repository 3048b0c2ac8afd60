// Package holiday computes Ecuadorian public holidays and answers whether a date is one,
// either locally or through a remote holiday service.
package holiday

import (
	"context"
	"sort"
	"time"

	"github.com/rickar/cal/v2"
)

// DateLayout is the ISO 8601 form holidays are keyed by
const DateLayout = "2006-01-02"

// Province is an ISO 3166-2 subdivision code of Ecuador
type Province string

// ProvincePichincha is the province containing Quito
const ProvincePichincha Province = "EC-P"

// Lookup answers whether a date is a public holiday
type Lookup interface {
	IsHoliday(ctx context.Context, date time.Time) (bool, error)
}

// Holidays maps the observed date (formatted with DateLayout) to the holiday's name
type Holidays map[string]string

// add records name on date unless another holiday already holds that date
func (h Holidays) add(date time.Time, name string) {
	key := date.Format(DateLayout)
	if _, present := h[key]; present {
		return
	}
	h[key] = name
}

// Dates returns all holiday dates in ascending order
func (h Holidays) Dates() []string {
	dates := make([]string, 0, len(h))
	for date := range h {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// Calendar computes the holidays observed nationally and within its province.
type Calendar struct {
	province    Province
	definitions []*cal.Holiday
}

// MakeCalendar builds Calendar for province. Provinces without their own holidays get only national ones.
func MakeCalendar(province Province) *Calendar {
	definitions := nationalHolidays()
	definitions = append(definitions, provincialHolidays(province)...)
	return &Calendar{
		province:    province,
		definitions: definitions,
	}
}

// Province returns the province the Calendar was built for
func (c *Calendar) Province() Province {
	return c.province
}

// HolidaysForYear returns every holiday observed in year, on its observed date.
// The map is rebuilt on every call.
func (c *Calendar) HolidaysForYear(year int) Holidays {
	holidays := make(Holidays)
	for _, definition := range c.definitions {
		_, observed := definition.Calc(year)
		if observed.IsZero() {
			continue
		}
		holidays.add(observed, definition.Name)
	}
	return holidays
}

// HolidayName returns the name of the holiday observed on date, if there is one
func (c *Calendar) HolidayName(date time.Time) (string, bool) {
	name, ok := c.HolidaysForYear(date.Year())[date.Format(DateLayout)]
	return name, ok
}

// IsHoliday implements Lookup. Local computation never fails.
func (c *Calendar) IsHoliday(_ context.Context, date time.Time) (bool, error) {
	_, ok := c.HolidayName(date)
	return ok, nil
}

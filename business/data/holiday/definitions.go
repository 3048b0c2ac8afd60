package holiday

import (
	"time"

	"github.com/rickar/cal/v2"
)

// lastUnshiftedYear is the final year national holidays were always observed on their nominal date.
// Ley 858 (reform of LOSEP, R.O. 906) introduced the observed-day rules from 2016 on.
const lastUnshiftedYear = 2015

// movableObserved moves a holiday falling on Saturday or Tuesday back one day, Sunday forward to Monday,
// and Wednesday or Thursday forward to the Friday of the same week.
var movableObserved = []cal.AltDay{
	{Day: time.Saturday, Offset: -1},
	{Day: time.Tuesday, Offset: -1},
	{Day: time.Sunday, Offset: 1},
	{Day: time.Wednesday, Offset: 2},
	{Day: time.Thursday, Offset: 1},
}

// Day of the Dead (Nov 2) and Independence of Cuenca (Nov 3) are adjacent and shift as a pair.
// Each table is keyed on the weekday of its own nominal date, so the Day of the Dead entries are
// the pair rules read one weekday earlier than those for Cuenca.
var (
	dayOfTheDeadObserved = []cal.AltDay{
		{Day: time.Saturday, Offset: -1}, // Nov 3 on Sunday, pair moves to Fri Nov 1 and Mon Nov 4
		{Day: time.Tuesday, Offset: 2},   // Nov 3 on Wednesday
		{Day: time.Sunday, Offset: 2},    // Nov 3 on Monday
	}
	cuencaObserved = []cal.AltDay{
		{Day: time.Sunday, Offset: 1},
		{Day: time.Tuesday, Offset: -2},
		{Day: time.Friday, Offset: -2},
	}
)

var (
	NewYear = &cal.Holiday{
		Name:  "Año Nuevo [New Year's Day]",
		Month: time.January,
		Day:   1,
		Func:  cal.CalcDayOfMonth,
	}

	Christmas = &cal.Holiday{
		Name:  "Navidad [Christmas]",
		Month: time.December,
		Day:   25,
		Func:  cal.CalcDayOfMonth,
	}

	GoodFriday = &cal.Holiday{
		Name:   "Viernes Santo [Good Friday]",
		Offset: -2,
		Func:   cal.CalcEasterOffset,
	}

	EasterSunday = &cal.Holiday{
		Name:   "Día de Pascua [Easter Sunday]",
		Offset: 0,
		Func:   cal.CalcEasterOffset,
	}

	CarnivalMonday = &cal.Holiday{
		Name:   "Lunes de Carnaval [Carnival Monday]",
		Offset: -48,
		Func:   cal.CalcEasterOffset,
	}

	CarnivalTuesday = &cal.Holiday{
		Name:   "Martes de Carnaval [Carnival Tuesday]",
		Offset: -47,
		Func:   cal.CalcEasterOffset,
	}

	LaborDay              = movable("Día del Trabajo [Labor Day]", time.May, 1)
	PichinchaBattle       = movable("Batalla de Pichincha [Battle of Pichincha]", time.May, 24)
	FirstCry              = movable("Primer Grito de Independencia [First Cry of Independence]", time.August, 10)
	GuayaquilIndependence = movable("Independencia de Guayaquil [Independence of Guayaquil]", time.October, 9)

	DayOfTheDead = &cal.Holiday{
		Name:     "Día de los Difuntos [Day of the Dead]",
		Month:    time.November,
		Day:      2,
		Observed: dayOfTheDeadObserved,
		Func:     cal.CalcDayOfMonth,
	}

	CuencaIndependence = &cal.Holiday{
		Name:     "Independencia de Cuenca [Independence of Cuenca]",
		Month:    time.November,
		Day:      3,
		Observed: cuencaObserved,
		Func:     cal.CalcDayOfMonth,
	}

	// QuitoFoundation is only observed in the province of Pichincha
	QuitoFoundation = movable("Fundación de Quito [Foundation of Quito]", time.December, 6)
)

// movableHoliday holds the two definitions of a holiday subject to the observed-day rules:
// one observed on its nominal date up to lastUnshiftedYear, one shifted afterwards.
type movableHoliday struct {
	unshifted *cal.Holiday
	shifted   *cal.Holiday
}

// movable builds movableHoliday for a holiday on a fixed month and day
func movable(name string, month time.Month, day int) movableHoliday {
	return movableHoliday{
		unshifted: &cal.Holiday{
			Name:    name,
			Month:   month,
			Day:     day,
			EndYear: lastUnshiftedYear,
			Func:    cal.CalcDayOfMonth,
		},
		shifted: &cal.Holiday{
			Name:      name,
			Month:     month,
			Day:       day,
			StartYear: lastUnshiftedYear + 1,
			Observed:  movableObserved,
			Func:      cal.CalcDayOfMonth,
		},
	}
}

// definitions returns both halves of a movableHoliday, only one of which applies to any given year.
func (m movableHoliday) definitions() []*cal.Holiday {
	return []*cal.Holiday{m.unshifted, m.shifted}
}

// nationalHolidays lists every national holiday in declaration order.
// The order decides which name is kept when two holidays are observed on the same date.
func nationalHolidays() []*cal.Holiday {
	holidays := []*cal.Holiday{
		NewYear,
		Christmas,
		GoodFriday,
		EasterSunday,
		CarnivalMonday,
		CarnivalTuesday,
	}
	for _, m := range []movableHoliday{LaborDay, PichinchaBattle, FirstCry, GuayaquilIndependence} {
		holidays = append(holidays, m.definitions()...)
	}
	return append(holidays, DayOfTheDead, CuencaIndependence)
}

// provincialHolidays lists the holidays observed only within province
func provincialHolidays(province Province) []*cal.Holiday {
	switch province {
	case ProvincePichincha:
		return QuitoFoundation.definitions()
	default:
		return nil
	}
}

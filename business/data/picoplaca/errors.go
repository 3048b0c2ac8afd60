package picoplaca

import "errors"

var (
	// ErrInvalidPlateFormat is returned for plates not formatted as XX-YYYY or XXX-YYYY
	ErrInvalidPlateFormat = errors.New("the plate must be formatted as XX-YYYY or XXX-YYYY, " +
		"where X is a capital letter and Y is a digit")

	// ErrInvalidDateFormat is returned for dates not formatted as YYYY-MM-DD or not on the calendar
	ErrInvalidDateFormat = errors.New("the date must be formatted as YYYY-MM-DD (e.g., 2021-04-02)")

	// ErrInvalidTimeFormat is returned for times not formatted as 24 hour HH:MM
	ErrInvalidTimeFormat = errors.New("the time must be formatted as HH:MM (e.g., 08:31, 14:22, 00:01)")
)

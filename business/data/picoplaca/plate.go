package picoplaca

import (
	"fmt"
	"regexp"
	"strings"
)

var platePattern = regexp.MustCompile(`^[A-Z]{2,3}-[0-9]{4}$`)

// exemptClassLetters mark, in the second letter of a plate, vehicle classes not subject to the restriction
// (government, municipal, official and similar fleets)
const exemptClassLetters = "AUZEXM"

// Plate is a validated Ecuadorian license plate, two or three capital letters, a dash and four digits
type Plate struct {
	value string
}

// ParsePlate validates s as a Plate
func ParsePlate(s string) (Plate, error) {
	if !platePattern.MatchString(s) {
		return Plate{}, fmt.Errorf("invalid plate %q: %w", s, ErrInvalidPlateFormat)
	}
	return Plate{value: s}, nil
}

func (p Plate) String() string {
	return p.value
}

// Prefix returns the letters before the dash
func (p Plate) Prefix() string {
	return p.value[:strings.IndexByte(p.value, '-')]
}

// LastDigit returns the final digit of the plate
func (p Plate) LastDigit() int {
	return int(p.value[len(p.value)-1] - '0')
}

// IsExempt returns true for plates with a two letter prefix or whose second letter is an exempt class
func (p Plate) IsExempt() bool {
	return len(p.Prefix()) == 2 || strings.IndexByte(exemptClassLetters, p.value[1]) >= 0
}

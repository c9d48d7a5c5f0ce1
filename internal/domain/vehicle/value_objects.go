package vehicle

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidPlate = errors.New("invalid plate number")
	ErrInvalidType  = errors.New("invalid vehicle type")
)

var (
	plateRegex  = regexp.MustCompile(`^[A-Z0-9]+$`)
	letterRegex = regexp.MustCompile(`[A-Z]`)
	digitRegex  = regexp.MustCompile(`[0-9]`)
)

// Plate is an uppercase alphanumeric plate number containing at least one
// letter and one digit.
type Plate struct {
	value string
}

func NewPlate(s string) (Plate, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !plateRegex.MatchString(s) || !letterRegex.MatchString(s) || !digitRegex.MatchString(s) {
		return Plate{}, ErrInvalidPlate
	}
	return Plate{value: s}, nil
}

func (p Plate) Value() string {
	return p.value
}

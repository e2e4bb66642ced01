package bidi

import (
	"fmt"
	"strings"
)

// Direction is the directionality of a piece of text or of a context.
type Direction int8

// Directions are ordered such that the sign of a Direction tells its
// orientation.
const (
	RTL     Direction = -1
	Unknown Direction = 0
	LTR     Direction = 1
)

func (d Direction) String() string {
	switch {
	case d > 0:
		return "ltr"
	case d < 0:
		return "rtl"
	}
	return "unknown"
}

// Attr returns the value of an HTML dir attribute for d, i.e. "ltr" or
// "rtl". For Unknown it returns the empty string.
func (d Direction) Attr() string {
	if d == Unknown {
		return ""
	}
	return d.String()
}

// ToDir converts a numeric directionality to a Direction:
// positive = LTR, negative = RTL, 0 = unknown.
func ToDir(n int) Direction {
	if n > 0 {
		return LTR
	} else if n < 0 {
		return RTL
	}
	return Unknown
}

// ToDirBool converts a flag 'is RTL' to a Direction:
// true = RTL, false = LTR.
func ToDirBool(isRTL bool) Direction {
	if isRTL {
		return RTL
	}
	return LTR
}

// ParseDirection parses the name of a direction, as it may appear in a
// configuration file. Names are case-insensitive; "auto" is a synonym for
// "unknown".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ltr":
		return LTR, nil
	case "rtl":
		return RTL, nil
	case "unknown", "auto", "":
		return Unknown, nil
	}
	return Unknown, fmt.Errorf("not a direction: %q", s)
}

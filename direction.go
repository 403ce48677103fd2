package bidifmt

import (
	"errors"
	"fmt"
	"strings"
)

// Direction is the writing direction of a piece of text, or of the context
// surrounding it. The numeric encoding is part of the contract: left-to-right
// is positive, right-to-left is negative, and neutral is zero. Clients may
// rely on sign-based comparisons.
type Direction int8

// The three directions. There is no separate value for an unknown context
// direction: a context which is neither left-to-right nor right-to-left
// carries no directional information, exactly like a neutral string. Unknown
// is therefore an alias for Neutral, declared for readable client code.
const (
	RightToLeft Direction = -1
	Neutral     Direction = 0
	LeftToRight Direction = 1
)

// Unknown context direction; an alias for Neutral (see there).
const Unknown = Neutral

func (d Direction) String() string {
	switch {
	case d > 0:
		return "LTR"
	case d < 0:
		return "RTL"
	}
	return "neutral"
}

// FromSign converts a signed number to a Direction: positive values map to
// LeftToRight, negative values to RightToLeft, zero to Neutral. This makes
// any numeric direction encoding acceptable as input, including UAX#9
// embedding levels (even = LTR, given as +1).
func FromSign(n int) Direction {
	switch {
	case n > 0:
		return LeftToRight
	case n < 0:
		return RightToLeft
	}
	return Neutral
}

// FromBool converts a "is this right-to-left?" flag to a Direction.
func FromBool(rtl bool) Direction {
	if rtl {
		return RightToLeft
	}
	return LeftToRight
}

// ErrInvalidDirection flags a direction name which ParseDirection does not
// recognize.
var ErrInvalidDirection = errors.New("not a valid direction")

// ParseDirection converts a textual direction name to a Direction.
// Recognized names are "ltr", "rtl", "neutral" and "unknown", compared
// case-insensitively. Any other input returns ErrInvalidDirection.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "ltr":
		return LeftToRight, nil
	case "rtl":
		return RightToLeft, nil
	case "neutral", "unknown":
		return Neutral, nil
	}
	return Neutral, fmt.Errorf("%q: %w", s, ErrInvalidDirection)
}

// IsOppositeTo returns true iff d and other are LeftToRight and RightToLeft,
// in either order. Neutral is never opposite to anything, including itself.
func (d Direction) IsOppositeTo(other Direction) bool {
	return int(d)*int(other) < 0
}

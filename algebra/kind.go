package algebra

import "strconv"

// Kind identifies the bracket family of a [Container].
type Kind uint8

const (
	Implicit Kind = iota // no brackets
	Round                // ( )
	Square               // [ ]
	Angle                // < >
)

// Kinds lists the bracketed kinds in declaration order.
//
//nolint:gochecknoglobals
var Kinds = [...]Kind{Round, Square, Angle}

// Open returns the opening symbol of k, or "" for [Implicit].
func (k Kind) Open() string {
	switch k {
	case Round:
		return "("
	case Square:
		return "["
	case Angle:
		return "<"
	default:
		return ""
	}
}

// Close returns the closing symbol of k, or "" for [Implicit].
func (k Kind) Close() string {
	switch k {
	case Round:
		return ")"
	case Square:
		return "]"
	case Angle:
		return ">"
	default:
		return ""
	}
}

func (k Kind) String() string {
	switch k {
	case Implicit:
		return "implicit"
	case Round:
		return "round"
	case Square:
		return "square"
	case Angle:
		return "angle"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// ParseKind returns the Kind named by s, as returned by [Kind.String].
func ParseKind(s string) (Kind, bool) {
	for _, k := range []Kind{Implicit, Round, Square, Angle} {
		if k.String() == s {
			return k, true
		}
	}

	return Implicit, false
}

// opening returns the kind opened by r.
func opening(r rune) (Kind, bool) {
	switch r {
	case '(':
		return Round, true
	case '[':
		return Square, true
	case '<':
		return Angle, true
	default:
		return Implicit, false
	}
}

// closing returns the kind closed by r.
func closing(r rune) (Kind, bool) {
	switch r {
	case ')':
		return Round, true
	case ']':
		return Square, true
	case '>':
		return Angle, true
	default:
		return Implicit, false
	}
}

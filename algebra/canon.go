package algebra

import (
	"log/slog"
	"slices"
)

// Void returns the empty implicit container.
func Void() *Container { return NewImplicit() }

// Unit returns the empty round container, written "o" or "()".
func Unit() *Container { return NewRound() }

// SquareUnit returns the empty square container "[]".
func SquareUnit() *Container { return NewSquare() }

// Diamond returns the empty angle container "<>".
func Diamond() *Container { return NewAngle() }

// J returns the J-form [<()>], written "J".
func J() *Container { return NewSquare(NewAngle(Unit())) }

// DivByZero returns the form (<[]>).
func DivByZero() *Container { return NewRound(NewAngle(SquareUnit())) }

// CountingNumber returns an implicit container holding n units.
// It fails with [ErrInvalidArgument] unless n is positive.
func CountingNumber(n int) (*Container, error) {
	if n < 1 {
		return nil, ErrInvalidArgument.
			WithDetail("counting number must be a positive integer").
			With(slog.Int("n", n))
	}

	return &Container{kind: Implicit, children: units(n)}, nil
}

// Product returns a round container holding each multiplicand wrapped in a
// square container: Product(a, b) is ([a][b]).
func Product(multiplicands ...Form) *Container {
	children := make([]Form, 0, len(multiplicands))

	for _, m := range multiplicands {
		if !isNil(m) {
			children = append(children, NewSquare(m))
		}
	}

	return &Container{kind: Round, children: children}
}

func units(n int) []Form {
	u := make([]Form, n)
	for i := range u {
		u[i] = Unit()
	}

	return u
}

type shape struct {
	name string
	make func() *Container
}

// shapes lists the parameterless canonical shapes by name.
//
//nolint:gochecknoglobals
var shapes = []shape{
	{"void", Void},
	{"unit", Unit},
	{"square", SquareUnit},
	{"diamond", Diamond},
	{"j", J},
	{"div-by-zero", DivByZero},
}

// Lookup returns a new instance of the canonical shape with the given name.
// See [Names].
func Lookup(name string) (*Container, bool) {
	i := slices.IndexFunc(shapes, func(s shape) bool { return s.name == name })
	if i < 0 {
		return nil, false
	}

	return shapes[i].make(), true
}

// Names returns the names accepted by [Lookup].
func Names() []string {
	names := make([]string, len(shapes))
	for i, s := range shapes {
		names[i] = s.name
	}

	return names
}

package algebra

import (
	"iter"
	"log/slog"
	"slices"
)

// Form is a node of the algebra: either a [*Container] or a [*Variable].
// No other implementations exist.
type Form interface {
	String() string
	form()
}

// Container is a form of some [Kind] holding an ordered sequence of children.
// A Container of kind [Implicit] groups forms without brackets.
type Container struct {
	children []Form
	kind     Kind
}

// Variable is an opaque leaf named by a single uppercase letter.
type Variable struct {
	name rune
}

func (*Container) form() {}
func (*Variable) form()  {}

// NewContainer returns a container of kind k holding a copy of children.
// Nil children are dropped.
func NewContainer(k Kind, children ...Form) *Container {
	c := &Container{kind: k}

	if len(children) > 0 {
		c.children = make([]Form, 0, len(children))

		for _, f := range children {
			if !isNil(f) {
				c.children = append(c.children, f)
			}
		}
	}

	return c
}

// NewImplicit returns an implicit container holding children.
func NewImplicit(children ...Form) *Container {
	return NewContainer(Implicit, children...)
}

// NewRound returns a round container holding children.
func NewRound(children ...Form) *Container { return NewContainer(Round, children...) }

// NewSquare returns a square container holding children.
func NewSquare(children ...Form) *Container { return NewContainer(Square, children...) }

// NewAngle returns an angle container holding children.
func NewAngle(children ...Form) *Container { return NewContainer(Angle, children...) }

// NewVariable returns the variable named by name, which must be an uppercase
// letter A through Z other than J. J always denotes the J-form.
func NewVariable(name rune) (*Variable, error) {
	if name < 'A' || name > 'Z' || name == 'J' {
		return nil, ErrInvalidArgument.
			WithDetail("variable name must be one uppercase letter other than J").
			With(slog.String("name", string(name)))
	}

	return &Variable{name: name}, nil
}

// Kind returns the container's kind.
func (c *Container) Kind() Kind { return c.kind }

// IsImplicit reports whether the container has no brackets.
func (c *Container) IsImplicit() bool { return c.kind == Implicit }

// Len returns the number of children.
func (c *Container) Len() int { return len(c.children) }

// Child returns the i'th child. It panics if i is out of range.
func (c *Container) Child(i int) Form { return c.children[i] }

// Children returns a copy of the container's children.
func (c *Container) Children() []Form { return slices.Clone(c.children) }

// All returns an iterator over the container's children in order.
func (c *Container) All() iter.Seq[Form] {
	return func(yield func(Form) bool) {
		for _, f := range c.children {
			if !yield(f) {
				return
			}
		}
	}
}

// String returns the canonical notation of the container. See [Render].
func (c *Container) String() string { return Render(c) }

// Name returns the variable's letter.
func (v *Variable) Name() rune { return v.name }

// String returns the variable's letter.
func (v *Variable) String() string { return string(v.name) }

// isNil reports whether f is nil or a typed nil pointer.
func isNil(f Form) bool {
	switch f := f.(type) {
	case *Container:
		return f == nil
	case *Variable:
		return f == nil
	default:
		return f == nil
	}
}

package algebra

import (
	"slices"
)

// Stats summarizes the structure of a form.
type Stats struct {
	Variables  []string // distinct variable names, sorted
	Nodes      int      // forms of either variant, including the root
	Containers int
	Implicit   int
	Round      int
	Square     int
	Angle      int
	Units      int // empty round containers
	Empty      int // empty containers of any kind
	Depth      int // deepest nesting of bracketed containers
	Width      int // top-level forms: children of an implicit root, else 1
	UniNested  bool
}

// Measure walks f and returns its [Stats].
func Measure(f Form) Stats {
	type step struct {
		form  Form
		depth int
	}

	s := Stats{UniNested: true}

	switch c := f.(type) {
	case *Container:
		if c != nil && c.kind == Implicit {
			s.Width = len(c.children)
		} else if c != nil {
			s.Width = 1
		}

	case *Variable:
		if c != nil {
			s.Width = 1
		}
	}

	seen := map[rune]struct{}{}
	stack := []step{{form: f}}

	for len(stack) > 0 {
		st := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if isNil(st.form) {
			continue
		}

		s.Nodes++

		switch f := st.form.(type) {
		case *Variable:
			if _, ok := seen[f.name]; !ok {
				seen[f.name] = struct{}{}
				s.Variables = append(s.Variables, string(f.name))
			}

		case *Container:
			s.Containers++

			depth := st.depth
			if f.kind != Implicit {
				depth++
			}

			s.Depth = max(s.Depth, depth)

			switch f.kind {
			case Implicit:
				s.Implicit++
			case Round:
				s.Round++
			case Square:
				s.Square++
			case Angle:
				s.Angle++
			}

			switch len(f.children) {
			case 0:
				s.Empty++

				if f.kind == Round {
					s.Units++
				}

			case 1:
			default:
				s.UniNested = false
			}

			for _, child := range f.children {
				stack = append(stack, step{form: child, depth: depth})
			}
		}
	}

	slices.Sort(s.Variables)

	return s
}

// Env returns the statistics keyed by lowercase field name, for use as an
// expression environment.
func (s Stats) Env() map[string]any {
	vars := s.Variables
	if vars == nil {
		vars = []string{}
	}

	return map[string]any{
		"variables":  vars,
		"nodes":      s.Nodes,
		"containers": s.Containers,
		"implicit":   s.Implicit,
		"round":      s.Round,
		"square":     s.Square,
		"angle":      s.Angle,
		"units":      s.Units,
		"empty":      s.Empty,
		"depth":      s.Depth,
		"width":      s.Width,
		"uninested":  s.UniNested,
	}
}

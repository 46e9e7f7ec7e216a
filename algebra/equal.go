package algebra

// Equal reports whether a and b are structurally equal: the same variant,
// the same kind or name, and pairwise equal children in the same order.
func Equal(a, b Form) bool {
	type pair struct{ a, b Form }

	stack := []pair{{a, b}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		an, bn := isNil(p.a), isNil(p.b)
		if an || bn {
			if an != bn {
				return false
			}

			continue
		}

		switch x := p.a.(type) {
		case *Variable:
			y, ok := p.b.(*Variable)
			if !ok || x.name != y.name {
				return false
			}

		case *Container:
			y, ok := p.b.(*Container)
			if !ok || x.kind != y.kind || len(x.children) != len(y.children) {
				return false
			}

			for i := range x.children {
				stack = append(stack, pair{x.children[i], y.children[i]})
			}

		default:
			return false
		}
	}

	return true
}

// Unwrap returns the only child of f if f is an implicit container with
// exactly one child, and f otherwise. It strips the wrapper [ParseString]
// adds around a single top-level form.
//
// An implicit container holding one child cannot survive a render and parse
// round trip, because the parsed result unwraps to that child.
func Unwrap(f Form) Form {
	if c, ok := f.(*Container); ok && c != nil && c.kind == Implicit && len(c.children) == 1 {
		return c.children[0]
	}

	return f
}

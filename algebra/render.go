package algebra

import (
	"io"
	"strings"
	"unicode/utf8"
)

// Render returns the canonical notation of f.
//
// A container renders as its opening symbol, its children in order without
// separators, and its closing symbol; [Implicit] has no symbols. A container
// with no children renders a single space in place of its children. A
// variable renders as its letter. Render(nil) is "".
func Render(f Form) string {
	return string(AppendRender(nil, f))
}

// Format writes the canonical notation of f to w.
func Format(w io.Writer, f Form) error {
	_, err := w.Write(AppendRender(nil, f))

	return err
}

// AppendRender appends the canonical notation of f to b.
func AppendRender(b []byte, f Form) []byte {
	type step struct {
		form  Form
		close string
	}

	stack := []step{{form: f}}

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if isNil(s.form) {
			b = append(b, s.close...)

			continue
		}

		switch f := s.form.(type) {
		case *Variable:
			b = utf8.AppendRune(b, f.name)

		case *Container:
			b = append(b, f.kind.Open()...)
			stack = append(stack, step{close: f.kind.Close()})

			if len(f.children) == 0 {
				b = append(b, ' ')

				continue
			}

			for i := len(f.children) - 1; i >= 0; i-- {
				stack = append(stack, step{form: f.children[i]})
			}
		}
	}

	return b
}

// Print writes an indented tree listing of f to w, one form per line.
//
//	implicit
//	  round
//	    angle
//	      square (empty)
//	  A
func Print(w io.Writer, f Form) error {
	type step struct {
		form  Form
		depth int
	}

	var sb strings.Builder

	stack := []step{{form: f}}

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if isNil(s.form) {
			continue
		}

		sb.WriteString(strings.Repeat("  ", s.depth))

		switch f := s.form.(type) {
		case *Variable:
			sb.WriteRune(f.name)

		case *Container:
			sb.WriteString(f.kind.String())

			if len(f.children) == 0 {
				sb.WriteString(" (empty)")
			}

			for i := len(f.children) - 1; i >= 0; i-- {
				stack = append(stack, step{form: f.children[i], depth: s.depth + 1})
			}
		}

		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())

	return err
}

package algebra

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func mustParse(t *testing.T, s string, opts ...Option) *Container {
	t.Helper()

	c, err := ParseString(context.Background(), s, opts...)
	if err != nil {
		t.Fatalf("ParseString(%q): %v", s, err)
	}

	return c
}

func mustCount(t *testing.T, n int) *Container {
	t.Helper()

	c, err := CountingNumber(n)
	if err != nil {
		t.Fatalf("CountingNumber(%d): %v", n, err)
	}

	return c
}

func TestParseString_Void(t *testing.T) {
	for _, input := range []string{"", " ", "  ", "   ", "\t\n "} {
		t.Run(strings.ReplaceAll(input, " ", "_"), func(t *testing.T) {
			got := mustParse(t, input)
			if !Equal(got, Void()) {
				t.Errorf("ParseString(%q) = %q, want void", input, Render(got))
			}
		})
	}
}

func TestParseString_Unwrapped(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Form
	}{
		{"unit", "()", Unit()},
		{"unit shorthand", "o", Unit()},
		{"square", "[]", SquareUnit()},
		{"diamond", "<>", Diamond()},
		{"nested round", "(())", NewRound(Unit())},
		{"log one", "[()]", NewSquare(Unit())},
		{"round of square", "([])", NewRound(SquareUnit())},
		{"J", "[<()>]", J()},
		{"J condensed", "[<o>]", J()},
		{"J shorthand", "J", J()},
		{"div by zero", "(<[]>)", DivByZero()},
		{"half", "(<[() ()]>)", NewRound(NewAngle(NewSquare(Unit(), Unit())))},
		{"half condensed", "(<[oo]>)", NewRound(NewAngle(NewSquare(Unit(), Unit())))},
		{"half digit", "(<[2]>)", NewRound(NewAngle(NewSquare(Unit(), Unit())))},
		{
			"two thirds", "([oo] <[ooo]>)",
			NewRound(
				NewSquare(Unit(), Unit()),
				NewAngle(NewSquare(Unit(), Unit(), Unit())),
			),
		},
		{
			"J over two", "([[<o>]] <[oo]>)",
			NewRound(NewSquare(J()), NewAngle(NewSquare(Unit(), Unit()))),
		},
		{"variable", "A", &Variable{name: 'A'}},
		{"variable in square", "[X]", NewSquare(&Variable{name: 'X'})},
		{"product", "([A][B])", Product(&Variable{name: 'A'}, &Variable{name: 'B'})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Unwrap(mustParse(t, tt.input))
			if !Equal(got, tt.want) {
				t.Errorf("ParseString(%q) = %q, want %q", tt.input, Render(got), Render(tt.want))
			}
		})
	}
}

func TestParseString_TopLevelSequence(t *testing.T) {
	tests := []struct {
		input string
		want  *Container
	}{
		{"()()", NewImplicit(Unit(), Unit())},
		{"() <()>", NewImplicit(Unit(), NewAngle(Unit()))},
		{"J ([J] J)", NewImplicit(J(), NewRound(NewSquare(J()), J()))},
		{"A o B", NewImplicit(&Variable{name: 'A'}, Unit(), &Variable{name: 'B'})},
		{"2 3", mustCount(t, 5)},
		{"()", NewImplicit(Unit())},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := mustParse(t, tt.input)
			if !got.IsImplicit() {
				t.Fatalf("expected implicit top-level container, got %v", got.Kind())
			}

			if !Equal(got, tt.want) {
				t.Errorf("ParseString(%q) = %q, want %q", tt.input, Render(got), Render(tt.want))
			}
		})
	}
}

func TestParseString_CountingEquivalence(t *testing.T) {
	for n := 1; n <= 9; n++ {
		want := mustCount(t, n)

		inputs := []string{
			strings.Repeat("o", n),
			strings.Repeat("()", n),
			strings.Repeat("( ) ", n),
		}

		if n >= 2 {
			inputs = append(inputs, string(rune('0'+n)))
		}

		for _, input := range inputs {
			if got := mustParse(t, input); !Equal(got, want) {
				t.Errorf("n=%d: ParseString(%q) = %q, want %q", n, input, Render(got), Render(want))
			}
		}
	}
}

func TestParseString_WhitespaceVariants(t *testing.T) {
	tests := []struct {
		input string
		n     int
	}{
		{" (     )  ", 1},
		{"( ) ()  ", 2},
		{"   ( ) (    )()", 3},
		{" ( ) ( ) ( ) ( )", 4},
		{"o  oo ", 3},
		{"   oo o o", 4},
		{"ooooo", 5},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := mustParse(t, tt.input); !Equal(got, mustCount(t, tt.n)) {
				t.Errorf("ParseString(%q) = %q, want %d units", tt.input, Render(got), tt.n)
			}
		})
	}
}

func TestParseString_SyntaxError(t *testing.T) {
	tests := []struct {
		input  string
		char   string
		column int
	}{
		{"x", "x", 1},
		{"(a)", "a", 2},
		{"oo1", "1", 3},
		{"0", "0", 1},
		{"[<{>]", "{", 3},
		{"ö", "ö", 1},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseString(context.Background(), tt.input)
			if err == nil {
				t.Fatalf("expected error for %q", tt.input)
			}

			var e *Error
			if !errors.As(err, &e) {
				t.Fatalf("expected *Error, got %T", err)
			}

			pos, ok := e.Position()
			if !ok || pos.Column != tt.column {
				t.Errorf("expected column %d, got %v (ok=%v)", tt.column, pos, ok)
			}

			if !errors.Is(err, ErrSyntax) {
				t.Fatalf("expected ErrSyntax, got %v", err)
			}

			if v, _ := e.Attr("char"); v.String() != tt.char {
				t.Errorf("expected char %q, got %q", tt.char, v.String())
			}
		})
	}
}

func TestParseString_Mismatch(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string // expected closer named by the error, "" if none
		found  string
	}{
		{"wrong closer", "(]", ")", "]"},
		{"empty stack", ")", "", ")"},
		{"empty stack after balanced", "()]", "", "]"},
		{"inner wrong closer", "[<)]", ">", ")"},
		{"crossed", "([)]", "]", ")"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(context.Background(), tt.input)
			if !errors.Is(err, ErrMismatch) {
				t.Fatalf("expected ErrMismatch, got %v", err)
			}

			var e *Error
			if !errors.As(err, &e) {
				t.Fatalf("expected *Error, got %T", err)
			}

			expect, ok := e.Attr("expect")
			if tt.expect == "" {
				if ok {
					t.Errorf("expected no expected closer, got %q", expect.String())
				}

				if !strings.Contains(e.Detail(), "no container to close") {
					t.Errorf("unexpected detail %q", e.Detail())
				}
			} else if expect.String() != tt.expect {
				t.Errorf("expected closer %q, got %q", tt.expect, expect.String())
			}

			if found, _ := e.Attr("found"); found.String() != tt.found {
				t.Errorf("expected found %q, got %q", tt.found, found.String())
			}

			if tt.expect != "" && !strings.Contains(err.Error(), "'"+tt.expect+"'") {
				t.Errorf("message %q does not name %q", err.Error(), tt.expect)
			}
		})
	}
}

func TestParseString_Unclosed(t *testing.T) {
	t.Run("strict", func(t *testing.T) {
		_, err := ParseString(context.Background(), "o (<[]")
		if !errors.Is(err, ErrMismatch) {
			t.Fatalf("expected ErrMismatch, got %v", err)
		}

		var e *Error
		if !errors.As(err, &e) {
			t.Fatalf("expected *Error, got %T", err)
		}

		if v, _ := e.Attr("expect"); v.String() != ">" {
			t.Errorf("expected innermost closer '>', got %q", v.String())
		}

		if pos, _ := e.Position(); pos.Column != 4 {
			t.Errorf("expected position of innermost opener (column 4), got %v", pos)
		}
	})

	t.Run("discard", func(t *testing.T) {
		got := mustParse(t, "o (<[]", WithDiscardUnclosed(true))
		if !Equal(got, NewImplicit(Unit())) {
			t.Errorf("expected open frames dropped, got %q", Render(got))
		}

		if got := mustParse(t, "(((", WithDiscardUnclosed(true)); !Equal(got, Void()) {
			t.Errorf("expected void, got %q", Render(got))
		}
	})
}

func TestParseString_Position(t *testing.T) {
	_, err := ParseString(context.Background(), "(\n  <[]\n  x>)")

	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *Error, got %v", err)
	}

	pos, _ := e.Position()
	if pos.Line != 3 || pos.Column != 3 || pos.Offset != 10 {
		t.Errorf("unexpected position %+v", pos)
	}

	want := "  3 |   x>)\n" + strings.Repeat(" ", 6+2) + "^\n"
	if got := e.Snippet(); got != want {
		t.Errorf("Snippet() =\n%q\nwant\n%q", got, want)
	}
}

func TestParseString_BracketBalance(t *testing.T) {
	const alphabet = "()[]<>"

	// Every bracket string up to length 6 either parses to something that
	// renders back to itself (modulo spacing) or fails with ErrMismatch.
	var gen func(prefix string, n int)

	gen = func(prefix string, n int) {
		if n == 0 {
			c, err := ParseString(context.Background(), prefix)

			balanced := isBalanced(prefix)
			switch {
			case balanced && err != nil:
				t.Errorf("ParseString(%q) unexpected error: %v", prefix, err)
			case !balanced && !errors.Is(err, ErrMismatch):
				t.Errorf("ParseString(%q) = %v, want ErrMismatch", prefix, err)
			case balanced:
				got := strings.ReplaceAll(Render(c), " ", "")
				if got != prefix {
					t.Errorf("Render(ParseString(%q)) = %q", prefix, got)
				}
			}

			return
		}

		for _, r := range alphabet {
			gen(prefix+string(r), n-1)
		}
	}

	for n := 1; n <= 6; n++ {
		gen("", n)
	}
}

func isBalanced(s string) bool {
	pair := map[rune]rune{')': '(', ']': '[', '>': '<'}

	var stack []rune

	for _, r := range s {
		if open, ok := pair[r]; ok {
			if len(stack) == 0 || stack[len(stack)-1] != open {
				return false
			}

			stack = stack[:len(stack)-1]

			continue
		}

		stack = append(stack, r)
	}

	return len(stack) == 0
}

func TestParseString_DeepNesting(t *testing.T) {
	const depth = 100_000

	input := strings.Repeat("(", depth) + strings.Repeat(")", depth)

	c := mustParse(t, input)
	if s := Measure(c); s.Depth != depth {
		t.Errorf("expected depth %d, got %d", depth, s.Depth)
	}

	if got := Render(c); len(got) != 2*depth+1 {
		t.Errorf("unexpected render length %d", len(got))
	}
}

func TestParseReader(t *testing.T) {
	c, err := ParseReader(context.Background(), strings.NewReader("[<o>]"))
	if err != nil {
		t.Fatal(err)
	}

	if !Equal(Unwrap(c), J()) {
		t.Errorf("expected J, got %q", Render(c))
	}

	_, err = ParseReader(context.Background(), errReader{})
	if !errors.Is(err, ErrReadInput) {
		t.Errorf("expected ErrReadInput, got %v", err)
	}
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestMustParse_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()

	MustParse(")")
}

func BenchmarkParseString(b *testing.B) {
	input := strings.Repeat("([oo] <[ooo]>) J 9 ", 64)

	b.SetBytes(int64(len(input)))

	for b.Loop() {
		if _, err := ParseString(context.Background(), input); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseString_Deep(b *testing.B) {
	input := strings.Repeat("(<[", 1000) + strings.Repeat("]>)", 1000)

	for b.Loop() {
		if _, err := ParseString(context.Background(), input); err != nil {
			b.Fatal(err)
		}
	}
}

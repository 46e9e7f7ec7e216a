package svg

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ardnew/jalg/algebra"
	"github.com/ardnew/jalg/log"
)

func kinds(shapes []Shape) []algebra.Kind {
	out := make([]algebra.Kind, 0, len(shapes))

	for _, s := range shapes {
		switch s := s.(type) {
		case Path:
			out = append(out, s.Kind)
		case Circle:
			out = append(out, s.Kind)
		}
	}

	return out
}

func sizes(shapes []Shape) []float64 {
	out := make([]float64, 0, len(shapes))

	for _, s := range shapes {
		switch s := s.(type) {
		case Path:
			out = append(out, s.Size)
		case Circle:
			out = append(out, s.Size)
		}
	}

	return out
}

func TestProject_J(t *testing.T) {
	shapes, err := Project(context.Background(), algebra.J())
	if err != nil {
		t.Fatalf("Project: %v", err)
	}

	want := []algebra.Kind{algebra.Round, algebra.Angle, algebra.Square}

	got := kinds(shapes)
	if len(got) != len(want) {
		t.Fatalf("got %d shapes, want %d", len(got), len(want))
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("shape %d kind = %v, want %v", i, got[i], want[i])
		}
	}

	if _, ok := shapes[0].(Circle); !ok {
		t.Errorf("expected innermost round as circle, got %T", shapes[0])
	}

	hs := sizes(shapes)
	for i := 1; i < len(hs); i++ {
		if hs[i] <= hs[i-1] {
			t.Errorf("sizes not strictly increasing: %v", hs)
		}
	}

	if hs[0] != BaseSize {
		t.Errorf("innermost size = %v, want %v", hs[0], BaseSize)
	}
}

func TestProject_Lens(t *testing.T) {
	shapes, err := Project(context.Background(), algebra.DivByZero(), WithLens(true))
	if err != nil {
		t.Fatalf("Project: %v", err)
	}

	if len(shapes) != 3 {
		t.Fatalf("got %d shapes, want 3", len(shapes))
	}

	p, ok := shapes[2].(Path)
	if !ok || p.Kind != algebra.Round || !strings.Contains(p.Data, " A ") {
		t.Errorf("expected outer round as lens path, got %#v", shapes[2])
	}
}

func TestProject_Supported(t *testing.T) {
	tests := []struct {
		in    string
		count int
	}{
		{"", 0},
		{"()", 1},
		{"[]", 1},
		{"<>", 1},
		{"(((())))", 4},
		{"[<()>]", 3},
		{"  [ < ( ) > ]  ", 3},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			shapes, err := Project(context.Background(), algebra.MustParse(tt.in))
			if err != nil {
				t.Fatalf("Project(%q): %v", tt.in, err)
			}

			if shapes == nil || len(shapes) != tt.count {
				t.Errorf("Project(%q) = %d shapes, want %d", tt.in, len(shapes), tt.count)
			}
		})
	}
}

func TestProject_Unsupported(t *testing.T) {
	tests := []struct {
		name string
		form algebra.Form
	}{
		{"two top-level forms", algebra.MustParse("() ()")},
		{"branching", algebra.MustParse("(()())")},
		{"nested branching", algebra.MustParse("[<(oo)>]")},
		{"variable leaf", algebra.MustParse("[A]")},
		{"top-level variable", algebra.MustParse("A").Child(0)},
		{"inner implicit", algebra.NewRound(algebra.NewImplicit(algebra.Unit()))},
		{"nil", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shapes, err := Project(context.Background(), tt.form)
			if !errors.Is(err, algebra.ErrUnsupportedShape) {
				t.Fatalf("expected ErrUnsupportedShape, got %v", err)
			}

			if shapes != nil {
				t.Errorf("expected no shapes, got %v", shapes)
			}

			var e *algebra.Error
			if !errors.As(err, &e) || e.Detail() == "" {
				t.Errorf("expected detail on %v", err)
			}
		})
	}
}

func TestProject_Logs(t *testing.T) {
	var buf bytes.Buffer

	logger := log.Make(&buf, log.WithLevel(log.LevelTrace), log.WithPretty(false))

	if _, err := Project(context.Background(), algebra.J(), WithLogger(logger)); err != nil {
		t.Fatalf("Project: %v", err)
	}

	if !strings.Contains(buf.String(), `"shape_count":3`) {
		t.Errorf("expected shape count in trace, got %s", buf.String())
	}
}

func BenchmarkProject(b *testing.B) {
	ctx := context.Background()
	f := algebra.MustParse("[<([<([<()>])>])>]")

	for b.Loop() {
		_, _ = Project(ctx, f)
	}
}

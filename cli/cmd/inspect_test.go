package cmd

import (
	"errors"
	"strings"
	"testing"
)

func TestInspectWhere(t *testing.T) {
	tests := []struct {
		expr  string
		where string
		want  string
	}{
		{"[<()>]", "depth", "3"},
		{"[<()>]", "uninested && depth == 3", "true"},
		{"() () A", "width", "3"},
		{"(A [B] A)", "variables", "[A B]"},
		{"5", "units * 2", "10"},
		{"(oo)", "uninested", "false"},
		{"", "nodes", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.where, func(t *testing.T) {
			ctx, out := testContext("")

			cmd := &Inspect{Input: Input{Expr: tt.expr}, Where: tt.where}
			if err := cmd.Run(ctx); err != nil {
				t.Fatalf("Run: %v", err)
			}

			if got := strings.TrimSpace(out.String()); got != tt.want {
				t.Errorf("inspect %q --where %q = %q, want %q", tt.expr, tt.where, got, tt.want)
			}
		})
	}
}

func TestInspectYAML(t *testing.T) {
	ctx, out := testContext("")

	if err := (&Inspect{Input: Input{Expr: "[<()>]"}}).Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, want := range []string{"depth: 3", "uninested: true", "round: 1"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestInspectErrors(t *testing.T) {
	ctx, _ := testContext("")

	err := (&Inspect{Input: Input{Expr: "()"}, Where: "depth +"}).Run(ctx)
	if !errors.Is(err, ErrExprCompile) {
		t.Errorf("expected ErrExprCompile, got %v", err)
	}

	err = (&Inspect{Input: Input{Expr: "()"}, Where: "bogus > 1"}).Run(ctx)
	if !errors.Is(err, ErrExprCompile) {
		t.Errorf("expected unknown name to fail compilation, got %v", err)
	}
}

func TestEvaluate(t *testing.T) {
	got, err := Evaluate("square + angle", map[string]any{"square": 2, "angle": 3})
	if err != nil {
		t.Fatal(err)
	}

	if got != 5 {
		t.Errorf("Evaluate = %v, want 5", got)
	}
}

package svg

import (
	"math"
	"testing"

	"github.com/ardnew/jalg/algebra"
)

func TestSquarePath(t *testing.T) {
	p := SquarePath(0.6)

	if want := "M -0.3 -0.3 L -0.3 0.3 L 0.3 0.3 L 0.3 -0.3 Z"; p.Data != want {
		t.Errorf("Data = %q, want %q", p.Data, want)
	}

	if p.Color != SquareColor || p.Kind != algebra.Square || p.Size != 0.6 {
		t.Errorf("unexpected path %+v", p)
	}

	if p.Extent() != 0.3 {
		t.Errorf("Extent() = %v, want 0.3", p.Extent())
	}
}

func TestAnglePath(t *testing.T) {
	p := AnglePath(math.Sqrt(3))

	want := "M 1 0 L 0.5 0.866025 L -0.5 0.866025 L -1 0 " +
		"L -0.5 -0.866025 L 0.5 -0.866025 Z"
	if p.Data != want {
		t.Errorf("Data = %q, want %q", p.Data, want)
	}

	if p.Color != AngleColor || p.Kind != algebra.Angle {
		t.Errorf("unexpected path %+v", p)
	}
}

func TestRoundCircle(t *testing.T) {
	c := RoundCircle(1.15)

	if c.R != 0.575 || c.CX != 0 || c.CY != 0 {
		t.Errorf("unexpected circle %+v", c)
	}

	if c.Color != RoundColor || c.Kind != algebra.Round {
		t.Errorf("unexpected circle %+v", c)
	}
}

func TestLens(t *testing.T) {
	g := Lens(2)

	if g.C != 1 || g.A != 0.125 || g.B != 0.125 {
		t.Fatalf("unexpected geometry %+v", g)
	}

	if g.D != 1 || g.R != 2.125 {
		t.Errorf("D, R = %v, %v, want 1, 2.125", g.D, g.R)
	}

	for _, h := range []float64{0.6, 1.15, 1.7, 10} {
		g := Lens(h)

		left := (g.D + g.C - g.A) * (g.D + g.C - g.A)
		if diff := g.R*g.R - (left + g.C*g.C); math.Abs(diff) > 1e-9 {
			t.Errorf("Lens(%v): arc misses endpoint by %v", h, diff)
		}

		if diff := g.R - (g.B + g.C + g.D); math.Abs(diff) > 1e-9 {
			t.Errorf("Lens(%v): arc misses apex by %v", h, diff)
		}
	}
}

func TestLensPath(t *testing.T) {
	p := LensPath(2)

	want := "M -0.875 -1 A 2.125 2.125 0 0 0 -0.875 1 " +
		"L 0.875 1 A 2.125 2.125 0 0 0 0.875 -1 Z"
	if p.Data != want {
		t.Errorf("Data = %q, want %q", p.Data, want)
	}

	if p.Extent() != 1.125 {
		t.Errorf("Extent() = %v, want 1.125", p.Extent())
	}
}

func TestColor(t *testing.T) {
	tests := []struct {
		kind algebra.Kind
		want string
	}{
		{algebra.Round, RoundColor},
		{algebra.Square, SquareColor},
		{algebra.Angle, AngleColor},
		{algebra.Implicit, ""},
	}

	for _, tt := range tests {
		if got := Color(tt.kind); got != tt.want {
			t.Errorf("Color(%v) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestNum(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{-1e-12, "0"},
		{1, "1"},
		{10, "10"},
		{-0.25, "-0.25"},
		{1.0 / 3, "0.333333"},
		{0.6 + 0.55*2, "1.7"},
	}

	for _, tt := range tests {
		if got := num(tt.in); got != tt.want {
			t.Errorf("num(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

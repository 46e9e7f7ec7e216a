package svg

import (
	"math"
	"strconv"
	"strings"

	"github.com/ardnew/jalg/algebra"
)

// SquarePath returns an axis-aligned square of side h centered at the origin.
func SquarePath(h float64) Path {
	c := h / 2

	var b pathBuilder

	b.move(-c, -c)
	b.line(-c, c)
	b.line(c, c)
	b.line(c, -c)
	b.close()

	return Path{
		Data:   b.String(),
		Color:  SquareColor,
		Kind:   algebra.Square,
		Size:   h,
		extent: c,
	}
}

// AnglePath returns a regular hexagon centered at the origin with
// circumradius h/√3 and a vertex on the positive x axis.
func AnglePath(h float64) Path {
	c := h / math.Sqrt(3)

	var b pathBuilder

	for i := range 6 {
		theta := float64(i) * math.Pi / 3
		x, y := c*math.Cos(theta), c*math.Sin(theta)

		if i == 0 {
			b.move(x, y)
		} else {
			b.line(x, y)
		}
	}

	b.close()

	return Path{
		Data:   b.String(),
		Color:  AngleColor,
		Kind:   algebra.Angle,
		Size:   h,
		extent: c,
	}
}

// RoundCircle returns a circle of diameter h centered at the origin.
func RoundCircle(h float64) Circle {
	return Circle{
		Color: RoundColor,
		R:     h / 2,
		Kind:  algebra.Round,
		Size:  h,
	}
}

// LensGeometry holds the derivation of the lens outline for a round
// container of height 2C.
//
// Each side of the lens is an arc of radius R through (-C+A, -C), (-C-B, 0),
// and (-C+A, C), mirrored for the right side. Its center lies at (D, 0) on
// the x axis, so
//
//	R = C + B + D
//	R² = (D + C - A)² + C²
//
// which solves to D = -C + (A² + C² - B²) / 2(A + B).
type LensGeometry struct {
	A float64 // horizontal inset of the arc endpoints
	B float64 // bulge of the arc beyond x = ±C
	C float64 // half-height
	D float64 // x of the arc center
	R float64 // arc radius
}

// Lens returns the lens geometry for height h, with A = B = C/8.
func Lens(h float64) LensGeometry {
	c := h / 2
	a := c / 8
	b := a
	d := (a*a+c*c-b*b)/(2*(a+b)) - c

	return LensGeometry{A: a, B: b, C: c, D: d, R: b + c + d}
}

// LensPath returns the lens outline of a round container of height h: two
// opposing arcs joined by horizontal segments.
func LensPath(h float64) Path {
	g := Lens(h)

	var b pathBuilder

	b.move(-g.C+g.A, -g.C)
	b.arc(g.R, -g.C+g.A, g.C)
	b.line(g.C-g.A, g.C)
	b.arc(g.R, g.C-g.A, -g.C)
	b.close()

	return Path{
		Data:   b.String(),
		Color:  RoundColor,
		Kind:   algebra.Round,
		Size:   h,
		extent: g.C + g.B,
	}
}

// pathBuilder assembles SVG path data.
type pathBuilder struct {
	strings.Builder
}

func (b *pathBuilder) cmd(op string, xs ...float64) {
	if b.Len() > 0 {
		b.WriteByte(' ')
	}

	b.WriteString(op)

	for _, x := range xs {
		b.WriteByte(' ')
		b.WriteString(num(x))
	}
}

func (b *pathBuilder) move(x, y float64) { b.cmd("M", x, y) }
func (b *pathBuilder) line(x, y float64) { b.cmd("L", x, y) }
func (b *pathBuilder) close()            { b.cmd("Z") }

// arc draws a circular arc of radius r to (x, y), sweeping
// counterclockwise along the minor arc.
func (b *pathBuilder) arc(r, x, y float64) { b.cmd("A", r, r, 0, 0, 0, x, y) }

// num formats x with at most six decimal places, without trailing zeros or
// negative zero.
func num(x float64) string {
	s := strconv.FormatFloat(x, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")

	if s == "-0" || s == "" {
		return "0"
	}

	return s
}

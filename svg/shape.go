package svg

import "github.com/ardnew/jalg/algebra"

// Display colors of each container kind.
const (
	SquareColor = "#d42a20"
	AngleColor  = "#fac22b"
	RoundColor  = "#0e638e"
)

// Color returns the display color of kind k, or "" for [algebra.Implicit].
func Color(k algebra.Kind) string {
	switch k {
	case algebra.Round:
		return RoundColor
	case algebra.Square:
		return SquareColor
	case algebra.Angle:
		return AngleColor
	default:
		return ""
	}
}

// Shape is a drawable element: a [Path], a [Circle], or a [Text].
type Shape interface {
	// Element returns the SVG element name that draws the shape.
	Element() string
	// Extent returns the half-width of the smallest origin-centered square
	// enclosing the shape.
	Extent() float64
	shape()
}

// Path is a filled SVG path.
type Path struct {
	Data   string       `json:"data"   yaml:"data"`
	Color  string       `json:"color"  yaml:"color"`
	Kind   algebra.Kind `json:"-"      yaml:"-"`
	Size   float64      `json:"size"   yaml:"size"`
	extent float64
}

// Circle is a filled SVG circle.
type Circle struct {
	Color string       `json:"color" yaml:"color"`
	CX    float64      `json:"cx"    yaml:"cx"`
	CY    float64      `json:"cy"    yaml:"cy"`
	R     float64      `json:"r"     yaml:"r"`
	Kind  algebra.Kind `json:"-"     yaml:"-"`
	Size  float64      `json:"size"  yaml:"size"`
}

// Text is a text label. The projector does not produce labels; the type is
// reserved for drawing variable leaves.
type Text struct {
	Content string  `json:"content" yaml:"content"`
	X       float64 `json:"x"       yaml:"x"`
	Y       float64 `json:"y"       yaml:"y"`
}

func (Path) shape()   {}
func (Circle) shape() {}
func (Text) shape()   {}

func (Path) Element() string   { return "path" }
func (Circle) Element() string { return "circle" }
func (Text) Element() string   { return "text" }

func (p Path) Extent() float64 { return p.extent }

func (c Circle) Extent() float64 { return max(abs(c.CX), abs(c.CY)) + c.R }

func (t Text) Extent() float64 { return max(abs(t.X), abs(t.Y)) }

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}

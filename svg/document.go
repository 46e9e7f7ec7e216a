package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"slices"
)

// DefaultMargin is the blank border written around the outermost shape.
const DefaultMargin = 0.1

type document struct {
	background string
	margin     float64
	pixels     int
}

// WriteDocument writes a standalone SVG document drawing shapes centered on
// the origin. Shapes are painted from the last to the first, so a list from
// [Project] paints the outermost container first and each inner container
// over it.
func WriteDocument(w io.Writer, shapes []Shape, opts ...DocumentOption) error {
	d := document{margin: DefaultMargin}

	for _, opt := range opts {
		if opt != nil {
			opt(&d)
		}
	}

	extent := d.margin
	for _, s := range shapes {
		if s != nil {
			extent = max(extent, s.Extent()+d.margin)
		}
	}

	if extent <= 0 {
		extent = BaseSize / 2
	}

	var buf bytes.Buffer

	buf.WriteString(`<svg version="1.1"`)

	if d.pixels > 0 {
		fmt.Fprintf(&buf, ` width="%d" height="%d"`, d.pixels, d.pixels)
	}

	fmt.Fprintf(&buf, ` viewBox="%s %s %s %s" xmlns="http://www.w3.org/2000/svg">`+"\n",
		num(-extent), num(-extent), num(2*extent), num(2*extent))

	if d.background != "" {
		fmt.Fprintf(&buf, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
			num(-extent), num(-extent), num(2*extent), num(2*extent), attr(d.background))
	}

	for _, s := range slices.Backward(shapes) {
		writeShape(&buf, s)
	}

	buf.WriteString("</svg>\n")

	_, err := buf.WriteTo(w)

	return err
}

func writeShape(buf *bytes.Buffer, s Shape) {
	switch s := s.(type) {
	case Path:
		fmt.Fprintf(buf, `<path d="%s" fill="%s"/>`+"\n", s.Data, attr(s.Color))
	case Circle:
		fmt.Fprintf(buf, `<circle cx="%s" cy="%s" r="%s" fill="%s"/>`+"\n",
			num(s.CX), num(s.CY), num(s.R), attr(s.Color))
	case Text:
		fmt.Fprintf(buf, `<text x="%s" y="%s" text-anchor="middle">%s</text>`+"\n",
			num(s.X), num(s.Y), attr(s.Content))
	}
}

func attr(s string) string {
	var b bytes.Buffer

	_ = xml.EscapeText(&b, []byte(s))

	return b.String()
}

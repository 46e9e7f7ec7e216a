package svg

import "github.com/ardnew/jalg/log"

// Option configures projection.
type Option func(*projector)

// WithLens draws round containers as a lens instead of a circle.
func WithLens(lens bool) Option {
	return func(p *projector) {
		p.lens = lens
	}
}

// WithLogger sets the structured logger for trace-level debugging.
func WithLogger(logger log.Logger) Option {
	return func(p *projector) {
		p.logger = logger
	}
}

// DocumentOption configures [WriteDocument].
type DocumentOption func(*document)

// WithPixels sets the rendered width and height of the document. Zero leaves
// the size to the viewer.
func WithPixels(px int) DocumentOption {
	return func(d *document) {
		d.pixels = max(px, 0)
	}
}

// WithMargin sets the blank border around the outermost shape, in user units.
func WithMargin(margin float64) DocumentOption {
	return func(d *document) {
		d.margin = max(margin, 0)
	}
}

// WithBackground fills the document with color before painting any shape.
func WithBackground(color string) DocumentOption {
	return func(d *document) {
		d.background = color
	}
}

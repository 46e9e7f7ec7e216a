package svg

import (
	"context"
	"log/slog"

	"github.com/ardnew/jalg/algebra"
	"github.com/ardnew/jalg/log"
)

// Sizes of projected shapes. The i-th container from the innermost has
// size BaseSize + SizeStep*i.
const (
	BaseSize = 0.6
	SizeStep = 0.55
)

type projector struct {
	logger log.Logger
	lens   bool
}

// Project converts a uni-nested form into a list of shapes, one per
// container, ordered from the innermost container outward with strictly
// increasing size.
//
// An implicit top-level container is looked through: with no children it
// projects to an empty list, with one child it projects that child, and
// with more it fails. Below the top level every form must be a bracketed
// container with at most one child. Anything else fails with
// [algebra.ErrUnsupportedShape].
func Project(ctx context.Context, f algebra.Form, opts ...Option) ([]Shape, error) {
	p := &projector{}

	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}

	kinds, err := chain(f)
	if err != nil {
		p.logger.TraceContext(ctx, "project failed", slog.Any("error", err))

		return nil, err
	}

	shapes := make([]Shape, 0, len(kinds))

	for i := range kinds {
		k := kinds[len(kinds)-1-i]
		h := BaseSize + SizeStep*float64(i)

		shapes = append(shapes, p.shape(k, h))
	}

	p.logger.TraceContext(ctx, "project complete",
		slog.Int("shape_count", len(shapes)),
		slog.Bool("lens", p.lens))

	return shapes, nil
}

func (p *projector) shape(k algebra.Kind, h float64) Shape {
	switch k {
	case algebra.Square:
		return SquarePath(h)
	case algebra.Angle:
		return AnglePath(h)
	default:
		if p.lens {
			return LensPath(h)
		}

		return RoundCircle(h)
	}
}

// chain returns the container kinds of f from the outermost inward.
func chain(f algebra.Form) ([]algebra.Kind, error) {
	if c, ok := f.(*algebra.Container); ok && c != nil && c.IsImplicit() {
		switch c.Len() {
		case 0:
			return nil, nil
		case 1:
			f = c.Child(0)
		default:
			return nil, algebra.ErrUnsupportedShape.
				WithDetail("more than one top-level form").
				With(slog.Int("width", c.Len()))
		}
	}

	var kinds []algebra.Kind

	for {
		switch x := f.(type) {
		case *algebra.Variable:
			if x == nil {
				return nil, unsupportedNil(len(kinds))
			}

			return nil, algebra.ErrUnsupportedShape.
				WithDetail("variable "+x.String()+" has no shape").
				With(slog.Int("depth", len(kinds)))

		case *algebra.Container:
			if x == nil {
				return nil, unsupportedNil(len(kinds))
			}

			if x.IsImplicit() {
				return nil, algebra.ErrUnsupportedShape.
					WithDetail("implicit container below the top level").
					With(slog.Int("depth", len(kinds)))
			}

			kinds = append(kinds, x.Kind())

			switch x.Len() {
			case 0:
				return kinds, nil
			case 1:
				f = x.Child(0)
			default:
				return nil, algebra.ErrUnsupportedShape.
					WithDetail("container "+x.Kind().String()+" is not uni-nested").
					With(slog.Int("depth", len(kinds)), slog.Int("width", x.Len()))
			}

		default:
			return nil, unsupportedNil(len(kinds))
		}
	}
}

func unsupportedNil(depth int) error {
	return algebra.ErrUnsupportedShape.
		WithDetail("missing form").
		With(slog.Int("depth", depth))
}

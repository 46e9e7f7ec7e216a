package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/jalg/log"
	"github.com/ardnew/jalg/svg"
)

// SVG projects a uni-nested form onto nested shapes.
type SVG struct {
	Input `embed:""`

	Output string  `default:"-"   help:"Output file or '-' for stdout." short:"o"`
	Lens   bool    `             help:"Draw round containers as a lens."`
	Size   int     `default:"0"  help:"Pixel width and height of the document (0 leaves it to the viewer)."`
	Margin float64 `default:"0.1" help:"Blank border around the outermost shape."`
	List   bool    `             help:"List the projected shapes as YAML instead of writing SVG."`
}

// Run executes the svg command.
func (s *SVG) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	f, err := s.Parse(ctx)
	if err != nil {
		return err
	}

	shapes, err := svg.Project(ctx, f,
		svg.WithLens(s.Lens),
		svg.WithLogger(log.Default()),
	)
	if err != nil {
		return err
	}

	w := stdout(ctx)

	if s.Output != "" && s.Output != stdinSource {
		file, err := os.Create(s.Output)
		if err != nil {
			return ErrWriteOutput.
				With(slog.String("file", s.Output)).
				Wrap(err)
		}
		defer file.Close()

		w = file
	}

	if s.List {
		err = writeShapeList(ctx, w, shapes)
	} else {
		err = svg.WriteDocument(w, shapes,
			svg.WithPixels(s.Size),
			svg.WithMargin(s.Margin),
		)
	}

	if err != nil {
		return ErrWriteOutput.
			With(slog.String("file", s.Output)).
			Wrap(err)
	}

	log.DebugContext(ctx, "projected form",
		slog.Int("shapes", len(shapes)),
		slog.String("output", s.Output))

	return nil
}

// ShapeList returns a YAML-friendly description of each shape.
func ShapeList(shapes []svg.Shape) []yaml.MapSlice {
	list := make([]yaml.MapSlice, 0, len(shapes))

	for _, s := range shapes {
		item := yaml.MapSlice{{Key: "element", Value: s.Element()}}

		switch s := s.(type) {
		case svg.Path:
			item = append(item,
				yaml.MapItem{Key: "kind", Value: s.Kind.String()},
				yaml.MapItem{Key: "size", Value: s.Size},
				yaml.MapItem{Key: "color", Value: s.Color},
				yaml.MapItem{Key: "data", Value: s.Data})

		case svg.Circle:
			item = append(item,
				yaml.MapItem{Key: "kind", Value: s.Kind.String()},
				yaml.MapItem{Key: "size", Value: s.Size},
				yaml.MapItem{Key: "color", Value: s.Color},
				yaml.MapItem{Key: "r", Value: s.R})

		case svg.Text:
			item = append(item,
				yaml.MapItem{Key: "content", Value: s.Content})
		}

		list = append(list, item)
	}

	return list
}

func writeShapeList(ctx context.Context, w io.Writer, shapes []svg.Shape) error {
	b, err := yaml.MarshalContext(ctx, ShapeList(shapes), yaml.Indent(2))
	if err != nil {
		return err
	}

	_, err = w.Write(b)

	return err
}

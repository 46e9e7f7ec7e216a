package cmd

import (
	"context"
	"io"
	"log/slog"

	"github.com/ardnew/jalg/algebra"
)

// Fmt parses input and writes it in the chosen format.
type Fmt struct {
	Native Native `cmd:"" default:"withargs" help:"Format as canonical notation (default)."`
	JSON   JSON   `cmd:""                    help:"Format as JSON."`
	YAML   YAML   `cmd:""                    help:"Format as YAML."`
	Tree   Tree   `cmd:""                    help:"Format as an indented tree."`
}

// Native formats input as canonical notation.
type Native struct {
	Input `embed:""`

	Unwrap bool `help:"Strip the implicit wrapper around a single top-level form."`
}

// Run executes the native command.
func (f *Native) Run(ctx context.Context) error {
	return run(ctx, &f.Input, "native", f.Unwrap, func(w io.Writer, form algebra.Form) error {
		if err := algebra.Format(w, form); err != nil {
			return err
		}

		_, err := io.WriteString(w, "\n")

		return err
	})
}

// JSON formats input as a JSON tree.
type JSON struct {
	Input `embed:""`

	Indent int  `default:"2" help:"Indent width for JSON output" short:"i"`
	Unwrap bool `help:"Strip the implicit wrapper around a single top-level form."`
}

// Run executes the json command.
func (j *JSON) Run(ctx context.Context) error {
	return run(ctx, &j.Input, "json", j.Unwrap, func(w io.Writer, form algebra.Form) error {
		return algebra.FormatJSON(w, form, j.Indent)
	})
}

// YAML formats input as a YAML tree.
type YAML struct {
	Input `embed:""`

	Indent int  `default:"2" help:"Indent width for YAML output" short:"i"`
	Unwrap bool `help:"Strip the implicit wrapper around a single top-level form."`
}

// Run executes the yaml command.
func (y *YAML) Run(ctx context.Context) error {
	return run(ctx, &y.Input, "yaml", y.Unwrap, func(w io.Writer, form algebra.Form) error {
		return algebra.FormatYAML(ctx, w, form, y.Indent)
	})
}

// Tree formats input as an indented tree of containers and variables.
type Tree struct {
	Input `embed:""`

	Unwrap bool `help:"Strip the implicit wrapper around a single top-level form."`
}

// Run executes the tree command.
func (t *Tree) Run(ctx context.Context) error {
	return run(ctx, &t.Input, "tree", t.Unwrap, algebra.Print)
}

func run(
	ctx context.Context,
	in *Input,
	format string,
	unwrap bool,
	write func(io.Writer, algebra.Form) error,
) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	f, err := in.Parse(ctx)
	if err != nil {
		return algebra.WrapError(err).
			With(slog.String("format", format))
	}

	var form algebra.Form = f
	if unwrap {
		form = algebra.Unwrap(f)
	}

	if err := write(stdout(ctx), form); err != nil {
		return ErrWriteOutput.
			With(slog.String("format", format)).
			Wrap(err)
	}

	return nil
}

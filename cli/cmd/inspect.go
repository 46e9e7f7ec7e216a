package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/jalg/algebra"
)

// Inspect reports structural statistics of a form.
//
// Without --where the statistics are written as YAML. With --where the
// expression is evaluated against them and its result is printed, e.g.
//
//	jalg inspect -e '[<()>]' --where 'uninested && depth == 3'
type Inspect struct {
	Input `embed:""`

	Where string `help:"Evaluate EXPR against the statistics and print the result." placeholder:"EXPR" short:"w"`
}

// Run executes the inspect command.
func (i *Inspect) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	f, err := i.Parse(ctx)
	if err != nil {
		return err
	}

	env := algebra.Measure(f).Env()
	w := stdout(ctx)

	if i.Where == "" {
		b, err := yaml.MarshalContext(ctx, env, yaml.Indent(2))
		if err != nil {
			return ErrWriteOutput.Wrap(err)
		}

		_, err = w.Write(b)

		return err
	}

	result, err := Evaluate(i.Where, env)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, result)

	return err
}

// Evaluate compiles source as an expr-lang expression over env and runs it.
func Evaluate(source string, env map[string]any) (any, error) {
	program, err := expr.Compile(source, expr.Env(env))
	if err != nil {
		return nil, ErrExprCompile.
			With(slog.String("source", source)).
			Wrap(err)
	}

	result, err := expr.Run(program, env)
	if err != nil {
		return nil, ErrExprRun.
			With(slog.String("source", source)).
			Wrap(err)
	}

	return result, nil
}

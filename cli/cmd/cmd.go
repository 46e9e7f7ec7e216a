package cmd

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/ardnew/jalg/algebra"
	"github.com/ardnew/jalg/log"
)

// ContextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

type (
	includePathKey struct{}
	streamsKey     struct{}
	streams        struct {
		in  io.Reader
		out io.Writer
	}
)

// WithIncludePath returns a new context.Context carrying the directories
// searched, in order, for relative source paths that do not exist in the
// working directory.
func WithIncludePath(ctx context.Context, dirs []string) context.Context {
	return context.WithValue(ctx, includePathKey{}, dirs)
}

func includePathFrom(ctx context.Context) []string {
	dirs, _ := ctx.Value(includePathKey{}).([]string)

	return dirs
}

// WithStreams returns a new context.Context whose commands read standard
// input from in and write results to out. A nil stream keeps the process
// default.
func WithStreams(ctx context.Context, in io.Reader, out io.Writer) context.Context {
	return context.WithValue(ctx, streamsKey{}, streams{in: in, out: out})
}

func stdin(ctx context.Context) io.Reader {
	if s, ok := ctx.Value(streamsKey{}).(streams); ok && s.in != nil {
		return s.in
	}

	return os.Stdin
}

func stdout(ctx context.Context) io.Writer {
	if s, ok := ctx.Value(streamsKey{}).(streams); ok && s.out != nil {
		return s.out
	}

	return os.Stdout
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// Input selects the form a command operates on.
type Input struct {
	Expr    string `help:"Parse TEXT instead of reading a source."          placeholder:"TEXT" short:"e"`
	Discard bool   `help:"Drop containers left open at the end of input." name:"discard-unclosed"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for stdin." name:"source"`
}

// Parse reads and parses the selected input.
func (in *Input) Parse(ctx context.Context) (*algebra.Container, error) {
	opts := []algebra.Option{
		algebra.WithLogger(log.Default()),
		algebra.WithDiscardUnclosed(in.Discard),
	}

	if in.Expr != "" {
		return algebra.ParseString(ctx, in.Expr, opts...)
	}

	r, name, err := in.open(ctx)
	if err != nil {
		return nil, err
	}

	if c, ok := r.(io.Closer); ok {
		defer c.Close()
	}

	f, err := algebra.ParseReader(ctx, r, opts...)
	if err != nil {
		return nil, algebra.WrapError(err).
			With(slog.String("source", name))
	}

	return f, nil
}

func (in *Input) open(ctx context.Context) (io.Reader, string, error) {
	if in.Source == "" || in.Source == stdinSource {
		return stdin(ctx), stdinSource, nil
	}

	path, err := Resolve(in.Source, includePathFrom(ctx))
	if err != nil {
		return nil, in.Source, ErrOpenSource.
			With(slog.String("source", in.Source)).
			Wrap(err)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, path, ErrOpenSource.
			With(slog.String("source", path)).
			Wrap(err)
	}

	log.DebugContext(ctx, "reading source", slog.String("path", path))

	return file, path, nil
}

// Resolve returns the path of the file named by source. Absolute paths and
// paths that exist relative to the working directory are returned as given.
// Otherwise each directory in include is tried in order.
func Resolve(source string, include []string) (string, error) {
	if source == "" {
		return "", ErrNoInput
	}

	_, err := os.Stat(source)
	if err == nil || filepath.IsAbs(source) || !errors.Is(err, fs.ErrNotExist) {
		return source, err
	}

	for _, dir := range include {
		path := filepath.Join(dir, source)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}

	return source, err
}

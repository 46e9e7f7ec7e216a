package repl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/ardnew/jalg/algebra"
	"github.com/ardnew/jalg/log"
	"github.com/ardnew/jalg/svg"
)

// Output formats selectable with the format command.
var formats = []string{"native", "tree", "json", "yaml"}

const defaultFormat = "native"

// action tells the event loop what to do after a control command.
type action int

const (
	actionNone action = iota
	actionClear
	actionQuit
)

// session holds the evaluation settings shared by every line.
type session struct {
	ctxFunc func() context.Context
	logger  log.Logger
	format  string
	svg     bool
	lens    bool
}

func newSession(ctx context.Context, logger log.Logger, opts ...Option) *session {
	s := &session{
		ctxFunc: func() context.Context { return ctx },
		logger:  logger,
		format:  defaultFormat,
		svg:     true,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	return s
}

// eval parses input and renders the result.
func (s *session) eval(input string) (string, error) {
	f, err := algebra.ParseString(s.ctxFunc(), input,
		algebra.WithLogger(s.logger))
	if err != nil {
		return "", err
	}

	return s.show(f)
}

// show renders f in the current format, followed by its projection when
// enabled.
func (s *session) show(f algebra.Form) (string, error) {
	var (
		b   strings.Builder
		err error
	)

	switch s.format {
	case "tree":
		err = algebra.Print(&b, f)
	case "json":
		err = algebra.FormatJSON(&b, f, 2)
	case "yaml":
		err = algebra.FormatYAML(s.ctxFunc(), &b, f, 2)
	default:
		err = algebra.Format(&b, f)
	}

	if err != nil {
		return "", err
	}

	out := strings.TrimRight(b.String(), "\n")

	if s.svg {
		out += "\n" + s.projection(f)
	}

	return out, nil
}

// projection summarizes the shapes f projects onto, innermost first.
func (s *session) projection(f algebra.Form) string {
	shapes, err := svg.Project(s.ctxFunc(), f,
		svg.WithLens(s.lens),
		svg.WithLogger(s.logger))
	if err != nil {
		return "svg: " + err.Error()
	}

	if len(shapes) == 0 {
		return "svg: (empty)"
	}

	parts := make([]string, 0, len(shapes))

	for _, sh := range shapes {
		switch sh := sh.(type) {
		case svg.Path:
			parts = append(parts, sh.Kind.String()+" "+num(sh.Size))
		case svg.Circle:
			parts = append(parts, sh.Kind.String()+" "+num(sh.Size))
		}
	}

	return "svg: " + strings.Join(parts, " < ")
}

func num(x float64) string { return strconv.FormatFloat(x, 'f', -1, 32) }

// execute runs a control command.
func (s *session) execute(input string) (string, action, error) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return "", actionNone, nil
	}

	cmd, args := parts[0], parts[1:]

	s.logger.TraceContext(s.ctxFunc(), "repl exec command",
		slog.String("command", cmd),
		slog.Any("args", args))

	switch cmd {
	case "q", "quit", "exit":
		return "", actionQuit, nil

	case "h", "help":
		return helpMessage(), actionNone, nil

	case "l", "list":
		return listShapes(), actionNone, nil

	case "c", "clear":
		return "", actionClear, nil

	case "show":
		if len(args) != 1 {
			return "", actionNone, fmt.Errorf("%w: usage: show NAME", ErrInvalidArgument)
		}

		f, ok := algebra.Lookup(args[0])
		if !ok {
			return "", actionNone, fmt.Errorf("%w: %s (try 'list')", ErrUnknownShape, args[0])
		}

		out, err := s.show(f)

		return out, actionNone, err

	case "count":
		if len(args) != 1 {
			return "", actionNone, fmt.Errorf("%w: usage: count N", ErrInvalidArgument)
		}

		n, err := strconv.Atoi(args[0])
		if err != nil {
			return "", actionNone, fmt.Errorf("%w: %q is not an integer", ErrInvalidArgument, args[0])
		}

		f, err := algebra.CountingNumber(n)
		if err != nil {
			return "", actionNone, err
		}

		out, err := s.show(f)

		return out, actionNone, err

	case "format":
		if len(args) == 0 {
			return "format: " + s.format, actionNone, nil
		}

		if !slices.Contains(formats, args[0]) {
			return "", actionNone, fmt.Errorf("%w: %s (one of %s)",
				ErrUnknownFormat, args[0], strings.Join(formats, ", "))
		}

		s.format = args[0]

		return "format: " + s.format, actionNone, nil

	case "svg", "lens":
		flag := &s.svg
		if cmd == "lens" {
			flag = &s.lens
		}

		if len(args) > 0 {
			switch args[0] {
			case "on":
				*flag = true
			case "off":
				*flag = false
			default:
				return "", actionNone, fmt.Errorf("%w: usage: %s on|off", ErrInvalidArgument, cmd)
			}
		}

		return cmd + ": " + onOff(*flag), actionNone, nil

	default:
		return "", actionNone, fmt.Errorf("%w: %s (try 'help')", ErrUnknownCommand, cmd)
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}

	return "off"
}

func listShapes() string {
	var b strings.Builder

	for _, name := range algebra.Names() {
		f, _ := algebra.Lookup(name)
		fmt.Fprintf(&b, "  %-12s %s\n", name, hintStyle.Render(algebra.Render(f)))
	}

	return strings.TrimRight(b.String(), "\n")
}

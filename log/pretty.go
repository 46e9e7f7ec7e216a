package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Styles for pretty printing. lipgloss drops the color codes when the output
// is not a terminal.
//
//nolint:gochecknoglobals
var (
	keyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	stringStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	numberStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	trueStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	falseStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	durationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	timeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	nullStyle     = keyStyle

	levelStyle = map[Level]lipgloss.Style{
		LevelError: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		LevelWarn:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
		LevelInfo:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		LevelDebug: lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		LevelTrace: lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("4")),
	}
)

// styleLevel returns the style of the nearest named level at or below l.
func styleLevel(l Level) lipgloss.Style {
	for _, n := range []Level{LevelError, LevelWarn, LevelInfo, LevelDebug} {
		if l >= n {
			return levelStyle[n]
		}
	}

	return levelStyle[LevelTrace]
}

// prettyHandler implements a colorized handler for log messages. In block
// mode each record is written as an indented, brace-delimited block with one
// attribute per line; otherwise records are single key=value lines.
type prettyHandler struct {
	opts   slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	block  bool
	attrs  []slog.Attr // pre-qualified attributes from WithAttrs
	groups []string
}

func newPrettyTextHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
) *prettyHandler {
	return &prettyHandler{opts: *opts, mu: &sync.Mutex{}, w: w}
}

func newPrettyJSONHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
) *prettyHandler {
	return &prettyHandler{opts: *opts, mu: &sync.Mutex{}, w: w, block: true}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}

	return level >= minLevel
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	fields := make([]slog.Attr, 0, 4+len(h.attrs)+r.NumAttrs())

	if !r.Time.IsZero() {
		fields = h.appendBuiltin(fields, slog.Time(slog.TimeKey, r.Time))
	}

	fields = h.appendBuiltin(fields, slog.Any(slog.LevelKey, r.Level))

	if h.opts.AddSource {
		if src := r.Source(); src != nil && src.File != "" {
			fields = h.appendBuiltin(fields,
				slog.String(slog.SourceKey, fmt.Sprintf("%s:%d", src.File, src.Line)))
		}
	}

	fields = h.appendBuiltin(fields, slog.String(slog.MessageKey, r.Message))
	fields = append(fields, h.attrs...)

	r.Attrs(func(a slog.Attr) bool {
		fields = h.appendAttr(fields, h.groups, a)

		return true
	})

	buf := new(bytes.Buffer)

	if h.block {
		buf.WriteString("{\n")
	}

	for i, a := range fields {
		switch {
		case h.block && i > 0:
			buf.WriteString(",\n  ")
		case h.block:
			buf.WriteString("  ")
		case i > 0:
			buf.WriteByte(' ')
		}

		buf.WriteString(keyStyle.Render(a.Key))

		if h.block {
			buf.WriteString(": ")
		} else {
			buf.WriteByte('=')
		}

		if a.Key == slog.LevelKey {
			buf.WriteString(styleLevel(Level(r.Level)).Render(a.Value.String()))
		} else {
			writeValue(buf, a.Value)
		}
	}

	if h.block {
		buf.WriteString("\n}")
	}

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	c := h.clone()
	for _, a := range attrs {
		c.attrs = c.appendAttr(c.attrs, c.groups, a)
	}

	return c
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := h.clone()
	c.groups = append(c.groups[:len(c.groups):len(c.groups)], name)

	return c
}

func (h *prettyHandler) clone() *prettyHandler {
	c := *h
	c.attrs = c.attrs[:len(c.attrs):len(c.attrs)]

	return &c
}

// appendBuiltin applies ReplaceAttr to one of the record's built-in fields.
// A field replaced with an empty key is omitted.
func (h *prettyHandler) appendBuiltin(dst []slog.Attr, a slog.Attr) []slog.Attr {
	if h.opts.ReplaceAttr != nil {
		a = h.opts.ReplaceAttr(nil, a)
	}

	if a.Key == "" {
		return dst
	}

	if lv, ok := a.Value.Any().(slog.Level); ok {
		a.Value = slog.StringValue(strings.ToUpper(Level(lv).String()))
	}

	return append(dst, a)
}

// appendAttr resolves a and appends it to dst with its key qualified by the
// open groups. Group values are flattened into dotted keys.
func (h *prettyHandler) appendAttr(
	dst []slog.Attr,
	groups []string,
	a slog.Attr,
) []slog.Attr {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		members := a.Value.Group()
		if len(members) == 0 {
			return dst
		}

		inner := groups
		if a.Key != "" {
			inner = append(groups[:len(groups):len(groups)], a.Key)
		}

		for _, m := range members {
			dst = h.appendAttr(dst, inner, m)
		}

		return dst
	}

	if h.opts.ReplaceAttr != nil {
		a = h.opts.ReplaceAttr(groups, a)
		a.Value = a.Value.Resolve()
	}

	if a.Key == "" {
		return dst
	}

	if len(groups) > 0 {
		a.Key = strings.Join(groups, ".") + "." + a.Key
	}

	return append(dst, a)
}

func writeValue(buf *bytes.Buffer, v slog.Value) {
	switch v.Kind() {
	case slog.KindString:
		buf.WriteString(stringStyle.Render(v.String()))

	case slog.KindInt64:
		buf.WriteString(numberStyle.Render(strconv.FormatInt(v.Int64(), 10)))

	case slog.KindUint64:
		buf.WriteString(numberStyle.Render(strconv.FormatUint(v.Uint64(), 10)))

	case slog.KindFloat64:
		buf.WriteString(
			numberStyle.Render(strconv.FormatFloat(v.Float64(), 'g', -1, 64)),
		)

	case slog.KindBool:
		if v.Bool() {
			buf.WriteString(trueStyle.Render("true"))
		} else {
			buf.WriteString(falseStyle.Render("false"))
		}

	case slog.KindDuration:
		buf.WriteString(durationStyle.Render(v.Duration().String()))

	case slog.KindTime:
		buf.WriteString(timeStyle.Render(v.Time().String()))

	default:
		if v.Any() == nil {
			buf.WriteString(nullStyle.Render("null"))

			return
		}

		buf.WriteString(stringStyle.Render(v.String()))
	}
}

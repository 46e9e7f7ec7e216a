package algebra

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
)

// Predefined errors (sentinel values). Errors derived from one of these
// with [Error.With], [Error.WithDetail], [Error.WithPosition],
// [Error.WithSource], or [Error.Wrap] still match it with [errors.Is].
var (
	ErrSyntax           = NewError("syntax error")
	ErrMismatch         = NewError("mismatched container")
	ErrInvalidArgument  = NewError("invalid argument")
	ErrUnsupportedShape = NewError("unsupported shape")
	ErrReadInput        = NewError("failed to read input")
)

// Position identifies a character of parser input.
type Position struct {
	Offset int // byte offset, from 0
	Line   int // from 1
	Column int // in runes, from 1
}

func (p Position) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// Error represents an error with optional position, source snippet, and
// structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	msg    string
	detail string
	err    error  // Wrapped error (for errors.Unwrap)
	base   *Error // sentinel this error was derived from
	pos    *Position
	source string
	attrs  []slog.Attr // Attributes for structured logging
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError wraps a standard error into an Error.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface. The message has the form
//
//	<msg> at <line>:<column>: <detail>: <err>
//
// with each part omitted when unset.
func (e *Error) Error() string {
	var sb strings.Builder

	sb.WriteString(e.msg)

	if e.pos != nil {
		if sb.Len() > 0 {
			sb.WriteString(" at ")
		}

		sb.WriteString(e.pos.String())
	}

	for _, part := range []string{e.detail, e.cause()} {
		if part == "" {
			continue
		}

		if sb.Len() > 0 {
			sb.WriteString(": ")
		}

		sb.WriteString(part)
	}

	return sb.String()
}

func (e *Error) cause() string {
	if e.err == nil {
		return ""
	}

	return e.err.Error()
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is e or the sentinel e was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t == e || (e.base != nil && t == e.base)
}

// Detail returns the human-readable description of this occurrence.
func (e *Error) Detail() string { return e.detail }

// Position returns the input position the error refers to, if any.
func (e *Error) Position() (Position, bool) {
	if e.pos == nil {
		return Position{}, false
	}

	return *e.pos, true
}

// Attr returns the value of the first attribute with the given key.
func (e *Error) Attr(key string) (slog.Value, bool) {
	for _, a := range e.attrs {
		if a.Key == key {
			return a.Value, true
		}
	}

	return slog.Value{}, false
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+5)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.detail != "" {
		attrs = append(attrs, slog.String("detail", e.detail))
	}

	if e.pos != nil {
		attrs = append(attrs,
			slog.Int("line", e.pos.Line),
			slog.Int("column", e.pos.Column))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// derive returns a copy of e remembering the sentinel it came from.
func (e *Error) derive() *Error {
	c := *e
	if c.base == nil {
		c.base = e
	}

	return &c
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	c := e.derive()
	c.err = err

	return c
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	c := e.derive()
	c.attrs = make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(c.attrs, e.attrs)
	copy(c.attrs[len(e.attrs):], attrs)

	return c
}

// WithDetail returns a copy of e described by detail.
func (e *Error) WithDetail(detail string) *Error {
	c := e.derive()
	c.detail = detail

	return c
}

// WithPosition returns a copy of e located at pos.
func (e *Error) WithPosition(pos Position) *Error {
	c := e.derive()
	c.pos = &pos

	return c
}

// WithSource returns a copy of e that retains the input text for [Error.Snippet].
func (e *Error) WithSource(source string) *Error {
	c := e.derive()
	c.source = source

	return c
}

// Snippet returns the source line containing the error position followed by
// a caret under the offending column, or "" if either is unknown.
//
//	  1 | (<[]]
//	          ^
func (e *Error) Snippet() string {
	if e.pos == nil || e.source == "" {
		return ""
	}

	lines := strings.Split(e.source, "\n")
	if e.pos.Line < 1 || e.pos.Line > len(lines) {
		return ""
	}

	num := strconv.Itoa(e.pos.Line)
	line := strings.TrimRight(lines[e.pos.Line-1], "\r")

	var sb strings.Builder

	sb.WriteString("  " + num + " | " + line + "\n")

	// +5 accounts for: 2 leading spaces + " | " (3 chars)
	sb.WriteString(strings.Repeat(" ", len(num)+5))

	if e.pos.Column > 1 {
		sb.WriteString(strings.Repeat(" ", e.pos.Column-1))
	}

	sb.WriteString("^\n")

	return sb.String()
}

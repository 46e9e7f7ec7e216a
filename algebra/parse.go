package algebra

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"unicode"
	"unicode/utf8"

	"github.com/ardnew/jalg/log"
)

// ParseReader parses forms from an io.Reader. See [ParseString].
func ParseReader(
	ctx context.Context,
	r io.Reader,
	opts ...Option,
) (*Container, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrReadInput.Wrap(err)
	}

	return ParseString(ctx, string(data), opts...)
}

// ParseString parses s and returns an implicit container holding the
// top-level forms in order.
//
// Parsing fails with [ErrSyntax] at the first character outside the
// notation, and with [ErrMismatch] at a closing bracket that has nothing to
// close or that does not match the innermost open bracket. A bracket left
// open at the end of input also fails with [ErrMismatch] unless
// [WithDiscardUnclosed] is set.
func ParseString(ctx context.Context, s string, opts ...Option) (*Container, error) {
	p := &parser{input: s, line: 1, col: 1}

	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}

	p.logger.TraceContext(ctx, "parse start",
		slog.Int("source_length", len(s)))

	c, err := p.parse(ctx)
	if err != nil {
		p.logger.TraceContext(ctx, "parse failed", slog.Any("error", err))

		return nil, err
	}

	p.logger.TraceContext(ctx, "parse complete",
		slog.Int("form_count", c.Len()),
		slog.Int("max_depth", p.maxDepth))

	return c, nil
}

// MustParse is like [ParseString] with a background context but panics on
// error. It simplifies initialization of forms from literals.
func MustParse(s string) *Container {
	c, err := ParseString(context.Background(), s)
	if err != nil {
		panic(err)
	}

	return c
}

// frame is an open container awaiting its closing bracket.
type frame struct {
	children []Form
	open     Position
	kind     Kind
}

// parser holds the parser state.
type parser struct {
	input           string
	stack           []frame
	top             []Form
	logger          log.Logger
	pos             int
	line            int
	col             int
	maxDepth        int
	discardUnclosed bool
}

func (p *parser) parse(ctx context.Context) (*Container, error) {
	for {
		p.skipWhitespace()

		if p.eof() {
			break
		}

		pos := p.position()
		r := p.advance()

		switch {
		case r == 'o':
			p.emit(Unit())

		case r == 'J':
			p.emit(J())

		case r >= 'A' && r <= 'Z':
			p.emit(&Variable{name: r})

		case r >= '2' && r <= '9':
			for range r - '0' {
				p.emit(Unit())
			}

		default:
			if k, ok := opening(r); ok {
				p.push(k, pos)

				continue
			}

			if k, ok := closing(r); ok {
				if err := p.pop(k, pos); err != nil {
					return nil, err
				}

				continue
			}

			return nil, ErrSyntax.
				WithPosition(pos).
				WithSource(p.input).
				WithDetail("unrecognized character " + quoteRune(r)).
				With(slog.String("char", string(r)))
		}
	}

	if len(p.stack) > 0 {
		inner := p.stack[len(p.stack)-1]

		if !p.discardUnclosed {
			return nil, ErrMismatch.
				WithPosition(inner.open).
				WithSource(p.input).
				WithDetail("unclosed container, expected " +
					quoteString(inner.kind.Close()) + " before end of input").
				With(
					slog.String("expect", inner.kind.Close()),
					slog.Int("open", len(p.stack)))
		}

		p.logger.TraceContext(ctx, "discard unclosed",
			slog.Int("open", len(p.stack)),
			slog.String("innermost", inner.kind.String()),
			slog.String("position", inner.open.String()))
	}

	return &Container{kind: Implicit, children: p.top}, nil
}

// emit appends f to the innermost open frame, or to the top level.
func (p *parser) emit(f Form) {
	if n := len(p.stack); n > 0 {
		p.stack[n-1].children = append(p.stack[n-1].children, f)

		return
	}

	p.top = append(p.top, f)
}

func (p *parser) push(k Kind, pos Position) {
	p.stack = append(p.stack, frame{kind: k, open: pos})
	p.maxDepth = max(p.maxDepth, len(p.stack))
}

// pop closes the innermost frame with a bracket of kind k found at pos.
func (p *parser) pop(k Kind, pos Position) error {
	n := len(p.stack)
	if n == 0 {
		return ErrMismatch.
			WithPosition(pos).
			WithSource(p.input).
			WithDetail("no container to close with " + quoteString(k.Close())).
			With(slog.String("found", k.Close()))
	}

	inner := p.stack[n-1]
	if inner.kind != k {
		return ErrMismatch.
			WithPosition(pos).
			WithSource(p.input).
			WithDetail("expected " + quoteString(inner.kind.Close()) +
				" to close " + quoteString(inner.kind.Open()) +
				" opened at " + inner.open.String() +
				", found " + quoteString(k.Close())).
			With(
				slog.String("expect", inner.kind.Close()),
				slog.String("found", k.Close()))
	}

	p.stack[n-1] = frame{}
	p.stack = p.stack[:n-1]
	p.emit(&Container{kind: k, children: inner.children})

	return nil
}

func (p *parser) eof() bool {
	return p.pos >= len(p.input)
}

func (p *parser) peek() rune {
	r, _ := utf8.DecodeRuneInString(p.input[p.pos:])

	return r
}

func (p *parser) advance() rune {
	r, size := utf8.DecodeRuneInString(p.input[p.pos:])

	p.pos += size
	if r == '\n' {
		p.line++
		p.col = 1
	} else {
		p.col++
	}

	return r
}

func (p *parser) position() Position {
	return Position{
		Offset: p.pos,
		Line:   p.line,
		Column: p.col,
	}
}

func (p *parser) skipWhitespace() {
	for !p.eof() && unicode.IsSpace(p.peek()) {
		p.advance()
	}
}

func quoteString(s string) string { return "'" + s + "'" }

func quoteRune(r rune) string {
	if !unicode.IsPrint(r) {
		return fmt.Sprintf("%U", r)
	}

	return quoteString(string(r))
}

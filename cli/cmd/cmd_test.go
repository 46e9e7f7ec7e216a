package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ardnew/jalg/algebra"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

// testContext returns a context reading stdin from in and capturing output.
func testContext(in string) (context.Context, *bytes.Buffer) {
	var out bytes.Buffer

	return WithStreams(context.Background(), strings.NewReader(in), &out), &out
}

func TestResolve(t *testing.T) {
	cwd := t.TempDir()
	inc1 := t.TempDir()
	inc2 := t.TempDir()

	t.Chdir(cwd)

	writeFile(t, cwd, "local.jalg", "()")
	writeFile(t, inc2, "shared.jalg", "[]")
	writeFile(t, inc1, "both.jalg", "<>")
	writeFile(t, inc2, "both.jalg", "<>")

	if err := os.Mkdir(filepath.Join(inc1, "shared.jalg"), 0o700); err != nil {
		t.Fatal(err)
	}

	abs := writeFile(t, inc1, "abs.jalg", "o")

	tests := []struct {
		name    string
		source  string
		want    string
		wantErr bool
	}{
		{"working directory", "local.jalg", "local.jalg", false},
		{"include path", "shared.jalg", filepath.Join(inc2, "shared.jalg"), false},
		{"first include wins", "both.jalg", filepath.Join(inc1, "both.jalg"), false},
		{"absolute", abs, abs, false},
		{"missing", "missing.jalg", "missing.jalg", true},
		{"missing absolute", filepath.Join(inc1, "missing.jalg"), filepath.Join(inc1, "missing.jalg"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.source, []string{inc1, inc2})
			if (err != nil) != tt.wantErr {
				t.Fatalf("Resolve(%q) error = %v, wantErr %v", tt.source, err, tt.wantErr)
			}

			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.source, got, tt.want)
			}
		})
	}

	if _, err := Resolve("", nil); !errors.Is(err, ErrNoInput) {
		t.Errorf("expected ErrNoInput, got %v", err)
	}
}

func TestInputParse(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "j.jalg", "[<()>]\n")

	tests := []struct {
		name  string
		input Input
		stdin string
		want  string
	}{
		{"expression", Input{Expr: "( )", Source: "-"}, "[]", "()"},
		{"stdin", Input{Source: "-"}, "<>", "<>"},
		{"empty source reads stdin", Input{}, "2", "()()"},
		{"file", Input{Source: path}, "", "[<()>]"},
		{"include path", Input{Source: "j.jalg"}, "", "[<()>]"},
		{"discard unclosed", Input{Expr: "()(", Discard: true}, "", "()"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := testContext(tt.stdin)
			ctx = WithIncludePath(ctx, []string{dir})

			f, err := tt.input.Parse(ctx)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}

			if got := algebra.Render(f); got != tt.want {
				t.Errorf("Parse rendered %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInputParseErrors(t *testing.T) {
	ctx, _ := testContext("")

	_, err := (&Input{Source: "does-not-exist.jalg"}).Parse(ctx)
	if !errors.Is(err, ErrOpenSource) || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected ErrOpenSource wrapping ErrNotExist, got %v", err)
	}

	_, err = (&Input{Expr: "(]"}).Parse(ctx)
	if !errors.Is(err, algebra.ErrMismatch) {
		t.Errorf("expected ErrMismatch, got %v", err)
	}

	path := writeFile(t, t.TempDir(), "bad.jalg", "(x)")

	_, err = (&Input{Source: path}).Parse(ctx)
	if !errors.Is(err, algebra.ErrSyntax) {
		t.Fatalf("expected ErrSyntax, got %v", err)
	}

	var e *algebra.Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *algebra.Error, got %T", err)
	}

	if v, ok := e.Attr("source"); !ok || v.String() != path {
		t.Errorf("expected source attribute %q, got %v", path, v)
	}
}

func TestErrorIs(t *testing.T) {
	cause := errors.New("disk full")
	err := ErrWriteConfig.With().Wrap(cause)

	if !errors.Is(err, ErrWriteConfig) {
		t.Error("expected derived error to match its sentinel")
	}

	if errors.Is(err, ErrFileExists) {
		t.Error("expected no match for a different sentinel")
	}

	if !errors.Is(err, cause) {
		t.Error("expected wrapped cause to match")
	}

	if got := err.Error(); got != "write configuration file: disk full" {
		t.Errorf("Error() = %q", got)
	}

	if got := NewError("").Wrap(cause).Error(); got != "disk full" {
		t.Errorf("Error() without message = %q", got)
	}
}

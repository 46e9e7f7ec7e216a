package repl

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHistory_PersistsModes(t *testing.T) {
	path := filepath.Join(t.TempDir(), baseHistory)
	h := NewHistory(path)

	for _, e := range []HistoryEntry{
		{"[<()>]", modeEval},
		{"format tree", modeCtrl},
		{"  ", modeEval},
		{"()", modeEval},
		{"()", modeEval},
	} {
		if _, err := h.WriteWithMode(e.Line, e.Mode); err != nil {
			t.Fatalf("WriteWithMode(%q): %v", e.Line, err)
		}
	}

	if h.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d: %v", h.Len(), h.Entries())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if want := "E:[<()>]\nC:format tree\nE:()\n"; string(data) != want {
		t.Errorf("history file = %q, want %q", data, want)
	}

	loaded := NewHistory(path)
	if err := loaded.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	entry, err := loaded.GetEntry(1)
	if err != nil || entry.Line != "format tree" || entry.Mode != modeCtrl {
		t.Errorf("GetEntry(1) = %+v, %v", entry, err)
	}

	if _, err := loaded.GetEntry(3); err != ErrOutOfBounds {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestHistory_DuplicateMovesToEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), baseHistory)
	h := NewHistory(path)

	for _, line := range []string{"()", "[]", "()"} {
		if _, err := h.WriteWithMode(line, modeEval); err != nil {
			t.Fatal(err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if want := "E:[]\nE:()\n"; string(data) != want {
		t.Errorf("history file = %q, want %q", data, want)
	}
}

func TestHistory_Limit(t *testing.T) {
	path := filepath.Join(t.TempDir(), baseHistory)
	h := NewHistory(path)

	for i := range historyLimit + 5 {
		line := strings.Repeat("o", i+1)
		if _, err := h.WriteWithMode(line, modeEval); err != nil {
			t.Fatal(err)
		}
	}

	if h.Len() != historyLimit {
		t.Fatalf("expected %d entries, got %d", historyLimit, h.Len())
	}

	first, _ := h.GetEntry(0)
	if len(first.Line) != 6 {
		t.Errorf("expected oldest entries dropped, first is %q", first.Line)
	}
}

func TestHistory_LoadMissingAndLegacy(t *testing.T) {
	dir := t.TempDir()

	if err := NewHistory(filepath.Join(dir, "missing")).Load(); err != nil {
		t.Errorf("expected missing history to load empty, got %v", err)
	}

	path := filepath.Join(dir, baseHistory)
	if err := os.WriteFile(path, []byte("<>\n\nC:quit\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	h := NewHistory(path)
	if err := h.Load(); err != nil {
		t.Fatal(err)
	}

	entries := h.Entries()
	if len(entries) != 2 || entries[0] != (HistoryEntry{"<>", modeEval}) ||
		entries[1] != (HistoryEntry{"quit", modeCtrl}) {
		t.Errorf("unexpected entries %v", entries)
	}
}

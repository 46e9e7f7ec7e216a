package repl

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/jalg/algebra"
)

// ctrlCommands are the available control-mode commands.
var ctrlCommands = []string{
	"help", "list", "show", "count", "format", "svg", "lens", "clear", "quit",
}

// wordBounds returns the whitespace-delimited word at the cursor position
// and its byte boundaries within input. The word is empty when the cursor
// sits between two spaces or at the end of a trailing space.
func wordBounds(input string, cursor int) (word string, start, end int) {
	cursor = min(max(cursor, 0), len(input))

	// Walk backward from cursor to find word start.
	start = cursor

	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if unicode.IsSpace(r) {
			break
		}

		start -= size
	}

	// Walk forward from cursor to find word end.
	end = cursor

	for end < len(input) {
		r, size := utf8.DecodeRuneInString(input[end:])
		if unicode.IsSpace(r) {
			break
		}

		end += size
	}

	return input[start:end], start, end
}

// argCandidates returns the completions for argument position pos (0 is the
// command itself) of a control command line whose first word is cmd.
func argCandidates(cmd string, pos int) []string {
	if pos == 0 {
		return ctrlCommands
	}

	if pos > 1 {
		return nil
	}

	switch cmd {
	case "show":
		return algebra.Names()
	case "format":
		return formats
	case "svg", "lens":
		return []string{"on", "off"}
	default:
		return nil
	}
}

// computeMatches calculates the fuzzy match results for the word at the
// cursor. Notation typed in eval mode has no completions. In control mode
// the first word completes to a command name; the argument of show, format,
// svg, and lens completes to its accepted values, listed in full while the
// argument is still empty.
func (m model) computeMatches() (
	matches fuzzy.Matches,
	candidates []string,
	wordStart, wordEnd int,
) {
	input := m.input.Value()
	cursor := m.input.Position()

	word, wordStart, wordEnd := wordBounds(input, cursor)

	if m.mode != modeCtrl {
		return nil, nil, wordStart, wordEnd
	}

	fields := strings.Fields(input[:wordStart])
	pos := len(fields)

	var cmd string
	if pos > 0 {
		cmd = fields[0]
	}

	candidates = argCandidates(cmd, pos)
	if len(candidates) == 0 {
		return nil, nil, wordStart, wordEnd
	}

	if word == "" {
		if pos == 0 {
			return nil, nil, wordStart, wordEnd
		}

		matches = make(fuzzy.Matches, len(candidates))
		for i, c := range candidates {
			matches[i] = fuzzy.Match{Str: c, Index: i}
		}

		return matches, candidates, wordStart, wordEnd
	}

	return fuzzy.Find(word, candidates), candidates, wordStart, wordEnd
}

// renderCandidateBar builds the single-line completion bar, ellipsized to fit
// within the given terminal width. Each candidate is rendered with its matched
// characters highlighted. The selected candidate (when tabbing) uses the
// selected style.
func renderCandidateBar(
	matches fuzzy.Matches,
	suggIdx int,
	tabActive bool,
	width int,
) string {
	if len(matches) == 0 || width <= 0 {
		return ""
	}

	const sep = "  "

	sepWidth := lipgloss.Width(sep)
	ellipsis := hintStyle.Render("...")
	ellipsisWidth := lipgloss.Width(ellipsis)

	var b strings.Builder

	used := 0

	for i, match := range matches {
		rendered := renderCandidate(match, tabActive && i == suggIdx)

		entryWidth := lipgloss.Width(rendered)
		if i > 0 {
			entryWidth += sepWidth
		}

		if used+entryWidth+ellipsisWidth > width && i > 0 {
			b.WriteString(sep)
			b.WriteString(ellipsis)

			break
		}

		if i > 0 {
			b.WriteString(sep)
		}

		b.WriteString(rendered)

		used += entryWidth
	}

	return b.String()
}

// renderCandidate renders a single candidate with matched characters
// highlighted.
func renderCandidate(match fuzzy.Match, selected bool) string {
	baseStyle, highlightStyle := suggestionStyle, suggestionStyle.Bold(true)
	if selected {
		baseStyle, highlightStyle = selectedStyle, selectedStyle.Bold(true)
	}

	matchSet := make(map[int]bool, len(match.MatchedIndexes))
	for _, idx := range match.MatchedIndexes {
		matchSet[idx] = true
	}

	var b strings.Builder

	for i, r := range match.Str {
		if matchSet[i] {
			b.WriteString(highlightStyle.Render(string(r)))
		} else {
			b.WriteString(baseStyle.Render(string(r)))
		}
	}

	return b.String()
}

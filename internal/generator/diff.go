package generator

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/sergi/go-diff/diffmatchpatch"
	"golang.org/x/term"
)

var (
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("22"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("52"))
)

// DiffLine is one line of a line-level diff.
type DiffLine struct {
	Op   diffmatchpatch.Operation
	Text string
}

// DiffLines computes a line-level diff between old and newer.
func DiffLines(old, newer []byte) []DiffLine {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(string(old), string(newer))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out []DiffLine
	for _, d := range diffs {
		for _, line := range splitLines(d.Text) {
			out = append(out, DiffLine{Op: d.Type, Text: line})
		}
	}
	return out
}

// RenderDiff formats the diff between old and newer for the terminal.
// Returns "" when the contents are identical.
func RenderDiff(path string, old, newer []byte) string {
	lines := DiffLines(old, newer)

	changed := false
	for _, l := range lines {
		if l.Op != diffmatchpatch.DiffEqual {
			changed = true
			break
		}
	}
	if !changed {
		return ""
	}

	width := getTerminalWidth()

	var buf strings.Builder
	oldName := "a/" + path
	if old == nil {
		oldName = "/dev/null"
	}
	buf.WriteString(headerStyle.Render(fmt.Sprintf("--- %s", oldName)) + "\n")
	buf.WriteString(headerStyle.Render(fmt.Sprintf("+++ b/%s", path)) + "\n")

	for _, l := range lines {
		content := truncateLine(l.Text, width-2)
		switch l.Op {
		case diffmatchpatch.DiffInsert:
			buf.WriteString(addedStyle.Render("+"+content) + "\n")
		case diffmatchpatch.DiffDelete:
			buf.WriteString(removedStyle.Render("-"+content) + "\n")
		default:
			buf.WriteString(" " + content + "\n")
		}
	}

	return buf.String()
}

// splitLines splits content into lines, dropping the empty element left by a final newline
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// truncateLine truncates a line if it's too long, adding "..." indicator
func truncateLine(s string, maxWidth int) string {
	if maxWidth <= 0 {
		maxWidth = 80
	}
	if utf8.RuneCountInString(s) <= maxWidth {
		return s
	}
	if maxWidth < 3 {
		return "..."[:maxWidth]
	}
	runes := []rune(s)
	return string(runes[:maxWidth-3]) + "..."
}

// getTerminalWidth returns the terminal width, defaulting to 80 if unable to detect
func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

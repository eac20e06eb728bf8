// Package cli provides CLI infrastructure for stencil.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
)

// colorEnabled tracks whether color output is enabled.
// It is set based on terminal detection but can be overridden.
var colorEnabled = true

func init() {
	// Disable colors if stdout is not a terminal
	colorEnabled = IsTerminal(os.Stdout)
}

// SetColorEnabled allows overriding the color output setting.
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// ColorEnabled returns whether color output is currently enabled.
func ColorEnabled() bool {
	return colorEnabled
}

// ApplyColorMode applies a config color mode: "always" forces color
// on, "never" forces it off, anything else leaves terminal detection
// in charge.
func ApplyColorMode(mode string) {
	switch mode {
	case "always":
		colorEnabled = true
	case "never":
		colorEnabled = false
	}
}

// IsTerminal returns true if w is a terminal.
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

func colorize(code, s string) string {
	if !colorEnabled {
		return s
	}
	return code + s + colorReset
}

// Green returns s wrapped in green ANSI codes if colors are enabled.
func Green(s string) string { return colorize(colorGreen, s) }

// Red returns s wrapped in red ANSI codes if colors are enabled.
func Red(s string) string { return colorize(colorRed, s) }

// Yellow returns s wrapped in yellow ANSI codes if colors are enabled.
func Yellow(s string) string { return colorize(colorYellow, s) }

// Cyan returns s wrapped in cyan ANSI codes if colors are enabled.
// Used for placeholder variables in story text.
func Cyan(s string) string { return colorize(colorCyan, s) }

// Gray returns s wrapped in gray ANSI codes if colors are enabled.
func Gray(s string) string { return colorize(colorGray, s) }

// Table formats columnar output with automatic column width
// calculation. Cells may contain ANSI color codes; width accounting
// ignores them.
type Table struct {
	rows      [][]string
	colWidths []int
}

// NewTable creates a new empty table.
func NewTable() *Table {
	return &Table{}
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cols ...string) {
	for len(t.colWidths) < len(cols) {
		t.colWidths = append(t.colWidths, 0)
	}
	for i, col := range cols {
		if w := visibleWidth(col); w > t.colWidths[i] {
			t.colWidths[i] = w
		}
	}
	t.rows = append(t.rows, cols)
}

// Render writes the table to w with columns separated by two spaces.
func (t *Table) Render(w io.Writer) {
	for _, row := range t.rows {
		var parts []string
		for i, col := range row {
			if i < len(t.colWidths)-1 {
				padding := t.colWidths[i] - visibleWidth(col)
				parts = append(parts, col+strings.Repeat(" ", padding))
			} else {
				// Last column doesn't need padding
				parts = append(parts, col)
			}
		}
		fmt.Fprintln(w, strings.Join(parts, "  "))
	}
}

// Truncate returns s cut to maxWidth runes, with "..." appended when
// anything was cut. Apply it before colorizing: it is not ANSI-aware.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxWidth {
		return s
	}
	ellipsis := "..."
	if maxWidth <= len(ellipsis) {
		return string(runes[:maxWidth])
	}
	return string(runes[:maxWidth-len(ellipsis)]) + ellipsis
}

// Excerpt returns the first line of s, truncated to maxWidth.
func Excerpt(s string, maxWidth int) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return Truncate(strings.TrimSpace(s), maxWidth)
}

// visibleWidth returns the visible width of s, excluding ANSI escape codes.
func visibleWidth(s string) int {
	width := 0
	inEscape := false

	for _, r := range s {
		if r == '\033' {
			inEscape = true
			continue
		}
		if inEscape {
			if r == 'm' {
				inEscape = false
			}
			continue
		}
		width++
	}

	return width
}

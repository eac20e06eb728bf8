// Package model defines the core data structures for stencil.
package model

// Story is a reusable text template. Text may contain placeholder
// variables in {name} or {{name}} form; Variables maps every
// distinct placeholder name found in Text at last save time to its
// default value (possibly empty).
type Story struct {
	Title     string            `json:"title"`
	Text      string            `json:"text"`
	Variables map[string]string `json:"variables"`
}

// Collection is an ordered list of stories. Insertion order is
// display order.
type Collection []Story

// Theme names a display theme.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
	ThemeGirly Theme = "girly"
)

// DefaultTheme is used when nothing is persisted and no override is
// given.
const DefaultTheme = ThemeDark

// ParseTheme maps a token to a Theme. Any unrecognized token falls
// back to the default.
func ParseTheme(s string) Theme {
	switch Theme(s) {
	case ThemeDark, ThemeLight, ThemeGirly:
		return Theme(s)
	}
	return DefaultTheme
}

// ValidTheme reports whether s names a known theme.
func ValidTheme(s string) bool {
	switch Theme(s) {
	case ThemeDark, ThemeLight, ThemeGirly:
		return true
	}
	return false
}

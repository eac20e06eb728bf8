package template

import (
	"html"
	"strings"
)

// Highlight renders text as HTML in which every placeholder
// occurrence is wrapped in a "variable" span, keeping its original
// bracket spelling. All input text is escaped; only the injected
// span markers are raw markup. Escaping happens per segment, before
// wrapping, so brace characters produced by escaping can never be
// mistaken for placeholder delimiters.
func Highlight(text string) string {
	tokens := scan(text)

	var b strings.Builder
	prev := 0
	for _, tok := range tokens {
		b.WriteString(html.EscapeString(text[prev:tok.start]))
		b.WriteString(`<span class="variable">`)
		b.WriteString(html.EscapeString(text[tok.start:tok.end]))
		b.WriteString(`</span>`)
		prev = tok.end
	}
	b.WriteString(html.EscapeString(text[prev:]))
	return b.String()
}

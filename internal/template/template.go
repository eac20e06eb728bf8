// Package template implements the placeholder grammar used by story
// text: extraction of variable names, value substitution, and
// display highlighting all share one scanner so they never disagree
// about where a placeholder begins and ends.
package template

// A placeholder is {name} or {{name}}, where name is one or more
// characters none of which is '}'. The first '}' closes the most
// recently opened brace group, so names may contain '{' but never
// nest. At a '{{' boundary the doubled reading wins over two
// single-brace readings. Both spellings of the same name refer to
// the same variable.

// token is one placeholder occurrence in a source string.
type token struct {
	start int // byte offset of the opening brace
	end   int // byte offset just past the closing brace(s)
	name  string
}

// scan returns every placeholder occurrence in text, left to right.
// The scanner is deliberately hand-written: precedence at brace
// boundaries is easier to state imperatively than as a pattern.
func scan(text string) []token {
	var tokens []token
	i := 0
	for i < len(text) {
		if text[i] != '{' {
			i++
			continue
		}

		tok, ok := scanAt(text, i)
		if !ok {
			i++
			continue
		}
		tokens = append(tokens, tok)
		i = tok.end
	}
	return tokens
}

// scanAt attempts to read a placeholder starting at the '{' at
// offset i. The doubled-opener reading is tried first; if it yields
// no name (e.g. "{{}"), the same offset is re-read as a single
// opener whose name may begin with '{'.
func scanAt(text string, i int) (token, bool) {
	double := i+1 < len(text) && text[i+1] == '{'

	if double {
		if tok, ok := readName(text, i, i+2, true); ok {
			return tok, true
		}
	}
	return readName(text, i, i+1, false)
}

// readName reads a variable name beginning at nameStart up to the
// next '}'. A doubled opener consumes a doubled closer when one is
// present, but a single '}' still closes it.
func readName(text string, start, nameStart int, double bool) (token, bool) {
	j := nameStart
	for j < len(text) && text[j] != '}' {
		j++
	}
	if j >= len(text) || j == nameStart {
		// Unterminated or empty name: not a placeholder.
		return token{}, false
	}

	end := j + 1
	if double && end < len(text) && text[end] == '}' {
		end++
	}
	return token{start: start, end: end, name: text[nameStart:j]}, true
}

// Extract returns the distinct variable names in text in order of
// first occurrence. {x} and {{x}} count as the same name. Names are
// not trimmed; a whitespace-only name is valid.
func Extract(text string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, tok := range scan(text) {
		if seen[tok.name] {
			continue
		}
		seen[tok.name] = true
		names = append(names, tok.name)
	}
	return names
}

// MissingPolicy decides what an unfilled placeholder becomes during
// substitution. name is the variable name; raw is the placeholder
// exactly as spelled in the source, braces included.
type MissingPolicy func(name, raw string) string

// KeepMissing leaves an unfilled placeholder exactly as written, so
// copy-ready output shows the reader what still needs a value.
func KeepMissing(name, raw string) string { return raw }

// MarkMissing renders an unfilled placeholder as a visibly empty
// slot, distinct from any literal brace spelling in the source.
func MarkMissing(name, raw string) string { return "⟦" + name + "⟧" }

// Substitute replaces every placeholder occurrence in text with its
// value from values. Both spellings of a name receive the same
// value. A name that is absent from values, or mapped to the empty
// string, is handed to missing instead.
func Substitute(text string, values map[string]string, missing MissingPolicy) string {
	tokens := scan(text)
	if len(tokens) == 0 {
		return text
	}

	var b []byte
	prev := 0
	for _, tok := range tokens {
		b = append(b, text[prev:tok.start]...)
		raw := text[tok.start:tok.end]
		if v := values[tok.name]; v != "" {
			b = append(b, v...)
		} else {
			b = append(b, missing(tok.name, raw)...)
		}
		prev = tok.end
	}
	b = append(b, text[prev:]...)
	return string(b)
}

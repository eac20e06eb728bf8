package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty text", "", nil},
		{"no placeholders", "plain text with no braces", nil},
		{"single brace form", "Hi {name}, welcome", []string{"name"}},
		{"double brace form", "Hi {{name}}, welcome", []string{"name"}},
		{"first occurrence order", "{b} then {a} then {c}", []string{"b", "a", "c"}},
		{"duplicates removed", "{a} and {a} and {b}", []string{"a", "b"}},
		{"same name both spellings", "{x} mixed with {{x}}", []string{"x"}},
		{"whitespace name is valid", "odd { } here", []string{" "}},
		{"no trimming", "{ name }", []string{" name "}},
		{"name may contain open brace", "{a{b}", []string{"a{b"}},
		{"empty braces are literal", "{} and {{}}", []string{"{"}},
		{"unterminated is literal", "dangling {name", nil},
		{"first close wins", "{a}b}", []string{"a"}},
		{"adjacent placeholders", "{a}{b}", []string{"a", "b"}},
		{"double preferred over two singles", "{{name}}", []string{"name"}},
		{"double open single close", "{{name}", []string{"name"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.text))
		})
	}
}

func TestExtractIdempotent(t *testing.T) {
	text := "Dear {{name}}, your {item} ships {date}. Thanks, {name}!"
	first := Extract(text)
	second := Extract(text)
	assert.Equal(t, first, second)
}

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		values  map[string]string
		missing MissingPolicy
		want    string
	}{
		{
			name:    "empty text unchanged",
			text:    "",
			values:  map[string]string{"a": "x"},
			missing: KeepMissing,
			want:    "",
		},
		{
			name:    "single occurrence",
			text:    "Hi {name}!",
			values:  map[string]string{"name": "Sam"},
			missing: KeepMissing,
			want:    "Hi Sam!",
		},
		{
			name:    "every occurrence replaced",
			text:    "{a} and {a}",
			values:  map[string]string{"a": "x"},
			missing: KeepMissing,
			want:    "x and x",
		},
		{
			name:    "both spellings share one value",
			text:    "{x} and {{x}}",
			values:  map[string]string{"x": "v"},
			missing: KeepMissing,
			want:    "v and v",
		},
		{
			name:    "missing kept as written",
			text:    "Hi {name}",
			values:  map[string]string{},
			missing: KeepMissing,
			want:    "Hi {name}",
		},
		{
			name:    "missing kept preserves double spelling",
			text:    "Hi {{name}}",
			values:  map[string]string{},
			missing: KeepMissing,
			want:    "Hi {{name}}",
		},
		{
			name:    "empty value counts as missing",
			text:    "Hi {name}",
			values:  map[string]string{"name": ""},
			missing: KeepMissing,
			want:    "Hi {name}",
		},
		{
			name:    "missing marked for preview",
			text:    "Hi {name}",
			values:  map[string]string{},
			missing: MarkMissing,
			want:    "Hi ⟦name⟧",
		},
		{
			name:    "partial fill",
			text:    "{a}-{b}-{a}",
			values:  map[string]string{"a": "1"},
			missing: KeepMissing,
			want:    "1-{b}-1",
		},
		{
			name:    "non-placeholder braces untouched",
			text:    "code {} block {x}",
			values:  map[string]string{"x": "y"},
			missing: KeepMissing,
			want:    "code {} block y",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Substitute(tt.text, tt.values, tt.missing))
		})
	}
}

func TestSubstituteCustomPolicy(t *testing.T) {
	angled := func(name, raw string) string { return "<" + name + ">" }
	got := Substitute("{a} {b}", map[string]string{"a": "x"}, angled)
	assert.Equal(t, "x <b>", got)
}

func TestSubstituteRoundTrip(t *testing.T) {
	// Filling every variable with brace-free values consumes every
	// placeholder: nothing is left to extract.
	text := "Dear {{name}},\n\n{greeting} from {company}. See you {date} and again {date}."
	values := map[string]string{
		"name":     "Ada",
		"greeting": "Hello",
		"company":  "Initech",
		"date":     "Friday",
	}
	result := Substitute(text, values, KeepMissing)
	assert.Empty(t, Extract(result))
}

func TestMarkMissingDistinctFromLiteral(t *testing.T) {
	got := Substitute("Hi {name}", nil, MarkMissing)
	assert.NotContains(t, got, "{name}")
	assert.Contains(t, got, "name")
}

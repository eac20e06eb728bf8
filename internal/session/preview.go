package session

import (
	"github.com/jacksmith/stencil/internal/model"
	"github.com/jacksmith/stencil/internal/repo"
	"github.com/jacksmith/stencil/internal/template"
)

// Preview tracks a fill-and-copy interaction on one story: a draft
// of variable values seeded from the story's saved defaults.
type Preview struct {
	index int
	story model.Story
	names []string
	draft map[string]string
}

// NewPreview opens a preview session on the story at index. The
// draft starts from the story's saved defaults, empty string where
// no default was saved.
func NewPreview(r *repo.Repository, index int) (*Preview, error) {
	s, err := r.At(index)
	if err != nil {
		return nil, err
	}

	names := template.Extract(s.Text)
	draft := make(map[string]string, len(names))
	for _, name := range names {
		draft[name] = s.Variables[name]
	}

	return &Preview{index: index, story: s, names: names, draft: draft}, nil
}

// Story returns the story under preview.
func (p *Preview) Story() model.Story { return p.story }

// Variables returns the story's variable names in first-occurrence
// order.
func (p *Preview) Variables() []string { return p.names }

// HasVariables reports whether the story has any placeholders. A
// story without them needs no fill step: Confirm returns the raw
// text immediately.
func (p *Preview) HasVariables() bool { return len(p.names) > 0 }

// Set updates the draft value for a variable name.
func (p *Preview) Set(name, value string) {
	p.draft[name] = value
}

// Value returns the current draft value for name.
func (p *Preview) Value(name string) string {
	return p.draft[name]
}

// Render substitutes the current draft into the story text, handing
// unfilled placeholders to missing. The on-screen preview uses a
// marking policy so empty slots stay visible.
func (p *Preview) Render(missing template.MissingPolicy) string {
	return template.Substitute(p.story.Text, p.draft, missing)
}

// Confirm produces the copy-ready text: filled values substituted,
// unfilled placeholders left exactly as written so the reader can
// see what is missing. A story with no variables is returned
// untouched, substitution skipped entirely.
func (p *Preview) Confirm() string {
	if !p.HasVariables() {
		return p.story.Text
	}
	return template.Substitute(p.story.Text, p.draft, template.KeepMissing)
}

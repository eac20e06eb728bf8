// Package session holds the transient state of one editing or
// preview interaction. A session's draft lives only until the
// session is saved or discarded; closing without saving never
// touches persisted state.
package session

import (
	"fmt"
	"strings"

	"github.com/jacksmith/stencil/internal/model"
	"github.com/jacksmith/stencil/internal/repo"
	"github.com/jacksmith/stencil/internal/template"
)

// Editor tracks a story being created or edited: the draft title
// and text, plus draft default values for the variables currently
// present in the text.
type Editor struct {
	repo         *repo.Repository
	editingIndex *int // nil when creating a new story

	title    string
	text     string
	names    []string          // extracted from text, first-occurrence order
	defaults map[string]string // draft defaults keyed by variable name
}

// NewEditor starts a session creating a new story.
func NewEditor(r *repo.Repository) *Editor {
	return &Editor{repo: r, defaults: make(map[string]string)}
}

// EditExisting starts a session editing the story at index. The
// draft is seeded from the saved story.
func EditExisting(r *repo.Repository, index int) (*Editor, error) {
	s, err := r.At(index)
	if err != nil {
		return nil, err
	}

	i := index
	e := &Editor{repo: r, editingIndex: &i, defaults: make(map[string]string)}
	e.SetTitle(s.Title)
	e.SetText(s.Text)
	for name, value := range s.Variables {
		e.defaults[name] = value
	}
	return e, nil
}

// Editing reports whether the session edits an existing story, and
// which one.
func (e *Editor) Editing() (int, bool) {
	if e.editingIndex == nil {
		return 0, false
	}
	return *e.editingIndex, true
}

// Title returns the draft title.
func (e *Editor) Title() string { return e.title }

// Text returns the draft template text.
func (e *Editor) Text() string { return e.text }

// SetTitle updates the draft title.
func (e *Editor) SetTitle(title string) {
	e.title = title
}

// SetText updates the draft text and re-extracts the variable names,
// mirroring the live variable list a user sees while typing.
func (e *Editor) SetText(text string) {
	e.text = text
	e.names = template.Extract(text)
}

// Variables returns the variable names currently present in the
// draft text, in first-occurrence order.
func (e *Editor) Variables() []string {
	return e.names
}

// SetDefault records a draft default value for a variable name.
// Names not present in the text are kept too; they simply won't
// appear in the saved story unless the text later mentions them.
func (e *Editor) SetDefault(name, value string) {
	e.defaults[name] = value
}

// Default returns the current draft default for name.
func (e *Editor) Default(name string) string {
	return e.defaults[name]
}

// Save validates the draft, rebuilds the variables map from the
// final text, and persists the story through the repository. On
// validation failure the session state is unchanged and remains
// open for correction.
func (e *Editor) Save() (model.Story, error) {
	title := strings.TrimSpace(e.title)
	text := strings.TrimSpace(e.text)

	if title == "" {
		return model.Story{}, fmt.Errorf("story title must not be empty")
	}
	if text == "" {
		return model.Story{}, fmt.Errorf("story text must not be empty")
	}

	// Recompute from the final text: the saved variables map holds
	// exactly the names present at save time, no stale keys.
	names := template.Extract(text)
	vars := make(map[string]string, len(names))
	for _, name := range names {
		vars[name] = strings.TrimSpace(e.defaults[name])
	}

	story := model.Story{Title: title, Text: text, Variables: vars}

	if e.editingIndex != nil {
		if err := e.repo.Replace(*e.editingIndex, story); err != nil {
			return model.Story{}, err
		}
	} else {
		if err := e.repo.Add(story); err != nil {
			return model.Story{}, err
		}
	}
	return story, nil
}

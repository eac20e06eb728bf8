package session

import (
	"testing"

	"github.com/jacksmith/stencil/internal/kvstore"
	"github.com/jacksmith/stencil/internal/model"
	"github.com/jacksmith/stencil/internal/repo"
	"github.com/jacksmith/stencil/internal/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRepo returns a loaded repository over an in-memory store,
// reset to the given stories.
func newTestRepo(t *testing.T, stories ...model.Story) *repo.Repository {
	t.Helper()
	r := repo.New(kvstore.NewMem(), 365)
	require.NoError(t, r.Load())
	require.NoError(t, r.Reset(model.Collection(stories)))
	return r
}

func TestEditorCreate(t *testing.T) {
	t.Run("save appends a new story", func(t *testing.T) {
		r := newTestRepo(t)

		e := NewEditor(r)
		e.SetTitle("Thanks Note")
		e.SetText("Thanks {name}, see you {day}!")
		e.SetDefault("name", "friend")

		story, err := e.Save()
		require.NoError(t, err)

		assert.Equal(t, "Thanks Note", story.Title)
		assert.Equal(t, map[string]string{"name": "friend", "day": ""}, story.Variables)
		assert.Equal(t, 1, r.Len())
	})

	t.Run("variables track text changes", func(t *testing.T) {
		e := NewEditor(newTestRepo(t))

		e.SetText("Hello {a}")
		assert.Equal(t, []string{"a"}, e.Variables())

		e.SetText("Hello {b} and {c}")
		assert.Equal(t, []string{"b", "c"}, e.Variables())

		e.SetText("no placeholders now")
		assert.Empty(t, e.Variables())
	})

	t.Run("stale defaults are dropped on save", func(t *testing.T) {
		r := newTestRepo(t)
		e := NewEditor(r)
		e.SetTitle("t")
		e.SetText("{keep} and {gone}")
		e.SetDefault("keep", "k")
		e.SetDefault("gone", "g")
		e.SetText("{keep} only")

		story, err := e.Save()
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"keep": "k"}, story.Variables)
	})

	t.Run("empty title blocks save and keeps session state", func(t *testing.T) {
		r := newTestRepo(t)
		e := NewEditor(r)
		e.SetTitle("   ")
		e.SetText("some body")

		_, err := e.Save()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "title")
		assert.Equal(t, 0, r.Len())

		// Correct and retry within the same session.
		e.SetTitle("fixed")
		_, err = e.Save()
		require.NoError(t, err)
		assert.Equal(t, 1, r.Len())
	})

	t.Run("empty text blocks save", func(t *testing.T) {
		r := newTestRepo(t)
		e := NewEditor(r)
		e.SetTitle("title")
		e.SetText("\n\t ")

		_, err := e.Save()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "text")
		assert.Equal(t, 0, r.Len())
	})

	t.Run("title and text are trimmed on save", func(t *testing.T) {
		r := newTestRepo(t)
		e := NewEditor(r)
		e.SetTitle("  padded  ")
		e.SetText("  body {x}  ")

		story, err := e.Save()
		require.NoError(t, err)
		assert.Equal(t, "padded", story.Title)
		assert.Equal(t, "body {x}", story.Text)
	})
}

func TestEditorEditExisting(t *testing.T) {
	base := model.Story{
		Title:     "Original",
		Text:      "Hi {name}",
		Variables: map[string]string{"name": "Sam"},
	}

	t.Run("draft is seeded from the saved story", func(t *testing.T) {
		r := newTestRepo(t, base)

		e, err := EditExisting(r, 0)
		require.NoError(t, err)

		idx, editing := e.Editing()
		assert.True(t, editing)
		assert.Equal(t, 0, idx)
		assert.Equal(t, "Original", e.Title())
		assert.Equal(t, "Hi {name}", e.Text())
		assert.Equal(t, "Sam", e.Default("name"))
	})

	t.Run("save replaces in place", func(t *testing.T) {
		other := model.Story{Title: "Other", Text: "x"}
		r := newTestRepo(t, base, other)

		e, err := EditExisting(r, 0)
		require.NoError(t, err)
		e.SetTitle("Renamed")

		_, err = e.Save()
		require.NoError(t, err)

		require.Equal(t, 2, r.Len())
		s, err := r.At(0)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", s.Title)
		s, err = r.At(1)
		require.NoError(t, err)
		assert.Equal(t, "Other", s.Title)
	})

	t.Run("stale index is reported", func(t *testing.T) {
		r := newTestRepo(t, base)
		_, err := EditExisting(r, 5)
		assert.ErrorIs(t, err, repo.ErrIndexOutOfRange)
	})
}

func TestPreview(t *testing.T) {
	story := model.Story{
		Title:     "Meeting Invitation",
		Text:      "Hi {name},\n\nLet's discuss {topic}.\nWhen: {date} at {time}",
		Variables: map[string]string{"name": "", "topic": "", "date": "", "time": ""},
	}

	t.Run("draft seeds from saved defaults", func(t *testing.T) {
		withDefault := story
		withDefault.Variables = map[string]string{"name": "Sam", "topic": "", "date": "", "time": ""}
		r := newTestRepo(t, withDefault)

		p, err := NewPreview(r, 0)
		require.NoError(t, err)
		assert.Equal(t, "Sam", p.Value("name"))
		assert.Equal(t, "", p.Value("topic"))
	})

	t.Run("render marks unfilled slots", func(t *testing.T) {
		r := newTestRepo(t, story)
		p, err := NewPreview(r, 0)
		require.NoError(t, err)
		p.Set("name", "Sam")

		got := p.Render(template.MarkMissing)
		assert.Contains(t, got, "Hi Sam,")
		assert.Contains(t, got, "⟦topic⟧")
		assert.NotContains(t, got, "{topic}")
	})

	t.Run("confirm leaves unfilled placeholders as written", func(t *testing.T) {
		r := newTestRepo(t, story)
		p, err := NewPreview(r, 0)
		require.NoError(t, err)
		p.Set("name", "Sam")
		p.Set("topic", "roadmap")

		got := p.Confirm()
		assert.Contains(t, got, "Hi Sam,")
		assert.Contains(t, got, "discuss roadmap.")
		assert.Contains(t, got, "{date}")
		assert.Contains(t, got, "{time}")
	})

	t.Run("zero variables confirm returns raw text", func(t *testing.T) {
		raw := model.Story{Title: "Plain", Text: "No vars here, not even {}"}
		r := newTestRepo(t, raw)

		p, err := NewPreview(r, 0)
		require.NoError(t, err)
		assert.False(t, p.HasVariables())
		assert.Equal(t, raw.Text, p.Confirm())
	})

	t.Run("closing a preview changes nothing persisted", func(t *testing.T) {
		r := newTestRepo(t, story)
		p, err := NewPreview(r, 0)
		require.NoError(t, err)
		p.Set("name", "discarded")

		s, err := r.At(0)
		require.NoError(t, err)
		assert.Equal(t, "", s.Variables["name"])
	})

	t.Run("stale index is reported", func(t *testing.T) {
		r := newTestRepo(t, story)
		_, err := NewPreview(r, 3)
		assert.ErrorIs(t, err, repo.ErrIndexOutOfRange)
	})
}

func TestMeetingInvitationEndToEnd(t *testing.T) {
	// Seed the repository, open the Meeting Invitation, fill two of
	// its seven variables, and confirm.
	r := repo.New(kvstore.NewMem(), 365)
	require.NoError(t, r.Load())

	p, err := NewPreview(r, 1)
	require.NoError(t, err)
	require.Equal(t, "Meeting Invitation", p.Story().Title)
	require.Equal(t,
		[]string{"name", "topic", "date", "time", "duration", "location", "senderName"},
		p.Variables())

	p.Set("name", "Sam")
	p.Set("topic", "roadmap")

	got := p.Confirm()
	assert.Contains(t, got, "Hi Sam,")
	assert.Contains(t, got, "discuss roadmap.")
	assert.Contains(t, got, "{date}")
	assert.Contains(t, got, "{time}")
	assert.Contains(t, got, "{duration}")
	assert.Contains(t, got, "{location}")
	assert.Contains(t, got, "{senderName}")
}

// Package repo owns the persisted story collection and the saved
// theme. All mutation of the collection goes through it; callers
// never reorder or rewrite the slice directly.
package repo

import (
	"errors"

	"github.com/jacksmith/stencil/internal/kvstore"
	"github.com/jacksmith/stencil/internal/model"
)

const (
	// storiesKey holds the serialized collection blob.
	storiesKey = "stories"
	// themeKey holds the active theme name.
	themeKey = "theme"
)

// ErrIndexOutOfRange indicates a story index that does not exist in
// the current collection. The operation that reported it was a
// no-op: neither memory nor the store changed.
var ErrIndexOutOfRange = errors.New("story index out of range")

// Repository mediates between the in-memory collection and the
// key-value store.
type Repository struct {
	store   kvstore.Store
	ttlDays int
	stories model.Collection
}

// New returns a Repository over store. ttlDays is applied to every
// write; zero or negative means entries never expire.
func New(store kvstore.Store, ttlDays int) *Repository {
	return &Repository{store: store, ttlDays: ttlDays}
}

// Load reads the collection from the store. An absent blob installs
// and persists the built-in seed stories. A corrupt blob resets the
// in-memory collection to empty without re-seeding and without
// overwriting the stored value; the next save replaces it.
func (r *Repository) Load() error {
	blob, ok := r.store.Get(storiesKey)
	if !ok {
		r.stories = Seed()
		return r.save()
	}

	c, err := model.DecodeCollection(blob)
	if err != nil {
		r.stories = model.Collection{}
		return nil
	}
	r.stories = c
	return nil
}

// save serializes the collection and writes it back. Called after
// every mutation so the store is never stale relative to memory.
func (r *Repository) save() error {
	blob, err := model.EncodeCollection(r.stories)
	if err != nil {
		return err
	}
	return r.store.Set(storiesKey, blob, r.ttlDays)
}

// Stories returns the current collection in display order. The
// returned slice is the repository's own; treat it as read-only.
func (r *Repository) Stories() model.Collection {
	return r.stories
}

// Len returns the number of stories.
func (r *Repository) Len() int {
	return len(r.stories)
}

// At returns the story at index i.
func (r *Repository) At(i int) (model.Story, error) {
	if i < 0 || i >= len(r.stories) {
		return model.Story{}, ErrIndexOutOfRange
	}
	return r.stories[i], nil
}

// Add appends a story and persists.
func (r *Repository) Add(s model.Story) error {
	r.stories = append(r.stories, s)
	return r.save()
}

// Replace overwrites the story at index i and persists. An
// out-of-range index is a no-op reported as ErrIndexOutOfRange.
func (r *Repository) Replace(i int, s model.Story) error {
	if i < 0 || i >= len(r.stories) {
		return ErrIndexOutOfRange
	}
	r.stories[i] = s
	return r.save()
}

// RemoveAt deletes the story at index i, preserving the relative
// order of the rest, and persists. An out-of-range index is a no-op
// reported as ErrIndexOutOfRange.
func (r *Repository) RemoveAt(i int) error {
	if i < 0 || i >= len(r.stories) {
		return ErrIndexOutOfRange
	}
	r.stories = append(r.stories[:i], r.stories[i+1:]...)
	return r.save()
}

// Clear removes every story and persists the empty collection.
func (r *Repository) Clear() error {
	r.stories = model.Collection{}
	return r.save()
}

// Reset replaces the whole collection and persists. Used to restore
// the built-in examples.
func (r *Repository) Reset(c model.Collection) error {
	if c == nil {
		c = model.Collection{}
	}
	r.stories = c
	return r.save()
}

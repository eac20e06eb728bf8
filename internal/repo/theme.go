package repo

import "github.com/jacksmith/stencil/internal/model"

// ResolveTheme determines the active theme and persists it.
// Precedence: a non-empty override wins (an unknown override falls
// back to the default rather than to the persisted value), then the
// persisted theme, then the default. The resolved value is always
// written back so the store reflects the active theme.
func (r *Repository) ResolveTheme(override string) (model.Theme, error) {
	var theme model.Theme
	switch {
	case override != "":
		theme = model.ParseTheme(override)
	default:
		if saved, ok := r.store.Get(themeKey); ok {
			theme = model.ParseTheme(saved)
		} else {
			theme = model.DefaultTheme
		}
	}

	if err := r.store.Set(themeKey, string(theme), r.ttlDays); err != nil {
		return theme, err
	}
	return theme, nil
}

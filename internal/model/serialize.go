package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrCorrupt indicates a persisted collection blob that cannot be
// decoded. Callers recover by treating the collection as empty.
var ErrCorrupt = errors.New("stored collection is corrupt")

// EncodeCollection serializes a collection to the opaque blob string
// persisted in the key-value store. The layout is a JSON array of
// story objects.
func EncodeCollection(c Collection) (string, error) {
	if c == nil {
		c = Collection{}
	}
	data, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to encode collection: %w", err)
	}
	return string(data), nil
}

// DecodeCollection parses a persisted blob back into a collection.
// A blob that fails to parse returns ErrCorrupt.
func DecodeCollection(blob string) (Collection, error) {
	var c Collection
	if err := json.Unmarshal([]byte(blob), &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return c, nil
}

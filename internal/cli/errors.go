package cli

import "fmt"

// NotFoundError indicates a story index that does not exist.
type NotFoundError struct {
	Index int // 1-based index as the user typed it
	Count int // current collection size
}

func (e *NotFoundError) Error() string {
	if e.Count == 0 {
		return fmt.Sprintf("story %d not found (the collection is empty)", e.Index)
	}
	return fmt.Sprintf("story %d not found (have 1-%d)", e.Index, e.Count)
}

// ValidationError indicates invalid user input.
type ValidationError struct {
	Field   string // the field or flag that failed validation
	Message string // what went wrong
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

// FormatError returns a user-friendly error message.
// It prefixes the error with "error: " for consistent CLI output.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return "error: " + err.Error()
}

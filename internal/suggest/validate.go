package suggest

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotArray means the text did not parse as a JSON array.
	ErrNotArray = errors.New("output is not a JSON array")
	// ErrNotStrings means the array held a non-string element.
	ErrNotStrings = errors.New("array contains a non-string element")
	// ErrNoElements means no non-empty strings remained after trimming.
	ErrNoElements = errors.New("array has no non-empty elements")
)

// ValidateArray parses sanitized text as a JSON array of strings. Elements
// are trimmed and empties dropped; order is preserved. No upper bound is
// enforced: the 3-5 target is a prompt-level request, not an invariant.
func ValidateArray(text string) ([]string, error) {
	var parsed any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotArray, err)
	}
	items, ok := parsed.([]any)
	if !ok {
		return nil, ErrNotArray
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, ErrNotStrings
		}
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil, ErrNoElements
	}
	return out, nil
}

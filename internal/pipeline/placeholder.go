package pipeline

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingPlaceholder matches any MissingPlaceholderError via errors.Is.
var ErrMissingPlaceholder = errors.New("missing placeholder")

// MissingPlaceholderError reports a document whose template lacks a tag that a
// substitution requires. The template drifted and must be fixed by hand.
type MissingPlaceholderError struct {
	Path        string
	Placeholder string
}

func (e *MissingPlaceholderError) Error() string {
	return fmt.Sprintf("cannot replace %s in %s due to missing placeholder", e.Placeholder, e.Path)
}

// Is makes errors.Is(err, ErrMissingPlaceholder) true.
func (e *MissingPlaceholderError) Is(target error) bool {
	return target == ErrMissingPlaceholder
}

// AssertPlaceholder returns placeholder when src contains it, so callers can
// pass the result straight to a replace.
func AssertPlaceholder(src, path, placeholder string) (string, error) {
	if !strings.Contains(src, placeholder) {
		return "", &MissingPlaceholderError{Path: path, Placeholder: placeholder}
	}
	return placeholder, nil
}

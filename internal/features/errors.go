package features

import (
	"errors"
	"fmt"
)

// ErrUnmappedCategory is matched by every UnmappedCategoryError.
var ErrUnmappedCategory = errors.New("unmapped category")

// UnmappedCategoryError reports a categorical input with no lookup entry.
type UnmappedCategoryError struct {
	Field string
	Value string
}

func (e *UnmappedCategoryError) Error() string {
	return fmt.Sprintf("%s: no mapping for %q", e.Field, e.Value)
}

func (e *UnmappedCategoryError) Is(target error) bool {
	return target == ErrUnmappedCategory
}

// lookup resolves value in table or returns an UnmappedCategoryError for field.
func lookup[T any](table map[string]T, field, value string) (T, error) {
	v, ok := table[value]
	if !ok {
		var zero T
		return zero, &UnmappedCategoryError{Field: field, Value: value}
	}
	return v, nil
}

package optional

import (
	"bytes"
	"encoding/json"
)

// Field is a tri-state JSON value used by partial-update requests. It
// distinguishes a key that was absent from the payload, a key set to an
// explicit null, and a key carrying a concrete value. Absent fields must
// never reach the generated change-set; explicit null clears a nullable
// column.
type Field[T any] struct {
	value   *T
	present bool
}

// Of returns a Field carrying the given value.
func Of[T any](v T) Field[T] {
	return Field[T]{value: &v, present: true}
}

// Null returns a Field that was explicitly set to null.
func Null[T any]() Field[T] {
	return Field[T]{present: true}
}

// UnmarshalJSON is only invoked by encoding/json when the key is present,
// so a zero Field keeps present == false for omitted keys.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.present = true
	if bytes.Equal(data, []byte("null")) {
		f.value = nil
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	f.value = &v
	return nil
}

// Present reports whether the key appeared in the payload at all.
func (f Field[T]) Present() bool {
	return f.present
}

// Null reports whether the key was set to an explicit null.
func (f Field[T]) Null() bool {
	return f.present && f.value == nil
}

// Value returns the carried value and whether one exists.
func (f Field[T]) Value() (T, bool) {
	if f.value == nil {
		var zero T
		return zero, false
	}
	return *f.value, true
}

// Ptr returns a pointer to the carried value, nil for absent or null fields.
func (f Field[T]) Ptr() *T {
	return f.value
}

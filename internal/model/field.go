// Package model defines the core domain models used throughout the application.
package model

// Field is an optional attribute value. The zero value is unknown.
// It replaces the string "N/A" sentinel the source systems use, so numeric
// attributes stay numeric and absence is explicit rather than exceptional.
type Field[T any] struct {
	Value T
	Known bool
}

// Known wraps a value as a present field.
func Known[T any](v T) Field[T] {
	return Field[T]{Value: v, Known: true}
}

// Unknown returns an absent field.
func Unknown[T any]() Field[T] {
	return Field[T]{}
}

// Or returns the field value, or fallback when the field is unknown.
func (f Field[T]) Or(fallback T) T {
	if f.Known {
		return f.Value
	}
	return fallback
}

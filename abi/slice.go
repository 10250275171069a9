package abi

import "unsafe"

// Slice is an immutable slice view with a fixed pointer+length layout.
// Like Str, the backing array belongs to the producing side and must
// not be retained past the session.
type Slice[T any] struct {
	data *T
	len  int
}

// MakeSlice wraps a Go slice without copying it. The capacity is
// deliberately dropped: the view is read-only.
func MakeSlice[T any](s []T) Slice[T] {
	if len(s) == 0 {
		return Slice[T]{}
	}
	return Slice[T]{data: unsafe.SliceData(s), len: len(s)}
}

// Get materializes the view as a Go slice over the same backing array.
func (s Slice[T]) Get() []T {
	if s.len == 0 {
		return nil
	}
	return unsafe.Slice(s.data, s.len)
}

// Len returns the number of elements in the view.
func (s Slice[T]) Len() int {
	return s.len
}

// IsEmpty reports whether the view contains no elements.
func (s Slice[T]) IsEmpty() bool {
	return s.len == 0
}

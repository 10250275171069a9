package abi

import "unsafe"

// Str is an immutable string view with a fixed pointer+length layout.
// The referenced bytes are owned by the producing side and stay valid
// for the current analysis session only.
type Str struct {
	data *byte
	len  int
}

// MakeStr wraps a Go string without copying it.
func MakeStr(s string) Str {
	if len(s) == 0 {
		return Str{}
	}
	return Str{data: unsafe.StringData(s), len: len(s)}
}

// String materializes the view as a Go string header over the same bytes.
func (s Str) String() string {
	if s.len == 0 {
		return ""
	}
	return unsafe.String(s.data, s.len)
}

// Len returns the number of bytes in the view.
func (s Str) Len() int {
	return s.len
}

// IsEmpty reports whether the view contains no bytes.
func (s Str) IsEmpty() bool {
	return s.len == 0
}

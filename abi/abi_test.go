package abi

import (
	"testing"
)

func TestStr_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "empty", in: ""},
		{name: "ascii", in: "static ANSWER"},
		{name: "multibyte", in: "дiагностика"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := MakeStr(tt.in)
			if got := s.String(); got != tt.in {
				t.Errorf("String() = %q, want %q", got, tt.in)
			}
			if s.Len() != len(tt.in) {
				t.Errorf("Len() = %d, want %d", s.Len(), len(tt.in))
			}
			if s.IsEmpty() != (len(tt.in) == 0) {
				t.Errorf("IsEmpty() = %v for input of length %d", s.IsEmpty(), len(tt.in))
			}
		})
	}
}

func TestSlice_RoundTrip(t *testing.T) {
	in := []uint32{3, 1, 4, 1, 5}
	s := MakeSlice(in)
	if s.Len() != len(in) {
		t.Fatalf("Len() = %d, want %d", s.Len(), len(in))
	}
	out := s.Get()
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("Get()[%d] = %d, want %d", i, out[i], in[i])
		}
	}

	var empty Slice[uint32]
	if !empty.IsEmpty() {
		t.Error("zero Slice should be empty")
	}
	if empty.Get() != nil {
		t.Error("Get() on empty slice should be nil")
	}
}

func TestSlice_SharesBacking(t *testing.T) {
	in := []int{1, 2, 3}
	out := MakeSlice(in).Get()
	in[1] = 42
	if out[1] != 42 {
		t.Error("view should alias the original backing array")
	}
}

func TestOption(t *testing.T) {
	some := Some("snippet")
	if !some.IsSome() {
		t.Error("Some should be present")
	}
	if v, ok := some.Get(); !ok || v != "snippet" {
		t.Errorf("Get() = %q, %v", v, ok)
	}
	if some.OrElse("..") != "snippet" {
		t.Error("OrElse should return the wrapped value")
	}

	none := None[string]()
	if none.IsSome() {
		t.Error("None should be absent")
	}
	if _, ok := none.Get(); ok {
		t.Error("Get() on None should report absence")
	}
	if none.OrElse("..") != ".." {
		t.Error("OrElse should fall back to the default")
	}
}

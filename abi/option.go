package abi

// Option is an optional value with a fixed value+flag layout. It
// replaces (T, bool) returns in callback signatures, where the
// multi-value convention is not part of the protocol surface.
type Option[T any] struct {
	value T
	some  bool
}

// Some wraps a present value.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

// None returns the absent value.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.some
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// OrElse returns the value if present, otherwise def.
func (o Option[T]) OrElse(def T) T {
	if o.some {
		return o.value
	}
	return def
}

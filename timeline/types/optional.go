package types

type (
	// Optional is a value that may be absent. The zero value is empty.
	Optional[T any] struct {
		value  T
		exists bool
	}
)

func NewOptional[T any](value T) Optional[T] {
	return Optional[T]{value: value, exists: true}
}

func NewEmptyOptional[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) Unpack() (T, bool) {
	return o.value, o.exists
}

func (o Optional[T]) Value() T {
	if !o.exists {
		panic("access value of empty Optional")
	}
	return o.value
}

func (o Optional[T]) Empty() bool {
	return !o.exists
}

func (o *Optional[T]) Set(value T) {
	o.value = value
	o.exists = true
}

func (o *Optional[T]) Clear() {
	var zero T
	o.value = zero
	o.exists = false
}

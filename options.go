package dlist

// Option is a list configuration option.
type Option[V any] interface {
	apply(*listOptions[V])
}

type listOptions[V any] struct {
	evict    func(V)
	capacity int
}

func newDefaultListOptions[V any]() listOptions[V] {
	return listOptions[V]{
		evict:    nil,
		capacity: 0,
	}
}

// WithCapacity option configures the list with specified capacity.
// When a push exceeds the capacity, the element at the opposite end is popped.
//
// The zero value configures unbounded capacity.
func WithCapacity[V any](capacity int) Option[V] {
	if capacity < 0 {
		panic("dlist: invalid capacity")
	}

	return funcOption[V](func(opts *listOptions[V]) {
		opts.capacity = capacity
	})
}

// WithEvictFunc option configures a callback that receives values popped by capacity overflow.
func WithEvictFunc[V any](f func(value V)) Option[V] {
	return funcOption[V](func(opts *listOptions[V]) {
		opts.evict = f
	})
}

type funcOption[V any] func(*listOptions[V])

func (o funcOption[V]) apply(opts *listOptions[V]) {
	o(opts)
}

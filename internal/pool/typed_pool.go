package pool

import "sync"

// TypedPool is a generic sync.Pool wrapper for reusing typed value slices.
//
// Generalizes slice_pool.go's hand-written per-type pools (int64, float64,
// string) into a single generic implementation so every primitive reader
// specialization (§4.2's 11 primitive kinds) can share the same pooling
// strategy without duplicating boilerplate per type.
type TypedPool[T any] struct {
	pool sync.Pool
}

// NewTypedPool creates a pool of slices of T.
func NewTypedPool[T any]() *TypedPool[T] {
	return &TypedPool[T]{
		pool: sync.Pool{
			New: func() any {
				s := make([]T, 0, 16)
				return &s
			},
		},
	}
}

// Get retrieves a zero-length slice with retained capacity from the pool.
func (p *TypedPool[T]) Get() []T {
	ptr, _ := p.pool.Get().(*[]T)
	return (*ptr)[:0]
}

// Put returns a slice to the pool for reuse. The slice's contents are not
// cleared; callers must not retain external references to it.
func (p *TypedPool[T]) Put(s []T) {
	p.pool.Put(&s)
}

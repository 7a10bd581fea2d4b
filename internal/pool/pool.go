// Package pool provides a small generic object pool used to reuse
// per-parse scratch state and reduce GC pressure on hot parse paths.
package pool

import "sync"

// Pool is a type-safe wrapper over sync.Pool. Construct with New or
// NewWithReset; the zero value is not usable.
type Pool[T any] struct {
	pool  sync.Pool
	reset func(*T) // optional, called before an object is reused
}

// New creates a pool that produces objects from factory.
func New[T any](factory func() *T) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any { return factory() },
		},
	}
}

// NewWithReset creates a pool whose objects pass through reset on every
// Get, so callers always receive a clean object.
func NewWithReset[T any](factory func() *T, reset func(*T)) *Pool[T] {
	p := New(factory)
	p.reset = reset
	return p
}

// Get retrieves an object from the pool or creates a new one.
func (p *Pool[T]) Get() *T {
	obj := p.pool.Get().(*T)
	if p.reset != nil {
		p.reset(obj)
	}
	return obj
}

// Put returns an object to the pool for reuse.
func (p *Pool[T]) Put(obj *T) {
	if obj == nil {
		return
	}
	p.pool.Put(obj)
}

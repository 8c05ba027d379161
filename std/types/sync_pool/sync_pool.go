// Package sync_pool wraps sync.Pool with a typed interface.
package sync_pool

import "sync"

// SyncPool is a typed sync.Pool whose objects are reset on every Get.
type SyncPool[T any] struct {
	pool  sync.Pool
	reset func(T)
}

func New[T any](init func() T, reset func(T)) *SyncPool[T] {
	p := &SyncPool[T]{reset: reset}
	p.pool.New = func() any { return init() }
	return p
}

// Get returns a reset object, allocating one if the pool is empty.
func (p *SyncPool[T]) Get() T {
	val := p.pool.Get().(T)
	if p.reset != nil {
		p.reset(val)
	}
	return val
}

func (p *SyncPool[T]) Put(val T) {
	p.pool.Put(val)
}

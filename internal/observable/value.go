// Package observable provides a settable value cell that notifies
// subscribers when the value changes.
package observable

import "sync"

// Value holds a single value of type T. Writers call Set; readers either Get
// the current value or Subscribe to changes. Setting an equal value does not
// notify subscribers.
type Value[T comparable] struct {
	mu     sync.RWMutex
	value  T
	nextID int
	subs   map[int]func(T)
}

// NewValue returns a cell holding initial.
func NewValue[T comparable](initial T) *Value[T] {
	return &Value[T]{value: initial, subs: make(map[int]func(T))}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.value
}

// Set stores value and notifies subscribers if it differs from the current
// one. Subscribers run synchronously on the caller's goroutine after the lock
// is released.
func (v *Value[T]) Set(value T) {
	v.mu.Lock()
	if v.value == value {
		v.mu.Unlock()
		return
	}
	v.value = value
	handlers := make([]func(T), 0, len(v.subs))
	for id := 0; id <= v.nextID; id++ {
		if fn, ok := v.subs[id]; ok {
			handlers = append(handlers, fn)
		}
	}
	v.mu.Unlock()

	for _, fn := range handlers {
		fn(value)
	}
}

// Subscribe registers fn to be called with every new value and immediately
// calls it with the current one. The returned func removes the subscription.
func (v *Value[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	v.mu.Lock()
	v.nextID++
	id := v.nextID
	if v.subs == nil {
		v.subs = make(map[int]func(T))
	}
	v.subs[id] = fn
	current := v.value
	v.mu.Unlock()

	fn(current)

	var once sync.Once
	return func() {
		once.Do(func() {
			v.mu.Lock()
			delete(v.subs, id)
			v.mu.Unlock()
		})
	}
}

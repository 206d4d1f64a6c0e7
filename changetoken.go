package pathkit

import (
	"sync"
	"sync/atomic"
)

// ChangeToken represents a change notification token. Tokens are single-use:
// once HasChanged reports true it stays true.
//
// Consumers can either poll HasChanged or register a callback via
// RegisterChangeCallback; check ActiveChangeCallbacks to know which approach
// the implementation serves efficiently.
type ChangeToken interface {
	// HasChanged returns true if a change has occurred.
	HasChanged() bool

	// ActiveChangeCallbacks indicates if the token proactively raises
	// callbacks. If false, consumers should poll HasChanged instead.
	ActiveChangeCallbacks() bool

	// RegisterChangeCallback registers a callback to be invoked when a
	// change occurs. Returns a function to unregister the callback.
	RegisterChangeCallback(callback func()) (unregister func())
}

// callbackChangeToken is a ChangeToken backed by native filesystem events.
type callbackChangeToken struct {
	mu        sync.RWMutex
	changed   atomic.Bool
	callbacks []func()
}

func newCallbackChangeToken() *callbackChangeToken {
	return &callbackChangeToken{}
}

func (t *callbackChangeToken) HasChanged() bool {
	return t.changed.Load()
}

func (t *callbackChangeToken) ActiveChangeCallbacks() bool {
	return true
}

func (t *callbackChangeToken) RegisterChangeCallback(callback func()) (unregister func()) {
	t.mu.Lock()
	t.callbacks = append(t.callbacks, callback)
	index := len(t.callbacks) - 1
	t.mu.Unlock()

	return func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		if index < len(t.callbacks) {
			// nil out instead of removing to avoid index shifting
			t.callbacks[index] = nil
		}
	}
}

// signalChange marks the token as changed and invokes all callbacks.
func (t *callbackChangeToken) signalChange() {
	if t.changed.Swap(true) {
		return // already changed
	}

	t.mu.RLock()
	callbacks := make([]func(), len(t.callbacks))
	copy(callbacks, t.callbacks)
	t.mu.RUnlock()

	for _, cb := range callbacks {
		if cb != nil {
			cb()
		}
	}
}

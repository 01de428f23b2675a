// Package event is a small in-process dispatcher. Checkout fires
// "order.placed"; notifications, the websocket feed and metrics listen.
package event

import (
	"sync"

	"github.com/htoohtoo/storefront/pkg/logger"
)

type Listener func(payload any)

var (
	mu        sync.RWMutex
	listeners = map[string][]Listener{}
)

// Listen registers fn for every Fire of name.
func Listen(name string, fn Listener) {
	mu.Lock()
	listeners[name] = append(listeners[name], fn)
	mu.Unlock()
}

// Fire invokes all listeners for name synchronously, in registration order.
// A panicking listener is logged and does not stop the rest.
func Fire(name string, payload any) {
	mu.RLock()
	fns := make([]Listener, len(listeners[name]))
	copy(fns, listeners[name])
	mu.RUnlock()

	for _, fn := range fns {
		call(name, fn, payload)
	}
}

// FireAsync invokes each listener on its own goroutine and returns at once.
func FireAsync(name string, payload any) {
	mu.RLock()
	fns := make([]Listener, len(listeners[name]))
	copy(fns, listeners[name])
	mu.RUnlock()

	for _, fn := range fns {
		go call(name, fn, payload)
	}
}

func call(name string, fn Listener, payload any) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("event: listener panicked", "event", name, "panic", r)
		}
	}()
	fn(payload)
}

// Reset removes all listeners. Test helper.
func Reset() {
	mu.Lock()
	listeners = map[string][]Listener{}
	mu.Unlock()
}

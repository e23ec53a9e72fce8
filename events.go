package dial

// Events is a small synchronous event bus for cross-component
// notification. It is generic over the event type T.
//
// It is not safe for concurrent use: like the rest of the engine it is
// meant to live on the host's single UI goroutine.
type Events[T any] struct {
	listeners []func(T)
}

// NewEvents creates a new event bus.
func NewEvents[T any]() *Events[T] {
	return &Events[T]{}
}

// Subscribe adds a listener and returns a function that removes it.
// Listeners are invoked in subscription order.
func (e *Events[T]) Subscribe(fn func(T)) func() {
	e.listeners = append(e.listeners, fn)
	idx := len(e.listeners) - 1
	return func() {
		if idx < len(e.listeners) {
			e.listeners[idx] = nil
		}
	}
}

// Emit delivers an event to every listener, synchronously, in
// subscription order. Listeners added during delivery do not receive
// the event being delivered.
func (e *Events[T]) Emit(event T) {
	listeners := e.listeners[:len(e.listeners):len(e.listeners)]
	for _, fn := range listeners {
		if fn != nil {
			fn(event)
		}
	}
}

package engine

// ListenerID identifies a subscription on an Event. The zero ID is never
// issued and is safe to pass to RemoveListener.
type ListenerID uint64

type eventListener struct {
	id ListenerID
	fn func()
}

// Event is a Unity-style multi-cast event system.
// Allows multiple listeners to subscribe to a single event, each keyed by a
// ListenerID so subscriptions can be removed again (function values can't be
// compared in Go, so removal has to go through an ID).
type Event struct {
	nextID    ListenerID
	listeners []eventListener
}

// AddListener adds a callback to be invoked when the event fires and returns
// its ID. A nil callback is ignored and returns the zero ID.
func (e *Event) AddListener(callback func()) ListenerID {
	if callback == nil {
		return 0
	}
	e.nextID++
	e.listeners = append(e.listeners, eventListener{id: e.nextID, fn: callback})
	return e.nextID
}

// RemoveListener removes the subscription with the given ID.
// Unknown or zero IDs are a no-op.
func (e *Event) RemoveListener(id ListenerID) {
	if id == 0 {
		return
	}
	for i, l := range e.listeners {
		if l.id == id {
			// Copy instead of splicing in place so an Invoke that is
			// currently iterating keeps a stable snapshot.
			out := make([]eventListener, 0, len(e.listeners)-1)
			out = append(out, e.listeners[:i]...)
			out = append(out, e.listeners[i+1:]...)
			e.listeners = out
			return
		}
	}
}

// RemoveAllListeners clears all listeners
func (e *Event) RemoveAllListeners() {
	e.listeners = nil
}

// Invoke calls all registered listeners in subscription order.
// Listeners added during Invoke run from the next Invoke on; listeners
// removed during Invoke no longer run.
func (e *Event) Invoke() {
	snapshot := e.listeners
	for _, l := range snapshot {
		if e.alive(l.id) {
			l.fn()
		}
	}
}

func (e *Event) alive(id ListenerID) bool {
	for _, l := range e.listeners {
		if l.id == id {
			return true
		}
	}
	return false
}

// GetListenerCount returns the number of registered listeners (for debugging)
func (e *Event) GetListenerCount() int {
	return len(e.listeners)
}

type argListener[T any] struct {
	id ListenerID
	fn func(T)
}

// EventWithArg is a generic event with one argument
type EventWithArg[T any] struct {
	nextID    ListenerID
	listeners []argListener[T]
}

func (e *EventWithArg[T]) AddListener(callback func(T)) ListenerID {
	if callback == nil {
		return 0
	}
	e.nextID++
	e.listeners = append(e.listeners, argListener[T]{id: e.nextID, fn: callback})
	return e.nextID
}

func (e *EventWithArg[T]) RemoveListener(id ListenerID) {
	if id == 0 {
		return
	}
	for i, l := range e.listeners {
		if l.id == id {
			out := make([]argListener[T], 0, len(e.listeners)-1)
			out = append(out, e.listeners[:i]...)
			out = append(out, e.listeners[i+1:]...)
			e.listeners = out
			return
		}
	}
}

func (e *EventWithArg[T]) RemoveAllListeners() {
	e.listeners = nil
}

func (e *EventWithArg[T]) Invoke(arg T) {
	snapshot := e.listeners
	for _, l := range snapshot {
		if e.alive(l.id) {
			l.fn(arg)
		}
	}
}

func (e *EventWithArg[T]) alive(id ListenerID) bool {
	for _, l := range e.listeners {
		if l.id == id {
			return true
		}
	}
	return false
}

func (e *EventWithArg[T]) GetListenerCount() int {
	return len(e.listeners)
}

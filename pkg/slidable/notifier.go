package slidable

// ValueNotifier holds a last-written value and notifies listeners on every
// write, including writes of an unchanged value. Call sites that need
// deduplication compare against Value before calling Set.
//
// Listeners may unsubscribe from within a notification; the listener set is
// snapshotted before each dispatch.
type ValueNotifier[T any] struct {
	value          T
	listeners      map[int]func(T)
	nextListenerID int
}

// NewValueNotifier creates a notifier holding the given initial value.
// Creating the notifier does not notify anyone.
func NewValueNotifier[T any](value T) *ValueNotifier[T] {
	return &ValueNotifier[T]{
		value:     value,
		listeners: make(map[int]func(T)),
	}
}

// Value returns the last written value.
func (n *ValueNotifier[T]) Value() T {
	return n.value
}

// Set stores value and notifies every listener, even if the value is
// unchanged.
func (n *ValueNotifier[T]) Set(value T) {
	n.value = value
	listeners := make([]func(T), 0, len(n.listeners))
	for _, listener := range n.listeners {
		listeners = append(listeners, listener)
	}
	for _, listener := range listeners {
		listener(value)
	}
}

// AddListener registers a callback for future writes.
// Returns an unsubscribe function.
func (n *ValueNotifier[T]) AddListener(fn func(T)) func() {
	id := n.nextListenerID
	n.nextListenerID++
	n.listeners[id] = fn
	return func() {
		delete(n.listeners, id)
	}
}

// HasListeners reports whether any listener is currently registered.
func (n *ValueNotifier[T]) HasListeners() bool {
	return len(n.listeners) > 0
}

// Dispose releases the listener set. The notifier must not be used after.
func (n *ValueNotifier[T]) Dispose() {
	n.listeners = nil
}

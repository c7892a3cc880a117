package dispatch

// Handler handles calls for one registered key.
type Handler[A, R any] func(args A) (R, error)

// DefaultHandler handles calls for keys with no registered handler.
// It receives the unmatched key before the call arguments.
type DefaultHandler[K comparable, A, R any] func(key K, args A) (R, error)

// Dispatcher selects a handler by key value.
type Dispatcher[K comparable, A, R any] struct {
	fallback DefaultHandler[K, A, R]
	handlers map[K]Handler[A, R]
	order    []K // first-registration order
}

// New creates a dispatcher that sends unmatched keys to fallback.
// It panics if fallback is nil.
func New[K comparable, A, R any](fallback DefaultHandler[K, A, R]) *Dispatcher[K, A, R] {
	if fallback == nil {
		panic("dispatch: nil default handler")
	}
	return &Dispatcher[K, A, R]{
		fallback: fallback,
		handlers: make(map[K]Handler[A, R]),
	}
}

// Register returns a function that stores its handler under key and returns
// the handler unchanged. A later registration for the same key replaces
// the earlier one.
func (d *Dispatcher[K, A, R]) Register(key K) func(Handler[A, R]) Handler[A, R] {
	return func(h Handler[A, R]) Handler[A, R] {
		if _, exists := d.handlers[key]; !exists {
			d.order = append(d.order, key)
		}
		d.handlers[key] = h
		return h
	}
}

// Use registers h for key. It is shorthand for d.Register(key)(h).
func Use[K comparable, A, R any](d *Dispatcher[K, A, R], key K, h Handler[A, R]) {
	d.Register(key)(h)
}

// Dispatch calls the handler registered for key with args. When key has no
// handler, the default handler is called with key and args instead.
// Whatever the selected handler returns is returned as is.
func (d *Dispatcher[K, A, R]) Dispatch(key K, args A) (R, error) {
	if h, ok := d.handlers[key]; ok {
		return h(args)
	}
	return d.fallback(key, args)
}

// Lookup returns the handler registered for key.
func (d *Dispatcher[K, A, R]) Lookup(key K) (Handler[A, R], bool) {
	h, ok := d.handlers[key]
	return h, ok
}

// Has reports whether key has a registered handler.
func (d *Dispatcher[K, A, R]) Has(key K) bool {
	_, ok := d.handlers[key]
	return ok
}

// Keys returns the registered keys in the order they were first registered.
func (d *Dispatcher[K, A, R]) Keys() []K {
	keys := make([]K, len(d.order))
	copy(keys, d.order)
	return keys
}

// Len returns the number of registered keys.
func (d *Dispatcher[K, A, R]) Len() int {
	return len(d.handlers)
}

// Package dispatch routes calls to handlers selected by the value of a key.
//
// It works like a switch statement whose cases are registered at runtime:
// each key maps to one handler, and keys without a handler fall through to a
// default handler supplied at construction.
//
// # Handlers
//
// A matched handler receives only the call arguments. The default handler
// receives the key first, because it serves every unregistered key and needs
// to know which one triggered it:
//
//	d := dispatch.New(func(key int, args Pair) (string, error) {
//	    return fmt.Sprintf("unhandled:%d", key), nil
//	})
//
//	dispatch.Use(d, 1, func(args Pair) (string, error) {
//	    return fmt.Sprintf("one:%d,%d", args.A, args.B), nil
//	})
//
//	d.Dispatch(1, Pair{A: 1, B: 2}) // "one:1,2"
//	d.Dispatch(3, Pair{A: 1, B: 2}) // "unhandled:3"
//
// Several call arguments are passed as one value, usually a struct with
// named fields.
//
// # Registration
//
// Register returns a function that stores its handler under the key and
// returns the handler unchanged, so a handler can be declared and registered
// in one statement:
//
//	var handleOne = d.Register(1)(func(args Pair) (string, error) { ... })
//
// Registering a key again replaces its handler. The last registration wins
// and no error is reported.
//
// # Errors
//
// Dispatch never fails on its own. Errors returned by handlers reach the
// caller unchanged, and panics are not recovered. Callers that want unknown
// keys to fail should use Unimplemented as the default handler.
//
// # Concurrency
//
// A Dispatcher is not synchronized. Register all handlers during
// initialization, then dispatch. Concurrent Dispatch calls are safe once
// registration has finished; Register concurrent with Dispatch is not.
package dispatch

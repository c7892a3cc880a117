package dispatch

import (
	"errors"
	"fmt"
)

// ErrUnmatchedKey matches every *UnmatchedKeyError via errors.Is.
var ErrUnmatchedKey = errors.New("no handler for key")

// UnmatchedKeyError reports a dispatch to a key with no registered handler.
type UnmatchedKeyError[K comparable] struct {
	Key K
}

// Error implements the error interface.
func (e *UnmatchedKeyError[K]) Error() string {
	return fmt.Sprintf("not implemented for key %v", e.Key)
}

// Is reports whether target is ErrUnmatchedKey.
func (e *UnmatchedKeyError[K]) Is(target error) bool {
	return target == ErrUnmatchedKey
}

// Unimplemented returns a default handler that fails every call with an
// *UnmatchedKeyError carrying the key.
func Unimplemented[K comparable, A, R any]() DefaultHandler[K, A, R] {
	return func(key K, _ A) (R, error) {
		var zero R
		return zero, &UnmatchedKeyError[K]{Key: key}
	}
}

// Fallback returns a default handler that answers every unmatched key
// with value.
func Fallback[K comparable, A, R any](value R) DefaultHandler[K, A, R] {
	return func(K, A) (R, error) {
		return value, nil
	}
}

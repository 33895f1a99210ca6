package segtree

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when a tree is built from an empty sequence.
	ErrEmptyInput = errors.New("segtree: empty input")

	// ErrInvalidRange is returned when query bounds violate 0 <= a <= b < n.
	ErrInvalidRange = errors.New("segtree: invalid range")

	// ErrIndexOutOfBounds is returned when an update index falls outside [0, n-1].
	ErrIndexOutOfBounds = errors.New("segtree: index out of bounds")

	// ErrAboveIdentity is returned when a min-tree value is larger than the
	// tree's identity element.
	ErrAboveIdentity = errors.New("segtree: value above identity")
)

func checkRange(a, b, n int) error {
	if a < 0 || b >= n || a > b {
		return fmt.Errorf("%w: [%d, %d] with length %d", ErrInvalidRange, a, b, n)
	}
	return nil
}

func checkIndex(idx, n int) error {
	if idx < 0 || idx >= n {
		return fmt.Errorf("%w: %d with length %d", ErrIndexOutOfBounds, idx, n)
	}
	return nil
}

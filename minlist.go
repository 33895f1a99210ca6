package segtree

import (
	"fmt"
	"math"
	"math/bits"
)

// IterativeMinTree answers range minimums from a flat array laid out as a
// 0-indexed binary heap: the children of i are 2i+1 and 2i+2, its parent is
// (i-1)/2.
//
// Leaves start at offset, one less than n rounded up to a power of two, so
// every leaf sits on the bottom level. Internal slots whose range reaches
// past the last leaf fold in the identity in place of the missing children.
type IterativeMinTree struct {
	tree     []int
	offset   int
	len      int
	identity int
}

// NewIterativeMinTree builds a tree over values. The slice is not retained.
func NewIterativeMinTree(values []int, options ...minTreeOption) (*IterativeMinTree, error) {
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}

	t := &IterativeMinTree{identity: math.MaxInt}
	for _, option := range options {
		option(t)
	}

	for i, v := range values {
		if v > t.identity {
			return nil, fmt.Errorf("%w: %d at index %d exceeds %d", ErrAboveIdentity, v, i, t.identity)
		}
	}

	n := len(values)
	t.len = n
	t.offset = nextPowerOfTwo(n) - 1
	t.tree = make([]int, t.offset+n)
	for i := 0; i < t.offset; i++ {
		t.tree[i] = t.identity
	}
	copy(t.tree[t.offset:], values)

	for i := t.offset - 1; i >= 0; i-- {
		t.tree[i] = t.reduce(i)
	}
	return t, nil
}

// nextPowerOfTwo returns the smallest power of two >= n, n > 0.
func nextPowerOfTwo(n int) int {
	if n&(n-1) == 0 {
		return n
	}
	return 1 << bits.Len(uint(n))
}

// reduce returns the minimum of the in-bounds children of i, or the
// identity when i has none.
func (t *IterativeMinTree) reduce(i int) int {
	res := t.identity
	if l := 2*i + 1; l < len(t.tree) {
		res = min(res, t.tree[l])
	}
	if r := 2*i + 2; r < len(t.tree) {
		res = min(res, t.tree[r])
	}
	return res
}

// Len returns the number of elements in the tree.
func (t *IterativeMinTree) Len() int {
	return t.len
}

// Capacity returns the length of the backing array.
func (t *IterativeMinTree) Capacity() int {
	return len(t.tree)
}

// QueryMin returns the minimum of the elements in the inclusive range [a, b].
func (t *IterativeMinTree) QueryMin(a, b int) (int, error) {
	if err := checkRange(a, b, t.len); err != nil {
		return 0, err
	}

	a += t.offset
	b += t.offset

	res := t.identity
	for a <= b {
		// Right children sit at even positions, left children at odd ones.
		if a%2 == 0 {
			res = min(res, t.tree[a])
			a++
		}
		if b%2 == 1 {
			res = min(res, t.tree[b])
			b--
		}
		// a is now odd and b even, so stopping here also keeps the parent
		// step below away from (0-1)/2, which truncates to the root.
		if a > b {
			break
		}
		a = (a - 1) / 2
		b = (b - 1) / 2
	}
	return res, nil
}

// Update sets the element at idx to val.
func (t *IterativeMinTree) Update(idx, val int) error {
	if err := checkIndex(idx, t.len); err != nil {
		return err
	}
	if val > t.identity {
		return fmt.Errorf("%w: %d exceeds %d", ErrAboveIdentity, val, t.identity)
	}

	idx += t.offset
	t.tree[idx] = val
	for idx > 0 {
		idx = (idx - 1) / 2
		t.tree[idx] = t.reduce(idx)
	}
	return nil
}

// Values returns a copy of the current elements in index order.
func (t *IterativeMinTree) Values() []int {
	out := make([]int, t.len)
	copy(out, t.tree[t.offset:])
	return out
}

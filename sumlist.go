package segtree

// IterativeSumTree answers range sums from a flat array of length 2n with
// an implicit 1-indexed layout: leaves occupy [n, 2n), the children of i
// are 2i and 2i+1 and its parent is i/2. Slot 0 is unused.
//
// No padding is needed for any n > 0.
type IterativeSumTree struct {
	tree []int
	len  int
}

// NewIterativeSumTree builds a tree over values. The slice is not retained.
func NewIterativeSumTree(values []int) (*IterativeSumTree, error) {
	n := len(values)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	t := &IterativeSumTree{tree: make([]int, 2*n), len: n}
	copy(t.tree[n:], values)
	for i := n - 1; i > 0; i-- {
		t.tree[i] = t.tree[i<<1] + t.tree[i<<1|1]
	}
	return t, nil
}

// Len returns the number of elements in the tree.
func (t *IterativeSumTree) Len() int {
	return t.len
}

// Capacity returns the length of the backing array.
func (t *IterativeSumTree) Capacity() int {
	return len(t.tree)
}

// QuerySum returns the sum of the elements in the inclusive range [a, b].
func (t *IterativeSumTree) QuerySum(a, b int) (int, error) {
	if err := checkRange(a, b, t.len); err != nil {
		return 0, err
	}

	a += t.len
	b += t.len

	var res int
	for a <= b {
		if a&1 == 1 {
			res += t.tree[a]
			a++
		}
		if b&1 == 0 {
			res += t.tree[b]
			b--
		}
		a >>= 1
		b >>= 1
	}
	return res, nil
}

// Update sets the element at idx to val.
func (t *IterativeSumTree) Update(idx, val int) error {
	if err := checkIndex(idx, t.len); err != nil {
		return err
	}

	idx += t.len
	t.tree[idx] = val
	for idx > 1 {
		idx >>= 1
		t.tree[idx] = t.tree[idx<<1] + t.tree[idx<<1|1]
	}
	return nil
}

// Values returns a copy of the current elements in index order.
func (t *IterativeSumTree) Values() []int {
	out := make([]int, t.len)
	copy(out, t.tree[t.len:])
	return out
}

// Package segtree provides segment trees answering range aggregate queries
// over a fixed-size sequence of integers.
//
// A segment tree caches the aggregate of every range produced by repeatedly
// halving [0, n-1], so that any inclusive range [a, b] decomposes into
// O(log n) cached ranges. Point updates refresh only the O(log n) ranges
// containing the updated index.
//
// Three layouts are provided, each specialised to a single operator:
//
//	RecursiveSumTree   linked nodes, range sums
//	IterativeMinTree   flat 0-indexed heap padded to a power of two, range minimums
//	IterativeSumTree   flat 1-indexed array of length 2n, range sums
//
// None of the trees are safe for concurrent use; callers mixing Update with
// queries from several goroutines must synchronise externally.
package segtree

// node covers the inclusive index range [start, end] and caches its sum.
// Leaves have start == end and no children.
type node struct {
	start, end  int
	sum         int
	left, right *node
}

func (n *node) mid() int {
	return (n.start + n.end) / 2
}

// RecursiveSumTree is a pointer-linked segment tree answering range sums.
type RecursiveSumTree struct {
	root *node
	len  int
}

// NewRecursiveSumTree builds a tree over values. The slice is not retained.
func NewRecursiveSumTree(values []int) (*RecursiveSumTree, error) {
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}
	return &RecursiveSumTree{
		root: build(values, 0, len(values)-1),
		len:  len(values),
	}, nil
}

func build(values []int, start, end int) *node {
	if start == end {
		return &node{start: start, end: end, sum: values[start]}
	}

	mid := (start + end) / 2
	left := build(values, start, mid)
	right := build(values, mid+1, end)
	return &node{start: start, end: end, sum: left.sum + right.sum, left: left, right: right}
}

// Len returns the number of elements in the tree.
func (t *RecursiveSumTree) Len() int {
	return t.len
}

// QuerySum returns the sum of the elements in the inclusive range [a, b].
func (t *RecursiveSumTree) QuerySum(a, b int) (int, error) {
	if err := checkRange(a, b, t.len); err != nil {
		return 0, err
	}
	return querySum(t.root, a, b), nil
}

// querySum expects [a, b] to lie within [n.start, n.end].
func querySum(n *node, a, b int) int {
	if n.start == a && n.end == b {
		return n.sum
	}

	mid := n.mid()
	if b <= mid {
		return querySum(n.left, a, b)
	} else if a > mid {
		return querySum(n.right, a, b)
	}
	return querySum(n.left, a, mid) + querySum(n.right, mid+1, b)
}

// Update sets the element at idx to val.
func (t *RecursiveSumTree) Update(idx, val int) error {
	if err := checkIndex(idx, t.len); err != nil {
		return err
	}
	update(t.root, idx, val)
	return nil
}

func update(n *node, idx, val int) {
	if n.start == n.end {
		n.sum = val
		return
	}

	if idx <= n.mid() {
		update(n.left, idx, val)
	} else {
		update(n.right, idx, val)
	}
	n.sum = n.left.sum + n.right.sum
}

// Values returns a copy of the current elements in index order.
func (t *RecursiveSumTree) Values() []int {
	out := make([]int, 0, t.len)
	var walk func(n *node)
	walk = func(n *node) {
		if n.left == nil {
			out = append(out, n.sum)
			return
		}
		walk(n.left)
		walk(n.right)
	}
	walk(t.root)
	return out
}

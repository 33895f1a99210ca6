// Package fenwick provides an int list supporting range sums.
//
// A Fenwick tree, or binary indexed tree, stores partial sums of an
// underlying array so that element updates and prefix sums both run in
// O(log n) time while using as much memory as the array itself.
//
// The segment trees of the parent package are checked against it in tests.
package fenwick

// List represents a list of ints with support for efficient range sums.
type List struct {
	// tree[k] holds the sum of the elements in [k+1 - lowbit(k+1), k],
	// where lowbit(x) is the lowest set bit of x.
	//
	// For example the prefix t[0] + … + t[12] is 13 = 1101₂ elements long,
	// so it adds tree[1101₂ - 1], tree[1100₂ - 1] and tree[1000₂ - 1],
	// covering t[12], t[8] + … + t[11] and t[0] + … + t[7].
	tree []int
}

// New creates a list holding a copy of values.
func New(values []int) *List {
	n := len(values)
	t := make([]int, n)
	copy(t, values)
	for i := range t {
		if j := i | (i + 1); j < n {
			t[j] += t[i]
		}
	}
	return &List{tree: t}
}

// Len returns the number of elements in the list.
func (l *List) Len() int {
	return len(l.tree)
}

// Get returns the element at index i.
func (l *List) Get(i int) int {
	return l.RangeSum(i, i)
}

// Set sets the element at index i to v.
func (l *List) Set(i, v int) {
	delta := v - l.Get(i)
	for n := len(l.tree); i < n; i |= i + 1 {
		l.tree[i] += delta
	}
}

// PrefixSum returns the sum of the first k elements.
func (l *List) PrefixSum(k int) int {
	var sum int
	for k > 0 {
		sum += l.tree[k-1]
		k -= k & -k
	}
	return sum
}

// RangeSum returns the sum of the elements in the inclusive range [a, b].
func (l *List) RangeSum(a, b int) int {
	return l.PrefixSum(b+1) - l.PrefixSum(a)
}

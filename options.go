package segtree

type minTreeOption func(*IterativeMinTree)

// Identity sets the value held by padding slots of an IterativeMinTree.
//
// The identity must be at least as large as every value the tree will ever
// hold, otherwise padding would win minimum comparisons against real
// elements. Construction and Update reject values above it with
// ErrAboveIdentity. The default is math.MaxInt.
func Identity(identity int) minTreeOption {
	return func(t *IterativeMinTree) {
		t.identity = identity
	}
}

package segtree

import (
	"testing"

	rng "github.com/leesper/go_rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertSameSums compares every range of the two sum trees.
func assertSameSums(t *testing.T, rec *RecursiveSumTree, it *IterativeSumTree) {
	t.Helper()

	n := rec.Len()
	require.Equal(t, n, it.Len())
	for a := 0; a < n; a++ {
		for b := a; b < n; b++ {
			want, err := rec.QuerySum(a, b)
			require.NoError(t, err)
			got, err := it.QuerySum(a, b)
			require.NoError(t, err)
			assert.Equal(t, want, got, "range [%d, %d]", a, b)
		}
	}
}

func TestSumTreesAgree(t *testing.T) {
	t.Parallel()

	g := rng.NewUniformGenerator(randomSeed + 1)
	for run := 0; run < randomRuns; run++ {
		n := int(g.Int64Range(1, maxRandomN))
		values := randomValues(g, n)

		rec, err := NewRecursiveSumTree(values)
		require.NoError(t, err)
		it, err := NewIterativeSumTree(values)
		require.NoError(t, err)
		assertSameSums(t, rec, it)

		for step := 0; step < n; step++ {
			idx := int(g.Int64n(int64(n)))
			val := int(g.Int64Range(randomMin, randomMax))
			require.NoError(t, rec.Update(idx, val))
			require.NoError(t, it.Update(idx, val))
		}
		assertSameSums(t, rec, it)
		assert.Equal(t, rec.Values(), it.Values())
	}
}

func TestUpdateIdempotent(t *testing.T) {
	t.Parallel()

	once := func() ([]int, []int, []int) {
		rec, _ := NewRecursiveSumTree(reference)
		it, _ := NewIterativeSumTree(reference)
		mt, _ := NewIterativeMinTree(reference)
		require.NoError(t, rec.Update(5, -2))
		require.NoError(t, it.Update(5, -2))
		require.NoError(t, mt.Update(5, -2))
		return rec.Values(), it.Values(), mt.tree
	}
	twice := func() ([]int, []int, []int) {
		rec, _ := NewRecursiveSumTree(reference)
		it, _ := NewIterativeSumTree(reference)
		mt, _ := NewIterativeMinTree(reference)
		for i := 0; i < 2; i++ {
			require.NoError(t, rec.Update(5, -2))
			require.NoError(t, it.Update(5, -2))
			require.NoError(t, mt.Update(5, -2))
		}
		return rec.Values(), it.Values(), mt.tree
	}

	r1, i1, m1 := once()
	r2, i2, m2 := twice()
	assert.Equal(t, r1, r2)
	assert.Equal(t, i1, i2)
	assert.Equal(t, m1, m2)
}

func TestPointQueriesMatchValues(t *testing.T) {
	t.Parallel()

	rec, err := NewRecursiveSumTree(reference)
	require.NoError(t, err)
	it, err := NewIterativeSumTree(reference)
	require.NoError(t, err)
	mt, err := NewIterativeMinTree(reference)
	require.NoError(t, err)

	for i, v := range reference {
		got, err := rec.QuerySum(i, i)
		require.NoError(t, err)
		assert.Equal(t, v, got)

		got, err = it.QuerySum(i, i)
		require.NoError(t, err)
		assert.Equal(t, v, got)

		got, err = mt.QueryMin(i, i)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

package segtree

import (
	"testing"

	rng "github.com/leesper/go_rng"
	"gonum.org/v1/gonum/floats"
)

// reference is the sample sequence the demo driver prints queries for.
var reference = []int{1, 3, 4, -3, 8, 6, 1, 4, 2}

// Random sequence bounds.
const (
	randomMin   = -1000
	randomMax   = 1000
	randomSeed  = 0xDEADBEEF
	randomRuns  = 25
	maxRandomN  = 70
	randomSteps = 40
)

func randomValues(g *rng.UniformGenerator, n int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = int(g.Int64Range(randomMin, randomMax))
	}
	return values
}

func toFloats(values []int) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}

func referenceSum(values []int) int {
	return int(floats.Sum(toFloats(values)))
}

func referenceMin(values []int) int {
	return int(floats.Min(toFloats(values)))
}

// sizes covers powers of two, their neighbours and a single element.
var sizes = []int{1, 2, 3, 4, 5, 7, 8, 9, 15, 16, 17, 31, 33}

func sequence(t *testing.T, n int) []int {
	t.Helper()

	values := make([]int, n)
	for i := range values {
		values[i] = (i*7)%11 - 5
	}
	return values
}

// Package datacheck smoke tests the numeric stack: it builds a small
// random matrix, computes per-column means and verifies the aggregate
// is a finite number.
package datacheck

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/mkeranen/setupcheck/pkg/check"
)

// Check exercises matrix construction and summary statistics.
type Check struct {
	Rows int   // matrix rows (default: 5)
	Cols int   // matrix columns (default: 3)
	Seed int64 // random source seed
}

// Run executes the numeric smoke test.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: "data manipulation",
	}

	rows, cols := c.Rows, c.Cols
	if rows == 0 {
		rows = 5
	}
	if cols == 0 {
		cols = 3
	}

	rng := rand.New(rand.NewSource(c.Seed))
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = rng.Float64()
	}

	m := mat.NewDense(rows, cols, data)
	var sum float64
	for j := 0; j < cols; j++ {
		sum += stat.Mean(mat.Col(nil, j, m), nil)
	}

	if math.IsNaN(sum) || math.IsInf(sum, 0) {
		return result.Failf("column mean sum is not finite: %v", sum)
	}

	result.AddDetailf("column mean sum: %.4f", sum)
	return result.Pass()
}

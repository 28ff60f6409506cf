// Package testutil holds tolerance helpers shared by the curve tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/askiada/go-stockcurves/pkg/numeric"
)

// Close asserts that got is within a relative tolerance tol of want.
// A zero want falls back to an absolute tolerance.
func Close[T numeric.Float](t *testing.T, want, got T, tol float64, msgAndArgs ...interface{}) bool {
	t.Helper()
	w, g := float64(want), float64(got)
	if w == 0 {
		return assert.InDelta(t, w, g, tol, msgAndArgs...)
	}

	return assert.InEpsilon(t, w, g, tol, msgAndArgs...)
}

// Range returns n evenly spaced values from lo to hi inclusive.
func Range[T numeric.Float](lo, hi T, n int) []T {
	if n < 2 {
		return []T{lo}
	}
	out := make([]T, n)
	step := (hi - lo) / T(n-1)
	for i := range out {
		out[i] = lo + T(i)*step
	}
	out[n-1] = hi

	return out
}

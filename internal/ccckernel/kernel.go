// Package ccckernel implements the circular cross-correlation arithmetic
// itself, deliberately separated from task scheduling so it stays a pure,
// trivially testable function.
package ccckernel

import "github.com/pkg/errors"

// Correlate computes R[tau] = sum_{n=0}^{N-1} x[n] * y[(tau+n) mod N] for
// equal-length x, y. Summation runs strictly left to right (n increasing)
// so floating point results are reproducible across workers and runs.
func Correlate(x, y []float64, tau int) (float64, error) {
	n := len(x)
	if len(y) != n {
		return 0, errors.Errorf("ccckernel: x and y have different lengths (%d != %d)", n, len(y))
	}
	if n == 0 {
		return 0, errors.New("ccckernel: empty signal")
	}
	if tau < 0 || tau >= n {
		return 0, errors.Errorf("ccckernel: tau %d out of range [0,%d)", tau, n)
	}

	var sum float64
	for i := 0; i < n; i++ {
		sum += x[i] * y[(tau+i)%n]
	}
	return sum, nil
}

package aggregator

import "github.com/pkg/errors"

// CCCAggregate fills a per-file R[] vector as tau results arrive. Unlike
// WordStats, a given slot is written exactly once, so completeness (P1) is
// "every index in [0,N) got exactly one Store call" rather than an additive
// merge.
type CCCAggregate struct {
	n      int32
	r      []float64
	filled []bool
}

// NewCCCAggregate preallocates an aggregate for a signal of length n.
func NewCCCAggregate(n int32) *CCCAggregate {
	return &CCCAggregate{
		n:      n,
		r:      make([]float64, n),
		filled: make([]bool, n),
	}
}

// Store records the correlation value for tau. It errors on an out-of-range
// or duplicate tau, since either would indicate a dispatcher scheduling bug.
func (a *CCCAggregate) Store(tau int32, value float64) error {
	if tau < 0 || tau >= a.n {
		return errors.Errorf("aggregator: tau %d out of range [0,%d)", tau, a.n)
	}
	if a.filled[tau] {
		return errors.Errorf("aggregator: tau %d already stored", tau)
	}
	a.r[tau] = value
	a.filled[tau] = true
	return nil
}

// Complete reports whether every tau in [0,N) has been stored.
func (a *CCCAggregate) Complete() bool {
	for _, f := range a.filled {
		if !f {
			return false
		}
	}
	return true
}

// Result returns the accumulated R[] vector. Callers should check Complete
// first; an incomplete vector has zeros in unfilled slots.
func (a *CCCAggregate) Result() []float64 {
	return a.r
}

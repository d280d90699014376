package wavelet

import (
	"fmt"
	"math"
	"sync"
)

// Learnable is an orthogonal wavelet whose scaling filter is a mutable
// parameter vector, e.g. one adjusted by an external optimizer. The full
// bank is derived from the current parameters on every FilterBank call.
//
// Learnable is safe for concurrent use.
type Learnable struct {
	name string

	mu     sync.RWMutex
	params []float64
}

// NewLearnable creates a learnable wavelet initialized from a scaling
// filter, typically a catalog wavelet's rec_lo.
func NewLearnable(name string, init []float64) (*Learnable, error) {
	if len(init) < 2 {
		return nil, fmt.Errorf("%w: %s: scaling filter length %d < 2", ErrInvalidSpec, name, len(init))
	}
	return &Learnable{name: name, params: clone(init)}, nil
}

// Name returns the wavelet name.
func (l *Learnable) Name() string {
	return l.name
}

// Params returns a copy of the current scaling filter.
func (l *Learnable) Params() []float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return clone(l.params)
}

// SetParams replaces the scaling filter. The length may not change.
func (l *Learnable) SetParams(p []float64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(p) != len(l.params) {
		return fmt.Errorf("%w: %s: parameter length %d, want %d", ErrInvalidSpec, l.name, len(p), len(l.params))
	}
	copy(l.params, p)
	return nil
}

// FilterBank derives the QMF bank of the current parameters.
func (l *Learnable) FilterBank() (decLo, decHi, recLo, recHi []float64) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return qmf(l.params)
}

// OrthogonalityLoss measures how far the current scaling filter h is from
// an orthonormal one:
//
//	(sum(h) - sqrt(2))^2 + sum_k (sum_n h[n]h[n+2k] - delta(k))^2
//
// It is zero for every catalog wavelet up to rounding.
func (l *Learnable) OrthogonalityLoss() float64 {
	h := l.Params()

	var sum float64
	for _, v := range h {
		sum += v
	}
	loss := (sum - math.Sqrt2) * (sum - math.Sqrt2)

	for k := 0; 2*k < len(h); k++ {
		var acc float64
		for n := 0; n+2*k < len(h); n++ {
			acc += h[n] * h[n+2*k]
		}
		if k == 0 {
			acc--
		}
		loss += acc * acc
	}
	return loss
}

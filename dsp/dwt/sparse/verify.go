package sparse

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// IdentityError returns mean |A·S − I| over the [2M, 2M] product of an
// analysis and a synthesis matrix.
func IdentityError(a, s *CSR) (float64, error) {
	return productError(a, s)
}

// ReconstructionError returns mean |S·A − I| over the [n, n] product. It is
// zero up to rounding for every perfect-reconstruction pair.
func ReconstructionError(a, s *CSR) (float64, error) {
	return productError(s, a)
}

func productError(x, y *CSR) (float64, error) {
	xr, xc := x.Dims()
	yr, yc := y.Dims()
	if xc != yr || xr != yc {
		return 0, fmt.Errorf("%w: [%d %d]·[%d %d] is not square", ErrDims, xr, xc, yr, yc)
	}

	var p mat.Dense
	p.Mul(x.Dense(), y.Dense())
	for i := range xr {
		p.Set(i, i, p.At(i, i)-1)
	}
	return floats.Norm(p.RawMatrix().Data, 1) / float64(xr*xr), nil
}

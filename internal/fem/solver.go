package fem

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrSingular is returned when the assembled stiffness matrix cannot be
// inverted; usually the supports do not prevent rigid-body motion
var ErrSingular = errors.New("singular stiffness matrix: support configuration does not restrain the beam")

// ErrCoincidentSupports is returned when two supports map to the same node
var ErrCoincidentSupports = errors.New("supports share a finite element node: increase the element count")

// Solver solves the linear system K·U = F
type Solver interface {
	Solve(K *mat.Dense, F *mat.VecDense) (*mat.VecDense, error)
}

// DefaultMaxCond is the largest condition number accepted by LUSolver.
// A well-posed beam with a few hundred DOFs stays several orders of
// magnitude below it; a mechanism sits near 1/ε.
const DefaultMaxCond = 1e12

// LUSolver solves the system by LU decomposition with partial pivoting
type LUSolver struct {
	MaxCond float64 // zero means DefaultMaxCond
}

// Solve implements Solver
func (o LUSolver) Solve(K *mat.Dense, F *mat.VecDense) (*mat.VecDense, error) {
	n, m := K.Dims()
	if n != m || n != F.Len() {
		return nil, fmt.Errorf("fem: incompatible system dimensions K=%dx%d F=%d", n, m, F.Len())
	}

	var lu mat.LU
	lu.Factorize(K)

	maxCond := o.MaxCond
	if maxCond <= 0 {
		maxCond = DefaultMaxCond
	}
	if cond := lu.Cond(); cond > maxCond {
		return nil, fmt.Errorf("%w (condition number %.3g)", ErrSingular, cond)
	}

	U := mat.NewVecDense(n, nil)
	if err := lu.SolveVecTo(U, false, F); err != nil {
		var c mat.Condition
		if errors.As(err, &c) || errors.Is(err, mat.ErrSingular) {
			return nil, fmt.Errorf("%w: %v", ErrSingular, err)
		}
		return nil, err
	}
	return U, nil
}

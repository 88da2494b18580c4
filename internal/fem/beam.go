package fem

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// DefaultElements is the number of elements used to discretise a span
const DefaultElements = 50

// Restraint defines which nodal DOFs are held at a support
type Restraint int

const (
	Unrestrained Restraint = iota // free end
	Pinned                        // transverse displacement held
	Clamped                       // displacement and rotation held
)

// Beam is a prismatic Euler-Bernoulli beam discretised into equal elements
//
//	(0)----[0]----(1)----[1]----(2) ... (n-1)----[n-1]----(n)
//
//	DOFs per node: v (transverse displacement, downward positive)
//	               θ (rotation = dv/dx, clockwise positive)
//
// Lengths are in m, EI in kN·m², forces in kN and moments in kN·m.
type Beam struct {
	Length float64 // total length
	EI     float64 // flexural rigidity
	Nelems int     // number of elements
	H      float64 // (derived) element length

	F          []float64       // external nodal forces [2*(Nelems+1)]
	restraints map[int]Restraint // node index => restraint
}

// NewBeam allocates a discretised beam
func NewBeam(length, ei float64, nelems int) (*Beam, error) {
	if nelems < 1 {
		nelems = DefaultElements
	}
	if !(length > 0) || !(ei > 0) {
		return nil, fmt.Errorf("fem: length and EI must be positive (L=%g, EI=%g)", length, ei)
	}
	o := &Beam{
		Length:     length,
		EI:         ei,
		Nelems:     nelems,
		H:          length / float64(nelems),
		restraints: make(map[int]Restraint),
	}
	o.F = make([]float64, o.Ndof())
	return o, nil
}

// Ndof returns the total number of degrees of freedom
func (o *Beam) Ndof() int {
	return 2 * (o.Nelems + 1)
}

// NearestNode returns the index of the node closest to x
func (o *Beam) NearestNode(x float64) int {
	i := int(math.Round(x / o.H))
	return clamp(i, 0, o.Nelems)
}

// element returns the element containing x and the local coordinate ξ ∈ [0,1]
func (o *Beam) element(x float64) (e int, ξ float64) {
	e = clamp(int(math.Floor(x/o.H)), 0, o.Nelems-1)
	ξ = (x - float64(e)*o.H) / o.H
	return e, math.Min(math.Max(ξ, 0), 1)
}

// Restrain sets the restraint at the node nearest to x. A second support
// snapping to an already restrained node is rejected with
// ErrCoincidentSupports.
func (o *Beam) Restrain(x float64, r Restraint) error {
	n := o.NearestNode(x)
	if _, ok := o.restraints[n]; ok {
		return fmt.Errorf("%w: x = %g m lies on node %d at %g m (element length %g m)",
			ErrCoincidentSupports, x, n, float64(n)*o.H, o.H)
	}
	o.restraints[n] = r
	return nil
}

// AddPointLoad distributes a concentrated force to the two nodes of the
// containing element using linear shape functions
func (o *Beam) AddPointLoad(x, p float64) {
	e, ξ := o.element(x)
	o.F[2*e] += p * (1 - ξ)
	o.F[2*(e+1)] += p * ξ
}

// AddMoment applies a concentrated couple to the rotation DOF of the
// nearest node
func (o *Beam) AddMoment(x, m float64) {
	n := o.NearestNode(x)
	o.F[2*n+1] += m
}

// AddDistributedLoad applies a uniform load w over [x1, x2] as consistent
// nodal forces, integrating the Hermite shape functions exactly over the
// covered part of every element
func (o *Beam) AddDistributedLoad(x1, x2, w float64) {
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	x1 = math.Max(x1, 0)
	x2 = math.Min(x2, o.Length)
	h := o.H
	for e := 0; e < o.Nelems; e++ {
		xa := float64(e) * h
		xb := xa + h
		lo, hi := math.Max(x1, xa), math.Min(x2, xb)
		if hi <= lo {
			continue
		}
		ξ1, ξ2 := (lo-xa)/h, (hi-xa)/h
		G1, G2 := shapeIntegrals(ξ1), shapeIntegrals(ξ2)
		o.F[2*e] += w * h * (G2[0] - G1[0])
		o.F[2*e+1] += w * h * h * (G2[1] - G1[1])
		o.F[2*e+2] += w * h * (G2[2] - G1[2])
		o.F[2*e+3] += w * h * h * (G2[3] - G1[3])
	}
}

// ElementStiffness returns the 4x4 stiffness matrix of one element
func (o *Beam) ElementStiffness() *mat.Dense {
	l := o.H
	ll := l * l
	c := o.EI / (ll * l)
	return mat.NewDense(4, 4, []float64{
		12 * c, 6 * l * c, -12 * c, 6 * l * c,
		6 * l * c, 4 * ll * c, -6 * l * c, 2 * ll * c,
		-12 * c, -6 * l * c, 12 * c, -6 * l * c,
		6 * l * c, 2 * ll * c, -6 * l * c, 4 * ll * c,
	})
}

// Assemble builds the global stiffness matrix and force vector with the
// boundary conditions applied. Restrained rows and columns are zeroed and
// their diagonal keeps the unconstrained stiffness value, which leaves the
// prescribed zero displacement unchanged while preserving the scaling of K.
func (o *Beam) Assemble() (*mat.Dense, *mat.VecDense) {
	ndof := o.Ndof()
	K := mat.NewDense(ndof, ndof, nil)
	Ke := o.ElementStiffness()
	for e := 0; e < o.Nelems; e++ {
		for i := 0; i < 4; i++ {
			for j := 0; j < 4; j++ {
				I, J := 2*e+i, 2*e+j
				K.Set(I, J, K.At(I, J)+Ke.At(i, j))
			}
		}
	}
	F := mat.NewVecDense(ndof, append([]float64(nil), o.F...))

	for n, r := range o.restraints {
		switch r {
		case Clamped:
			o.constrain(K, F, 2*n)
			o.constrain(K, F, 2*n+1)
		case Pinned:
			o.constrain(K, F, 2*n)
		}
	}
	return K, F
}

func (o *Beam) constrain(K *mat.Dense, F *mat.VecDense, eq int) {
	ndof, _ := K.Dims()
	diag := K.At(eq, eq)
	if diag == 0 {
		diag = 1
	}
	for k := 0; k < ndof; k++ {
		K.Set(eq, k, 0)
		K.Set(k, eq, 0)
	}
	K.Set(eq, eq, diag)
	F.SetVec(eq, 0)
}

// Solve assembles and solves the system. A nil solver means LUSolver.
func (o *Beam) Solve(solver Solver) (*Solution, error) {
	if solver == nil {
		solver = LUSolver{}
	}
	K, F := o.Assemble()
	U, err := solver.Solve(K, F)
	if err != nil {
		return nil, err
	}
	sol := &Solution{beam: o, U: make([]float64, U.Len())}
	for i := range sol.U {
		sol.U[i] = U.AtVec(i)
	}
	return sol, nil
}

// Solution holds the nodal displacements of a solved beam
type Solution struct {
	beam *Beam
	U    []float64 // [v0, θ0, v1, θ1, ...]
}

// Deflection interpolates the transverse displacement at x (m, downward
// positive) with cubic Hermite shape functions
func (o *Solution) Deflection(x float64) float64 {
	e, ξ := o.beam.element(x)
	N := hermite(ξ, o.beam.H)
	u := o.U[2*e : 2*e+4]
	return N[0]*u[0] + N[1]*u[1] + N[2]*u[2] + N[3]*u[3]
}

// Rotation interpolates the slope dv/dx at x (rad)
func (o *Solution) Rotation(x float64) float64 {
	e, ξ := o.beam.element(x)
	h := o.beam.H
	u := o.U[2*e : 2*e+4]
	dN := [4]float64{
		(-6*ξ + 6*ξ*ξ) / h,
		1 - 4*ξ + 3*ξ*ξ,
		(6*ξ - 6*ξ*ξ) / h,
		-2*ξ + 3*ξ*ξ,
	}
	return dN[0]*u[0] + dN[1]*u[1] + dN[2]*u[2] + dN[3]*u[3]
}

// hermite returns the cubic Hermite shape functions at ξ for an element of
// length h
func hermite(ξ, h float64) [4]float64 {
	ξξ := ξ * ξ
	ξξξ := ξξ * ξ
	return [4]float64{
		1 - 3*ξξ + 2*ξξξ,
		h * (ξ - 2*ξξ + ξξξ),
		3*ξξ - 2*ξξξ,
		h * (-ξξ + ξξξ),
	}
}

// shapeIntegrals returns ∫₀^ξ N dξ for the four shape functions; the
// rotational ones are divided by h
func shapeIntegrals(ξ float64) [4]float64 {
	ξ2 := ξ * ξ
	ξ3 := ξ2 * ξ
	ξ4 := ξ3 * ξ
	return [4]float64{
		ξ - ξ3 + ξ4/2,
		ξ2/2 - 2*ξ3/3 + ξ4/4,
		ξ3 - ξ4/2,
		-ξ3/3 + ξ4/4,
	}
}

func clamp(i, lo, hi int) int {
	if i < lo {
		return lo
	}
	if i > hi {
		return hi
	}
	return i
}

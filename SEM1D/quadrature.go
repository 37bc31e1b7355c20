package SEM1D

import (
	"fmt"
	"math"

	"github.com/notargets/sem1d/utils"
	"gonum.org/v1/gonum/mat"
)

// BasisKind selects the polynomial family used on a reference element.
// GLL is the standard Gauss-Lobatto-Legendre family. GLJ is the
// Gauss-Lobatto-Jacobi family with weight (1+x), used in the first element of
// an axisymmetric domain to regularize the coordinate singularity at the axis.
type BasisKind uint8

const (
	GLL BasisKind = iota
	GLJ
)

var basisNames = []string{"GLL", "GLJ"}

func (bk BasisKind) String() string { return basisNames[bk] }

// alphaBeta returns the Jacobi weight exponents (1-x)^alpha * (1+x)^beta
// of the family.
func (bk BasisKind) alphaBeta() (alpha, beta float64) {
	if bk == GLJ {
		return 0, 1
	}
	return 0, 0
}

const (
	MinDegree = 1
	MaxDegree = 12
)

// Table holds the reference-element operators for one basis family and
// degree: the d+1 Lobatto points R in [-1,1], the matching integration
// weights W, and the Lagrange derivative matrix Dr with Dr[i][j] the
// derivative of basis polynomial j evaluated at point i. A Table is read-only
// after construction and safe to share.
type Table struct {
	Kind   BasisKind
	Degree int
	R, W   utils.Vector
	Dr     utils.Matrix
}

func NewTable(kind BasisKind, degree int) (tab *Table, err error) {
	if degree < MinDegree || degree > MaxDegree {
		return nil, &InvalidParameterError{
			Param: "degree",
			Reason: fmt.Sprintf("no %s quadrature exists for degree %d, supported range is [%d,%d]",
				kind, degree, MinDegree, MaxDegree),
		}
	}
	var (
		alpha, beta = kind.alphaBeta()
		R           = JacobiGL(alpha, beta, degree)
	)
	V := Vandermonde1D(alpha, beta, degree, R)
	Vinv, err := V.Inverse()
	if err != nil {
		return nil, &InvalidParameterError{
			Param:  "degree",
			Reason: fmt.Sprintf("singular Vandermonde matrix for %s degree %d", kind, degree),
		}
	}
	Vr := GradVandermonde1D(alpha, beta, degree, R)
	tab = &Table{
		Kind:   kind,
		Degree: degree,
		R:      R,
		W:      lobattoWeights(alpha, beta, degree, Vinv),
		Dr:     Vr.Mul(Vinv),
	}
	return
}

// lobattoWeights integrates each Lagrange basis polynomial against the Jacobi
// weight using the matching Gauss rule, which is exact for the degrees
// involved. For alpha = beta = 0 this reproduces the classical
// 2/(N(N+1)*P_N(x)^2) GLL values.
func lobattoWeights(alpha, beta float64, N int, Vinv utils.Matrix) (W utils.Vector) {
	var (
		G, WG = JacobiGQ(alpha, beta, N)
		LG    = Vandermonde1D(alpha, beta, N, G).Mul(Vinv)
	)
	W = LG.Transpose().MulVec(WG)
	return
}

// JacobiGL computes the N+1 Gauss-Lobatto points of the Jacobi weight
// (1-x)^alpha * (1+x)^beta: the endpoints plus the interior Gauss points of
// the incremented weight.
func JacobiGL(alpha, beta float64, N int) (X utils.Vector) {
	var (
		x = make([]float64, N+1)
	)
	x[0], x[N] = -1, 1
	if N > 1 {
		xint, _ := JacobiGQ(alpha+1, beta+1, N-2)
		data := xint.DataP()
		for i := 1; i < N; i++ {
			x[i] = data[i-1]
		}
	}
	X = utils.NewVector(N+1, x)
	return
}

// JacobiGQ computes the N+1 point Gauss quadrature rule of the Jacobi weight
// (1-x)^alpha * (1+x)^beta via the eigendecomposition of the symmetric
// tridiagonal recurrence matrix (Golub-Welsch).
func JacobiGQ(alpha, beta float64, N int) (X, W utils.Vector) {
	if N == 0 {
		x := []float64{-(alpha - beta) / (alpha + beta + 2.)}
		w := []float64{gamma0(alpha, beta)}
		return utils.NewVector(1, x), utils.NewVector(1, w)
	}

	var (
		h1 = make([]float64, N+1)
		d0 = make([]float64, N+1)
		d1 = make([]float64, N)
	)
	for i := range h1 {
		h1[i] = 2*float64(i) + alpha + beta
	}
	// Main diagonal. The recurrence coefficient b_n, matching bnew in JacobiP;
	// for alpha == beta it vanishes, so only asymmetric weights exercise it.
	fac := -(alpha*alpha - beta*beta)
	for i, val := range h1 {
		d0[i] = fac / (val * (val + 2.))
	}
	if alpha+beta < 10*eps {
		d0[0] = 0.
	}
	// First super diagonal
	for i := 0; i < N; i++ {
		ip1 := float64(i + 1)
		val := h1[i]
		d1[i] = 2. / (val + 2.)
		d1[i] *= math.Sqrt(ip1 * (ip1 + alpha + beta) * (ip1 + alpha) * (ip1 + beta) / ((val + 1.) * (val + 3.)))
	}

	JJ := utils.NewSymTriDiagonal(d0, d1)
	var eig mat.EigenSym
	if ok := eig.Factorize(JJ, true); !ok {
		panic("eigenvalue decomposition failed")
	}
	x := eig.Values(nil)
	X = utils.NewVector(N+1, x)

	VVr := mat.NewDense(len(x), len(x), nil)
	eig.VectorsTo(VVr)
	W = utils.NewVector(len(x), VVr.RawRowView(0)).POW(2).Scale(gamma0(alpha, beta))
	return
}

const eps = 1.e-16

// JacobiP evaluates the orthonormalized Jacobi polynomial of order N at the
// points r.
func JacobiP(r utils.Vector, alpha, beta float64, N int) (p []float64) {
	var (
		Nc = r.Len()
	)
	rg := 1. / math.Sqrt(gamma0(alpha, beta))
	if N == 0 {
		p = utils.ConstArray(rg, Nc)
		return
	}
	pm1 := utils.ConstArray(rg, Nc)
	pm0 := make([]float64, Nc)
	ab := alpha + beta
	rg1 := 1. / math.Sqrt(gamma1(alpha, beta))
	for i := 0; i < Nc; i++ {
		pm0[i] = rg1 * ((ab+2.0)*r.AtVec(i)/2.0 + (alpha-beta)/2.0)
	}
	if N == 1 {
		p = pm0
		return
	}
	aold := 2.0 * math.Sqrt((alpha+1.)*(beta+1.)/(ab+3.0)) / (ab + 2.0)
	for i := 0; i < N-1; i++ {
		ip1 := float64(i + 1)
		h1 := 2.0*ip1 + ab
		anew := 2.0 / (h1 + 2.0) * math.Sqrt((ip1+1.)*(ip1+ab+1.)*(ip1+alpha+1.)*(ip1+beta+1.)/(h1+1.0)/(h1+3.0))
		bnew := -(alpha*alpha - beta*beta) / h1 / (h1 + 2.0)
		pnew := make([]float64, Nc)
		for j := 0; j < Nc; j++ {
			pnew[j] = (-aold*pm1[j] + (r.AtVec(j)-bnew)*pm0[j]) / anew
		}
		pm1, pm0 = pm0, pnew
		aold = anew
	}
	p = pm0
	return
}

// GradJacobiP evaluates the derivative of the orthonormalized Jacobi
// polynomial of order N at the points r.
func GradJacobiP(r utils.Vector, alpha, beta float64, N int) (p []float64) {
	if N == 0 {
		p = make([]float64, r.Len())
		return
	}
	p = JacobiP(r, alpha+1, beta+1, N-1)
	fN := float64(N)
	fac := math.Sqrt(fN * (fN + alpha + beta + 1))
	for i, val := range p {
		p[i] = val * fac
	}
	return
}

func Vandermonde1D(alpha, beta float64, N int, R utils.Vector) (V utils.Matrix) {
	V = utils.NewMatrix(R.Len(), N+1)
	for j := 0; j < N+1; j++ {
		V.SetCol(j, JacobiP(R, alpha, beta, j))
	}
	return
}

func GradVandermonde1D(alpha, beta float64, N int, R utils.Vector) (Vr utils.Matrix) {
	Vr = utils.NewMatrix(R.Len(), N+1)
	for j := 0; j < N+1; j++ {
		Vr.SetCol(j, GradJacobiP(R, alpha, beta, j))
	}
	return
}

func gamma0(alpha, beta float64) float64 {
	ab1 := alpha + beta + 1.
	a1 := alpha + 1.
	b1 := beta + 1.
	return math.Gamma(a1) * math.Gamma(b1) * math.Pow(2, ab1) / ab1 / math.Gamma(ab1)
}

func gamma1(alpha, beta float64) float64 {
	ab := alpha + beta
	a1 := alpha + 1.
	b1 := beta + 1.
	return a1 * b1 * gamma0(alpha, beta) / (ab + 3.0)
}

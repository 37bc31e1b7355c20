package SEM1D

import (
	"fmt"

	"github.com/notargets/sem1d/InputParameters"
	"github.com/notargets/sem1d/utils"
)

// GridPolicy is the closed enumeration of grid generation policies. Only
// Homogeneous is generated here; File consumes externally loaded data;
// Gradient and Miscellaneous are recognized but fail fast as unimplemented.
type GridPolicy uint8

const (
	Homogeneous GridPolicy = iota
	Gradient
	Miscellaneous
	File
)

var policyNames = []string{"homogeneous", "gradient", "miscellaneous", "file"}

func (gp GridPolicy) String() string { return policyNames[gp] }

func ParseGridPolicy(tag string) (gp GridPolicy, err error) {
	for i, name := range policyNames {
		if tag == name {
			return GridPolicy(i), nil
		}
	}
	return 0, &UnsupportedGridTypeError{Tag: tag}
}

// Grid owns the assembled discretization: element boundary ticks, global DOF
// coordinates, per-(element, local node) material fields and Jacobians, and
// the per-element basis tables. It is read-only once built.
type Grid struct {
	Policy GridPolicy
	IM     *IndexMap
	Ticks  utils.Vector // nSpec+1 element boundaries, strictly increasing
	Z      utils.Vector // physical coordinate of every global DOF
	Rho    utils.Matrix // density per (element, local node)
	Mu     utils.Matrix // rigidity per (element, local node)
	DXdKsi utils.Matrix // Jacobian per (element, local node)
	DKsiDx utils.Matrix // inverse Jacobian per (element, local node)
	Basis  []BasisKind  // basis family per element, decided once at build time
	Tables []*Table     // quadrature table per element
}

// GridData carries externally loaded per-DOF fields for the file policy.
// Path is retained for error reporting only.
type GridData struct {
	Path       string
	Z, Rho, Mu []float64
	Ticks      []float64
}

// BuildGrid assembles a grid for the generated policies. The file policy
// bypasses generation and must go through NewGridFromData with the loaded
// arrays.
func BuildGrid(par *InputParameters.Parameters1D, reg *Registry) (g *Grid, err error) {
	if err = validateParameters(par); err != nil {
		return
	}
	policy, err := ParseGridPolicy(par.GridType)
	if err != nil {
		return
	}
	switch policy {
	case Homogeneous:
		// Uniform subdivision of [0, length]
	case Gradient, Miscellaneous:
		return nil, &UnsupportedGridTypeError{Tag: par.GridType, NotImplemented: true}
	case File:
		return nil, &InvalidParameterError{Param: "GRID_TYPE",
			Reason: `grid type "file" consumes externally loaded data, use NewGridFromData`}
	}
	var (
		nSpec = par.NSpec
		ticks = utils.NewVector(nSpec + 1)
		data  = ticks.DataP()
		dz    = par.Length / float64(nSpec)
	)
	for e := 1; e < nSpec; e++ {
		data[e] = float64(e) * dz
	}
	data[nSpec] = par.Length
	return assemble(par, reg, policy, ticks, nil)
}

// NewGridFromData assembles a grid from externally loaded per-DOF fields
// (file policy). The z, rho and mu arrays are indexed by global DOF; ticks
// lists the nSpec+1 element boundaries. Shape mismatches surface as
// DataLoadError before assembly proceeds.
func NewGridFromData(par *InputParameters.Parameters1D, reg *Registry, gd GridData) (g *Grid, err error) {
	if err = validateParameters(par); err != nil {
		return
	}
	nGlob := par.NGlob()
	if len(gd.Z) != nGlob || len(gd.Rho) != nGlob || len(gd.Mu) != nGlob {
		return nil, &DataLoadError{Path: gd.Path,
			Reason: fmt.Sprintf("expected %d rows of (z, rho, mu), got %d/%d/%d",
				nGlob, len(gd.Z), len(gd.Rho), len(gd.Mu))}
	}
	if len(gd.Ticks) != par.NSpec+1 {
		return nil, &DataLoadError{Path: gd.Path,
			Reason: fmt.Sprintf("expected %d ticks, got %d", par.NSpec+1, len(gd.Ticks))}
	}
	ticks := utils.NewVector(len(gd.Ticks), gd.Ticks)
	return assemble(par, reg, File, ticks, &gd)
}

func validateParameters(par *InputParameters.Parameters1D) error {
	switch {
	case par.Length <= 0:
		return &InvalidParameterError{Param: "LENGTH",
			Reason: fmt.Sprintf("domain length must be positive, got %g", par.Length)}
	case par.NSpec < 1:
		return &InvalidParameterError{Param: "NSPEC",
			Reason: fmt.Sprintf("element count must be at least 1, got %d", par.NSpec)}
	case par.Density <= 0:
		return &InvalidParameterError{Param: "DENSITY",
			Reason: fmt.Sprintf("density must be positive, got %g", par.Density)}
	case par.Rigidity <= 0:
		return &InvalidParameterError{Param: "RIGIDITY",
			Reason: fmt.Sprintf("rigidity must be positive, got %g", par.Rigidity)}
	}
	return nil
}

func assemble(par *InputParameters.Parameters1D, reg *Registry, policy GridPolicy,
	ticks utils.Vector, gd *GridData) (g *Grid, err error) {
	var (
		nSpec = par.NSpec
	)
	// Ticks must describe an orientation-preserving map
	for e := 0; e < nSpec; e++ {
		if ticks.AtVec(e+1) <= ticks.AtVec(e) {
			return nil, &DegenerateGeometryError{Element: e,
				Detail: fmt.Sprintf("ticks are not strictly increasing: ticks[%d]=%g, ticks[%d]=%g",
					e, ticks.AtVec(e), e+1, ticks.AtVec(e+1))}
		}
	}

	// The basis family of each element is fixed here, once: the first element
	// carries the GLJ basis when the domain is axisymmetric, every other
	// element is GLL.
	kind0 := GLL
	if par.Axisym {
		kind0 = GLJ
	}
	tab0, err := reg.Table(kind0, par.NGLJ)
	if err != nil {
		return
	}
	tabE, err := reg.Table(GLL, par.N)
	if err != nil {
		return
	}

	im, err := BuildMixedIndexMap(nSpec, par.NGLL(), par.NGLJPoints())
	if err != nil {
		return
	}

	nCols := par.NGLL()
	if par.NGLJPoints() > nCols {
		nCols = par.NGLJPoints()
	}
	g = &Grid{
		Policy: policy,
		IM:     im,
		Ticks:  ticks,
		Z:      utils.NewVector(im.NGlob()),
		Rho:    utils.NewMatrix(nSpec, nCols),
		Mu:     utils.NewMatrix(nSpec, nCols),
		DXdKsi: utils.NewMatrix(nSpec, nCols),
		DKsiDx: utils.NewMatrix(nSpec, nCols),
		Basis:  make([]BasisKind, nSpec),
		Tables: make([]*Table, nSpec),
	}
	for e := 0; e < nSpec; e++ {
		g.Basis[e] = GLL
		g.Tables[e] = tabE
	}
	g.Basis[0] = kind0
	g.Tables[0] = tab0

	// Material fields and global coordinates
	if gd != nil {
		zData := g.Z.DataP()
		copy(zData, gd.Z)
		for e := 0; e < nSpec; e++ {
			for i := 0; i < im.Width(e); i++ {
				k := im.At(e, i)
				g.Rho.Set(e, i, gd.Rho[k])
				g.Mu.Set(e, i, gd.Mu[k])
			}
		}
	} else {
		for e := 0; e < nSpec; e++ {
			for i := 0; i < im.Width(e); i++ {
				g.Rho.Set(e, i, par.Density)
				g.Mu.Set(e, i, par.Rigidity)
			}
		}
		zData := g.Z.DataP()
		for e := 0; e < nSpec; e++ {
			R := g.Tables[e].R
			for i := 0; i < im.Width(e); i++ {
				zData[im.At(e, i)] = Project(R.AtVec(i), e, ticks)
			}
		}
		// Close the domain at its right boundary exactly
		zData[im.NGlob()-1] = ticks.AtVec(nSpec)
	}

	// Jacobians from the derivative matrix applied to the element's physical
	// node coordinates. For the affine map this reduces to half the element
	// width, but the matrix form stays correct for curved extensions.
	for e := 0; e < nSpec; e++ {
		var (
			tab = g.Tables[e]
			np  = im.Width(e)
			xe  = utils.NewVector(np)
		)
		xeData := xe.DataP()
		for i := 0; i < np; i++ {
			xeData[i] = Project(tab.R.AtVec(i), e, ticks)
		}
		dXdKsi := tab.Dr.MulVec(xe)
		for i := 0; i < np; i++ {
			jac := dXdKsi.AtVec(i)
			if jac <= 0 {
				return nil, &DegenerateGeometryError{Element: e,
					Detail: fmt.Sprintf("non-positive Jacobian %g at local node %d", jac, i)}
			}
			g.DXdKsi.Set(e, i, jac)
			g.DKsiDx.Set(e, i, 1./jac)
		}
	}
	return
}

package SEM1D

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/sem1d/InputParameters"
)

func testParameters() (par *InputParameters.Parameters1D) {
	par = InputParameters.NewParameters1D()
	par.NSpec = 4
	par.N = 4
	par.NGLJ = 4
	par.Length = 3000
	return
}

func TestBuildGridHomogeneous(t *testing.T) {
	var (
		par = testParameters()
		reg = NewRegistry()
	)
	g, err := BuildGrid(par, reg)
	assert.NoError(t, err)

	// Round trip of the element boundaries
	expTicks := []float64{0, 750, 1500, 2250, 3000}
	assert.Equal(t, len(expTicks), g.Ticks.Len())
	for i, val := range expTicks {
		assert.True(t, near(g.Ticks.AtVec(i), val))
	}

	// Global coordinates close the domain exactly and never decrease
	nGlob := g.IM.NGlob()
	assert.Equal(t, par.NGlob(), nGlob)
	assert.Equal(t, 0., g.Z.AtVec(0))
	assert.Equal(t, 3000., g.Z.AtVec(nGlob-1))
	for k := 1; k < nGlob; k++ {
		assert.True(t, g.Z.AtVec(k) >= g.Z.AtVec(k-1))
	}

	// Uniform material fields
	for e := 0; e < par.NSpec; e++ {
		for i := 0; i < g.IM.Width(e); i++ {
			assert.Equal(t, par.Density, g.Rho.At(e, i))
			assert.Equal(t, par.Rigidity, g.Mu.At(e, i))
		}
	}

	// Affine elements: Jacobian is half the element width, positive, and
	// the inverse really is the reciprocal
	for e := 0; e < par.NSpec; e++ {
		for i := 0; i < g.IM.Width(e); i++ {
			assert.True(t, g.DXdKsi.At(e, i) > 0)
			assert.True(t, near(g.DXdKsi.At(e, i), 375))
			assert.True(t, near(g.DXdKsi.At(e, i)*g.DKsiDx.At(e, i), 1))
		}
	}
}

func TestBuildGridAxisymBasis(t *testing.T) {
	var (
		par = testParameters()
		reg = NewRegistry()
	)
	par.Axisym = true
	g, err := BuildGrid(par, reg)
	assert.NoError(t, err)
	assert.Equal(t, GLJ, g.Basis[0])
	for e := 1; e < par.NSpec; e++ {
		assert.Equal(t, GLL, g.Basis[e])
	}
	// First element nodes sit on the projected GLJ points, not GLL
	glj, err := reg.Table(GLJ, par.NGLJ)
	assert.NoError(t, err)
	gll, err := reg.Table(GLL, par.N)
	assert.NoError(t, err)
	for i := 0; i < par.NGLJPoints(); i++ {
		assert.True(t, near(g.Z.AtVec(i), Project(glj.R.AtVec(i), 0, g.Ticks)))
	}
	assert.False(t, near(g.Z.AtVec(1), Project(gll.R.AtVec(1), 0, g.Ticks)))

	// Without axial symmetry the first element reverts to GLL
	par.Axisym = false
	g, err = BuildGrid(par, reg)
	assert.NoError(t, err)
	assert.Equal(t, GLL, g.Basis[0])
	for i := 0; i < par.NGLL(); i++ {
		assert.True(t, near(g.Z.AtVec(i), Project(gll.R.AtVec(i), 0, g.Ticks)))
	}
}

func TestBuildGridPolicies(t *testing.T) {
	var (
		par = testParameters()
		reg = NewRegistry()
	)
	for _, tag := range []string{"gradient", "miscellaneous"} {
		par.GridType = tag
		g, err := BuildGrid(par, reg)
		assert.Nil(t, g)
		var ugt *UnsupportedGridTypeError
		assert.True(t, errors.As(err, &ugt))
		assert.True(t, ugt.NotImplemented)
		assert.Contains(t, err.Error(), tag)
	}
	{
		par.GridType = "banana"
		g, err := BuildGrid(par, reg)
		assert.Nil(t, g)
		var ugt *UnsupportedGridTypeError
		assert.True(t, errors.As(err, &ugt))
		assert.False(t, ugt.NotImplemented)
	}
}

func TestBuildGridInvalidParameters(t *testing.T) {
	var (
		reg = NewRegistry()
		ipe *InvalidParameterError
	)
	{
		par := testParameters()
		par.Length = -10
		_, err := BuildGrid(par, reg)
		assert.True(t, errors.As(err, &ipe))
		assert.Equal(t, "LENGTH", ipe.Param)
	}
	{
		par := testParameters()
		par.NSpec = 0
		_, err := BuildGrid(par, reg)
		assert.True(t, errors.As(err, &ipe))
		assert.Equal(t, "NSPEC", ipe.Param)
	}
	{
		par := testParameters()
		par.N = MaxDegree + 1
		_, err := BuildGrid(par, reg)
		assert.True(t, errors.As(err, &ipe))
		assert.Contains(t, err.Error(), "13")
	}
}

func TestNewGridFromData(t *testing.T) {
	var (
		par = testParameters()
		reg = NewRegistry()
	)
	par.GridType = "file"

	// BuildGrid refuses the file policy outright
	{
		_, err := BuildGrid(par, reg)
		var ipe *InvalidParameterError
		assert.True(t, errors.As(err, &ipe))
	}

	nGlob := par.NGlob()
	gd := homogeneousTestData(par, reg, t)
	{
		g, err := NewGridFromData(par, reg, gd)
		assert.NoError(t, err)
		assert.Equal(t, File, g.Policy)
		assert.True(t, near(g.Z.AtVec(nGlob-1), 3000))
		assert.Equal(t, 2500., g.Rho.At(2, 1))
		assert.True(t, near(g.DXdKsi.At(0, 0), 375))
	}
	// Shape mismatches surface as load errors before assembly
	{
		bad := gd
		bad.Z = gd.Z[:nGlob-1]
		_, err := NewGridFromData(par, reg, bad)
		var dle *DataLoadError
		assert.True(t, errors.As(err, &dle))
	}
	{
		bad := gd
		bad.Ticks = gd.Ticks[:par.NSpec]
		_, err := NewGridFromData(par, reg, bad)
		var dle *DataLoadError
		assert.True(t, errors.As(err, &dle))
	}
	// Non-monotonic ticks are degenerate geometry, not a silent fold
	{
		bad := gd
		bad.Ticks = append([]float64{}, gd.Ticks...)
		bad.Ticks[2] = bad.Ticks[1]
		_, err := NewGridFromData(par, reg, bad)
		var dge *DegenerateGeometryError
		assert.True(t, errors.As(err, &dge))
	}
}

// homogeneousTestData builds consistent per-DOF arrays for the file policy
// from a homogeneous grid of the same parameters.
func homogeneousTestData(par *InputParameters.Parameters1D, reg *Registry, t *testing.T) (gd GridData) {
	hpar := *par
	hpar.GridType = "homogeneous"
	g, err := BuildGrid(&hpar, reg)
	assert.NoError(t, err)
	nGlob := g.IM.NGlob()
	gd = GridData{
		Path:  "test data",
		Z:     append([]float64{}, g.Z.DataP()...),
		Rho:   make([]float64, nGlob),
		Mu:    make([]float64, nGlob),
		Ticks: append([]float64{}, g.Ticks.DataP()...),
	}
	for k := range gd.Rho {
		gd.Rho[k] = par.Density
		gd.Mu[k] = par.Rigidity
	}
	return
}

package Wave1D

import (
	"fmt"
	"math"

	"github.com/guptarohit/asciigraph"
	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/sem1d/InputParameters"
	"github.com/notargets/sem1d/SEM1D"
	"github.com/notargets/sem1d/readfiles"
	"github.com/notargets/sem1d/utils"
)

// Wave propagates a 1-D SH wave through the assembled spectral element grid
// with the explicit Newmark scheme: diagonal global mass from the quadrature
// weights, global stiffness assembled once into a sparse matrix and applied
// each step.
type Wave struct {
	Par    *InputParameters.Parameters1D
	Grid   *SEM1D.Grid
	Source *SEM1D.Source
	Dt     float64
	M      utils.Vector // diagonal global mass matrix
	K      *sparse.CSR  // global stiffness matrix
	U      utils.Vector // displacement
	V      utils.Vector // velocity
	A      utils.Vector // acceleration
	Time   float64
}

func NewWave(par *InputParameters.Parameters1D) (c *Wave, err error) {
	var (
		reg = SEM1D.NewRegistry()
		g   *SEM1D.Grid
	)
	if par.GridType == SEM1D.File.String() {
		var gd SEM1D.GridData
		if gd, err = readfiles.ReadGridData(par.GridFile, par.TicksFile, par.NGlob(), par.NSpec); err != nil {
			return
		}
		if g, err = SEM1D.NewGridFromData(par, reg, gd); err != nil {
			return
		}
	} else {
		if g, err = SEM1D.BuildGrid(par, reg); err != nil {
			return
		}
	}
	c = &Wave{
		Par:  par,
		Grid: g,
		Dt:   timeStep(par, g),
	}
	if c.Source, err = SEM1D.NewSource(par, c.Dt); err != nil {
		return nil, err
	}
	nGlob := g.IM.NGlob()
	c.M = assembleMass(g)
	c.K = assembleStiffness(g)
	c.U = utils.NewVector(nGlob)
	c.V = utils.NewVector(nGlob)
	c.A = utils.NewVector(nGlob)
	fmt.Printf("CFL = %8.4f, dt = %8.6g, N = %d, NSpec = %d, NGlob = %d\n",
		par.CFL, c.Dt, par.N, par.NSpec, nGlob)
	return
}

// timeStep derives dt from the CFL number, the smallest spacing between
// adjacent global nodes and the fastest shear wave speed of the medium.
func timeStep(par *InputParameters.Parameters1D, g *SEM1D.Grid) (dt float64) {
	var (
		z     = g.Z.DataP()
		dzMin = math.Inf(1)
		cMax  float64
	)
	for k := 1; k < len(z); k++ {
		if dz := z[k] - z[k-1]; dz > 0 && dz < dzMin {
			dzMin = dz
		}
	}
	for e := 0; e < g.IM.NSpec; e++ {
		for i := 0; i < g.IM.Width(e); i++ {
			if c := math.Sqrt(g.Mu.At(e, i) / g.Rho.At(e, i)); c > cMax {
				cMax = c
			}
		}
	}
	dt = par.CFL * dzMin / cMax
	return
}

// assembleMass sums w_i * rho * J at each node through the index map. The
// Lobatto bases make the global mass matrix diagonal.
func assembleMass(g *SEM1D.Grid) (M utils.Vector) {
	M = utils.NewVector(g.IM.NGlob())
	data := M.DataP()
	for e := 0; e < g.IM.NSpec; e++ {
		W := g.Tables[e].W
		for i := 0; i < g.IM.Width(e); i++ {
			data[g.IM.At(e, i)] += W.AtVec(i) * g.Rho.At(e, i) * g.DXdKsi.At(e, i)
		}
	}
	return
}

// assembleStiffness builds the global matrix of the weak Laplacian,
// K[I][J] = sum over elements of sum_a w_a * mu * Dr[a][i] * Dr[a][j] / J_a,
// accumulated in a DOK and frozen into CSR form for the stepping loop.
func assembleStiffness(g *SEM1D.Grid) (K *sparse.CSR) {
	var (
		nGlob = g.IM.NGlob()
		dok   = sparse.NewDOK(nGlob, nGlob)
	)
	for e := 0; e < g.IM.NSpec; e++ {
		var (
			tab = g.Tables[e]
			np  = g.IM.Width(e)
		)
		for i := 0; i < np; i++ {
			I := g.IM.At(e, i)
			for j := 0; j < np; j++ {
				J := g.IM.At(e, j)
				var ke float64
				for a := 0; a < np; a++ {
					ke += tab.W.AtVec(a) * g.Mu.At(e, a) *
						tab.Dr.At(a, i) * tab.Dr.At(a, j) * g.DKsiDx.At(e, a)
				}
				if ke != 0 {
					dok.Set(I, J, dok.At(I, J)+ke)
				}
			}
		}
	}
	K = dok.ToCSR()
	return
}

// Run advances the Newmark scheme for the configured number of steps with the
// source injected at the configured DOF. Boundaries are free surfaces, which
// are natural in the weak form.
func (c *Wave) Run() {
	var (
		logFrequency = 50
	)
	for tstep := 0; tstep < c.Par.NSteps; tstep++ {
		c.advance()
		if tstep%logFrequency == 0 {
			fmt.Printf("Time = %10.6f, max_u[%d] = %10.4g\n", c.Time, tstep, c.maxAbsU())
		}
		if c.Par.Plot && c.Par.DPlot > 0 && tstep%c.Par.DPlot == 0 {
			fmt.Println(c.PlotSnapshot())
		}
	}
	return
}

// advance moves the state forward one time step.
func (c *Wave) advance() {
	var (
		dt = c.Dt
		ku mat.VecDense
	)
	// Predictor
	c.U.Add(c.V.Copy().Scale(dt)).Add(c.A.Copy().Scale(dt * dt / 2.))
	c.V.Add(c.A.Copy().Scale(dt / 2.))
	// Acceleration against the diagonal mass
	ku.MulVec(c.K, c.U.V)
	aNew := utils.NewVector(c.U.Len())
	aData := aNew.DataP()
	for k := range aData {
		aData[k] = -ku.AtVec(k)
	}
	aData[c.Par.ISource] += c.Source.ValueAt(c.Time)
	aNew.ElDiv(c.M)
	// Corrector
	c.V.Add(aNew.Copy().Scale(dt / 2.))
	c.A = aNew
	c.Time += dt
}

// Energy returns the discrete energy 1/2 v'Mv + 1/2 u'Ku.
func (c *Wave) Energy() (en float64) {
	var ku mat.VecDense
	ku.MulVec(c.K, c.U.V)
	for k := 0; k < c.U.Len(); k++ {
		en += 0.5*c.M.AtVec(k)*c.V.AtVec(k)*c.V.AtVec(k) + 0.5*c.U.AtVec(k)*ku.AtVec(k)
	}
	return
}

func (c *Wave) maxAbsU() (max float64) {
	for _, val := range c.U.DataP() {
		if v := math.Abs(val); v > max {
			max = v
		}
	}
	return
}

// PlotSnapshot renders the displacement field as a terminal graph.
func (c *Wave) PlotSnapshot() string {
	return asciigraph.Plot(c.U.DataP(),
		asciigraph.Height(12), asciigraph.Caption("u(z)"))
}

// PlotGrid renders the density field over the grid DOFs.
func (c *Wave) PlotGrid() string {
	var (
		g    = c.Grid
		data = make([]float64, g.IM.NGlob())
	)
	for e := 0; e < g.IM.NSpec; e++ {
		for i := 0; i < g.IM.Width(e); i++ {
			data[g.IM.At(e, i)] = g.Rho.At(e, i)
		}
	}
	return asciigraph.Plot(data, asciigraph.Height(12), asciigraph.Caption("rho(z)"))
}

// PlotSource renders the source time function over its duration.
func (c *Wave) PlotSource(nSamples int) string {
	var (
		ts = make([]float64, nSamples)
		T  = 2. * c.Source.Hdur
	)
	for i := range ts {
		ts[i] = T * float64(i) / float64(nSamples-1)
	}
	return asciigraph.Plot(c.Source.Sample(ts).DataP(),
		asciigraph.Height(12), asciigraph.Caption("source(t)"))
}

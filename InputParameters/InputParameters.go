package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type Parameters1D struct {
	Title      string  `yaml:"Title"`
	Axisym     bool    `yaml:"Axisym"`     // true if axial symmetry
	Length     float64 `yaml:"Length"`     // physical length of the domain (m)
	NSpec      int     `yaml:"NSpec"`      // number of elements
	N          int     `yaml:"N"`          // degree of the basis functions
	NGLJ       int     `yaml:"NGLJ"`       // degree of the basis functions in the first element
	NSteps     int     `yaml:"NSteps"`     // number of time steps
	CFL        float64 `yaml:"CFL"`        // Courant CFL number
	GridType   string  `yaml:"GridType"`   // homogeneous, gradient, miscellaneous or file
	GridFile   string  `yaml:"GridFile"`   // (z, rho, mu) columns, file grid type only
	TicksFile  string  `yaml:"TicksFile"`  // element boundaries, file grid type only
	Density    float64 `yaml:"Density"`    // kg/m^3
	Rigidity   float64 `yaml:"Rigidity"`   // Pa
	TSource    float64 `yaml:"TSource"`    // duration of the source in dt
	ISource    int     `yaml:"ISource"`    // global DOF on which the source sits
	MaxAmpl    float64 `yaml:"MaxAmpl"`    // maximum amplitude
	SourceType string  `yaml:"SourceType"` // ricker
	DecayRate  float64 `yaml:"DecayRate"`  // decay rate for the ricker
	Plot       bool    `yaml:"Plot"`       // plot grid, source and periodic snapshots
	DPlot      int     `yaml:"DPlot"`      // one snapshot each DPlot time steps
}

// NewParameters1D returns the defaults of the standard homogeneous test case.
func NewParameters1D() (ip *Parameters1D) {
	ip = &Parameters1D{
		Title:      "1D spectral elements",
		Axisym:     true,
		Length:     3000,
		NSpec:      250,
		N:          4,
		NGLJ:       4,
		NSteps:     2,
		CFL:        0.45,
		GridType:   "homogeneous",
		GridFile:   "grid_homogeneous.txt",
		TicksFile:  "ticks_homogeneous.txt",
		Density:    2500,
		Rigidity:   3.e10,
		TSource:    100,
		ISource:    0,
		MaxAmpl:    1.e7,
		SourceType: "ricker",
		DecayRate:  2.628,
		DPlot:      10,
	}
	return
}

func (ip *Parameters1D) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *Parameters1D) Print() {
	fmt.Printf("\"%s\"\t= Title\n", ip.Title)
	fmt.Printf("%v\t\t\t= Axisym\n", ip.Axisym)
	fmt.Printf("%8.2f\t\t= Length\n", ip.Length)
	fmt.Printf("[%d]\t\t\t= NSpec\n", ip.NSpec)
	fmt.Printf("[%d]\t\t\t= N\n", ip.N)
	fmt.Printf("[%d]\t\t\t= NGLJ\n", ip.NGLJ)
	fmt.Printf("[%d]\t\t\t= NSteps\n", ip.NSteps)
	fmt.Printf("%8.5f\t\t= CFL\n", ip.CFL)
	fmt.Printf("[%s]\t= Grid Type\n", ip.GridType)
	fmt.Printf("%8.1f\t\t= Density\n", ip.Density)
	fmt.Printf("%8.3g\t\t= Rigidity\n", ip.Rigidity)
	fmt.Printf("[%s]\t\t= Source Type\n", ip.SourceType)
	fmt.Printf("%8.1f\t\t= TSource\n", ip.TSource)
	fmt.Printf("%8.3f\t\t= DecayRate\n", ip.DecayRate)
}

// Derived counts

// NGLL is the number of GLL points per element.
func (ip *Parameters1D) NGLL() int { return ip.N + 1 }

// NGLJPoints is the number of GLJ points in the first element.
func (ip *Parameters1D) NGLJPoints() int { return ip.NGLJ + 1 }

// NGlob is the total number of global DOFs: interior elements share their
// boundary nodes, the first element contributes NGLJ+1 points.
func (ip *Parameters1D) NGlob() int { return (ip.NSpec-1)*ip.N + ip.NGLJ + 1 }

// Validate performs the basic sanity checks that do not require the core
// engine; the engine re-validates with its own typed errors on construction.
func (ip *Parameters1D) Validate() error {
	switch {
	case ip.Length <= 0:
		return fmt.Errorf("Length must be positive, got %g", ip.Length)
	case ip.NSpec < 1:
		return fmt.Errorf("NSpec must be at least 1, got %d", ip.NSpec)
	case ip.N < 1:
		return fmt.Errorf("N must be at least 1, got %d", ip.N)
	case ip.NGLJ < 1:
		return fmt.Errorf("NGLJ must be at least 1, got %d", ip.NGLJ)
	case ip.NSteps < 1:
		return fmt.Errorf("NSteps must be at least 1, got %d", ip.NSteps)
	case ip.CFL <= 0:
		return fmt.Errorf("CFL must be positive, got %g", ip.CFL)
	case ip.ISource < 0 || ip.ISource >= ip.NGlob():
		return fmt.Errorf("ISource must lie in [0,%d), got %d", ip.NGlob(), ip.ISource)
	}
	return nil
}

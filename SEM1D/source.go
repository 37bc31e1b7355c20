package SEM1D

import (
	"fmt"
	"math"

	"github.com/notargets/sem1d/InputParameters"
	"github.com/notargets/sem1d/utils"
)

// SourceKind is the closed enumeration of time-domain excitation families.
type SourceKind uint8

const (
	Ricker SourceKind = iota
)

var sourceNames = []string{"ricker"}

func (sk SourceKind) String() string { return sourceNames[sk] }

func ParseSourceKind(tag string) (sk SourceKind, err error) {
	for i, name := range sourceNames {
		if tag == name {
			return SourceKind(i), nil
		}
	}
	return 0, &UnsupportedSourceTypeError{Tag: tag}
}

// Source is a time-domain excitation. The ricker family is the derivative of
// a Gaussian: an odd pulse about t = Hdur with zero crossing exactly there.
// A Source is stateless after construction.
type Source struct {
	Kind      SourceKind
	Ampl      float64
	Hdur      float64 // source duration in seconds
	DecayRate float64
	alpha     float64
}

// NewSource builds the excitation from the configured family. The duration
// is TSOURCE time steps of size dt.
func NewSource(par *InputParameters.Parameters1D, dt float64) (s *Source, err error) {
	kind, err := ParseSourceKind(par.SourceType)
	if err != nil {
		return
	}
	if dt <= 0 {
		return nil, &InvalidParameterError{Param: "dt",
			Reason: fmt.Sprintf("time step must be positive, got %g", dt)}
	}
	if par.TSource <= 0 {
		return nil, &InvalidParameterError{Param: "TSOURCE",
			Reason: fmt.Sprintf("source duration must be positive, got %g", par.TSource)}
	}
	hdur := par.TSource * dt
	s = &Source{
		Kind:      kind,
		Ampl:      par.MaxAmpl,
		Hdur:      hdur,
		DecayRate: par.DecayRate,
		alpha:     par.DecayRate / hdur,
	}
	return
}

// ValueAt evaluates the excitation at time t.
func (s *Source) ValueAt(t float64) float64 {
	var (
		a  = s.alpha
		ts = t - s.Hdur
	)
	return s.Ampl * -2. * (a * a * a) * ts * math.Exp(-a*a*ts*ts) / math.Sqrt(math.Pi)
}

// Sample evaluates the excitation at every time in ts.
func (s *Source) Sample(ts []float64) (V utils.Vector) {
	V = utils.NewVector(len(ts), append([]float64{}, ts...))
	V.Apply(s.ValueAt)
	return
}

package SEM1D

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/sem1d/InputParameters"
)

func TestRickerSource(t *testing.T) {
	var (
		par = InputParameters.NewParameters1D()
		dt  = 1.e-3
	)
	src, err := NewSource(par, dt)
	assert.NoError(t, err)
	hdur := par.TSource * dt
	assert.Equal(t, hdur, src.Hdur)

	// Zero crossing exactly at the duration midpoint
	assert.Equal(t, 0., src.ValueAt(hdur))

	// Odd about t = hdur
	for _, s := range []float64{1.e-3, 5.e-3, 2.e-2, 5.e-2} {
		assert.True(t, near(src.ValueAt(hdur+s), -src.ValueAt(hdur-s)))
	}

	// The pulse decays away from the midpoint
	assert.True(t, math.Abs(src.ValueAt(hdur+10*hdur)) < math.Abs(src.ValueAt(hdur+hdur/4)))

	// Bulk evaluation matches scalar evaluation
	ts := []float64{0, hdur / 3, hdur, 1.5 * hdur, 2 * hdur}
	V := src.Sample(ts)
	assert.Equal(t, len(ts), V.Len())
	for i, tv := range ts {
		assert.Equal(t, src.ValueAt(tv), V.AtVec(i))
	}

	// Bulk evaluation of no times is a valid empty result
	assert.Equal(t, 0, src.Sample(nil).Len())
	assert.Equal(t, 0, src.Sample([]float64{}).Len())
}

func TestSourceErrors(t *testing.T) {
	par := InputParameters.NewParameters1D()
	{
		par.SourceType = "boxcar"
		_, err := NewSource(par, 1.e-3)
		var ust *UnsupportedSourceTypeError
		assert.True(t, errors.As(err, &ust))
		assert.Contains(t, err.Error(), "boxcar")
	}
	{
		par.SourceType = "ricker"
		_, err := NewSource(par, 0)
		var ipe *InvalidParameterError
		assert.True(t, errors.As(err, &ipe))
	}
	{
		par.TSource = -1
		_, err := NewSource(par, 1.e-3)
		var ipe *InvalidParameterError
		assert.True(t, errors.As(err, &ipe))
		assert.Equal(t, "TSOURCE", ipe.Param)
	}
}

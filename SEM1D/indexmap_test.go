package SEM1D

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexMap(t *testing.T) {
	// Uniform map follows ibool[e][i] = e*(nGLL-1) + i
	{
		nSpec, nGLL := 5, 5
		im, err := BuildIndexMap(nSpec, nGLL)
		assert.NoError(t, err)
		for e := 0; e < nSpec; e++ {
			for i := 0; i < nGLL; i++ {
				assert.Equal(t, e*(nGLL-1)+i, im.At(e, i))
			}
		}
		// Adjacent elements share their boundary node
		for e := 0; e < nSpec-1; e++ {
			assert.Equal(t, im.At(e, nGLL-1), im.At(e+1, 0))
		}
		// The values cover [0, nGlob) exactly
		seen := make(map[int]bool)
		for e := 0; e < nSpec; e++ {
			for i := 0; i < nGLL; i++ {
				seen[im.At(e, i)] = true
			}
		}
		assert.Equal(t, im.NGlob(), len(seen))
		assert.Equal(t, (nSpec-1)*(nGLL-1)+nGLL, im.NGlob())
	}
	// Mixed map carries a wider first element
	{
		im, err := BuildMixedIndexMap(3, 5, 7)
		assert.NoError(t, err)
		assert.Equal(t, 7, im.Width(0))
		assert.Equal(t, 5, im.Width(1))
		assert.Equal(t, im.At(0, 6), im.At(1, 0))
		assert.Equal(t, im.At(1, 4), im.At(2, 0))
		// nGlob = (nSpec-1)*N + NGLJ + 1 with N=4, NGLJ=6
		assert.Equal(t, 2*4+6+1, im.NGlob())
	}
	// Single element still valid
	{
		im, err := BuildIndexMap(1, 3)
		assert.NoError(t, err)
		assert.Equal(t, 3, im.NGlob())
	}
	// Invalid arguments
	{
		var ipe *InvalidParameterError
		_, err := BuildIndexMap(0, 5)
		assert.True(t, errors.As(err, &ipe))
		_, err = BuildIndexMap(4, 1)
		assert.True(t, errors.As(err, &ipe))
	}
}

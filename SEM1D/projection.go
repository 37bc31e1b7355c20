package SEM1D

import "github.com/notargets/sem1d/utils"

// Project maps the reference coordinate ksi in [-1,1] to the physical
// interval [ticks[e], ticks[e+1]] of element e. The map is affine (curved
// elements are not supported) and exact at the endpoints.
func Project(ksi float64, e int, ticks utils.Vector) float64 {
	var (
		za = ticks.AtVec(e)
		zb = ticks.AtVec(e + 1)
	)
	switch ksi {
	case -1:
		return za
	case 1:
		return zb
	}
	return za + (ksi+1.)/2.*(zb-za)
}

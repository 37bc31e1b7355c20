package SEM1D

import "fmt"

// IndexMap is the deterministic mapping from (element, local node) pairs to
// global degree-of-freedom indices. Elements are laid end to end, so adjacent
// elements share their boundary node by construction of the formula rather
// than by an explicit merge step. The first element may carry a different
// point count than the rest (NGLJ+1 versus N+1) when the axisymmetric basis
// is in use.
type IndexMap struct {
	NSpec   int
	widths  []int // points per element
	offsets []int // global index of each element's first node
	nGlob   int
}

// BuildIndexMap constructs the uniform map ibool[e][i] = e*(nGLL-1) + i.
func BuildIndexMap(nSpec, nGLL int) (im *IndexMap, err error) {
	return BuildMixedIndexMap(nSpec, nGLL, nGLL)
}

// BuildMixedIndexMap is BuildIndexMap with a distinct point count nFirst in
// the first element, so that nGlob = (nSpec-1)*(nGLL-1) + nFirst.
func BuildMixedIndexMap(nSpec, nGLL, nFirst int) (im *IndexMap, err error) {
	if nSpec < 1 {
		return nil, &InvalidParameterError{Param: "NSPEC",
			Reason: fmt.Sprintf("element count must be at least 1, got %d", nSpec)}
	}
	if nGLL < 2 || nFirst < 2 {
		return nil, &InvalidParameterError{Param: "N",
			Reason: fmt.Sprintf("elements need at least 2 points, got nGLL=%d, nFirst=%d", nGLL, nFirst)}
	}
	im = &IndexMap{
		NSpec:   nSpec,
		widths:  make([]int, nSpec),
		offsets: make([]int, nSpec),
	}
	var offset int
	for e := 0; e < nSpec; e++ {
		w := nGLL
		if e == 0 {
			w = nFirst
		}
		im.widths[e] = w
		im.offsets[e] = offset
		offset += w - 1 // last node is shared with the next element
	}
	im.nGlob = offset + 1
	return
}

// At returns the global DOF index of local node i in element e.
func (im *IndexMap) At(e, i int) int { return im.offsets[e] + i }

// Width returns the number of local nodes in element e.
func (im *IndexMap) Width(e int) int { return im.widths[e] }

// NGlob returns the total number of global DOFs.
func (im *IndexMap) NGlob() int { return im.nGlob }

package SEM1D

import "fmt"

// Registry holds one Table per (kind, degree) pair for every supported
// degree. It replaces the original global lookup tables keyed by degree:
// built once up front, strictly read-only afterwards, so it can be shared
// across grids at the same polynomial degree without synchronization.
type Registry struct {
	tables map[BasisKind]map[int]*Table
}

func NewRegistry() (reg *Registry) {
	reg = &Registry{
		tables: map[BasisKind]map[int]*Table{
			GLL: make(map[int]*Table),
			GLJ: make(map[int]*Table),
		},
	}
	for _, kind := range []BasisKind{GLL, GLJ} {
		for degree := MinDegree; degree <= MaxDegree; degree++ {
			tab, err := NewTable(kind, degree)
			if err != nil {
				// Every degree in the supported range must construct.
				panic(err)
			}
			reg.tables[kind][degree] = tab
		}
	}
	return
}

// Table returns the quadrature table for the requested basis family and
// degree. Degrees outside [MinDegree, MaxDegree] fail with
// InvalidParameterError naming the degree.
func (reg *Registry) Table(kind BasisKind, degree int) (tab *Table, err error) {
	if tab = reg.tables[kind][degree]; tab == nil {
		return nil, &InvalidParameterError{
			Param: "degree",
			Reason: fmt.Sprintf("no %s quadrature exists for degree %d, supported range is [%d,%d]",
				kind, degree, MinDegree, MaxDegree),
		}
	}
	return
}

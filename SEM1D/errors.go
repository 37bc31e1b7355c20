package SEM1D

import "fmt"

// All construction errors are unrecoverable: the engine never hands back a
// partially assembled grid or table. Each type names the parameter or
// invariant that was violated so the caller can report a concrete
// configuration problem.

type InvalidParameterError struct {
	Param  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Param, e.Reason)
}

type UnsupportedGridTypeError struct {
	Tag            string
	NotImplemented bool
}

func (e *UnsupportedGridTypeError) Error() string {
	if e.NotImplemented {
		return fmt.Sprintf("grid type %q is not implemented", e.Tag)
	}
	return fmt.Sprintf("unknown grid type %q", e.Tag)
}

type UnsupportedSourceTypeError struct {
	Tag string
}

func (e *UnsupportedSourceTypeError) Error() string {
	return fmt.Sprintf("unknown source type %q", e.Tag)
}

type DegenerateGeometryError struct {
	Element int
	Detail  string
}

func (e *DegenerateGeometryError) Error() string {
	return fmt.Sprintf("degenerate geometry in element %d: %s", e.Element, e.Detail)
}

type DataLoadError struct {
	Path   string
	Reason string
	Err    error
}

func (e *DataLoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unable to load grid data from %q: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("unable to load grid data from %q: %s", e.Path, e.Reason)
}

func (e *DataLoadError) Unwrap() error { return e.Err }

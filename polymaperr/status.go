// Package polymaperr collects the sentinel error values named by spec
// §7, following the bitmask-status idiom of the teacher's
// detour.DtStatus (status.go): a small set of named constants any
// caller can compare against with errors.Is, rather than ad hoc string
// matching.
package polymaperr

import "errors"

// Kind identifies one of the error categories of spec §7.
type Kind uint32

const (
	// InvalidPolygon: fewer than three vertices, duplicate consecutive
	// vertices, or self-intersection. Fatal for that polygon only.
	InvalidPolygon Kind = 1 << iota
	// BoundingTriangleFailure: no valid minimum bounding triangle found.
	BoundingTriangleFailure
	// DegenerateCorridor: two consecutive portal edges share no vertex.
	DegenerateCorridor
	// EdgeOverfull: an edge was assigned a third owning triangle.
	EdgeOverfull
	// PointOutside: a query point is not in any known region.
	PointOutside
	// CrossRegionPath: a session's start and end points lie in
	// different regions.
	CrossRegionPath
)

// sentinel implements error for a single Kind, with a fixed message.
type sentinel struct {
	kind Kind
	msg  string
}

func (s *sentinel) Error() string { return s.msg }

var (
	ErrInvalidPolygon         error = &sentinel{InvalidPolygon, "polymap: invalid polygon"}
	ErrBoundingTriangleFailed error = &sentinel{BoundingTriangleFailure, "polymap: bounding triangle build failed"}
	ErrDegenerateCorridor     error = &sentinel{DegenerateCorridor, "polymap: degenerate corridor"}
	ErrEdgeOverfull           error = &sentinel{EdgeOverfull, "polymap: edge claimed by a third triangle"}
	ErrPointOutside           error = &sentinel{PointOutside, "polymap: point is outside every region"}
	ErrCrossRegionPath        error = &sentinel{CrossRegionPath, "polymap: start and end points are in different regions"}
)

// Is reports whether err is, or wraps, the sentinel for kind.
func Is(err error, kind Kind) bool {
	var s *sentinel
	if errors.As(err, &s) {
		return s.kind == kind
	}
	return false
}

package volmesh

import "errors"

var (
	// ErrOutOfRange reports a vertex, element or local-vertex index outside
	// its valid interval. Queries that detect it return no value.
	ErrOutOfRange = errors.New("volmesh: index out of range")

	// ErrMalformedInput reports construction input inconsistent with the
	// declared counts, e.g. a coordinate or arity slice that is too short.
	ErrMalformedInput = errors.New("volmesh: malformed construction input")

	// ErrDimensionMismatch reports a query point whose dimension differs
	// from the mesh dimension.
	ErrDimensionMismatch = errors.New("volmesh: dimension mismatch")

	// ErrDegenerateElement reports an element whose geometry collapses
	// (zero area or volume), making weights undefined.
	ErrDegenerateElement = errors.New("volmesh: degenerate element")
)

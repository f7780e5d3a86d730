package tsplib

import (
	"errors"

	"github.com/katalvlaran/tspmeta/tsp"
)

// Sentinel errors returned by Parse and Load.
var (
	// ErrMalformed is returned for unparsable header or coordinate lines.
	ErrMalformed = errors.New("tsplib: malformed input")

	// ErrNoPoints is returned when the coordinate section is missing or empty.
	ErrNoPoints = errors.New("tsplib: no coordinates")

	// ErrUnsupportedWeightType is returned for non-Euclidean EDGE_WEIGHT_TYPE values.
	ErrUnsupportedWeightType = errors.New("tsplib: unsupported edge weight type")

	// ErrDimensionMismatch is returned when DIMENSION disagrees with the point count.
	ErrDimensionMismatch = errors.New("tsplib: dimension does not match coordinates")

	// ErrDuplicateID is returned when two coordinate lines share a node id.
	ErrDuplicateID = errors.New("tsplib: duplicate node id")
)

// Instance is a parsed problem: metadata plus points in file order.
// The solvers only consume Points; the rest is passed through to reports.
type Instance struct {
	Name           string
	Type           string
	Comment        string
	EdgeWeightType string

	// Dimension is the declared DIMENSION, or len(Points) when absent.
	Dimension int

	Points []tsp.Point
}

// Package tsplib reads TSPLIB-style coordinate files into tsp points.
//
// Supported layout:
//
//	NAME : square4
//	TYPE : TSP
//	COMMENT : unit square
//	DIMENSION : 4
//	EDGE_WEIGHT_TYPE : EUC_2D
//	NODE_COORD_SECTION
//	1 0 0
//	2 0 1
//	3 1 1
//	4 1 0
//	EOF
//
// Header keys are case-insensitive and the colon is optional ("DIMENSION 4"
// and "DIMENSION: 4" are both accepted). Unknown header keys are ignored.
// Only planar Euclidean weight types are accepted (EUC_2D, CEIL_2D, ATT, or
// none); every one of them is solved with plain Euclidean distances.
//
// Errors are sentinels (ErrMalformed, ErrNoPoints, ErrUnsupportedWeightType,
// ErrDimensionMismatch) wrapped with the offending line number.
package tsplib

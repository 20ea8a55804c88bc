// Package simplify rewrites arbitrary 2D vector paths as simple outlines.
//
// # Overview
//
// A path made of lines, quadratic and cubic Bezier curves may self-intersect,
// contain multiple overlapping sub-contours, and use any fill rule. Simplify
// computes an equivalent path whose outline consists of one or more simple
// (non-self-intersecting) closed contours, renders identically under the
// even-odd fill rule, and contains no overlapping or coincident edges.
//
// # Quick Start
//
//	import "github.com/gogpu/simplify"
//
//	src := simplify.NewPath()
//	src.SetFillType(simplify.FillWinding)
//	src.Rectangle(0, 0, 10, 10)
//	src.Rectangle(5, 5, 10, 10)
//
//	dst := simplify.NewPath()
//	simplify.Simplify(src, dst)
//	// dst now holds the merged outline with fill type FillEvenOdd.
//
// # Pipeline
//
// Simplify splits the input into contours of curve segments, intersects
// every segment pair, resolves coincident runs, assigns winding numbers by
// ray casting, and finally walks the resulting edge graph from the topmost
// unprocessed edge, keeping only the edges that separate filled from
// unfilled area.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Path points are stored in single precision at the boundary; all internal
// geometry is evaluated in double precision.
//
// # Limitations
//
// Open sub-paths, conic sections and elliptical arcs are not supported.
// When curve tangents coincide at a junction up to the third derivative, the
// angular ordering of edges is best-effort. Results are not guaranteed to be
// bit-for-bit identical across platforms.
package simplify

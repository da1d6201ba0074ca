// Package strokefill converts stroked vector paths into filled outlines.
//
// # Overview
//
// Rasterizers typically only know how to fill paths. strokefill solves
// the stroke side of the problem: given a flattened path (straight-line
// segments only) and a stroke style (width, cap, join, miter limit), it
// produces a new path whose filled area is exactly the stroked line.
//
// The output is a flat list of independent closed contours: an offset
// quad per segment, a join contour per interior vertex, and a cap
// contour per free subpath end. The contours overlap on purpose; fill
// them with a nonzero winding rule to obtain the stroke shape.
//
// # Quick Start
//
//	import "github.com/gogpu/strokefill"
//
//	p := strokefill.NewPath()
//	p.MoveTo(0, 0)
//	p.LineTo(100, 0)
//	p.LineTo(100, 100)
//
//	style := strokefill.DefaultStrokeStyle().
//		WithWidth(8).
//		WithCap(strokefill.LineCapRound).
//		WithJoin(strokefill.LineJoinRound)
//
//	outline, err := strokefill.StrokeToPath(p, style)
//	if err != nil {
//		// zero-length segment or unflattened curve in the input
//	}
//	// fill outline with a nonzero winding rule
//
// # Curved Input
//
// StrokeToPath rejects quadratic and cubic operations. Flatten curved
// paths first:
//
//	outline, err := strokefill.StrokeToPath(strokefill.Flatten(p, 0.1), style)
//
// # Coordinate System
//
// The library is agnostic to axis orientation. "Left" normals follow
// the mathematical convention: perpendicular to the direction of
// travel, rotated counter-clockwise in a y-up frame.
//
// # Dashing
//
// StrokeStyle carries a dash pattern, but dash expansion is not yet
// implemented; strokes are rendered solid. See StrokeStyle.Dash.
package strokefill

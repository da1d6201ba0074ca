package strokefill

import "fmt"

// StrokeToPath converts a flattened path plus a stroke style into a new
// path describing the filled outline of the stroke.
//
// The result is a flat list of independent closed contours: one offset
// quad per input segment, a join contour at each interior vertex and at
// subpath closure, and a cap contour at each free end of an open
// subpath. Contours are allowed to overlap; the union of all contours
// under a fill rule that handles self-overlap is the stroke shape.
// Nonzero winding is recommended; even-odd produces seams where
// contours overlap an even number of times.
//
// Only move/line/close operations are accepted. Curved operations must
// be flattened upstream (see Flatten); encountering one returns
// ErrUnsupportedPathOp. A zero-length line segment returns
// ErrZeroLengthSegment. Any error aborts the whole conversion.
func StrokeToPath(path *Path, style StrokeStyle) (*Path, error) {
	out := BuildPath()
	halfWidth := style.Width / 2

	var (
		cur        Point
		lastNormal Vector
		start      *subpathStart
	)

	for i, el := range path.Elements() {
		switch e := el.(type) {
		case MoveTo:
			if start != nil {
				// A new MoveTo finalizes the previous open subpath as an
				// independently capped stroke.
				capLine(out, style, cur, lastNormal)
				capLine(out, style, start.point, start.normal.Neg())
			}
			start = nil
			cur = e.Point

		case LineTo:
			normal, err := Normal(cur, e.Point)
			if err != nil {
				return nil, fmt.Errorf("strokefill: op %d: %w", i, err)
			}
			if start == nil {
				start = &subpathStart{point: cur, normal: normal}
			} else {
				joinLine(out, style, cur, lastNormal, normal)
			}
			offsetQuad(out, cur, e.Point, normal, halfWidth)
			lastNormal = normal
			cur = e.Point

		case Close:
			if start != nil {
				if cur != start.point {
					closeNormal, err := Normal(cur, start.point)
					if err != nil {
						return nil, fmt.Errorf("strokefill: op %d: %w", i, err)
					}
					offsetQuad(out, cur, start.point, closeNormal, halfWidth)
					joinLine(out, style, start.point, closeNormal, start.normal)
				} else {
					// The last LineTo already returned to the start point,
					// so only the loop join remains.
					joinLine(out, style, start.point, lastNormal, start.normal)
				}
				cur = start.point
				start = nil
			}

		case QuadTo:
			return nil, fmt.Errorf("strokefill: op %d: %w", i, ErrUnsupportedPathOp)

		case CubicTo:
			return nil, fmt.Errorf("strokefill: op %d: %w", i, ErrUnsupportedPathOp)
		}
	}

	// Input ended with the subpath still open: cap both ends, exactly
	// as an intervening MoveTo would have.
	if start != nil {
		capLine(out, style, cur, lastNormal)
		capLine(out, style, start.point, start.normal.Neg())
	}

	return out.Path(), nil
}

// subpathStart records the first point of the open subpath and the
// normal of its first segment, so a later MoveTo, Close, or the end of
// input can cap or join the subpath correctly.
type subpathStart struct {
	point  Point
	normal Vector
}

// offsetQuad emits the closed quad contour of one stroked segment: the
// four corners sit at halfWidth along the unit normal on either side of
// the segment's endpoints.
func offsetQuad(b *PathBuilder, p0, p1 Point, normal Vector, halfWidth float32) {
	b.MoveTo(p0.Add(normal.Mul(halfWidth)))
	b.LineTo(p1.Add(normal.Mul(halfWidth)))
	b.LineTo(p1.Add(normal.Mul(-halfWidth)))
	b.LineTo(p0.Add(normal.Mul(-halfWidth)))
	b.Close()
}

// capLine emits the cap contour for an open subpath end at pt. The
// normal is the adjoining segment's left unit normal; for the subpath's
// start it must be flipped so the cap extends backward.
func capLine(b *PathBuilder, style StrokeStyle, pt Point, normal Vector) {
	offset := style.Width / 2
	switch style.Cap {
	case LineCapButt:
		// nothing to do

	case LineCapRound:
		b.MoveTo(pt.Add(normal.Mul(offset)))
		arc(b, pt, offset, normal, normal.Neg())
		b.Close()

	case LineCapSquare:
		// vector parallel to the direction of travel
		v := normal.Unperp()
		end := pt.Add(v.Mul(offset))
		b.MoveTo(pt.Add(normal.Mul(offset)))
		b.LineTo(end.Add(normal.Mul(offset)))
		b.LineTo(end.Add(normal.Mul(-offset)))
		b.LineTo(pt.Add(normal.Mul(-offset)))
		b.Close()
	}
}

// isInteriorAngle reports whether the turn from the segment with normal
// a to the segment with normal b bends toward the a side. Angles of 0
// and 180 degrees both make the perp-dot test evaluate to zero; 0
// degrees is treated as interior and 180 degrees as exterior, hence the
// exact-equality term.
func isInteriorAngle(a, b Vector) bool {
	return a.Perp().Dot(b) > 0 || a == b
}

// joinLine emits the join contour at the vertex pt between the segment
// with normal s1 and the segment with normal s2.
func joinLine(b *PathBuilder, style StrokeStyle, pt Point, s1, s2 Vector) {
	if isInteriorAngle(s1, s2) {
		// Flip to the convex side and swap so the join still runs from
		// the incoming edge to the outgoing edge.
		s1, s2 = s2.Neg(), s1.Neg()
	}

	// The contour returns through pt, which lies halfway on the stroked
	// line; rasterizers may not hit exactly the same spot from the
	// adjoining quads, which can cause seams.
	offset := style.Width / 2
	switch style.Join {
	case LineJoinRound:
		b.MoveTo(pt.Add(s1.Mul(offset)))
		arc(b, pt, offset, s1, s2)
		b.LineTo(pt)
		b.Close()

	case LineJoinMiter:
		cosTheta := -s1.Dot(s2)
		if 2 <= style.MiterLimit*style.MiterLimit*(1-cosTheta) {
			start := pt.Add(s1.Mul(offset))
			end := pt.Add(s2.Mul(offset))
			intersection, err := lineIntersection(start, s1, end, s2)
			if err != nil {
				// Collinear offset lines have no miter point; the bevel
				// is the limit shape.
				Logger().Debug("degenerate miter join, falling back to bevel",
					"x", pt.X, "y", pt.Y)
				bevelJoin(b, pt, s1, s2, offset)
				return
			}
			b.MoveTo(start)
			b.LineTo(intersection)
			b.LineTo(pt.Add(s2.Mul(offset)))
			b.LineTo(pt)
			b.Close()
		} else {
			bevelJoin(b, pt, s1, s2, offset)
		}

	case LineJoinBevel:
		bevelJoin(b, pt, s1, s2, offset)
	}
}

// bevelJoin emits the triangle contour connecting the two offset points
// back through the vertex.
func bevelJoin(b *PathBuilder, pt Point, s1, s2 Vector, offset float32) {
	b.MoveTo(pt.Add(s1.Mul(offset)))
	b.LineTo(pt.Add(s2.Mul(offset)))
	b.LineTo(pt)
	b.Close()
}

// lineIntersection finds the intersection of two lines, each defined by
// a point on the line and the line's perpendicular normal. From
// "Example 2: Find the intersection of two lines" of "The Pleasures of
// 'Perp Dot' Products", F. S. Hill, Jr. Parallel normals have no
// intersection and return errParallelLines.
func lineIntersection(a Point, aPerp Vector, b Point, bPerp Vector) (Point, error) {
	dir := aPerp.Unperp()
	c := b.Sub(a)
	denom := bPerp.Dot(dir)
	if denom == 0 {
		return Point{}, errParallelLines
	}

	t := bPerp.Dot(c) / denom
	return a.Add(dir.Mul(t)), nil
}

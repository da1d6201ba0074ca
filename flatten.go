package strokefill

// DefaultFlattenTolerance is the maximum distance between a curve and
// its polyline approximation used by Flatten when the caller passes a
// non-positive tolerance.
const DefaultFlattenTolerance = 0.25

// Flatten returns a copy of the path with every quadratic and cubic
// Bezier curve replaced by line segments, within the given tolerance.
// The result contains only move/line/close operations and satisfies
// StrokeToPath's input precondition.
//
// Flattening uses adaptive de Casteljau subdivision: a curve is split
// at its midpoint until its control points lie within tolerance of the
// chord.
func Flatten(p *Path, tolerance float32) *Path {
	if tolerance <= 0 {
		tolerance = DefaultFlattenTolerance
	}

	out := NewPath()
	var cur Point
	for _, el := range p.Elements() {
		switch e := el.(type) {
		case MoveTo:
			out.MoveTo(e.Point.X, e.Point.Y)
			cur = e.Point
		case LineTo:
			out.LineTo(e.Point.X, e.Point.Y)
			cur = e.Point
		case QuadTo:
			flattenQuad(out, cur, e.Control, e.Point, tolerance)
			cur = e.Point
		case CubicTo:
			flattenCubic(out, cur, e.Control1, e.Control2, e.Point, tolerance)
			cur = e.Point
		case Close:
			out.Close()
			cur = out.CurrentPoint()
		}
	}
	return out
}

func flattenQuad(out *Path, p0, p1, p2 Point, tolerance float32) {
	if distanceToLine(p1, p0, p2) < tolerance {
		out.LineTo(p2.X, p2.Y)
		return
	}

	// Subdivide at the midpoint
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := q0.Lerp(q1, 0.5)

	flattenQuad(out, p0, q0, q2, tolerance)
	flattenQuad(out, q2, q1, p2, tolerance)
}

func flattenCubic(out *Path, p0, p1, p2, p3 Point, tolerance float32) {
	d1 := distanceToLine(p1, p0, p3)
	d2 := distanceToLine(p2, p0, p3)
	if max(d1, d2) < tolerance {
		out.LineTo(p3.X, p3.Y)
		return
	}

	// Subdivide using de Casteljau's algorithm
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	flattenCubic(out, p0, q0, r0, s, tolerance)
	flattenCubic(out, s, r1, q2, p3, tolerance)
}

// distanceToLine calculates the perpendicular distance from point p to
// the line segment (a, b).
func distanceToLine(p, a, b Point) float32 {
	ab := b.Sub(a)
	abLenSq := ab.LengthSq()

	if abLenSq < 1e-10 {
		return p.Distance(a)
	}

	// Project p onto the line
	ap := p.Sub(a)
	t := ap.Dot(ab) / abLenSq

	if t < 0 {
		return p.Distance(a)
	}
	if t > 1 {
		return p.Distance(b)
	}

	closest := a.Add(ab.Mul(t))
	return p.Distance(closest)
}

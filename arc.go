package strokefill

// arcSegment emits one cubic Bezier segment approximating the circular
// arc centered at center, from angle vector a to angle vector b. The
// angle between a and b must not exceed a quarter circle.
//
// The control-point offset is the closed form
//
//	h = 4/3 * tan((angleB - angleA) / 4)
//
// computed without converting to polar coordinates: bisecting a and the
// arc's midpoint vector yields a direction parallel to the h offset, so
// h falls out of one dot-product ratio. A derivation based on the perp
// dot product of a and b ("Approximation of a cubic bezier curve by
// circular arcs and vice versa", Aleksas Riskus) divides by a quantity
// that vanishes as the arc angle approaches zero; this formulation does
// not.
func arcSegment(b *PathBuilder, center Point, radius float32, va, vb Vector) {
	rSinA := radius * va.Y
	rCosA := radius * va.X
	rSinB := radius * vb.Y
	rCosB := radius * vb.X

	// bisect the angle between va and vb with mid
	mid := va.Add(vb).Normalize()

	// bisect the angle between va and mid with mid2; this is parallel
	// to a line with angle (B - A)/4
	mid2 := va.Add(mid)

	h := (4.0 / 3.0) * va.Perp().Dot(mid2) / va.Dot(mid2)

	b.CubicTo(
		Pt(center.X+rCosA-h*rSinA, center.Y+rSinA+h*rCosA),
		Pt(center.X+rCosB+h*rSinB, center.Y+rSinB-h*rCosB),
		Pt(center.X+rCosB, center.Y+rSinB),
	)
}

// arc draws the circular arc centered at center from angle vector va to
// angle vector vb as two cubic segments. The angle between va and vb
// must not exceed a half circle; bisecting keeps each segment inside
// arcSegment's quarter-circle stability range.
func arc(b *PathBuilder, center Point, radius float32, va, vb Vector) {
	mid := Bisect(va, vb)
	arcSegment(b, center, radius, va, mid)
	arcSegment(b, center, radius, mid, vb)
}

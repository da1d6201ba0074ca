package strokefill

import "math"

// Point represents a 2D position.
// Coordinates are single precision, matching the wire format of the
// rasterizers this library feeds (image/vector and friends).
type Point struct {
	X, Y float32
}

// Pt is a convenience function to create a Point.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns the point displaced by a vector.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the displacement from q to p.
func (p Point) Sub(q Point) Vector {
	return Vector{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float32 {
	return p.Sub(q).Length()
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point) Lerp(q Point, t float32) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Vector represents a 2D direction or offset.
// Unlike Point which represents a position, Vector represents a direction
// and magnitude. Segment normals are always unit-length Vectors.
type Vector struct {
	X, Y float32
}

// Vec is a convenience function to create a Vector.
func Vec(x, y float32) Vector {
	return Vector{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vector) Add(w Vector) Vector {
	return Vector{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vector) Sub(w Vector) Vector {
	return Vector{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vector) Mul(s float32) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Neg returns the negation of the vector (rotation by 180 degrees).
func (v Vector) Neg() Vector {
	return Vector{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vector) Dot(w Vector) float32 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (z-component of the 3D cross).
func (v Vector) Cross(w Vector) float32 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the length (magnitude) of the vector.
func (v Vector) Length() float32 {
	return float32(math.Sqrt(float64(v.X)*float64(v.X) + float64(v.Y)*float64(v.Y)))
}

// LengthSq returns the squared length of the vector.
func (v Vector) LengthSq() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns a unit vector in the same direction.
// Returns the zero vector if the original vector has zero length.
func (v Vector) Normalize() Vector {
	length := v.Length()
	if length == 0 {
		return Vector{}
	}
	return Vector{X: v.X / length, Y: v.Y / length}
}

// Perp returns the perpendicular vector rotated 90 degrees counter-clockwise
// (to the left of v in a y-up frame).
func (v Vector) Perp() Vector {
	return Vector{X: -v.Y, Y: v.X}
}

// Unperp returns the perpendicular vector rotated 90 degrees clockwise.
// It is the inverse of Perp: v.Perp().Unperp() == v.
func (v Vector) Unperp() Vector {
	return Vector{X: v.Y, Y: -v.X}
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Vector) Approx(w Vector, epsilon float32) bool {
	return abs32(v.X-w.X) < epsilon && abs32(v.Y-w.Y) < epsilon
}

func abs32(x float32) float32 {
	return float32(math.Abs(float64(x)))
}

// Normal returns the left unit normal of the segment from p0 to p1: the
// unit vector perpendicular to the segment's direction, rotated so it
// points to the left of the direction of travel.
//
// A zero-length segment has no defined normal; Normal returns
// ErrZeroLengthSegment for it.
func Normal(p0, p1 Point) (Vector, error) {
	ux := p1.X - p0.X
	uy := p1.Y - p0.Y

	ulen := float32(math.Hypot(float64(ux), float64(uy)))
	if ulen == 0 {
		return Vector{}, ErrZeroLengthSegment
	}
	return Vector{X: -uy / ulen, Y: ux / ulen}, nil
}

// Bisect returns the unit vector bisecting the angle between the unit
// vectors a and b. The angle between a and b must be at most 180 degrees.
//
// For obtuse pairs, a+b nearly cancels and loses precision, so the
// bisector is computed from the perpendicular of flip(a)+b instead,
// which is algebraically equivalent. Callers rely on the result staying
// within 90 degrees of both inputs, which keeps arc approximation in
// its stable range.
func Bisect(a, b Vector) Vector {
	var mid Vector
	if a.Dot(b) >= 0 {
		mid = a.Add(b)
	} else {
		mid = a.Neg().Add(b).Perp()
	}
	// a and b are unit vectors, so mid is bounded and plain sqrt is safe.
	return mid.Normalize()
}

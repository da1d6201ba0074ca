package strokefill

// PathBuilder accumulates move/line/cubic/close operations into a Path.
// The stroke-to-fill core emits every output contour through a builder,
// one MoveTo..Close sequence per contour.
type PathBuilder struct {
	path *Path
}

// BuildPath starts a new path builder.
func BuildPath() *PathBuilder {
	return &PathBuilder{path: NewPath()}
}

// MoveTo moves to a point, starting a new contour.
func (b *PathBuilder) MoveTo(pt Point) *PathBuilder {
	b.path.MoveTo(pt.X, pt.Y)
	return b
}

// LineTo draws a line to a point.
func (b *PathBuilder) LineTo(pt Point) *PathBuilder {
	b.path.LineTo(pt.X, pt.Y)
	return b
}

// CubicTo draws a cubic Bezier curve.
func (b *PathBuilder) CubicTo(c1, c2, pt Point) *PathBuilder {
	b.path.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
	return b
}

// Close closes the current contour.
func (b *PathBuilder) Close() *PathBuilder {
	b.path.Close()
	return b
}

// Path finishes the builder and returns the accumulated path.
func (b *PathBuilder) Path() *Path {
	return b.path
}

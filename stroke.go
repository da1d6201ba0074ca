package strokefill

// StrokeStyle defines the style for stroking paths.
// It encapsulates all stroke-related properties in a single struct,
// following the tiny-skia/kurbo pattern for unified stroke configuration.
type StrokeStyle struct {
	// Width is the line width. Default: 1.0
	Width float32

	// Cap is the shape of line endpoints. Default: LineCapButt
	Cap LineCap

	// Join is the shape of line joins. Default: LineJoinMiter
	Join LineJoin

	// MiterLimit is the limit for miter joins before they become bevels,
	// as a ratio of miter length to stroke width.
	// Default: 4.0 (common default, matches SVG)
	MiterLimit float32

	// Dash is the dash pattern for the stroke.
	// nil means a solid line (no dashing).
	//
	// The pattern is carried and validated but not yet consumed:
	// dash expansion happens before stroke-to-fill conversion and is
	// not implemented. StrokeToPath strokes the path as if solid.
	Dash *Dash
}

// LineCap specifies the shape of open subpath endpoints.
type LineCap int

const (
	// LineCapButt squares the stroke off exactly at the endpoint.
	LineCapButt LineCap = iota
	// LineCapRound extends the stroke with a half-disc at the endpoint.
	LineCapRound
	// LineCapSquare extends the stroke half a width past the endpoint.
	LineCapSquare
)

// String returns the name of the line cap.
func (c LineCap) String() string {
	switch c {
	case LineCapButt:
		return "butt"
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	}
	return "unknown"
}

// LineJoin specifies the shape of joins between segments.
type LineJoin int

const (
	// LineJoinMiter extends the segment edges to a sharp point,
	// falling back to bevel past the miter limit.
	LineJoinMiter LineJoin = iota
	// LineJoinRound fills the join with a circular arc.
	LineJoinRound
	// LineJoinBevel fills the join with a single triangle.
	LineJoinBevel
)

// String returns the name of the line join.
func (j LineJoin) String() string {
	switch j {
	case LineJoinMiter:
		return "miter"
	case LineJoinRound:
		return "round"
	case LineJoinBevel:
		return "bevel"
	}
	return "unknown"
}

// DefaultStrokeStyle returns a StrokeStyle with default settings.
// This creates a solid 1-unit line with butt caps and miter joins.
func DefaultStrokeStyle() StrokeStyle {
	return StrokeStyle{
		Width:      1.0,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: 4.0,
		Dash:       nil,
	}
}

// WithWidth returns a copy of the StrokeStyle with the given width.
func (s StrokeStyle) WithWidth(w float32) StrokeStyle {
	s.Width = w
	return s
}

// WithCap returns a copy of the StrokeStyle with the given line cap style.
func (s StrokeStyle) WithCap(lineCap LineCap) StrokeStyle {
	s.Cap = lineCap
	return s
}

// WithJoin returns a copy of the StrokeStyle with the given line join style.
func (s StrokeStyle) WithJoin(join LineJoin) StrokeStyle {
	s.Join = join
	return s
}

// WithMiterLimit returns a copy of the StrokeStyle with the given miter limit.
// The miter limit controls when miter joins are converted to bevel joins.
// A value of 1.0 effectively disables miter joins.
func (s StrokeStyle) WithMiterLimit(limit float32) StrokeStyle {
	s.MiterLimit = limit
	return s
}

// WithDash returns a copy of the StrokeStyle with the given dash pattern.
// Pass nil to remove dashing and return to solid lines.
func (s StrokeStyle) WithDash(dash *Dash) StrokeStyle {
	if dash == nil {
		s.Dash = nil
	} else {
		s.Dash = dash.Clone()
	}
	return s
}

// WithDashPattern returns a copy of the StrokeStyle with a dash pattern
// created from the given lengths.
//
// Example:
//
//	style.WithDashPattern(5, 3) // 5 units dash, 3 units gap
func (s StrokeStyle) WithDashPattern(lengths ...float32) StrokeStyle {
	s.Dash = NewDash(lengths...)
	return s
}

// WithDashOffset returns a copy of the StrokeStyle with the dash offset set.
// If there is no dash pattern, this has no effect.
func (s StrokeStyle) WithDashOffset(offset float32) StrokeStyle {
	if s.Dash != nil {
		s.Dash = s.Dash.WithOffset(offset)
	}
	return s
}

// IsDashed returns true if this style has a dash pattern.
func (s StrokeStyle) IsDashed() bool {
	return s.Dash != nil && s.Dash.IsDashed()
}

// Clone creates a deep copy of the StrokeStyle.
func (s StrokeStyle) Clone() StrokeStyle {
	result := s
	if s.Dash != nil {
		result.Dash = s.Dash.Clone()
	}
	return result
}

// RoundedStyle returns a style with round caps and joins.
func RoundedStyle() StrokeStyle {
	return DefaultStrokeStyle().WithCap(LineCapRound).WithJoin(LineJoinRound)
}

// SquareStyle returns a style with square caps.
func SquareStyle() StrokeStyle {
	return DefaultStrokeStyle().WithCap(LineCapSquare)
}

// DashedStyle returns a dashed style with the given pattern.
func DashedStyle(lengths ...float32) StrokeStyle {
	return DefaultStrokeStyle().WithDashPattern(lengths...)
}

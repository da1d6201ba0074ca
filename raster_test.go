package strokefill

import (
	"image"
	"testing"

	"golang.org/x/image/vector"
)

// rasterize fills the stroke outline into an alpha mask. The rasterizer
// accumulates winding across all contours, so overlapping contours with
// the same orientation merge into a solid fill.
func rasterize(t *testing.T, p *Path, w, h int) *image.Alpha {
	t.Helper()

	r := vector.NewRasterizer(w, h)
	for _, el := range p.Elements() {
		switch e := el.(type) {
		case MoveTo:
			r.MoveTo(e.Point.X, e.Point.Y)
		case LineTo:
			r.LineTo(e.Point.X, e.Point.Y)
		case CubicTo:
			r.CubeTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y,
				e.Point.X, e.Point.Y)
		case Close:
			r.ClosePath()
		default:
			t.Fatalf("stroke output contains unexpected element %T", el)
		}
	}

	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

func checkPixels(t *testing.T, mask *image.Alpha, filled, empty []image.Point) {
	t.Helper()
	for _, pt := range filled {
		if a := mask.AlphaAt(pt.X, pt.Y).A; a < 250 {
			t.Errorf("pixel (%d, %d): alpha = %d, want full coverage", pt.X, pt.Y, a)
		}
	}
	for _, pt := range empty {
		if a := mask.AlphaAt(pt.X, pt.Y).A; a > 5 {
			t.Errorf("pixel (%d, %d): alpha = %d, want empty", pt.X, pt.Y, a)
		}
	}
}

func TestRaster_RoundCapStadium(t *testing.T) {
	p := NewPath()
	p.MoveTo(8, 16)
	p.LineTo(32, 16)

	out := mustStroke(t, p, DefaultStrokeStyle().WithWidth(8).WithCap(LineCapRound))
	mask := rasterize(t, out, 40, 32)

	checkPixels(t, mask,
		[]image.Point{
			{20, 16}, // body center
			{20, 13}, // body, near the upper edge
			{5, 16},  // inside the left cap
			{7, 16},  // cap-to-body seam, covered by the cap alone
			{34, 16}, // inside the right cap
		},
		[]image.Point{
			{20, 10}, // above the body
			{2, 16},  // beyond the left cap
			{38, 16}, // beyond the right cap
		})
}

func TestRaster_ButtCapStopsAtEndpoint(t *testing.T) {
	p := NewPath()
	p.MoveTo(8, 16)
	p.LineTo(32, 16)

	out := mustStroke(t, p, DefaultStrokeStyle().WithWidth(8))
	mask := rasterize(t, out, 40, 32)

	checkPixels(t, mask,
		[]image.Point{{20, 16}, {9, 16}},
		[]image.Point{
			{6, 16},  // the round cap would cover this
			{34, 16}, // and this
		})
}

func TestRaster_ClosedSquareRing(t *testing.T) {
	// The interesting case for the fill rule: near each corner two edge
	// quads and a join overlap. Under nonzero winding the overlap stays
	// solid; even-odd would punch holes there.
	p := NewPath()
	p.Rectangle(10, 10, 20, 20)

	out := mustStroke(t, p, DefaultStrokeStyle().WithWidth(4).WithJoin(LineJoinBevel))
	mask := rasterize(t, out, 40, 40)

	checkPixels(t, mask,
		[]image.Point{
			{20, 10}, // top edge midpoint
			{10, 20}, // left edge midpoint
			{11, 11}, // corner overlap of two quads
			{29, 29}, // opposite corner overlap
		},
		[]image.Point{
			{20, 20}, // ring hole
			{2, 2},   // outside
			{37, 20}, // outside, right of the ring
		})
}

func TestRaster_MiterSpikeExtendsCorner(t *testing.T) {
	// An L turn at (10,10). The miter extends the outer corner to (8,8);
	// a bevel cuts it off along the diagonal.
	lpath := func() *Path {
		p := NewPath()
		p.MoveTo(10, 30)
		p.LineTo(10, 10)
		p.LineTo(30, 10)
		return p
	}
	corner := image.Point{8, 8}

	miter := rasterize(t, mustStroke(t, lpath(),
		DefaultStrokeStyle().WithWidth(4)), 40, 40)
	checkPixels(t, miter, []image.Point{corner, {10, 20}, {20, 10}}, nil)

	bevel := rasterize(t, mustStroke(t, lpath(),
		DefaultStrokeStyle().WithWidth(4).WithJoin(LineJoinBevel)), 40, 40)
	checkPixels(t, bevel, []image.Point{{10, 20}, {20, 10}}, []image.Point{corner})
}

func TestRaster_FlattenedCircleRing(t *testing.T) {
	// Stroke a flattened circle approximated by four cubics: the result
	// is an annulus. Center stays empty, the rim is solid all around.
	const cx, cy, r = 20, 20, 12
	const k = 0.5523 // cubic circle constant

	p := NewPath()
	p.MoveTo(cx+r, cy)
	p.CubicTo(cx+r, cy+k*r, cx+k*r, cy+r, cx, cy+r)
	p.CubicTo(cx-k*r, cy+r, cx-r, cy+k*r, cx-r, cy)
	p.CubicTo(cx-r, cy-k*r, cx-k*r, cy-r, cx, cy-r)
	p.CubicTo(cx+k*r, cy-r, cx+r, cy-k*r, cx+r, cy)
	p.Close()

	flat := Flatten(p, 0.05)
	out := mustStroke(t, flat, RoundedStyle().WithWidth(4))
	mask := rasterize(t, out, 40, 40)

	checkPixels(t, mask,
		[]image.Point{
			{31, 20}, // right rim
			{8, 20},  // left rim
			{20, 31}, // bottom rim
			{20, 8},  // top rim
		},
		[]image.Point{
			{20, 20}, // annulus hole
			{2, 20},  // outside
		})
}

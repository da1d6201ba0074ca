// Command strokepng strokes an SVG path and writes the filled outline to a PNG.
//
// The path is given as SVG path data. Curves are flattened before
// stroking, and the resulting contours are filled with a nonzero
// winding rasterizer.
//
// Example:
//
//	strokepng -d "M 20 80 C 40 10, 65 10, 95 80 S 150 150, 180 80" \
//	    -width 12 -cap round -join round -o wave.png
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"math"
	"os"

	"github.com/vasalvit/svg"
	"golang.org/x/image/vector"

	"github.com/gogpu/strokefill"
)

func main() {
	var (
		data       = flag.String("d", "M 10 10 L 90 10 L 90 90", "SVG path data to stroke")
		width      = flag.Float64("width", 8, "stroke width")
		capName    = flag.String("cap", "butt", "line cap: butt, round or square")
		joinName   = flag.String("join", "miter", "line join: miter, round or bevel")
		miterLimit = flag.Float64("miter-limit", 4, "miter limit")
		tolerance  = flag.Float64("tolerance", 0.25, "curve flattening tolerance")
		margin     = flag.Float64("margin", 16, "margin around the stroke in pixels")
		output     = flag.String("o", "stroke.png", "output file")
	)
	flag.Parse()

	path, err := parsePathData(*data)
	if err != nil {
		log.Fatalf("Failed to parse path data: %v", err)
	}
	if path.IsEmpty() {
		log.Fatal("Path data produced no drawing operations")
	}

	style := strokefill.DefaultStrokeStyle().
		WithWidth(float32(*width)).
		WithCap(parseCap(*capName)).
		WithJoin(parseJoin(*joinName)).
		WithMiterLimit(float32(*miterLimit))

	flat := strokefill.Flatten(path, float32(*tolerance))
	outline, err := strokefill.StrokeToPath(flat, style)
	if err != nil {
		log.Fatalf("Failed to stroke path: %v", err)
	}

	img := rasterize(outline, float32(*margin))
	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *output, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatalf("Failed to encode PNG: %v", err)
	}

	b := img.Bounds()
	log.Printf("Wrote %s (%dx%d, %d contours)", *output, b.Dx(), b.Dy(), len(outline.Contours()))
}

// parsePathData converts SVG path data into a strokefill path by
// wrapping it in a minimal SVG document and replaying the parser's
// drawing instructions.
func parsePathData(d string) (*strokefill.Path, error) {
	doc := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg"><path d=%q/></svg>`, d)
	parsed, err := svg.ParseSvg(doc, "strokepng", 1)
	if err != nil {
		return nil, err
	}

	// Both channels must be drained or the parser goroutine deadlocks.
	instructions, errs := parsed.ParseDrawingInstructions()
	go func() {
		for range errs {
		}
	}()

	p := strokefill.NewPath()
	for ins := range instructions {
		switch ins.Kind {
		case svg.MoveInstruction:
			p.MoveTo(float32(ins.M[0]), float32(ins.M[1]))
		case svg.LineInstruction:
			p.LineTo(float32(ins.M[0]), float32(ins.M[1]))
		case svg.CurveInstruction:
			p.CubicTo(
				float32(ins.CurvePoints.C1[0]), float32(ins.CurvePoints.C1[1]),
				float32(ins.CurvePoints.C2[0]), float32(ins.CurvePoints.C2[1]),
				float32(ins.CurvePoints.T[0]), float32(ins.CurvePoints.T[1]),
			)
		case svg.CloseInstruction:
			p.Close()
		}
	}
	return p, nil
}

func parseCap(name string) strokefill.LineCap {
	switch name {
	case "butt":
		return strokefill.LineCapButt
	case "round":
		return strokefill.LineCapRound
	case "square":
		return strokefill.LineCapSquare
	}
	log.Fatalf("Unknown line cap %q", name)
	return strokefill.LineCapButt
}

func parseJoin(name string) strokefill.LineJoin {
	switch name {
	case "miter":
		return strokefill.LineJoinMiter
	case "round":
		return strokefill.LineJoinRound
	case "bevel":
		return strokefill.LineJoinBevel
	}
	log.Fatalf("Unknown line join %q", name)
	return strokefill.LineJoinMiter
}

// rasterize fills the outline's contours black on white. The vector
// rasterizer accumulates winding, which is exactly the fill rule the
// stroke contours are designed for.
func rasterize(outline *strokefill.Path, margin float32) image.Image {
	minPt, maxPt := outline.Bounds()
	w := int(math.Ceil(float64(maxPt.X - minPt.X + 2*margin)))
	h := int(math.Ceil(float64(maxPt.Y - minPt.Y + 2*margin)))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	ox := margin - minPt.X
	oy := margin - minPt.Y

	r := vector.NewRasterizer(w, h)
	for _, el := range outline.Elements() {
		switch e := el.(type) {
		case strokefill.MoveTo:
			r.MoveTo(e.Point.X+ox, e.Point.Y+oy)
		case strokefill.LineTo:
			r.LineTo(e.Point.X+ox, e.Point.Y+oy)
		case strokefill.CubicTo:
			r.CubeTo(
				e.Control1.X+ox, e.Control1.Y+oy,
				e.Control2.X+ox, e.Control2.Y+oy,
				e.Point.X+ox, e.Point.Y+oy,
			)
		case strokefill.Close:
			r.ClosePath()
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	r.Draw(dst, dst.Bounds(), image.NewUniform(color.Black), image.Point{})
	return dst
}

// Package render - plot construction on gonum.org/v1/plot.
package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/geomst/geomst/geom"
	"github.com/geomst/geomst/kruskal"
)

// Drawing constants: colors and dash pattern mirror the familiar
// "bx-" / "rx:" matplotlib styles; the canvas is a 6-inch square.
var (
	mstColor  = color.RGBA{B: 0xff, A: 0xff}
	tourColor = color.RGBA{R: 0xff, A: 0xff}
	dotted    = []vg.Length{vg.Points(1), vg.Points(3)}
)

const canvasSize = 6 * vg.Inch

// MSTPlot draws the accepted MST edges over pts: solid blue segments with
// cross markers at the endpoints.
func MSTPlot(pts []geom.Point, res *kruskal.Result) (*plot.Plot, error) {
	p := newPlot(pts)
	for _, e := range res.Edges {
		if err := addSegment(p, pts, Pair{U: e.U, V: e.V}, mstColor, nil); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// TourPlot draws the tour as a dotted red open path through pts, in visit
// order, without closing the cycle.
func TourPlot(pts []geom.Point, tour []int) (*plot.Plot, error) {
	p := newPlot(pts)
	if err := addTour(p, pts, tour); err != nil {
		return nil, err
	}

	return p, nil
}

// DiffPlot draws the symmetric difference between the tour and the MST:
// MST edges missing from the tour solid, tour edges absent from the MST
// dotted, both red. This is the comparison view: edges the two solutions
// agree on are omitted entirely.
func DiffPlot(pts []geom.Point, tour []int, res *kruskal.Result) (*plot.Plot, error) {
	tourEdges, err := TourEdges(tour)
	if err != nil {
		return nil, err
	}
	adds, dels := Diff(tourEdges, res.Edges)

	p := newPlot(pts)
	for _, pr := range adds {
		if err = addSegment(p, pts, pr, tourColor, nil); err != nil {
			return nil, err
		}
	}
	for _, pr := range dels {
		if err = addSegment(p, pts, pr, tourColor, dotted); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Save writes p to path on a square canvas; the encoder is chosen by the
// path's extension (.png, .svg, .pdf, ...).
func Save(p *plot.Plot, path string) error {
	if err := p.Save(canvasSize, canvasSize, path); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	return nil
}

// newPlot returns an empty plot with square axis ranges covering pts.
func newPlot(pts []geom.Point) *plot.Plot {
	p := plot.New()
	squareAxes(p, pts)

	return p
}

// squareAxes centers both axis ranges on the bounding box of pts and gives
// them one common, slightly padded span.
func squareAxes(p *plot.Plot, pts []geom.Point) {
	if len(pts) == 0 {
		return
	}

	minX, maxX := pts[0].X, pts[0].X
	minY, maxY := pts[0].Y, pts[0].Y
	for _, q := range pts[1:] {
		if q.X < minX {
			minX = q.X
		}
		if q.X > maxX {
			maxX = q.X
		}
		if q.Y < minY {
			minY = q.Y
		}
		if q.Y > maxY {
			maxY = q.Y
		}
	}

	span := maxX - minX
	if s := maxY - minY; s > span {
		span = s
	}
	if span == 0 {
		span = 1 // all points coincide; any non-degenerate window works
	}
	half := span/2 + span*0.05
	cx, cy := (minX+maxX)/2, (minY+maxY)/2
	p.X.Min, p.X.Max = cx-half, cx+half
	p.Y.Min, p.Y.Max = cy-half, cy+half
}

// addSegment appends one two-point polyline pr over pts, with cross
// glyphs; dashes nil means solid.
func addSegment(p *plot.Plot, pts []geom.Point, pr Pair, col color.Color, dashes []vg.Length) error {
	if pr.U < 0 || pr.V < 0 || pr.U >= len(pts) || pr.V >= len(pts) {
		return fmt.Errorf("%w: %d–%d over %d points", ErrIndexRange, pr.U, pr.V, len(pts))
	}

	xys := plotter.XYs{
		{X: pts[pr.U].X, Y: pts[pr.U].Y},
		{X: pts[pr.V].X, Y: pts[pr.V].Y},
	}

	return addStyledLine(p, xys, col, dashes)
}

// addTour appends the whole tour as one polyline in visit order.
func addTour(p *plot.Plot, pts []geom.Point, tour []int) error {
	if len(tour) == 0 {
		return ErrEmptyTour
	}

	xys := make(plotter.XYs, 0, len(tour))
	for _, i := range tour {
		if i < 1 || i > len(pts) {
			return fmt.Errorf("%w: tour entry %d over %d points", ErrIndexRange, i, len(pts))
		}
		xys = append(xys, plotter.XY{X: pts[i-1].X, Y: pts[i-1].Y})
	}

	return addStyledLine(p, xys, tourColor, dotted)
}

// addStyledLine adds a line-with-markers plotter for xys.
func addStyledLine(p *plot.Plot, xys plotter.XYs, col color.Color, dashes []vg.Length) error {
	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	line.Color = col
	line.Dashes = dashes
	points.GlyphStyle.Shape = draw.CrossGlyph{}
	points.GlyphStyle.Color = col
	p.Add(line, points)

	return nil
}

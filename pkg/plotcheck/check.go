// Package plotcheck smoke tests offscreen rendering: it constructs a
// sine-curve plot and rasterizes it to a discarded PNG. Nothing is
// displayed or written to disk.
package plotcheck

import (
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/mkeranen/setupcheck/pkg/check"
)

// Check exercises plot construction and offscreen rasterization.
type Check struct {
	Points int // samples along the curve (default: 100)
}

// Run executes the rendering smoke test.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: "visualization",
	}

	points := c.Points
	if points == 0 {
		points = 100
	}

	p := plot.New()
	pts := make(plotter.XYs, points)
	for i := range pts {
		x := 10 * float64(i) / float64(points-1)
		pts[i].X = x
		pts[i].Y = math.Sin(x)
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return result.Failf("line construction failed: %v", err)
	}
	p.Add(line)

	canvas := vgimg.New(6*vg.Inch, 4*vg.Inch)
	p.Draw(draw.New(canvas))

	png := vgimg.PngCanvas{Canvas: canvas}
	if _, err := png.WriteTo(io.Discard); err != nil {
		return result.Failf("rasterization failed: %v", err)
	}

	return result.Pass()
}

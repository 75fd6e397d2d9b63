package main

import (
	"github.com/cockroachdb/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// degreePoint is one (degree, latency) sample feeding the chart.
type degreePoint struct {
	degree    float64
	latencyNs float64
}

// renderLatencyChart plots insertion latency against degree, replacing the
// teacher's CSV-only output with a rendered PNG.
func renderLatencyChart(path string, points []degreePoint) error {
	p := plot.New()
	p.Title.Text = "bptree insertion latency vs. degree"
	p.X.Label.Text = "degree"
	p.Y.Label.Text = "latency (ns/op)"

	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i].X = pt.degree
		xys[i].Y = pt.latencyNs
	}

	line, pointsGlyph, err := plotter.NewLinePoints(xys)
	if err != nil {
		return errors.Wrap(err, "build line/points plotter")
	}
	p.Add(line, pointsGlyph, plotter.NewGrid())
	p.Legend.Add("bptree", line, pointsGlyph)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "save chart to %q", path)
	}
	return nil
}

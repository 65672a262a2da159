package growth_sim

import (
	"bytes"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var curveColors = []color.RGBA{
	{R: 255, G: 0, B: 0, A: 255}, // red
	{G: 200, A: 255},             // green
	{B: 255, A: 255},             // blue
	{R: 255, G: 165, A: 255},     // orange
	{R: 255, B: 255, A: 255},     // pink
	{R: 200, G: 200, A: 255},     // gray
}

// CurveLinePlotSVG renders the curve table as a line chart, one line per
// curve with a legend entry, time on X and population on Y.
func CurveLinePlotSVG(table CurveTable) (string, error) {
	p := plot.New()
	p.Title.Text = "Logistic Growth Curves"
	p.X.Label.Text = "Time"
	p.Y.Label.Text = "Population Size"
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	p.Legend.XOffs = -10

	for i, name := range table.Names {
		values := table.Series[name]
		pts := make(plotter.XYs, len(values))
		for j, val := range values {
			pts[j].X = table.Times[j]
			pts[j].Y = val
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return "", err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = curveColors[i%len(curveColors)]
		p.Add(line)
		p.Legend.Add(name, line)
	}

	// Write to SVG
	var buf bytes.Buffer
	writer, err := p.WriterTo(10*vg.Inch, 4*vg.Inch, "svg")
	if err != nil {
		return "", err
	}
	_, err = writer.WriteTo(&buf)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

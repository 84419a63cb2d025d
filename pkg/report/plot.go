package report

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"math/cmplx"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/edp1096/toy-mininec/pkg/mininec"
)

// patternRange is how far below the maximum gains are still drawn, in dB.
const patternRange = 40.0

var (
	totalColor      = color.RGBA{R: 200, A: 255}
	horizontalColor = color.RGBA{B: 200, A: 255}
	verticalColor   = color.RGBA{G: 150, A: 255}
)

// PatternPlot draws total, horizontal and vertical gain against zenith, or
// against azimuth when the pattern holds a single zenith angle.
func PatternPlot(title string, pattern []mininec.FarFieldDbi) ([]byte, error) {
	if len(pattern) == 0 {
		return nil, fmt.Errorf("no far field points to plot")
	}

	byAzimuth := true
	for _, pt := range pattern[1:] {
		if pt.Zenith != pattern[0].Zenith {
			byAzimuth = false
			break
		}
	}

	maxGain := math.Inf(-1)
	for _, pt := range pattern {
		maxGain = math.Max(maxGain, pt.Total)
	}
	floor := maxGain - patternRange

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "Gain (dBi)"
	p.Y.Min = floor
	p.Y.Max = maxGain + 3
	if byAzimuth {
		p.X.Label.Text = fmt.Sprintf("Azimuth (deg), zenith %.1f deg", pattern[0].Zenith)
	} else {
		p.X.Label.Text = "Zenith (deg)"
	}
	p.Add(plotter.NewGrid())

	series := []struct {
		name  string
		color color.Color
		value func(mininec.FarFieldDbi) float64
	}{
		{"Total", totalColor, func(pt mininec.FarFieldDbi) float64 { return pt.Total }},
		{"Horizontal", horizontalColor, func(pt mininec.FarFieldDbi) float64 { return pt.Horizontal }},
		{"Vertical", verticalColor, func(pt mininec.FarFieldDbi) float64 { return pt.Vertical }},
	}
	for _, s := range series {
		pts := make(plotter.XYs, 0, len(pattern))
		for _, pt := range pattern {
			// Multiple azimuths per zenith: plot the first azimuth cut only.
			if !byAzimuth && pt.Azimuth != pattern[0].Azimuth {
				continue
			}
			x := pt.Zenith
			if byAzimuth {
				x = pt.Azimuth
			}
			pts = append(pts, plotter.XY{X: x, Y: math.Max(s.value(pt), floor)})
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("failed to create line for %s: %v", s.name, err)
		}
		line.Color = s.color
		line.LineStyle.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(s.name, line)
	}
	p.Legend.Top = true

	return render(p)
}

// CurrentPlot draws the current magnitude along every wire.
func CurrentPlot(title string, currents []WireCurrents) ([]byte, error) {
	if len(currents) == 0 {
		return nil, fmt.Errorf("no currents to plot")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Segment"
	p.Y.Label.Text = "Current (mA)"
	p.Add(plotter.NewGrid())

	colors := []color.Color{totalColor, horizontalColor, verticalColor, color.RGBA{R: 255, G: 165, A: 255}, color.RGBA{R: 128, B: 128, A: 255}}
	for i, wc := range currents {
		pts := make(plotter.XYs, len(wc.Currents))
		for j, c := range wc.Currents {
			pts[j] = plotter.XY{X: float64(j), Y: 1000 * cmplx.Abs(c.Current)}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("failed to create line for wire %d: %v", wc.Wire, err)
		}
		line.Color = colors[i%len(colors)]
		line.LineStyle.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("wire %d", wc.Wire), line)
	}
	p.Legend.Top = true

	return render(p)
}

func render(p *plot.Plot) ([]byte, error) {
	writer, err := p.WriterTo(vg.Points(800), vg.Points(400), "png")
	if err != nil {
		return nil, fmt.Errorf("failed to create plot writer: %v", err)
	}
	buf := new(bytes.Buffer)
	if _, err := writer.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("failed to write plot to buffer: %v", err)
	}
	return buf.Bytes(), nil
}

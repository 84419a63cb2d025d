package report

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/edp1096/toy-mininec/pkg/util"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

// Render returns the whole report as terminal text.
func Render(r *Report) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(r.Name))
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render(fmt.Sprintf("%s, wavelength %s, %d wires, %d pulses, fill %d us, solve %d us",
		strings.TrimSpace(util.FormatFrequency(r.Frequency)), util.FormatValueFactor(r.Wavelength, "m"),
		r.NoWires, r.NoPulses, r.Timing.FillMatrixUs, r.Timing.SolveMatrixUs)))
	sb.WriteString("\n")

	sb.WriteString(RenderSources(r))
	sb.WriteString("\n")
	if len(r.Loads) > 0 {
		sb.WriteString(RenderLoads(r))
		sb.WriteString("\n")
	}
	if best, ok := r.MaxGain(); ok {
		sb.WriteString(fmt.Sprintf("max gain %.2f dBi at zenith %.1f, azimuth %.1f\n", best.Total, best.Zenith, best.Azimuth))
	}
	if len(r.Sweep) > 0 {
		sb.WriteString(RenderSweep(r))
		sb.WriteString("\n")
	}
	return sb.String()
}

func RenderSources(r *Report) string {
	t := newTable("Source", "Voltage", "Current", "Impedance", "Power")
	for i, s := range r.Sources {
		t.Row(
			fmt.Sprintf("%d", i+1),
			phasor(s.Voltage, "V"),
			phasor(s.Current, "A"),
			util.FormatImpedance(s.Impedance),
			util.FormatValueFactor(s.Power, "W"),
		)
	}
	return t.Render()
}

func RenderLoads(r *Report) string {
	t := newTable("Load", "Impedance")
	for i, z := range r.Loads {
		t.Row(fmt.Sprintf("%d", i+1), util.FormatImpedance(z))
	}
	return t.Render()
}

// RenderCurrents lists the currents of one wire, one row per segment point.
func RenderCurrents(wc WireCurrents) string {
	t := newTable("Segment", "Pulse", "Current")
	for i, c := range wc.Currents {
		pulse := "-"
		if c.Pulse >= 0 {
			pulse = fmt.Sprintf("%d", c.Pulse)
		}
		t.Row(fmt.Sprintf("%d", i), pulse, phasor(c.Current, "A"))
	}
	return t.Render()
}

func RenderPattern(r *Report) string {
	t := newTable("Zenith", "Azimuth", "Horizontal", "Vertical", "Total")
	for _, p := range r.Pattern {
		t.Row(
			fmt.Sprintf("%.1f", p.Zenith),
			fmt.Sprintf("%.1f", p.Azimuth),
			fmt.Sprintf("%.2f", p.Horizontal),
			fmt.Sprintf("%.2f", p.Vertical),
			fmt.Sprintf("%.2f", p.Total),
		)
	}
	return t.Render()
}

func RenderSweep(r *Report) string {
	t := newTable("Frequency", "Impedance", "Fill us", "Solve us")
	for _, p := range r.Sweep {
		t.Row(
			strings.TrimSpace(util.FormatFrequency(p.Frequency)),
			util.FormatImpedance(p.Impedance),
			fmt.Sprintf("%d", p.FillUs),
			fmt.Sprintf("%d", p.SolveUs),
		)
	}
	return t.Render()
}

func phasor(z complex128, unit string) string {
	mag := strings.TrimSpace(util.FormatMagnitude(cmplx.Abs(z)))
	phase := strings.TrimSpace(util.FormatPhase(cmplx.Phase(z) * 180.0 / math.Pi))
	return fmt.Sprintf("%s %s < %s deg", mag, unit, phase)
}

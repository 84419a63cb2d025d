package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/edp1096/toy-mininec/pkg/util"
)

const (
	pdfMargin       = 15.0  // mm
	pdfContentWidth = 180.0 // A4 portrait minus margins, mm
	pdfLineHeight   = 6.0
)

// Image is a PNG placed in the PDF below the tables.
type Image struct {
	Name    string
	Caption string
	PNG     []byte
}

// WritePDF writes the report with its source and load tables and images.
func WritePDF(path string, r *Report, images []Image) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(pdfContentWidth, 10, r.Name, "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	if r.Notes != "" {
		pdf.MultiCell(pdfContentWidth, pdfLineHeight-1, r.Notes, "", "L", false)
		pdf.Ln(2)
	}
	summary := fmt.Sprintf("Frequency %s, wavelength %s, %d wires, %d pulses",
		strings.TrimSpace(util.FormatFrequency(r.Frequency)), util.FormatValueFactor(r.Wavelength, "m"), r.NoWires, r.NoPulses)
	pdf.CellFormat(pdfContentWidth, pdfLineHeight, summary, "", 1, "L", false, 0, "")
	if best, ok := r.MaxGain(); ok {
		pdf.CellFormat(pdfContentWidth, pdfLineHeight,
			fmt.Sprintf("Max gain %.2f dBi at zenith %.1f deg, azimuth %.1f deg", best.Total, best.Zenith, best.Azimuth),
			"", 1, "L", false, 0, "")
	}
	pdf.Ln(3)

	rows := make([][]string, len(r.Sources))
	for i, s := range r.Sources {
		rows[i] = []string{fmt.Sprintf("%d", i+1), phasor(s.Voltage, "V"), phasor(s.Current, "A"),
			util.FormatImpedance(s.Impedance), util.FormatValueFactor(s.Power, "W")}
	}
	pdfTable(pdf, []string{"Source", "Voltage", "Current", "Impedance", "Power"}, []float64{18, 38, 42, 52, 30}, rows)

	if len(r.Loads) > 0 {
		rows = make([][]string, len(r.Loads))
		for i, z := range r.Loads {
			rows[i] = []string{fmt.Sprintf("%d", i+1), util.FormatImpedance(z)}
		}
		pdfTable(pdf, []string{"Load", "Impedance"}, []float64{18, 60}, rows)
	}

	if len(r.Sweep) > 0 {
		rows = make([][]string, len(r.Sweep))
		for i, p := range r.Sweep {
			rows[i] = []string{strings.TrimSpace(util.FormatFrequency(p.Frequency)), util.FormatImpedance(p.Impedance)}
		}
		pdfTable(pdf, []string{"Frequency", "Impedance"}, []float64{40, 60}, rows)
	}

	for _, img := range images {
		width := pdfContentWidth
		height := width / 2 // plots are rendered 2:1
		if pdf.GetY()+height+pdfLineHeight > 297-pdfMargin {
			pdf.AddPage()
		}
		pdf.RegisterImageReader(img.Name, "PNG", bytes.NewReader(img.PNG))
		pdf.ImageOptions(img.Name, pdfMargin, pdf.GetY(), width, height, true, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
		if img.Caption != "" {
			pdf.SetFont("Arial", "I", 9)
			pdf.CellFormat(pdfContentWidth, pdfLineHeight, img.Caption, "", 1, "C", false, 0, "")
			pdf.SetFont("Arial", "", 10)
		}
		pdf.Ln(3)
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("building pdf: %v", err)
	}
	return pdf.OutputFileAndClose(path)
}

func pdfTable(pdf *gofpdf.Fpdf, headers []string, widths []float64, rows [][]string) {
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(200, 200, 200)
	for i, h := range headers {
		pdf.CellFormat(widths[i], pdfLineHeight, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, row := range rows {
		for i, cell := range row {
			pdf.CellFormat(widths[i], pdfLineHeight, cell, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(3)
	pdf.SetFont("Arial", "", 10)
}

package main

import (
	"context"
	"fmt"
	"math/cmplx"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/edp1096/toy-mininec/internal/consts"
	"github.com/edp1096/toy-mininec/pkg/analysis"
	"github.com/edp1096/toy-mininec/pkg/logging"
	"github.com/edp1096/toy-mininec/pkg/mininec"
	"github.com/edp1096/toy-mininec/pkg/project"
	"github.com/edp1096/toy-mininec/pkg/report"
	"github.com/edp1096/toy-mininec/pkg/util"
)

var version = "dev"

type options struct {
	file    string
	example string
	list    bool
	freq    string
	sweep   string
	zenith  string
	azimuth string
	pdf     string
	plot    string
	save    string
	verbose bool
}

// parseSequence reads "init:step:count".
func parseSequence(value string) (mininec.StepSequence, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 3 {
		return mininec.StepSequence{}, fmt.Errorf("expecting init:step:count, got %q", value)
	}
	first, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return mininec.StepSequence{}, fmt.Errorf("bad init in %q", value)
	}
	step, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return mininec.StepSequence{}, fmt.Errorf("bad step in %q", value)
	}
	count, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil || count < 1 {
		return mininec.StepSequence{}, fmt.Errorf("bad count in %q", value)
	}
	return mininec.StepSequence{Init: first, Step: step, Count: count}, nil
}

// parseSweep reads "start:stop:points[:LIN|DEC|OCT]" in MHz.
func parseSweep(value string) ([]float64, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 3 && len(parts) != 4 {
		return nil, fmt.Errorf("expecting start:stop:points[:type], got %q", value)
	}
	start, err := parseFrequency(parts[0])
	if err != nil {
		return nil, err
	}
	stop, err := parseFrequency(parts[1])
	if err != nil {
		return nil, err
	}
	points, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return nil, fmt.Errorf("bad number of points in %q", value)
	}
	pointsType := "LIN"
	if len(parts) == 4 {
		pointsType = parts[3]
	}
	return analysis.FrequencyPoints(start, stop, points, pointsType)
}

// parseFrequency accepts typed input loosely, e.g. "14.1.5 MHz" is 14.1.
func parseFrequency(value string) (float64, error) {
	cleaned := util.FilterPositiveNumeric(value)
	if !util.IsNumeric(cleaned) {
		return 0, fmt.Errorf("bad frequency %q", value)
	}
	return strconv.ParseFloat(cleaned, 64)
}

func loadAntenna(opts options) (string, project.Antenna, error) {
	if opts.file != "" {
		a, err := project.Load(opts.file)
		return filepath.Base(opts.file), a, err
	}
	name := opts.example
	if name == "" {
		name = project.Examples[0].Name
	}
	a, ok := project.FindExample(name)
	if !ok {
		return "", project.Antenna{}, fmt.Errorf("unknown example %q, see --list", name)
	}
	return name, a, nil
}

// sweep solves every frequency and keeps the feed point impedance of the
// first source. A frequency printing the same as the previous one is kept once.
func sweep(s *mininec.Session, log *logrus.Logger, frequencies []float64) ([]report.SweepPoint, error) {
	results := analysis.NewBaseAnalysis()
	timings := make([]mininec.SolveTiming, 0, len(frequencies))

	for _, f := range frequencies {
		if err := s.SetFrequency(f); err != nil {
			return nil, err
		}
		if err := s.Solve(); err != nil {
			return nil, err
		}
		sources, err := s.SourceCurrents()
		if err != nil {
			return nil, err
		}
		if len(sources) == 0 {
			return nil, fmt.Errorf("no sources defined")
		}

		stored := len(results.GetResults()["FREQ"])
		results.StoreResult(f*consts.MEGA, map[string]complex128{"Z": sources[0].Impedance})
		if len(results.GetResults()["FREQ"]) == stored {
			log.Debugf("sweep: %g MHz skipped, same as previous point", f)
			continue
		}
		timings = append(timings, s.SolveTiming())
	}

	points := sweepPoints(results.GetResults(), timings)
	logSweep(log, points)
	return points, nil
}

// sweepPoints reads FREQ (Hz) and Z_RE/Z_IM back from the stored results.
func sweepPoints(results map[string][]float64, timings []mininec.SolveTiming) []report.SweepPoint {
	freqs := results["FREQ"]
	points := make([]report.SweepPoint, 0, len(freqs))
	for i, f := range freqs {
		point := report.SweepPoint{
			Frequency: f / consts.MEGA,
			Impedance: complex(results["Z_RE"][i], results["Z_IM"][i]),
		}
		if i < len(timings) {
			point.FillUs, point.SolveUs = timings[i].FillMatrixUs, timings[i].SolveMatrixUs
		}
		points = append(points, point)
	}
	return points
}

func logSweep(log *logrus.Logger, points []report.SweepPoint) {
	fill := util.NewStatistics()
	resistance := util.NewStatistics()
	reactance := util.NewStatistics()
	for _, p := range points {
		fill.Update(float64(p.FillUs))
		if !cmplx.IsInf(p.Impedance) {
			resistance.Update(real(p.Impedance))
			reactance.Update(imag(p.Impedance))
		}
	}
	log.Infof("sweep: %d points, fill %.0f us mean (sd %.0f us)", fill.Count(), fill.Mean(), fill.StdDev())
	log.Infof("sweep: R %.2f..%.2f ohm, X %.2f..%.2f ohm", resistance.Min(), resistance.Max(), reactance.Min(), reactance.Max())
}

func run(opts options, log *logrus.Logger) error {
	name, antenna, err := loadAntenna(opts)
	if err != nil {
		return err
	}
	if opts.freq != "" {
		if antenna.Frequency, err = parseFrequency(opts.freq); err != nil {
			return err
		}
	}
	zenith, err := parseSequence(opts.zenith)
	if err != nil {
		return fmt.Errorf("zenith: %v", err)
	}
	azimuth, err := parseSequence(opts.azimuth)
	if err != nil {
		return fmt.Errorf("azimuth: %v", err)
	}

	if opts.save != "" {
		if err := antenna.Save(opts.save); err != nil {
			return err
		}
		log.Infof("antenna saved to %s", opts.save)
	}

	session := mininec.NewDefault(log)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := session.WaitReady(ctx); err != nil {
		return fmt.Errorf("engine did not load: %v", err)
	}

	if err := project.Apply(session, antenna); err != nil {
		return err
	}
	if err := session.Solve(); err != nil {
		return err
	}
	log.Infof("%s solved: %d pulses", name, session.NoPulses())

	r, err := report.Collect(session, name, zenith, azimuth)
	if err != nil {
		return err
	}
	r.Notes = antenna.UserNotes

	if opts.sweep != "" {
		frequencies, err := parseSweep(opts.sweep)
		if err != nil {
			return fmt.Errorf("sweep: %v", err)
		}
		if r.Sweep, err = sweep(session, log, frequencies); err != nil {
			return err
		}
	}

	fmt.Println(report.Render(r))
	if opts.verbose {
		fmt.Println(report.RenderPattern(r))
		for _, wc := range r.Currents {
			fmt.Printf("wire %d\n%s\n", wc.Wire, report.RenderCurrents(wc))
		}
	}

	var images []report.Image
	if opts.plot != "" || opts.pdf != "" {
		pattern, err := report.PatternPlot(name+" far field", r.Pattern)
		if err != nil {
			return err
		}
		currents, err := report.CurrentPlot(name+" currents", r.Currents)
		if err != nil {
			return err
		}
		images = []report.Image{
			{Name: "pattern", Caption: "Far field gain", PNG: pattern},
			{Name: "currents", Caption: "Current magnitude along the wires", PNG: currents},
		}
	}
	if opts.plot != "" {
		for _, img := range images {
			path := fmt.Sprintf("%s_%s.png", opts.plot, img.Name)
			if err := os.WriteFile(path, img.PNG, 0o644); err != nil {
				return err
			}
			log.Infof("plot written to %s", path)
		}
	}
	if opts.pdf != "" {
		if err := report.WritePDF(opts.pdf, r, images); err != nil {
			return err
		}
		log.Infof("report written to %s", opts.pdf)
	}
	return nil
}

func main() {
	var opts options
	pflag.StringVarP(&opts.file, "file", "f", "", "Antenna description (YAML)")
	pflag.StringVarP(&opts.example, "example", "x", "", "Built-in example by name")
	pflag.BoolVar(&opts.list, "list", false, "List the built-in examples")
	pflag.StringVar(&opts.freq, "freq", "", "Override the frequency [MHz]")
	pflag.StringVar(&opts.sweep, "sweep", "", "Frequency sweep start:stop:points[:LIN|DEC|OCT] [MHz]")
	pflag.StringVar(&opts.zenith, "zenith", "0:5:37", "Far field zenith angles init:step:count [deg]")
	pflag.StringVar(&opts.azimuth, "azimuth", "0:0:1", "Far field azimuth angles init:step:count [deg]")
	pflag.StringVar(&opts.pdf, "pdf", "", "Write a PDF report to this file")
	pflag.StringVar(&opts.plot, "plot", "", "Write PNG plots with this path prefix")
	pflag.StringVar(&opts.save, "save", "", "Save the antenna description (YAML) to this file")
	pflag.BoolVarP(&opts.verbose, "verbose", "v", false, "Debug logging, pattern and current tables")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mininec [options]\n\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}
	if *versionFlag {
		fmt.Printf("mininec %s\n", version)
		return
	}
	if opts.list {
		for _, e := range project.Examples {
			fmt.Println(e.Name)
		}
		return
	}

	log, history := logging.New(logging.Options{Verbose: opts.verbose})
	if err := run(opts, log); err != nil {
		if opts.verbose {
			for _, msg := range history.Messages() {
				fmt.Fprintln(os.Stderr, msg)
			}
		}
		log.Fatalf("%v", err)
	}
}

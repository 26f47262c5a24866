package report

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"poissim/internal/stats"
)

// PlotFiles names the output images for the two comparison plots.
type PlotFiles struct {
	Counts        string
	Interarrivals string
}

// RenderPlots writes a histogram of counts against the Poisson PMF and, when
// the realization produced events, a histogram of interarrival times against
// the Exponential density. Errors are returned for the caller to log; a
// failed plot must never affect the computed summary.
func RenderPlots(files PlotFiles, s *stats.Summary, counts []int, gaps []float64) error {
	if err := renderCounts(files.Counts, s, counts); err != nil {
		return fmt.Errorf("counts plot: %w", err)
	}
	if len(gaps) > 0 {
		if err := renderInterarrivals(files.Interarrivals, s, gaps); err != nil {
			return fmt.Errorf("interarrivals plot: %w", err)
		}
	}
	return nil
}

func renderCounts(path string, s *stats.Summary, counts []int) error {
	p := plot.New()
	p.Title.Text = "Counts: empirical vs Poisson PMF"
	p.X.Label.Text = "Count per T"
	p.Y.Label.Text = "Probability"

	maxK := int(math.Ceil(s.TheoreticalMean + 4*math.Sqrt(s.TheoreticalVariance)))
	values := make(plotter.Values, len(counts))
	for i, c := range counts {
		values[i] = float64(c)
		if c > maxK {
			maxK = c
		}
	}

	hist, err := plotter.NewHist(values, maxK+1)
	if err != nil {
		return err
	}
	hist.Normalize(1)
	p.Add(hist)

	pmf := distuv.Poisson{Lambda: s.TheoreticalMean}
	points := make(plotter.XYs, maxK+1)
	for k := range points {
		points[k] = plotter.XY{X: float64(k), Y: pmf.Prob(float64(k))}
	}
	line, scatter, err := plotter.NewLinePoints(points)
	if err != nil {
		return err
	}
	p.Add(line, scatter)
	p.Legend.Add(fmt.Sprintf("Poisson(%.2f)", s.TheoreticalMean), line, scatter)

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

func renderInterarrivals(path string, s *stats.Summary, gaps []float64) error {
	p := plot.New()
	p.Title.Text = "Interarrival times: empirical vs exponential"
	p.X.Label.Text = "Interarrival time"
	p.Y.Label.Text = "Density"

	values := make(plotter.Values, len(gaps))
	maxGap := 0.0
	for i, g := range gaps {
		values[i] = g
		if g > maxGap {
			maxGap = g
		}
	}

	hist, err := plotter.NewHist(values, 50)
	if err != nil {
		return err
	}
	hist.Normalize(1)
	p.Add(hist)

	pdf := distuv.Exponential{Rate: s.Rate}
	density := plotter.NewFunction(pdf.Prob)
	density.Samples = 200
	p.Add(density)
	p.Legend.Add(fmt.Sprintf("Exponential(mean=%.2f)", s.TheoreticalInterarrivalMean), density)

	p.X.Min = 0
	p.X.Max = math.Max(maxGap, 5*s.TheoreticalInterarrivalMean)

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

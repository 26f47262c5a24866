package report

import (
	"os"
	"path/filepath"
	"testing"

	"poissim/internal/sim"
	"poissim/internal/stats"
)

func TestRenderPlots(t *testing.T) {
	p := sim.Params{T: 1.0, Lambda: 3.5, N: 1000, Trials: 500, Seed: 11}
	stream := sim.NewStream(p.Seed)
	counts := sim.SampleCounts(p, sim.CountDirect, stream, nil)
	times := sim.BuildRealization(p, stream)
	gaps := sim.Interarrivals(times)
	summary := stats.Summarize(p, counts, times, gaps)

	dir := t.TempDir()
	files := PlotFiles{
		Counts:        filepath.Join(dir, "counts.png"),
		Interarrivals: filepath.Join(dir, "interarrivals.png"),
	}

	if err := RenderPlots(files, summary, counts, gaps); err != nil {
		t.Fatalf("RenderPlots() error: %v", err)
	}

	for _, path := range []string{files.Counts, files.Interarrivals} {
		info, err := os.Stat(path)
		if err != nil {
			t.Errorf("missing plot %s: %v", path, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("plot %s is empty", path)
		}
	}
}

func TestRenderPlots_NoEvents(t *testing.T) {
	p := sim.Params{T: 1.0, Lambda: 3.5, N: 1000, Trials: 100, Seed: 11}
	counts := sim.SampleCounts(p, sim.CountDirect, sim.NewStream(p.Seed), nil)
	summary := stats.Summarize(p, counts, nil, nil)

	dir := t.TempDir()
	files := PlotFiles{
		Counts:        filepath.Join(dir, "counts.png"),
		Interarrivals: filepath.Join(dir, "interarrivals.png"),
	}

	if err := RenderPlots(files, summary, counts, nil); err != nil {
		t.Fatalf("RenderPlots() error: %v", err)
	}
	if _, err := os.Stat(files.Counts); err != nil {
		t.Errorf("counts plot not written: %v", err)
	}
	if _, err := os.Stat(files.Interarrivals); err == nil {
		t.Error("interarrivals plot written despite empty realization")
	}
}

func TestRenderPlots_BadPath(t *testing.T) {
	p := sim.Params{T: 1.0, Lambda: 3.5, N: 100, Trials: 10, Seed: 1}
	counts := sim.SampleCounts(p, sim.CountDirect, sim.NewStream(p.Seed), nil)
	summary := stats.Summarize(p, counts, nil, nil)

	files := PlotFiles{Counts: filepath.Join(t.TempDir(), "missing", "counts.png")}
	if err := RenderPlots(files, summary, counts, nil); err == nil {
		t.Error("expected error for unwritable plot path")
	}
}

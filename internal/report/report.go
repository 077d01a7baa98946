// Package report drives the full pipeline: parse each configured dataset,
// then hand the series to the chart renderers.
package report

import (
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/banshee-data/poverty.report/internal/chart"
	"github.com/banshee-data/poverty.report/internal/dataset"
	"github.com/banshee-data/poverty.report/internal/fsutil"
	"github.com/banshee-data/poverty.report/internal/tabular"
)

// yTickInterval is the y-axis major tick spacing on the PNG charts.
const yTickInterval = 2.0

// Runner processes dataset configurations one at a time. Datasets share no
// state, so failures are contained: a file that cannot be read or parsed is
// logged and the remaining datasets still run.
type Runner struct {
	FS        fsutil.FileSystem
	InputDir  string
	OutputDir string
	HTML      bool
}

// Run validates configs, then parses and charts each dataset in order.
// Returns an error only for misconfiguration or an unusable output
// directory; per-dataset failures are logged and skipped.
func (r *Runner) Run(configs []dataset.Config) error {
	for _, cfg := range configs {
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid dataset config: %w", err)
		}
	}
	if err := r.FS.MkdirAll(r.OutputDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	for _, cfg := range configs {
		if err := r.runOne(cfg); err != nil {
			log.Printf("WARNING: dataset %s failed: %v", cfg.Filename, err)
		}
	}
	return nil
}

func (r *Runner) runOne(cfg dataset.Config) error {
	path := filepath.Join(r.InputDir, cfg.Filename)

	s, err := tabular.LoadFile(r.FS, path, cfg.Parse)
	if errors.Is(err, tabular.ErrNoData) {
		log.Printf("no data loaded from %s; skipping charts", path)
		return nil
	}
	if err != nil {
		return err
	}
	s.Name = cfg.Title

	log.Printf("parsed %d points from %s (mean %.1f, range %.1f to %.1f)",
		s.Len(), path, stat.Mean(s.Values, nil), floats.Min(s.Values), floats.Max(s.Values))

	plain := chart.Options{
		Title:         cfg.Title,
		XLabel:        "Year",
		YLabel:        cfg.YLabel,
		YTickInterval: yTickInterval,
	}
	annotated := plain
	annotated.Title = cfg.Title + " - Annotated"
	annotated.Spans = chart.ReaganTerms()

	if err := r.writeChart(cfg.OutputBase+".png", func(w io.Writer) error {
		return chart.RenderPNG(s, plain, w)
	}); err != nil {
		return err
	}
	if err := r.writeChart(cfg.OutputBase+"_annotated.png", func(w io.Writer) error {
		return chart.RenderPNG(s, annotated, w)
	}); err != nil {
		return err
	}
	if r.HTML {
		if err := r.writeChart(cfg.OutputBase+".html", func(w io.Writer) error {
			return chart.RenderHTML(s, plain, w)
		}); err != nil {
			return err
		}
	}
	return nil
}

// writeChart renders through the filesystem seam so tests can capture
// output in memory.
func (r *Runner) writeChart(name string, render func(io.Writer) error) error {
	path := filepath.Join(r.OutputDir, name)
	f, err := r.FS.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := render(f); err != nil {
		f.Close()
		return fmt.Errorf("render %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	log.Printf("chart saved: %s", path)
	return nil
}

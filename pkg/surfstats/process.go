package surfstats

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ukaji3/surfstats-go/pkg/surfstats/models"
	"github.com/ukaji3/surfstats-go/pkg/surfstats/parser"
	"github.com/ukaji3/surfstats-go/pkg/surfstats/plot"
	"github.com/ukaji3/surfstats-go/pkg/surfstats/report"
	"github.com/ukaji3/surfstats-go/pkg/surfstats/stats"
	"github.com/ukaji3/surfstats-go/pkg/surfstats/units"
)

// Result describes one processed export.
type Result struct {
	// Source is the input CSV.
	Source string
	// ReportPath is the written workbook.
	ReportPath string
	// Table is the metric measurement table.
	Table *models.MeasurementTable
	// Stats is the metric statistics table written to the report.
	Stats *models.StatsTable
	// PlotFiles lists rendered plot images, if plotting was requested.
	PlotFiles []string
}

// Process runs the full pipeline for one export: load, convert to
// metric, aggregate and write the report.
func Process(path string, opts Options) (*Result, error) {
	raw, err := parser.LoadMeasurements(path)
	if err != nil {
		return nil, err
	}
	table := units.TableToMetric(raw)

	summary, err := stats.Aggregate(table, opts.SigFigs)
	if err != nil {
		return nil, NewStageError(path, "aggregate", err)
	}

	res := &Result{Source: path, Table: table, Stats: summary}

	if opts.PlotDir != "" {
		files, err := renderPlots(table, opts)
		if err != nil {
			return nil, NewStageError(path, "plot", err)
		}
		res.PlotFiles = files
	}

	reportPath, err := report.WriteNew(opts.ReportDir(path), opts.now(), summary, table.ProcessedFiles(), opts.ColumnWidth)
	if err != nil {
		return nil, NewStageError(path, "report", err)
	}
	res.ReportPath = reportPath

	return res, nil
}

func renderPlots(table *models.MeasurementTable, opts Options) ([]string, error) {
	fig, err := plot.BoxPlots(table, opts.PlotWidth, opts.PlotHeight)
	if err != nil {
		return nil, err
	}
	base := strings.TrimSuffix(filepath.Base(table.Path), filepath.Ext(table.Path))
	files, err := fig.SavePNG(opts.PlotDir, base)
	if err != nil {
		return nil, fmt.Errorf("save plots: %w", err)
	}
	return files, nil
}

// BatchResult is the outcome of one file of a batch.
type BatchResult struct {
	Source string
	Result *Result
	Err    error
}

// ProcessBatch processes paths one at a time in order. A failing file
// is logged and skipped; it never stops the batch.
func ProcessBatch(paths []string, opts Options) ([]BatchResult, error) {
	if len(paths) == 0 {
		return nil, ErrNoInputSelected
	}

	log := opts.logger()
	results := make([]BatchResult, 0, len(paths))
	for _, path := range paths {
		res, err := Process(path, opts)
		results = append(results, BatchResult{Source: path, Result: res, Err: err})
		if err != nil {
			log.Warn("skipping file", "file", path, "error", err, "hint", Hint(err))
			continue
		}
		log.Info("report written",
			"file", path,
			"report", res.ReportPath,
			"rows", res.Table.Len(),
			"columns", len(res.Table.Columns),
		)
	}
	return results, nil
}

// Failed returns the results that carry an error.
func Failed(results []BatchResult) []BatchResult {
	var out []BatchResult
	for _, r := range results {
		if r.Err != nil {
			out = append(out, r)
		}
	}
	return out
}

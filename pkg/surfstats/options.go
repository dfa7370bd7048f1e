// Package surfstats turns surface-metrology CSV exports into
// two-unit-system statistics workbooks.
package surfstats

import (
	"log/slog"
	"path/filepath"
	"time"

	"github.com/ukaji3/surfstats-go/pkg/surfstats/report"
	"github.com/ukaji3/surfstats-go/pkg/surfstats/stats"
)

// Options configures processing.
type Options struct {
	// SigFigs is the number of significant figures of every statistic.
	SigFigs int
	// ColumnWidth is applied to every used column of the report.
	ColumnWidth float64
	// OutputDir receives the reports. If empty, each report is written
	// beside its source file.
	OutputDir string
	// PlotDir, if set, receives inspection plots of each input.
	PlotDir string
	// PlotWidth and PlotHeight size each plot panel in pixels.
	PlotWidth  int
	PlotHeight int
	// Now returns the save time used in report names. Defaults to time.Now.
	Now func() time.Time
	// Logger receives progress and failure records. Defaults to slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns default processing options: reports beside
// their sources, 3 significant figures, 20-character columns.
func DefaultOptions() Options {
	return Options{
		SigFigs:     stats.DefaultSigFigs,
		ColumnWidth: report.DefaultColumnWidth,
		PlotWidth:   480,
		PlotHeight:  360,
	}
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// ReportDir returns the directory the report for source is written to.
func (o Options) ReportDir(source string) string {
	if o.OutputDir != "" {
		return o.OutputDir
	}
	return filepath.Dir(source)
}

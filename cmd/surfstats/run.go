package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/surfstats-go/pkg/surfstats"
	"github.com/ukaji3/surfstats-go/pkg/surfstats/config"
)

// job is a group of exports sharing one output directory policy.
type job struct {
	paths     []string
	outputDir string // empty: beside each source
}

func run(cmd *cobra.Command, fl flags, args []string) error {
	cfg, err := config.Load(fl.configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, fl, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := config.NewLogger(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	if len(args) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No input selected, nothing to do.")
		return nil
	}

	jobs, err := planJobs(args, cfg.Report.OutputDir)
	if err != nil {
		return err
	}

	opts := surfstats.DefaultOptions()
	opts.SigFigs = cfg.Report.SigFigs
	opts.ColumnWidth = cfg.Report.ColumnWidth
	opts.PlotDir = cfg.Plot.Dir
	opts.PlotWidth = cfg.Plot.Width
	opts.PlotHeight = cfg.Plot.Height
	opts.Logger = log

	var total, failed int
	for _, j := range jobs {
		if len(j.paths) == 0 {
			continue
		}
		opts.OutputDir = j.outputDir
		results, err := surfstats.ProcessBatch(j.paths, opts)
		if err != nil {
			return err
		}
		for _, r := range results {
			total++
			if r.Err != nil {
				failed++
				continue
			}
			fmt.Fprintln(cmd.OutOrStdout(), r.Result.ReportPath)
		}
	}

	if total == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No CSV exports found.")
		return nil
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, total)
	}
	return nil
}

// applyFlags overrides configuration values with flags set explicitly.
func applyFlags(cmd *cobra.Command, fl flags, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("output-dir") {
		cfg.Report.OutputDir = fl.outputDir
	}
	if changed("sig-figs") {
		cfg.Report.SigFigs = fl.sigFigs
	}
	if changed("col-width") {
		cfg.Report.ColumnWidth = fl.colWidth
	}
	if changed("plot-dir") {
		cfg.Plot.Dir = fl.plotDir
	}
	if changed("log-level") {
		cfg.Logging.Level = fl.logLevel
	}
	if changed("log-format") {
		cfg.Logging.Format = fl.logFormat
	}
}

// planJobs expands directory arguments into their discovered exports and
// keeps file arguments in order.
func planJobs(args []string, outputDir string) ([]job, error) {
	var jobs []job
	for _, arg := range args {
		info, err := os.Stat(arg)
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", surfstats.ErrFileNotFound, arg)
		}
		if err != nil {
			return nil, err
		}

		if info.IsDir() {
			files, err := surfstats.Discover(arg)
			if err != nil {
				return nil, err
			}
			jobs = append(jobs, job{paths: files})
			continue
		}

		if !strings.EqualFold(filepath.Ext(arg), ".csv") {
			return nil, fmt.Errorf("not a CSV file: %s", arg)
		}
		jobs = append(jobs, job{paths: []string{arg}, outputDir: outputDir})
	}
	return jobs, nil
}

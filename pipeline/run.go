package pipeline

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lucasjlepore/ftracker"
	"github.com/lucasjlepore/ftracker/fitsource"
	"github.com/lucasjlepore/ftracker/observability"
)

// Run collects packages, summarizes them and writes the optional artifacts.
//
// Packages come from the FIT file, the JSONL input or the built-in demo batch,
// in that order of preference. Dispatch failures do not discard the work done:
// Result is returned alongside the error so callers can still emit the
// summaries computed before (or, with KeepGoing, around) the bad packages.
func Run(opts Options) (*Result, error) {
	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = "parquet"
	}
	if format != "parquet" && format != "csv" {
		return nil, fmt.Errorf("unsupported format %q (expected parquet|csv)", format)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	res := &Result{RunID: uuid.NewString()}
	pkgs, err := collectPackages(opts, res)
	if err != nil {
		return nil, err
	}
	logger.Debug("packages loaded", "run_id", res.RunID, "source", res.Source, "count", len(pkgs))
	for _, w := range res.Warnings {
		logger.Warn("package skipped", "run_id", res.RunID, "reason", w)
	}

	metrics := observability.NewMetrics()
	dispatchErr := ftracker.ProcessEach(pkgs, opts.KeepGoing, func(o ftracker.Outcome) {
		if o.Err != nil {
			metrics.RecordDispatchError(o.Err)
			logger.Error("package rejected", "run_id", res.RunID, "index", o.Index, "code", o.Package.Code, "error", o.Err)
			return
		}
		metrics.RecordProcessed(o.Package.Code)
		res.Summaries = append(res.Summaries, Summary{
			Index:       o.Index,
			Code:        o.Package.Code,
			InfoMessage: o.Info,
			Message:     o.Info.Message(),
		})
	})

	if strings.TrimSpace(opts.ExportPath) != "" {
		if err := writeSummaries(opts.ExportPath, format, res.RunID, res.Summaries); err != nil {
			return nil, fmt.Errorf("write %s export: %w", format, err)
		}
		res.ExportPath = opts.ExportPath
		logger.Info("summaries exported", "run_id", res.RunID, "path", res.ExportPath, "format", format)
	}

	metrics.RecordRun(time.Now().UTC())
	if strings.TrimSpace(opts.MetricsPath) != "" {
		if err := metrics.WriteTextfile(opts.MetricsPath); err != nil {
			return nil, fmt.Errorf("write metrics textfile: %w", err)
		}
		res.MetricsPath = opts.MetricsPath
	}

	return res, dispatchErr
}

func collectPackages(opts Options, res *Result) ([]ftracker.Package, error) {
	switch {
	case strings.TrimSpace(opts.FitPath) != "":
		res.Source = opts.FitPath
		decoded, err := fitsource.DecodeFile(opts.FitPath, opts.Athlete)
		if err != nil {
			return nil, err
		}
		res.Warnings = append(res.Warnings, decoded.Warnings...)
		return decoded.Packages, nil
	case strings.TrimSpace(opts.InputPath) != "":
		res.Source = opts.InputPath
		pkgs, err := loadPackagesFile(opts.InputPath, opts.Stdin)
		if err != nil {
			return nil, fmt.Errorf("load packages: %w", err)
		}
		return pkgs, nil
	default:
		res.Source = "demo"
		return ftracker.DemoPackages(), nil
	}
}

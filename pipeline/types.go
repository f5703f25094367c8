package pipeline

import (
	"io"
	"log/slog"

	"github.com/lucasjlepore/ftracker"
	"github.com/lucasjlepore/ftracker/fitsource"
)

// Options configures one tracker run.
type Options struct {
	InputPath   string    // JSONL packages, "-" reads Stdin
	Stdin       io.Reader // used when InputPath is "-"
	FitPath     string    // FIT activity file; takes precedence over InputPath
	Athlete     fitsource.Athlete
	ExportPath  string
	Format      string // parquet|csv
	MetricsPath string
	KeepGoing   bool
	Logger      *slog.Logger
}

// Result describes one completed run.
type Result struct {
	RunID       string    `json:"run_id"`
	Source      string    `json:"source"`
	Summaries   []Summary `json:"summaries"`
	ExportPath  string    `json:"export_path,omitempty"`
	MetricsPath string    `json:"metrics_path,omitempty"`
	Warnings    []string  `json:"warnings,omitempty"`
}

// Summary is one rendered package of the batch.
type Summary struct {
	Index int    `json:"index"`
	Code  string `json:"code"`
	ftracker.InfoMessage
	Message string `json:"message"`
}

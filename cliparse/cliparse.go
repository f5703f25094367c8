package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config is the parsed command-line and environment configuration shared by
// the ftracker commands.
type Config struct {
	InputPath   string
	FitPath     string
	WeightKG    float64
	HeightCM    float64
	PoolLengthM float64
	ExportPath  string
	Format      string
	MetricsPath string
	KeepGoing   bool
	JSON        bool
	LogLevel    slog.Level

	// Args holds the positional arguments left after the flags.
	Args []string
}

// envByFlag maps each flag to the environment variable consulted when the flag
// is not given on the command line.
var envByFlag = map[string]string{
	"input":        "FTRACKER_INPUT",
	"fit":          "FTRACKER_FIT",
	"weight":       "FTRACKER_WEIGHT",
	"height":       "FTRACKER_HEIGHT",
	"pool-length":  "FTRACKER_POOL_LENGTH",
	"export":       "FTRACKER_EXPORT",
	"format":       "FTRACKER_FORMAT",
	"metrics-file": "FTRACKER_METRICS_FILE",
	"keep-going":   "FTRACKER_KEEP_GOING",
	"log-level":    "FTRACKER_LOG_LEVEL",
	"json":         "FTRACKER_JSON",
}

// LoadEnv loads .env style files into the process environment. Variables that
// are already set win. Missing files are ignored.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// ParseFlags parses args for the named command, falling back to FTRACKER_*
// environment variables for every flag not given explicitly.
func ParseFlags(name string, output io.Writer, args []string) (Config, error) {
	cfg := Config{Format: "parquet"}
	var logLevel string

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	if output != nil {
		flags.SetOutput(output)
	}
	flags.StringVar(&cfg.InputPath, "input", "", "JSONL packages file, - for stdin (default: built-in demo batch)")
	flags.StringVar(&cfg.FitPath, "fit", "", "FIT activity file to summarize")
	flags.Float64Var(&cfg.WeightKG, "weight", 0, "Athlete weight in kg (FIT input)")
	flags.Float64Var(&cfg.HeightCM, "height", 0, "Athlete height in cm (FIT walking sessions)")
	flags.Float64Var(&cfg.PoolLengthM, "pool-length", 0, "Pool length in m (FIT swimming sessions, default 25)")
	flags.StringVar(&cfg.ExportPath, "export", "", "Write summaries to this file")
	flags.StringVar(&cfg.Format, "format", cfg.Format, "Export format: parquet|csv")
	flags.StringVar(&cfg.MetricsPath, "metrics-file", "", "Write Prometheus textfile metrics to this path")
	flags.BoolVar(&cfg.KeepGoing, "keep-going", false, "Skip invalid packages instead of stopping at the first one")
	flags.BoolVar(&cfg.JSON, "json", false, "Emit summaries as JSON")
	flags.StringVar(&logLevel, "log-level", "warn", "Log level: debug|info|warn|error")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.Args = flags.Args()

	set := make(map[string]bool)
	flags.Visit(func(f *flag.Flag) { set[f.Name] = true })
	for flagName, key := range envByFlag {
		if set[flagName] {
			continue
		}
		v, ok := os.LookupEnv(key)
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		if err := flags.Set(flagName, strings.TrimSpace(v)); err != nil {
			return Config{}, fmt.Errorf("invalid %s env variable: %w", key, err)
		}
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
		return Config{}, fmt.Errorf("invalid log level %q", logLevel)
	}
	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	if cfg.Format != "parquet" && cfg.Format != "csv" {
		return Config{}, fmt.Errorf("unsupported format %q (expected parquet|csv)", cfg.Format)
	}
	for _, v := range []struct {
		name string
		val  float64
	}{
		{"weight", cfg.WeightKG},
		{"height", cfg.HeightCM},
		{"pool-length", cfg.PoolLengthM},
	} {
		if v.val < 0 {
			return Config{}, fmt.Errorf("%s must not be negative", v.name)
		}
	}
	return cfg, nil
}

// Logger builds the stderr text logger for cfg.
func (cfg Config) Logger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.LogLevel}))
}

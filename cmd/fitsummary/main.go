package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lucasjlepore/ftracker/cliparse"
	"github.com/lucasjlepore/ftracker/fitsource"
	"github.com/lucasjlepore/ftracker/pipeline"
)

const usage = "Usage: fitsummary --weight 72.5 [--height 180] [--pool-length 25] [--json] [--export out.parquet] [--metrics-file m.prom] <path-to-fit-file>"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if err := cliparse.LoadEnv(); err != nil {
		fmt.Fprintf(stderr, "fitsummary: %v\n", err)
		return 2
	}
	cfg, err := cliparse.ParseFlags("fitsummary", stderr, args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "fitsummary: %v\n", err)
		return 2
	}
	if cfg.InputPath != "" {
		fmt.Fprintln(stderr, "fitsummary: --input is not supported, pass a FIT file")
		return 2
	}
	filePath := cfg.FitPath
	if len(cfg.Args) > 0 {
		filePath = cfg.Args[0]
	}
	if filePath == "" || cfg.WeightKG <= 0 || len(cfg.Args) > 1 {
		fmt.Fprintln(stderr, usage)
		return 2
	}

	result, err := pipeline.Run(pipeline.Options{
		FitPath: filePath,
		Athlete: fitsource.Athlete{
			WeightKG:    cfg.WeightKG,
			HeightCM:    cfg.HeightCM,
			PoolLengthM: cfg.PoolLengthM,
		},
		ExportPath:  cfg.ExportPath,
		Format:      cfg.Format,
		MetricsPath: cfg.MetricsPath,
		KeepGoing:   cfg.KeepGoing,
		Logger:      cfg.Logger(stderr),
	})
	if result == nil {
		fmt.Fprintf(stderr, "summary failed: %v\n", err)
		return 1
	}
	for _, w := range result.Warnings {
		fmt.Fprintf(stderr, "warning: %s\n", w)
	}

	if cfg.JSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if jerr := enc.Encode(result); jerr != nil {
			fmt.Fprintf(stderr, "json encode failed: %v\n", jerr)
			return 1
		}
	} else {
		for _, s := range result.Summaries {
			fmt.Fprintln(stdout, s.Message)
		}
	}
	if err != nil {
		fmt.Fprintf(stderr, "summary failed: %v\n", err)
		return 1
	}
	return 0
}

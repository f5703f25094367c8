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

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if err := cliparse.LoadEnv(); err != nil {
		fmt.Fprintf(stderr, "ftracker: %v\n", err)
		return 2
	}
	cfg, err := cliparse.ParseFlags("ftracker", stderr, args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "ftracker: %v\n", err)
		return 2
	}
	if len(cfg.Args) > 0 {
		fmt.Fprintf(stderr, "ftracker: unexpected arguments %q\n", cfg.Args)
		return 2
	}
	if cfg.FitPath != "" && cfg.WeightKG <= 0 {
		fmt.Fprintln(stderr, "ftracker: --weight is required with --fit")
		return 2
	}

	result, err := pipeline.Run(pipeline.Options{
		InputPath: cfg.InputPath,
		Stdin:     stdin,
		FitPath:   cfg.FitPath,
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
	if result != nil {
		if werr := writeResult(stdout, result, cfg.JSON); werr != nil {
			fmt.Fprintf(stderr, "ftracker: write output: %v\n", werr)
			return 1
		}
	}
	if err != nil {
		fmt.Fprintf(stderr, "ftracker failed: %v\n", err)
		return 1
	}
	return 0
}

func writeResult(w io.Writer, result *pipeline.Result, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	for _, s := range result.Summaries {
		if _, err := fmt.Fprintln(w, s.Message); err != nil {
			return err
		}
	}
	return nil
}

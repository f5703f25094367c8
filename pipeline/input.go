package pipeline

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/lucasjlepore/ftracker"
)

// LoadPackages reads one JSON package per line, e.g.
//
//	{"code":"RUN","values":[15000,1,75]}
//
// Blank lines are skipped.
func LoadPackages(r io.Reader) ([]ftracker.Package, error) {
	sc := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	sc.Buffer(buf, 1024*1024)

	pkgs := make([]ftracker.Package, 0, 16)
	line := 0
	for sc.Scan() {
		line++
		raw := bytes.TrimSpace(sc.Bytes())
		if len(raw) == 0 {
			continue
		}
		var p ftracker.Package
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("unmarshal jsonl line %d: %w", line, err)
		}
		pkgs = append(pkgs, p)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return pkgs, nil
}

func loadPackagesFile(path string, stdin io.Reader) ([]ftracker.Package, error) {
	if path == "-" {
		if stdin == nil {
			stdin = os.Stdin
		}
		return LoadPackages(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadPackages(f)
}

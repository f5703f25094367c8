package ftracker

import (
	"errors"
	"fmt"
)

// Package is one raw sensor reading: an activity code and its values in
// field order.
type Package struct {
	Code   string    `json:"code"`
	Values []float64 `json:"values"`
}

// PackageError ties a dispatch error to its position in a batch.
type PackageError struct {
	Index int
	Code  string
	Err   error
}

func (e *PackageError) Error() string {
	return fmt.Sprintf("package %d (%s): %v", e.Index, e.Code, e.Err)
}

func (e *PackageError) Unwrap() error { return e.Err }

// DemoPackages returns the built-in sample batch.
func DemoPackages() []Package {
	return []Package{
		{Code: CodeSwimming, Values: []float64{720, 1, 80, 25, 40}},
		{Code: CodeRunning, Values: []float64{15000, 1, 75}},
		{Code: CodeWalking, Values: []float64{9000, 1, 75, 180}},
	}
}

// Outcome is the result of one package of a batch. Err is a *PackageError
// when the package was rejected, and Info is set otherwise.
type Outcome struct {
	Index   int
	Package Package
	Info    InfoMessage
	Err     error
}

// ProcessEach summarizes every package in order and hands each outcome to fn.
//
// With keepGoing false the first invalid package aborts the batch and its
// error is returned. With keepGoing true invalid packages are skipped and all
// their errors are returned joined.
func ProcessEach(pkgs []Package, keepGoing bool, fn func(Outcome)) error {
	var errs []error
	for i, p := range pkgs {
		out := Outcome{Index: i, Package: p}
		w, err := ReadPackage(p.Code, p.Values)
		if err != nil {
			out.Err = &PackageError{Index: i, Code: p.Code, Err: err}
		} else {
			out.Info = w.TrainingInfo()
		}
		if fn != nil {
			fn(out)
		}
		if out.Err == nil {
			continue
		}
		if !keepGoing {
			return out.Err
		}
		errs = append(errs, out.Err)
	}
	return errors.Join(errs...)
}

// Process summarizes every package in order, returning the summaries of the
// accepted packages. Batch policy follows ProcessEach.
func Process(pkgs []Package, keepGoing bool) ([]InfoMessage, error) {
	infos := make([]InfoMessage, 0, len(pkgs))
	err := ProcessEach(pkgs, keepGoing, func(o Outcome) {
		if o.Err == nil {
			infos = append(infos, o.Info)
		}
	})
	return infos, err
}

// Package fitsource turns recorded FIT activity files into sensor packages.
package fitsource

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/tormoder/fit"

	"github.com/lucasjlepore/ftracker"
)

const (
	secondsPerHour = 3600.0

	// DefaultPoolLengthM is used when no pool length is configured.
	DefaultPoolLengthM = 25.0
)

// ErrNoSessions is returned for activity files without a session message.
var ErrNoSessions = errors.New("activity file has no session message")

// Athlete carries the inputs a FIT session does not record.
type Athlete struct {
	WeightKG    float64
	HeightCM    float64
	PoolLengthM float64
}

// Result holds the packages derived from one FIT file.
type Result struct {
	Packages []ftracker.Package
	Warnings []string
}

// DecodeFile opens and decodes a FIT activity file.
func DecodeFile(path string, athlete Athlete) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open FIT file: %w", err)
	}
	defer f.Close()
	return Decode(f, athlete)
}

// Decode reads a FIT activity stream and maps every supported session to a
// package. Unsupported or empty sessions are skipped with a warning.
func Decode(r io.Reader, athlete Athlete) (*Result, error) {
	if safePositive(athlete.WeightKG) == 0 {
		return nil, errors.New("athlete weight is required")
	}
	if athlete.PoolLengthM <= 0 {
		athlete.PoolLengthM = DefaultPoolLengthM
	}

	decoded, err := fit.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode FIT file: %w", err)
	}
	activity, err := decoded.Activity()
	if err != nil {
		return nil, fmt.Errorf("activity FIT expected: %w", err)
	}
	if len(activity.Sessions) == 0 {
		return nil, ErrNoSessions
	}

	res := &Result{}
	for i, session := range activity.Sessions {
		if session == nil {
			continue
		}
		pkg, warning := sessionPackage(session, athlete)
		if warning != "" {
			res.Warnings = append(res.Warnings, fmt.Sprintf("session %d: %s", i, warning))
			continue
		}
		res.Packages = append(res.Packages, pkg)
	}
	return res, nil
}

func sessionPackage(session *fit.SessionMsg, athlete Athlete) (ftracker.Package, string) {
	hours := safePositive(session.GetTotalTimerTimeScaled()) / secondsPerHour
	if hours == 0 {
		return ftracker.Package{}, "no timer time recorded"
	}
	cycles := float64(validUint32(session.TotalCycles))

	switch session.Sport {
	case fit.SportRunning:
		return ftracker.Package{
			Code:   ftracker.CodeRunning,
			Values: []float64{stepsFromStrides(cycles), hours, athlete.WeightKG},
		}, ""
	case fit.SportWalking:
		if safePositive(athlete.HeightCM) == 0 {
			return ftracker.Package{}, "walking session needs athlete height"
		}
		return ftracker.Package{
			Code:   ftracker.CodeWalking,
			Values: []float64{stepsFromStrides(cycles), hours, athlete.WeightKG, athlete.HeightCM},
		}, ""
	case fit.SportSwimming:
		pool, lengths := poolGeometry(session, athlete.PoolLengthM)
		return ftracker.Package{
			Code:   ftracker.CodeSwimming,
			Values: []float64{cycles, hours, athlete.WeightKG, pool, lengths},
		}, ""
	default:
		return ftracker.Package{}, fmt.Sprintf("sport %v not supported", session.Sport)
	}
}

// poolGeometry prefers the pool length and active length count recorded by the
// device. Without them the configured pool length is used and the lengths are
// derived from the session distance.
func poolGeometry(session *fit.SessionMsg, fallbackPoolM float64) (float64, float64) {
	pool := safePositive(session.GetPoolLengthScaled())
	if pool == 0 {
		pool = fallbackPoolM
	}
	if n := validUint16(session.NumActiveLengths); n > 0 {
		return pool, float64(n)
	}
	distance := safePositive(session.GetTotalDistanceScaled())
	return pool, math.Round(distance / pool)
}

// Running and walking cycles are strides, two steps each.
func stepsFromStrides(cycles float64) float64 {
	return cycles * 2
}

func validUint32(v uint32) uint32 {
	if v == math.MaxUint32 {
		return 0
	}
	return v
}

func validUint16(v uint16) uint16 {
	if v == math.MaxUint16 {
		return 0
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func safePositive(v float64) float64 {
	if !isFinite(v) || v <= 0 {
		return 0
	}
	return v
}

package ftracker

import (
	"errors"
	"fmt"
	"sort"
)

// Activity codes reported by the sensor unit.
const (
	CodeSwimming = "SWM"
	CodeRunning  = "RUN"
	CodeWalking  = "WLK"
)

var (
	// ErrUnknownActivity is wrapped by UnknownActivityError.
	ErrUnknownActivity = errors.New("unknown activity")
	// ErrArgumentCount is wrapped by ArgumentCountError.
	ErrArgumentCount = errors.New("argument count mismatch")
)

// UnknownActivityError reports an activity code outside the supported set.
type UnknownActivityError struct {
	Code string
}

func (e *UnknownActivityError) Error() string {
	return fmt.Sprintf("unknown activity %q", e.Code)
}

func (e *UnknownActivityError) Unwrap() error { return ErrUnknownActivity }

// ArgumentCountError reports a package whose value count does not match the
// field count of its activity.
type ArgumentCountError struct {
	Code     string
	Expected int
	Actual   int
}

func (e *ArgumentCountError) Error() string {
	return fmt.Sprintf("argument count mismatch for %s: expected %d, got %d", e.Code, e.Expected, e.Actual)
}

func (e *ArgumentCountError) Unwrap() error { return ErrArgumentCount }

type builder struct {
	arity int
	build func(v []float64) Workout
}

// Field order: action, duration, weight, then variant fields.
var builders = map[string]builder{
	CodeSwimming: {arity: 5, build: func(v []float64) Workout {
		return Swimming{Training: common(v), LengthPool: v[3], CountPool: int(v[4])}
	}},
	CodeRunning: {arity: 3, build: func(v []float64) Workout {
		return Running{Training: common(v)}
	}},
	CodeWalking: {arity: 4, build: func(v []float64) Workout {
		return SportsWalking{Training: common(v), Height: v[3]}
	}},
}

func common(v []float64) Training {
	return Training{Action: int(v[0]), Duration: v[1], Weight: v[2]}
}

// ReadPackage validates a sensor package and builds the matching workout.
// Integer fields take the integral part of their value.
func ReadPackage(code string, values []float64) (Workout, error) {
	b, ok := builders[code]
	if !ok {
		return nil, &UnknownActivityError{Code: code}
	}
	if len(values) != b.arity {
		return nil, &ArgumentCountError{Code: code, Expected: b.arity, Actual: len(values)}
	}
	return b.build(values), nil
}

// Arity returns the number of values expected for code.
func Arity(code string) (int, bool) {
	b, ok := builders[code]
	return b.arity, ok
}

// Codes lists the supported activity codes in sorted order.
func Codes() []string {
	out := make([]string, 0, len(builders))
	for code := range builders {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

package ftracker

import "math"

const (
	mInKm  = 1000.0
	minInH = 60.0

	lenStep         = 0.65
	swimmingLenStep = 1.38

	runningCaloriesSpeedMultiplier = 18.0
	runningCaloriesSpeedShift      = 20.0

	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029

	swimmingCaloriesSpeedShift       = 1.1
	swimmingCaloriesWeightMultiplier = 2.0
)

// Workout is the shared computation surface of every activity variant.
type Workout interface {
	Distance() float64
	MeanSpeed() float64
	SpentCalories() float64
	TrainingInfo() InfoMessage
}

// Training holds the measurements common to all activity variants.
type Training struct {
	Action   int     // steps or strokes
	Duration float64 // hours
	Weight   float64 // kg
}

func (t Training) distance(stepLen float64) float64 {
	return float64(t.Action) * stepLen / mInKm
}

func (t Training) speed(distanceKm float64) float64 {
	if t.Duration <= 0 {
		return 0
	}
	return distanceKm / t.Duration
}

func (t Training) minutes() float64 {
	return t.Duration * minInH
}

// Running is a run measured in steps.
type Running struct {
	Training
}

// Distance returns the covered distance in km.
func (r Running) Distance() float64 {
	return r.distance(lenStep)
}

// MeanSpeed returns the average speed in km/h.
func (r Running) MeanSpeed() float64 {
	return r.speed(r.Distance())
}

// SpentCalories returns burned kcal.
func (r Running) SpentCalories() float64 {
	return (runningCaloriesSpeedMultiplier*r.MeanSpeed() - runningCaloriesSpeedShift) *
		r.Weight / mInKm * r.minutes()
}

// TrainingInfo builds the summary for the run.
func (r Running) TrainingInfo() InfoMessage {
	return newInfoMessage("Running", r.Duration, r)
}

// SportsWalking is a walk measured in steps; Height is in cm.
type SportsWalking struct {
	Training
	Height float64
}

// Distance returns the covered distance in km.
func (w SportsWalking) Distance() float64 {
	return w.distance(lenStep)
}

// MeanSpeed returns the average speed in km/h.
func (w SportsWalking) MeanSpeed() float64 {
	return w.speed(w.Distance())
}

// SpentCalories returns burned kcal. The speed/height ratio is floored, not
// divided, and published summaries depend on that.
func (w SportsWalking) SpentCalories() float64 {
	speed := w.MeanSpeed()
	ratio := 0.0
	if w.Height > 0 {
		ratio = floorDiv(speed*speed, w.Height)
	}
	return (walkingCaloriesWeightMultiplier*w.Weight +
		ratio*walkingSpeedHeightMultiplier*w.Weight) * w.minutes()
}

// TrainingInfo builds the summary for the walk.
func (w SportsWalking) TrainingInfo() InfoMessage {
	return newInfoMessage("SportsWalking", w.Duration, w)
}

// Swimming is a pool swim measured in strokes. LengthPool is in meters and
// CountPool is the number of pool lengths swum.
type Swimming struct {
	Training
	LengthPool float64
	CountPool  int
}

// Distance returns the stroke-based distance in km.
func (s Swimming) Distance() float64 {
	return s.distance(swimmingLenStep)
}

// MeanSpeed is derived from pool geometry rather than strokes.
func (s Swimming) MeanSpeed() float64 {
	return s.speed(s.LengthPool * float64(s.CountPool) / mInKm)
}

// SpentCalories returns burned kcal.
func (s Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimmingCaloriesSpeedShift) * swimmingCaloriesWeightMultiplier * s.Weight
}

// TrainingInfo builds the summary for the swim.
func (s Swimming) TrainingInfo() InfoMessage {
	return newInfoMessage("Swimming", s.Duration, s)
}

// floorDiv computes the floored quotient through the remainder so that a
// quotient landing a hair below an integer is not pulled down by rounding.
func floorDiv(a, b float64) float64 {
	mod := math.Mod(a, b)
	div := (a - mod) / b
	if mod != 0 && (b < 0) != (mod < 0) {
		div--
	}
	if div == 0 {
		return math.Copysign(0, a/b)
	}
	floored := math.Floor(div)
	if div-floored > 0.5 {
		floored++
	}
	return floored
}

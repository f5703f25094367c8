package ftracker

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunningFormulas(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		action := int(rnd.Int63n(20000-1000) + 1000)
		duration := float64(rnd.Int63n(3)) + rnd.Float64() + 0.01
		weight := float64(rnd.Int63n(140-50) + 50)

		r := Running{Training{Action: action, Duration: duration, Weight: weight}}

		assert.Equal(t, float64(action)*lenStep/mInKm, r.Distance())
		assert.Equal(t, r.Distance()/duration, r.MeanSpeed())
		expected := (18*r.MeanSpeed() - 20) * weight / 1000 * (duration * 60)
		assert.InDelta(t, expected, r.SpentCalories(), 1e-9)
	}
}

func TestSwimmingSpeedIgnoresStrokes(t *testing.T) {
	base := Swimming{Training: Training{Action: 720, Duration: 1.5, Weight: 80}, LengthPool: 25, CountPool: 40}
	other := base
	other.Action = 99999

	want := 25.0 * 40 / 1000 / 1.5
	assert.Equal(t, want, base.MeanSpeed())
	assert.Equal(t, base.MeanSpeed(), other.MeanSpeed())
	assert.NotEqual(t, base.Distance(), other.Distance())
	assert.InDelta(t, 720*1.38/1000, base.Distance(), 1e-12)
}

func TestSpentCaloriesDeterministic(t *testing.T) {
	workouts := []Workout{
		Running{Training{Action: 15000, Duration: 1, Weight: 75}},
		SportsWalking{Training: Training{Action: 9000, Duration: 1, Weight: 75}, Height: 180},
		Swimming{Training: Training{Action: 720, Duration: 1, Weight: 80}, LengthPool: 25, CountPool: 40},
	}
	for _, w := range workouts {
		first := w.SpentCalories()
		assert.Equal(t, first, w.SpentCalories())
		assert.Equal(t, w.TrainingInfo(), w.TrainingInfo())
	}
}

func TestWalkingFloorsSpeedHeightRatio(t *testing.T) {
	tests := []struct {
		name     string
		walk     SportsWalking
		ratio    float64
		expected float64
	}{
		{
			name:     "ratio below one floors to zero",
			walk:     SportsWalking{Training: Training{Action: 9000, Duration: 1, Weight: 75}, Height: 180},
			ratio:    0,
			expected: 157.5,
		},
		{
			// 26 km/h over one hour: 676/180 = 3.75
			name:     "fraction is dropped",
			walk:     SportsWalking{Training: Training{Action: 40000, Duration: 1, Weight: 70}, Height: 180},
			ratio:    3,
			expected: (0.035*70 + 3*0.029*70) * 60,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			speed := tt.walk.MeanSpeed()
			require.Equal(t, tt.ratio, floorDiv(speed*speed, tt.walk.Height))
			assert.InDelta(t, tt.expected, tt.walk.SpentCalories(), 1e-9)
		})
	}
}

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, 3.0, floorDiv(7, 2))
	assert.Equal(t, 0.0, floorDiv(1, 3))
	assert.Equal(t, -4.0, floorDiv(-7, 2))
	assert.Equal(t, 2.0, floorDiv(0.6, 0.3))
	assert.True(t, math.Signbit(floorDiv(math.Copysign(0, -1), 5)))
	assert.False(t, math.Signbit(floorDiv(0, 5)))
}

func TestZeroDurationDoesNotProduceNaN(t *testing.T) {
	workouts := []Workout{
		Running{Training{Action: 100, Duration: 0, Weight: 70}},
		SportsWalking{Training: Training{Action: 100, Duration: 0, Weight: 70}, Height: 170},
		Swimming{Training: Training{Action: 100, Duration: 0, Weight: 70}, LengthPool: 25, CountPool: 4},
	}
	for _, w := range workouts {
		assert.Zero(t, w.MeanSpeed())
		assert.False(t, math.IsNaN(w.SpentCalories()))
	}
}

package ftracker

import (
	"fmt"
	"strings"
)

// InfoMessage is the computed summary of one workout.
type InfoMessage struct {
	TrainingType string  `json:"training_type"`
	Duration     float64 `json:"duration_h"`
	Distance     float64 `json:"distance_km"`
	Speed        float64 `json:"speed_kmh"`
	Calories     float64 `json:"calories_kcal"`
}

type metrics interface {
	Distance() float64
	MeanSpeed() float64
	SpentCalories() float64
}

func newInfoMessage(trainingType string, duration float64, w metrics) InfoMessage {
	return InfoMessage{
		TrainingType: trainingType,
		Duration:     duration,
		Distance:     w.Distance(),
		Speed:        w.MeanSpeed(),
		Calories:     w.SpentCalories(),
	}
}

// Message renders the summary in the fixed report template.
func (m InfoMessage) Message() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Тип тренировки: %s; ", m.TrainingType)
	fmt.Fprintf(&b, "Длительность: %.3f ч.; ", m.Duration)
	fmt.Fprintf(&b, "Дистанция: %.3f км; ", m.Distance)
	fmt.Fprintf(&b, "Ср. скорость: %.3f км/ч; ", m.Speed)
	fmt.Fprintf(&b, "Потрачено ккал: %.3f.", m.Calories)
	return b.String()
}

// Render formats the summary of a workout.
func Render(w Workout) string {
	return w.TrainingInfo().Message()
}

package models

import "github.com/dmitrijs2005/gophfit/internal/timex"

// StrengthPoint aggregates one exercise on one day.
type StrengthPoint struct {
	Date        timex.Day `json:"date"`
	MaxWeight   float64   `json:"maxWeight"`
	TotalVolume float64   `json:"totalVolume"`
}

// StrengthSeries is the per-day history of one exercise, ascending by date.
type StrengthSeries struct {
	ExerciseName string          `json:"exerciseName"`
	Points       []StrengthPoint `json:"data"`
}

// EmptyStrengthSeries is the series used when nothing could be loaded.
func EmptyStrengthSeries(exercise string) StrengthSeries {
	return StrengthSeries{ExerciseName: exercise, Points: []StrengthPoint{}}
}

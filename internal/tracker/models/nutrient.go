package models

import "github.com/dmitrijs2005/gophfit/internal/timex"

// DefaultCalorieGoal is used whenever no goal is known for a day.
const DefaultCalorieGoal = 2000

// NutrientSnapshot is one day's nutrition summary. It is replaced
// wholesale on every load and never partially mutated.
type NutrientSnapshot struct {
	Date timex.Day `json:"date"`

	// Grams, except Water which is millilitres.
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
	Fiber   float64 `json:"fiber"`
	Water   float64 `json:"water"`

	Calories    float64 `json:"calories"`
	CalorieGoal float64 `json:"calorieGoal"`
}

// EmptyNutrientSnapshot is the zeroed snapshot for day with the default goal.
func EmptyNutrientSnapshot(day timex.Day) NutrientSnapshot {
	return NutrientSnapshot{Date: day, CalorieGoal: DefaultCalorieGoal}
}

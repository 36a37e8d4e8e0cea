package nutrition

import (
	"math"

	"github.com/aaravmahajanofficial/diet-tracker/internal/models"
)

var activityMultipliers = map[models.ActivityLevel]float64{
	models.ActivityVeryLow:  1.20,
	models.ActivityLow:      1.35,
	models.ActivityAverage:  1.55,
	models.ActivityHigh:     1.75,
	models.ActivityVeryHigh: 2.05,
}

var sexOffsets = map[models.Sex]float64{
	models.SexMan:   5,
	models.SexWoman: -161,
}

// macro split by calorie contribution
const (
	proteinShare      = 0.25
	carbohydrateShare = 0.5
	fatShare          = 0.25
)

// CaloriesPerDay returns the total daily energy expenditure for b using the
// Mifflin-St Jeor equation. It returns 0 when weight, height or age is zero,
// when sex or activity level is unset or unknown, and when the biometrics are
// so extreme that the equation yields no positive budget.
func CaloriesPerDay(b models.Biometrics) int {
	if b.Weight == 0 || b.Height == 0 || b.Age == 0 {
		return 0
	}

	offset, ok := sexOffsets[b.Sex]
	if !ok {
		return 0
	}

	multiplier, ok := activityMultipliers[b.ActivityLevel]
	if !ok {
		return 0
	}

	// BMR is truncated before the activity multiplier is applied.
	bmr := int(9.99*float64(b.Weight) + 6.25*float64(b.Height) - 4.92*float64(b.Age) + offset)

	calories := int(math.Round(float64(bmr) * multiplier))
	if calories <= 0 {
		return 0
	}

	return calories
}

// DailyTargetsFor derives the calorie budget and the 25/50/25 macro split in
// grams. Gram values are truncated.
func DailyTargetsFor(b models.Biometrics) models.DailyTargets {
	calories := CaloriesPerDay(b)
	if calories == 0 {
		return models.DailyTargets{}
	}

	c := float64(calories)

	return models.DailyTargets{
		CaloriesPerDay:     calories,
		ProteinPerDay:      int(math.Floor(proteinShare * c / KcalPerGramProtein)),
		CarbohydratePerDay: int(math.Floor(carbohydrateShare * c / KcalPerGramCarbohydrate)),
		FatPerDay:          int(math.Floor(fatShare * c / KcalPerGramFat)),
	}
}

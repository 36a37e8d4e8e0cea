// Package nutrition holds the pure nutrition arithmetic: diabetic exchange
// units, daily calorie targets, proportional scaling and the cart
// consolidation rules. Nothing here performs I/O.
package nutrition

import (
	"math"

	"github.com/aaravmahajanofficial/diet-tracker/internal/models"
	"github.com/shopspring/decimal"
)

// kcal per gram
const (
	KcalPerGramProtein      = 4
	KcalPerGramCarbohydrate = 4
	KcalPerGramFat          = 9
)

const precision = 2

var (
	gramsPerExchange   = decimal.NewFromInt(10)
	kcalPerEquivalent  = decimal.NewFromInt(100)
	proteinKcalPerGram = decimal.NewFromInt(KcalPerGramProtein)
	fatKcalPerGram     = decimal.NewFromInt(KcalPerGramFat)
)

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Round(precision).Float64()
	return f
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Round rounds half away from zero to two decimal digits in decimal
// arithmetic, so 0.125 becomes 0.13 and not 0.12.
func Round(v float64) float64 {
	if !isFinite(v) {
		return v
	}

	return toFloat(decimal.NewFromFloat(v))
}

// Add returns Round(a + b) computed in decimal arithmetic.
func Add(a, b float64) float64 {
	if !isFinite(a) || !isFinite(b) {
		return a + b
	}

	return toFloat(decimal.NewFromFloat(a).Add(decimal.NewFromFloat(b)))
}

// CarbohydrateExchange is the number of 10g units of net carbohydrate.
// The result is negative when fibre exceeds carbohydrate.
func CarbohydrateExchange(carbohydrate, fibre float64) float64 {
	if !isFinite(carbohydrate) || !isFinite(fibre) {
		return 0
	}

	net := decimal.NewFromFloat(carbohydrate).Sub(decimal.NewFromFloat(fibre))

	return toFloat(net.Div(gramsPerExchange))
}

// ProteinAndFatEquivalent is the number of 100 kcal units sourced from
// protein and fat.
func ProteinAndFatEquivalent(protein, fat float64) float64 {
	if !isFinite(protein) || !isFinite(fat) {
		return 0
	}

	kcal := decimal.NewFromFloat(protein).Mul(proteinKcalPerGram).
		Add(decimal.NewFromFloat(fat).Mul(fatKcalPerGram))

	return toFloat(kcal.Div(kcalPerEquivalent))
}

// ApplyDerived recomputes the exchange fields of p from its macros.
func ApplyDerived(p *models.Product) {
	p.CarbohydrateExchange = CarbohydrateExchange(p.Carbohydrate, p.Fibre)
	p.ProteinAndFatEquivalent = ProteinAndFatEquivalent(p.Protein, p.Fat)
}

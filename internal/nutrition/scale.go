package nutrition

import (
	"math"

	"github.com/aaravmahajanofficial/diet-tracker/internal/models"
)

// ScaleProduct multiplies the amount and every macro of p by factor. The
// exchange fields are recomputed from the scaled macros.
func ScaleProduct(p models.Product, factor float64) models.Product {
	p.Amount = int(math.Round(float64(p.Amount) * factor))
	p.Protein = Round(p.Protein * factor)
	p.Carbohydrate = Round(p.Carbohydrate * factor)
	p.Fat = Round(p.Fat * factor)
	p.Fibre = Round(p.Fibre * factor)
	p.Kcal = Round(p.Kcal * factor)
	ApplyDerived(&p)

	return p
}

// ResizeProduct scales p so that it describes amount grams. A product without
// a stated amount is taken as-is.
func ResizeProduct(p models.Product, amount int) models.Product {
	if p.Amount > 0 {
		p = ScaleProduct(p, float64(amount)/float64(p.Amount))
	}
	p.Amount = amount

	return p
}

// ScaleMeal scales every embedded product and the meal amount by factor and
// recomputes the meal totals. The product slice of m is not modified.
func ScaleMeal(m models.Meal, factor float64) models.Meal {
	products := make([]models.Product, len(m.Products))
	for i, p := range m.Products {
		products[i] = ScaleProduct(p, factor)
	}

	m.Products = products
	m.Amount = int(math.Round(float64(m.Amount) * factor))
	SumMeal(&m)

	return m
}

// ResizeMeal scales m so that it describes a serving of amount.
func ResizeMeal(m models.Meal, amount int) models.Meal {
	if m.Amount > 0 {
		m = ScaleMeal(m, float64(amount)/float64(m.Amount))
	} else {
		m.Products = append([]models.Product(nil), m.Products...)
	}
	m.Amount = amount

	return m
}

// SumMeal sets the aggregate nutrition of m to the rounded sum over its
// products.
func SumMeal(m *models.Meal) {
	var protein, carbohydrate, fat, fibre, kcal, exchange, equivalent float64

	for _, p := range m.Products {
		protein = Add(protein, p.Protein)
		carbohydrate = Add(carbohydrate, p.Carbohydrate)
		fat = Add(fat, p.Fat)
		fibre = Add(fibre, p.Fibre)
		kcal = Add(kcal, p.Kcal)
		exchange = Add(exchange, p.CarbohydrateExchange)
		equivalent = Add(equivalent, p.ProteinAndFatEquivalent)
	}

	m.Protein = protein
	m.Carbohydrate = carbohydrate
	m.Fat = fat
	m.Fibre = fibre
	m.Kcal = kcal
	m.CarbohydrateExchange = exchange
	m.ProteinAndFatEquivalent = equivalent
}

// TotalAmount is the sum of the product amounts.
func TotalAmount(products []models.Product) int {
	total := 0
	for _, p := range products {
		total += p.Amount
	}

	return total
}

package nutrition

import (
	"github.com/aaravmahajanofficial/diet-tracker/internal/models"
	"github.com/google/uuid"
)

// AggregateProducts concatenates direct and fromMeals and collapses entries
// sharing a product id. The merged entry keeps the position of the first
// occurrence, sums the quantities and takes the descriptive fields from the
// latest occurrence.
func AggregateProducts(direct, fromMeals []models.Product) []models.Product {
	merged := make([]models.Product, 0, len(direct)+len(fromMeals))
	index := make(map[uuid.UUID]int, len(direct)+len(fromMeals))

	add := func(p models.Product) {
		if i, ok := index[p.ID]; ok {
			merged[i] = mergeProducts(merged[i], p)
			return
		}

		index[p.ID] = len(merged)
		merged = append(merged, p)
	}

	for _, p := range direct {
		add(p)
	}

	for _, p := range fromMeals {
		add(p)
	}

	return merged
}

func mergeProducts(prev, next models.Product) models.Product {
	next.Amount = prev.Amount + next.Amount
	next.Protein = Add(prev.Protein, next.Protein)
	next.Carbohydrate = Add(prev.Carbohydrate, next.Carbohydrate)
	next.Fat = Add(prev.Fat, next.Fat)
	next.Fibre = Add(prev.Fibre, next.Fibre)
	next.Kcal = Add(prev.Kcal, next.Kcal)
	next.CarbohydrateExchange = Add(prev.CarbohydrateExchange, next.CarbohydrateExchange)
	next.ProteinAndFatEquivalent = Add(prev.ProteinAndFatEquivalent, next.ProteinAndFatEquivalent)

	return next
}

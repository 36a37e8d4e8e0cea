package nutrition

import (
	"slices"

	"github.com/aaravmahajanofficial/diet-tracker/internal/models"
	"github.com/google/uuid"
)

// Consolidate recomputes the derived view of cart: the de-duplicated product
// list over direct and meal products, the macro totals and the item counter.
// Totals are rounded after every addition.
func Consolidate(cart *models.Cart) {
	var fromMeals []models.Product
	for _, m := range cart.Meals {
		fromMeals = append(fromMeals, m.Products...)
	}

	cart.AllProducts = AggregateProducts(cart.Products, fromMeals)

	var protein, carbohydrate, fat, kcal float64
	for _, p := range cart.AllProducts {
		protein = Add(protein, p.Protein)
		carbohydrate = Add(carbohydrate, p.Carbohydrate)
		fat = Add(fat, p.Fat)
		kcal = Add(kcal, p.Kcal)
	}

	cart.Protein = protein
	cart.Carbohydrate = carbohydrate
	cart.Fat = fat
	cart.Kcal = kcal
	cart.ItemCounter = len(cart.Meals) + len(cart.Products)
}

// AddMeal puts a serving of amount of meal into cart. A meal already in the
// cart grows to the combined amount with its nutrition rescaled to match.
func AddMeal(cart *models.Cart, meal models.Meal, amount int) {
	i := slices.IndexFunc(cart.Meals, func(m models.Meal) bool { return m.ID == meal.ID })
	if i >= 0 {
		existing := cart.Meals[i]
		cart.Meals[i] = ResizeMeal(existing, existing.Amount+amount)
	} else {
		cart.Meals = append(cart.Meals, ResizeMeal(meal, amount))
	}

	Consolidate(cart)
}

// RemoveMeal drops the meal with id from cart and reports whether it was
// present. An absent meal leaves cart untouched.
func RemoveMeal(cart *models.Cart, id uuid.UUID) bool {
	i := slices.IndexFunc(cart.Meals, func(m models.Meal) bool { return m.ID == id })
	if i < 0 {
		return false
	}

	cart.Meals = slices.Delete(cart.Meals, i, i+1)
	Consolidate(cart)

	return true
}

// AddProduct puts amount grams of product into cart, merging with an entry
// for the same product.
func AddProduct(cart *models.Cart, product models.Product, amount int) {
	portion := ResizeProduct(product, amount)

	i := slices.IndexFunc(cart.Products, func(p models.Product) bool { return p.ID == product.ID })
	if i >= 0 {
		cart.Products[i] = mergeProducts(cart.Products[i], portion)
	} else {
		cart.Products = append(cart.Products, portion)
	}

	Consolidate(cart)
}

// RemoveProduct drops the direct product with id from cart and reports
// whether it was present.
func RemoveProduct(cart *models.Cart, id uuid.UUID) bool {
	i := slices.IndexFunc(cart.Products, func(p models.Product) bool { return p.ID == id })
	if i < 0 {
		return false
	}

	cart.Products = slices.Delete(cart.Products, i, i+1)
	Consolidate(cart)

	return true
}

package models

import (
	"time"

	"github.com/google/uuid"
)

const DateLayout = "2006-01-02"

// Cart is the per-user, per-day aggregate. AllProducts, the totals and
// ItemCounter are derived from Meals and Products.
type Cart struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	Date         string    `json:"date"`
	Meals        []Meal    `json:"meals"`
	Products     []Product `json:"products"`
	AllProducts  []Product `json:"all_products"`
	Protein      float64   `json:"protein"`
	Carbohydrate float64   `json:"carbohydrate"`
	Fat          float64   `json:"fat"`
	Kcal         float64   `json:"kcal"`
	ItemCounter  int       `json:"item_counter"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type AddToCartRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	Date   string    `json:"date" validate:"required,datetime=2006-01-02"`
	Amount int       `json:"amount" validate:"required,gt=0"`
}

type ResetCartsResponse struct {
	Deleted int64 `json:"deleted"`
}

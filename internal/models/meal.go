package models

import (
	"time"

	"github.com/google/uuid"
)

// Meal owns snapshots of its products; the aggregate nutrition fields always
// equal the sum over Products.
type Meal struct {
	ID                      uuid.UUID `json:"id"`
	UserID                  uuid.UUID `json:"user_id"`
	Name                    string    `json:"name"`
	Description             string    `json:"description"`
	Recipe                  string    `json:"recipe"`
	ImageURL                string    `json:"image_url"`
	Products                []Product `json:"products"`
	Protein                 float64   `json:"protein"`
	Carbohydrate            float64   `json:"carbohydrate"`
	Fat                     float64   `json:"fat"`
	Fibre                   float64   `json:"fibre"`
	Kcal                    float64   `json:"kcal"`
	CarbohydrateExchange    float64   `json:"carbohydrate_exchange"`
	ProteinAndFatEquivalent float64   `json:"protein_and_fat_equivalent"`
	Amount                  int       `json:"amount"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

type MealProductRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Amount    int       `json:"amount" validate:"required,gt=0"`
}

type CreateMealRequest struct {
	Name        string               `json:"name" validate:"required,min=2,max=200"`
	Description string               `json:"description,omitempty" validate:"omitempty,max=2000"`
	Recipe      string               `json:"recipe,omitempty" validate:"omitempty,max=10000"`
	ImageURL    string               `json:"image_url,omitempty" validate:"omitempty,url"`
	Products    []MealProductRequest `json:"products" validate:"required,min=1,dive"`
	// Amount defaults to the sum of the product amounts when omitted.
	Amount int `json:"amount,omitempty" validate:"omitempty,gt=0"`
}

type UpdateMealRequest struct {
	Name        *string              `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	Description *string              `json:"description,omitempty" validate:"omitempty,max=2000"`
	Recipe      *string              `json:"recipe,omitempty" validate:"omitempty,max=10000"`
	ImageURL    *string              `json:"image_url,omitempty" validate:"omitempty,url"`
	Products    []MealProductRequest `json:"products,omitempty" validate:"omitempty,min=1,dive"`
	Amount      *int                 `json:"amount,omitempty" validate:"omitempty,gt=0"`
}

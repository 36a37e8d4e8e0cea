package models

import (
	"time"

	"github.com/google/uuid"
)

// Product nutrition values are stated per Amount (grams).
type Product struct {
	ID                      uuid.UUID `json:"id"`
	UserID                  uuid.UUID `json:"user_id"`
	Name                    string    `json:"name"`
	Description             string    `json:"description"`
	ImageURL                string    `json:"image_url"`
	Protein                 float64   `json:"protein"`
	Carbohydrate            float64   `json:"carbohydrate"`
	Fat                     float64   `json:"fat"`
	Fibre                   float64   `json:"fibre"`
	Kcal                    float64   `json:"kcal"`
	Amount                  int       `json:"amount"`
	CarbohydrateExchange    float64   `json:"carbohydrate_exchange"`
	ProteinAndFatEquivalent float64   `json:"protein_and_fat_equivalent"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

type CreateProductRequest struct {
	Name         string  `json:"name" validate:"required,min=2,max=200"`
	Description  string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	ImageURL     string  `json:"image_url,omitempty" validate:"omitempty,url"`
	Protein      float64 `json:"protein" validate:"gte=0"`
	Carbohydrate float64 `json:"carbohydrate" validate:"gte=0"`
	Fat          float64 `json:"fat" validate:"gte=0"`
	Fibre        float64 `json:"fibre" validate:"gte=0"`
	Kcal         float64 `json:"kcal" validate:"gte=0"`
	Amount       int     `json:"amount" validate:"required,gt=0"`
}

type UpdateProductRequest struct {
	Name         *string  `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	Description  *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	ImageURL     *string  `json:"image_url,omitempty" validate:"omitempty,url"`
	Protein      *float64 `json:"protein,omitempty" validate:"omitempty,gte=0"`
	Carbohydrate *float64 `json:"carbohydrate,omitempty" validate:"omitempty,gte=0"`
	Fat          *float64 `json:"fat,omitempty" validate:"omitempty,gte=0"`
	Fibre        *float64 `json:"fibre,omitempty" validate:"omitempty,gte=0"`
	Kcal         *float64 `json:"kcal,omitempty" validate:"omitempty,gte=0"`
	Amount       *int     `json:"amount,omitempty" validate:"omitempty,gt=0"`
}

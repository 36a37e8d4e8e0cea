package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Sex string

const (
	SexMan   Sex = "MAN"
	SexWoman Sex = "WOMAN"
)

type ActivityLevel string

const (
	ActivityVeryLow  ActivityLevel = "VERY_LOW"
	ActivityLow      ActivityLevel = "LOW"
	ActivityAverage  ActivityLevel = "AVERAGE"
	ActivityHigh     ActivityLevel = "HIGH"
	ActivityVeryHigh ActivityLevel = "VERY_HIGH"
)

// Biometrics: weight in kg, height in cm, age in years.
type Biometrics struct {
	Age           int           `json:"age"`
	Height        int           `json:"height"`
	Weight        int           `json:"weight"`
	Sex           Sex           `json:"sex,omitempty"`
	ActivityLevel ActivityLevel `json:"activity_level,omitempty"`
}

// DailyTargets are derived from Biometrics, zero when not computable.
type DailyTargets struct {
	CaloriesPerDay     int `json:"calories_per_day"`
	ProteinPerDay      int `json:"protein_per_day"`
	CarbohydratePerDay int `json:"carbohydrate_per_day"`
	FatPerDay          int `json:"fat_per_day"`
}

type User struct {
	ID         uuid.UUID `json:"id"`
	FacebookID string    `json:"-"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	ImageURL   string    `json:"image_url"`
	Biometrics
	DailyTargets
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	ImageURL *string `json:"image_url,omitempty" validate:"omitempty,url"`
}

type UpdateBiometricsRequest struct {
	Age           int           `json:"age" validate:"gte=0,lte=150"`
	Height        int           `json:"height" validate:"gte=0,lte=300"`
	Weight        int           `json:"weight" validate:"gte=0,lte=700"`
	Sex           Sex           `json:"sex,omitempty" validate:"omitempty,oneof=MAN WOMAN"`
	ActivityLevel ActivityLevel `json:"activity_level,omitempty" validate:"omitempty,oneof=VERY_LOW LOW AVERAGE HIGH VERY_HIGH"`
}

type FacebookLoginRequest struct {
	AccessToken string `json:"access_token" validate:"required"`
}

type LoginResponse struct {
	Success    bool   `json:"success"`
	Token      string `json:"token,omitempty"`
	ExpiresIn  int    `json:"expires_in,omitempty"`
	RetryAfter int    `json:"retry_after,omitempty"`
	Message    string `json:"message,omitempty"`
	User       *User  `json:"user,omitempty"`
}

// JWT claims structure
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	jwt.RegisteredClaims
}

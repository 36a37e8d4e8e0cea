package nutrition_test

import (
	"testing"

	"github.com/aaravmahajanofficial/diet-tracker/internal/models"
	"github.com/aaravmahajanofficial/diet-tracker/internal/nutrition"
	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "Half rounds up", input: 0.125, expected: 0.13},
		{name: "Half rounds away from zero when negative", input: -0.125, expected: -0.13},
		{name: "Binary representation does not leak", input: 2.675, expected: 2.68},
		{name: "Already rounded", input: 1.5, expected: 1.5},
		{name: "Zero", input: 0, expected: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, nutrition.Round(tc.input))
		})
	}
}

func TestAdd(t *testing.T) {
	assert.Equal(t, 0.3, nutrition.Add(0.1, 0.2), "decimal addition should not drift")
	assert.Equal(t, 1.01, nutrition.Add(1.005, 0), "sum should be rounded half up")
	assert.Equal(t, float64(0), nutrition.Add(0, 0))
}

func TestCarbohydrateExchange(t *testing.T) {
	tests := []struct {
		name         string
		carbohydrate float64
		fibre        float64
		expected     float64
	}{
		{name: "Net carbohydrate", carbohydrate: 10, fibre: 2, expected: 0.8},
		{name: "Fibre equals carbohydrate", carbohydrate: 10, fibre: 10, expected: 0},
		{name: "Fibre exceeds carbohydrate", carbohydrate: 5, fibre: 10, expected: -0.5},
		{name: "Rounded to two digits", carbohydrate: 12.345, fibre: 0, expected: 1.23},
		{name: "No fibre", carbohydrate: 45, fibre: 0, expected: 4.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, nutrition.CarbohydrateExchange(tc.carbohydrate, tc.fibre))
		})
	}

	assert.Less(t, nutrition.CarbohydrateExchange(5, 10), float64(0))
}

func TestProteinAndFatEquivalent(t *testing.T) {
	tests := []struct {
		name     string
		protein  float64
		fat      float64
		expected float64
	}{
		{name: "Protein only", protein: 10, fat: 0, expected: 0.4},
		{name: "Fat only", protein: 0, fat: 10, expected: 0.9},
		{name: "Protein and fat", protein: 10, fat: 10, expected: 1.3},
		{name: "Nothing", protein: 0, fat: 0, expected: 0},
		{name: "Half rounds up", protein: 5, fat: 2.5, expected: 0.43},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, nutrition.ProteinAndFatEquivalent(tc.protein, tc.fat))
		})
	}
}

func TestApplyDerived(t *testing.T) {
	// Arrange
	p := models.Product{
		Protein:                 10,
		Carbohydrate:            20,
		Fat:                     5,
		Fibre:                   2,
		CarbohydrateExchange:    99,
		ProteinAndFatEquivalent: 99,
	}

	// Act
	nutrition.ApplyDerived(&p)

	// Assert
	assert.Equal(t, 1.8, p.CarbohydrateExchange)
	assert.Equal(t, 0.85, p.ProteinAndFatEquivalent)
}

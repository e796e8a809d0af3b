package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCatalog() *Catalog {
	return &Catalog{
		Foods: []FoodItem{
			{
				ID:           "1",
				Name:         "Manzana",
				Category:     CategoryFruits,
				Nutrition:    Nutrition{GlycemicIndex: 36, Carbohydrates: 14, Fiber: 2.4, Sugars: 10},
				Portion:      "1 unidad mediana (150g)",
				TrafficLight: RatingGreen,
				CommonNames:  []string{"apple"},
			},
		},
		Education: []EducationContent{
			{
				ID:      "e1",
				Title:   "What is the glycemic index?",
				Content: "The **glycemic index** ranks foods.",
				Type:    ContentArticle,
				Level:   LevelBasic,
				Tags:    []string{"gi"},
			},
		},
	}
}

func TestCatalog_Validate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(c *Catalog)
		errorMsg string
	}{
		{
			name:   "Valid catalog",
			mutate: func(c *Catalog) {},
		},
		{
			name:   "Empty catalog",
			mutate: func(c *Catalog) { c.Foods = nil; c.Education = nil },
		},
		{
			name:   "Missing stored traffic light is allowed",
			mutate: func(c *Catalog) { c.Foods[0].TrafficLight = "" },
		},
		{
			name:     "Food without id",
			mutate:   func(c *Catalog) { c.Foods[0].ID = "" },
			errorMsg: "has no id",
		},
		{
			name:     "Duplicate food id",
			mutate:   func(c *Catalog) { c.Foods = append(c.Foods, c.Foods[0]) },
			errorMsg: "duplicate food id",
		},
		{
			name:     "Unknown category",
			mutate:   func(c *Catalog) { c.Foods[0].Category = "snacks" },
			errorMsg: "unknown category",
		},
		{
			name:     "Unknown traffic light",
			mutate:   func(c *Catalog) { c.Foods[0].TrafficLight = "blue" },
			errorMsg: "unknown traffic light",
		},
		{
			name:     "Invalid nutrition",
			mutate:   func(c *Catalog) { c.Foods[0].Sugars = 50 },
			errorMsg: "exceed carbohydrates",
		},
		{
			name:     "Education without title",
			mutate:   func(c *Catalog) { c.Education[0].Title = "" },
			errorMsg: "has no title",
		},
		{
			name:     "Unknown education level",
			mutate:   func(c *Catalog) { c.Education[0].Level = "expert" },
			errorMsg: "unknown level",
		},
		{
			name:     "Unknown education type",
			mutate:   func(c *Catalog) { c.Education[0].Type = "podcast" },
			errorMsg: "unknown type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCatalog()
			tt.mutate(c)

			err := c.Validate()

			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedCatalog)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestDecodeEnvelope(t *testing.T) {
	t.Run("Valid catalog document", func(t *testing.T) {
		doc := `{"data":{"foods":[{"id":"1","name":"Manzana","category":"fruits","glycemicIndex":36,"carbohydrates":14,"fiber":2.4,"sugars":10,"portion":"1 unidad","commonNames":["apple"]}],"education":[]}}`

		env, err := DecodeEnvelope[Catalog](strings.NewReader(doc))

		require.NoError(t, err)
		require.Nil(t, env.Error)
		require.Len(t, env.Data.Foods, 1)
		assert.Equal(t, "Manzana", env.Data.Foods[0].Name)
		assert.Equal(t, 36.0, env.Data.Foods[0].GlycemicIndex)
		assert.Equal(t, []string{"apple"}, env.Data.Foods[0].CommonNames)
	})

	t.Run("Error envelope", func(t *testing.T) {
		doc := `{"error":{"error":"INTERNAL_ERROR","message":"boom"}}`

		env, err := DecodeEnvelope[Catalog](strings.NewReader(doc))

		require.NoError(t, err)
		require.NotNil(t, env.Error)
		assert.Equal(t, "boom", env.Error.Message)
	})

	malformed := []struct {
		name string
		doc  string
	}{
		{"Bare array instead of envelope", `[{"id":"1"}]`},
		{"Legacy foods member", `{"foods":[]}`},
		{"Nested data member", `{"data":{"data":{"foods":[]}}}`},
		{"Missing data", `{}`},
		{"Null data", `{"data":null}`},
		{"Trailing document", `{"data":{"foods":[]}} {"data":{}}`},
		{"Not JSON", `<html></html>`},
	}

	for _, tt := range malformed {
		t.Run(tt.name, func(t *testing.T) {
			env, err := DecodeEnvelope[Catalog](strings.NewReader(tt.doc))

			require.Error(t, err)
			assert.Nil(t, env)
			assert.ErrorIs(t, err, ErrMalformedCatalog)
		})
	}
}

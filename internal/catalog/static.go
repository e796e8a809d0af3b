package catalog

import (
	"context"

	"glucoguide/internal/model"

	"github.com/rs/zerolog"
)

func food(id, name string, category model.Category, gi, carbs, fiber, sugars float64, portion string, light model.Rating, names ...string) model.FoodItem {
	return model.FoodItem{
		ID:       id,
		Name:     name,
		Category: category,
		Nutrition: model.Nutrition{
			GlycemicIndex: gi,
			Carbohydrates: carbs,
			Fiber:         fiber,
			Sugars:        sugars,
		},
		Portion:      portion,
		TrafficLight: light,
		CommonNames:  names,
	}
}

// StaticCatalog returns a fresh copy of the built-in catalog.
func StaticCatalog() *model.Catalog {
	return &model.Catalog{
		Foods: []model.FoodItem{
			food("1", "Manzana", model.CategoryFruits, 36, 14, 2.4, 10, "1 unidad mediana (150 g)", model.RatingYellow, "apple", "manzana roja", "manzana verde"),
			food("2", "Plátano", model.CategoryFruits, 51, 23, 2.6, 12, "1 unidad mediana (120 g)", model.RatingYellow, "banana", "banano", "guineo"),
			food("3", "Sandía", model.CategoryFruits, 72, 8, 0.4, 6, "1 taza en cubos (150 g)", model.RatingYellow, "watermelon", "patilla"),
			food("4", "Fresas", model.CategoryFruits, 40, 8, 2, 5, "1 taza (150 g)", model.RatingGreen, "strawberries", "frutillas"),
			food("5", "Avena", model.CategoryCereals, 55, 27, 4, 1, "1/2 taza cocida (40 g en seco)", model.RatingYellow, "oats", "copos de avena"),
			food("6", "Pan blanco", model.CategoryCereals, 75, 25, 1, 2.5, "2 rebanadas (50 g)", model.RatingRed, "white bread", "pan de molde"),
			food("7", "Arroz integral", model.CategoryCereals, 50, 23, 1.8, 0.4, "1/2 taza cocida (100 g)", model.RatingYellow, "brown rice"),
			food("8", "Brócoli", model.CategoryVegetables, 15, 7, 2.6, 1.7, "1 taza (90 g)", model.RatingGreen, "broccoli"),
			food("9", "Espinaca", model.CategoryVegetables, 15, 3.6, 2.2, 0.4, "1 taza cocida (100 g)", model.RatingGreen, "spinach", "espinacas"),
			food("10", "Zanahoria", model.CategoryVegetables, 39, 10, 2.8, 4.7, "1 unidad mediana (100 g)", model.RatingYellow, "carrot"),
			food("11", "Lentejas", model.CategoryLegumes, 32, 20, 8, 1.8, "1/2 taza cocida (100 g)", model.RatingGreen, "lentils"),
			food("12", "Garbanzos", model.CategoryLegumes, 28, 27, 7.6, 4.8, "1/2 taza cocida (100 g)", model.RatingGreen, "chickpeas", "garbanzo"),
			food("13", "Frijoles negros", model.CategoryLegumes, 30, 24, 8.7, 0.3, "1/2 taza cocida (100 g)", model.RatingGreen, "black beans", "porotos negros", "caraotas"),
			food("14", "Azúcar blanca", model.CategorySweeteners, 65, 20, 0, 20, "1 cucharada (20 g)", model.RatingRed, "sugar", "azúcar refinada"),
			food("15", "Miel", model.CategorySweeteners, 61, 17, 0, 17, "1 cucharada (21 g)", model.RatingRed, "honey"),
			food("16", "Stevia", model.CategorySweeteners, 0, 0, 0, 0, "1 sobre (1 g)", model.RatingGreen, "stevia", "estevia"),
			food("17", "Yogur natural", model.CategoryDairy, 35, 7, 0, 7, "1 envase (125 g)", model.RatingGreen, "plain yogurt", "yogurt"),
			food("18", "Leche entera", model.CategoryDairy, 39, 12, 0, 12, "1 taza (250 ml)", model.RatingYellow, "whole milk", "milk"),
			food("19", "Aguacate", model.CategoryFats, 15, 9, 7, 0.7, "1/2 unidad (100 g)", model.RatingGreen, "avocado", "palta"),
			food("20", "Nueces", model.CategoryFats, 15, 4, 2, 0.7, "1 puñado (30 g)", model.RatingGreen, "walnuts"),
		},
		Education: []model.EducationContent{
			{
				ID:       "edu-1",
				Title:    "What is the glycemic index?",
				Content:  "The **glycemic index** (GI) measures how quickly a food raises blood glucose compared with pure glucose.\n\nFoods under **55** are low GI, from 55 to 69 medium, and **70 or more** high.",
				Type:     model.ContentArticle,
				Duration: "5 min",
				Level:    model.LevelBasic,
				Tags:     []string{"glycemic index", "nutrition", "basics"},
			},
			{
				ID:       "edu-2",
				Title:    "Reading the traffic light",
				Content:  "Every food gets a color. **Green** is an excellent choice, **yellow** should be eaten in moderation and **red** only occasionally.",
				Type:     model.ContentInteractive,
				Duration: "3 min",
				Level:    model.LevelBasic,
				Tags:     []string{"traffic light", "food choices"},
			},
			{
				ID:       "edu-3",
				Title:    "Counting carbohydrates",
				Content:  "Carbohydrates have the largest effect on blood glucose.\nCheck the **portion size** first, then the grams of carbohydrates per portion.",
				Type:     model.ContentArticle,
				Duration: "8 min",
				Level:    model.LevelIntermediate,
				Tags:     []string{"carbohydrates", "meal planning"},
			},
			{
				ID:       "edu-4",
				Title:    "Fiber and blood glucose",
				Content:  "Soluble **fiber** slows the absorption of sugar. Legumes, oats and vegetables are good sources.",
				Type:     model.ContentVideo,
				Duration: "6 min",
				Level:    model.LevelIntermediate,
				Tags:     []string{"fiber", "nutrition"},
			},
			{
				ID:       "edu-5",
				Title:    "Adjusting meals around exercise",
				Content:  "Exercise increases glucose uptake. **Check your glucose** before and after training and keep a fast-acting snack at hand to prevent **hypoglycemia**.",
				Type:     model.ContentArticle,
				Duration: "10 min",
				Level:    model.LevelAdvanced,
				Tags:     []string{"exercise", "hypoglycemia"},
			},
		},
	}
}

// staticLoader implements Loader with the built-in catalog.
type staticLoader struct {
	logger zerolog.Logger
}

// NewStaticLoader creates a loader that ignores its location and always
// returns StaticCatalog.
func NewStaticLoader(logger zerolog.Logger) Loader {
	return &staticLoader{
		logger: logger.With().Str("component", "catalog-static-loader").Logger(),
	}
}

func (l *staticLoader) Load(ctx context.Context, _ string) (*model.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	catalog := StaticCatalog()

	l.logger.Debug().
		Int("foods_loaded", len(catalog.Foods)).
		Int("education_loaded", len(catalog.Education)).
		Msg("static catalog loaded")

	return catalog, nil
}

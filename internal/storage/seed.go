package storage

import (
	"time"

	"flashrecipe/internal/domain"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

// SampleRecipes returns the two built-in recipes written on first run
// so a fresh install has something to browse and cook.
func SampleRecipes() []domain.Recipe {
	now := time.Now().UTC()
	return []domain.Recipe{
		{
			ID:          "1",
			Title:       "Speedy Keema Curry",
			Description: strPtr("A quick and delicious curry using minced meat."),
			Servings:    2,
			PrepMin:     5,
			CookMin:     10,
			TotalMin:    15,
			Ingredients: []domain.Ingredient{
				{Name: "Minced Meat (Pork/Beef)", Quantity: "200", Unit: "g"},
				{Name: "Onion", Quantity: "1/2", Unit: "pc"},
				{Name: "Curry Roux", Quantity: "2", Unit: "cubes"},
				{Name: "Ketchup", Quantity: "1", Unit: "tbsp"},
				{Name: "Water", Quantity: "150", Unit: "ml"},
			},
			Steps: []domain.Step{
				{Order: 1, Text: "Chop the onion finely."},
				{Order: 2, Text: "Stir-fry the minced meat and onion in a pan until browned."},
				{Order: 3, Text: "Add water and bring to a boil. Turn off heat and dissolve curry roux.", TimerSec: intPtr(180)},
				{Order: 4, Text: "Add ketchup and simmer for 2-3 minutes until thickened."},
			},
			Tags:       []string{"時短", "主菜", "洋食"},
			Memo:       strPtr("Add a fried egg on top for extra richness!"),
			Images:     []string{"https://images.unsplash.com/photo-1565557623262-b51c2513a641?auto=format&fit=crop&w=800&q=80"},
			Visibility: domain.VisibilityPrivate,
			IsFavorite: true,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		{
			ID:          "2",
			Title:       "Refreshing Cucumber Salad",
			Description: strPtr("Perfect side dish for summer."),
			Servings:    2,
			PrepMin:     5,
			CookMin:     0,
			TotalMin:    5,
			Ingredients: []domain.Ingredient{
				{Name: "Cucumber", Quantity: "2", Unit: "pcs"},
				{Name: "Sesame Oil", Quantity: "1", Unit: "tbsp"},
				{Name: "Salt", Quantity: "1/2", Unit: "tsp"},
				{Name: "Garlic (Grated)", Quantity: "1", Unit: "tsp"},
			},
			Steps: []domain.Step{
				{Order: 1, Text: "Smash the cucumbers with a rolling pin and break into bite-sized pieces."},
				{Order: 2, Text: "Mix cucumbers with salt, sesame oil, and garlic in a bowl."},
				{Order: 3, Text: "Serve immediately or chill for better flavor."},
			},
			Tags:       []string{"副菜", "時短", "おつまみ"},
			Images:     []string{"https://images.unsplash.com/photo-1606850831628-6623512a9eb7?auto=format&fit=crop&w=800&q=80"},
			Visibility: domain.VisibilityPrivate,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
	}
}

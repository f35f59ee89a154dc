// Package domain defines the core types and interfaces for the recipe
// manager. All other packages depend on domain; domain depends on nothing.
package domain

import "time"

// Visibility controls who can see a recipe.
type Visibility string

const (
	VisibilityPrivate  Visibility = "private"
	VisibilityUnlisted Visibility = "unlisted"
	VisibilityPublic   Visibility = "public"
)

// Valid reports whether v is one of the known visibility levels.
func (v Visibility) Valid() bool {
	switch v {
	case VisibilityPrivate, VisibilityUnlisted, VisibilityPublic:
		return true
	}
	return false
}

// Ingredient is a single ingredient line. Quantity is free-form display
// text ("1/2", "200", "2-3") rather than a computable number, so
// fractions and ranges survive round trips.
type Ingredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
	Note     string `json:"note,omitempty"`
}

// Step is a single cooking step. Order is 1-based metadata stored for
// display; cook-mode traversal trusts the slice order. TimerSec is nil
// when the step has no countdown.
type Step struct {
	Order    int    `json:"order"`
	Text     string `json:"text"`
	TimerSec *int   `json:"timer_sec,omitempty"`
}

// Timer returns the step's countdown length, or 0 if it has none.
func (s Step) Timer() time.Duration {
	if s.TimerSec == nil || *s.TimerSec <= 0 {
		return 0
	}
	return time.Duration(*s.TimerSec) * time.Second
}

// Recipe is a complete stored recipe. TotalMin is derived from
// PrepMin+CookMin on every save and never trusted from caller input.
type Recipe struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description *string      `json:"description"`
	Servings    int          `json:"servings"`
	PrepMin     int          `json:"prep_min"`
	CookMin     int          `json:"cook_min"`
	TotalMin    int          `json:"total_min"`
	Ingredients []Ingredient `json:"ingredients"`
	Steps       []Step       `json:"steps"`
	Tags        []string     `json:"tags"`
	Memo        *string      `json:"memo"`
	Images      []string     `json:"images"`
	Visibility  Visibility   `json:"visibility"`
	ShareSlug   *string      `json:"share_slug"`
	IsFavorite  bool         `json:"is_favorite"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

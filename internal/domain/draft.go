package domain

// RecipeDraft is a partially populated, unpersisted recipe. It is
// produced by the AI importer or by an in-progress edit, and carries no
// timestamps. Scalar fields use pointers so "absent" and "zero" stay
// distinct until commit time.
type RecipeDraft struct {
	ID          string       `json:"id,omitempty"`
	Title       string       `json:"title,omitempty"`
	Description *string      `json:"description,omitempty"`
	Servings    *int         `json:"servings,omitempty"`
	PrepMin     *int         `json:"prep_min,omitempty"`
	CookMin     *int         `json:"cook_min,omitempty"`
	TotalMin    *int         `json:"total_min,omitempty"`
	Ingredients []Ingredient `json:"ingredients,omitempty"`
	Steps       []Step       `json:"steps,omitempty"`
	Tags        []string     `json:"tags,omitempty"`
	Memo        *string      `json:"memo,omitempty"`
	Images      []string     `json:"images,omitempty"`
	Visibility  Visibility   `json:"visibility,omitempty"`
	ShareSlug   *string      `json:"share_slug,omitempty"`
	IsFavorite  *bool        `json:"is_favorite,omitempty"`
}

// DraftFromRecipe seeds a draft with every field of an existing recipe,
// ready for editing.
func DraftFromRecipe(r *Recipe) RecipeDraft {
	servings := r.Servings
	prep := r.PrepMin
	cook := r.CookMin
	fav := r.IsFavorite
	return RecipeDraft{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Servings:    &servings,
		PrepMin:     &prep,
		CookMin:     &cook,
		Ingredients: append([]Ingredient(nil), r.Ingredients...),
		Steps:       append([]Step(nil), r.Steps...),
		Tags:        append([]string(nil), r.Tags...),
		Memo:        r.Memo,
		Images:      append([]string(nil), r.Images...),
		Visibility:  r.Visibility,
		ShareSlug:   r.ShareSlug,
		IsFavorite:  &fav,
	}
}

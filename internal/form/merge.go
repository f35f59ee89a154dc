package form

import (
	"time"

	"github.com/google/uuid"

	"flashrecipe/internal/domain"
)

// Clock is swapped in tests to freeze commit timestamps.
var Clock = time.Now

// mergeDraft turns a draft into a complete recipe with explicit
// field-by-field precedence:
//
//   - absent draft fields fall back to the existing record (update) or
//     to defaults (create);
//   - TotalMin is always recomputed from PrepMin+CookMin, and the
//     draft's ID never overrides the target identity; caller-supplied
//     computed fields are ignored;
//   - CreatedAt, IsFavorite, and Images survive from the existing
//     record unless the draft explicitly sets them.
func mergeDraft(existing *domain.Recipe, draft domain.RecipeDraft) domain.Recipe {
	now := Clock().UTC()

	r := domain.Recipe{
		Title:       draft.Title,
		Description: draft.Description,
		Servings:    intOr(draft.Servings, 2),
		PrepMin:     intOr(draft.PrepMin, 0),
		CookMin:     intOr(draft.CookMin, 0),
		Ingredients: draft.Ingredients,
		Steps:       draft.Steps,
		Tags:        draft.Tags,
		Memo:        draft.Memo,
		Images:      draft.Images,
		Visibility:  draft.Visibility,
		ShareSlug:   draft.ShareSlug,
		UpdatedAt:   now,
	}

	if existing != nil {
		r.ID = existing.ID
		r.CreatedAt = existing.CreatedAt
		r.IsFavorite = existing.IsFavorite
		if len(r.Images) == 0 {
			r.Images = existing.Images
		}
		if r.Visibility == "" {
			r.Visibility = existing.Visibility
		}
		if r.ShareSlug == nil {
			r.ShareSlug = existing.ShareSlug
		}
	} else {
		r.ID = uuid.NewString()
		r.CreatedAt = now
	}

	if draft.IsFavorite != nil {
		r.IsFavorite = *draft.IsFavorite
	}

	// Minimal validation: placeholders and sane minimums, never a
	// rejected save.
	if r.Title == "" {
		r.Title = "Untitled"
	}
	if r.Servings <= 0 {
		r.Servings = 1
	}
	if r.PrepMin < 0 {
		r.PrepMin = 0
	}
	if r.CookMin < 0 {
		r.CookMin = 0
	}
	if !r.Visibility.Valid() {
		r.Visibility = domain.VisibilityPrivate
	}

	// Derived, never trusted from the caller.
	r.TotalMin = r.PrepMin + r.CookMin
	return r
}

func intOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

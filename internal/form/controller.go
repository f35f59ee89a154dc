// Package form holds the in-progress recipe draft and commits it to
// the store as a create-or-update.
package form

import (
	"context"
	"fmt"

	"flashrecipe/internal/domain"
	"flashrecipe/internal/logger"
)

// Editable field names for UpdateIngredient.
const (
	FieldName     = "name"
	FieldQuantity = "quantity"
	FieldUnit     = "unit"
	FieldNote     = "note"
)

// Controller owns one mutable RecipeDraft per editing session. It is
// not safe for concurrent use; every session has exactly one editor.
type Controller struct {
	store domain.RecipeStore
	stash domain.DraftStash
	log   *logger.Logger
	draft domain.RecipeDraft
}

// New creates a controller with an empty draft.
func New(store domain.RecipeStore, stash domain.DraftStash, log *logger.Logger) *Controller {
	return &Controller{store: store, stash: stash, log: log}
}

// Draft returns the current draft.
func (c *Controller) Draft() domain.RecipeDraft { return c.draft }

// SetDraft replaces the whole draft, e.g. from a parsed JSON file.
func (c *Controller) SetDraft(d domain.RecipeDraft) { c.draft = d }

// LoadForEdit seeds the draft from a stored recipe.
func (c *Controller) LoadForEdit(ctx context.Context, id string) (domain.RecipeDraft, error) {
	recipe, err := c.store.Get(ctx, id)
	if err != nil {
		return domain.RecipeDraft{}, fmt.Errorf("loading recipe for edit: %w", err)
	}
	c.draft = domain.DraftFromRecipe(recipe)
	c.log.Debug("editing recipe %s (%q)", recipe.ID, recipe.Title)
	return c.draft, nil
}

// LoadFromImport seeds the draft from the stash and clears it, so the
// same imported draft can never be applied twice.
func (c *Controller) LoadFromImport(ctx context.Context) (domain.RecipeDraft, error) {
	draft, err := c.stash.Take(ctx)
	if err != nil {
		return domain.RecipeDraft{}, fmt.Errorf("taking imported draft: %w", err)
	}
	c.draft = *draft
	c.log.Debug("editing imported draft %q", draft.Title)
	return c.draft, nil
}

// SetTitle sets the draft title.
func (c *Controller) SetTitle(title string) { c.draft.Title = title }

// SetServings sets the serving count.
func (c *Controller) SetServings(n int) { c.draft.Servings = &n }

// SetTimes sets prep and cook minutes.
func (c *Controller) SetTimes(prepMin, cookMin int) {
	c.draft.PrepMin = &prepMin
	c.draft.CookMin = &cookMin
}

// AddIngredient appends an empty ingredient row and returns its index.
func (c *Controller) AddIngredient() int {
	c.draft.Ingredients = append(c.draft.Ingredients, domain.Ingredient{})
	return len(c.draft.Ingredients) - 1
}

// UpdateIngredient sets one field of the ingredient at index.
func (c *Controller) UpdateIngredient(index int, field, value string) error {
	if index < 0 || index >= len(c.draft.Ingredients) {
		return fmt.Errorf("ingredient %d: %w", index, domain.ErrIndexOutOfRange)
	}
	ing := &c.draft.Ingredients[index]
	switch field {
	case FieldName:
		ing.Name = value
	case FieldQuantity:
		ing.Quantity = value
	case FieldUnit:
		ing.Unit = value
	case FieldNote:
		ing.Note = value
	default:
		return fmt.Errorf("unknown ingredient field %q", field)
	}
	return nil
}

// RemoveIngredient deletes the ingredient at index.
func (c *Controller) RemoveIngredient(index int) error {
	if index < 0 || index >= len(c.draft.Ingredients) {
		return fmt.Errorf("ingredient %d: %w", index, domain.ErrIndexOutOfRange)
	}
	c.draft.Ingredients = append(c.draft.Ingredients[:index], c.draft.Ingredients[index+1:]...)
	return nil
}

// AddStep appends an empty step with the next 1-based order and returns
// its index.
func (c *Controller) AddStep() int {
	c.draft.Steps = append(c.draft.Steps, domain.Step{Order: len(c.draft.Steps) + 1})
	return len(c.draft.Steps) - 1
}

// UpdateStepText sets the instruction text of the step at index.
func (c *Controller) UpdateStepText(index int, text string) error {
	if index < 0 || index >= len(c.draft.Steps) {
		return fmt.Errorf("step %d: %w", index, domain.ErrIndexOutOfRange)
	}
	c.draft.Steps[index].Text = text
	return nil
}

// UpdateStepTimer sets or clears (sec <= 0) the countdown of the step
// at index.
func (c *Controller) UpdateStepTimer(index, sec int) error {
	if index < 0 || index >= len(c.draft.Steps) {
		return fmt.Errorf("step %d: %w", index, domain.ErrIndexOutOfRange)
	}
	if sec <= 0 {
		c.draft.Steps[index].TimerSec = nil
		return nil
	}
	c.draft.Steps[index].TimerSec = &sec
	return nil
}

// RemoveStep deletes the step at index and renumbers the remaining
// steps so Order stays consistent with slice position.
func (c *Controller) RemoveStep(index int) error {
	if index < 0 || index >= len(c.draft.Steps) {
		return fmt.Errorf("step %d: %w", index, domain.ErrIndexOutOfRange)
	}
	c.draft.Steps = append(c.draft.Steps[:index], c.draft.Steps[index+1:]...)
	for i := range c.draft.Steps {
		c.draft.Steps[i].Order = i + 1
	}
	return nil
}

// Commit validates and merges the draft, then writes it through to the
// store. Returns the persisted recipe.
func (c *Controller) Commit(ctx context.Context) (*domain.Recipe, error) {
	var existing *domain.Recipe
	if c.draft.ID != "" {
		var err error
		existing, err = c.store.Get(ctx, c.draft.ID)
		if err != nil {
			return nil, fmt.Errorf("loading existing recipe: %w", err)
		}
	}

	recipe := mergeDraft(existing, c.draft)
	saved, err := c.store.Upsert(ctx, &recipe)
	if err != nil {
		return nil, fmt.Errorf("saving recipe: %w", err)
	}

	c.log.Info("committed recipe %s (%q)", saved.ID, saved.Title)
	c.draft = domain.RecipeDraft{}
	return saved, nil
}

// Delete removes a recipe. Confirmation prompts belong to the caller.
func (c *Controller) Delete(ctx context.Context, id string) error {
	if err := c.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting recipe: %w", err)
	}
	return nil
}

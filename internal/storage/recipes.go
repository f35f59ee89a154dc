package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"flashrecipe/internal/domain"
	"flashrecipe/internal/logger"
)

// recipesKey is the fixed key the whole collection is serialized under.
const recipesKey = "recipes"

// Compile-time interface check.
var _ domain.RecipeStore = (*RecipeStore)(nil)

// RecipeStore keeps every recipe as one JSON value in a KeyValue.
// Every operation reads the full collection into memory first; this is
// a small-N convenience store, not a database. Last write wins.
type RecipeStore struct {
	mu   sync.Mutex
	kv   domain.KeyValue
	log  *logger.Logger
	seed []domain.Recipe
}

// Option configures the store.
type Option func(*RecipeStore)

// WithSeed sets the recipes written on first use, when the backing key
// does not exist yet.
func WithSeed(recipes []domain.Recipe) Option {
	return func(s *RecipeStore) {
		s.seed = recipes
	}
}

// NewRecipeStore creates a store over the given key-value backend,
// seeded with the built-in sample recipes unless WithSeed overrides them.
func NewRecipeStore(kv domain.KeyValue, log *logger.Logger, opts ...Option) *RecipeStore {
	s := &RecipeStore{kv: kv, log: log, seed: SampleRecipes()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// load reads the whole collection, writing the seed first if the key
// has never been written.
func (s *RecipeStore) load(ctx context.Context) ([]domain.Recipe, error) {
	data, err := s.kv.Read(ctx, recipesKey)
	if errors.Is(err, domain.ErrNotFound) {
		s.log.Info("recipe store empty, seeding %d recipes", len(s.seed))
		if err := s.save(ctx, s.seed); err != nil {
			return nil, err
		}
		return append([]domain.Recipe(nil), s.seed...), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading recipes: %w", err)
	}

	var recipes []domain.Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		return nil, fmt.Errorf("decoding recipes: %w", err)
	}
	return recipes, nil
}

func (s *RecipeStore) save(ctx context.Context, recipes []domain.Recipe) error {
	data, err := json.Marshal(recipes)
	if err != nil {
		return fmt.Errorf("encoding recipes: %w", err)
	}
	if err := s.kv.Write(ctx, recipesKey, data); err != nil {
		return fmt.Errorf("saving recipes: %w", err)
	}
	return nil
}

// List returns every recipe, or the subset matching query. Matching is
// a case-insensitive substring test over title, ingredient names, and
// tags.
func (s *RecipeStore) List(ctx context.Context, query string) ([]domain.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recipes, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return recipes, nil
	}

	q := strings.ToLower(query)
	var out []domain.Recipe
	for _, r := range recipes {
		if matches(&r, q) {
			out = append(out, r)
		}
	}
	s.log.Debug("list query %q matched %d/%d recipes", query, len(out), len(recipes))
	return out, nil
}

func matches(r *domain.Recipe, q string) bool {
	if strings.Contains(strings.ToLower(r.Title), q) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing.Name), q) {
			return true
		}
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// Get returns a recipe by ID, or domain.ErrNotFound.
func (s *RecipeStore) Get(ctx context.Context, id string) (*domain.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recipes, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range recipes {
		if recipes[i].ID == id {
			r := recipes[i]
			return &r, nil
		}
	}
	s.log.Debug("recipe not found: %s", id)
	return nil, domain.ErrNotFound
}

// Upsert writes a full recipe document, replacing any existing record
// with the same ID. New recipes are prepended so recent entries list
// first.
func (s *RecipeStore) Upsert(ctx context.Context, recipe *domain.Recipe) (*domain.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recipes, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	replaced := false
	for i := range recipes {
		if recipes[i].ID == recipe.ID {
			recipes[i] = *recipe
			replaced = true
			break
		}
	}
	if !replaced {
		recipes = append([]domain.Recipe{*recipe}, recipes...)
	}

	if err := s.save(ctx, recipes); err != nil {
		return nil, err
	}
	s.log.Info("recipe saved: %s (%q)", recipe.ID, recipe.Title)
	return recipe, nil
}

// Delete removes a recipe by ID. Deleting an unknown ID is a no-op.
func (s *RecipeStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	recipes, err := s.load(ctx)
	if err != nil {
		return err
	}

	out := recipes[:0]
	for _, r := range recipes {
		if r.ID != id {
			out = append(out, r)
		}
	}
	if err := s.save(ctx, out); err != nil {
		return err
	}
	s.log.Info("recipe deleted: %s", id)
	return nil
}

// SetFavorite flips the favorite flag on a recipe and returns the
// updated record, or domain.ErrNotFound.
func (s *RecipeStore) SetFavorite(ctx context.Context, id string, favorite bool) (*domain.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recipes, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range recipes {
		if recipes[i].ID == id {
			recipes[i].IsFavorite = favorite
			if err := s.save(ctx, recipes); err != nil {
				return nil, err
			}
			r := recipes[i]
			return &r, nil
		}
	}
	return nil, domain.ErrNotFound
}

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"flashrecipe/internal/domain"
	"flashrecipe/internal/logger"
)

// stashKey is the single slot used to hand a draft from the import flow
// to the form flow.
const stashKey = "recipe_draft"

// Compile-time interface check.
var _ domain.DraftStash = (*DraftStash)(nil)

// DraftStash is a transient single-slot draft store over a KeyValue.
type DraftStash struct {
	kv  domain.KeyValue
	log *logger.Logger
}

// NewDraftStash creates a stash on the given backend.
func NewDraftStash(kv domain.KeyValue, log *logger.Logger) *DraftStash {
	return &DraftStash{kv: kv, log: log}
}

// Put stores a draft, replacing any previous one.
func (s *DraftStash) Put(ctx context.Context, draft domain.RecipeDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("encoding draft: %w", err)
	}
	if err := s.kv.Write(ctx, stashKey, data); err != nil {
		return fmt.Errorf("stashing draft: %w", err)
	}
	s.log.Debug("draft stashed (%d bytes)", len(data))
	return nil
}

// Take returns the stashed draft and clears the slot, so a stale draft
// never resurfaces. Returns domain.ErrEmptyStash when nothing is
// stashed.
func (s *DraftStash) Take(ctx context.Context) (*domain.RecipeDraft, error) {
	data, err := s.kv.Read(ctx, stashKey)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrEmptyStash
	}
	if err != nil {
		return nil, fmt.Errorf("reading stashed draft: %w", err)
	}

	var draft domain.RecipeDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, fmt.Errorf("decoding stashed draft: %w", err)
	}
	if err := s.kv.Delete(ctx, stashKey); err != nil {
		return nil, fmt.Errorf("clearing stashed draft: %w", err)
	}
	s.log.Debug("draft taken and cleared")
	return &draft, nil
}

package storage

import (
	"context"
	"errors"
	"testing"

	"flashrecipe/internal/domain"
	"flashrecipe/internal/logger"
)

func TestStashTakeClears(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	stash := NewDraftStash(NewMemoryKV(), log)
	ctx := context.Background()

	servings := 2
	if err := stash.Put(ctx, domain.RecipeDraft{Title: "X", Servings: &servings}); err != nil {
		t.Fatalf("put: %v", err)
	}

	draft, err := stash.Take(ctx)
	if err != nil {
		t.Fatalf("take: %v", err)
	}
	if draft.Title != "X" || draft.Servings == nil || *draft.Servings != 2 {
		t.Fatalf("unexpected draft: %+v", draft)
	}

	// The slot must be empty now; a stale draft never resurfaces.
	if _, err := stash.Take(ctx); !errors.Is(err, domain.ErrEmptyStash) {
		t.Fatalf("expected ErrEmptyStash on second take, got %v", err)
	}
}

func TestStashPutReplaces(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	stash := NewDraftStash(NewMemoryKV(), log)
	ctx := context.Background()

	if err := stash.Put(ctx, domain.RecipeDraft{Title: "old"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := stash.Put(ctx, domain.RecipeDraft{Title: "new"}); err != nil {
		t.Fatalf("second put: %v", err)
	}

	draft, err := stash.Take(ctx)
	if err != nil {
		t.Fatalf("take: %v", err)
	}
	if draft.Title != "new" {
		t.Fatalf("expected latest draft, got %q", draft.Title)
	}
}

func TestStashEmpty(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	stash := NewDraftStash(NewMemoryKV(), log)

	if _, err := stash.Take(context.Background()); !errors.Is(err, domain.ErrEmptyStash) {
		t.Fatalf("expected ErrEmptyStash, got %v", err)
	}
}

// Package session implements cook mode: a linear walk over a recipe's
// steps with an optional countdown timer per step.
package session

import (
	"fmt"

	"flashrecipe/internal/domain"
)

// Session is a cursor over a fixed ordered step sequence. Every
// transition is a pure index move; the underlying recipe is never
// touched. Traversal trusts slice order; Step.Order is stored display
// metadata, not a sort key.
type Session struct {
	recipe *domain.Recipe
	index  int
}

// New starts a session at the first step.
func New(recipe *domain.Recipe) *Session {
	return &Session{recipe: recipe}
}

// Recipe returns the recipe being cooked.
func (s *Session) Recipe() *domain.Recipe { return s.recipe }

// Index returns the current 0-based step index.
func (s *Session) Index() int { return s.index }

// Current returns the step under the cursor.
func (s *Session) Current() domain.Step {
	return s.recipe.Steps[s.index]
}

// Len returns the number of steps.
func (s *Session) Len() int { return len(s.recipe.Steps) }

// IsFirst reports whether the cursor is on the first step.
func (s *Session) IsFirst() bool { return s.index == 0 }

// IsLast reports whether the cursor is on the last step. Finishing is
// the caller's exit, not a session transition.
func (s *Session) IsLast() bool { return s.index == len(s.recipe.Steps)-1 }

// Next advances one step. At the last step it is a no-op and returns
// false so the caller knows to exit instead.
func (s *Session) Next() bool {
	if s.IsLast() {
		return false
	}
	s.index++
	return true
}

// Previous moves back one step; a no-op at the first step.
func (s *Session) Previous() bool {
	if s.IsFirst() {
		return false
	}
	s.index--
	return true
}

// GoTo jumps to an arbitrary step index.
func (s *Session) GoTo(i int) error {
	if i < 0 || i >= len(s.recipe.Steps) {
		return fmt.Errorf("step %d of %d: %w", i, len(s.recipe.Steps), domain.ErrIndexOutOfRange)
	}
	s.index = i
	return nil
}

// Progress returns completion as (current step number, total).
func (s *Session) Progress() (int, int) {
	return s.index + 1, len(s.recipe.Steps)
}

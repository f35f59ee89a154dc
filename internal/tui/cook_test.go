package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"flashrecipe/internal/domain"
	"flashrecipe/internal/session"
)

func timerStep(order int, text string, sec int) domain.Step {
	return domain.Step{Order: order, Text: text, TimerSec: &sec}
}

func testRecipe() *domain.Recipe {
	return &domain.Recipe{
		ID:    "r1",
		Title: "Test Curry",
		Steps: []domain.Step{
			{Order: 1, Text: "Chop the onion"},
			timerStep(2, "Simmer gently", 180),
			{Order: 3, Text: "Serve"},
		},
	}
}

func press(m Model, k string) Model {
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestNavigationScopesTimerToStep(t *testing.T) {
	m := NewModel(testRecipe())

	if m.countdown != nil {
		t.Fatal("step 1 has no timer")
	}

	m = press(m, "n")
	if m.countdown == nil {
		t.Fatal("step 2 should get a countdown")
	}
	m = press(m, "s")
	if m.countdown.State() != session.CountdownRunning {
		t.Fatalf("s should start the timer, state = %s", m.countdown.State())
	}

	// Leaving the step discards its timer; coming back starts fresh.
	m = press(m, "n")
	if m.countdown != nil {
		t.Fatal("step 3 has no timer")
	}
	m = press(m, "p")
	if m.countdown == nil || m.countdown.State() != session.CountdownIdle {
		t.Fatal("returning to step 2 should give a fresh idle countdown")
	}
}

func TestTickElapsesTimer(t *testing.T) {
	m := NewModel(testRecipe())
	m = press(m, "n")
	m = press(m, "s")

	next, _ := m.Update(tickMsg(time.Now().Add(181 * time.Second)))
	m = next.(Model)
	if m.countdown.State() != session.CountdownElapsed {
		t.Fatalf("state = %s, want elapsed", m.countdown.State())
	}
	if !strings.Contains(m.View(), "DONE") {
		t.Error("view should show DONE after the timer elapses")
	}
}

func TestEnterFinishesOnLastStep(t *testing.T) {
	m := NewModel(testRecipe())

	// Enter mid-recipe advances instead of finishing.
	m = press(m, "enter")
	if m.Finished() {
		t.Fatal("enter on step 1 must not finish the session")
	}

	m = press(m, "enter")
	m = press(m, "enter")
	if !m.Finished() {
		t.Fatal("enter on the last step should finish")
	}
}

func TestViewShowsProgressAndStep(t *testing.T) {
	m := NewModel(testRecipe())
	m.width = 40

	view := m.View()
	if !strings.Contains(view, "STEP 1/3") {
		t.Errorf("view missing progress header:\n%s", view)
	}
	if !strings.Contains(view, "Chop the onion") {
		t.Errorf("view missing step text:\n%s", view)
	}
}

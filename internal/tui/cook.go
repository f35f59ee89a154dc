// Package tui renders cook mode in the terminal using Bubble Tea: one
// step at a time, full width, with the step's countdown (if any) and
// previous/next navigation.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"flashrecipe/internal/domain"
	"flashrecipe/internal/session"
)

// ── Styles ───────────────────────────────────────────────────────

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	stepNumStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fb923c")).
			Bold(true)

	stepTextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	timerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a")).
			Bold(true)

	timerDoneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0")).
			Bold(true)

	progressFillStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#fb923c"))
	progressEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#3f3f46"))

	finishStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0"))
)

// ── Key map ──────────────────────────────────────────────────────

type keyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Timer  key.Binding
	Reset  key.Binding
	Finish key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Timer, k.Reset, k.Finish, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Next:   key.NewBinding(key.WithKeys("n", "right", "l"), key.WithHelp("n/→", "next")),
	Prev:   key.NewBinding(key.WithKeys("p", "left", "h"), key.WithHelp("p/←", "back")),
	Timer:  key.NewBinding(key.WithKeys("s", " "), key.WithHelp("s", "start/pause timer")),
	Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset timer")),
	Finish: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "finish (last step)")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ── Model ────────────────────────────────────────────────────────

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the cook-mode Bubble Tea model.
type Model struct {
	sess      *session.Session
	countdown *session.Countdown
	help      help.Model
	width     int
	finished  bool
}

// NewModel starts cook mode at the recipe's first step.
func NewModel(recipe *domain.Recipe) Model {
	m := Model{
		sess:  session.New(recipe),
		help:  help.New(),
		width: 80,
	}
	m.attachCountdown()
	return m
}

// Finished reports whether the user completed the last step (as
// opposed to quitting early).
func (m Model) Finished() bool { return m.finished }

// attachCountdown scopes timer state to the displayed step. Moving to
// another step discards the previous step's countdown; there are no
// background timers across steps.
func (m *Model) attachCountdown() {
	if d := m.sess.Current().Timer(); d > 0 {
		m.countdown = session.NewCountdown(d)
	} else {
		m.countdown = nil
	}
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, keys.Next):
			if m.sess.Next() {
				m.attachCountdown()
			}
			return m, nil

		case key.Matches(msg, keys.Prev):
			if m.sess.Previous() {
				m.attachCountdown()
			}
			return m, nil

		case key.Matches(msg, keys.Finish):
			// Finishing is the caller's exit: only meaningful on the
			// last step, otherwise advance.
			if m.sess.IsLast() {
				m.finished = true
				return m, tea.Quit
			}
			m.sess.Next()
			m.attachCountdown()
			return m, nil

		case key.Matches(msg, keys.Timer):
			if m.countdown == nil {
				return m, nil
			}
			switch m.countdown.State() {
			case session.CountdownIdle:
				m.countdown.Start(time.Now())
			case session.CountdownRunning:
				m.countdown.Pause(time.Now())
			}
			return m, nil

		case key.Matches(msg, keys.Reset):
			if m.countdown != nil {
				m.countdown.Reset()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		if m.countdown != nil && m.countdown.Tick(time.Time(msg)) {
			return m, tea.Batch(tickCmd(), tea.Printf("\a"))
		}
		return m, tickCmd()
	}

	return m, nil
}

func (m Model) View() string {
	cur, total := m.sess.Progress()
	step := m.sess.Current()

	var b strings.Builder
	b.WriteString(m.progressBar(cur, total))
	b.WriteString("\n\n")
	b.WriteString(stepNumStyle.Render(fmt.Sprintf("STEP %d/%d", cur, total)))
	b.WriteString(titleStyle.Render("  " + m.sess.Recipe().Title))
	b.WriteString("\n\n")
	b.WriteString(stepTextStyle.Width(m.width - 4).Render(step.Text))
	b.WriteString("\n")

	if m.countdown != nil {
		b.WriteString("\n")
		if m.countdown.State() == session.CountdownElapsed {
			b.WriteString(timerDoneStyle.Render("  DONE"))
		} else {
			b.WriteString(timerStyle.Render("  " + m.countdown.Display()))
			b.WriteString(titleStyle.Render("  (" + m.countdown.State().String() + ")"))
		}
		b.WriteString("\n")
	}

	if m.sess.IsLast() {
		b.WriteString("\n")
		b.WriteString(finishStyle.Render("  Press enter to finish cooking."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(keys))
	return b.String()
}

// progressBar renders a full-width bar filled proportionally to the
// current step, like the strip at the top of the original cook screen.
func (m Model) progressBar(cur, total int) string {
	width := m.width
	if width <= 0 {
		width = 80
	}
	filled := width * cur / total
	return progressFillStyle.Render(strings.Repeat("█", filled)) +
		progressEmptyStyle.Render(strings.Repeat("░", width-filled))
}

// Run starts cook mode and blocks until the user exits. Returns whether
// the session was finished (last step confirmed) rather than abandoned.
func Run(recipe *domain.Recipe) (bool, error) {
	p := tea.NewProgram(NewModel(recipe), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("running cook mode: %w", err)
	}
	model, ok := final.(Model)
	return ok && model.Finished(), nil
}

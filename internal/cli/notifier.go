package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"flashrecipe/internal/domain"
)

var (
	notifyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	notifyUrgentStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#fb923c")).
				Bold(true)
)

// TerminalNotifier prints notifications to the terminal. Urgent
// messages ring the bell.
type TerminalNotifier struct {
	out io.Writer
}

var _ domain.Notifier = (*TerminalNotifier)(nil)

func NewTerminalNotifier(out io.Writer) *TerminalNotifier {
	if out == nil {
		out = os.Stdout
	}
	return &TerminalNotifier{out: out}
}

func (n *TerminalNotifier) Notify(_ context.Context, message string) error {
	_, err := fmt.Fprintln(n.out, notifyStyle.Render(message))
	return err
}

func (n *TerminalNotifier) NotifyUrgent(_ context.Context, message string) error {
	_, err := fmt.Fprintf(n.out, "\a%s\n", notifyUrgentStyle.Render(message))
	return err
}

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"flashrecipe/internal/domain"
	"flashrecipe/internal/session"
	"flashrecipe/internal/tui"
)

var cookPlain bool

var cookCmd = &cobra.Command{
	Use:   "cook <id>",
	Short: "Walk through a recipe step by step",
	Long: `Starts cook mode for the recipe. The default full-screen view shows
one step at a time with its countdown timer; --plain switches to a
line-based prompt for dumb terminals (commands: n, p, s, r, q).`,
	Args: cobra.ExactArgs(1),
	RunE: runCook,
}

func init() {
	cookCmd.Flags().BoolVar(&cookPlain, "plain", false, "line-based cook mode instead of the full-screen view")
	rootCmd.AddCommand(cookCmd)
}

func runCook(cmd *cobra.Command, args []string) error {
	if err := requireStore(); err != nil {
		return err
	}

	recipe, err := svc.Store.Get(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("loading recipe %s: %w", args[0], err)
	}
	if len(recipe.Steps) == 0 {
		return fmt.Errorf("recipe %q has no steps", recipe.Title)
	}

	if cookPlain {
		return plainCook(cmd, recipe)
	}

	finished, err := tui.Run(recipe)
	if err != nil {
		return err
	}
	if finished {
		cmd.Printf("Finished cooking %s. Enjoy!\n", recipe.Title)
	}
	return nil
}

// plainCook is a line-based cook loop. Timer ticking runs in the
// background so "time's up" prints even while the prompt is waiting
// for input.
func plainCook(cmd *cobra.Command, recipe *domain.Recipe) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tick := 200 * time.Millisecond
	if svc.Config != nil && svc.Config.TickInterval > 0 {
		tick = svc.Config.TickInterval
	}
	runner := session.NewRunner(NewTerminalNotifier(cmd.OutOrStdout()), svc.Log,
		session.WithTickInterval(tick))
	runner.Start(ctx)
	defer runner.Stop()

	sess := session.New(recipe)
	printStep(cmd, sess, runner)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		cmd.Printf("> ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil && !errors.Is(err, io.EOF) {
				return fmt.Errorf("reading input: %w", err)
			}
			return nil
		}

		switch strings.TrimSpace(strings.ToLower(scanner.Text())) {
		case "n", "next", "":
			if sess.IsLast() {
				cmd.Printf("Finished cooking %s. Enjoy!\n", recipe.Title)
				return nil
			}
			sess.Next()
			printStep(cmd, sess, runner)
		case "p", "prev", "back":
			if sess.Previous() {
				printStep(cmd, sess, runner)
			}
		case "s", "start", "pause":
			toggleTimer(cmd, runner)
		case "r", "reset":
			if c := runner.Countdown(); c != nil {
				c.Reset()
				cmd.Printf("Timer reset to %s.\n", c.Display())
			}
		case "q", "quit", "exit":
			return nil
		case "h", "help", "?":
			cmd.Println("n next · p previous · s start/pause timer · r reset timer · q quit")
		default:
			cmd.Println(`Unknown command; type "h" for help.`)
		}
	}
}

// printStep shows the current step and scopes the runner's countdown to
// it; any previous step's timer is discarded.
func printStep(cmd *cobra.Command, sess *session.Session, runner *session.Runner) {
	cur, total := sess.Progress()
	step := sess.Current()
	cmd.Printf("\nStep %d/%d: %s\n", cur, total, step.Text)

	if d := step.Timer(); d > 0 {
		c := session.NewCountdown(d)
		runner.Attach(c, fmt.Sprintf("step %d", cur))
		cmd.Printf("Timer: %s (s to start)\n", c.Display())
	} else {
		runner.Attach(nil, "")
	}
}

func toggleTimer(cmd *cobra.Command, runner *session.Runner) {
	c := runner.Countdown()
	if c == nil {
		cmd.Println("This step has no timer.")
		return
	}
	switch c.State() {
	case session.CountdownIdle:
		c.Start(time.Now())
		cmd.Printf("Timer started: %s\n", c.Display())
	case session.CountdownRunning:
		c.Pause(time.Now())
		cmd.Printf("Timer paused at %s.\n", c.Display())
	case session.CountdownElapsed:
		cmd.Println("Timer already finished; r to reset.")
	}
}

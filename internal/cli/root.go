// Package cli wires the recipe store, importer, and cooking session
// into cobra commands. Commands print through cmd.Println and friends
// so tests can capture output.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"flashrecipe/internal/config"
	"flashrecipe/internal/domain"
	"flashrecipe/internal/form"
	"flashrecipe/internal/importer"
	"flashrecipe/internal/logger"
)

// Services holds the dependencies the commands run against. Importer
// is nil when no AI endpoint is configured; commands that need it fail
// with a setup hint instead of a panic.
type Services struct {
	Store    domain.RecipeStore
	Stash    domain.DraftStash
	Importer *importer.Importer
	Config   *config.Config
	Log      *logger.Logger
}

var svc Services

// Setup injects the services. Call once before Execute.
func Setup(s Services) {
	svc = s
	if svc.Log == nil {
		svc.Log = logger.New(logger.LevelOff, nil)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flashrecipe",
	Short: "Manage and cook your recipes from the terminal",
	Long: `flashrecipe keeps a personal recipe collection, imports recipes from
free text or photos with an AI assistant, and walks you through cooking
step by step with built-in timers.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func requireStore() error {
	if svc.Store == nil {
		return errors.New("recipe store not configured")
	}
	return nil
}

func newForm() *form.Controller {
	return form.New(svc.Store, svc.Stash, svc.Log)
}

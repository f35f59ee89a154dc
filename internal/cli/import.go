package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"flashrecipe/internal/importer"
)

var importImages []string

var importCmd = &cobra.Command{
	Use:   "import [text...]",
	Short: "Turn free text or photos into a recipe draft",
	Long: `Sends the given text and images to the AI assistant and stashes the
resulting draft. Run "flashrecipe review" afterwards to adjust and save
it. Images can be URLs or local file paths; ones that fail to load are
skipped.`,
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringArrayVar(&importImages, "image", nil, "image URL or file path (repeatable)")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	if svc.Importer == nil {
		return errors.New("AI import is not configured; set AI_API_KEY (and optionally FLASHRECIPE_AI_ENDPOINT)")
	}
	if svc.Stash == nil {
		return errors.New("draft stash not configured")
	}

	ctx := context.Background()
	draft, err := svc.Importer.Import(ctx, importer.Input{
		Text:   strings.Join(args, " "),
		Images: importImages,
	})
	if err != nil {
		return fmt.Errorf("importing recipe: %w", err)
	}

	if err := svc.Stash.Put(ctx, *draft); err != nil {
		return fmt.Errorf("stashing draft: %w", err)
	}

	cmd.Printf("Drafted %q", draft.Title)
	if n := len(draft.Ingredients); n > 0 {
		cmd.Printf(" with %d ingredients and %d steps", n, len(draft.Steps))
	}
	cmd.Println(".")
	cmd.Println(`Run "flashrecipe review" to adjust and save it.`)
	return nil
}

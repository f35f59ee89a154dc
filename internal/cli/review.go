package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"flashrecipe/internal/domain"
)

var reviewDiscard bool

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Save (or discard) the imported draft",
	Long: `Takes the draft stashed by "import", applies any edit flags, and
saves it as a new recipe. The stash holds one draft and is cleared
either way; --discard drops the draft without saving.

` + draftFlagsHelp,
	Args: cobra.NoArgs,
	RunE: runReview,
}

func init() {
	reviewCmd.Flags().BoolVar(&reviewDiscard, "discard", false, "drop the stashed draft without saving")
	addDraftFlags(reviewCmd)
	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, _ []string) error {
	if err := requireStore(); err != nil {
		return err
	}
	if svc.Stash == nil {
		return errors.New("draft stash not configured")
	}

	ctrl := newForm()
	draft, err := ctrl.LoadFromImport(context.Background())
	if err != nil {
		if errors.Is(err, domain.ErrEmptyStash) {
			return errors.New(`no draft to review; run "flashrecipe import" first`)
		}
		return fmt.Errorf("loading draft: %w", err)
	}

	if reviewDiscard {
		cmd.Printf("Discarded draft %q.\n", draft.Title)
		return nil
	}
	return applyAndCommit(cmd, ctrl, "Saved")
}

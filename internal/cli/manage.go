package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"flashrecipe/internal/domain"
)

var favoriteCmd = &cobra.Command{
	Use:   "favorite <id>",
	Short: "Toggle a recipe's favorite flag",
	Args:  cobra.ExactArgs(1),
	RunE:  runFavorite,
}

var visibilityCmd = &cobra.Command{
	Use:   "visibility <id> <private|unlisted|public>",
	Short: "Set who can see a recipe",
	Long: `Sets the recipe's visibility. Going back to private revokes the share
slug, so an old link stops working.`,
	Args: cobra.ExactArgs(2),
	RunE: runVisibility,
}

var shareCmd = &cobra.Command{
	Use:   "share <id>",
	Short: "Create a share slug for a recipe",
	Long: `Assigns the recipe a stable share slug, raising visibility to
unlisted if it is private. Running share again reuses the existing
slug.`,
	Args: cobra.ExactArgs(1),
	RunE: runShare,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a recipe",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(favoriteCmd)
	rootCmd.AddCommand(visibilityCmd)
	rootCmd.AddCommand(shareCmd)
	rootCmd.AddCommand(deleteCmd)
}

func runFavorite(cmd *cobra.Command, args []string) error {
	if err := requireStore(); err != nil {
		return err
	}
	ctx := context.Background()

	recipe, err := svc.Store.Get(ctx, args[0])
	if err != nil {
		return fmt.Errorf("loading recipe %s: %w", args[0], err)
	}
	recipe, err = svc.Store.SetFavorite(ctx, recipe.ID, !recipe.IsFavorite)
	if err != nil {
		return fmt.Errorf("updating favorite: %w", err)
	}

	if recipe.IsFavorite {
		cmd.Printf("★ %s is now a favorite.\n", recipe.Title)
	} else {
		cmd.Printf("%s is no longer a favorite.\n", recipe.Title)
	}
	return nil
}

func runVisibility(cmd *cobra.Command, args []string) error {
	if err := requireStore(); err != nil {
		return err
	}
	level := domain.Visibility(args[1])
	if !level.Valid() {
		return fmt.Errorf("unknown visibility %q (want private, unlisted, or public)", args[1])
	}
	ctx := context.Background()

	recipe, err := svc.Store.Get(ctx, args[0])
	if err != nil {
		return fmt.Errorf("loading recipe %s: %w", args[0], err)
	}
	recipe.Visibility = level
	if level == domain.VisibilityPrivate {
		recipe.ShareSlug = nil
	}
	if _, err := svc.Store.Upsert(ctx, recipe); err != nil {
		return fmt.Errorf("saving recipe: %w", err)
	}

	cmd.Printf("%s is now %s.\n", recipe.Title, level)
	return nil
}

func runShare(cmd *cobra.Command, args []string) error {
	if err := requireStore(); err != nil {
		return err
	}
	ctx := context.Background()

	recipe, err := svc.Store.Get(ctx, args[0])
	if err != nil {
		return fmt.Errorf("loading recipe %s: %w", args[0], err)
	}

	if recipe.ShareSlug == nil {
		slug := uuid.NewString()
		recipe.ShareSlug = &slug
	}
	if recipe.Visibility == domain.VisibilityPrivate {
		recipe.Visibility = domain.VisibilityUnlisted
	}
	if _, err := svc.Store.Upsert(ctx, recipe); err != nil {
		return fmt.Errorf("saving recipe: %w", err)
	}

	cmd.Printf("%s is %s, share slug: %s\n", recipe.Title, recipe.Visibility, *recipe.ShareSlug)
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	if err := requireStore(); err != nil {
		return err
	}
	if err := svc.Store.Delete(context.Background(), args[0]); err != nil {
		return fmt.Errorf("deleting recipe %s: %w", args[0], err)
	}
	cmd.Printf("Deleted %s.\n", args[0])
	return nil
}

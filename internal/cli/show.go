package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"flashrecipe/internal/domain"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one recipe in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	if err := requireStore(); err != nil {
		return err
	}

	recipe, err := svc.Store.Get(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("loading recipe %s: %w", args[0], err)
	}

	if showJSON {
		data, err := json.MarshalIndent(recipe, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling recipe: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println(renderRecipe(recipe))
	return nil
}

func renderRecipe(r *domain.Recipe) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s", r.Title)
	if r.IsFavorite {
		b.WriteString(" ★")
	}
	b.WriteString("\n")
	if r.Description != nil && *r.Description != "" {
		fmt.Fprintf(&b, "%s\n", *r.Description)
	}
	fmt.Fprintf(&b, "\nServes %d · prep %d min · cook %d min · total %d min\n",
		r.Servings, r.PrepMin, r.CookMin, r.TotalMin)
	if len(r.Tags) > 0 {
		fmt.Fprintf(&b, "Tags: %s\n", strings.Join(r.Tags, ", "))
	}
	fmt.Fprintf(&b, "Visibility: %s", r.Visibility)
	if r.ShareSlug != nil {
		fmt.Fprintf(&b, " (slug %s)", *r.ShareSlug)
	}
	b.WriteString("\n")

	b.WriteString("\nIngredients:\n")
	for _, ing := range r.Ingredients {
		fmt.Fprintf(&b, "  - %s", ing.Name)
		if ing.Quantity != "" || ing.Unit != "" {
			fmt.Fprintf(&b, "  %s%s", ing.Quantity, ing.Unit)
		}
		if ing.Note != "" {
			fmt.Fprintf(&b, " (%s)", ing.Note)
		}
		b.WriteString("\n")
	}

	b.WriteString("\nSteps:\n")
	for _, step := range r.Steps {
		fmt.Fprintf(&b, "  %d. %s", step.Order, step.Text)
		if d := step.Timer(); d > 0 {
			fmt.Fprintf(&b, " [timer %s]", d)
		}
		b.WriteString("\n")
	}

	if r.Memo != nil && *r.Memo != "" {
		fmt.Fprintf(&b, "\nMemo: %s\n", *r.Memo)
	}
	return strings.TrimRight(b.String(), "\n")
}

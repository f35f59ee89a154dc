package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"flashrecipe/internal/domain"
)

var (
	listFavorites bool
	listJSON      bool
)

var listCmd = &cobra.Command{
	Use:     "list [query]",
	Aliases: []string{"search"},
	Short:   "List recipes, optionally filtered by a search query",
	Long: `Lists every recipe in the collection. With a query, keeps only
recipes whose title, ingredient names, or tags contain the query
(case-insensitive).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listFavorites, "favorites", false, "only show favorites")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	if err := requireStore(); err != nil {
		return err
	}

	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	recipes, err := svc.Store.List(context.Background(), query)
	if err != nil {
		return fmt.Errorf("listing recipes: %w", err)
	}
	if listFavorites {
		kept := recipes[:0]
		for _, r := range recipes {
			if r.IsFavorite {
				kept = append(kept, r)
			}
		}
		recipes = kept
	}

	if listJSON {
		data, err := json.MarshalIndent(recipes, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling recipes: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(recipes) == 0 {
		cmd.Println("No recipes found.")
		return nil
	}
	for _, r := range recipes {
		cmd.Println(listLine(r))
	}
	return nil
}

func listLine(r domain.Recipe) string {
	fav := " "
	if r.IsFavorite {
		fav = "★"
	}
	line := fmt.Sprintf("%s %-8s %-32s %3d min  serves %d", fav, r.ID, r.Title, r.TotalMin, r.Servings)
	if len(r.Tags) > 0 {
		line += "  [" + strings.Join(r.Tags, " ") + "]"
	}
	return line
}

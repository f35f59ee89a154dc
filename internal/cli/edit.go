package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"flashrecipe/internal/domain"
	"flashrecipe/internal/form"
)

// Draft edit flags, shared by new, edit, and review.
var (
	draftFile        string
	draftTitle       string
	draftDescription string
	draftMemo        string
	draftServings    int
	draftPrep        int
	draftCook        int
	draftTags        []string
	draftIngredients []string
	draftSteps       []string
)

const draftFlagsHelp = `Ingredients are written as "Name|Quantity|Unit|Note" (trailing parts
optional). Steps are plain text with an optional trailing "@seconds"
countdown, e.g. --step "Simmer gently @180". Repeating --tag,
--ingredient, or --step replaces the whole list.`

func addDraftFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&draftFile, "file", "f", "", "load the draft from a JSON file before applying flags")
	cmd.Flags().StringVar(&draftTitle, "title", "", "recipe title")
	cmd.Flags().StringVar(&draftDescription, "description", "", "short description")
	cmd.Flags().StringVar(&draftMemo, "memo", "", "free-form memo")
	cmd.Flags().IntVar(&draftServings, "servings", 0, "number of servings")
	cmd.Flags().IntVar(&draftPrep, "prep", -1, "prep time in minutes")
	cmd.Flags().IntVar(&draftCook, "cook", -1, "cook time in minutes")
	cmd.Flags().StringArrayVar(&draftTags, "tag", nil, "tag (repeatable)")
	cmd.Flags().StringArrayVar(&draftIngredients, "ingredient", nil, `ingredient "Name|Qty|Unit|Note" (repeatable)`)
	cmd.Flags().StringArrayVar(&draftSteps, "step", nil, `step text, "@seconds" suffix adds a timer (repeatable)`)
}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a recipe from flags or a JSON draft file",
	Long:  "Creates a recipe.\n\n" + draftFlagsHelp,
	Args:  cobra.NoArgs,
	RunE:  runNew,
}

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an existing recipe",
	Long: `Loads the recipe into a draft, applies the given flags, and saves.
Creation time, favorite status, and images are preserved.

` + draftFlagsHelp,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	addDraftFlags(newCmd)
	addDraftFlags(editCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(editCmd)
}

func runNew(cmd *cobra.Command, _ []string) error {
	if err := requireStore(); err != nil {
		return err
	}
	ctrl := newForm()
	return applyAndCommit(cmd, ctrl, "Created")
}

func runEdit(cmd *cobra.Command, args []string) error {
	if err := requireStore(); err != nil {
		return err
	}
	ctrl := newForm()
	if _, err := ctrl.LoadForEdit(context.Background(), args[0]); err != nil {
		return fmt.Errorf("loading recipe %s: %w", args[0], err)
	}
	return applyAndCommit(cmd, ctrl, "Updated")
}

func applyAndCommit(cmd *cobra.Command, ctrl *form.Controller, verb string) error {
	if err := applyDraftFlags(cmd, ctrl); err != nil {
		return err
	}
	recipe, err := ctrl.Commit(context.Background())
	if err != nil {
		return fmt.Errorf("saving recipe: %w", err)
	}
	cmd.Printf("%s %s (%s, %d min)\n", verb, recipe.Title, recipe.ID, recipe.TotalMin)
	return nil
}

// applyDraftFlags layers the draft file and then each set flag onto the
// controller's draft. Unset flags leave the loaded values alone.
func applyDraftFlags(cmd *cobra.Command, ctrl *form.Controller) error {
	if draftFile != "" {
		data, err := os.ReadFile(draftFile)
		if err != nil {
			return fmt.Errorf("reading draft file: %w", err)
		}
		// Preserve the identity of a recipe loaded for editing; the
		// file supplies content, not identity.
		id := ctrl.Draft().ID
		var d domain.RecipeDraft
		if err := json.Unmarshal(data, &d); err != nil {
			return fmt.Errorf("parsing draft file: %w", err)
		}
		d.ID = id
		ctrl.SetDraft(d)
	}

	flags := cmd.Flags()
	if flags.Changed("title") {
		ctrl.SetTitle(draftTitle)
	}
	if flags.Changed("servings") {
		ctrl.SetServings(draftServings)
	}
	if flags.Changed("prep") || flags.Changed("cook") {
		d := ctrl.Draft()
		prep, cook := intPtrOr(d.PrepMin, 0), intPtrOr(d.CookMin, 0)
		if flags.Changed("prep") {
			prep = draftPrep
		}
		if flags.Changed("cook") {
			cook = draftCook
		}
		ctrl.SetTimes(prep, cook)
	}
	if flags.Changed("description") || flags.Changed("memo") || flags.Changed("tag") {
		d := ctrl.Draft()
		if flags.Changed("description") {
			desc := draftDescription
			d.Description = &desc
		}
		if flags.Changed("memo") {
			memo := draftMemo
			d.Memo = &memo
		}
		if flags.Changed("tag") {
			d.Tags = append([]string(nil), draftTags...)
		}
		ctrl.SetDraft(d)
	}

	if flags.Changed("ingredient") {
		d := ctrl.Draft()
		d.Ingredients = nil
		ctrl.SetDraft(d)
		for _, raw := range draftIngredients {
			i := ctrl.AddIngredient()
			ing := parseIngredient(raw)
			ctrl.UpdateIngredient(i, form.FieldName, ing.Name)
			ctrl.UpdateIngredient(i, form.FieldQuantity, ing.Quantity)
			ctrl.UpdateIngredient(i, form.FieldUnit, ing.Unit)
			ctrl.UpdateIngredient(i, form.FieldNote, ing.Note)
		}
	}
	if flags.Changed("step") {
		d := ctrl.Draft()
		d.Steps = nil
		ctrl.SetDraft(d)
		for _, raw := range draftSteps {
			text, sec := parseStep(raw)
			i := ctrl.AddStep()
			ctrl.UpdateStepText(i, text)
			if sec > 0 {
				ctrl.UpdateStepTimer(i, sec)
			}
		}
	}
	return nil
}

func parseIngredient(raw string) domain.Ingredient {
	parts := strings.SplitN(raw, "|", 4)
	var ing domain.Ingredient
	ing.Name = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		ing.Quantity = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		ing.Unit = strings.TrimSpace(parts[2])
	}
	if len(parts) > 3 {
		ing.Note = strings.TrimSpace(parts[3])
	}
	return ing
}

// parseStep splits "Simmer gently @180" into text and timer seconds.
// A trailing @token that is not a number stays part of the text.
func parseStep(raw string) (string, int) {
	at := strings.LastIndex(raw, "@")
	if at < 0 {
		return strings.TrimSpace(raw), 0
	}
	sec, err := strconv.Atoi(strings.TrimSpace(raw[at+1:]))
	if err != nil || sec <= 0 {
		return strings.TrimSpace(raw), 0
	}
	return strings.TrimSpace(raw[:at]), sec
}

func intPtrOr(p *int, fallback int) int {
	if p != nil {
		return *p
	}
	return fallback
}

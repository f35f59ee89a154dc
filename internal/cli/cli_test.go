package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"flashrecipe/internal/domain"
	"flashrecipe/internal/logger"
	"flashrecipe/internal/storage"
)

// setupCLI wires the commands against in-memory storage and returns a
// runner that captures output. The store is seeded with the sample
// recipes on first use.
func setupCLI(t *testing.T) (*storage.RecipeStore, *storage.DraftStash, func(args ...string) (string, error)) {
	t.Helper()

	log := logger.New(logger.LevelOff, nil)
	store := storage.NewRecipeStore(storage.NewMemoryKV(), log)
	stash := storage.NewDraftStash(storage.NewMemoryKV(), log)
	Setup(Services{Store: store, Stash: stash, Log: log})

	exec := func(args ...string) (string, error) {
		buf := new(bytes.Buffer)
		rootCmd.SetOut(buf)
		rootCmd.SetErr(buf)
		rootCmd.SetArgs(args)
		defer rootCmd.SetArgs(nil)
		err := rootCmd.Execute()
		return buf.String(), err
	}
	return store, stash, exec
}

func TestListFiltersByQuery(t *testing.T) {
	_, _, exec := setupCLI(t)

	out, err := exec("list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "Speedy Keema Curry") || !strings.Contains(out, "Refreshing Cucumber Salad") {
		t.Errorf("list output missing seeded recipes:\n%s", out)
	}

	out, err = exec("list", "keema")
	if err != nil {
		t.Fatalf("list keema: %v", err)
	}
	if !strings.Contains(out, "Speedy Keema Curry") || strings.Contains(out, "Cucumber") {
		t.Errorf("query should keep only the curry:\n%s", out)
	}

	out, err = exec("list", "no-such-dish")
	if err != nil {
		t.Fatalf("list no-such-dish: %v", err)
	}
	if !strings.Contains(out, "No recipes found.") {
		t.Errorf("expected empty-result message, got:\n%s", out)
	}
}

func TestShowUnknownRecipe(t *testing.T) {
	_, _, exec := setupCLI(t)

	_, err := exec("show", "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestShowRendersStepsAndTimers(t *testing.T) {
	_, _, exec := setupCLI(t)

	out, err := exec("show", "1")
	if err != nil {
		t.Fatalf("show 1: %v", err)
	}
	for _, want := range []string{"Speedy Keema Curry", "Serves 2", "Ingredients:", "Steps:", "[timer 3m0s]"} {
		if !strings.Contains(out, want) {
			t.Errorf("show output missing %q:\n%s", want, out)
		}
	}
}

func TestNewCreatesRecipe(t *testing.T) {
	store, _, exec := setupCLI(t)

	out, err := exec("new",
		"--title", "Miso Soup",
		"--servings", "3",
		"--prep", "5",
		"--cook", "10",
		"--ingredient", "Tofu|150|g",
		"--ingredient", "Miso|2|tbsp|white miso",
		"--step", "Bring dashi to a simmer",
		"--step", "Add tofu and simmer @180",
	)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if !strings.Contains(out, "Created Miso Soup") {
		t.Errorf("unexpected output: %s", out)
	}

	recipes, err := store.List(context.Background(), "miso")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(recipes) != 1 {
		t.Fatalf("expected 1 miso recipe, got %d", len(recipes))
	}
	r := recipes[0]
	if r.TotalMin != 15 {
		t.Errorf("TotalMin = %d, want 15", r.TotalMin)
	}
	if len(r.Ingredients) != 2 || r.Ingredients[1].Note != "white miso" {
		t.Errorf("ingredients not parsed: %+v", r.Ingredients)
	}
	if len(r.Steps) != 2 || r.Steps[1].TimerSec == nil || *r.Steps[1].TimerSec != 180 {
		t.Errorf("step timer not parsed: %+v", r.Steps)
	}
}

func TestFavoriteToggles(t *testing.T) {
	store, _, exec := setupCLI(t)

	// Recipe 2 is seeded as not-favorite.
	out, err := exec("favorite", "2")
	if err != nil {
		t.Fatalf("favorite: %v", err)
	}
	if !strings.Contains(out, "★") {
		t.Errorf("expected favorite marker in output: %s", out)
	}

	if _, err := exec("favorite", "2"); err != nil {
		t.Fatalf("favorite again: %v", err)
	}
	r, err := store.Get(context.Background(), "2")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if r.IsFavorite {
		t.Error("double toggle should end not-favorite")
	}
}

func TestShareAssignsStableSlug(t *testing.T) {
	store, _, exec := setupCLI(t)

	if _, err := exec("share", "1"); err != nil {
		t.Fatalf("share: %v", err)
	}
	r, err := store.Get(context.Background(), "1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if r.ShareSlug == nil {
		t.Fatal("share should assign a slug")
	}
	if r.Visibility != domain.VisibilityUnlisted {
		t.Errorf("Visibility = %s, want unlisted", r.Visibility)
	}
	first := *r.ShareSlug

	if _, err := exec("share", "1"); err != nil {
		t.Fatalf("share again: %v", err)
	}
	r, _ = store.Get(context.Background(), "1")
	if *r.ShareSlug != first {
		t.Error("second share should reuse the slug")
	}
}

func TestVisibilityPrivateRevokesSlug(t *testing.T) {
	store, _, exec := setupCLI(t)

	if _, err := exec("share", "1"); err != nil {
		t.Fatalf("share: %v", err)
	}
	if _, err := exec("visibility", "1", "private"); err != nil {
		t.Fatalf("visibility: %v", err)
	}

	r, err := store.Get(context.Background(), "1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if r.Visibility != domain.VisibilityPrivate || r.ShareSlug != nil {
		t.Errorf("private should revoke the slug: visibility=%s slug=%v", r.Visibility, r.ShareSlug)
	}

	if _, err := exec("visibility", "1", "everyone"); err == nil {
		t.Error("unknown visibility level should error")
	}
}

func TestDeleteRemovesRecipe(t *testing.T) {
	store, _, exec := setupCLI(t)

	if _, err := exec("delete", "2"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(context.Background(), "2"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestExportJSON(t *testing.T) {
	_, _, exec := setupCLI(t)

	out, err := exec("export", "2", "--format", "json")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(out, `"title": "Refreshing Cucumber Salad"`) {
		t.Errorf("json export missing title:\n%s", out)
	}

	if _, err := exec("export", "2", "--format", "toml"); err == nil {
		t.Error("unknown format should error")
	}
}

func TestReviewSavesStashedDraft(t *testing.T) {
	store, stash, exec := setupCLI(t)

	servings := 4
	err := stash.Put(context.Background(), domain.RecipeDraft{
		Title:    "Stashed Stew",
		Servings: &servings,
	})
	if err != nil {
		t.Fatalf("Put: %v", err)
	}

	out, err := exec("review")
	if err != nil {
		t.Fatalf("review: %v", err)
	}
	if !strings.Contains(out, "Saved Stashed Stew") {
		t.Errorf("unexpected output: %s", out)
	}

	recipes, err := store.List(context.Background(), "stashed")
	if err != nil || len(recipes) != 1 {
		t.Fatalf("stew not saved: %v %d", err, len(recipes))
	}
	if recipes[0].Servings != 4 {
		t.Errorf("Servings = %d, want 4", recipes[0].Servings)
	}

	// The stash is one-shot.
	if _, err := exec("review"); err == nil {
		t.Error("second review should report an empty stash")
	}
}

func TestImportRequiresConfiguration(t *testing.T) {
	_, _, exec := setupCLI(t)

	_, err := exec("import", "some recipe text")
	if err == nil || !strings.Contains(err.Error(), "AI_API_KEY") {
		t.Fatalf("expected configuration hint, got %v", err)
	}
}

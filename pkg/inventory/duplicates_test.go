package inventory

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"Pantry-Planner-Backend/domain"
	"Pantry-Planner-Backend/entities"
)

func TestCheckDuplicates(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	repo := newFakeInventoryRepository()
	svc := newTestInventoryService(repo)

	seedItem(repo, userID, "Milk", 1, "l", func(i *entities.InventoryItem) {
		i.Category = "Dairy & Eggs"
		i.StorageLocation = entities.LocationFridge
	})
	seedItem(repo, userID, "Oat Milk", 1, "l", nil)
	seedItem(repo, userID, "Flour", 500, "g", nil)
	seedItem(repo, userID, "Old Milk", 1, "l", func(i *entities.InventoryItem) { i.IsActive = false })

	t.Run("exact match short-circuits", func(t *testing.T) {
		res, err := svc.CheckDuplicates(ctx, userID.String(), domain.CheckDuplicatesRequest{Name: "  milk "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.MatchType != domain.MatchTypeExact || !res.IsDuplicate {
			t.Fatalf("MatchType = %q, want exact", res.MatchType)
		}
		if res.Confidence != domain.ConfidenceHigh {
			t.Fatalf("Confidence = %q, want high", res.Confidence)
		}
		if len(res.Matches) != 1 || res.Matches[0].Name != "Milk" {
			t.Fatalf("unexpected matches: %+v", res.Matches)
		}
	})

	t.Run("unrelated names yield none", func(t *testing.T) {
		res, err := svc.CheckDuplicates(ctx, userID.String(), domain.CheckDuplicatesRequest{Name: "Saffron"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.MatchType != domain.MatchTypeNone || res.IsDuplicate {
			t.Fatalf("MatchType = %q, want none", res.MatchType)
		}
	})

	t.Run("category and location boosts lift a borderline score", func(t *testing.T) {
		// "Whole Milk" scores 0.4 against "Milk" by containment and 0.5
		// against "Oat Milk" by token overlap; the category and location
		// boosts (+0.15) put "Milk" on top at 0.55.
		threshold := 0.4
		res, err := svc.CheckDuplicates(ctx, userID.String(), domain.CheckDuplicatesRequest{
			Name:            "Whole Milk",
			Category:        "dairy & eggs",
			StorageLocation: "fridge",
			Threshold:       &threshold,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.MatchType != domain.MatchTypeSimilar {
			t.Fatalf("MatchType = %q, want similar", res.MatchType)
		}
		if res.Matches[0].Name != "Milk" {
			t.Fatalf("top match = %q, want boosted Milk", res.Matches[0].Name)
		}
		if res.Confidence != domain.ConfidenceMedium {
			t.Fatalf("Confidence = %q, want medium", res.Confidence)
		}
	})

	t.Run("inactive items are ignored", func(t *testing.T) {
		res, err := svc.CheckDuplicates(ctx, userID.String(), domain.CheckDuplicatesRequest{Name: "Old Milk"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.MatchType == domain.MatchTypeExact {
			t.Fatal("inactive row must not produce an exact match")
		}
	})

	t.Run("empty name rejected", func(t *testing.T) {
		if _, err := svc.CheckDuplicates(ctx, userID.String(), domain.CheckDuplicatesRequest{Name: " "}); err != domain.ErrEmptyItemName {
			t.Fatalf("expected ErrEmptyItemName, got %v", err)
		}
	})
}

func TestFindBestMatchForMerge(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	repo := newFakeInventoryRepository()
	svc := newTestInventoryService(repo)

	seedItem(repo, userID, "Cherry Tomatoes", 250, "g", nil)
	seedItem(repo, userID, "Flour", 500, "g", nil)

	t.Run("exact target", func(t *testing.T) {
		match, err := svc.FindBestMatchForMerge(ctx, userID.String(), "cherry tomato")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if match == nil || match.Name != "Cherry Tomatoes" {
			t.Fatalf("match = %+v, want Cherry Tomatoes", match)
		}
	})

	t.Run("below strict threshold", func(t *testing.T) {
		// "Tomato Puree" vs "Cherry Tomatoes": token overlap 1/2 = 0.5,
		// under the 0.8 merge threshold.
		match, err := svc.FindBestMatchForMerge(ctx, userID.String(), "Tomato Puree")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if match != nil {
			t.Fatalf("expected no merge target, got %+v", match)
		}
	})
}

func TestSuggestMergedQuantity(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	repo := newFakeInventoryRepository()
	svc := newTestInventoryService(repo)

	seedItem(repo, userID, "Cherry Tomatoes", 250, "g", nil)

	t.Run("identical units sum", func(t *testing.T) {
		got, err := svc.SuggestMergedQuantity(ctx, userID.String(), "cherry tomatoes", 100, "grams")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.CanMerge || got.MergedQuantity != 350 || got.Unit != "g" {
			t.Fatalf("unexpected suggestion: %+v", got)
		}
	})

	t.Run("different units never merge", func(t *testing.T) {
		got, err := svc.SuggestMergedQuantity(ctx, userID.String(), "cherry tomatoes", 1, "pack")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.CanMerge {
			t.Fatal("cross-unit merge must not be suggested")
		}
	})

	t.Run("negative quantity rejected", func(t *testing.T) {
		if _, err := svc.SuggestMergedQuantity(ctx, userID.String(), "cherry tomatoes", -1, "g"); err != domain.ErrInvalidQuantity {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})
}

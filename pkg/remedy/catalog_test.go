package remedy

import (
	"testing"

	"github.com/systune/systune/pkg/model"
)

func TestMatchByCategory(t *testing.T) {
	tests := []struct {
		category string
		wantID   string
	}{
		{"swap", "add-swap"},
		{"swappiness", "lower-swappiness"},
		{"journal", "journal-vacuum"},
		{"trim", "enable-fstrim"},
	}

	for _, tc := range tests {
		action, ok := Match(model.Suggestion{Category: tc.category})
		if !ok || action.ID != tc.wantID {
			t.Fatalf("Match(category=%q) = %q, %v; want %q", tc.category, action.ID, ok, tc.wantID)
		}
	}
}

func TestMatchByKeyword(t *testing.T) {
	tests := []struct {
		action string
		wantID string
	}{
		{"Add a 2G swap file to avoid OOM kills", "add-swap"},
		{"Lower vm.swappiness to reduce paging", "lower-swappiness"},
		{"Run journalctl --vacuum-size to reclaim disk", "journal-vacuum"},
		{"Enable the fstrim timer for your SSD", "enable-fstrim"},
	}

	for _, tc := range tests {
		action, ok := Match(model.Suggestion{Action: tc.action})
		if !ok || action.ID != tc.wantID {
			t.Fatalf("Match(%q) = %q, %v; want %q", tc.action, action.ID, ok, tc.wantID)
		}
	}
}

func TestMatchUnrecognizedSuggestion(t *testing.T) {
	if _, ok := Match(model.Suggestion{Action: "Upgrade your BIOS firmware"}); ok {
		t.Fatal("unrecognized suggestion should not match a catalog action")
	}
}

func TestMatchUnknownCategoryFallsBackToKeywords(t *testing.T) {
	action, ok := Match(model.Suggestion{Category: "other", Action: "add swap space"})
	if !ok || action.ID != "add-swap" {
		t.Fatalf("Match = %q, %v; want add-swap via keyword fallback", action.ID, ok)
	}
}

func TestCatalogIsCopied(t *testing.T) {
	actions := Catalog()
	actions[0].ID = "mutated"
	if Catalog()[0].ID == "mutated" {
		t.Fatal("Catalog must return a copy")
	}
}

package service

import (
	"testing"

	"github.com/mmynk/billsplit/internal/models"
)

func TestToBillView_LargeIDs(t *testing.T) {
	const big = 1<<40 + 7

	view := toBillView(&models.Session{
		ID: "s",
		Bill: models.Bill{
			Categories:     []models.Category{{ID: big, Name: "Dinner", Amount: "10"}},
			People:         []models.Person{{ID: big, Name: "A", Participation: []bool{true}}},
			LastCategoryID: big,
			LastPersonID:   big,
		},
	})

	if view.Categories[0].ID != big || view.People[0].ID != big || view.CategoryTotals[0].CategoryID != big {
		t.Errorf("ids truncated: %+v", view)
	}
	if view.LastCategoryID != big || view.LastPersonID != big {
		t.Errorf("counters = %d/%d, want %d", view.LastCategoryID, view.LastPersonID, big)
	}
	if view.People[0].TotalDisplay != "€10.00" {
		t.Errorf("total display = %q", view.People[0].TotalDisplay)
	}
}

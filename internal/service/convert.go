package service

import (
	"github.com/mmynk/billsplit/internal/calculator"
	"github.com/mmynk/billsplit/internal/models"
	"github.com/mmynk/billsplit/pkg/api"
)

// toBillView converts a session into its wire form with every derived figure
// computed from the current bill.
func toBillView(session *models.Session) *api.BillView {
	b := session.Bill
	summary := calculator.Summarize(b)

	view := &api.BillView{
		SessionID:          session.ID,
		Categories:         make([]api.Category, len(b.Categories)),
		People:             make([]api.Person, len(b.People)),
		CategoryTotals:     make([]api.CategoryTotal, len(summary.Categories)),
		GrandTotal:         summary.GrandTotal,
		GrandTotalDisplay:  calculator.FormatMoney(summary.GrandTotal),
		Unallocated:        summary.Unallocated,
		UnallocatedDisplay: calculator.FormatMoney(summary.Unallocated),
		LastCategoryID:     int64(b.LastCategoryID),
		LastPersonID:       int64(b.LastPersonID),
	}

	for i, c := range b.Categories {
		view.Categories[i] = api.Category{
			ID:     int64(c.ID),
			Name:   c.Name,
			Amount: c.Amount,
		}
	}

	for i, p := range b.People {
		total := summary.People[i].Total
		view.People[i] = api.Person{
			ID:            int64(p.ID),
			Name:          p.Name,
			Participation: append([]bool{}, p.Participation...),
			Total:         total,
			TotalDisplay:  calculator.FormatMoney(total),
		}
	}

	for i, c := range summary.Categories {
		view.CategoryTotals[i] = api.CategoryTotal{
			CategoryID:    int64(c.CategoryID),
			Amount:        c.Amount,
			AmountDisplay: calculator.FormatMoney(c.Amount),
			Participants:  int64(c.Participants),
		}
	}

	return view
}

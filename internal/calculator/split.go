package calculator

import (
	"github.com/mmynk/billsplit/internal/models"
)

// PersonSplit is one person's share of the bill.
type PersonSplit struct {
	PersonID int
	Name     string
	Total    float64
}

// CategoryTotal is the parsed amount of one category and how many people share it.
type CategoryTotal struct {
	CategoryID   int
	Name         string
	Amount       float64
	Participants int
}

// Summary is everything the split table displays besides the editable cells.
type Summary struct {
	// People holds one split per person, in row order.
	People []PersonSplit

	// Categories holds one total per category, in column order.
	Categories []CategoryTotal

	// GrandTotal is the sum of all category amounts, ignoring participation.
	GrandTotal float64

	// Unallocated is the part of GrandTotal that nobody shares: the sum of
	// categories with no participants.
	Unallocated float64
}

// Participants counts the people sharing the category at index.
func Participants(b models.Bill, index int) int {
	n := 0
	for _, p := range b.People {
		if index >= 0 && index < len(p.Participation) && p.Participation[index] {
			n++
		}
	}
	return n
}

// PersonTotal computes what one person owes: for every category they take
// part in, the category amount divided evenly among its participants.
// An unknown person owes 0.
func PersonTotal(b models.Bill, personID int) float64 {
	idx := b.PersonIndex(personID)
	if idx < 0 {
		return 0
	}
	person := b.People[idx]

	total := 0.0
	for i, category := range b.Categories {
		if i >= len(person.Participation) || !person.Participation[i] {
			continue
		}
		// The person is one of the participants, so count >= 1.
		count := Participants(b, i)
		total = Saturate(total + ParseAmount(category.Amount)/float64(count))
	}
	return total
}

// CategoryAmount returns the numeric value of a category's amount text.
func CategoryAmount(c models.Category) float64 {
	return ParseAmount(c.Amount)
}

// GrandTotal sums every category amount regardless of participation.
// A sum past the float64 range saturates at ±math.MaxFloat64.
func GrandTotal(b models.Bill) float64 {
	total := 0.0
	for _, c := range b.Categories {
		total = Saturate(total + CategoryAmount(c))
	}
	return total
}

// Summarize computes all derived figures of the bill in one pass over the table.
func Summarize(b models.Bill) Summary {
	counts := make([]int, len(b.Categories))
	amounts := make([]float64, len(b.Categories))
	for i, c := range b.Categories {
		amounts[i] = CategoryAmount(c)
		counts[i] = Participants(b, i)
	}

	s := Summary{
		People:     make([]PersonSplit, 0, len(b.People)),
		Categories: make([]CategoryTotal, 0, len(b.Categories)),
	}

	for i, c := range b.Categories {
		s.Categories = append(s.Categories, CategoryTotal{
			CategoryID:   c.ID,
			Name:         c.Name,
			Amount:       amounts[i],
			Participants: counts[i],
		})
		s.GrandTotal = Saturate(s.GrandTotal + amounts[i])
		if counts[i] == 0 {
			s.Unallocated = Saturate(s.Unallocated + amounts[i])
		}
	}

	for _, p := range b.People {
		total := 0.0
		for i := range b.Categories {
			if i < len(p.Participation) && p.Participation[i] {
				total = Saturate(total + amounts[i]/float64(counts[i]))
			}
		}
		s.People = append(s.People, PersonSplit{
			PersonID: p.ID,
			Name:     p.Name,
			Total:    total,
		})
	}

	return s
}

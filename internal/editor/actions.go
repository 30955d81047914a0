package editor

import (
	"fmt"

	"github.com/mmynk/billsplit/internal/models"
)

// Action is one edit of the split table. The set of actions is closed:
// only the types in this file implement it.
type Action interface {
	// Kind is a stable, lower-case identifier used in logs and metrics.
	Kind() string

	apply(b *models.Bill)
}

// AddCategory appends a new category with a default name and an empty amount.
type AddCategory struct{}

// RemoveCategory removes a category and its participation column.
type RemoveCategory struct {
	ID int
}

// RenameCategory changes a category's name.
type RenameCategory struct {
	ID   int
	Name string
}

// SetCategoryAmount replaces a category's amount text. The text is stored as
// typed; it is not validated.
type SetCategoryAmount struct {
	ID     int
	Amount string
}

// AddPerson appends a new person who participates in nothing.
type AddPerson struct{}

// RemovePerson removes a person.
type RemovePerson struct {
	ID int
}

// RenamePerson changes a person's name.
type RenamePerson struct {
	ID   int
	Name string
}

// SetParticipation sets whether a person shares the category at CategoryIndex.
type SetParticipation struct {
	PersonID      int
	CategoryIndex int
	Participating bool
}

func (AddCategory) Kind() string       { return "add_category" }
func (RemoveCategory) Kind() string    { return "remove_category" }
func (RenameCategory) Kind() string    { return "rename_category" }
func (SetCategoryAmount) Kind() string { return "set_category_amount" }
func (AddPerson) Kind() string         { return "add_person" }
func (RemovePerson) Kind() string      { return "remove_person" }
func (RenamePerson) Kind() string      { return "rename_person" }
func (SetParticipation) Kind() string  { return "set_participation" }

func (AddCategory) apply(b *models.Bill) {
	b.LastCategoryID++
	id := b.LastCategoryID
	b.Categories = append(b.Categories, models.Category{
		ID:   id,
		Name: fmt.Sprintf("Category %d", id),
	})
	for i := range b.People {
		b.People[i].Participation = append(b.People[i].Participation, false)
	}
}

func (a RemoveCategory) apply(b *models.Bill) {
	// The column index is captured before anything is filtered.
	idx := b.CategoryIndex(a.ID)
	if idx < 0 {
		return
	}
	b.Categories = append(b.Categories[:idx], b.Categories[idx+1:]...)
	for i := range b.People {
		p := b.People[i].Participation
		if idx < len(p) {
			b.People[i].Participation = append(p[:idx], p[idx+1:]...)
		}
	}
}

func (a RenameCategory) apply(b *models.Bill) {
	if idx := b.CategoryIndex(a.ID); idx >= 0 {
		b.Categories[idx].Name = a.Name
	}
}

func (a SetCategoryAmount) apply(b *models.Bill) {
	if idx := b.CategoryIndex(a.ID); idx >= 0 {
		b.Categories[idx].Amount = a.Amount
	}
}

func (AddPerson) apply(b *models.Bill) {
	b.LastPersonID++
	id := b.LastPersonID
	b.People = append(b.People, models.Person{
		ID:            id,
		Name:          fmt.Sprintf("Person %d", id),
		Participation: make([]bool, len(b.Categories)),
	})
}

func (a RemovePerson) apply(b *models.Bill) {
	if idx := b.PersonIndex(a.ID); idx >= 0 {
		b.People = append(b.People[:idx], b.People[idx+1:]...)
	}
}

func (a RenamePerson) apply(b *models.Bill) {
	if idx := b.PersonIndex(a.ID); idx >= 0 {
		b.People[idx].Name = a.Name
	}
}

func (a SetParticipation) apply(b *models.Bill) {
	idx := b.PersonIndex(a.PersonID)
	if idx < 0 {
		return
	}
	p := b.People[idx].Participation
	if a.CategoryIndex < 0 || a.CategoryIndex >= len(p) {
		return
	}
	p[a.CategoryIndex] = a.Participating
}

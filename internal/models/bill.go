package models

// Category is a shared expense line (a column of the split table).
type Category struct {
	// ID identifies the category within its bill. IDs are never reused,
	// even after the category is removed.
	ID int

	// Name is the label shown in the column header (e.g., "Dinner").
	Name string

	// Amount is the category total exactly as typed. It is kept as text and
	// only coerced to a number by the calculator; non-numeric text counts as 0.
	Amount string
}

// Person is a participant (a row of the split table).
type Person struct {
	// ID identifies the person within its bill. IDs are never reused.
	ID int

	// Name is the label shown at the start of the row (e.g., "Person 1").
	Name string

	// Participation holds one flag per category, in category order.
	// Participation[i] refers to Categories[i] of the owning bill by position.
	Participation []bool
}

// Bill is the whole calculator state: the categories and the people sharing them.
//
// For every person, len(Participation) == len(Categories). The editor package
// is the only code that changes a Bill and it keeps this invariant.
type Bill struct {
	Categories []Category
	People     []Person

	// LastCategoryID and LastPersonID are the highest IDs handed out so far.
	// New IDs are LastXID+1, so removing and re-adding never collides.
	LastCategoryID int
	LastPersonID   int
}

// Clone returns a deep copy of the bill. The copy shares no slices with b.
func (b Bill) Clone() Bill {
	out := Bill{
		LastCategoryID: b.LastCategoryID,
		LastPersonID:   b.LastPersonID,
	}
	if b.Categories != nil {
		out.Categories = make([]Category, len(b.Categories))
		copy(out.Categories, b.Categories)
	}
	if b.People != nil {
		out.People = make([]Person, len(b.People))
		for i, p := range b.People {
			out.People[i] = p
			out.People[i].Participation = append([]bool(nil), p.Participation...)
		}
	}
	return out
}

// CategoryIndex returns the position of the category with the given ID, or -1.
func (b Bill) CategoryIndex(id int) int {
	for i, c := range b.Categories {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// PersonIndex returns the position of the person with the given ID, or -1.
func (b Bill) PersonIndex(id int) int {
	for i, p := range b.People {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Consistent reports whether every person carries exactly one participation
// flag per category.
func (b Bill) Consistent() bool {
	for _, p := range b.People {
		if len(p.Participation) != len(b.Categories) {
			return false
		}
	}
	return true
}

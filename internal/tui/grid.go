package tui

import (
	"github.com/mmynk/billsplit/internal/calculator"
	"github.com/mmynk/billsplit/internal/editor"
	"github.com/mmynk/billsplit/internal/models"
)

// CellKind says what a table cell shows and what selecting it does.
type CellKind int

const (
	CellBlank CellKind = iota
	CellHeader
	CellCategoryName
	CellCategoryAmount
	CellRemoveCategory
	CellAddCategory
	CellPersonName
	CellRemovePerson
	CellParticipation
	CellAddPerson
	CellTotal
)

// Fixed rows and columns of the split table.
const (
	headerRows = 3

	colName      = 0
	colRemove    = 1
	firstCatCol  = 2
	checkedBox   = "[x]"
	uncheckedBox = "[ ]"
	removeMark   = "✕"
)

// Cell is one rendered table cell together with what it targets.
type Cell struct {
	Kind CellKind
	Text string

	CategoryID    int
	CategoryIndex int
	PersonID      int
	Checked       bool

	// Value is the raw editable text for name and amount cells.
	Value string
}

// Selectable reports whether selecting the cell does anything.
func (c Cell) Selectable() bool {
	switch c.Kind {
	case CellBlank, CellHeader, CellTotal:
		return false
	}
	return true
}

// Edit describes a text field opened by selecting a name or amount cell.
type Edit struct {
	Title string
	Label string
	Value string

	// Commit turns the field's current text into the action that stores it.
	Commit func(text string) editor.Action
}

// Activate returns what selecting the cell does: either an action to
// dispatch right away or a text field to open. Both are nil for inert cells.
func (c Cell) Activate() (editor.Action, *Edit) {
	switch c.Kind {
	case CellAddCategory:
		return editor.AddCategory{}, nil
	case CellAddPerson:
		return editor.AddPerson{}, nil
	case CellRemoveCategory:
		return editor.RemoveCategory{ID: c.CategoryID}, nil
	case CellRemovePerson:
		return editor.RemovePerson{ID: c.PersonID}, nil
	case CellParticipation:
		return editor.SetParticipation{
			PersonID:      c.PersonID,
			CategoryIndex: c.CategoryIndex,
			Participating: !c.Checked,
		}, nil
	case CellCategoryName:
		id := c.CategoryID
		return nil, &Edit{
			Title: "Category",
			Label: "Name",
			Value: c.Value,
			Commit: func(text string) editor.Action {
				return editor.RenameCategory{ID: id, Name: text}
			},
		}
	case CellCategoryAmount:
		id := c.CategoryID
		return nil, &Edit{
			Title: "Category",
			Label: "Amount",
			Value: c.Value,
			Commit: func(text string) editor.Action {
				return editor.SetCategoryAmount{ID: id, Amount: text}
			},
		}
	case CellPersonName:
		id := c.PersonID
		return nil, &Edit{
			Title: "Person",
			Label: "Name",
			Value: c.Value,
			Commit: func(text string) editor.Action {
				return editor.RenamePerson{ID: id, Name: text}
			},
		}
	}
	return nil, nil
}

// Grid is the split table laid out as rows of cells.
type Grid struct {
	Rows [][]Cell
}

// At returns the cell at row, col, or a blank cell outside the grid.
func (g Grid) At(row, col int) Cell {
	if row < 0 || row >= len(g.Rows) || col < 0 || col >= len(g.Rows[row]) {
		return Cell{}
	}
	return g.Rows[row][col]
}

// Width is the number of columns.
func (g Grid) Width() int {
	if len(g.Rows) == 0 {
		return 0
	}
	return len(g.Rows[0])
}

// Layout renders a bill as the split table:
//
//	Person | [cat name]...  | + Add Category | Total
//	       | [cat amount]...|                |
//	       | ✕ ...          |                |
//	name ✕ | [x]/[ ] ...    |                | €share
//	+ Add Person | €cat ... |                | €grand
func Layout(b models.Bill) Grid {
	summary := calculator.Summarize(b)
	n := len(b.Categories)
	addCol := firstCatCol + n
	totalCol := addCol + 1
	width := totalCol + 1

	newRow := func() []Cell { return make([]Cell, width) }
	var rows [][]Cell

	names := newRow()
	names[colName] = Cell{Kind: CellHeader, Text: "Person"}
	names[addCol] = Cell{Kind: CellAddCategory, Text: "+ Add Category"}
	names[totalCol] = Cell{Kind: CellHeader, Text: "Total"}
	amounts := newRow()
	remove := newRow()
	for i, c := range b.Categories {
		col := firstCatCol + i
		names[col] = Cell{Kind: CellCategoryName, Text: c.Name, Value: c.Name, CategoryID: c.ID, CategoryIndex: i}
		amountText := c.Amount
		if amountText == "" {
			amountText = "0"
		}
		amounts[col] = Cell{Kind: CellCategoryAmount, Text: amountText, Value: c.Amount, CategoryID: c.ID, CategoryIndex: i}
		remove[col] = Cell{Kind: CellRemoveCategory, Text: removeMark, CategoryID: c.ID, CategoryIndex: i}
	}
	rows = append(rows, names, amounts, remove)

	for pi, p := range b.People {
		row := newRow()
		row[colName] = Cell{Kind: CellPersonName, Text: p.Name, Value: p.Name, PersonID: p.ID}
		row[colRemove] = Cell{Kind: CellRemovePerson, Text: removeMark, PersonID: p.ID}
		for i, c := range b.Categories {
			checked := i < len(p.Participation) && p.Participation[i]
			text := uncheckedBox
			if checked {
				text = checkedBox
			}
			row[firstCatCol+i] = Cell{
				Kind:          CellParticipation,
				Text:          text,
				PersonID:      p.ID,
				CategoryID:    c.ID,
				CategoryIndex: i,
				Checked:       checked,
			}
		}
		row[totalCol] = Cell{Kind: CellTotal, Text: calculator.FormatMoney(summary.People[pi].Total), PersonID: p.ID}
		rows = append(rows, row)
	}

	footer := newRow()
	footer[colName] = Cell{Kind: CellAddPerson, Text: "+ Add Person"}
	for i, c := range summary.Categories {
		footer[firstCatCol+i] = Cell{Kind: CellTotal, Text: calculator.FormatMoney(c.Amount), CategoryID: c.CategoryID, CategoryIndex: i}
	}
	footer[totalCol] = Cell{Kind: CellTotal, Text: calculator.FormatMoney(summary.GrandTotal)}
	rows = append(rows, footer)

	return Grid{Rows: rows}
}

// StatusLine summarizes the bill for the line under the table.
func StatusLine(b models.Bill) string {
	s := calculator.Summarize(b)
	line := "Grand total " + calculator.FormatMoney(s.GrandTotal)
	if s.Unallocated != 0 {
		line += "  |  not shared by anyone " + calculator.FormatMoney(s.Unallocated)
	}
	return line
}

package tui

import (
	"testing"

	"github.com/mmynk/billsplit/internal/editor"
	"github.com/mmynk/billsplit/internal/models"
)

func dinner() models.Bill {
	return editor.ApplyAll(models.Bill{},
		editor.AddCategory{},
		editor.RenameCategory{ID: 1, Name: "Dinner"},
		editor.SetCategoryAmount{ID: 1, Amount: "90"},
		editor.AddCategory{},
		editor.AddPerson{}, editor.AddPerson{}, editor.AddPerson{},
		editor.SetParticipation{PersonID: 1, CategoryIndex: 0, Participating: true},
		editor.SetParticipation{PersonID: 2, CategoryIndex: 0, Participating: true},
	)
}

func TestLayout_Shape(t *testing.T) {
	g := Layout(dinner())

	// 3 header rows, 3 people, 1 footer.
	if len(g.Rows) != 7 {
		t.Fatalf("rows = %d, want 7", len(g.Rows))
	}
	// name, remove, 2 categories, add category, total.
	if g.Width() != 6 {
		t.Fatalf("width = %d, want 6", g.Width())
	}
	for i, row := range g.Rows {
		if len(row) != g.Width() {
			t.Errorf("row %d has %d cells, want %d", i, len(row), g.Width())
		}
	}
}

func TestLayout_Cells(t *testing.T) {
	g := Layout(dinner())

	tests := []struct {
		name     string
		row, col int
		kind     CellKind
		text     string
	}{
		{"category name", 0, 2, CellCategoryName, "Dinner"},
		{"default category name", 0, 3, CellCategoryName, "Category 2"},
		{"add category", 0, 4, CellAddCategory, "+ Add Category"},
		{"total header", 0, 5, CellHeader, "Total"},
		{"amount", 1, 2, CellCategoryAmount, "90"},
		{"empty amount placeholder", 1, 3, CellCategoryAmount, "0"},
		{"remove category", 2, 2, CellRemoveCategory, removeMark},
		{"person name", 3, 0, CellPersonName, "Person 1"},
		{"remove person", 3, 1, CellRemovePerson, removeMark},
		{"checked box", 3, 2, CellParticipation, checkedBox},
		{"unchecked box", 5, 2, CellParticipation, uncheckedBox},
		{"person total", 3, 5, CellTotal, "€45.00"},
		{"non participant total", 5, 5, CellTotal, "€0.00"},
		{"add person", 6, 0, CellAddPerson, "+ Add Person"},
		{"category total", 6, 2, CellTotal, "€90.00"},
		{"empty category total", 6, 3, CellTotal, "€0.00"},
		{"grand total", 6, 5, CellTotal, "€90.00"},
		{"blank", 1, 0, CellBlank, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := g.At(tt.row, tt.col)
			if c.Kind != tt.kind || c.Text != tt.text {
				t.Errorf("At(%d, %d) = {%v %q}, want {%v %q}", tt.row, tt.col, c.Kind, c.Text, tt.kind, tt.text)
			}
		})
	}
}

func TestLayout_EmptyBill(t *testing.T) {
	g := Layout(models.Bill{})

	if len(g.Rows) != 4 || g.Width() != 4 {
		t.Fatalf("grid = %dx%d, want 4x4", len(g.Rows), g.Width())
	}
	if c := g.At(0, 2); c.Kind != CellAddCategory {
		t.Errorf("At(0, 2) = %v, want add category", c.Kind)
	}
	if c := g.At(3, 0); c.Kind != CellAddPerson {
		t.Errorf("At(3, 0) = %v, want add person", c.Kind)
	}
	if c := g.At(3, 3); c.Text != "€0.00" {
		t.Errorf("grand total = %q, want €0.00", c.Text)
	}
}

func TestCell_Activate(t *testing.T) {
	b := dinner()
	g := Layout(b)

	t.Run("toggle flips the flag", func(t *testing.T) {
		action, edit := g.At(5, 2).Activate()
		if edit != nil {
			t.Fatal("toggle should not open an editor")
		}
		next := editor.Apply(b, action)
		if !next.People[2].Participation[0] {
			t.Error("expected Person 3 to participate after toggle")
		}

		action, _ = Layout(next).At(5, 2).Activate()
		if editor.Apply(next, action).People[2].Participation[0] {
			t.Error("expected second toggle to clear the flag")
		}
	})

	t.Run("structural cells", func(t *testing.T) {
		cases := map[string]struct {
			row, col int
			want     editor.Action
		}{
			"add category":    {0, 4, editor.AddCategory{}},
			"add person":      {6, 0, editor.AddPerson{}},
			"remove category": {2, 3, editor.RemoveCategory{ID: 2}},
			"remove person":   {4, 1, editor.RemovePerson{ID: 2}},
		}
		for name, tc := range cases {
			action, _ := g.At(tc.row, tc.col).Activate()
			if action != tc.want {
				t.Errorf("%s: action = %#v, want %#v", name, action, tc.want)
			}
		}
	})

	t.Run("amount cell opens an editor with raw value", func(t *testing.T) {
		action, edit := g.At(1, 3).Activate()
		if action != nil || edit == nil {
			t.Fatalf("expected an editor, got action %v", action)
		}
		if edit.Value != "" {
			t.Errorf("edit value = %q, want empty raw amount", edit.Value)
		}
		next := editor.Apply(b, edit.Commit("12.5"))
		if next.Categories[1].Amount != "12.5" {
			t.Errorf("amount = %q, want 12.5", next.Categories[1].Amount)
		}
	})

	t.Run("name cells commit renames", func(t *testing.T) {
		_, edit := g.At(0, 2).Activate()
		if got := editor.Apply(b, edit.Commit("Supper")).Categories[0].Name; got != "Supper" {
			t.Errorf("category name = %q", got)
		}
		_, edit = g.At(3, 0).Activate()
		if got := editor.Apply(b, edit.Commit("Alice")).People[0].Name; got != "Alice" {
			t.Errorf("person name = %q", got)
		}
	})

	t.Run("inert cells", func(t *testing.T) {
		for _, pos := range [][2]int{{0, 0}, {0, 5}, {6, 5}, {1, 0}, {99, 99}} {
			action, edit := g.At(pos[0], pos[1]).Activate()
			if action != nil || edit != nil {
				t.Errorf("cell %v should be inert", pos)
			}
			if g.At(pos[0], pos[1]).Selectable() {
				t.Errorf("cell %v should not be selectable", pos)
			}
		}
	})
}

func TestStatusLine(t *testing.T) {
	b := dinner()
	if got := StatusLine(b); got != "Grand total €90.00" {
		t.Errorf("StatusLine = %q", got)
	}

	b = editor.Apply(b, editor.SetCategoryAmount{ID: 2, Amount: "15"})
	want := "Grand total €105.00  |  not shared by anyone €15.00"
	if got := StatusLine(b); got != want {
		t.Errorf("StatusLine = %q, want %q", got, want)
	}
}

// Package tui renders the bill-splitting table in the terminal.
//
// Layout turns a bill into a grid of cells, each knowing the action it
// triggers. App shows that grid in a tview table and sends every edit through
// a Backend, redrawing from the returned bill before handling the next event.
package tui

import (
	"context"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/mmynk/billsplit/internal/editor"
	"github.com/mmynk/billsplit/internal/models"
)

const (
	pageTable = "table"
	pageEdit  = "edit"

	helpText = "Select a name or amount to edit it, a box to toggle participation, " +
		removeMark + " to remove a row or column, and the + cells to add people or categories. " +
		"Totals update as you type. Ctrl-C quits."
)

// App is the terminal bill splitter.
type App struct {
	ctx     context.Context
	backend Backend

	app    *tview.Application
	pages  *tview.Pages
	table  *tview.Table
	status *tview.TextView

	grid    Grid
	editing *Edit
}

// New builds the UI around backend. ctx bounds every backend call and stops
// the UI when cancelled.
func New(ctx context.Context, backend Backend) *App {
	a := &App{
		ctx:     ctx,
		backend: backend,
		app:     tview.NewApplication(),
		pages:   tview.NewPages(),
		table:   tview.NewTable(),
		status:  tview.NewTextView(),
	}

	a.table.
		SetBorders(true).
		SetSelectable(true, true).
		SetFixed(headerRows, 1).
		SetSelectedFunc(a.activate)

	help := tview.NewTextView().
		SetText("Bill Split Calculator\n" + helpText).
		SetWrap(true).
		SetTextColor(tcell.ColorYellow)

	a.status.SetDynamicColors(true)

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(help, 3, 0, false).
		AddItem(a.table, 0, 1, true).
		AddItem(a.status, 1, 0, false)

	a.pages.AddPage(pageTable, layout, true, true)
	a.app.SetRoot(a.pages, true).EnableMouse(true)

	return a
}

// Run loads the bill, draws it and blocks until the user quits or ctx ends.
func (a *App) Run() error {
	b, err := a.backend.Bill(a.ctx)
	if err != nil {
		return err
	}
	a.render(b)
	a.table.Select(headerRows, 0)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-a.ctx.Done():
			a.app.Stop()
		case <-done:
		}
	}()

	return a.app.Run()
}

// activate handles selection of the table cell at row, col.
func (a *App) activate(row, col int) {
	action, edit := a.grid.At(row, col).Activate()
	switch {
	case action != nil:
		a.dispatch(action)
	case edit != nil:
		a.openEdit(edit)
	}
}

// dispatch sends one action to the backend and redraws from the result.
func (a *App) dispatch(action editor.Action) {
	b, err := a.backend.Dispatch(a.ctx, action)
	if err != nil {
		slog.Error("Dispatch failed", "action", action.Kind(), "error", err)
		a.status.SetText("[red]" + tview.Escape(err.Error()))
		return
	}
	slog.Debug("Action applied", "action", action.Kind())
	a.render(b)
}

// openEdit shows a text field that applies every keystroke immediately.
func (a *App) openEdit(e *Edit) {
	a.editing = e

	form := tview.NewForm()
	form.AddInputField(e.Label, e.Value, 30, nil, func(text string) {
		a.dispatch(e.Commit(text))
	})
	form.AddButton("Done", a.closeEdit)
	form.AddButton("Cancel", a.cancelEdit)
	form.SetCancelFunc(a.cancelEdit)
	form.SetBorder(true).SetTitle(" " + e.Title + " ")

	a.pages.AddPage(pageEdit, centered(form, 48, 7), true, true)
	a.app.SetFocus(form)
}

// cancelEdit restores the text the field opened with, then closes it.
func (a *App) cancelEdit() {
	if a.editing != nil {
		a.dispatch(a.editing.Commit(a.editing.Value))
	}
	a.closeEdit()
}

func (a *App) closeEdit() {
	a.editing = nil
	a.pages.RemovePage(pageEdit)
	a.app.SetFocus(a.table)
}

// render redraws the table from b, keeping the selection in bounds.
func (a *App) render(b models.Bill) {
	row, col := a.table.GetSelection()

	a.grid = Layout(b)
	a.table.Clear()
	for r, cells := range a.grid.Rows {
		for c, cell := range cells {
			a.table.SetCell(r, c, tableCell(cell))
		}
	}

	if last := len(a.grid.Rows) - 1; row > last {
		row = last
	}
	if last := a.grid.Width() - 1; col > last {
		col = last
	}
	a.table.Select(row, col)
	a.status.SetText(tview.Escape(StatusLine(b)))
}

func tableCell(c Cell) *tview.TableCell {
	cell := tview.NewTableCell(tview.Escape(c.Text)).
		SetSelectable(c.Selectable()).
		SetExpansion(1)

	switch c.Kind {
	case CellHeader:
		cell.SetAttributes(tcell.AttrBold).SetAlign(tview.AlignCenter)
	case CellTotal:
		cell.SetAttributes(tcell.AttrBold).SetAlign(tview.AlignRight)
	case CellParticipation, CellRemoveCategory, CellRemovePerson:
		cell.SetAlign(tview.AlignCenter)
	case CellAddCategory, CellAddPerson:
		cell.SetTextColor(tcell.ColorGreen)
	case CellCategoryAmount:
		cell.SetAlign(tview.AlignRight)
		if c.Value == "" {
			cell.SetTextColor(tcell.ColorGray)
		}
	}
	return cell
}

// centered places p in the middle of the screen with a fixed size.
func centered(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 1, true).
			AddItem(nil, 0, 1, false), width, 1, true).
		AddItem(nil, 0, 1, false)
}

package tui

import (
	"context"
	"testing"

	"github.com/mmynk/billsplit/internal/editor"
)

func newTestApp(t *testing.T) (*App, *LocalBackend) {
	t.Helper()
	backend := NewLocalBackend()
	a := New(context.Background(), backend)

	b, err := backend.Dispatch(context.Background(), editor.AddCategory{})
	if err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
	a.render(b)
	return a, backend
}

func categoryName(t *testing.T, backend Backend) string {
	t.Helper()
	b, err := backend.Bill(context.Background())
	if err != nil {
		t.Fatalf("Bill failed: %v", err)
	}
	return b.Categories[0].Name
}

func TestApp_EditCancelRestoresText(t *testing.T) {
	a, backend := newTestApp(t)

	_, edit := a.grid.At(0, firstCatCol).Activate()
	a.openEdit(edit)
	if !a.pages.HasPage(pageEdit) {
		t.Fatal("expected the edit form to be shown")
	}

	// Typing applies right away.
	a.dispatch(edit.Commit("Groceries"))
	if got := categoryName(t, backend); got != "Groceries" {
		t.Fatalf("name while typing = %q, want Groceries", got)
	}

	// Escape and the Cancel button both end up here.
	a.cancelEdit()
	if got := categoryName(t, backend); got != "Category 1" {
		t.Errorf("name after cancel = %q, want Category 1", got)
	}
	if a.pages.HasPage(pageEdit) || a.editing != nil {
		t.Error("expected the edit form to be closed")
	}
}

func TestApp_EditDoneKeepsText(t *testing.T) {
	a, backend := newTestApp(t)

	_, edit := a.grid.At(0, firstCatCol).Activate()
	a.openEdit(edit)
	a.dispatch(edit.Commit("Rent"))
	a.closeEdit()

	if got := categoryName(t, backend); got != "Rent" {
		t.Errorf("name after done = %q, want Rent", got)
	}
	if a.pages.HasPage(pageEdit) {
		t.Error("expected the edit form to be closed")
	}
}

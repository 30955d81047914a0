// Package editor applies edit actions to a bill.
//
// Apply is a pure state transition: it takes a bill and an action and
// returns the next bill, leaving the input untouched. Actions never fail.
// An action that targets an unknown category or person, or a participation
// index outside the table, returns an unchanged copy.
package editor

import "github.com/mmynk/billsplit/internal/models"

// Apply returns the bill that results from applying a to b.
// A nil action returns a copy of b.
func Apply(b models.Bill, a Action) models.Bill {
	next := b.Clone()
	if a != nil {
		a.apply(&next)
	}
	return next
}

// ApplyAll applies actions in order and returns the final bill.
func ApplyAll(b models.Bill, actions ...Action) models.Bill {
	next := b.Clone()
	for _, a := range actions {
		if a != nil {
			a.apply(&next)
		}
	}
	return next
}

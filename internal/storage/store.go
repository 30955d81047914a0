// Package storage provides abstractions for calculator session storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/billsplit/internal/models"
)

var (
	// ErrNotFound is returned when a session does not exist or has expired.
	ErrNotFound = errors.New("session not found")

	// ErrCapacity is returned when the store already holds its maximum number
	// of live sessions.
	ErrCapacity = errors.New("session limit reached")
)

// UpdateFunc derives the next bill from the current one.
type UpdateFunc func(models.Bill) models.Bill

// Store defines the interface for session lifecycle operations.
// Sessions are ephemeral: a Store keeps them only for the life of the process.
type Store interface {
	// CreateSession opens a session with an empty bill.
	CreateSession(ctx context.Context) (*models.Session, error)

	// GetSession returns a copy of the session and marks it as used.
	// Returns ErrNotFound if it does not exist.
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)

	// UpdateSession replaces the session's bill with fn(bill) atomically and
	// returns the updated session. Updates to one session apply in call order.
	UpdateSession(ctx context.Context, sessionID string, fn UpdateFunc) (*models.Session, error)

	// DeleteSession ends a session. Returns ErrNotFound if it does not exist.
	DeleteSession(ctx context.Context, sessionID string) error

	// Len reports the number of live sessions.
	Len() int

	// Close releases any resources held by the store.
	Close() error
}

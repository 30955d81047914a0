// Package memory provides an in-process implementation of the storage.Store interface.
package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/billsplit/internal/models"
	"github.com/mmynk/billsplit/internal/storage"
)

// Ensure MemoryStore implements storage.Store
var _ storage.Store = (*MemoryStore)(nil)

// Options configures a MemoryStore.
type Options struct {
	// TTL is how long a session may stay idle before it is removed.
	// Zero disables expiry.
	TTL time.Duration

	// SweepInterval is how often expired sessions are removed.
	// Zero disables the background sweeper; expired sessions are then
	// still rejected on access.
	SweepInterval time.Duration

	// MaxSessions caps the number of live sessions. Zero means no limit.
	MaxSessions int

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	// OnExpire is called with the number of sessions removed by each sweep
	// that removed at least one.
	OnExpire func(n int)
}

// MemoryStore keeps sessions in a map guarded by a mutex.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*models.Session
	opts     Options

	stopSweep chan struct{}
	sweepDone chan struct{}
	closeOnce sync.Once
}

// New creates a MemoryStore and starts its sweeper if opts.SweepInterval is set.
func New(opts Options) *MemoryStore {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	s := &MemoryStore{
		sessions:  make(map[string]*models.Session),
		opts:      opts,
		stopSweep: make(chan struct{}),
		sweepDone: make(chan struct{}),
	}
	if opts.TTL > 0 && opts.SweepInterval > 0 {
		go s.sweepLoop()
	} else {
		close(s.sweepDone)
	}
	return s
}

// CreateSession opens a session with an empty bill.
func (s *MemoryStore) CreateSession(ctx context.Context) (*models.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.opts.MaxSessions > 0 && len(s.sessions) >= s.opts.MaxSessions {
		// Make room if some sessions are already past their TTL.
		s.removeExpiredLocked()
		if len(s.sessions) >= s.opts.MaxSessions {
			return nil, fmt.Errorf("create session: %w", storage.ErrCapacity)
		}
	}

	now := s.opts.Now()
	session := &models.Session{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.sessions[session.ID] = session

	out := *session
	return &out, nil
}

// GetSession returns a copy of the session and refreshes its idle timer.
func (s *MemoryStore) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.liveLocked(sessionID)
	if err != nil {
		return nil, err
	}
	session.UpdatedAt = s.opts.Now()

	return copySession(session), nil
}

// UpdateSession applies fn to the session's bill while holding the store lock.
func (s *MemoryStore) UpdateSession(ctx context.Context, sessionID string, fn storage.UpdateFunc) (*models.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.liveLocked(sessionID)
	if err != nil {
		return nil, err
	}
	session.Bill = fn(session.Bill.Clone())
	session.UpdatedAt = s.opts.Now()

	return copySession(session), nil
}

// DeleteSession removes a session.
func (s *MemoryStore) DeleteSession(ctx context.Context, sessionID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.liveLocked(sessionID); err != nil {
		return err
	}
	delete(s.sessions, sessionID)
	return nil
}

// Len reports the number of sessions currently held, expired or not.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Close stops the sweeper and drops all sessions.
func (s *MemoryStore) Close() error {
	s.closeOnce.Do(func() {
		close(s.stopSweep)
		<-s.sweepDone

		s.mu.Lock()
		s.sessions = make(map[string]*models.Session)
		s.mu.Unlock()
	})
	return nil
}

// Sweep removes expired sessions and returns how many were removed.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeExpiredLocked()
}

func (s *MemoryStore) sweepLoop() {
	defer close(s.sweepDone)

	ticker := time.NewTicker(s.opts.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				slog.Debug("Expired idle sessions", "removed", n)
				if s.opts.OnExpire != nil {
					s.opts.OnExpire(n)
				}
			}
		case <-s.stopSweep:
			return
		}
	}
}

// liveLocked returns the session if it exists and has not expired.
// An expired session is removed on the spot.
func (s *MemoryStore) liveLocked(sessionID string) (*models.Session, error) {
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", sessionID, storage.ErrNotFound)
	}
	if s.expired(session) {
		delete(s.sessions, sessionID)
		return nil, fmt.Errorf("session %s: %w", sessionID, storage.ErrNotFound)
	}
	return session, nil
}

func (s *MemoryStore) removeExpiredLocked() int {
	removed := 0
	for id, session := range s.sessions {
		if s.expired(session) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *MemoryStore) expired(session *models.Session) bool {
	return s.opts.TTL > 0 && s.opts.Now().Sub(session.UpdatedAt) > s.opts.TTL
}

func copySession(session *models.Session) *models.Session {
	out := *session
	out.Bill = session.Bill.Clone()
	return &out
}

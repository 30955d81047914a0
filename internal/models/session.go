package models

import "time"

// Session is one live calculator hosted by the server.
// A session starts with an empty bill and ends when the client closes it or
// when it has been idle for longer than the configured TTL. Sessions are never
// written to disk.
type Session struct {
	// ID is the unique identifier for the session (UUID format).
	ID string

	// Bill is the current calculator state.
	Bill Bill

	// CreatedAt is when the session was opened.
	CreatedAt time.Time

	// UpdatedAt is when the session was last read or changed.
	// The store uses it to expire idle sessions.
	UpdatedAt time.Time
}

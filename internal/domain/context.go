// Package domain provides core registration types and context helpers.
//
// Context helpers carry the registration session identity across the
// orchestrator and submission sink so log lines can be correlated.
package domain

import (
	"context"

	"github.com/google/uuid"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey int

const (
	// sessionContextKey stores the registration session in context.
	sessionContextKey contextKey = iota
)

// Session represents the registration attempt stored in context.
type Session struct {
	ID      uuid.UUID
	Attempt int // 1-based submit attempt within the session
}

// --- Session Context Helpers ---

// NewContextWithSession returns a new context with the session attached.
func NewContextWithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, session)
}

// SessionFromContext retrieves the session from context.
// Returns nil if no session is present.
func SessionFromContext(ctx context.Context) *Session {
	session, _ := ctx.Value(sessionContextKey).(*Session)
	return session
}

// SessionIDFromContext retrieves the session ID from context.
// Returns uuid.Nil if no session is present.
func SessionIDFromContext(ctx context.Context) uuid.UUID {
	if session := SessionFromContext(ctx); session != nil {
		return session.ID
	}
	return uuid.Nil
}

// HasSession returns true if there is a session in context.
func HasSession(ctx context.Context) bool {
	return SessionFromContext(ctx) != nil
}

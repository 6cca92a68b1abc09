package middleware

import (
	"context"

	"github.com/amastore/admin/internal/models"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// SessionKey is the context key for storing the admitted session.
	SessionKey contextKey = "session"
	// RequestIDKey is the context key for storing the request ID.
	RequestIDKey contextKey = "request_id"
)

// WithSession returns a copy of ctx carrying the admitted session.
func WithSession(ctx context.Context, s *models.Session) context.Context {
	return context.WithValue(ctx, SessionKey, s)
}

// GetSession extracts the admitted session from the context.
// Returns nil if the request was never admitted.
func GetSession(ctx context.Context) *models.Session {
	s, _ := ctx.Value(SessionKey).(*models.Session)
	return s
}

// GetEmail extracts the admitted user's email from the context.
// Returns empty string if not found.
func GetEmail(ctx context.Context) string {
	if s := GetSession(ctx); s != nil {
		return s.Email
	}
	return ""
}

// GetRequestID extracts the request ID from the context.
// Returns empty string if not found.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

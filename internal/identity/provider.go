// Package identity adapts external identity services to a single capability:
// resolving the session of the caller behind an HTTP request.
package identity

import (
	"errors"
	"net/http"

	"github.com/amastore/admin/internal/models"
)

var (
	// ErrNoSession means the request carries no usable credential.
	ErrNoSession = errors.New("no session")
	// ErrProviderUnavailable means the identity service could not be reached or
	// answered unexpectedly.
	ErrProviderUnavailable = errors.New("identity provider unavailable")
)

// Provider resolves the current session for a request.
// Implementations return a non-nil session or a non-nil error, never both nil.
type Provider interface {
	CurrentSession(r *http.Request) (*models.Session, error)
}

// ProviderFunc adapts a plain function to the Provider interface.
type ProviderFunc func(r *http.Request) (*models.Session, error)

// CurrentSession calls f(r).
func (f ProviderFunc) CurrentSession(r *http.Request) (*models.Session, error) {
	return f(r)
}

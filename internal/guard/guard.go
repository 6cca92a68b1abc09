// Package guard gates dashboard routes on the caller's identity.
//
// Every request is resolved through an identity.Provider and checked against a
// Policy before any wrapped handler runs. Lookup failures of any kind deny
// access. Denied callers are redirected to the public entry route and are not
// told why.
package guard

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/amastore/admin/internal/identity"
	"github.com/amastore/admin/internal/middleware"
	"github.com/amastore/admin/internal/models"
)

// Outcome classifies an admission decision.
type Outcome int

const (
	// Unauthenticated: no session, or the provider lookup failed.
	Unauthenticated Outcome = iota
	// Unauthorized: a session exists but the policy rejects it.
	Unauthorized
	// Admitted: the wrapped content may render.
	Admitted
)

func (o Outcome) String() string {
	switch o {
	case Admitted:
		return "admitted"
	case Unauthorized:
		return "unauthorized"
	default:
		return "unauthenticated"
	}
}

// Decision is the result of checking one request.
type Decision struct {
	Outcome Outcome
	// Session is set whenever the provider resolved one, even if it was rejected.
	Session *models.Session
	// Err is the provider error, if any.
	Err error
}

// Admitted reports whether the request may proceed.
func (d Decision) Admitted() bool {
	return d.Outcome == Admitted
}

// Guard admits or redirects requests.
type Guard struct {
	provider   identity.Provider
	policy     Policy
	redirectTo string
	logger     *slog.Logger
}

// Option configures a Guard.
type Option func(*Guard)

// WithRedirect sets where denied callers are sent. Defaults to "/".
func WithRedirect(path string) Option {
	return func(g *Guard) {
		if path != "" {
			g.redirectTo = path
		}
	}
}

// WithLogger sets the logger used for decisions.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Guard) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// New creates a guard over provider and policy.
func New(provider identity.Provider, policy Policy, opts ...Option) *Guard {
	g := &Guard{
		provider:   provider,
		policy:     policy,
		redirectTo: "/",
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// RedirectTo returns the denial target.
func (g *Guard) RedirectTo() string {
	return g.redirectTo
}

// Decide resolves the caller's session and applies the policy.
func (g *Guard) Decide(r *http.Request) Decision {
	start := time.Now()
	d := g.decide(r)
	recordDecision(d.Outcome, time.Since(start).Seconds())
	return d
}

func (g *Guard) decide(r *http.Request) Decision {
	s, err := g.provider.CurrentSession(r)
	if err != nil {
		return Decision{Outcome: Unauthenticated, Err: err}
	}
	if s == nil {
		return Decision{Outcome: Unauthenticated}
	}
	if !g.policy.Admit(s) {
		return Decision{Outcome: Unauthorized, Session: s}
	}
	return Decision{Outcome: Admitted, Session: s}
}

// Middleware wraps next so it only runs for admitted requests. The admitted
// session is available to next through middleware.GetSession.
func (g *Guard) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		d := g.Decide(r)
		if !d.Admitted() {
			g.logDenial(r, d)
			w.Header().Set("Cache-Control", "no-store")
			http.Redirect(w, r, g.redirectTo, http.StatusTemporaryRedirect)
			return
		}

		next.ServeHTTP(w, r.WithContext(middleware.WithSession(r.Context(), d.Session)))
	})
}

func (g *Guard) logDenial(r *http.Request, d Decision) {
	attrs := []any{
		"outcome", d.Outcome.String(),
		"path", r.URL.Path,
		"request_id", middleware.GetRequestID(r.Context()),
	}

	switch {
	case d.Err != nil && !errors.Is(d.Err, identity.ErrNoSession):
		g.logger.Warn("Session lookup failed, denying access",
			append(attrs, "provider_error", true, "error", d.Err)...)
	case d.Outcome == Unauthorized:
		g.logger.Info("Session not on allow-list, denying access",
			append(attrs, "subject", d.Session.Subject)...)
	default:
		g.logger.Debug("No session, denying access", attrs...)
	}
}

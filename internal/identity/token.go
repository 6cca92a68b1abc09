package identity

import (
	"net/http"
	"strings"

	"github.com/amastore/admin/internal/auth"
	"github.com/amastore/admin/internal/models"
)

// DefaultSessionCookie is the cookie TokenProvider reads when none is configured.
const DefaultSessionCookie = "amastore_session"

// TokenProvider resolves sessions from HS256 tokens issued by the identity
// service. The token is read from the session cookie first, then from an
// "Authorization: Bearer" header.
type TokenProvider struct {
	tokens     *auth.JWTManager
	cookieName string
}

// NewTokenProvider creates a token provider. An empty cookieName selects
// DefaultSessionCookie.
func NewTokenProvider(tokens *auth.JWTManager, cookieName string) *TokenProvider {
	if cookieName == "" {
		cookieName = DefaultSessionCookie
	}
	return &TokenProvider{tokens: tokens, cookieName: cookieName}
}

// CookieName returns the cookie the provider reads.
func (p *TokenProvider) CookieName() string {
	return p.cookieName
}

// CurrentSession implements Provider.
func (p *TokenProvider) CurrentSession(r *http.Request) (*models.Session, error) {
	tokenString, err := p.extract(r)
	if err != nil {
		return nil, err
	}

	claims, err := p.tokens.Validate(tokenString)
	if err != nil {
		return nil, err
	}

	return &models.Session{Email: claims.Email, Subject: claims.Subject}, nil
}

func (p *TokenProvider) extract(r *http.Request) (string, error) {
	if c, err := r.Cookie(p.cookieName); err == nil && c.Value != "" {
		return c.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrNoSession
	}

	// Parse Bearer token
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", auth.ErrInvalidToken
	}
	return parts[1], nil
}

package identity

import (
	"context"
	"fmt"
	"net/http"
	"time"

	kratos "github.com/ory/kratos-client-go"

	"github.com/amastore/admin/internal/models"
)

// DefaultKratosCookie is the session cookie Kratos sets by default.
const DefaultKratosCookie = "ory_kratos_session"

// KratosProvider resolves sessions with Ory Kratos' whoami endpoint.
type KratosProvider struct {
	client     *kratos.APIClient
	timeout    time.Duration
	cookieName string
}

// NewKratosProvider creates a provider talking to the Kratos public API at
// baseURL. Each lookup is bounded by timeout.
func NewKratosProvider(baseURL string, timeout time.Duration) *KratosProvider {
	configuration := kratos.NewConfiguration()
	configuration.Servers = []kratos.ServerConfiguration{
		{URL: baseURL},
	}

	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 20,
		IdleConnTimeout:     90 * time.Second,
	}
	configuration.HTTPClient = &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}

	return &KratosProvider{
		client:     kratos.NewAPIClient(configuration),
		timeout:    timeout,
		cookieName: DefaultKratosCookie,
	}
}

// CurrentSession implements Provider. The caller's Cookie header is forwarded
// verbatim so Kratos sees exactly what the browser sent.
func (p *KratosProvider) CurrentSession(r *http.Request) (*models.Session, error) {
	if _, err := r.Cookie(p.cookieName); err != nil {
		return nil, ErrNoSession
	}

	ctx, cancel := context.WithTimeout(r.Context(), p.timeout)
	defer cancel()

	session, resp, err := p.client.FrontendAPI.ToSession(ctx).Cookie(r.Header.Get("Cookie")).Execute()
	if resp != nil && resp.Body != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		if resp != nil {
			if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
				return nil, ErrNoSession
			}
			return nil, fmt.Errorf("%w: kratos returned status %d", ErrProviderUnavailable, resp.StatusCode)
		}
		return nil, fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
	}

	if session.Active != nil && !*session.Active {
		return nil, ErrNoSession
	}
	if session.Identity == nil {
		return nil, fmt.Errorf("%w: session has no identity", ErrProviderUnavailable)
	}

	return &models.Session{
		Email:   emailTrait(session.Identity.Traits),
		Subject: session.Identity.Id,
	}, nil
}

func emailTrait(traits interface{}) string {
	m, ok := traits.(map[string]interface{})
	if !ok {
		return ""
	}
	email, _ := m["email"].(string)
	return email
}

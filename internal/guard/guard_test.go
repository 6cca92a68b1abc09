package guard

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/amastore/admin/internal/identity"
	"github.com/amastore/admin/internal/middleware"
	"github.com/amastore/admin/internal/models"
)

const allowed = "ocxigin@gmail.com"

func staticProvider(s *models.Session, err error) identity.Provider {
	return identity.ProviderFunc(func(*http.Request) (*models.Session, error) {
		return s, err
	})
}

func TestAllowListAdmit(t *testing.T) {
	policy := NewAllowList(allowed)

	tests := []struct {
		name    string
		session *models.Session
		want    bool
	}{
		{"absent session", nil, false},
		{"empty email", &models.Session{}, false},
		{"exact match", &models.Session{Email: allowed}, true},
		{"other address", &models.Session{Email: "someoneelse@gmail.com"}, false},
		{"upper case", &models.Session{Email: "OCXIGIN@gmail.com"}, false},
		{"mixed case domain", &models.Session{Email: "ocxigin@Gmail.com"}, false},
		{"leading space", &models.Session{Email: " " + allowed}, false},
		{"trailing newline", &models.Session{Email: allowed + "\n"}, false},
		{"subset", &models.Session{Email: "ocxigin@gmail.co"}, false},
		{"superset", &models.Session{Email: allowed + ".evil"}, false},
		{"prefix superset", &models.Session{Email: "x" + allowed}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := policy.Admit(tt.session); got != tt.want {
				t.Errorf("Admit(%+v) = %v, want %v", tt.session, got, tt.want)
			}
		})
	}
}

func TestAllowListIgnoresBlankEntries(t *testing.T) {
	policy := NewAllowList("", "  ", allowed)
	if policy.Len() != 1 {
		t.Fatalf("Len = %d, want 1", policy.Len())
	}
	if policy.Admit(&models.Session{Email: ""}) {
		t.Error("empty email must never be admitted")
	}
}

func TestEmptyAllowListAdmitsNobody(t *testing.T) {
	policy := NewAllowList()
	if policy.Admit(&models.Session{Email: allowed}) {
		t.Error("empty allow-list admitted a session")
	}
}

func TestDecide(t *testing.T) {
	policy := NewAllowList(allowed)

	tests := []struct {
		name     string
		provider identity.Provider
		want     Outcome
	}{
		{"no session", staticProvider(nil, identity.ErrNoSession), Unauthenticated},
		{"nil session without error", staticProvider(nil, nil), Unauthenticated},
		{"provider outage", staticProvider(nil, identity.ErrProviderUnavailable), Unauthenticated},
		{"session and error", staticProvider(&models.Session{Email: allowed}, errors.New("partial")), Unauthenticated},
		{"wrong email", staticProvider(&models.Session{Email: "someoneelse@gmail.com"}, nil), Unauthorized},
		{"allowed email", staticProvider(&models.Session{Email: allowed}, nil), Admitted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(tt.provider, policy)
			d := g.Decide(httptest.NewRequest(http.MethodGet, "/dashboard", nil))
			if d.Outcome != tt.want {
				t.Errorf("Outcome = %v, want %v", d.Outcome, tt.want)
			}
		})
	}
}

func TestMiddlewareDeniesWithRedirect(t *testing.T) {
	tests := []struct {
		name     string
		provider identity.Provider
	}{
		{"absent session", staticProvider(nil, identity.ErrNoSession)},
		{"wrong email", staticProvider(&models.Session{Email: "someoneelse@gmail.com"}, nil)},
		{"provider failure", staticProvider(nil, identity.ErrProviderUnavailable)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				_, _ = w.Write([]byte("secret dashboard"))
			})

			g := New(tt.provider, NewAllowList(allowed))
			rec := httptest.NewRecorder()
			g.Middleware(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard/products", nil))

			if called {
				t.Fatal("wrapped handler ran for a denied request")
			}
			if rec.Code != http.StatusTemporaryRedirect {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusTemporaryRedirect)
			}
			if loc := rec.Header().Get("Location"); loc != "/" {
				t.Errorf("Location = %q, want /", loc)
			}
			if got := rec.Header().Get("Cache-Control"); got != "no-store" {
				t.Errorf("Cache-Control = %q, want no-store", got)
			}
			if strings.Contains(rec.Body.String(), "secret dashboard") {
				t.Error("dashboard content leaked into denial response")
			}
		})
	}
}

func TestMiddlewareAdmits(t *testing.T) {
	var got *models.Session
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = middleware.GetSession(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	g := New(staticProvider(&models.Session{Email: allowed, Subject: "kp_1"}, nil), NewAllowList(allowed))
	h := g.Middleware(next)

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("attempt %d: status = %d, want 200", i, rec.Code)
		}
		if got == nil || got.Email != allowed {
			t.Fatalf("attempt %d: session in context = %+v", i, got)
		}
	}
}

func TestWithRedirect(t *testing.T) {
	g := New(staticProvider(nil, identity.ErrNoSession), NewAllowList(allowed), WithRedirect("/login"))
	rec := httptest.NewRecorder()
	g.Middleware(http.NotFoundHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Errorf("Location = %q, want /login", loc)
	}
	if New(nil, nil, WithRedirect("")).RedirectTo() != "/" {
		t.Error("empty redirect should keep the default")
	}
}

func TestOutcomeString(t *testing.T) {
	if Admitted.String() != "admitted" || Unauthorized.String() != "unauthorized" || Unauthenticated.String() != "unauthenticated" {
		t.Error("unexpected outcome labels")
	}
}

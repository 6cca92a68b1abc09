// Package web wires routes, middleware and page handlers for the dashboard.
package web

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	g "maragu.dev/gomponents"

	"github.com/amastore/admin/internal/guard"
	"github.com/amastore/admin/internal/middleware"
	"github.com/amastore/admin/internal/nav"
	"github.com/amastore/admin/internal/storage"
)

// Options configures the server's outward-facing links and assets.
type Options struct {
	Brand       string
	LoginURL    string
	RegisterURL string
	LogoutURL   string
	// StaticDir, when set, is served under /images/.
	StaticDir string
}

// Server renders the public entry page and the guarded dashboard.
type Server struct {
	guard  *guard.Guard
	nav    *nav.Registry
	store  storage.Store
	opts   Options
	logger *slog.Logger
}

// NewServer creates a server. A nil logger discards output.
func NewServer(gd *guard.Guard, registry *nav.Registry, store storage.Store, opts Options, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Brand == "" {
		opts.Brand = "Amastore"
	}
	return &Server{
		guard:  gd,
		nav:    registry,
		store:  store,
		opts:   opts,
		logger: logger,
	}
}

// Routes returns the root handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(s.logger))
	r.Use(middleware.SecurityHeaders)

	r.Get("/", s.handleHome)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, "ok")
	})
	r.Handle("/metrics", promhttp.Handler())

	if s.opts.StaticDir != "" {
		r.Handle("/images/*", http.StripPrefix("/images/", http.FileServer(http.Dir(s.opts.StaticDir))))
	}

	r.Route("/dashboard", func(r chi.Router) {
		r.Use(s.guard.Middleware)
		r.Get("/", s.handleOverview)
		r.Get("/products", s.handleProducts)
		r.Get("/transactions", s.handleTransactions)
	})

	return r
}

// render writes n as an HTML page. Output is buffered so a rendering failure
// can still become a clean 500.
func (s *Server) render(w http.ResponseWriter, r *http.Request, n g.Node) {
	var buf bytes.Buffer
	if err := n.Render(&buf); err != nil {
		s.serverError(w, r, "Failed to render page", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	s.logger.Error(msg,
		"path", r.URL.Path,
		"request_id", middleware.GetRequestID(r.Context()),
		"error", err,
	)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

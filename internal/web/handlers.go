package web

import (
	"net/http"

	g "maragu.dev/gomponents"

	"github.com/amastore/admin/internal/middleware"
	"github.com/amastore/admin/internal/web/views"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, views.Home(views.HomeProps{
		Brand:       s.opts.Brand,
		LoginURL:    s.opts.LoginURL,
		RegisterURL: s.opts.RegisterURL,
	}))
}

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	cards, err := s.store.Summary(r.Context())
	if err != nil {
		s.serverError(w, r, "Failed to load summary", err)
		return
	}
	sales, err := s.store.RecentSales(r.Context())
	if err != nil {
		s.serverError(w, r, "Failed to load recent sales", err)
		return
	}
	s.page(w, r, "Sales Records", views.Overview(cards, sales))
}

func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.store.Products(r.Context())
	if err != nil {
		s.serverError(w, r, "Failed to load products", err)
		return
	}
	s.page(w, r, "Products", views.Products(products))
}

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := s.store.Transactions(r.Context())
	if err != nil {
		s.serverError(w, r, "Failed to load transactions", err)
		return
	}
	s.page(w, r, "Transactions", views.Transactions(txs))
}

// page renders content inside the dashboard chrome for the admitted session.
func (s *Server) page(w http.ResponseWriter, r *http.Request, title string, content g.Node) {
	ch := views.Chrome{
		Brand:       s.opts.Brand,
		Nav:         s.nav,
		CurrentPath: r.URL.Path,
		Email:       middleware.GetEmail(r.Context()),
		LogoutURL:   s.opts.LogoutURL,
	}
	if s.opts.StaticDir != "" {
		ch.LogoURL = "/images/logo.png"
	}
	s.render(w, r, views.Dashboard(ch, title, content))
}

// Package nav holds the ordered, immutable list of dashboard destinations.
//
// A single Registry value is injected into every place that renders navigation,
// so the mobile panel and the inline row cannot drift apart.
package nav

import (
	"errors"
	"fmt"
	"strings"

	"github.com/amastore/admin/internal/models"
)

var (
	ErrEmptyName     = errors.New("navigation link name is empty")
	ErrInvalidHref   = errors.New("navigation link href must be an absolute path")
	ErrDuplicateHref = errors.New("duplicate navigation link href")
)

// Registry is an ordered set of navigation links keyed by href.
type Registry struct {
	links []models.NavigationLink
}

// New builds a registry from links in display order.
func New(links ...models.NavigationLink) (*Registry, error) {
	seen := make(map[string]struct{}, len(links))
	out := make([]models.NavigationLink, 0, len(links))

	for i, l := range links {
		if strings.TrimSpace(l.Name) == "" {
			return nil, fmt.Errorf("link %d: %w", i, ErrEmptyName)
		}
		if !strings.HasPrefix(l.Href, "/") {
			return nil, fmt.Errorf("link %d (%q): %w", i, l.Href, ErrInvalidHref)
		}
		if _, dup := seen[l.Href]; dup {
			return nil, fmt.Errorf("link %d: %w: %s", i, ErrDuplicateHref, l.Href)
		}
		seen[l.Href] = struct{}{}
		out = append(out, l)
	}

	return &Registry{links: out}, nil
}

// MustNew is like New but panics on invalid input.
func MustNew(links ...models.NavigationLink) *Registry {
	r, err := New(links...)
	if err != nil {
		panic(err)
	}
	return r
}

// Default returns the dashboard's standard navigation.
func Default() *Registry {
	return MustNew(
		models.NavigationLink{Name: "Sales Records", Href: "/dashboard"},
		models.NavigationLink{Name: "Transactions", Href: "/dashboard/transactions"},
		models.NavigationLink{Name: "Products", Href: "/dashboard/products"},
	)
}

// Links returns the links in display order. The slice is a copy.
func (r *Registry) Links() []models.NavigationLink {
	out := make([]models.NavigationLink, len(r.links))
	copy(out, r.links)
	return out
}

// Len returns the number of links.
func (r *Registry) Len() int {
	return len(r.links)
}

// IsActive reports whether href should be highlighted for the current path.
// The first link is the section root and only matches itself; other links also
// match their sub-paths.
func (r *Registry) IsActive(href, current string) bool {
	if href == "" || current == "" {
		return false
	}
	current = strings.TrimSuffix(current, "/")
	if current == "" {
		current = "/"
	}
	if href == current {
		return true
	}
	if len(r.links) > 0 && href == r.links[0].Href {
		return false
	}
	return strings.HasPrefix(current, href+"/")
}

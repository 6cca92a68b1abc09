package nav

import (
	"errors"
	"testing"

	"github.com/amastore/admin/internal/models"
)

func TestDefaultOrder(t *testing.T) {
	want := []models.NavigationLink{
		{Name: "Sales Records", Href: "/dashboard"},
		{Name: "Transactions", Href: "/dashboard/transactions"},
		{Name: "Products", Href: "/dashboard/products"},
	}

	got := Default().Links()
	if len(got) != len(want) {
		t.Fatalf("got %d links, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("link %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestLinksReturnsCopy(t *testing.T) {
	r := Default()
	links := r.Links()
	links[0].Name = "Hijacked"

	if r.Links()[0].Name != "Sales Records" {
		t.Error("mutating the returned slice changed the registry")
	}
}

func TestNewRejectsInvalidLinks(t *testing.T) {
	tests := []struct {
		name  string
		links []models.NavigationLink
		want  error
	}{
		{
			name:  "blank name",
			links: []models.NavigationLink{{Name: "  ", Href: "/a"}},
			want:  ErrEmptyName,
		},
		{
			name:  "relative href",
			links: []models.NavigationLink{{Name: "A", Href: "a"}},
			want:  ErrInvalidHref,
		},
		{
			name:  "empty href",
			links: []models.NavigationLink{{Name: "A", Href: ""}},
			want:  ErrInvalidHref,
		},
		{
			name: "duplicate href",
			links: []models.NavigationLink{
				{Name: "A", Href: "/a"},
				{Name: "B", Href: "/a"},
			},
			want: ErrDuplicateHref,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.links...)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMustNewPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustNew(models.NavigationLink{Name: "A", Href: "/a"}, models.NavigationLink{Name: "B", Href: "/a"})
}

func TestIsActive(t *testing.T) {
	r := Default()

	tests := []struct {
		href, current string
		want          bool
	}{
		{"/dashboard", "/dashboard", true},
		{"/dashboard", "/dashboard/", true},
		{"/dashboard", "/dashboard/products", false},
		{"/dashboard/products", "/dashboard/products", true},
		{"/dashboard/products", "/dashboard/products/42", true},
		{"/dashboard/products", "/dashboard/productsX", false},
		{"/dashboard/transactions", "/dashboard", false},
		{"", "/dashboard", false},
	}

	for _, tt := range tests {
		if got := r.IsActive(tt.href, tt.current); got != tt.want {
			t.Errorf("IsActive(%q, %q) = %v, want %v", tt.href, tt.current, got, tt.want)
		}
	}
}

package guard

import (
	"strings"

	"github.com/amastore/admin/internal/models"
)

// Policy decides whether a resolved session may see dashboard content.
type Policy interface {
	Admit(s *models.Session) bool
}

// AllowList admits sessions whose email exactly matches one of a fixed set of
// addresses. Matching is case-sensitive and byte-for-byte.
type AllowList struct {
	emails map[string]struct{}
}

// NewAllowList builds an allow-list. Entries that are blank after trimming are
// ignored; all other entries are stored exactly as given.
func NewAllowList(emails ...string) *AllowList {
	set := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		if strings.TrimSpace(e) == "" {
			continue
		}
		set[e] = struct{}{}
	}
	return &AllowList{emails: set}
}

// Admit implements Policy.
func (a *AllowList) Admit(s *models.Session) bool {
	if s == nil || s.Email == "" {
		return false
	}
	_, ok := a.emails[s.Email]
	return ok
}

// Len returns the number of allowed addresses.
func (a *AllowList) Len() int {
	return len(a.emails)
}

package models

// NavigationLink is a named dashboard destination rendered as a link control.
type NavigationLink struct {
	// Name is the display label.
	Name string

	// Href is the destination path. Unique within a registry.
	Href string
}

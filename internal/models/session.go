package models

// Session represents the identity an identity provider resolved for one request.
//
// A Session is never stored. It exists only while the request's admission check
// runs and, once admitted, while the page renders.
type Session struct {
	// Email is the address reported by the identity provider.
	// It is compared byte-for-byte against the allow-list.
	Email string

	// Subject is the provider's stable identifier for the user, when it has one.
	Subject string
}

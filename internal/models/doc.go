// Package models defines the value types shared across the Amastore admin dashboard.
//
// # Request-scoped models
//
//   - Session: the identity resolved for a single request by an identity provider
//   - NavigationLink: one named destination in the dashboard navigation
//
// # Display models
//
// StatCard, Sale, Product and Transaction carry the literal figures shown on the
// dashboard pages. They have no backing store and are never written.
//
// # Design Principles
//
// 1. **Values, not entities**: nothing here has an ID or a lifecycle beyond a request
// 2. **No behavior**: admission and ordering rules live in guard and nav
// 3. **Immutable after construction**: callers copy rather than mutate shared values
package models

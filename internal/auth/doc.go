// Package auth signs and validates the HS256 session tokens accepted by the
// token identity provider and minted by the devtoken command.
package auth

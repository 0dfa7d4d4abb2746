// SPDX-License-Identifier: Apache-2.0

// Package session implements the session authority and the cookie carrier.
//
// A session token is a pure function of the owner's numeric identifier
// (see [stockroom/internal/crypto.DeriveToken]); the authority re-derives
// the expected token on every authorization check instead of storing
// sessions anywhere.
package session

import (
	"stockroom/internal/crypto"
)

//go:generate mockgen -source=authority.go -destination=../mock/session_mock.go -package=mock

// Authority issues session tokens at login/registration and verifies
// presented tokens against a resolved owner identifier.
type Authority interface {
	// Issue derives the session token for ownerID.
	Issue(ownerID int64) string

	// Authorize reports whether presented is exactly the token derivable
	// from ownerID. An absent (empty) token is never authorized.
	Authorize(presented string, ownerID int64) bool
}

type authority struct{}

// NewAuthority constructs the stateless session [Authority].
func NewAuthority() Authority {
	return &authority{}
}

// Issue implements [Authority].
func (a *authority) Issue(ownerID int64) string {
	return crypto.DeriveToken(ownerID)
}

// Authorize implements [Authority].
func (a *authority) Authorize(presented string, ownerID int64) bool {
	if presented == "" {
		return false
	}

	return presented == crypto.DeriveToken(ownerID)
}

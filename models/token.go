// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-notas Authors

package models

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token is the client-side view of the backend's bearer credential.
//
// The credential itself is opaque to the client: it is attached verbatim to
// authenticated requests. When the backend issues a JWT (as the reference
// backend does), the registered claims are parsed without signature
// verification so the client can key its local cache by user and display
// expiry. A credential that is not a parseable JWT still works; UserID and
// ExpiresAt are simply left zero.
type Token struct {
	// SignedString is the raw credential as received from the backend.
	SignedString string

	// UserID is the "sub" claim parsed as int64, or 0 when unavailable.
	UserID int64

	// ExpiresAt is the "exp" claim, or the zero time when unavailable.
	ExpiresAt time.Time
}

// ParseToken builds a [Token] from the raw credential string. It never fails:
// claims that cannot be extracted are left as zero values.
func ParseToken(signed string) Token {
	t := Token{SignedString: signed}
	if signed == "" {
		return t
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(signed, jwt.MapClaims{})
	if err != nil {
		return t
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return t
	}

	if sub, err := claims.GetSubject(); err == nil {
		if id, err := strconv.ParseInt(sub, 10, 64); err == nil {
			t.UserID = id
		}
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		t.ExpiresAt = exp.Time
	}

	return t
}

// Expired reports whether the token carries an expiry claim that is already
// in the past.
func (t Token) Expired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && t.ExpiresAt.Before(now)
}

// String returns the raw credential. It implements [fmt.Stringer].
func (t Token) String() string {
	return t.SignedString
}

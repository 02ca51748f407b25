// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-notas Authors

package devserver

import (
	"context"
	"net/http"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const userIDKey contextKey = "devserver.userID"

// authMiddleware verifies the bearer token and stores the user id in the
// request context. Any failure answers 401 with a plain-text body, which
// the client adapter maps to its unauthorized sentinel.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := fmtBearer(r.Header.Get("Authorization"))
		if err != nil {
			http.Error(w, "missing bearer token", http.StatusUnauthorized)
			return
		}

		claims := jwt.RegisteredClaims{}
		token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return s.signKey, nil
		})
		if err != nil || !token.Valid {
			http.Error(w, "invalid or expired token", http.StatusUnauthorized)
			return
		}

		userID, err := strconv.ParseInt(claims.Subject, 10, 64)
		if err != nil || userID == 0 {
			http.Error(w, "invalid token subject", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
	})
}

func userIDFrom(r *http.Request) int64 {
	id, _ := r.Context().Value(userIDKey).(int64)
	return id
}

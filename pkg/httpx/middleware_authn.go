package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/pathfinderai/pathfinder/pkg/jwtx"
	"github.com/pathfinderai/pathfinder/pkg/slogx"
)

// AuthnMiddleware guards protected routes behind a bearer session token.
//
// A missing or malformed Authorization header yields 401; a header that
// carries a token which fails verification (bad signature, expired, bogus
// subject) yields 403. The distinction mirrors the login flow's contract:
// "you never presented a token" vs "the token you presented is no good".
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				writeBearerError(w, http.StatusForbidden, "token verification failed")
				log.Warn("session verify failed", "err", err)
				return
			}

			userID, err := claims.UserID()
			if err != nil {
				writeBearerError(w, http.StatusForbidden, "token verification failed")
				log.Warn("session subject invalid", "err", err)
				return
			}

			// Inject into context for downstream handlers.
			ctx = context.WithValue(ctx, CtxKeyUserID, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, code int, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteJSON(w, code, map[string]string{
		"error":             "invalid_token",
		"error_description": desc,
	})
}

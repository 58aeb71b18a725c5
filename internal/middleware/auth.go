package middleware

import (
	"net/http"
	"strings"

	"flexdeck/internal/auth"
	"flexdeck/internal/httputil"
)

// publicPath reports whether the request needs no authentication.
// The share viewer resolves tokens and active-token lookups
// anonymously; everything else under /api requires a verified
// Supabase JWT.
func publicPath(r *http.Request) bool {
	if r.URL.Path == "/health" {
		return true
	}
	if strings.HasPrefix(r.URL.Path, "/api/share/") {
		return true
	}
	return strings.HasPrefix(r.URL.Path, "/api/docs/") && strings.HasSuffix(r.URL.Path, "/active-token")
}

// AuthMiddleware verifies the Bearer token and injects the user id
// into the request context. Public paths pass through untouched.
func AuthMiddleware(verifier auth.JWTVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPath(r) {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			if header == "" {
				httputil.RespondError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenString == "" {
				httputil.RespondError(w, http.StatusUnauthorized, "malformed authorization header")
				return
			}

			claims, err := verifier.VerifyToken(tokenString)
			if err != nil {
				httputil.RespondError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			next.ServeHTTP(w, httputil.WithUserID(r, claims.GetUserID()))
		})
	}
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/dukerupert/wardrobe/internal/domain"
)

const bearerPrefix = "Bearer "

// TokenVerifier turns an access token into the principal it identifies.
type TokenVerifier interface {
	Verify(token string) (*domain.Principal, error)
}

// WithPrincipal reads the bearer token and adds the principal to the request
// context. Requests without a token pass through anonymously; a token that
// fails verification is rejected with 401.
func WithPrincipal(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := strings.CutPrefix(header, bearerPrefix)
			if !ok || strings.TrimSpace(token) == "" {
				reject(w, r, domain.ErrAuthenticationRequired)
				return
			}

			principal, err := verifier.Verify(strings.TrimSpace(token))
			if err != nil {
				GetLogger(r.Context()).Debug("rejected access token", "error", err)
				reject(w, r, domain.ErrAuthenticationRequired)
				return
			}

			ctx := domain.NewContextWithPrincipal(r.Context(), principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth ensures the request carries a principal, answering 401 if not.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !domain.IsAuthenticated(r.Context()) {
			reject(w, r, domain.ErrAuthenticationRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole ensures the principal holds role. Anonymous requests get 401,
// principals lacking the role get "Permission denied".
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p := domain.PrincipalFromContext(r.Context())
			if p == nil {
				reject(w, r, domain.ErrAuthenticationRequired)
				return
			}
			if !p.HasRole(role) {
				reject(w, r, domain.ErrPermissionDenied)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is RequireRole(ADMIN).
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(domain.RoleAdmin)(next)
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
	"github.com/heartmarshall/library-backend/pkg/ctxutil"
)

type identityVerifier interface {
	ValidateAccessToken(token string) (uuid.UUID, domain.UserRole, error)
}

// Identity resolves the bearer token into a caller id and role. Requests
// without a token pass through anonymously; services decide what an
// anonymous caller may do. A token that fails verification is rejected.
func Identity(verifier identityVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			userID, role, err := verifier.ValidateAccessToken(token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid token")
				return
			}
			ctx := ctxutil.WithUserID(r.Context(), userID)
			ctx = ctxutil.WithRole(ctx, role.String())
			captureIdentity(ctx)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

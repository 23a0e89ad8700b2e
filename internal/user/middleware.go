package user

import (
	"context"
	"net/http"
	"strings"

	"github.com/Evasive-6/TriviaSwift/internal/user/jwt"
	httperrors "github.com/Evasive-6/TriviaSwift/pkg/http/errors"
)

type claimsKey struct{}

// Protect wraps a handler and requires a valid bearer token. Claims are
// stored in the request context for ClaimsFromContext.
func Protect(tokenMgr *jwt.Manager, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			httperrors.RespondUnauthorized(w, httperrors.ErrCodeAuthenticationRequired, "authorization token required")
			return
		}

		claims, err := tokenMgr.Validate(token)
		if err != nil {
			code := httperrors.ErrCodeInvalidToken
			if err == jwt.ErrExpiredToken {
				code = httperrors.ErrCodeTokenExpired
			}
			httperrors.RespondUnauthorized(w, code, "invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey{}, claims)
		next(w, r.WithContext(ctx))
	}
}

// ClaimsFromContext returns the authenticated claims, if any.
func ClaimsFromContext(ctx context.Context) (*jwt.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*jwt.Claims)
	return claims, ok
}

package middleware

import (
	"context"
	"net/http"

	"github.com/kebo-sukses/calius-digital/internal/common"
	"github.com/kebo-sukses/calius-digital/internal/common/security"
	"github.com/kebo-sukses/calius-digital/internal/domain/model"
	"github.com/kebo-sukses/calius-digital/internal/domain/repository"

	"github.com/go-chi/jwtauth/v5"
)

type contextKey string

const userContextKey = contextKey("currentUser")

// Authenticator resolves the token's subject to a live user and puts it on
// the request context. It runs after jwtauth.Verifier, so a missing or
// invalid token never reaches it with claims.
func Authenticator(userRepo repository.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				common.RespondWithError(w, http.StatusUnauthorized, "Invalid or missing token")
				return
			}

			userID, err := security.GetUserIDFromClaims(claims)
			if err != nil {
				common.RespondWithError(w, http.StatusUnauthorized, "Invalid token claims")
				return
			}

			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil {
				common.RespondWithError(w, http.StatusUnauthorized, "User not found")
				return
			}
			if !user.IsActive {
				common.RespondWithError(w, http.StatusUnauthorized, "Account is disabled")
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates a route group to the given roles. Must run after
// Authenticator.
func RequireRole(roles ...model.Role) func(http.Handler) http.Handler {
	allowed := make(map[model.Role]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := GetUserFromContext(r.Context())
			if !ok {
				common.RespondWithError(w, http.StatusUnauthorized, "Authentication required")
				return
			}
			if !allowed[user.Role] {
				common.RespondWithError(w, http.StatusForbidden, "Insufficient permissions")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func GetUserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(userContextKey).(*model.User)
	return user, ok
}

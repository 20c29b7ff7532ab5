package middleware

import (
	"context"
	"net/http"
	"strings"
	"submission_review/internal/app/service"
	"submission_review/internal/common"
	"submission_review/internal/common/security"
	"submission_review/internal/domain/model"

	"github.com/go-chi/jwtauth/v5"
)

type contextKey string

const (
	UsernameCtxKey contextKey = "username"
	RoleCtxKey     contextKey = "role"
)

// Auth turns a verified bearer token into a caller identity. The role is
// re-derived from the credential store on every request rather than read
// back out of the token payload.
type Auth struct {
	authService *service.AuthService
}

func NewAuth(authService *service.AuthService) *Auth {
	return &Auth{authService: authService}
}

func (a *Auth) Authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context()) // Extracts token from Authorization header

		if err != nil {
			if strings.Contains(err.Error(), "token not found") || token == nil {
				common.RespondWithError(w, http.StatusUnauthorized, "Authorization token required")
			} else {
				common.RespondWithError(w, http.StatusUnauthorized, "Invalid token: "+err.Error())
			}
			return
		}

		if token == nil {
			common.RespondWithError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		username, err := security.GetSubjectFromClaims(claims)
		if err != nil {
			common.RespondWithError(w, http.StatusUnauthorized, "Invalid token claims: "+err.Error())
			return
		}

		role, err := a.authService.GetRole(r.Context(), username)
		if err != nil {
			common.RespondWithError(w, common.HTTPStatusFromError(err), "Unknown user")
			return
		}

		ctx := context.WithValue(r.Context(), UsernameCtxKey, username)
		ctx = context.WithValue(ctx, RoleCtxKey, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Helper to get the caller's username from context
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameCtxKey).(string)
	return username, ok
}

// Helper to get the caller's role from context
func GetRoleFromContext(ctx context.Context) (model.Role, bool) {
	role, ok := ctx.Value(RoleCtxKey).(model.Role)
	return role, ok
}

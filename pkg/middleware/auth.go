package middleware

import (
	"net/http"
	"strings"

	"safarsaga-backend/internal/data/repository"
	"safarsaga-backend/pkg/utils"

	"go.uber.org/zap"
)

// AuthSession validates the bearer session token and loads the user so the
// role in the request context reflects the database, not the token.
func AuthSession(sessionRepo repository.SessionRepository, userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			token := parts[1]

			session, err := sessionRepo.FindValidSession(r.Context(), token)
			if err != nil {
				logger.Error("Failed to validate session", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if session == nil {
				logger.Warn("Invalid or expired session")
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			user, err := userRepo.FindByID(r.Context(), session.UserID)
			if err != nil {
				logger.Error("Failed to load session user",
					zap.Error(err),
					zap.String("user_id", session.UserID.String()))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if user == nil || !user.IsActive {
				logger.Warn("Session for missing or deactivated user",
					zap.String("user_id", session.UserID.String()))
				utils.ResponseUnauthorized(w, "Account is not available")
				return
			}

			ctx := utils.SetUserContext(r.Context(), user.ID, string(user.Role))
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin rejects requests whose context role is not admin. Must run after
// AuthSession.
func Admin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := utils.GetUserIDFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok || role != "admin" {
				logger.Warn("Admin check: non-admin access attempt",
					zap.String("user_id", userID.String()),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/sneaker-inventory/internal/errors"
	"github.com/aaravmahajanofficial/sneaker-inventory/internal/models"
	"github.com/aaravmahajanofficial/sneaker-inventory/internal/utils/response"
)

type contextKey string

const UserContextKey = contextKey("user")

type CurrentUserProvider interface {
	CurrentUser() *models.User
}

type AuthMiddleware struct {
	identity CurrentUserProvider
}

func NewAuthMiddleware(identity CurrentUserProvider) *AuthMiddleware {

	return &AuthMiddleware{identity: identity}

}

// RequireUser rejects the request with 401 unless someone is logged in.
// The session is process wide, so there is no per-request credential.
func (m *AuthMiddleware) RequireUser(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		user := m.identity.CurrentUser()
		if user == nil {
			logger.Warn("Request without a logged in user")
			response.Error(w, errors.UnauthorizedError("Login required"))
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, user)

		requestScopedLogger := logger.With(slog.String("userId", user.ID))
		ctx = WithLogger(ctx, requestScopedLogger)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(UserContextKey).(*models.User)
	return user, ok
}

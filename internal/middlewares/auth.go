package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/Sourav2629/VibeTune-Music-Player/internal/jwt"
	"github.com/Sourav2629/VibeTune-Music-Player/internal/logger"
	"github.com/Sourav2629/VibeTune-Music-Player/internal/models"
)

// Tokener defines the token operations needed by the middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// UserGetter resolves a token subject against the credential store.
type UserGetter interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// AuthMiddleware returns a middleware that extracts the bearer token,
// verifies it, resolves the embedded user against the store, and attaches
// the user and raw token to the request context. Any failure rejects the
// request with 401 before handler logic runs.
func AuthMiddleware(tokener Tokener, users UserGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeUnauthorized(w, "Please authenticate")
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeUnauthorized(w, "Invalid or expired token")
				return
			}

			user, err := users.GetByID(ctx, claims.UserID)
			if err != nil {
				logger.Log.Errorw("failed to resolve token subject", "err", err)
				writeUnauthorized(w, "Invalid or expired token")
				return
			}
			if user == nil {
				logger.Log.Errorw("token subject no longer exists", "user_id", claims.UserID)
				writeUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx = SetUserToContext(ctx, user)
			ctx = SetTokenToContext(ctx, tokenString)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// userKey and tokenKey are unexported context key types.
type userKey struct{}
type tokenKey struct{}

// SetUserToContext stores the resolved user in the context.
func SetUserToContext(ctx context.Context, user *models.UserDB) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// GetUserFromContext retrieves the authenticated user from the context.
// Returns nil if the request did not pass through AuthMiddleware.
func GetUserFromContext(ctx context.Context) *models.UserDB {
	user, _ := ctx.Value(userKey{}).(*models.UserDB)
	return user
}

// SetTokenToContext stores the raw bearer token in the context.
func SetTokenToContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// GetTokenFromContext retrieves the raw bearer token from the context.
func GetTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

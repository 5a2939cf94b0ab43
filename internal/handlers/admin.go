package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Sourav2629/VibeTune-Music-Player/internal/logger"
	"github.com/Sourav2629/VibeTune-Music-Player/internal/middlewares"
	"github.com/Sourav2629/VibeTune-Music-Player/internal/models"
	"github.com/Sourav2629/VibeTune-Music-Player/internal/services"
)

// AdminUserLister defines the interface that the admin service must implement.
type AdminUserLister interface {
	ListUsers(ctx context.Context, requester *models.UserDB) ([]models.UserDB, error)
}

// NewAdminUsersHandler returns an HTTP handler for the admin user listing.
// @Summary List all users
// @Description Returns every user record with password hashes excluded. Requires admin privileges.
// @Tags admin
// @Produce json
// @Success 200 {array} models.UserDB "All users"
// @Failure 401 {object} handlers.ErrorResponse "Unauthenticated"
// @Failure 403 {object} handlers.ErrorResponse "Admin privileges required"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/admin/users [get]
// @Security BearerAuth
func NewAdminUsersHandler(svc AdminUserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Please authenticate"})
			return
		}

		users, err := svc.ListUsers(r.Context(), user)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrAdminRequired):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "Access denied. Admin privileges required."})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "Error fetching users"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(users)
	}
}

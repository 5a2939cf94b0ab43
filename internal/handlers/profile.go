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

// ProfileGetter assembles the authenticated user's profile.
type ProfileGetter interface {
	GetProfile(ctx context.Context, user *models.UserDB) (*models.UserProfile, error)
}

// ProfileUpdater applies an allow-listed partial update to the profile.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, user *models.UserDB, upd models.ProfileUpdate) (*models.UserProfile, error)
}

// NewGetProfileHandler returns an HTTP handler for reading the profile.
// @Summary Get own profile
// @Description Returns the authenticated user's profile without the password hash.
// @Tags user
// @Produce json
// @Success 200 {object} models.UserProfile "User profile"
// @Failure 401 {object} handlers.ErrorResponse "Unauthenticated"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/user/profile [get]
// @Security BearerAuth
func NewGetProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Please authenticate"})
			return
		}

		profile, err := svc.GetProfile(r.Context(), user)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Error fetching profile"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(profile)
	}
}

// NewUpdateProfileHandler returns an HTTP handler for the partial profile
// update. The body is limited to username, email, profilePicture and
// preferences; any other field rejects the update as a whole.
// @Summary Update own profile
// @Description Applies a partial update restricted to the allow-listed profile fields.
// @Tags user
// @Accept json
// @Produce json
// @Param profileUpdate body models.ProfileUpdate true "Partial profile update"
// @Success 200 {object} models.UserProfile "Updated profile"
// @Failure 400 {object} handlers.ErrorResponse "Invalid updates"
// @Failure 401 {object} handlers.ErrorResponse "Unauthenticated"
// @Router /api/user/profile [patch]
// @Security BearerAuth
func NewUpdateProfileHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Please authenticate"})
			return
		}

		var upd models.ProfileUpdate
		dec := json.NewDecoder(r.Body)
		// Fields outside the allow-list fail the whole update at the
		// decoding boundary.
		dec.DisallowUnknownFields()
		if err := dec.Decode(&upd); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Invalid updates"})
			return
		}

		profile, err := svc.UpdateProfile(r.Context(), user, upd)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "Username or email already exists"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "Error updating profile"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(profile)
	}
}

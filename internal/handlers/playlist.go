package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/Sourav2629/VibeTune-Music-Player/internal/logger"
	"github.com/Sourav2629/VibeTune-Music-Player/internal/middlewares"
	"github.com/Sourav2629/VibeTune-Music-Player/internal/models"
	"github.com/Sourav2629/VibeTune-Music-Player/internal/services"
)

// PlaylistCreator defines the interface that the playlist service must implement.
type PlaylistCreator interface {
	Create(ctx context.Context, userID uuid.UUID, name, description string, isPublic bool) (*models.Playlist, error)
}

// CreatePlaylistRequest represents the JSON body for playlist creation
// swagger:model CreatePlaylistRequest
type CreatePlaylistRequest struct {
	// Playlist name
	// required: true
	// default: Road trip
	Name string `json:"name"`

	// Optional description
	Description string `json:"description"`

	// Visibility flag
	// default: false
	IsPublic bool `json:"isPublic"`
}

// NewCreatePlaylistHandler returns an HTTP handler for playlist creation.
// @Summary Create a playlist
// @Description Appends a new playlist to the authenticated user's sequence.
// @Tags playlists
// @Accept json
// @Produce json
// @Param createPlaylistRequest body handlers.CreatePlaylistRequest true "Playlist creation request"
// @Success 201 {object} models.Playlist "Created playlist"
// @Failure 400 {object} handlers.ErrorResponse "Playlist name is required"
// @Failure 401 {object} handlers.ErrorResponse "Unauthenticated"
// @Router /api/playlists [post]
// @Security BearerAuth
func NewCreatePlaylistHandler(svc PlaylistCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Please authenticate"})
			return
		}

		var req CreatePlaylistRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Invalid request body"})
			return
		}

		playlist, err := svc.Create(r.Context(), user.UserID, req.Name, req.Description, req.IsPublic)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPlaylistNameRequired):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "Playlist name is required"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "Error creating playlist"})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(playlist)
	}
}

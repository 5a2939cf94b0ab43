package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/Sourav2629/VibeTune-Music-Player/internal/logger"
	"github.com/Sourav2629/VibeTune-Music-Player/internal/middlewares"
)

// LikedLister defines the interface for listing a user's liked songs.
type LikedLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]string, error)
}

// LikedSongsResponse represents the liked-song listing
// swagger:model LikedSongsResponse
type LikedSongsResponse struct {
	// Liked song identifiers
	LikedSongs []string `json:"likedSongs"`
}

// NewLikedSongsHandler returns an HTTP handler for listing liked songs.
// @Summary List liked songs
// @Description Returns the authenticated user's favorite song identifiers.
// @Tags songs
// @Produce json
// @Success 200 {object} handlers.LikedSongsResponse "Liked songs"
// @Failure 401 {object} handlers.ErrorResponse "Unauthenticated"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/songs/liked [get]
// @Security BearerAuth
func NewLikedSongsHandler(svc LikedLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Please authenticate"})
			return
		}

		songs, err := svc.List(r.Context(), user.UserID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Error fetching liked songs"})
			return
		}
		if songs == nil {
			songs = []string{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LikedSongsResponse{LikedSongs: songs})
	}
}

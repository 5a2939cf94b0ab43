package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/Sourav2629/VibeTune-Music-Player/internal/logger"
	"github.com/Sourav2629/VibeTune-Music-Player/internal/middlewares"
	"github.com/Sourav2629/VibeTune-Music-Player/internal/services"
)

// Liker defines the interface for adding a song to favorites.
type Liker interface {
	Like(ctx context.Context, userID uuid.UUID, songID string) error
}

// SongRequest represents the JSON body for like/unlike requests
// swagger:model SongRequest
type SongRequest struct {
	// Song identifier
	// required: true
	// default: trackA
	SongID string `json:"songId"`
}

// SongResponse represents a successful like/unlike response
// swagger:model SongResponse
type SongResponse struct {
	// Result message
	// default: Song added to favorites
	Message string `json:"message"`

	// Song identifier
	// default: trackA
	SongID string `json:"songId"`
}

// NewLikeSongHandler returns an HTTP handler for liking a song.
// @Summary Like a song
// @Description Adds a song to the authenticated user's favorites. Liking an already-liked song fails.
// @Tags songs
// @Accept json
// @Produce json
// @Param songRequest body handlers.SongRequest true "Song to like"
// @Success 200 {object} handlers.SongResponse "Song added to favorites"
// @Failure 400 {object} handlers.ErrorResponse "Song already in favorites / invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthenticated"
// @Router /api/songs/like [post]
// @Security BearerAuth
func NewLikeSongHandler(svc Liker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Please authenticate"})
			return
		}

		var req SongRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SongID == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Song ID is required"})
			return
		}

		if err := svc.Like(r.Context(), user.UserID, req.SongID); err != nil {
			switch {
			case errors.Is(err, services.ErrSongAlreadyLiked):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "Song already in favorites"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "Error adding song to favorites"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SongResponse{
			Message: "Song added to favorites",
			SongID:  req.SongID,
		})
	}
}

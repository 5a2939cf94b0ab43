package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/Sourav2629/VibeTune-Music-Player/internal/logger"
	"github.com/Sourav2629/VibeTune-Music-Player/internal/middlewares"
)

// Unliker defines the interface for removing a song from favorites.
type Unliker interface {
	Unlike(ctx context.Context, userID uuid.UUID, songID string) error
}

// NewUnlikeSongHandler returns an HTTP handler for unliking a song.
// @Summary Unlike a song
// @Description Removes a song from the authenticated user's favorites. Removing an absent song still succeeds.
// @Tags songs
// @Accept json
// @Produce json
// @Param songRequest body handlers.SongRequest true "Song to unlike"
// @Success 200 {object} handlers.SongResponse "Song removed from favorites"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthenticated"
// @Router /api/songs/unlike [delete]
// @Security BearerAuth
func NewUnlikeSongHandler(svc Unliker) http.HandlerFunc {
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

		if err := svc.Unlike(r.Context(), user.UserID, req.SongID); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Error removing song from favorites"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SongResponse{
			Message: "Song removed from favorites",
			SongID:  req.SongID,
		})
	}
}

package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Sourav2629/VibeTune-Music-Player/internal/logger"
	"github.com/Sourav2629/VibeTune-Music-Player/internal/models"
)

const playlistColumns = `playlist_id, user_id, name, description, songs, is_public, position, created_at`

// PlaylistReadRepository reads a user's playlists.
type PlaylistReadRepository struct {
	db *sqlx.DB
}

func NewPlaylistReadRepository(db *sqlx.DB) *PlaylistReadRepository {
	return &PlaylistReadRepository{db: db}
}

// ListByUserID returns the user's playlists in sequence order.
func (r *PlaylistReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.PlaylistDB, error) {
	const query = `
		SELECT ` + playlistColumns + `
		FROM playlists
		WHERE user_id = $1
		ORDER BY position
	`

	var playlists []models.PlaylistDB
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &playlists, query, userID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"count", len(playlists),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return playlists, nil
}

// PlaylistWriteRepository mutates a user's playlists.
type PlaylistWriteRepository struct {
	db *sqlx.DB
}

func NewPlaylistWriteRepository(db *sqlx.DB) *PlaylistWriteRepository {
	return &PlaylistWriteRepository{db: db}
}

// Append adds a playlist to the end of the user's sequence and returns the
// created row.
func (r *PlaylistWriteRepository) Append(ctx context.Context, userID uuid.UUID, name, description string, isPublic bool) (*models.PlaylistDB, error) {
	const query = `
		INSERT INTO playlists (user_id, name, description, songs, is_public, position)
		VALUES ($1, $2, $3, $4, $5,
			COALESCE((SELECT MAX(position) + 1 FROM playlists WHERE user_id = $1), 0))
		RETURNING ` + playlistColumns + `
	`
	args := []any{userID, name, description, models.SongList{}, isPublic}

	var playlist models.PlaylistDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &playlist, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, name, isPublic},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &playlist, nil
}

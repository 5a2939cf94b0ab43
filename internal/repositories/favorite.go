package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Sourav2629/VibeTune-Music-Player/internal/logger"
)

// FavoriteReadRepository reads a user's favorite-song memberships.
type FavoriteReadRepository struct {
	db *sqlx.DB
}

func NewFavoriteReadRepository(db *sqlx.DB) *FavoriteReadRepository {
	return &FavoriteReadRepository{db: db}
}

// ListByUserID returns the song identifiers the user has liked.
func (r *FavoriteReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]string, error) {
	const query = `
		SELECT song_id
		FROM user_favorites
		WHERE user_id = $1
		ORDER BY added_at
	`

	songs := []string{}
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &songs, query, userID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"count", len(songs),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return songs, nil
}

// FavoriteWriteRepository mutates a user's favorite-song memberships.
type FavoriteWriteRepository struct {
	db *sqlx.DB
}

func NewFavoriteWriteRepository(db *sqlx.DB) *FavoriteWriteRepository {
	return &FavoriteWriteRepository{db: db}
}

// Add inserts the membership if absent. The ON CONFLICT clause makes the
// add atomic, so two concurrent likes of the same song cannot produce a
// duplicate row. Returns false when the song was already a favorite.
func (r *FavoriteWriteRepository) Add(ctx context.Context, userID uuid.UUID, songID string) (bool, error) {
	const query = `
		INSERT INTO user_favorites (user_id, song_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, song_id) DO NOTHING
	`

	res, err := ext(ctx, r.db).ExecContext(ctx, query, userID, songID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, songID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

// Remove deletes the membership if present. Removing an absent song is not
// an error.
func (r *FavoriteWriteRepository) Remove(ctx context.Context, userID uuid.UUID, songID string) error {
	const query = `
		DELETE FROM user_favorites
		WHERE user_id = $1 AND song_id = $2
	`

	res, err := ext(ctx, r.db).ExecContext(ctx, query, userID, songID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, songID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Sourav2629/VibeTune-Music-Player/internal/logger"
	"github.com/Sourav2629/VibeTune-Music-Player/internal/models"
)

const userColumns = `user_id, username, email, password_hash, is_admin, profile_picture, preferences, created_at, last_login`

// UserReadRepository provides read access to user records.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsernameOrEmail returns a user matching either the username or the
// email (case-insensitive). Returns nil without error when no user matches.
func (r *UserReadRepository) GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE ($1::VARCHAR IS NOT NULL AND username = $1)
		   OR ($2::VARCHAR IS NOT NULL AND email = LOWER($2))
		LIMIT 1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &user, query, username, email)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByID returns the user with the given identifier, or nil when the user
// no longer exists.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE user_id = $1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &user, query, userID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// List returns every user record. Password hashes stay on the row but are
// never serialized by the model.
func (r *UserReadRepository) List(ctx context.Context) ([]models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY created_at
	`

	var users []models.UserDB
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &users, query)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"count", len(users),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return users, nil
}

// UserWriteRepository provides write access to user records.
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and returns the created row with store-assigned
// defaults applied.
func (r *UserWriteRepository) Save(ctx context.Context, username, email, passwordHash string) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (username, email, password_hash, preferences)
		VALUES ($1, LOWER($2), $3, $4)
		RETURNING ` + userColumns + `
	`
	args := []any{username, email, passwordHash, models.DefaultPreferences()}

	var user models.UserDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &user, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, email},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// UpdateProfile applies the supplied profile fields to the user row and
// returns the updated record. Absent fields are left untouched.
func (r *UserWriteRepository) UpdateProfile(ctx context.Context, userID uuid.UUID, upd models.ProfileUpdate) (*models.UserDB, error) {
	const query = `
		UPDATE users
		SET username        = COALESCE($2, username),
		    email           = COALESCE(LOWER($3), email),
		    profile_picture = COALESCE($4, profile_picture),
		    preferences     = COALESCE($5, preferences)
		WHERE user_id = $1
		RETURNING ` + userColumns + `
	`

	var prefs any
	if upd.Preferences != nil {
		prefs = *upd.Preferences
	}

	var user models.UserDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &user, query,
		userID, upd.Username, upd.Email, upd.ProfilePicture, prefs)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// UpdateLastLogin stamps the user's last_login with the current time.
func (r *UserWriteRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	const query = `
		UPDATE users
		SET last_login = NOW()
		WHERE user_id = $1
	`

	res, err := ext(ctx, r.db).ExecContext(ctx, query, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// SetAdmin flips the admin flag for the user with the given email and returns
// the updated record, or nil when no such user exists. Used by the
// maintenance commands.
func (r *UserWriteRepository) SetAdmin(ctx context.Context, email string, isAdmin bool) (*models.UserDB, error) {
	const query = `
		UPDATE users
		SET is_admin = $2
		WHERE email = LOWER($1)
		RETURNING ` + userColumns + `
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &user, query, email, isAdmin)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email, isAdmin},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

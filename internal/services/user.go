package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/Sourav2629/VibeTune-Music-Player/internal/logger"
	"github.com/Sourav2629/VibeTune-Music-Player/internal/models"
)

// ProfileWriter defines the write operations for profile updates.
type ProfileWriter interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, upd models.ProfileUpdate) (*models.UserDB, error)
}

// FavoriteReader lists a user's favorite songs.
type FavoriteReader interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]string, error)
}

// PlaylistReader lists a user's playlists.
type PlaylistReader interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.PlaylistDB, error)
}

// ProfileService reads and updates the authenticated user's profile.
type ProfileService struct {
	reader    UserReader
	writer    ProfileWriter
	favorites FavoriteReader
	playlists PlaylistReader
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(reader UserReader, writer ProfileWriter, favorites FavoriteReader, playlists PlaylistReader) *ProfileService {
	return &ProfileService{
		reader:    reader,
		writer:    writer,
		favorites: favorites,
		playlists: playlists,
	}
}

// GetProfile assembles the full profile projection for the resolved user.
func (svc *ProfileService) GetProfile(ctx context.Context, user *models.UserDB) (*models.UserProfile, error) {
	favorites, err := svc.favorites.ListByUserID(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to list favorites", "err", err)
		return nil, err
	}

	rows, err := svc.playlists.ListByUserID(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to list playlists", "err", err)
		return nil, err
	}

	playlists := make([]models.Playlist, 0, len(rows))
	for i := range rows {
		playlists = append(playlists, rows[i].API())
	}

	return &models.UserProfile{
		UserID:         user.UserID,
		Username:       user.Username,
		Email:          user.Email,
		ProfilePicture: user.ProfilePicture,
		IsAdmin:        user.IsAdmin,
		Preferences:    user.Preferences,
		FavoriteSongs:  favorites,
		Playlists:      playlists,
		CreatedAt:      user.CreatedAt,
		LastLogin:      user.LastLogin,
	}, nil
}

// UpdateProfile applies an allow-listed partial update to the resolved user
// and returns the refreshed profile. A new username or email must stay unique
// across all users.
func (svc *ProfileService) UpdateProfile(ctx context.Context, user *models.UserDB, upd models.ProfileUpdate) (*models.UserProfile, error) {
	if upd.Empty() {
		return svc.GetProfile(ctx, user)
	}

	// Username and email are checked separately so a lookup that matches the
	// requester's own row on one field cannot mask a conflict on the other.
	if upd.Username != nil {
		existing, err := svc.reader.GetByUsernameOrEmail(ctx, upd.Username, nil)
		if err != nil {
			logger.Log.Errorw("failed to check username uniqueness", "err", err)
			return nil, err
		}
		if existing != nil && existing.UserID != user.UserID {
			logger.Log.Errorw("profile update conflicts with existing user", "user_id", user.UserID)
			return nil, ErrUserAlreadyExists
		}
	}
	if upd.Email != nil {
		existing, err := svc.reader.GetByUsernameOrEmail(ctx, nil, upd.Email)
		if err != nil {
			logger.Log.Errorw("failed to check email uniqueness", "err", err)
			return nil, err
		}
		if existing != nil && existing.UserID != user.UserID {
			logger.Log.Errorw("profile update conflicts with existing user", "user_id", user.UserID)
			return nil, ErrUserAlreadyExists
		}
	}

	updated, err := svc.writer.UpdateProfile(ctx, user.UserID, upd)
	if err != nil {
		logger.Log.Errorw("failed to update profile", "err", err)
		return nil, err
	}
	if updated == nil {
		logger.Log.Errorw("profile update target no longer exists", "user_id", user.UserID)
		return nil, ErrUserNotFound
	}

	return svc.GetProfile(ctx, updated)
}

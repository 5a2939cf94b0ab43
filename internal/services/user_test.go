package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Sourav2629/VibeTune-Music-Player/internal/models"
)

func strPtr(s string) *string { return &s }

func TestProfileService_GetProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := NewMockUserReader(ctrl)
	mockWriter := NewMockProfileWriter(ctrl)
	mockFavorites := NewMockFavoriteReader(ctrl)
	mockPlaylists := NewMockPlaylistReader(ctrl)

	svc := NewProfileService(mockReader, mockWriter, mockFavorites, mockPlaylists)
	ctx := context.Background()

	userID := uuid.New()
	user := &models.UserDB{
		UserID:         userID,
		Username:       "ana",
		Email:          "ana@example.com",
		ProfilePicture: models.DefaultProfilePicture,
		Preferences:    models.DefaultPreferences(),
		CreatedAt:      time.Now(),
	}
	playlistID := uuid.New()

	mockFavorites.EXPECT().ListByUserID(gomock.Any(), userID).
		Return([]string{"song-1", "song-2"}, nil)
	mockPlaylists.EXPECT().ListByUserID(gomock.Any(), userID).
		Return([]models.PlaylistDB{
			{PlaylistID: playlistID, UserID: userID, Name: "Chill", Songs: models.SongList{"song-1"}},
		}, nil)

	profile, err := svc.GetProfile(ctx, user)
	assert.NoError(t, err)
	assert.Equal(t, userID, profile.UserID)
	assert.Equal(t, "ana", profile.Username)
	assert.Equal(t, []string{"song-1", "song-2"}, profile.FavoriteSongs)
	assert.Len(t, profile.Playlists, 1)
	assert.Equal(t, "Chill", profile.Playlists[0].Name)
}

func TestProfileService_GetProfile_FavoritesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := NewMockUserReader(ctrl)
	mockWriter := NewMockProfileWriter(ctrl)
	mockFavorites := NewMockFavoriteReader(ctrl)
	mockPlaylists := NewMockPlaylistReader(ctrl)

	svc := NewProfileService(mockReader, mockWriter, mockFavorites, mockPlaylists)

	user := &models.UserDB{UserID: uuid.New()}
	mockFavorites.EXPECT().ListByUserID(gomock.Any(), user.UserID).
		Return(nil, errors.New("db error"))

	profile, err := svc.GetProfile(context.Background(), user)
	assert.Error(t, err)
	assert.Nil(t, profile)
}

func TestProfileService_UpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := NewMockUserReader(ctrl)
	mockWriter := NewMockProfileWriter(ctrl)
	mockFavorites := NewMockFavoriteReader(ctrl)
	mockPlaylists := NewMockPlaylistReader(ctrl)

	svc := NewProfileService(mockReader, mockWriter, mockFavorites, mockPlaylists)
	ctx := context.Background()

	userID := uuid.New()
	otherID := uuid.New()
	user := &models.UserDB{UserID: userID, Username: "ana", Email: "ana@example.com"}

	tests := []struct {
		name        string
		upd         models.ProfileUpdate
		setupMocks  func()
		expectedErr error
	}{
		{
			name: "rename succeeds",
			upd:  models.ProfileUpdate{Username: strPtr("ana2")},
			setupMocks: func() {
				mockReader.EXPECT().GetByUsernameOrEmail(gomock.Any(), gomock.Any(), gomock.Nil()).
					Return(nil, nil)
				mockWriter.EXPECT().UpdateProfile(gomock.Any(), userID, gomock.Any()).
					Return(&models.UserDB{UserID: userID, Username: "ana2", Email: "ana@example.com"}, nil)
				mockFavorites.EXPECT().ListByUserID(gomock.Any(), userID).Return([]string{}, nil)
				mockPlaylists.EXPECT().ListByUserID(gomock.Any(), userID).Return(nil, nil)
			},
		},
		{
			name: "username taken by another user",
			upd:  models.ProfileUpdate{Username: strPtr("bob")},
			setupMocks: func() {
				mockReader.EXPECT().GetByUsernameOrEmail(gomock.Any(), gomock.Any(), gomock.Nil()).
					Return(&models.UserDB{UserID: otherID, Username: "bob"}, nil)
			},
			expectedErr: ErrUserAlreadyExists,
		},
		{
			name: "setting own email is not a conflict",
			upd:  models.ProfileUpdate{Email: strPtr("ana@example.com")},
			setupMocks: func() {
				mockReader.EXPECT().GetByUsernameOrEmail(gomock.Any(), gomock.Nil(), gomock.Any()).
					Return(user, nil)
				mockWriter.EXPECT().UpdateProfile(gomock.Any(), userID, gomock.Any()).
					Return(user, nil)
				mockFavorites.EXPECT().ListByUserID(gomock.Any(), userID).Return([]string{}, nil)
				mockPlaylists.EXPECT().ListByUserID(gomock.Any(), userID).Return(nil, nil)
			},
		},
		{
			// A full-form submit resends the unchanged username alongside a
			// new email. The username lookup matching the requester's own
			// row must not mask the email conflict.
			name: "own username with taken email",
			upd:  models.ProfileUpdate{Username: strPtr("ana"), Email: strPtr("bob@example.com")},
			setupMocks: func() {
				mockReader.EXPECT().GetByUsernameOrEmail(gomock.Any(), gomock.Any(), gomock.Nil()).
					Return(user, nil)
				mockReader.EXPECT().GetByUsernameOrEmail(gomock.Any(), gomock.Nil(), gomock.Any()).
					Return(&models.UserDB{UserID: otherID, Email: "bob@example.com"}, nil)
			},
			expectedErr: ErrUserAlreadyExists,
		},
		{
			name: "preferences only skips uniqueness check",
			upd: models.ProfileUpdate{
				Preferences: &models.Preferences{Theme: "light", Language: "en", Autoplay: false},
			},
			setupMocks: func() {
				mockWriter.EXPECT().UpdateProfile(gomock.Any(), userID, gomock.Any()).
					Return(user, nil)
				mockFavorites.EXPECT().ListByUserID(gomock.Any(), userID).Return([]string{}, nil)
				mockPlaylists.EXPECT().ListByUserID(gomock.Any(), userID).Return(nil, nil)
			},
		},
		{
			name: "target deleted concurrently",
			upd:  models.ProfileUpdate{ProfilePicture: strPtr("/img/a.png")},
			setupMocks: func() {
				mockWriter.EXPECT().UpdateProfile(gomock.Any(), userID, gomock.Any()).
					Return(nil, nil)
			},
			expectedErr: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()

			profile, err := svc.UpdateProfile(ctx, user, tt.upd)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, profile)
				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, profile)
		})
	}
}

func TestProfileService_UpdateProfile_EmptyReturnsProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := NewMockUserReader(ctrl)
	mockWriter := NewMockProfileWriter(ctrl)
	mockFavorites := NewMockFavoriteReader(ctrl)
	mockPlaylists := NewMockPlaylistReader(ctrl)

	svc := NewProfileService(mockReader, mockWriter, mockFavorites, mockPlaylists)

	user := &models.UserDB{UserID: uuid.New(), Username: "ana"}
	mockFavorites.EXPECT().ListByUserID(gomock.Any(), user.UserID).Return([]string{}, nil)
	mockPlaylists.EXPECT().ListByUserID(gomock.Any(), user.UserID).Return(nil, nil)

	// No fields set: no write happens, the current profile comes back
	profile, err := svc.UpdateProfile(context.Background(), user, models.ProfileUpdate{})
	assert.NoError(t, err)
	assert.Equal(t, "ana", profile.Username)
}

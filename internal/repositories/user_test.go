package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Sourav2629/VibeTune-Music-Player/internal/models"
)

func TestUserWriteRepository_Save(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	user, err := repo.Save(ctx, "alice", "Alice@Example.com", "hashed-password")
	assert.NoError(t, err)
	assert.NotNil(t, user)

	assert.NotEqual(t, uuid.Nil, user.UserID)
	assert.Equal(t, "alice", user.Username)
	// Emails store lowercased
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "hashed-password", user.PasswordHash)
	assert.False(t, user.IsAdmin)
	assert.Equal(t, models.DefaultPreferences(), user.Preferences)
	assert.False(t, user.CreatedAt.IsZero())

	t.Run("duplicate username rejected", func(t *testing.T) {
		_, err := repo.Save(ctx, "alice", "other@example.com", "hash")
		assert.Error(t, err)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		_, err := repo.Save(ctx, "alice2", "alice@example.com", "hash")
		assert.Error(t, err)
	})
}

func TestUserReadRepository_GetByUsernameOrEmail(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	_, err := writeRepo.Save(ctx, "charlie", "charlie@example.com", "hash1")
	assert.NoError(t, err)
	_, err = writeRepo.Save(ctx, "dave", "dave@example.com", "hash2")
	assert.NoError(t, err)

	t.Run("ByUsername", func(t *testing.T) {
		username := "charlie"
		user, err := readRepo.GetByUsernameOrEmail(ctx, &username, nil)
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "charlie", user.Username)
	})

	t.Run("ByEmail", func(t *testing.T) {
		email := "dave@example.com"
		user, err := readRepo.GetByUsernameOrEmail(ctx, nil, &email)
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "dave", user.Username)
	})

	t.Run("EmailLookupIsCaseInsensitive", func(t *testing.T) {
		email := "DAVE@example.com"
		user, err := readRepo.GetByUsernameOrEmail(ctx, nil, &email)
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "dave", user.Username)
	})

	t.Run("EitherFieldMatches", func(t *testing.T) {
		// A registration collides when the username belongs to one user
		// and the email to another.
		username := "charlie"
		email := "unused@example.com"
		user, err := readRepo.GetByUsernameOrEmail(ctx, &username, &email)
		assert.NoError(t, err)
		assert.NotNil(t, user)
	})

	t.Run("NotFound", func(t *testing.T) {
		username := "nonexistent"
		user, err := readRepo.GetByUsernameOrEmail(ctx, &username, nil)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestUserReadRepository_GetByID(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	saved, err := writeRepo.Save(ctx, "erin", "erin@example.com", "hash")
	assert.NoError(t, err)

	t.Run("Found", func(t *testing.T) {
		user, err := readRepo.GetByID(ctx, saved.UserID)
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "erin", user.Username)
	})

	t.Run("NotFound", func(t *testing.T) {
		user, err := readRepo.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestUserReadRepository_List(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	_, err := writeRepo.Save(ctx, "first", "first@example.com", "hash")
	assert.NoError(t, err)
	_, err = writeRepo.Save(ctx, "second", "second@example.com", "hash")
	assert.NoError(t, err)

	users, err := readRepo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, "first", users[0].Username)
	assert.Equal(t, "second", users[1].Username)
}

func TestUserWriteRepository_UpdateProfile(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	ctx := context.Background()

	saved, err := writeRepo.Save(ctx, "frank", "frank@example.com", "hash")
	assert.NoError(t, err)

	t.Run("PartialUpdateLeavesOtherFields", func(t *testing.T) {
		username := "franklin"
		updated, err := writeRepo.UpdateProfile(ctx, saved.UserID, models.ProfileUpdate{Username: &username})
		assert.NoError(t, err)
		assert.NotNil(t, updated)
		assert.Equal(t, "franklin", updated.Username)
		assert.Equal(t, "frank@example.com", updated.Email)
		assert.Equal(t, saved.Preferences, updated.Preferences)
	})

	t.Run("PreferencesReplaceWholesale", func(t *testing.T) {
		prefs := models.Preferences{Theme: "light", Language: "de", Autoplay: false}
		updated, err := writeRepo.UpdateProfile(ctx, saved.UserID, models.ProfileUpdate{Preferences: &prefs})
		assert.NoError(t, err)
		assert.Equal(t, prefs, updated.Preferences)
	})

	t.Run("MissingUserReturnsNil", func(t *testing.T) {
		picture := "img/avatar.png"
		updated, err := writeRepo.UpdateProfile(ctx, uuid.New(), models.ProfileUpdate{ProfilePicture: &picture})
		assert.NoError(t, err)
		assert.Nil(t, updated)
	})
}

func TestUserWriteRepository_UpdateLastLogin(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	saved, err := writeRepo.Save(ctx, "grace", "grace@example.com", "hash")
	assert.NoError(t, err)

	assert.NoError(t, writeRepo.UpdateLastLogin(ctx, saved.UserID))

	user, err := readRepo.GetByID(ctx, saved.UserID)
	assert.NoError(t, err)
	assert.True(t, user.LastLogin.Equal(saved.LastLogin) || user.LastLogin.After(saved.LastLogin))
}

func TestUserWriteRepository_SetAdmin(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	ctx := context.Background()

	saved, err := writeRepo.Save(ctx, "heidi", "heidi@example.com", "hash")
	assert.NoError(t, err)
	assert.False(t, saved.IsAdmin)

	t.Run("Promote", func(t *testing.T) {
		user, err := writeRepo.SetAdmin(ctx, "HEIDI@example.com", true)
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.True(t, user.IsAdmin)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		user, err := writeRepo.SetAdmin(ctx, "nobody@example.com", true)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Sourav2629/VibeTune-Music-Player/internal/models"
)

func TestAdminService_ListUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLister := NewMockUserLister(ctrl)
	svc := NewAdminService(mockLister)
	ctx := context.Background()

	admin := &models.UserDB{UserID: uuid.New(), Username: "root", IsAdmin: true}
	regular := &models.UserDB{UserID: uuid.New(), Username: "ana"}

	all := []models.UserDB{*admin, *regular}

	t.Run("admin sees all users", func(t *testing.T) {
		mockLister.EXPECT().List(gomock.Any()).Return(all, nil)

		users, err := svc.ListUsers(ctx, admin)
		assert.NoError(t, err)
		assert.Len(t, users, 2)
	})

	t.Run("non-admin is denied", func(t *testing.T) {
		users, err := svc.ListUsers(ctx, regular)
		assert.ErrorIs(t, err, ErrAdminRequired)
		assert.Nil(t, users)
	})

	t.Run("lister error", func(t *testing.T) {
		mockLister.EXPECT().List(gomock.Any()).Return(nil, errors.New("db error"))

		users, err := svc.ListUsers(ctx, admin)
		assert.Error(t, err)
		assert.Nil(t, users)
	})
}

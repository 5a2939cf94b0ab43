package services

import (
	"context"
	"errors"

	"github.com/Sourav2629/VibeTune-Music-Player/internal/logger"
	"github.com/Sourav2629/VibeTune-Music-Player/internal/models"
)

var (
	// ErrAdminRequired is returned when a non-admin calls an admin operation.
	ErrAdminRequired = errors.New("admin privileges required")
)

// UserLister lists every user record.
type UserLister interface {
	List(ctx context.Context) ([]models.UserDB, error)
}

// AdminService serves administrative read operations.
type AdminService struct {
	lister UserLister
}

// NewAdminService creates a new AdminService instance.
func NewAdminService(lister UserLister) *AdminService {
	return &AdminService{lister: lister}
}

// ListUsers returns every user record when the requester is an admin.
// Password hashes never leave the model's serialization boundary.
func (svc *AdminService) ListUsers(ctx context.Context, requester *models.UserDB) ([]models.UserDB, error) {
	if !requester.IsAdmin {
		logger.Log.Errorw("admin listing denied", "user_id", requester.UserID)
		return nil, ErrAdminRequired
	}

	users, err := svc.lister.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}

	return users, nil
}

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/Sourav2629/VibeTune-Music-Player/internal/models"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := NewMockUserReader(ctrl)
	mockWriter := NewMockUserWriter(ctrl)
	mockJWT := NewMockJWTGenerator(ctrl)

	svc := NewAuthService(mockReader, mockWriter, mockJWT)
	ctx := context.Background()

	userID := uuid.New()
	saved := &models.UserDB{UserID: userID, Username: "ana", Email: "ana@example.com"}

	tests := []struct {
		name        string
		username    string
		email       string
		password    string
		setupMocks  func()
		expectedErr error
		expectToken bool
	}{
		{
			name:     "successful registration",
			username: "ana",
			email:    "ana@example.com",
			password: "secret123",
			setupMocks: func() {
				mockReader.EXPECT().GetByUsernameOrEmail(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)
				mockWriter.EXPECT().Save(gomock.Any(), "ana", "ana@example.com", gomock.Any()).
					Return(saved, nil)
				mockJWT.EXPECT().Generate(gomock.Any(), userID).
					Return("token", nil)
			},
			expectToken: true,
		},
		{
			name:        "username too short",
			username:    "ab",
			email:       "ab@example.com",
			password:    "secret123",
			setupMocks:  func() {},
			expectedErr: ErrInvalidInput,
		},
		{
			name:        "password too short",
			username:    "ana",
			email:       "ana@example.com",
			password:    "12345",
			setupMocks:  func() {},
			expectedErr: ErrInvalidInput,
		},
		{
			name:        "malformed email",
			username:    "ana",
			email:       "not-an-email",
			password:    "secret123",
			setupMocks:  func() {},
			expectedErr: ErrInvalidInput,
		},
		{
			name:     "user already exists",
			username: "ana",
			email:    "ana@example.com",
			password: "secret123",
			setupMocks: func() {
				mockReader.EXPECT().GetByUsernameOrEmail(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(saved, nil)
			},
			expectedErr: ErrUserAlreadyExists,
		},
		{
			name:     "save fails",
			username: "ana",
			email:    "ana@example.com",
			password: "secret123",
			setupMocks: func() {
				mockReader.EXPECT().GetByUsernameOrEmail(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)
				mockWriter.EXPECT().Save(gomock.Any(), "ana", "ana@example.com", gomock.Any()).
					Return(nil, errors.New("db error"))
			},
			expectedErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()

			user, token, err := svc.Register(ctx, tt.username, tt.email, tt.password)

			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.EqualError(t, err, tt.expectedErr.Error())
				assert.Nil(t, user)
				assert.Empty(t, token)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, saved, user)
			if tt.expectToken {
				assert.NotEmpty(t, token)
			}
		})
	}
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := NewMockUserReader(ctrl)
	mockWriter := NewMockUserWriter(ctrl)
	mockJWT := NewMockJWTGenerator(ctrl)

	svc := NewAuthService(mockReader, mockWriter, mockJWT)
	ctx := context.Background()

	userID := uuid.New()
	password := "secret123"

	mockReader.EXPECT().GetByUsernameOrEmail(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)
	mockWriter.EXPECT().Save(gomock.Any(), "ana", "ana@example.com", gomock.Any()).
		DoAndReturn(func(_ context.Context, username, email, passwordHash string) (*models.UserDB, error) {
			// The stored value must be a bcrypt hash of the submitted password
			assert.NotEqual(t, password, passwordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)))
			return &models.UserDB{UserID: userID, Username: username, Email: email}, nil
		})
	mockJWT.EXPECT().Generate(gomock.Any(), userID).Return("token", nil)

	_, _, err := svc.Register(ctx, "ana", "ana@example.com", password)
	assert.NoError(t, err)
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := NewMockUserReader(ctrl)
	mockWriter := NewMockUserWriter(ctrl)
	mockJWT := NewMockJWTGenerator(ctrl)

	svc := NewAuthService(mockReader, mockWriter, mockJWT)
	ctx := context.Background()

	userID := uuid.New()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	stored := &models.UserDB{
		UserID:       userID,
		Username:     "ana",
		Email:        "ana@example.com",
		PasswordHash: string(hash),
	}

	tests := []struct {
		name        string
		email       string
		password    string
		setupMocks  func()
		expectedErr error
	}{
		{
			name:     "successful login",
			email:    "ana@example.com",
			password: "secret123",
			setupMocks: func() {
				mockReader.EXPECT().GetByUsernameOrEmail(gomock.Any(), gomock.Nil(), gomock.Any()).
					Return(stored, nil)
				mockWriter.EXPECT().UpdateLastLogin(gomock.Any(), userID).
					Return(nil)
				mockJWT.EXPECT().Generate(gomock.Any(), userID).
					Return("token", nil)
			},
		},
		{
			name:     "unknown email",
			email:    "ghost@example.com",
			password: "secret123",
			setupMocks: func() {
				mockReader.EXPECT().GetByUsernameOrEmail(gomock.Any(), gomock.Nil(), gomock.Any()).
					Return(nil, nil)
			},
			expectedErr: ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "ana@example.com",
			password: "wrong-password",
			setupMocks: func() {
				mockReader.EXPECT().GetByUsernameOrEmail(gomock.Any(), gomock.Nil(), gomock.Any()).
					Return(stored, nil)
			},
			expectedErr: ErrInvalidCredentials,
		},
		{
			name:     "reader error",
			email:    "ana@example.com",
			password: "secret123",
			setupMocks: func() {
				mockReader.EXPECT().GetByUsernameOrEmail(gomock.Any(), gomock.Nil(), gomock.Any()).
					Return(nil, errors.New("db error"))
			},
			expectedErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()

			user, token, err := svc.Login(ctx, tt.email, tt.password)

			if tt.expectedErr != nil {
				assert.EqualError(t, err, tt.expectedErr.Error())
				assert.Nil(t, user)
				assert.Empty(t, token)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, userID, user.UserID)
			assert.Equal(t, "token", token)
			assert.False(t, user.LastLogin.IsZero())
		})
	}
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Sourav2629/VibeTune-Music-Player/internal/models"
	"github.com/Sourav2629/VibeTune-Music-Player/internal/services"
)

func TestLikeSongHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLiker := NewMockLiker(ctrl)

	userID := uuid.New()
	user := &models.UserDB{UserID: userID, Username: "ana"}

	tests := []struct {
		name            string
		body            string
		setupMocks      func()
		expectedStatus  int
		expectedMessage string
	}{
		{
			name: "like succeeds",
			body: `{"songId":"trackA"}`,
			setupMocks: func() {
				mockLiker.EXPECT().Like(gomock.Any(), userID, "trackA").Return(nil)
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: "Song added to favorites",
		},
		{
			name:            "missing song id",
			body:            `{}`,
			setupMocks:      func() {},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Song ID is required",
		},
		{
			name:            "empty song id",
			body:            `{"songId":""}`,
			setupMocks:      func() {},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Song ID is required",
		},
		{
			name: "already liked",
			body: `{"songId":"trackA"}`,
			setupMocks: func() {
				mockLiker.EXPECT().Like(gomock.Any(), userID, "trackA").
					Return(services.ErrSongAlreadyLiked)
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Song already in favorites",
		},
		{
			name: "internal error",
			body: `{"songId":"trackA"}`,
			setupMocks: func() {
				mockLiker.EXPECT().Like(gomock.Any(), userID, "trackA").
					Return(errors.New("db error"))
			},
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Error adding song to favorites",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()
			handler := NewLikeSongHandler(mockLiker)

			req := authenticated(
				httptest.NewRequest(http.MethodPost, "/api/songs/like", strings.NewReader(tt.body)),
				user,
			)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			var body map[string]string
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
			assert.Equal(t, tt.expectedMessage, body["message"])
		})
	}
}

func TestLikeSongHandler_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewLikeSongHandler(NewMockLiker(ctrl))
	req := httptest.NewRequest(http.MethodPost, "/api/songs/like", strings.NewReader(`{"songId":"trackA"}`))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

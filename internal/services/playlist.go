package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Sourav2629/VibeTune-Music-Player/internal/logger"
	"github.com/Sourav2629/VibeTune-Music-Player/internal/models"
)

var (
	// ErrPlaylistNameRequired is returned when a playlist is created without a name.
	ErrPlaylistNameRequired = errors.New("playlist name is required")
)

// PlaylistWriter appends playlists to a user's sequence.
type PlaylistWriter interface {
	Append(ctx context.Context, userID uuid.UUID, name, description string, isPublic bool) (*models.PlaylistDB, error)
}

// PlaylistService creates playlists owned by the authenticated user.
type PlaylistService struct {
	writeRepo   PlaylistWriter
	kafkaWriter KafkaWriter
}

// NewPlaylistService creates a new PlaylistService. The Kafka writer may be
// nil, in which case event publishing is skipped.
func NewPlaylistService(writeRepo PlaylistWriter, kafkaWriter KafkaWriter) *PlaylistService {
	return &PlaylistService{
		writeRepo:   writeRepo,
		kafkaWriter: kafkaWriter,
	}
}

// Create appends a new playlist to the user's sequence and returns it.
func (s *PlaylistService) Create(ctx context.Context, userID uuid.UUID, name, description string, isPublic bool) (*models.Playlist, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrPlaylistNameRequired
	}

	row, err := s.writeRepo.Append(ctx, userID, name, description, isPublic)
	if err != nil {
		logger.Log.Errorw("failed to create playlist", "user_id", userID, "name", name, "error", err)
		return nil, err
	}

	publishEvent(ctx, s.kafkaWriter, models.Event{
		EventID:   uuid.New().String(),
		Timestamp: time.Now().Unix(),
		UserID:    userID.String(),
		Type:      models.EventPlaylistCreated,
		Playlist:  row.Name,
	})

	playlist := row.API()
	return &playlist, nil
}

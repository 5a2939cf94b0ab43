package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/Sourav2629/VibeTune-Music-Player/internal/logger"
	"github.com/Sourav2629/VibeTune-Music-Player/internal/models"
)

var (
	// ErrSongAlreadyLiked is returned when the song is already in the user's favorites.
	ErrSongAlreadyLiked = errors.New("song already in favorites")
)

// FavoriteWriter defines atomic set-membership mutations on favorites.
type FavoriteWriter interface {
	Add(ctx context.Context, userID uuid.UUID, songID string) (bool, error)    // Adds if absent; false when already present
	Remove(ctx context.Context, userID uuid.UUID, songID string) error         // Removes if present; absent is not an error
}

// FavoriteCache caches a user's liked-song list.
type FavoriteCache interface {
	GetLikedSongs(ctx context.Context, userID uuid.UUID) ([]string, error)
	SetLikedSongs(ctx context.Context, userID uuid.UUID, songs []string) error
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// FavoriteService handles liking, unliking and listing favorite songs.
type FavoriteService struct {
	readRepo    FavoriteReader
	writeRepo   FavoriteWriter
	cacheRepo   FavoriteCache
	kafkaWriter KafkaWriter
}

// NewFavoriteService creates a new FavoriteService. Cache and Kafka writer
// may be nil, in which case caching and event publishing are skipped.
func NewFavoriteService(readRepo FavoriteReader, writeRepo FavoriteWriter, cacheRepo FavoriteCache, kafkaWriter KafkaWriter) *FavoriteService {
	return &FavoriteService{
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		cacheRepo:   cacheRepo,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a user-activity event to Kafka.
func (s *FavoriteService) publishEvent(ctx context.Context, event models.Event) {
	publishEvent(ctx, s.kafkaWriter, event)
}

// publishEvent is shared by the services that emit activity events.
func publishEvent(ctx context.Context, w KafkaWriter, event models.Event) {
	if w == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "event_id", event.EventID, "type", event.Type)
	}
}

// Like adds a song to the user's favorites. Liking an already-liked song
// fails with ErrSongAlreadyLiked and leaves the set unchanged.
func (s *FavoriteService) Like(ctx context.Context, userID uuid.UUID, songID string) error {
	added, err := s.writeRepo.Add(ctx, userID, songID)
	if err != nil {
		logger.Log.Errorw("failed to add favorite", "user_id", userID, "song_id", songID, "error", err)
		return err
	}
	if !added {
		return ErrSongAlreadyLiked
	}

	s.invalidateCache(ctx, userID)
	s.publishEvent(ctx, models.Event{
		EventID:   uuid.New().String(),
		Timestamp: time.Now().Unix(),
		UserID:    userID.String(),
		Type:      models.EventSongLiked,
		SongID:    songID,
	})

	return nil
}

// Unlike removes a song from the user's favorites. Removing a song that is
// not a favorite succeeds without error.
func (s *FavoriteService) Unlike(ctx context.Context, userID uuid.UUID, songID string) error {
	if err := s.writeRepo.Remove(ctx, userID, songID); err != nil {
		logger.Log.Errorw("failed to remove favorite", "user_id", userID, "song_id", songID, "error", err)
		return err
	}

	s.invalidateCache(ctx, userID)
	s.publishEvent(ctx, models.Event{
		EventID:   uuid.New().String(),
		Timestamp: time.Now().Unix(),
		UserID:    userID.String(),
		Type:      models.EventSongUnliked,
		SongID:    songID,
	})

	return nil
}

// List returns the user's liked songs, served from cache when possible.
func (s *FavoriteService) List(ctx context.Context, userID uuid.UUID) ([]string, error) {
	if s.cacheRepo != nil {
		if songs, err := s.cacheRepo.GetLikedSongs(ctx, userID); err == nil {
			return songs, nil
		}
	}

	songs, err := s.readRepo.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list favorites", "user_id", userID, "error", err)
		return nil, err
	}

	if s.cacheRepo != nil {
		if err := s.cacheRepo.SetLikedSongs(ctx, userID, songs); err != nil {
			logger.Log.Warnw("failed to cache liked songs", "user_id", userID, "error", err)
		}
	}

	return songs, nil
}

func (s *FavoriteService) invalidateCache(ctx context.Context, userID uuid.UUID) {
	if s.cacheRepo == nil {
		return
	}
	if err := s.cacheRepo.Invalidate(ctx, userID); err != nil {
		logger.Log.Warnw("failed to invalidate favorites cache", "user_id", userID, "error", err)
	}
}

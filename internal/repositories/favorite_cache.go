package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Sourav2629/VibeTune-Music-Player/internal/logger"
)

// FavoriteCacheRepository provides a cached copy of a user's liked songs
// using Redis.
type FavoriteCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached entries
}

// NewFavoriteCacheRepository creates a new repository instance with the given TTL.
func NewFavoriteCacheRepository(client *redis.Client, expiration time.Duration) *FavoriteCacheRepository {
	return &FavoriteCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetLikedSongs fetches the cached liked-song list for a user.
func (r *FavoriteCacheRepository) GetLikedSongs(ctx context.Context, userID uuid.UUID) ([]string, error) {
	key := fmt.Sprintf("favorites:%s", userID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow("cache read",
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("liked songs not found in cache for %s", userID)
		}
		return nil, err
	}

	var songs []string
	if err := json.Unmarshal([]byte(val), &songs); err != nil {
		logger.Log.Infow("cache read",
			"key", key,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow("cache read",
		"key", key,
		"count", len(songs),
		"error", nil,
	)

	return songs, nil
}

// SetLikedSongs caches the liked-song list for a user with expiration.
func (r *FavoriteCacheRepository) SetLikedSongs(ctx context.Context, userID uuid.UUID, songs []string) error {
	key := fmt.Sprintf("favorites:%s", userID)

	data, err := json.Marshal(songs)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("cache write",
		"key", key,
		"count", len(songs),
		"error", err,
	)

	return err
}

// Invalidate drops the cached liked-song list for a user.
func (r *FavoriteCacheRepository) Invalidate(ctx context.Context, userID uuid.UUID) error {
	key := fmt.Sprintf("favorites:%s", userID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("cache invalidate",
		"key", key,
		"error", err,
	)

	return err
}

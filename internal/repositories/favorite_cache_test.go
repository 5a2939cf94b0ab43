package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestFavoriteCacheRepository(t *testing.T) {
	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewFavoriteCacheRepository(rdb, 2*time.Second)

	t.Run("Set and Get liked songs", func(t *testing.T) {
		userID := uuid.New()
		songs := []string{"trackA", "trackB"}

		err := repo.SetLikedSongs(ctx, userID, songs)
		assert.NoError(t, err)

		got, err := repo.GetLikedSongs(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, songs, got)
	})

	t.Run("Get missing key returns error", func(t *testing.T) {
		_, err := repo.GetLikedSongs(ctx, uuid.New())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found in cache")
	})

	t.Run("Invalidate drops the entry", func(t *testing.T) {
		userID := uuid.New()

		err := repo.SetLikedSongs(ctx, userID, []string{"trackC"})
		assert.NoError(t, err)

		err = repo.Invalidate(ctx, userID)
		assert.NoError(t, err)

		_, err = repo.GetLikedSongs(ctx, userID)
		assert.Error(t, err)
	})

	t.Run("Cached value expires", func(t *testing.T) {
		userID := uuid.New()

		err := repo.SetLikedSongs(ctx, userID, []string{"trackD"})
		assert.NoError(t, err)

		// Wait for expiration (2s)
		time.Sleep(3 * time.Second)

		_, err = repo.GetLikedSongs(ctx, userID)
		assert.Error(t, err)
	})
}

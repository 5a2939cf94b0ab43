package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/Sourav2629/VibeTune-Music-Player/internal/handlers"
	appjwt "github.com/Sourav2629/VibeTune-Music-Player/internal/jwt"
	"github.com/Sourav2629/VibeTune-Music-Player/internal/logger"
	"github.com/Sourav2629/VibeTune-Music-Player/internal/middlewares"
	"github.com/Sourav2629/VibeTune-Music-Player/internal/repositories"
	"github.com/Sourav2629/VibeTune-Music-Player/internal/services"

	_ "github.com/Sourav2629/VibeTune-Music-Player/docs"
	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title VibeTune account service API
// @version 1.0.0
// @description Account, favorites and playlist backend for the VibeTune music player
// @host localhost:3000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisAddr, redisDB, redisPassword, cacheTTLSecond,
		kafkaBroker, kafkaTopic,
		jwtSecret, jwtExpSecond, songsDir,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisAddr, redisDB, redisPassword, cacheTTLSecond,
		kafkaBroker, kafkaTopic,
		jwtSecret, jwtExpSecond, songsDir,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, logging, and JWT configuration.
// The signing secret and database password are mandatory: the process must
// refuse to start with a silent default for either.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisAddr string, redisDB int, redisPassword string, cacheTTLSecond int,
	kafkaBroker, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
	songsDir string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "3000")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "vibetune")
	pgDB = getEnv("POSTGRES_DB", "vibetune")
	if pgPassword = getEnv("POSTGRES_PASSWORD", ""); pgPassword == "" {
		err = errors.New("POSTGRES_PASSWORD is required")
		return
	}
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config, the cache is disabled when no address is set
	redisAddr = getEnv("REDIS_ADDR", "")
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if cacheTTLSecond, err = strconv.Atoi(getEnv("CACHE_TTL_SECOND", "300")); err != nil {
		return
	}

	// Kafka config, event publishing is disabled when no broker is set
	kafkaBroker = getEnv("KAFKA_BROKER", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "vibetune.activity")

	// JWT config
	if jwtSecretKey = getEnv("JWT_SECRET_KEY", ""); jwtSecretKey == "" {
		err = errors.New("JWT_SECRET_KEY is required")
		return
	}
	// Zero keeps issued tokens without an exp claim.
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "0")); err != nil {
		return
	}

	// Songs library config
	songsDir = getEnv("SONGS_DIR", "./Frontend/Songs")

	return
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisAddr string, redisDB int, redisPassword string, cacheTTLSecond int,
	kafkaBroker, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
	songsDir string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis when configured
	var favoriteCache services.FavoriteCache
	if redisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: redisPassword,
			DB:       redisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Log.Fatal("Redis connection error:", err)
		}
		defer rdb.Close()
		favoriteCache = repositories.NewFavoriteCacheRepository(rdb, time.Duration(cacheTTLSecond)*time.Second)
	} else {
		logger.Log.Info("Redis not configured, favorites cache disabled")
	}

	// Connect to Kafka when configured
	var kafkaWriter services.KafkaWriter
	if kafkaBroker != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaBroker),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
	} else {
		logger.Log.Info("Kafka not configured, activity events disabled")
	}

	// Initialize JWT service
	tokener := appjwt.New(
		appjwt.WithSecretKey(jwtSecretKey),
		appjwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	favoriteReadRepo := repositories.NewFavoriteReadRepository(db)
	favoriteWriteRepo := repositories.NewFavoriteWriteRepository(db)
	playlistReadRepo := repositories.NewPlaylistReadRepository(db)
	playlistWriteRepo := repositories.NewPlaylistWriteRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokener)
	profileService := services.NewProfileService(userReadRepo, userWriteRepo, favoriteReadRepo, playlistReadRepo)
	favoriteService := services.NewFavoriteService(favoriteReadRepo, favoriteWriteRepo, favoriteCache, kafkaWriter)
	playlistService := services.NewPlaylistService(playlistWriteRepo, kafkaWriter)
	adminService := services.NewAdminService(userReadRepo)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	txMiddleware := middlewares.TxMiddleware(db)

	// Public routes
	r.With(txMiddleware).Post("/api/auth/register", handlers.NewRegisterHandler(authService))
	r.With(txMiddleware).Post("/api/auth/login", handlers.NewLoginHandler(authService))
	r.Get("/Songs/*", handlers.NewSongsHandler(songsDir))

	// Protected routes with auth middleware
	authMiddleware := middlewares.AuthMiddleware(tokener, userReadRepo)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/api/user/profile", handlers.NewGetProfileHandler(profileService))
		r.With(txMiddleware).Patch("/api/user/profile", handlers.NewUpdateProfileHandler(profileService))
		r.With(txMiddleware).Post("/api/playlists", handlers.NewCreatePlaylistHandler(playlistService))
		r.Get("/api/admin/users", handlers.NewAdminUsersHandler(adminService))
		r.With(txMiddleware).Post("/api/songs/like", handlers.NewLikeSongHandler(favoriteService))
		r.With(txMiddleware).Delete("/api/songs/unlike", handlers.NewUnlikeSongHandler(favoriteService))
		r.Get("/api/songs/liked", handlers.NewLikedSongsHandler(favoriteService))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("VibeTune server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

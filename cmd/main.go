package main

import (
	"context"
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

	"github.com/ecotrack-team/ecotrack/internal/handlers"

	"github.com/ecotrack-team/ecotrack/internal/jwt"
	"github.com/ecotrack-team/ecotrack/internal/logger"
	"github.com/ecotrack-team/ecotrack/internal/migrations"
	"github.com/ecotrack-team/ecotrack/internal/repositories"
	"github.com/ecotrack-team/ecotrack/internal/scheduler"
	"github.com/ecotrack-team/ecotrack/internal/services"

	"github.com/ecotrack-team/ecotrack/internal/middlewares"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title ecotrack API
// @version 1.0.0
// @description Service for tracking carbon footprints, eco challenges and the community forum
// @host localhost:8080
// @BasePath /api
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
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaBroker, kafkaTopic,
		jwtSecret, jwtExp,
		expirySchedule, leaderboardTTL,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaBroker, kafkaTopic,
		jwtSecret, jwtExp,
		expirySchedule, leaderboardTTL,
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

// parseConfig loads environment variables from a file and returns
// all application, database, Redis, Kafka, logging, JWT, and scheduling
// configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort int, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaBroker, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
	expirySchedule string, leaderboardTTLSecond int,
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
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "ecotrack")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// Kafka config
	kafkaBroker = getEnv("KAFKA_BROKER", "localhost:9092")
	kafkaTopic = getEnv("KAFKA_TOPIC", "ecotrack-events")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	// Scheduling and cache config
	expirySchedule = getEnv("CHALLENGE_EXPIRY_SCHEDULE", "@hourly")
	if leaderboardTTLSecond, err = strconv.Atoi(getEnv("LEADERBOARD_CACHE_TTL_SECOND", "60")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It applies migrations, sets up routes and middleware, starts the
// background scheduler, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaBroker, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
	expirySchedule string, leaderboardTTLSecond int,
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
	logger.Log.Infof("Connecting to PostgreSQL: %s", dsn)

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

	if err := migrations.Apply(ctx, db); err != nil {
		logger.Log.Fatal("failed to apply migrations:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for domain events
	kafkaWriter := &kafka.Writer{
		Addr:         kafka.TCP(kafkaBroker),
		Topic:        kafkaTopic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
	}
	defer kafkaWriter.Close()

	// Initialize JWT service
	jwt := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize repositories
	txGetter := middlewares.GetTxFromContext

	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	footprintWriteRepo := repositories.NewFootprintWriteRepository(db, txGetter)
	footprintReadRepo := repositories.NewFootprintReadRepository(db)
	challengeWriteRepo := repositories.NewChallengeWriteRepository(db, txGetter)
	challengeReadRepo := repositories.NewChallengeReadRepository(db)
	communityWriteRepo := repositories.NewCommunityWriteRepository(db, txGetter)
	communityReadRepo := repositories.NewCommunityReadRepository(db)
	leaderboardReadRepo := repositories.NewLeaderboardReadRepository(db)
	leaderboardCacheRepo := repositories.NewLeaderboardCacheRepository(rdb, time.Duration(leaderboardTTLSecond)*time.Second)
	educationReadRepo := repositories.NewEducationReadRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwt)
	footprintService := services.NewFootprintService(footprintWriteRepo, footprintReadRepo, kafkaWriter)
	challengeService := services.NewChallengeService(challengeWriteRepo, challengeReadRepo, userWriteRepo, kafkaWriter)
	communityService := services.NewCommunityService(communityWriteRepo, communityReadRepo, leaderboardReadRepo, leaderboardCacheRepo)
	educationService := services.NewEducationService(educationReadRepo)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	calculateHandler := handlers.NewCalculateHandler(footprintService, jwt)
	historyHandler := handlers.NewHistoryHandler(footprintService, jwt)
	summaryHandler := handlers.NewSummaryHandler(footprintService, jwt)
	trendsHandler := handlers.NewTrendsHandler(footprintService, jwt)
	recommendationsHandler := handlers.NewRecommendationsHandler(footprintService, jwt)
	createChallengeHandler := handlers.NewCreateChallengeHandler(challengeService, jwt)
	activeChallengesHandler := handlers.NewActiveChallengesHandler(challengeService, jwt)
	joinChallengeHandler := handlers.NewJoinChallengeHandler(challengeService, jwt)
	challengeProgressHandler := handlers.NewChallengeProgressHandler(challengeService, jwt)
	challengeHistoryHandler := handlers.NewChallengeHistoryHandler(challengeService, jwt)
	postsHandler := handlers.NewPostsHandler(communityService, jwt)
	createPostHandler := handlers.NewCreatePostHandler(communityService, jwt)
	addCommentHandler := handlers.NewAddCommentHandler(communityService, jwt)
	leaderboardHandler := handlers.NewLeaderboardHandler(communityService, jwt)
	rankHandler := handlers.NewRankHandler(communityService, jwt)
	articlesHandler := handlers.NewArticlesHandler(educationService, jwt)
	tipsHandler := handlers.NewTipsHandler(educationService, jwt)

	// Background scheduler closes challenges past their end date
	sched := scheduler.New()
	if err := sched.AddTask("challenge-expiry", expirySchedule, func() error {
		closed, err := challengeWriteRepo.CloseExpired(context.Background())
		if err != nil {
			return err
		}
		if closed > 0 {
			logger.Log.Infow("closed expired challenges", "count", closed)
		}
		return nil
	}); err != nil {
		logger.Log.Fatal("failed to register challenge expiry task:", err)
	}
	sched.Start()
	defer sched.Stop()

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Post("/api/register", registerHandler)
	r.Post("/api/login", loginHandler)

	// Protected routes with JWT middleware
	authMiddleware := middlewares.AuthMiddleware(jwt)
	txMiddleware := middlewares.TxMiddleware(db)
	r.Route("/api", func(r chi.Router) {
		r.Use(authMiddleware)

		r.Get("/footprint/history", historyHandler)
		r.Get("/footprint/summary", summaryHandler)
		r.Get("/footprint/trends", trendsHandler)
		r.Get("/footprint/recommendations", recommendationsHandler)
		r.Get("/challenges", activeChallengesHandler)
		r.Get("/challenges/history", challengeHistoryHandler)
		r.Get("/community/posts", postsHandler)
		r.Get("/community/leaderboard", leaderboardHandler)
		r.Get("/community/leaderboard/rank", rankHandler)
		r.Get("/education/articles", articlesHandler)
		r.Get("/education/tips", tipsHandler)

		// Mutating routes run inside a request transaction
		r.Group(func(r chi.Router) {
			r.Use(txMiddleware)
			r.Post("/footprint/calculate", calculateHandler)
			r.Post("/challenges", createChallengeHandler)
			r.Post("/challenges/{id}/join", joinChallengeHandler)
			r.Put("/challenges/{id}/progress", challengeProgressHandler)
			r.Post("/community/posts", createPostHandler)
			r.Post("/community/posts/{id}/comments", addCommentHandler)
		})
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
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
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

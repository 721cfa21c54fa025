package main

import (
	"careerfit/internal/cache"
	"careerfit/internal/config"
	"careerfit/internal/logger"
	"careerfit/internal/repository"
	"careerfit/internal/service"
	"careerfit/internal/transport/rest"
	"careerfit/internal/transport/ws"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// @title CareerFit Assessment API
// @version 1.0
// @description Career-fit assessments scored into a deterministic report
// @host localhost:8080
// @BasePath /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, envLoaded := config.Load()
	logger.Setup(cfg.LogLevel, cfg.LogFormat)
	if !envLoaded {
		logger.Debug("no .env file, using process environment")
	}

	ctx := context.Background()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		logger.Fatalf("Failed to ping MongoDB: %v", err)
	}
	logger.Infof("Connected to MongoDB (db=%s)", cfg.MongoDB)

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		logger.Fatalf("Failed to ping Redis: %v", err)
	}
	logger.Infof("Connected to Redis at %s", cfg.RedisAddr)

	wsHub := ws.NewHub()

	// Initialize repositories
	assessmentRepo := repository.NewAssessmentRepo(db)
	resultRepo := repository.NewResultRepo(db)
	answerRepo := repository.NewAnswerRepo(db)

	// Initialize caches
	sessionCache := cache.NewSessionCache(rdb, cfg.SessionTTL)
	resultCache := cache.NewResultCache(rdb, cfg.ResultCacheTTL)
	leaderboard := cache.NewLeaderboardCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService(cfg)
	assessmentSvc := service.NewAssessmentService(assessmentRepo, leaderboard)
	resultSvc := service.NewResultService(resultRepo, assessmentRepo, resultCache, leaderboard)
	attemptSvc := service.NewAttemptService(assessmentRepo, answerRepo, sessionCache, resultSvc, authSvc)

	// wsHub implements service.Broadcaster
	attemptSvc.SetBroadcaster(wsHub)

	router := rest.NewRouter(&rest.Container{
		Config:            cfg,
		AuthService:       authSvc,
		AssessmentService: assessmentSvc,
		AttemptService:    attemptSvc,
		ResultService:     resultSvc,
		WSHub:             wsHub,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log := logger.With().
			Str("port", cfg.Port).
			Str("admin", cfg.AdminUsername).
			Logger()
		log.Info().Msg("Server starting")
		logger.Info("Endpoints:")
		logger.Info("  POST /v1/auth/login")
		logger.Info("  GET  /v1/assessments")
		logger.Info("  POST /v1/assessments/{id}/attempts")
		logger.Info("  PUT  /v1/attempts/{sessionId}/sections/{section}/answers/{questionId}")
		logger.Info("  POST /v1/attempts/{sessionId}/finish")
		logger.Info("  POST /v1/score")
		logger.Info("  WS   /v1/ws/attempts/{sessionId}")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("ListenAndServe: %v", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited")
}

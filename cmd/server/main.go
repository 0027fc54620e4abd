package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	appconfig "leadlens/config"
	"leadlens/internal/cache"
	"leadlens/internal/config"
	"leadlens/internal/dataset"
	"leadlens/internal/repository"
	"leadlens/internal/service"
	"leadlens/internal/transport/rest"
	"leadlens/internal/transport/ws"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := appconfig.Load()

	// Load AI config and log model settings
	aiConfig := config.DefaultAIConfig()
	log.Printf("AI Config:")
	log.Printf("  Plan Gen: %s", aiConfig.Models.PlanGen)
	log.Printf("  Summary:  %s", aiConfig.Models.Summary)
	if aiConfig.IsEnabled() {
		log.Println("  API Key:  configured ✓")
	} else {
		log.Println("  API Key:  NOT SET (using mock plan generator)")
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	// Ping MongoDB
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	redisAddr := cfg.RedisAddr
	if len(redisAddr) > 8 && redisAddr[:8] == "redis://" {
		redisAddr = redisAddr[8:]
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	// Ping Redis
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Load the question datasets up front so a broken data directory fails
	// the deployment instead of the first request.
	store := dataset.NewStore(dataset.NewFileSource(cfg.DataDir))
	if err := store.Ensure(ctx); err != nil {
		log.Fatal("Failed to load question datasets:", err)
	}
	log.Printf("Question datasets loaded from %s", cfg.DataDir)

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories
	userRepo := repository.NewUserRepo(db)
	assessmentRepo := repository.NewAssessmentRepo(db)
	planRepo := repository.NewPlanRepo(db)

	// Initialize caches
	stateCache := cache.NewStateCache(rdb)
	planCache := cache.NewPlanCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	assessmentSvc := service.NewAssessmentService(store, stateCache, assessmentRepo)
	plannerSvc := service.NewPlannerService(planRepo, planCache, assessmentRepo)

	// Inject notifier (wsHub implements service.Notifier)
	assessmentSvc.SetNotifier(wsHub)
	plannerSvc.SetNotifier(wsHub)

	// Create router with container
	container := &rest.Container{
		AuthService:       authSvc,
		AssessmentService: assessmentSvc,
		PlannerService:    plannerSvc,
		WSHub:             wsHub,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/signup")
		log.Println("  POST /v1/auth/login")
		log.Println("  GET  /v1/assessment/questions/demographic")
		log.Println("  GET  /v1/assessment/questions/level-one/{level}")
		log.Println("  GET  /v1/assessment/questions/level-two")
		log.Println("  POST /v1/assessment/classify")
		log.Println("  POST /v1/assessment/start")
		log.Println("  POST /v1/assessment/response")
		log.Println("  GET  /v1/assessment/{assessmentId}")
		log.Println("  POST /v1/plans/generate")
		log.Println("  GET  /v1/plans")
		log.Println("  WS   /v1/ws/assessments/{assessmentId}")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

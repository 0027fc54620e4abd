package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"leadlens/internal/service"
	"leadlens/internal/transport/rest/handler"
	"leadlens/internal/transport/rest/middleware"
	"leadlens/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService       *service.AuthService
	AssessmentService *service.AssessmentService
	PlannerService    *service.PlannerService
	WSHub             *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	assessmentHandler := handler.NewAssessmentHandler(c.AssessmentService)
	planHandler := handler.NewPlanHandler(c.PlannerService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST", "OPTIONS")
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/assessment/questions/demographic", assessmentHandler.DemographicQuestions).Methods("GET", "OPTIONS")

	// WebSocket routes (public with token in query param)
	v1.HandleFunc("/ws/assessments/{assessmentId}", wsHandler.AssessmentWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Authenticated routes
	userRoutes := v1.NewRoute().Subrouter()
	userRoutes.Use(authMW.RequireUser)

	userRoutes.HandleFunc("/assessment/questions/level-one/{level}", assessmentHandler.LevelOneQuestions).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/assessment/questions/level-two", assessmentHandler.LevelTwoQuestions).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/assessment/classify", assessmentHandler.Classify).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/assessment/start", assessmentHandler.Start).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/assessment/response", assessmentHandler.Answer).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/assessment/{assessmentId}", assessmentHandler.Get).Methods("GET", "OPTIONS")

	userRoutes.HandleFunc("/plans/generate", planHandler.Generate).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/plans", planHandler.List).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/plans/{planId}", planHandler.Get).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

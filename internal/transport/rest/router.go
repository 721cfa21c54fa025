package rest

import (
	"careerfit/internal/config"
	"careerfit/internal/service"
	"careerfit/internal/transport/rest/handler"
	"careerfit/internal/transport/rest/middleware"
	"careerfit/internal/transport/ws"
	"net/http"

	_ "careerfit/docs"

	"github.com/gorilla/mux"
	"github.com/swaggo/swag"
)

// Container holds all dependencies for the router
type Container struct {
	Config            *config.Config
	AuthService       *service.AuthService
	AssessmentService handler.AssessmentCatalog
	AttemptService    handler.AttemptRunner
	ResultService     handler.ResultReader
	WSHub             *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	assessmentHandler := handler.NewAssessmentHandler(c.AssessmentService)
	attemptHandler := handler.NewAttemptHandler(c.AttemptService)
	resultHandler := handler.NewResultHandler(c.ResultService)
	scoreHandler := handler.NewScoreHandler()
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS first so preflights never reach auth
	r.Use(corsMiddleware(c.Config.CORS))
	r.Use(middleware.Logging)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/assessments", assessmentHandler.ListPublished).Methods("GET", "OPTIONS")
	v1.HandleFunc("/assessments/{id}", assessmentHandler.GetPublished).Methods("GET", "OPTIONS")
	v1.HandleFunc("/assessments/{id}/attempts", attemptHandler.Start).Methods("POST", "OPTIONS")
	v1.HandleFunc("/score", scoreHandler.Score).Methods("POST", "OPTIONS")

	// WebSocket routes (public with token in query param)
	v1.HandleFunc("/ws/attempts/{sessionId}", wsHandler.AttemptWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	r.HandleFunc("/swagger/doc.json", serveSwaggerDoc).Methods("GET")

	// Attempt routes (require attempt token for the same session)
	attemptRoutes := v1.PathPrefix("/attempts/{sessionId}").Subrouter()
	attemptRoutes.Use(authMW.RequireAttempt)

	attemptRoutes.HandleFunc("", attemptHandler.Get).Methods("GET", "OPTIONS")
	attemptRoutes.HandleFunc("/sections/{section}/answers/{questionId}", attemptHandler.RecordAnswer).Methods("PUT", "OPTIONS")
	attemptRoutes.HandleFunc("/sections/{section}/complete", attemptHandler.CompleteSection).Methods("POST", "OPTIONS")
	attemptRoutes.HandleFunc("/finish", attemptHandler.Finish).Methods("POST", "OPTIONS")
	attemptRoutes.HandleFunc("/result", resultHandler.Get).Methods("GET", "OPTIONS")
	attemptRoutes.HandleFunc("/standing", resultHandler.Standing).Methods("GET", "OPTIONS")

	// Admin routes (require admin auth)
	adminRoutes := v1.PathPrefix("/admin").Subrouter()
	adminRoutes.Use(authMW.RequireAdmin)

	adminRoutes.HandleFunc("/assessments", assessmentHandler.Create).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/assessments", assessmentHandler.List).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/assessments/{id}", assessmentHandler.Get).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/assessments/{id}", assessmentHandler.Update).Methods("PUT", "OPTIONS")
	adminRoutes.HandleFunc("/assessments/{id}", assessmentHandler.Delete).Methods("DELETE", "OPTIONS")
	adminRoutes.HandleFunc("/assessments/{id}/results", resultHandler.ListByAssessment).Methods("GET", "OPTIONS")

	return r
}

func serveSwaggerDoc(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		http.Error(w, `{"error":"swagger doc unavailable"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(doc))
}

func corsMiddleware(cfg config.CORSConfig) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", cfg.AllowedOrigins)
			w.Header().Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
			w.Header().Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

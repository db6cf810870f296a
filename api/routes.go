package api

import (
	"net/http"

	"github.com/gigboard/gigboard/internal/config"
	"github.com/gigboard/gigboard/internal/db"
	"github.com/gigboard/gigboard/internal/repository/sqlite"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func SetupRoutes(cfg *config.Config, version, buildTime string, db *db.DB) http.Handler {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(RecoveryMiddleware)

	// Repository
	repo := sqlite.New(db)

	// Create handlers
	systemHandler := NewSystemHandler(db)
	authHandler := NewAuthHandler(repo, cfg.JWTSecret, cfg.TokenDuration)
	jobsHandler := NewJobsHandler(repo, repo)
	usersHandler := NewUsersHandler(repo, repo, repo, repo)
	communityHandler := NewCommunityHandler(repo, repo)
	supportHandler := NewSupportHandler(repo, cfg.JWTSecret)

	// Open endpoints
	r.HandleFunc("/", systemHandler.RootHandler).Methods("GET")
	r.HandleFunc("/check-db", systemHandler.CheckDBHandler).Methods("GET")
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/api/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/api/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/api/jobs/search", jobsHandler.Search).Methods("GET")
	r.HandleFunc("/api/jobs/top-salary", jobsHandler.TopSalary).Methods("GET")
	r.HandleFunc("/api/jobs/newest", jobsHandler.Newest).Methods("GET")
	r.HandleFunc("/api/community/testimonials", communityHandler.Testimonials).Methods("GET")
	r.HandleFunc("/api/community/reviews", communityHandler.Reviews).Methods("GET")

	// Support accepts anonymous submissions; the handler reads the bearer
	// token itself when one is present.
	r.HandleFunc("/api/support", supportHandler.Submit).Methods("POST")

	// Protected routes
	jobsV1 := r.PathPrefix("/api/jobs").Subrouter()
	jobsV1.Use(JWTAuthMiddlewareWithSecret(cfg.JWTSecret))
	jobsV1.HandleFunc("", jobsHandler.Create).Methods("POST")
	jobsV1.HandleFunc("/{id:[0-9]+}/apply", jobsHandler.Apply).Methods("POST")

	usersV1 := r.PathPrefix("/api/users/me").Subrouter()
	usersV1.Use(JWTAuthMiddlewareWithSecret(cfg.JWTSecret))
	usersV1.HandleFunc("", usersHandler.Dashboard).Methods("GET")
	usersV1.HandleFunc("/reviews", usersHandler.MyReviews).Methods("GET")
	usersV1.HandleFunc("/applications", usersHandler.MyApplications).Methods("GET")
	usersV1.HandleFunc("/job-applications", usersHandler.MyJobApplications).Methods("GET")

	// CORS wraps the whole router so preflight requests short-circuit
	return cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)
}

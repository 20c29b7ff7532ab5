package api

import (
	"net/http"
	"submission_review/internal/api/handler"
	"submission_review/internal/api/middleware"
	"submission_review/internal/app/service"
	"submission_review/internal/common/security"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	tokens *security.TokenManager,
	authService *service.AuthService,
	submissionService *service.SubmissionService,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Verifies the bearer token when present, puts claims in context.
	// Enforcement happens per-group below.
	r.Use(jwtauth.Verifier(tokens.JWTAuth()))

	// Public health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	authHandler := handler.NewAuthHandler(authService)

	// Public auth routes
	r.Group(func(public chi.Router) {
		authHandler.RegisterRoutes(public)
	})

	// Everything else requires a valid token
	auth := middleware.NewAuth(authService)
	r.Group(func(protected chi.Router) {
		protected.Use(auth.Authenticator)

		protected.Get("/me", authHandler.Me)

		submissionHandler := handler.NewSubmissionHandler(submissionService)
		protected.Route("/submissions", submissionHandler.RegisterRoutes)
	})

	return r
}

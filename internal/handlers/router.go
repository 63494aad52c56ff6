// internal/handlers/router.go
package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"lingo_quiz/internal/config"
	"lingo_quiz/internal/middleware"
	"lingo_quiz/internal/service"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// RouterDeps はルーターが使うサービス群です。
type RouterDeps struct {
	Auth       service.AuthService
	Content    service.ContentService
	Progress   service.ProgressService
	Submission service.SubmissionService
	// AudioDir が空でなければ /media/audio/ で静的配信する
	AudioDir string
	// Health は /health で呼ばれる疎通確認 (nil なら常に OK)
	Health func(r *http.Request) error
}

// NewRouter は API のルーティングとミドルウェアを組み立てます。
func NewRouter(cfg *config.Config, logger *slog.Logger, deps RouterDeps) http.Handler {
	authHandler := NewAuthHandler(deps.Auth)
	contentHandler := NewContentHandler(deps.Content)
	attemptHandler := NewAttemptHandler(deps.Progress, deps.Submission)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
		Debug:            false,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		// --- Public routes ---
		r.Post("/users/signup", authHandler.Signup)
		r.Post("/users/login", authHandler.Login)
		r.Post("/users/token/refresh", authHandler.Refresh)

		// --- Protected routes ---
		r.Group(func(r chi.Router) {
			if cfg.Auth.Enabled {
				logger.Info("Applying JWT authentication middleware")
				r.Use(middleware.JWTAuthMiddleware(cfg))
			} else {
				logger.Warn("Authentication is disabled; using X-User-ID header (development only)")
				r.Use(middleware.DevUserContextMiddleware)
			}

			r.Get("/users/me", authHandler.Me)
			r.Get("/languages", contentHandler.ListLanguages)

			r.Route("/quizzes", func(r chi.Router) {
				r.Get("/", contentHandler.ListQuizzes)
				r.Get("/{quiz_id}", contentHandler.GetQuiz)
				r.Post("/{quiz_id}/start", attemptHandler.StartQuiz)
				r.Post("/{quiz_id}/submit", attemptHandler.SubmitQuiz)
				r.Get("/{quiz_id}/answers", attemptHandler.ListAnswers)
				r.With(middleware.RequireStaff).Post("/{quiz_id}/questions", contentHandler.CreateQuestion)
			})

			r.Route("/progress", func(r chi.Router) {
				r.Get("/", attemptHandler.ListProgress)
				r.Get("/by_language", attemptHandler.ListProgressByLanguage)
			})

			// --- Staff only ---
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireStaff)
				r.Put("/questions/{question_id}", contentHandler.UpdateQuestion)
				r.Delete("/questions/{question_id}", contentHandler.DeleteQuestion)
				r.Delete("/options/{option_id}", contentHandler.DeleteOption)
			})
		})
	})

	if deps.AudioDir != "" {
		fileServer := http.StripPrefix("/media/audio/", http.FileServer(http.Dir(deps.AudioDir)))
		r.Get("/media/audio/*", fileServer.ServeHTTP)
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if deps.Health != nil {
			if err := deps.Health(r); err != nil {
				logger.ErrorContext(r.Context(), "Health check failed", slog.Any("error", err))
				http.Error(w, "Health check failed", http.StatusInternalServerError)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}

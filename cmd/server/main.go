// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lingo_quiz/internal/audio"
	"lingo_quiz/internal/config"
	"lingo_quiz/internal/handlers"
	"lingo_quiz/internal/logging"
	"lingo_quiz/internal/repository"
	"lingo_quiz/internal/service"
)

func main() {
	// 設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	if err := config.LoadConfig("configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := logging.New(config.Cfg.Log.Level)
	slog.SetDefault(logger)
	log.Println("Log Config Loaded...")

	slog.Info("Application starting...", slog.String("app", config.Cfg.App.Name), slog.String("version", config.AppVersion))

	// 1. Database (GORM)
	db, err := repository.NewDB(config.Cfg.Database, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	if err := repository.Migrate(db); err != nil {
		slog.Error("Error migrating database", slog.Any("error", err))
		os.Exit(1)
	}

	// 2. Audio (TTS + 保存先)
	audioComponents, err := audio.New(context.Background(), config.Cfg.Audio)
	if err != nil {
		slog.Error("Error initializing audio service", slog.Any("error", err))
		os.Exit(1)
	}
	defer audioComponents.Close()

	// 3. Dependency Injection
	userRepo := repository.NewGormUserRepository()
	languageRepo := repository.NewGormLanguageRepository()
	quizRepo := repository.NewGormQuizRepository()
	questionRepo := repository.NewGormQuestionRepository()
	optionRepo := repository.NewGormOptionRepository()
	progressRepo := repository.NewGormProgressRepository()
	answerRepo := repository.NewGormAnswerRepository()

	deps := handlers.RouterDeps{
		Auth:       service.NewAuthService(db, userRepo, &config.Cfg),
		Content:    service.NewContentService(db, languageRepo, quizRepo, questionRepo, optionRepo, answerRepo, audioComponents.Service),
		Progress:   service.NewProgressService(db, quizRepo, progressRepo),
		Submission: service.NewSubmissionService(db, quizRepo, questionRepo, optionRepo, progressRepo, answerRepo),
		Health: func(r *http.Request) error {
			return sqlDB.PingContext(r.Context())
		},
	}
	if audioComponents.Local != nil {
		deps.AudioDir = audioComponents.Local.Dir()
	}

	// 4. Router
	router := handlers.NewRouter(&config.Cfg, logger, deps)

	// 5. Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}

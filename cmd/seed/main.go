// cmd/seed/main.go
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"lingo_quiz/internal/audio"
	"lingo_quiz/internal/config"
	"lingo_quiz/internal/logging"
	"lingo_quiz/internal/model"
	"lingo_quiz/internal/repository"
	"lingo_quiz/internal/service"

	"github.com/spf13/pflag"
)

func main() {
	configDir := pflag.String("config", "configs", "directory containing config.yaml")
	noAudio := pflag.Bool("no-audio", false, "skip speech synthesis for seeded questions")
	languages := pflag.StringSlice("languages", nil, "language codes to seed (default: all)")
	pflag.Parse()

	if err := config.LoadConfig(*configDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	logger := logging.New(config.Cfg.Log.Level)
	slog.SetDefault(logger)

	if *noAudio {
		config.Cfg.Audio.Provider = "none"
	}
	if err := run(context.Background(), logger, *languages); err != nil {
		slog.Error("Seeding failed", slog.Any("error", err))
		os.Exit(1)
	}
	slog.Info("Successfully populated quiz data")
}

func run(ctx context.Context, logger *slog.Logger, only []string) error {
	db, err := repository.NewDB(config.Cfg.Database, logger)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}
	if err := repository.Migrate(db); err != nil {
		return err
	}

	audioComponents, err := audio.New(ctx, config.Cfg.Audio)
	if err != nil {
		return err
	}
	defer audioComponents.Close()

	content := service.NewContentService(db,
		repository.NewGormLanguageRepository(),
		repository.NewGormQuizRepository(),
		repository.NewGormQuestionRepository(),
		repository.NewGormOptionRepository(),
		repository.NewGormAnswerRepository(),
		audioComponents.Service,
	)
	return seed(ctx, logger, content, only)
}

// seed は言語と難易度ごとのクイズを用意し、新規作成したクイズにだけ問題を投入します。
func seed(ctx context.Context, logger *slog.Logger, content service.ContentService, only []string) error {
	for _, lang := range seedLanguages {
		if !selected(lang.Code, only) {
			continue
		}
		language := lang
		created, err := content.EnsureLanguage(ctx, &language)
		if err != nil {
			return fmt.Errorf("language %s: %w", lang.Code, err)
		}
		logger.Info(foundOrCreated(created)+" language", "code", language.Code, "name", language.Name)

		for _, level := range model.QuizLevels {
			quiz := &model.Quiz{
				LanguageID:  language.ID,
				Level:       level,
				Title:       fmt.Sprintf("%s - %s", language.Name, capitalize(string(level))),
				Description: fmt.Sprintf("Learn %s at %s level", language.Name, capitalize(string(level))),
			}
			created, err := content.EnsureQuiz(ctx, quiz)
			if err != nil {
				return fmt.Errorf("quiz %s/%s: %w", language.Code, level, err)
			}
			logger.Info(foundOrCreated(created)+" quiz", "quiz_id", quiz.ID, "title", quiz.Title)
			if !created {
				continue
			}

			for _, req := range questionRequests(level, language.Code) {
				q, err := content.CreateQuestion(ctx, quiz.ID, req)
				if err != nil {
					return fmt.Errorf("question %q: %w", req.Text, err)
				}
				logger.Debug("Created question", "question_id", q.ID, "type", q.QuestionType, "has_audio", q.AudioURL != nil)
			}
		}
	}
	return nil
}

func selected(code string, only []string) bool {
	if len(only) == 0 {
		return true
	}
	for _, c := range only {
		if strings.EqualFold(strings.TrimSpace(c), code) {
			return true
		}
	}
	return false
}

func foundOrCreated(created bool) string {
	if created {
		return "Created"
	}
	return "Found"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// internal/service/progress_service.go
package service

import (
	"context"
	"errors"
	"time"

	"lingo_quiz/internal/middleware"
	"lingo_quiz/internal/model"
	"lingo_quiz/internal/repository"

	"gorm.io/gorm"
)

// ProgressService はユーザーごとのクイズ受験状況を管理します。
type ProgressService interface {
	// StartQuiz は受験を開始します。記録が無ければ作成、完了済みなら 0/未完了 にリセット、
	// 受験中ならそのまま返します。回答記録は消しません。
	StartQuiz(ctx context.Context, userID, quizID uint) (*model.UserProgress, error)
	ListProgress(ctx context.Context, userID uint, languageCode string) ([]*model.UserProgress, error)
}

type progressService struct {
	db           *gorm.DB
	quizRepo     repository.QuizRepository
	progressRepo repository.ProgressRepository
}

func NewProgressService(db *gorm.DB, quizRepo repository.QuizRepository, progressRepo repository.ProgressRepository) ProgressService {
	return &progressService{
		db:           db,
		quizRepo:     quizRepo,
		progressRepo: progressRepo,
	}
}

func (s *progressService) StartQuiz(ctx context.Context, userID, quizID uint) (*model.UserProgress, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "quiz_id", quizID)
	var result *model.UserProgress

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.quizRepo.FindByID(ctx, tx, quizID, false); err != nil {
			return quizLookupError(err, quizID)
		}

		progress, err := s.progressRepo.FindByUserAndQuiz(ctx, tx, userID, quizID)
		switch {
		case errors.Is(err, model.ErrNotFound):
			progress = &model.UserProgress{
				UserID:        userID,
				QuizID:        quizID,
				Score:         0,
				Completed:     false,
				LastAttempted: time.Now(),
			}
			if err := s.progressRepo.Create(ctx, tx, progress); err != nil {
				return err
			}
			logger.Info("Quiz attempt started")
		case err != nil:
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to start quiz.", "", err)
		case progress.Completed:
			progress.Score = 0
			progress.Completed = false
			progress.LastAttempted = time.Now()
			if err := s.progressRepo.Update(ctx, tx, progress); err != nil {
				return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to start quiz.", "", err)
			}
			logger.Info("Completed quiz reset for retake")
		default:
			logger.Debug("Quiz attempt already in progress")
		}

		result = progress
		return nil
	})

	if errors.Is(err, model.ErrConflict) {
		// 同時に開始された場合は先に作られた行を返す
		logger.Warn("Concurrent start detected, returning existing progress")
		progress, findErr := s.progressRepo.FindByUserAndQuiz(ctx, s.db, userID, quizID)
		if findErr != nil {
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to start quiz.", "", findErr)
		}
		return progress, nil
	}
	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to start quiz.", "", err)
	}
	return result, nil
}

func (s *progressService) ListProgress(ctx context.Context, userID uint, languageCode string) ([]*model.UserProgress, error) {
	progresses, err := s.progressRepo.ListByUser(ctx, s.db, userID, languageCode)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to list progress.", "", err)
	}
	return progresses, nil
}

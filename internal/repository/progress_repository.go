//go:generate mockery --name ProgressRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"lingo_quiz/internal/middleware"
	"lingo_quiz/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository interface {
	Create(ctx context.Context, tx *gorm.DB, progress *model.UserProgress) error // トランザクション対応
	FindByUserAndQuiz(ctx context.Context, db *gorm.DB, userID, quizID uint) (*model.UserProgress, error)
	Update(ctx context.Context, tx *gorm.DB, progress *model.UserProgress) error // トランザクション対応
	// ListByUser は languageCode が空でなければその言語のクイズに限定します。Quiz.Language は Preload 済み。
	ListByUser(ctx context.Context, db *gorm.DB, userID uint, languageCode string) ([]*model.UserProgress, error)
}

type gormProgressRepository struct {
	// DB接続はService層から渡される想定
}

func NewGormProgressRepository() ProgressRepository {
	return &gormProgressRepository{}
}

func (r *gormProgressRepository) Create(ctx context.Context, tx *gorm.DB, progress *model.UserProgress) error {
	logger := middleware.GetLogger(ctx)
	if err := tx.WithContext(ctx).Create(progress).Error; err != nil {
		if isDuplicateKeyError(err) {
			return model.ErrConflict
		}
		logger.Error("Error creating progress in DB", "error", err, "user_id", progress.UserID, "quiz_id", progress.QuizID)
		return fmt.Errorf("gormProgressRepository.Create: %w", err)
	}
	return nil
}

func (r *gormProgressRepository) FindByUserAndQuiz(ctx context.Context, db *gorm.DB, userID, quizID uint) (*model.UserProgress, error) {
	logger := middleware.GetLogger(ctx)
	var progress model.UserProgress
	result := db.WithContext(ctx).Where("user_id = ? AND quiz_id = ?", userID, quizID).First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding progress in DB", "error", result.Error, "user_id", userID, "quiz_id", quizID)
		return nil, fmt.Errorf("gormProgressRepository.FindByUserAndQuiz: %w", result.Error)
	}
	return &progress, nil
}

func (r *gormProgressRepository) Update(ctx context.Context, tx *gorm.DB, progress *model.UserProgress) error {
	logger := middleware.GetLogger(ctx)
	// Select で関連 (User/Quiz) を保存対象から外す
	result := tx.WithContext(ctx).Model(progress).
		Select("score", "completed", "last_attempted", "updated_at").
		Updates(progress)
	if result.Error != nil {
		logger.Error("Error updating progress in DB", "error", result.Error, "progress_id", progress.ID)
		return fmt.Errorf("gormProgressRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormProgressRepository) ListByUser(ctx context.Context, db *gorm.DB, userID uint, languageCode string) ([]*model.UserProgress, error) {
	logger := middleware.GetLogger(ctx)
	var progresses []*model.UserProgress

	query := db.WithContext(ctx).
		Preload("Quiz").
		Preload("Quiz.Language").
		Where("user_progress.user_id = ?", userID)
	if languageCode != "" {
		query = query.
			Joins("JOIN quizzes ON quizzes.id = user_progress.quiz_id").
			Joins("JOIN languages ON languages.id = quizzes.language_id").
			Where("languages.code = ?", languageCode)
	}

	if err := query.Order("user_progress.last_attempted DESC, user_progress.id ASC").Find(&progresses).Error; err != nil {
		logger.Error("Error listing progress in DB", "error", err, "user_id", userID, "language", languageCode)
		return nil, fmt.Errorf("gormProgressRepository.ListByUser: %w", err)
	}
	return progresses, nil
}

//go:generate mockery --name OptionRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"lingo_quiz/internal/middleware"
	"lingo_quiz/internal/model"

	"gorm.io/gorm"
)

type OptionRepository interface {
	FindByID(ctx context.Context, db *gorm.DB, optionID uint) (*model.QuestionOption, error)
	// FindByIDs は見つかった選択肢を ID をキーにした map で返します。
	FindByIDs(ctx context.Context, db *gorm.DB, optionIDs []uint) (map[uint]*model.QuestionOption, error)
	DeleteByQuestion(ctx context.Context, tx *gorm.DB, questionID uint) error
	Delete(ctx context.Context, tx *gorm.DB, optionID uint) error
}

type gormOptionRepository struct{}

func NewGormOptionRepository() OptionRepository {
	return &gormOptionRepository{}
}

func (r *gormOptionRepository) FindByID(ctx context.Context, db *gorm.DB, optionID uint) (*model.QuestionOption, error) {
	logger := middleware.GetLogger(ctx)
	var option model.QuestionOption
	result := db.WithContext(ctx).Where("id = ?", optionID).First(&option)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding option by ID in DB", "error", result.Error, "option_id", optionID)
		return nil, fmt.Errorf("gormOptionRepository.FindByID: %w", result.Error)
	}
	return &option, nil
}

func (r *gormOptionRepository) FindByIDs(ctx context.Context, db *gorm.DB, optionIDs []uint) (map[uint]*model.QuestionOption, error) {
	logger := middleware.GetLogger(ctx)
	found := make(map[uint]*model.QuestionOption, len(optionIDs))
	if len(optionIDs) == 0 {
		return found, nil
	}

	var options []*model.QuestionOption
	if err := db.WithContext(ctx).Where("id IN ?", optionIDs).Find(&options).Error; err != nil {
		logger.Error("Error finding options by IDs in DB", "error", err, "count", len(optionIDs))
		return nil, fmt.Errorf("gormOptionRepository.FindByIDs: %w", err)
	}
	for _, o := range options {
		found[o.ID] = o
	}
	return found, nil
}

func (r *gormOptionRepository) DeleteByQuestion(ctx context.Context, tx *gorm.DB, questionID uint) error {
	logger := middleware.GetLogger(ctx)
	if err := tx.WithContext(ctx).Where("question_id = ?", questionID).Delete(&model.QuestionOption{}).Error; err != nil {
		logger.Error("Error deleting options of question", "error", err, "question_id", questionID)
		return fmt.Errorf("gormOptionRepository.DeleteByQuestion: %w", err)
	}
	return nil
}

func (r *gormOptionRepository) Delete(ctx context.Context, tx *gorm.DB, optionID uint) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("id = ?", optionID).Delete(&model.QuestionOption{})
	if result.Error != nil {
		logger.Error("Error deleting option in DB", "error", result.Error, "option_id", optionID)
		return fmt.Errorf("gormOptionRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

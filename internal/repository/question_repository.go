//go:generate mockery --name QuestionRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"lingo_quiz/internal/middleware"
	"lingo_quiz/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository interface {
	// Create は Options も含めて作成します。
	Create(ctx context.Context, tx *gorm.DB, question *model.Question) error
	FindByID(ctx context.Context, db *gorm.DB, questionID uint) (*model.Question, error)
	// FindByIDs は見つかった問題を ID をキーにした map で返します (Options は Preload しない)。
	FindByIDs(ctx context.Context, db *gorm.DB, questionIDs []uint) (map[uint]*model.Question, error)
	// Update は問題本体のカラム (audio_url を含む) を更新します。options が nil なら選択肢はそのまま、
	// nil でなければ ID で突き合わせて更新・追加・削除します。
	Update(ctx context.Context, tx *gorm.DB, question *model.Question, options []model.QuestionOption) error
	UpdateAudioURL(ctx context.Context, db *gorm.DB, questionID uint, audioURL *string) error
	Delete(ctx context.Context, tx *gorm.DB, questionID uint) error
}

type gormQuestionRepository struct{}

func NewGormQuestionRepository() QuestionRepository {
	return &gormQuestionRepository{}
}

func (r *gormQuestionRepository) Create(ctx context.Context, tx *gorm.DB, question *model.Question) error {
	logger := middleware.GetLogger(ctx)
	if err := tx.WithContext(ctx).Create(question).Error; err != nil {
		logger.Error("Error creating question in DB", "error", err, "quiz_id", question.QuizID)
		return fmt.Errorf("gormQuestionRepository.Create: %w", err)
	}
	return nil
}

func (r *gormQuestionRepository) FindByID(ctx context.Context, db *gorm.DB, questionID uint) (*model.Question, error) {
	logger := middleware.GetLogger(ctx)
	var question model.Question
	result := db.WithContext(ctx).
		Preload("Options", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("question_options.id ASC")
		}).
		Where("id = ?", questionID).
		First(&question)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding question by ID in DB", "error", result.Error, "question_id", questionID)
		return nil, fmt.Errorf("gormQuestionRepository.FindByID: %w", result.Error)
	}
	return &question, nil
}

func (r *gormQuestionRepository) FindByIDs(ctx context.Context, db *gorm.DB, questionIDs []uint) (map[uint]*model.Question, error) {
	logger := middleware.GetLogger(ctx)
	found := make(map[uint]*model.Question, len(questionIDs))
	if len(questionIDs) == 0 {
		return found, nil
	}

	var questions []*model.Question
	if err := db.WithContext(ctx).Where("id IN ?", questionIDs).Find(&questions).Error; err != nil {
		logger.Error("Error finding questions by IDs in DB", "error", err, "count", len(questionIDs))
		return nil, fmt.Errorf("gormQuestionRepository.FindByIDs: %w", err)
	}
	for _, q := range questions {
		found[q.ID] = q
	}
	return found, nil
}

func (r *gormQuestionRepository) Update(ctx context.Context, tx *gorm.DB, question *model.Question, options []model.QuestionOption) error {
	logger := middleware.GetLogger(ctx)

	result := tx.WithContext(ctx).Model(&model.Question{}).
		Where("id = ?", question.ID).
		Updates(map[string]interface{}{
			"text":           question.Text,
			"question_type":  question.QuestionType,
			"correct_answer": question.CorrectAnswer,
			"position":       question.Position,
			"audio_url":      question.AudioURL,
		})
	if result.Error != nil {
		logger.Error("Error updating question in DB", "error", result.Error, "question_id", question.ID)
		return fmt.Errorf("gormQuestionRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}

	if options == nil {
		return nil
	}
	if err := r.syncOptions(ctx, tx, question.ID, options); err != nil {
		return err
	}
	question.Options = options
	return nil
}

// syncOptions は ID 付きの選択肢を更新し、ID なしを追加し、含まれない既存の選択肢だけを削除します。
// 削除する選択肢を指す回答は行を残して参照を外します。
func (r *gormQuestionRepository) syncOptions(ctx context.Context, tx *gorm.DB, questionID uint, options []model.QuestionOption) error {
	logger := middleware.GetLogger(ctx).With("question_id", questionID)
	tx = tx.WithContext(ctx)

	var existingIDs []uint
	if err := tx.Model(&model.QuestionOption{}).
		Where("question_id = ?", questionID).
		Pluck("id", &existingIDs).Error; err != nil {
		logger.Error("Error listing options", "error", err)
		return fmt.Errorf("gormQuestionRepository.Update: list options: %w", err)
	}

	kept := make(map[uint]struct{}, len(options))
	for _, o := range options {
		if o.ID != 0 {
			kept[o.ID] = struct{}{}
		}
	}
	var removed []uint
	for _, id := range existingIDs {
		if _, ok := kept[id]; !ok {
			removed = append(removed, id)
		}
	}

	if len(removed) > 0 {
		if err := tx.Model(&model.UserAnswer{}).
			Where("selected_option_id IN ?", removed).
			Update("selected_option_id", nil).Error; err != nil {
			logger.Error("Error clearing answer option references", "error", err)
			return fmt.Errorf("gormQuestionRepository.Update: clear answers: %w", err)
		}
		if err := tx.Where("id IN ?", removed).Delete(&model.QuestionOption{}).Error; err != nil {
			logger.Error("Error deleting removed options", "error", err)
			return fmt.Errorf("gormQuestionRepository.Update: delete options: %w", err)
		}
	}

	for i := range options {
		options[i].QuestionID = questionID
		if options[i].ID == 0 {
			if err := tx.Create(&options[i]).Error; err != nil {
				logger.Error("Error creating option", "error", err)
				return fmt.Errorf("gormQuestionRepository.Update: create option: %w", err)
			}
			continue
		}
		result := tx.Model(&model.QuestionOption{}).
			Where("id = ? AND question_id = ?", options[i].ID, questionID).
			Updates(map[string]interface{}{
				"text":       options[i].Text,
				"is_correct": options[i].IsCorrect,
			})
		if result.Error != nil {
			logger.Error("Error updating option", "error", result.Error, "option_id", options[i].ID)
			return fmt.Errorf("gormQuestionRepository.Update: update option: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return model.ErrNotFound
		}
	}
	return nil
}

func (r *gormQuestionRepository) UpdateAudioURL(ctx context.Context, db *gorm.DB, questionID uint, audioURL *string) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Model(&model.Question{}).
		Where("id = ?", questionID).
		Update("audio_url", audioURL)
	if result.Error != nil {
		logger.Error("Error updating question audio_url in DB", "error", result.Error, "question_id", questionID)
		return fmt.Errorf("gormQuestionRepository.UpdateAudioURL: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormQuestionRepository) Delete(ctx context.Context, tx *gorm.DB, questionID uint) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("id = ?", questionID).Delete(&model.Question{})
	if result.Error != nil {
		logger.Error("Error deleting question in DB", "error", result.Error, "question_id", questionID)
		return fmt.Errorf("gormQuestionRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

//go:generate mockery --name AnswerRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"lingo_quiz/internal/middleware"
	"lingo_quiz/internal/model"

	"gorm.io/gorm"
)

// AnswerRepository は (user, question) ごとの回答記録を扱います。
// 再提出時は DeleteByUserAndQuiz -> CreateBatch の順で全置換します。
type AnswerRepository interface {
	DeleteByUserAndQuiz(ctx context.Context, tx *gorm.DB, userID, quizID uint) error
	CreateBatch(ctx context.Context, tx *gorm.DB, answers []*model.UserAnswer) error
	ListByUserAndQuiz(ctx context.Context, db *gorm.DB, userID, quizID uint) ([]*model.UserAnswer, error)
	DeleteByQuestion(ctx context.Context, tx *gorm.DB, questionID uint) error
	// ClearSelectedOption は選択肢削除前に回答からの参照を NULL にします (回答行は残す)。
	ClearSelectedOption(ctx context.Context, tx *gorm.DB, optionID uint) error
}

type gormAnswerRepository struct{}

func NewGormAnswerRepository() AnswerRepository {
	return &gormAnswerRepository{}
}

func questionIDsOfQuiz(db *gorm.DB, quizID uint) *gorm.DB {
	return db.Model(&model.Question{}).Select("id").Where("quiz_id = ?", quizID)
}

func (r *gormAnswerRepository) DeleteByUserAndQuiz(ctx context.Context, tx *gorm.DB, userID, quizID uint) error {
	logger := middleware.GetLogger(ctx)
	tx = tx.WithContext(ctx)
	result := tx.
		Where("user_id = ? AND question_id IN (?)", userID, questionIDsOfQuiz(tx, quizID)).
		Delete(&model.UserAnswer{})
	if result.Error != nil {
		logger.Error("Error deleting answers in DB", "error", result.Error, "user_id", userID, "quiz_id", quizID)
		return fmt.Errorf("gormAnswerRepository.DeleteByUserAndQuiz: %w", result.Error)
	}
	logger.Debug("Previous answers deleted", "user_id", userID, "quiz_id", quizID, "rows", result.RowsAffected)
	return nil
}

func (r *gormAnswerRepository) CreateBatch(ctx context.Context, tx *gorm.DB, answers []*model.UserAnswer) error {
	logger := middleware.GetLogger(ctx)
	if len(answers) == 0 {
		return nil
	}
	if err := tx.WithContext(ctx).Create(&answers).Error; err != nil {
		if isDuplicateKeyError(err) {
			return model.ErrConflict
		}
		logger.Error("Error creating answers in DB", "error", err, "count", len(answers))
		return fmt.Errorf("gormAnswerRepository.CreateBatch: %w", err)
	}
	return nil
}

func (r *gormAnswerRepository) ListByUserAndQuiz(ctx context.Context, db *gorm.DB, userID, quizID uint) ([]*model.UserAnswer, error) {
	logger := middleware.GetLogger(ctx)
	db = db.WithContext(ctx)
	var answers []*model.UserAnswer
	if err := db.
		Where("user_id = ? AND question_id IN (?)", userID, questionIDsOfQuiz(db, quizID)).
		Order("id ASC").
		Find(&answers).Error; err != nil {
		logger.Error("Error listing answers in DB", "error", err, "user_id", userID, "quiz_id", quizID)
		return nil, fmt.Errorf("gormAnswerRepository.ListByUserAndQuiz: %w", err)
	}
	return answers, nil
}

func (r *gormAnswerRepository) DeleteByQuestion(ctx context.Context, tx *gorm.DB, questionID uint) error {
	logger := middleware.GetLogger(ctx)
	if err := tx.WithContext(ctx).Where("question_id = ?", questionID).Delete(&model.UserAnswer{}).Error; err != nil {
		logger.Error("Error deleting answers of question", "error", err, "question_id", questionID)
		return fmt.Errorf("gormAnswerRepository.DeleteByQuestion: %w", err)
	}
	return nil
}

func (r *gormAnswerRepository) ClearSelectedOption(ctx context.Context, tx *gorm.DB, optionID uint) error {
	logger := middleware.GetLogger(ctx)
	if err := tx.WithContext(ctx).Model(&model.UserAnswer{}).
		Where("selected_option_id = ?", optionID).
		Update("selected_option_id", nil).Error; err != nil {
		logger.Error("Error clearing selected option on answers", "error", err, "option_id", optionID)
		return fmt.Errorf("gormAnswerRepository.ClearSelectedOption: %w", err)
	}
	return nil
}

//go:generate mockery --name QuizRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"lingo_quiz/internal/middleware"
	"lingo_quiz/internal/model"

	"gorm.io/gorm"
)

type QuizRepository interface {
	List(ctx context.Context, db *gorm.DB, filter model.QuizFilter) ([]*model.Quiz, error)
	// FindByID は Language を常に、withContent の場合は Questions と Options も Preload します。
	FindByID(ctx context.Context, db *gorm.DB, quizID uint, withContent bool) (*model.Quiz, error)
	// FirstOrCreate は (language, level) で検索し、無ければ作成します。作成した場合 true を返します。
	FirstOrCreate(ctx context.Context, db *gorm.DB, quiz *model.Quiz) (bool, error)
}

type gormQuizRepository struct{}

func NewGormQuizRepository() QuizRepository {
	return &gormQuizRepository{}
}

// preloadContent は問題を position 順、選択肢を ID 順で読み込みます。
func preloadContent(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Questions", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("questions.position ASC, questions.id ASC")
		}).
		Preload("Questions.Options", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("question_options.id ASC")
		})
}

func (r *gormQuizRepository) List(ctx context.Context, db *gorm.DB, filter model.QuizFilter) ([]*model.Quiz, error) {
	logger := middleware.GetLogger(ctx)
	var quizzes []*model.Quiz

	query := preloadContent(db.WithContext(ctx).Model(&model.Quiz{}).Preload("Language"))
	if filter.LanguageCode != "" {
		query = query.
			Joins("JOIN languages ON languages.id = quizzes.language_id").
			Where("languages.code = ?", filter.LanguageCode)
	}
	if filter.Level != "" {
		query = query.Where("quizzes.level = ?", filter.Level)
	}

	if err := query.Order("quizzes.id ASC").Find(&quizzes).Error; err != nil {
		logger.Error("Error listing quizzes in DB",
			"error", err,
			"language", filter.LanguageCode,
			"level", filter.Level,
		)
		return nil, fmt.Errorf("gormQuizRepository.List: %w", err)
	}
	return quizzes, nil
}

func (r *gormQuizRepository) FindByID(ctx context.Context, db *gorm.DB, quizID uint, withContent bool) (*model.Quiz, error) {
	logger := middleware.GetLogger(ctx)
	var quiz model.Quiz

	query := db.WithContext(ctx).Preload("Language")
	if withContent {
		query = preloadContent(query)
	}
	result := query.Where("id = ?", quizID).First(&quiz)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding quiz by ID in DB", "error", result.Error, "quiz_id", quizID)
		return nil, fmt.Errorf("gormQuizRepository.FindByID: %w", result.Error)
	}
	return &quiz, nil
}

func (r *gormQuizRepository) FirstOrCreate(ctx context.Context, db *gorm.DB, quiz *model.Quiz) (bool, error) {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).
		Where(model.Quiz{LanguageID: quiz.LanguageID, Level: quiz.Level}).
		Attrs(model.Quiz{Title: quiz.Title, Description: quiz.Description}).
		FirstOrCreate(quiz)
	if result.Error != nil {
		logger.Error("Error on first-or-create quiz",
			"error", result.Error,
			"language_id", quiz.LanguageID,
			"level", quiz.Level,
		)
		return false, fmt.Errorf("gormQuizRepository.FirstOrCreate: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

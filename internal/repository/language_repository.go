//go:generate mockery --name LanguageRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"lingo_quiz/internal/middleware"
	"lingo_quiz/internal/model"

	"gorm.io/gorm"
)

type LanguageRepository interface {
	List(ctx context.Context, db *gorm.DB) ([]*model.Language, error)
	FindByCode(ctx context.Context, db *gorm.DB, code string) (*model.Language, error)
	// FirstOrCreate は Code で検索し、無ければ作成します。作成した場合 true を返します。
	FirstOrCreate(ctx context.Context, db *gorm.DB, language *model.Language) (bool, error)
}

type gormLanguageRepository struct{}

func NewGormLanguageRepository() LanguageRepository {
	return &gormLanguageRepository{}
}

func (r *gormLanguageRepository) List(ctx context.Context, db *gorm.DB) ([]*model.Language, error) {
	logger := middleware.GetLogger(ctx)
	var languages []*model.Language
	if err := db.WithContext(ctx).Order("name ASC").Find(&languages).Error; err != nil {
		logger.Error("Error listing languages in DB", "error", err)
		return nil, fmt.Errorf("gormLanguageRepository.List: %w", err)
	}
	return languages, nil
}

func (r *gormLanguageRepository) FindByCode(ctx context.Context, db *gorm.DB, code string) (*model.Language, error) {
	logger := middleware.GetLogger(ctx)
	var language model.Language
	result := db.WithContext(ctx).Where("code = ?", code).First(&language)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding language by code in DB", "error", result.Error, "code", code)
		return nil, fmt.Errorf("gormLanguageRepository.FindByCode: %w", result.Error)
	}
	return &language, nil
}

func (r *gormLanguageRepository) FirstOrCreate(ctx context.Context, db *gorm.DB, language *model.Language) (bool, error) {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).
		Where(model.Language{Code: language.Code}).
		Attrs(model.Language{Name: language.Name, FlagEmoji: language.FlagEmoji}).
		FirstOrCreate(language)
	if result.Error != nil {
		logger.Error("Error on first-or-create language", "error", result.Error, "code", language.Code)
		return false, fmt.Errorf("gormLanguageRepository.FirstOrCreate: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

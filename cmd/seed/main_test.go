package main

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"lingo_quiz/internal/audio"
	"lingo_quiz/internal/config"
	"lingo_quiz/internal/model"
	"lingo_quiz/internal/repository"
	"lingo_quiz/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSeedEnv(t *testing.T) (*gorm.DB, service.ContentService, *slog.Logger) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=on"
	db, err := repository.NewDB(config.DatabaseConfig{Driver: "sqlite", URL: dsn}, logger)
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	content := service.NewContentService(db,
		repository.NewGormLanguageRepository(),
		repository.NewGormQuizRepository(),
		repository.NewGormQuestionRepository(),
		repository.NewGormOptionRepository(),
		repository.NewGormAnswerRepository(),
		audio.NewService(nil, nil, 0),
	)
	return db, content, logger
}

func count(t *testing.T, db *gorm.DB, m interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(m).Count(&n).Error)
	return n
}

func TestSeed_IsIdempotent(t *testing.T) {
	db, content, logger := newSeedEnv(t)
	ctx := context.Background()

	require.NoError(t, seed(ctx, logger, content, nil))
	require.NoError(t, seed(ctx, logger, content, nil))

	assert.EqualValues(t, 4, count(t, db, &model.Language{}))
	assert.EqualValues(t, 12, count(t, db, &model.Quiz{}))
	assert.EqualValues(t, 24, count(t, db, &model.Question{}))
	assert.EqualValues(t, 72, count(t, db, &model.QuestionOption{}))

	var quiz model.Quiz
	require.NoError(t, db.Preload("Questions.Options").
		Joins("JOIN languages ON languages.id = quizzes.language_id").
		Where("languages.code = ? AND quizzes.level = ?", "fr", model.LevelIntermediate).
		First(&quiz).Error)
	assert.Equal(t, "French - Intermediate", quiz.Title)
	require.Len(t, quiz.Questions, 2)
	for _, q := range quiz.Questions {
		assert.Equal(t, model.QuestionSpeech, q.QuestionType)
		assert.Nil(t, q.AudioURL)
		correct := 0
		for _, o := range q.Options {
			if o.IsCorrect {
				correct++
				assert.Equal(t, q.CorrectAnswer, o.Text)
			}
		}
		assert.Equal(t, 1, correct)
	}
}

func TestSeed_SelectedLanguages(t *testing.T) {
	db, content, logger := newSeedEnv(t)

	require.NoError(t, seed(context.Background(), logger, content, []string{"IT"}))

	assert.EqualValues(t, 1, count(t, db, &model.Language{}))
	assert.EqualValues(t, 3, count(t, db, &model.Quiz{}))
}

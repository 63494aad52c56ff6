package service_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"lingo_quiz/internal/audio"
	"lingo_quiz/internal/config"
	"lingo_quiz/internal/model"
	"lingo_quiz/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestDB はテストごとに独立したインメモリSQLiteを用意します。
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=on"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db, err := repository.NewDB(config.DatabaseConfig{Driver: "sqlite", URL: dsn}, logger)
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// fixture は 2問 (各2択) のクイズを持つ最小データセットです。
type fixture struct {
	User     *model.User
	Language *model.Language
	Quiz     *model.Quiz
	Other    *model.Quiz
	Q1, Q2   *model.Question
	Q1Right  uint
	Q1Wrong  uint
	Q2Right  uint
	Q2Wrong  uint
	OtherQ   *model.Question
}

func seedFixture(t *testing.T, db *gorm.DB) *fixture {
	t.Helper()
	f := &fixture{}

	f.User = &model.User{Email: "learner@example.com", FirstName: "Ana", LastName: "Lopez", PasswordHash: "x"}
	require.NoError(t, db.Create(f.User).Error)

	f.Language = &model.Language{Code: "es", Name: "Spanish", FlagEmoji: "🇪🇸"}
	require.NoError(t, db.Create(f.Language).Error)

	f.Quiz = &model.Quiz{LanguageID: f.Language.ID, Level: model.LevelBeginner, Title: "Spanish Beginner"}
	require.NoError(t, db.Create(f.Quiz).Error)
	f.Other = &model.Quiz{LanguageID: f.Language.ID, Level: model.LevelExpert, Title: "Spanish Expert"}
	require.NoError(t, db.Create(f.Other).Error)

	f.Q1 = newQuestion(f.Quiz.ID, "How do you say hello?", "Hola", 1, "Hola", "Adiós")
	require.NoError(t, db.Create(f.Q1).Error)
	f.Q2 = newQuestion(f.Quiz.ID, "What is goodbye?", "Adiós", 2, "Adiós", "Gracias")
	require.NoError(t, db.Create(f.Q2).Error)
	f.OtherQ = newQuestion(f.Other.ID, "Translate: thank you", "Gracias", 1, "Gracias", "Hola")
	require.NoError(t, db.Create(f.OtherQ).Error)

	f.Q1Right, f.Q1Wrong = f.Q1.Options[0].ID, f.Q1.Options[1].ID
	f.Q2Right, f.Q2Wrong = f.Q2.Options[0].ID, f.Q2.Options[1].ID
	return f
}

// newQuestion は先頭の選択肢を正解とする multiple_choice 問題を作ります。
func newQuestion(quizID uint, text, correct string, position int, options ...string) *model.Question {
	q := &model.Question{
		QuizID:        quizID,
		Text:          text,
		QuestionType:  model.QuestionMultipleChoice,
		CorrectAnswer: correct,
		Position:      position,
	}
	for i, o := range options {
		q.Options = append(q.Options, model.QuestionOption{Text: o, IsCorrect: i == 0})
	}
	return q
}

// fakeAudio は呼び出し回数を記録する audio.Service です。
type fakeAudio struct {
	mu        sync.Mutex
	generated []string
	deleted   []string
	fail      bool
}

func (f *fakeAudio) Generate(ctx context.Context, text, languageCode string) audio.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.generated = append(f.generated, text)
	if f.fail {
		return audio.Result{Err: audio.ErrDisabled}
	}
	return audio.Result{URL: "/media/audio/" + languageCode + "-" + uuid.NewString() + ".mp3"}
}

func (f *fakeAudio) Delete(ctx context.Context, reference string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, reference)
	return true
}

func (f *fakeAudio) generateCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.generated)
}

package service_test

import (
	"context"
	"testing"
	"time"

	"lingo_quiz/internal/model"
	"lingo_quiz/internal/repository/mocks"
	"lingo_quiz/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStartQuiz_CreatesOnceAndReturnsSameRecord(t *testing.T) {
	ctx := context.Background()
	env := newSubmissionEnv(t)
	f := env.f

	first, err := env.progress.StartQuiz(ctx, f.User.ID, f.Quiz.ID)
	require.NoError(t, err)
	assert.NotZero(t, first.ID)
	assert.Zero(t, first.Score)
	assert.False(t, first.Completed)

	second, err := env.progress.StartQuiz(ctx, f.User.ID, f.Quiz.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Zero(t, second.Score)
	assert.False(t, second.Completed)

	var count int64
	require.NoError(t, env.db.Model(&model.UserProgress{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestStartQuiz_RetakeResetsCompletedRecord(t *testing.T) {
	ctx := context.Background()
	env := newSubmissionEnv(t)
	f := env.f

	started, err := env.progress.StartQuiz(ctx, f.User.ID, f.Quiz.ID)
	require.NoError(t, err)
	_, err = env.submission.SubmitQuiz(ctx, f.User.ID, f.Quiz.ID, []model.SubmittedAnswer{
		{QuestionID: f.Q1.ID, SelectedOptionID: f.Q1Right},
		{QuestionID: f.Q2.ID, SelectedOptionID: f.Q2Wrong},
	})
	require.NoError(t, err)

	retake, err := env.progress.StartQuiz(ctx, f.User.ID, f.Quiz.ID)
	require.NoError(t, err)
	assert.Equal(t, started.ID, retake.ID)
	assert.Zero(t, retake.Score)
	assert.False(t, retake.Completed)

	stored, err := env.progRepo.FindByUserAndQuiz(ctx, env.db, f.User.ID, f.Quiz.ID)
	require.NoError(t, err)
	assert.Zero(t, stored.Score)
	assert.False(t, stored.Completed)

	// 再受験の開始では以前の回答は消えない
	answers, err := env.answers.ListByUserAndQuiz(ctx, env.db, f.User.ID, f.Quiz.ID)
	require.NoError(t, err)
	assert.Len(t, answers, 2)
}

func TestStartQuiz_UnknownQuiz(t *testing.T) {
	env := newSubmissionEnv(t)

	progress, err := env.progress.StartQuiz(context.Background(), env.f.User.ID, 9999)

	assert.Nil(t, progress)
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.Equal(t, "QUIZ_NOT_FOUND", appErrorCode(t, err))
}

func TestStartQuiz_ConcurrentCreateReturnsWinner(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	quizRepo := mocks.NewQuizRepository(t)
	progRepo := mocks.NewProgressRepository(t)
	svc := service.NewProgressService(db, quizRepo, progRepo)

	winner := &model.UserProgress{ID: 42, UserID: 1, QuizID: 7, LastAttempted: time.Now()}

	quizRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), uint(7), false).
		Return(&model.Quiz{ID: 7}, nil).Once()
	progRepo.On("FindByUserAndQuiz", ctx, mock.AnythingOfType("*gorm.DB"), uint(1), uint(7)).
		Return(nil, model.ErrNotFound).Once()
	progRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.UserProgress")).
		Return(model.ErrConflict).Once()
	progRepo.On("FindByUserAndQuiz", ctx, mock.AnythingOfType("*gorm.DB"), uint(1), uint(7)).
		Return(winner, nil).Once()

	got, err := svc.StartQuiz(ctx, 1, 7)

	require.NoError(t, err)
	assert.Equal(t, uint(42), got.ID)
}

func TestListProgress_FilterByLanguage(t *testing.T) {
	ctx := context.Background()
	env := newSubmissionEnv(t)
	f := env.f

	french := &model.Language{Code: "fr", Name: "French"}
	require.NoError(t, env.db.Create(french).Error)
	frQuiz := &model.Quiz{LanguageID: french.ID, Level: model.LevelBeginner, Title: "French Beginner"}
	require.NoError(t, env.db.Create(frQuiz).Error)

	_, err := env.progress.StartQuiz(ctx, f.User.ID, f.Quiz.ID)
	require.NoError(t, err)
	_, err = env.progress.StartQuiz(ctx, f.User.ID, frQuiz.ID)
	require.NoError(t, err)

	all, err := env.progress.ListProgress(ctx, f.User.ID, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	onlyFrench, err := env.progress.ListProgress(ctx, f.User.ID, "fr")
	require.NoError(t, err)
	require.Len(t, onlyFrench, 1)
	assert.Equal(t, frQuiz.ID, onlyFrench[0].QuizID)
	require.NotNil(t, onlyFrench[0].Quiz)
	require.NotNil(t, onlyFrench[0].Quiz.Language)
	assert.Equal(t, "fr", onlyFrench[0].Quiz.Language.Code)

	none, err := env.progress.ListProgress(ctx, f.User.ID, "de")
	require.NoError(t, err)
	assert.Empty(t, none)
}

package service_test

import (
	"context"
	"testing"

	"lingo_quiz/internal/model"
	"lingo_quiz/internal/repository"
	"lingo_quiz/internal/repository/mocks"
	"lingo_quiz/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSubmitQuiz_LosingConcurrentSubmission(t *testing.T) {
	ctx := context.Background()
	env := newSubmissionEnv(t)
	f := env.f

	_, err := env.progress.StartQuiz(ctx, f.User.ID, f.Quiz.ID)
	require.NoError(t, err)

	answerRepo := mocks.NewAnswerRepository(t)
	answerRepo.On("DeleteByUserAndQuiz", ctx, mock.AnythingOfType("*gorm.DB"), f.User.ID, f.Quiz.ID).
		Return(nil).Once()
	answerRepo.On("CreateBatch", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("[]*model.UserAnswer")).
		Return(model.ErrConflict).Once()

	svc := service.NewSubmissionService(env.db,
		repository.NewGormQuizRepository(),
		repository.NewGormQuestionRepository(),
		repository.NewGormOptionRepository(),
		env.progRepo, answerRepo)

	res, err := svc.SubmitQuiz(ctx, f.User.ID, f.Quiz.ID, []model.SubmittedAnswer{
		{QuestionID: f.Q1.ID, SelectedOptionID: f.Q1Right},
	})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, model.ErrConflict)
	assert.Equal(t, "SUBMISSION_CONFLICT", appErrorCode(t, err))

	progress, err := env.progRepo.FindByUserAndQuiz(ctx, env.db, f.User.ID, f.Quiz.ID)
	require.NoError(t, err)
	assert.False(t, progress.Completed)
	assert.Zero(t, progress.Score)
}

func TestListAnswers(t *testing.T) {
	ctx := context.Background()
	env := newSubmissionEnv(t)
	f := env.f

	answers, err := env.submission.ListAnswers(ctx, f.User.ID, f.Quiz.ID)
	require.NoError(t, err)
	assert.Empty(t, answers)

	_, err = env.progress.StartQuiz(ctx, f.User.ID, f.Quiz.ID)
	require.NoError(t, err)
	_, err = env.submission.SubmitQuiz(ctx, f.User.ID, f.Quiz.ID, []model.SubmittedAnswer{
		{QuestionID: f.Q2.ID, SelectedOptionID: f.Q2Wrong},
		{QuestionID: f.Q1.ID, SelectedOptionID: f.Q1Right},
	})
	require.NoError(t, err)

	answers, err = env.submission.ListAnswers(ctx, f.User.ID, f.Quiz.ID)
	require.NoError(t, err)
	require.Len(t, answers, 2)
	assert.Equal(t, f.Q2.ID, answers[0].QuestionID, "提出順")
	assert.False(t, answers[0].IsCorrect)
	require.NotNil(t, answers[1].SelectedOptionID)
	assert.Equal(t, f.Q1Right, *answers[1].SelectedOptionID)
	assert.True(t, answers[1].IsCorrect)

	other, err := env.submission.ListAnswers(ctx, f.User.ID, f.Other.ID)
	require.NoError(t, err)
	assert.Empty(t, other)

	_, err = env.submission.ListAnswers(ctx, f.User.ID, 9999)
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.Equal(t, "QUIZ_NOT_FOUND", appErrorCode(t, err))
}

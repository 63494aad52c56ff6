package service_test

import (
	"context"
	"testing"

	"lingo_quiz/internal/model"
	"lingo_quiz/internal/repository"
	"lingo_quiz/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type submissionEnv struct {
	db         *gorm.DB
	f          *fixture
	progress   service.ProgressService
	submission service.SubmissionService
	answers    repository.AnswerRepository
	progRepo   repository.ProgressRepository
}

func newSubmissionEnv(t *testing.T) *submissionEnv {
	t.Helper()
	db := setupTestDB(t)
	quizRepo := repository.NewGormQuizRepository()
	progRepo := repository.NewGormProgressRepository()
	answerRepo := repository.NewGormAnswerRepository()
	return &submissionEnv{
		db:       db,
		f:        seedFixture(t, db),
		progress: service.NewProgressService(db, quizRepo, progRepo),
		submission: service.NewSubmissionService(db, quizRepo,
			repository.NewGormQuestionRepository(),
			repository.NewGormOptionRepository(),
			progRepo, answerRepo),
		answers:  answerRepo,
		progRepo: progRepo,
	}
}

func appErrorCode(t *testing.T, err error) string {
	t.Helper()
	var appErr *model.AppError
	require.ErrorAs(t, err, &appErr)
	return appErr.Detail.Code
}

func TestSubmitQuiz_Scoring(t *testing.T) {
	ctx := context.Background()
	env := newSubmissionEnv(t)
	f := env.f

	_, err := env.progress.StartQuiz(ctx, f.User.ID, f.Quiz.ID)
	require.NoError(t, err)

	tests := []struct {
		name        string
		answers     []model.SubmittedAnswer
		wantCorrect int
		wantScore   float64
		wantStored  int
	}{
		{
			name: "全問正解で100",
			answers: []model.SubmittedAnswer{
				{QuestionID: f.Q1.ID, SelectedOptionID: f.Q1Right},
				{QuestionID: f.Q2.ID, SelectedOptionID: f.Q2Right},
			},
			wantCorrect: 2, wantScore: 100, wantStored: 2,
		},
		{
			name: "再提出は置き換え: 1問正解で50",
			answers: []model.SubmittedAnswer{
				{QuestionID: f.Q1.ID, SelectedOptionID: f.Q1Right},
				{QuestionID: f.Q2.ID, SelectedOptionID: f.Q2Wrong},
			},
			wantCorrect: 1, wantScore: 50, wantStored: 2,
		},
		{
			name:        "空のバッチは0点で旧回答は消える",
			answers:     []model.SubmittedAnswer{},
			wantCorrect: 0, wantScore: 0, wantStored: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := env.submission.SubmitQuiz(ctx, f.User.ID, f.Quiz.ID, tt.answers)
			require.NoError(t, err)

			assert.Equal(t, len(tt.answers), res.TotalQuestions)
			assert.Equal(t, tt.wantCorrect, res.CorrectAnswers)
			assert.InDelta(t, tt.wantScore, res.ScorePercentage, 0.0001)
			assert.True(t, res.Completed)

			stored, err := env.answers.ListByUserAndQuiz(ctx, env.db, f.User.ID, f.Quiz.ID)
			require.NoError(t, err)
			assert.Len(t, stored, tt.wantStored)
			correct := 0
			for _, a := range stored {
				if a.IsCorrect {
					correct++
				}
			}
			assert.Equal(t, tt.wantCorrect, correct)

			progress, err := env.progRepo.FindByUserAndQuiz(ctx, env.db, f.User.ID, f.Quiz.ID)
			require.NoError(t, err)
			assert.True(t, progress.Completed)
			assert.InDelta(t, tt.wantScore, progress.Score, 0.0001)
		})
	}
}

func TestSubmitQuiz_OneThirdScore(t *testing.T) {
	ctx := context.Background()
	env := newSubmissionEnv(t)
	f := env.f

	q3 := newQuestion(f.Quiz.ID, "What is thanks?", "Gracias", 3, "Gracias", "Por favor")
	require.NoError(t, env.db.Create(q3).Error)

	_, err := env.progress.StartQuiz(ctx, f.User.ID, f.Quiz.ID)
	require.NoError(t, err)

	res, err := env.submission.SubmitQuiz(ctx, f.User.ID, f.Quiz.ID, []model.SubmittedAnswer{
		{QuestionID: f.Q1.ID, SelectedOptionID: f.Q1Right},
		{QuestionID: f.Q2.ID, SelectedOptionID: f.Q2Wrong},
		{QuestionID: q3.ID, SelectedOptionID: q3.Options[1].ID},
	})
	require.NoError(t, err)
	assert.InDelta(t, 100.0/3.0, res.ScorePercentage, 0.0001)
}

func TestSubmitQuiz_NotStarted(t *testing.T) {
	ctx := context.Background()
	env := newSubmissionEnv(t)
	f := env.f

	_, err := env.submission.SubmitQuiz(ctx, f.User.ID, f.Quiz.ID, []model.SubmittedAnswer{
		{QuestionID: f.Q1.ID, SelectedOptionID: f.Q1Right},
	})

	assert.ErrorIs(t, err, model.ErrPrecondition)
	assert.Equal(t, "QUIZ_NOT_STARTED", appErrorCode(t, err))

	stored, err := env.answers.ListByUserAndQuiz(ctx, env.db, f.User.ID, f.Quiz.ID)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestSubmitQuiz_FailsClosed(t *testing.T) {
	ctx := context.Background()
	env := newSubmissionEnv(t)
	f := env.f

	_, err := env.progress.StartQuiz(ctx, f.User.ID, f.Quiz.ID)
	require.NoError(t, err)
	_, err = env.submission.SubmitQuiz(ctx, f.User.ID, f.Quiz.ID, []model.SubmittedAnswer{
		{QuestionID: f.Q1.ID, SelectedOptionID: f.Q1Right},
		{QuestionID: f.Q2.ID, SelectedOptionID: f.Q2Right},
	})
	require.NoError(t, err)

	tests := []struct {
		name     string
		quizID   uint
		answers  []model.SubmittedAnswer
		wantErr  error
		wantCode string
	}{
		{
			name:   "存在しない問題",
			quizID: f.Quiz.ID,
			answers: []model.SubmittedAnswer{
				{QuestionID: f.Q1.ID, SelectedOptionID: f.Q1Wrong},
				{QuestionID: 9999, SelectedOptionID: f.Q2Right},
			},
			wantErr: model.ErrNotFound, wantCode: "QUESTION_NOT_FOUND",
		},
		{
			name:   "存在しない選択肢",
			quizID: f.Quiz.ID,
			answers: []model.SubmittedAnswer{
				{QuestionID: f.Q1.ID, SelectedOptionID: 9999},
			},
			wantErr: model.ErrNotFound, wantCode: "OPTION_NOT_FOUND",
		},
		{
			name:   "他の問題の選択肢",
			quizID: f.Quiz.ID,
			answers: []model.SubmittedAnswer{
				{QuestionID: f.Q1.ID, SelectedOptionID: f.Q2Right},
			},
			wantErr: model.ErrNotFound, wantCode: "OPTION_NOT_FOUND",
		},
		{
			name:   "他のクイズの問題",
			quizID: f.Quiz.ID,
			answers: []model.SubmittedAnswer{
				{QuestionID: f.OtherQ.ID, SelectedOptionID: f.OtherQ.Options[0].ID},
			},
			wantErr: model.ErrNotFound, wantCode: "QUESTION_NOT_FOUND",
		},
		{
			name:   "存在しないクイズ",
			quizID: 9999,
			answers: []model.SubmittedAnswer{
				{QuestionID: f.Q1.ID, SelectedOptionID: f.Q1Wrong},
			},
			wantErr: model.ErrNotFound, wantCode: "QUIZ_NOT_FOUND",
		},
		{
			name:   "同じ問題の重複回答",
			quizID: f.Quiz.ID,
			answers: []model.SubmittedAnswer{
				{QuestionID: f.Q1.ID, SelectedOptionID: f.Q1Wrong},
				{QuestionID: f.Q1.ID, SelectedOptionID: f.Q1Right},
			},
			wantErr: model.ErrInvalidInput, wantCode: "DUPLICATE_QUESTION",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := env.submission.SubmitQuiz(ctx, f.User.ID, tt.quizID, tt.answers)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantCode, appErrorCode(t, err))

			// 以前の提出結果は変わらない
			stored, err := env.answers.ListByUserAndQuiz(ctx, env.db, f.User.ID, f.Quiz.ID)
			require.NoError(t, err)
			require.Len(t, stored, 2)
			for _, a := range stored {
				assert.True(t, a.IsCorrect)
			}
			progress, err := env.progRepo.FindByUserAndQuiz(ctx, env.db, f.User.ID, f.Quiz.ID)
			require.NoError(t, err)
			assert.InDelta(t, 100.0, progress.Score, 0.0001)
		})
	}
}

func TestSubmitQuiz_DeletedOptionKeepsAnswer(t *testing.T) {
	ctx := context.Background()
	env := newSubmissionEnv(t)
	f := env.f
	content := service.NewContentService(env.db,
		repository.NewGormLanguageRepository(),
		repository.NewGormQuizRepository(),
		repository.NewGormQuestionRepository(),
		repository.NewGormOptionRepository(),
		env.answers,
		&fakeAudio{},
	)

	_, err := env.progress.StartQuiz(ctx, f.User.ID, f.Quiz.ID)
	require.NoError(t, err)
	_, err = env.submission.SubmitQuiz(ctx, f.User.ID, f.Quiz.ID, []model.SubmittedAnswer{
		{QuestionID: f.Q1.ID, SelectedOptionID: f.Q1Right},
	})
	require.NoError(t, err)

	require.NoError(t, content.DeleteOption(ctx, f.Q1Right))

	stored, err := env.answers.ListByUserAndQuiz(ctx, env.db, f.User.ID, f.Quiz.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Nil(t, stored[0].SelectedOptionID)
	assert.True(t, stored[0].IsCorrect, "is_correct は提出時点の値を保持する")
}

// internal/service/submission_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lingo_quiz/internal/middleware"
	"lingo_quiz/internal/model"
	"lingo_quiz/internal/repository"

	"gorm.io/gorm"
)

// SubmissionService はクイズの回答バッチを採点し、回答記録と受験状況を更新します。
type SubmissionService interface {
	SubmitQuiz(ctx context.Context, userID, quizID uint, answers []model.SubmittedAnswer) (*model.SubmissionResult, error)
	// ListAnswers は直近の提出で記録された回答を返します。未提出なら空。
	ListAnswers(ctx context.Context, userID, quizID uint) ([]*model.UserAnswer, error)
}

type submissionService struct {
	db           *gorm.DB
	quizRepo     repository.QuizRepository
	questionRepo repository.QuestionRepository
	optionRepo   repository.OptionRepository
	progressRepo repository.ProgressRepository
	answerRepo   repository.AnswerRepository
}

func NewSubmissionService(
	db *gorm.DB,
	quizRepo repository.QuizRepository,
	questionRepo repository.QuestionRepository,
	optionRepo repository.OptionRepository,
	progressRepo repository.ProgressRepository,
	answerRepo repository.AnswerRepository,
) SubmissionService {
	return &submissionService{
		db:           db,
		quizRepo:     quizRepo,
		questionRepo: questionRepo,
		optionRepo:   optionRepo,
		progressRepo: progressRepo,
		answerRepo:   answerRepo,
	}
}

// SubmitQuiz は全件の検証が通った場合のみ、1トランザクションで
// 旧回答の削除・新回答の作成・受験状況の更新を行います。
func (s *submissionService) SubmitQuiz(ctx context.Context, userID, quizID uint, answers []model.SubmittedAnswer) (*model.SubmissionResult, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "quiz_id", quizID)

	if err := checkDuplicateQuestions(answers); err != nil {
		logger.Warn("Submission rejected: duplicate question", "error", err)
		return nil, err
	}

	var result *model.SubmissionResult

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.quizRepo.FindByID(ctx, tx, quizID, false); err != nil {
			return quizLookupError(err, quizID)
		}

		selected, err := s.resolveAnswers(ctx, tx, quizID, answers)
		if err != nil {
			return err
		}

		progress, err := s.progressRepo.FindByUserAndQuiz(ctx, tx, userID, quizID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("QUIZ_NOT_STARTED", "Quiz must be started before submitting answers.", "quiz_id", model.ErrPrecondition)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to submit quiz.", "", err)
		}

		// ここから更新。以前の回答は全て置き換える
		if err := s.answerRepo.DeleteByUserAndQuiz(ctx, tx, userID, quizID); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to submit quiz.", "", err)
		}

		records := make([]*model.UserAnswer, 0, len(answers))
		correct := 0
		for i, a := range answers {
			optionID := a.SelectedOptionID
			isCorrect := selected[i].IsCorrect
			if isCorrect {
				correct++
			}
			records = append(records, &model.UserAnswer{
				UserID:           userID,
				QuestionID:       a.QuestionID,
				SelectedOptionID: &optionID,
				IsCorrect:        isCorrect,
			})
		}
		if err := s.answerRepo.CreateBatch(ctx, tx, records); err != nil {
			if errors.Is(err, model.ErrConflict) {
				// 同じクイズへの同時提出に負けた
				return model.NewAppError("SUBMISSION_CONFLICT", "Another submission for this quiz is in progress. Please retry.", "quiz_id", model.ErrConflict)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to submit quiz.", "", err)
		}

		score := scorePercentage(correct, len(answers))
		progress.Score = score
		progress.Completed = true
		progress.LastAttempted = time.Now()
		if err := s.progressRepo.Update(ctx, tx, progress); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to submit quiz.", "", err)
		}

		result = &model.SubmissionResult{
			TotalQuestions:  len(answers),
			CorrectAnswers:  correct,
			ScorePercentage: score,
			Completed:       true,
		}
		return nil
	})
	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		logger.Error("Transaction failed for SubmitQuiz", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to submit quiz.", "", err)
	}

	logger.Info("Quiz submitted",
		"total", result.TotalQuestions,
		"correct", result.CorrectAnswers,
		"score", result.ScorePercentage,
	)
	return result, nil
}

func (s *submissionService) ListAnswers(ctx context.Context, userID, quizID uint) ([]*model.UserAnswer, error) {
	if _, err := s.quizRepo.FindByID(ctx, s.db, quizID, false); err != nil {
		return nil, quizLookupError(err, quizID)
	}
	answers, err := s.answerRepo.ListByUserAndQuiz(ctx, s.db, userID, quizID)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to list answers.", "", err)
	}
	return answers, nil
}

// resolveAnswers は各回答の問題がこのクイズに属し、選択肢がその問題に属することを確認し、
// 入力順に選択肢を返します。
func (s *submissionService) resolveAnswers(ctx context.Context, tx *gorm.DB, quizID uint, answers []model.SubmittedAnswer) ([]*model.QuestionOption, error) {
	questionIDs := make([]uint, 0, len(answers))
	optionIDs := make([]uint, 0, len(answers))
	for _, a := range answers {
		questionIDs = append(questionIDs, a.QuestionID)
		optionIDs = append(optionIDs, a.SelectedOptionID)
	}

	questions, err := s.questionRepo.FindByIDs(ctx, tx, questionIDs)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to submit quiz.", "", err)
	}
	options, err := s.optionRepo.FindByIDs(ctx, tx, optionIDs)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to submit quiz.", "", err)
	}

	selected := make([]*model.QuestionOption, 0, len(answers))
	for i, a := range answers {
		q, ok := questions[a.QuestionID]
		if !ok || q.QuizID != quizID {
			return nil, model.NewAppError("QUESTION_NOT_FOUND",
				fmt.Sprintf("Question %d not found in quiz %d.", a.QuestionID, quizID),
				fmt.Sprintf("[%d].question_id", i), model.ErrNotFound)
		}
		o, ok := options[a.SelectedOptionID]
		if !ok || o.QuestionID != a.QuestionID {
			return nil, model.NewAppError("OPTION_NOT_FOUND",
				fmt.Sprintf("Option %d not found for question %d.", a.SelectedOptionID, a.QuestionID),
				fmt.Sprintf("[%d].selected_option_id", i), model.ErrNotFound)
		}
		selected = append(selected, o)
	}
	return selected, nil
}

func checkDuplicateQuestions(answers []model.SubmittedAnswer) error {
	seen := make(map[uint]struct{}, len(answers))
	for i, a := range answers {
		if _, dup := seen[a.QuestionID]; dup {
			return model.NewAppError("DUPLICATE_QUESTION",
				fmt.Sprintf("Question %d is answered more than once.", a.QuestionID),
				fmt.Sprintf("[%d].question_id", i), model.ErrInvalidInput)
		}
		seen[a.QuestionID] = struct{}{}
	}
	return nil
}

// scorePercentage は正答率 (0-100) を返します。問題数0なら 0。
func scorePercentage(correct, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(correct) / float64(total) * 100
}

// internal/service/content_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"lingo_quiz/internal/audio"
	"lingo_quiz/internal/middleware"
	"lingo_quiz/internal/model"
	"lingo_quiz/internal/repository"

	"gorm.io/gorm"
)

// ContentService は言語・クイズ・問題の参照と管理を行います。
// speech 問題の音声生成は、行の保存 (コミット) 後の第2ステップとして実行します。
type ContentService interface {
	ListLanguages(ctx context.Context) ([]*model.Language, error)
	ListQuizzes(ctx context.Context, filter model.QuizFilter) ([]*model.Quiz, error)
	GetQuiz(ctx context.Context, quizID uint) (*model.Quiz, error)
	CreateQuestion(ctx context.Context, quizID uint, req *model.QuestionRequest) (*model.Question, error)
	UpdateQuestion(ctx context.Context, questionID uint, req *model.QuestionRequest) (*model.Question, error)
	DeleteQuestion(ctx context.Context, questionID uint) error
	DeleteOption(ctx context.Context, optionID uint) error
	EnsureLanguage(ctx context.Context, language *model.Language) (bool, error)
	EnsureQuiz(ctx context.Context, quiz *model.Quiz) (bool, error)
}

type contentService struct {
	db           *gorm.DB
	languageRepo repository.LanguageRepository
	quizRepo     repository.QuizRepository
	questionRepo repository.QuestionRepository
	optionRepo   repository.OptionRepository
	answerRepo   repository.AnswerRepository
	audio        audio.Service
}

func NewContentService(
	db *gorm.DB,
	languageRepo repository.LanguageRepository,
	quizRepo repository.QuizRepository,
	questionRepo repository.QuestionRepository,
	optionRepo repository.OptionRepository,
	answerRepo repository.AnswerRepository,
	audioService audio.Service,
) ContentService {
	return &contentService{
		db:           db,
		languageRepo: languageRepo,
		quizRepo:     quizRepo,
		questionRepo: questionRepo,
		optionRepo:   optionRepo,
		answerRepo:   answerRepo,
		audio:        audioService,
	}
}

func (s *contentService) ListLanguages(ctx context.Context) ([]*model.Language, error) {
	languages, err := s.languageRepo.List(ctx, s.db)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to list languages.", "", err)
	}
	return languages, nil
}

func (s *contentService) ListQuizzes(ctx context.Context, filter model.QuizFilter) ([]*model.Quiz, error) {
	if filter.Level != "" && !filter.Level.Valid() {
		return nil, model.NewAppError("INVALID_LEVEL", fmt.Sprintf("Unknown level: %s", filter.Level), "level", model.ErrInvalidInput)
	}
	quizzes, err := s.quizRepo.List(ctx, s.db, filter)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to list quizzes.", "", err)
	}
	return quizzes, nil
}

func (s *contentService) GetQuiz(ctx context.Context, quizID uint) (*model.Quiz, error) {
	quiz, err := s.quizRepo.FindByID(ctx, s.db, quizID, true)
	if err != nil {
		return nil, quizLookupError(err, quizID)
	}
	return quiz, nil
}

func (s *contentService) CreateQuestion(ctx context.Context, quizID uint, req *model.QuestionRequest) (*model.Question, error) {
	logger := middleware.GetLogger(ctx).With("quiz_id", quizID)
	if err := validateQuestionOptions(req); err != nil {
		return nil, err
	}
	for i, o := range req.Options {
		if o.ID != 0 {
			return nil, model.NewAppError("VALIDATION_ERROR", "Option IDs cannot be set when creating a question.",
				fmt.Sprintf("options[%d].id", i), model.ErrInvalidInput)
		}
	}

	var question *model.Question
	var languageCode string

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		quiz, err := s.quizRepo.FindByID(ctx, tx, quizID, false)
		if err != nil {
			return quizLookupError(err, quizID)
		}
		if quiz.Language != nil {
			languageCode = quiz.Language.Code
		}

		q := &model.Question{
			QuizID:        quizID,
			Text:          req.Text,
			QuestionType:  req.QuestionType,
			CorrectAnswer: req.CorrectAnswer,
			Position:      req.Position,
			Options:       toOptions(req.Options),
		}
		if err := s.questionRepo.Create(ctx, tx, q); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to create question.", "", err)
		}
		question = q
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Question created", "question_id", question.ID, "type", question.QuestionType)
	s.ensureAudio(ctx, question, languageCode)
	return question, nil
}

func (s *contentService) UpdateQuestion(ctx context.Context, questionID uint, req *model.QuestionRequest) (*model.Question, error) {
	logger := middleware.GetLogger(ctx).With("question_id", questionID)
	if req.Options != nil {
		if err := validateQuestionOptions(req); err != nil {
			return nil, err
		}
	}

	var question *model.Question
	var languageCode string
	var staleAudio *string

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q, err := s.questionRepo.FindByID(ctx, tx, questionID)
		if err != nil {
			return questionLookupError(err, questionID)
		}
		quiz, err := s.quizRepo.FindByID(ctx, tx, q.QuizID, false)
		if err != nil {
			return quizLookupError(err, q.QuizID)
		}
		if quiz.Language != nil {
			languageCode = quiz.Language.Code
		}

		var options []model.QuestionOption
		if req.Options != nil {
			if err := checkOptionIDs(q, req.Options); err != nil {
				return err
			}
			options = toOptions(req.Options)
		} else if err := validateOptionSet(req.QuestionType, toOptionRequests(q.Options)); err != nil {
			return err
		}

		// speech 以外に変わったら音声の参照を外し、コミット後に削除する
		if req.QuestionType != model.QuestionSpeech && q.AudioURL != nil {
			staleAudio = q.AudioURL
			q.AudioURL = nil
		}

		q.Text = req.Text
		q.QuestionType = req.QuestionType
		q.CorrectAnswer = req.CorrectAnswer
		q.Position = req.Position
		if err := s.questionRepo.Update(ctx, tx, q, options); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return questionLookupError(err, questionID)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to update question.", "", err)
		}
		question = q
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Question updated")
	if staleAudio != nil && !s.audio.Delete(ctx, *staleAudio) {
		logger.Warn("Question is no longer speech but its audio could not be removed", "audio_url", *staleAudio)
	}
	// 既に音声を持つ場合は再生成しない
	s.ensureAudio(ctx, question, languageCode)
	return question, nil
}

func (s *contentService) DeleteQuestion(ctx context.Context, questionID uint) error {
	logger := middleware.GetLogger(ctx).With("question_id", questionID)
	var audioURL *string

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q, err := s.questionRepo.FindByID(ctx, tx, questionID)
		if err != nil {
			return questionLookupError(err, questionID)
		}
		audioURL = q.AudioURL

		if err := s.answerRepo.DeleteByQuestion(ctx, tx, questionID); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to delete question.", "", err)
		}
		if err := s.optionRepo.DeleteByQuestion(ctx, tx, questionID); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to delete question.", "", err)
		}
		if err := s.questionRepo.Delete(ctx, tx, questionID); err != nil {
			return questionLookupError(err, questionID)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("Question deleted")
	if audioURL != nil && !s.audio.Delete(ctx, *audioURL) {
		logger.Warn("Question deleted but its audio could not be removed", "audio_url", *audioURL)
	}
	return nil
}

func (s *contentService) DeleteOption(ctx context.Context, optionID uint) error {
	logger := middleware.GetLogger(ctx).With("option_id", optionID)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.optionRepo.FindByID(ctx, tx, optionID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("OPTION_NOT_FOUND", fmt.Sprintf("Option %d not found.", optionID), "option_id", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to delete option.", "", err)
		}
		// 回答記録は残し、選択肢への参照だけを外す
		if err := s.answerRepo.ClearSelectedOption(ctx, tx, optionID); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to delete option.", "", err)
		}
		if err := s.optionRepo.Delete(ctx, tx, optionID); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to delete option.", "", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	logger.Info("Option deleted")
	return nil
}

func (s *contentService) EnsureLanguage(ctx context.Context, language *model.Language) (bool, error) {
	created, err := s.languageRepo.FirstOrCreate(ctx, s.db, language)
	if err != nil {
		return false, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to save language.", "", err)
	}
	return created, nil
}

func (s *contentService) EnsureQuiz(ctx context.Context, quiz *model.Quiz) (bool, error) {
	if !quiz.Level.Valid() {
		return false, model.NewAppError("INVALID_LEVEL", fmt.Sprintf("Unknown level: %s", quiz.Level), "level", model.ErrInvalidInput)
	}
	created, err := s.quizRepo.FirstOrCreate(ctx, s.db, quiz)
	if err != nil {
		return false, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to save quiz.", "", err)
	}
	return created, nil
}

// ensureAudio は音声を持たない speech 問題に音声を生成して保存します。
// 失敗しても問題は音声なしのまま有効です。
func (s *contentService) ensureAudio(ctx context.Context, q *model.Question, languageCode string) {
	if !q.NeedsAudio() {
		return
	}
	logger := middleware.GetLogger(ctx).With("question_id", q.ID)

	res := s.audio.Generate(ctx, q.CorrectAnswer, languageCode)
	if !res.OK() {
		logger.Warn("Speech question saved without audio", "error", res.Err)
		return
	}

	url := res.URL
	if err := s.questionRepo.UpdateAudioURL(ctx, s.db, q.ID, &url); err != nil {
		logger.Error("Failed to persist audio reference", "error", err, "audio_url", url)
		s.audio.Delete(ctx, url)
		return
	}
	q.AudioURL = &url
}

// validateQuestionOptions は選択式の問題に正解がちょうど1つあることを確認します。
func validateQuestionOptions(req *model.QuestionRequest) error {
	return validateOptionSet(req.QuestionType, req.Options)
}

func validateOptionSet(questionType model.QuestionType, options []model.OptionRequest) error {
	if !questionType.RequiresSingleCorrectOption() {
		return nil
	}
	if len(options) < 2 {
		return model.NewAppError("VALIDATION_ERROR", "At least two options are required.", "options", model.ErrInvalidInput)
	}
	correct := 0
	for _, o := range options {
		if o.IsCorrect {
			correct++
		}
	}
	if correct != 1 {
		return model.NewAppError("VALIDATION_ERROR", "Exactly one option must be marked correct.", "options", model.ErrInvalidInput)
	}
	return nil
}

// checkOptionIDs はリクエスト中の選択肢 ID がこの問題のもので、重複していないことを確認します。
func checkOptionIDs(q *model.Question, reqs []model.OptionRequest) error {
	owned := make(map[uint]struct{}, len(q.Options))
	for _, o := range q.Options {
		owned[o.ID] = struct{}{}
	}
	seen := make(map[uint]struct{}, len(reqs))
	for i, o := range reqs {
		if o.ID == 0 {
			continue
		}
		field := fmt.Sprintf("options[%d].id", i)
		if _, ok := owned[o.ID]; !ok {
			return model.NewAppError("OPTION_NOT_FOUND",
				fmt.Sprintf("Option %d not found for question %d.", o.ID, q.ID), field, model.ErrNotFound)
		}
		if _, dup := seen[o.ID]; dup {
			return model.NewAppError("VALIDATION_ERROR",
				fmt.Sprintf("Option %d is listed more than once.", o.ID), field, model.ErrInvalidInput)
		}
		seen[o.ID] = struct{}{}
	}
	return nil
}

func toOptions(reqs []model.OptionRequest) []model.QuestionOption {
	options := make([]model.QuestionOption, 0, len(reqs))
	for _, o := range reqs {
		options = append(options, model.QuestionOption{ID: o.ID, Text: o.Text, IsCorrect: o.IsCorrect})
	}
	return options
}

func toOptionRequests(options []model.QuestionOption) []model.OptionRequest {
	reqs := make([]model.OptionRequest, 0, len(options))
	for _, o := range options {
		reqs = append(reqs, model.OptionRequest{ID: o.ID, Text: o.Text, IsCorrect: o.IsCorrect})
	}
	return reqs
}

func quizLookupError(err error, quizID uint) error {
	if errors.Is(err, model.ErrNotFound) {
		return model.NewAppError("QUIZ_NOT_FOUND", fmt.Sprintf("Quiz %d not found.", quizID), "quiz_id", model.ErrNotFound)
	}
	return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load quiz.", "", err)
}

func questionLookupError(err error, questionID uint) error {
	if errors.Is(err, model.ErrNotFound) {
		return model.NewAppError("QUESTION_NOT_FOUND", fmt.Sprintf("Question %d not found.", questionID), "question_id", model.ErrNotFound)
	}
	return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load question.", "", err)
}

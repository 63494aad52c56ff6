// internal/handlers/content_handler.go
package handlers

import (
	"net/http"
	"strings"

	"lingo_quiz/internal/middleware"
	"lingo_quiz/internal/model"
	"lingo_quiz/internal/service"
	"lingo_quiz/internal/webutil"
)

// ContentHandler は言語・クイズの参照と、スタッフ向けの問題管理を扱います。
type ContentHandler struct {
	service service.ContentService
}

func NewContentHandler(s service.ContentService) *ContentHandler {
	return &ContentHandler{service: s}
}

// ListLanguages は言語の一覧を返します
func (h *ContentHandler) ListLanguages(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	languages, err := h.service.ListLanguages(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if languages == nil {
		languages = []*model.Language{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, languages, logger)
}

// ListQuizzes は ?language=es&level=beginner で絞り込んだクイズ一覧を返します
func (h *ContentHandler) ListQuizzes(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	filter := model.QuizFilter{
		LanguageCode: strings.TrimSpace(r.URL.Query().Get("language")),
		Level:        model.QuizLevel(strings.TrimSpace(r.URL.Query().Get("level"))),
	}
	quizzes, err := h.service.ListQuizzes(r.Context(), filter)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	res := make([]model.QuizResponse, 0, len(quizzes))
	for _, q := range quizzes {
		res = append(res, model.NewQuizResponse(q))
	}
	webutil.RespondWithJSON(w, http.StatusOK, res, logger)
}

// GetQuiz は問題と選択肢を含むクイズを返します (正解情報は含まない)
func (h *ContentHandler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	quizID, err := webutil.URLParamID(r, "quiz_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	quiz, err := h.service.GetQuiz(r.Context(), quizID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.NewQuizResponse(quiz), logger)
}

// CreateQuestion はクイズに問題を追加します (スタッフのみ)
func (h *ContentHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	quizID, err := webutil.URLParamID(r, "quiz_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.QuestionRequest
	if err := bindJSON(r, &req); err != nil {
		logger.Warn("Invalid question request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	question, err := h.service.CreateQuestion(r.Context(), quizID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Question created", "question_id", question.ID, "quiz_id", quizID)
	webutil.RespondWithJSON(w, http.StatusCreated, model.NewQuestionDetailResponse(question), logger)
}

// UpdateQuestion は問題を全体更新します (スタッフのみ)
func (h *ContentHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	questionID, err := webutil.URLParamID(r, "question_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.QuestionRequest
	if err := bindJSON(r, &req); err != nil {
		logger.Warn("Invalid question request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	question, err := h.service.UpdateQuestion(r.Context(), questionID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.NewQuestionDetailResponse(question), logger)
}

// DeleteQuestion は問題を削除します (スタッフのみ)
func (h *ContentHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	questionID, err := webutil.URLParamID(r, "question_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.DeleteQuestion(r.Context(), questionID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteOption は選択肢を削除します (スタッフのみ)
func (h *ContentHandler) DeleteOption(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	optionID, err := webutil.URLParamID(r, "option_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.DeleteOption(r.Context(), optionID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

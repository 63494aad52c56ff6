// internal/handlers/attempt_handler.go
package handlers

import (
	"net/http"
	"strings"

	"lingo_quiz/internal/middleware"
	"lingo_quiz/internal/model"
	"lingo_quiz/internal/service"
	"lingo_quiz/internal/webutil"
)

// AttemptHandler はクイズの開始・提出と進捗の参照を扱います。
type AttemptHandler struct {
	progress   service.ProgressService
	submission service.SubmissionService
}

func NewAttemptHandler(progress service.ProgressService, submission service.SubmissionService) *AttemptHandler {
	return &AttemptHandler{progress: progress, submission: submission}
}

// StartQuiz は受験を開始 (または再受験としてリセット) します
func (h *AttemptHandler) StartQuiz(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	quizID, err := webutil.URLParamID(r, "quiz_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	progress, err := h.progress.StartQuiz(r.Context(), userID, quizID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.NewProgressResponse(progress), logger)
}

// SubmitQuiz は回答の配列 [{question_id, selected_option_id}] を採点します
func (h *AttemptHandler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	quizID, err := webutil.URLParamID(r, "quiz_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var answers []model.SubmittedAnswer
	if err := webutil.DecodeJSONBody(r, &answers); err != nil {
		logger.Warn("Invalid submission body", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}
	if answers == nil {
		// null は配列として扱わない
		webutil.HandleError(w, logger, model.NewAppError("INVALID_REQUEST_BODY", "Request body must be a JSON array of answers.", "", model.ErrInvalidInput))
		return
	}
	if err := webutil.ValidateSlice(answers); err != nil {
		logger.Warn("Submission validation failed", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	result, err := h.submission.SubmitQuiz(r.Context(), userID, quizID, answers)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}

// ListAnswers は直近の提出で記録された自分の回答を返します
func (h *AttemptHandler) ListAnswers(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	quizID, err := webutil.URLParamID(r, "quiz_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	answers, err := h.submission.ListAnswers(r.Context(), userID, quizID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	res := make([]model.AnswerResponse, 0, len(answers))
	for _, a := range answers {
		res = append(res, model.NewAnswerResponse(a))
	}
	webutil.RespondWithJSON(w, http.StatusOK, res, logger)
}

// ListProgress は自分の進捗一覧を返します (?language=es で絞り込み可)
func (h *AttemptHandler) ListProgress(w http.ResponseWriter, r *http.Request) {
	h.listProgress(w, r, false)
}

// ListProgressByLanguage は language パラメータ必須の進捗一覧です
func (h *AttemptHandler) ListProgressByLanguage(w http.ResponseWriter, r *http.Request) {
	h.listProgress(w, r, true)
}

func (h *AttemptHandler) listProgress(w http.ResponseWriter, r *http.Request, languageRequired bool) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	language := strings.TrimSpace(r.URL.Query().Get("language"))
	if languageRequired && language == "" {
		webutil.HandleError(w, logger, model.NewAppError("LANGUAGE_REQUIRED", "Language parameter is required.", "language", model.ErrInvalidInput))
		return
	}

	progresses, err := h.progress.ListProgress(r.Context(), userID, language)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	res := make([]model.ProgressResponse, 0, len(progresses))
	for _, p := range progresses {
		res = append(res, model.NewProgressResponse(p))
	}
	webutil.RespondWithJSON(w, http.StatusOK, res, logger)
}

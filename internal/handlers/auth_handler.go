package handlers

import (
	"net/http"

	"lingo_quiz/internal/middleware"
	"lingo_quiz/internal/model"
	"lingo_quiz/internal/service"
	"lingo_quiz/internal/webutil"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

// Signup は新規ユーザーを登録し、トークンペアを返します
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.SignupRequest
	if err := bindJSON(r, &req); err != nil {
		logger.Warn("Invalid signup request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	res, err := h.service.Signup(r.Context(), &req)
	if err != nil {
		logger.Warn("Signup failed in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, res, logger)
}

// Login はユーザーを認証し、トークンペアを返します
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.LoginRequest
	if err := bindJSON(r, &req); err != nil {
		logger.Warn("Invalid login request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	res, err := h.service.Login(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, res, logger)
}

// Refresh は refresh トークンから access トークンを再発行します
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.RefreshRequest
	if err := bindJSON(r, &req); err != nil {
		logger.Warn("Invalid refresh request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	res, err := h.service.Refresh(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, res, logger)
}

// Me は認証済みユーザー自身の情報を返します
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	user, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, model.NewUserResponse(user), logger)
}

// bindJSON はボディをデコードし、構造体タグで検証します。
func bindJSON(r *http.Request, dst interface{}) error {
	if err := webutil.DecodeJSONBody(r, dst); err != nil {
		return err
	}
	return webutil.ValidateStruct(dst)
}

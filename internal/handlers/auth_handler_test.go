package handlers_test

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"
	"time"

	"lingo_quiz/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// signTestToken はテスト用の秘密鍵でトークンを署名します。
func signTestToken(t *testing.T, userID uint, tokenType string, staff bool) string {
	t.Helper()
	claims := model.JWTCustomClaims{
		TokenType: tokenType,
		IsStaff:   staff,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("handler-test-secret"))
	require.NoError(t, err)
	return signed
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func TestAuthHandler_Signup(t *testing.T) {
	server, svcs := newTestServer(t, testConfig(true))
	svcs.auth.On("Signup", mock.Anything, &model.SignupRequest{
		Email: "learner@example.com", Password: "password123", FullName: "Ana Lopez",
	}).Return(&model.AuthResponse{
		User:   model.UserResponse{ID: 1, Email: "learner@example.com", FullName: "Ana Lopez"},
		Tokens: model.TokenPair{Access: "a", Refresh: "r"},
	}, nil).Once()

	body := sendRequest(t, server, httpRequestDetails{
		Method: http.MethodPost, Path: "/api/v1/users/signup",
		Body: map[string]string{"email": "learner@example.com", "password": "password123", "fullName": "Ana Lopez"},
	}, http.StatusCreated)

	var res model.AuthResponse
	require.NoError(t, json.Unmarshal(body, &res))
	assert.Equal(t, uint(1), res.User.ID)
	assert.Equal(t, "a", res.Tokens.Access)

	body = sendRequest(t, server, httpRequestDetails{
		Method: http.MethodPost, Path: "/api/v1/users/signup",
		Body: map[string]string{"email": "not-an-email", "password": "password123", "fullName": "Ana"},
	}, http.StatusBadRequest)
	detail := verifyErrorCode(t, body, "VALIDATION_ERROR")
	assert.Contains(t, detail.Field, "email")
}

func TestAuthHandler_LoginFailure(t *testing.T) {
	server, svcs := newTestServer(t, testConfig(true))
	svcs.auth.On("Login", mock.Anything, mock.Anything).
		Return(nil, model.NewAppError("AUTHENTICATION_FAILED", "Invalid email or password.", "", model.ErrUnauthorized)).Once()

	body := sendRequest(t, server, httpRequestDetails{
		Method: http.MethodPost, Path: "/api/v1/users/login",
		Body: map[string]string{"email": "learner@example.com", "password": "wrong"},
	}, http.StatusUnauthorized)
	verifyErrorCode(t, body, "AUTHENTICATION_FAILED")
}

func TestAuthHandler_TokenGate(t *testing.T) {
	server, svcs := newTestServer(t, testConfig(true))
	svcs.content.On("ListLanguages", mock.Anything).Return([]*model.Language{}, nil).Once()
	svcs.auth.On("GetUser", mock.Anything, uint(5)).
		Return(&model.User{ID: 5, Email: "five@example.com", FirstName: "Five"}, nil).Once()

	t.Run("異常系: トークンなし", func(t *testing.T) {
		body := sendRequest(t, server, httpRequestDetails{
			Method: http.MethodGet, Path: "/api/v1/languages",
		}, http.StatusUnauthorized)
		verifyErrorCode(t, body, "UNAUTHORIZED")
	})

	t.Run("異常系: 開発用ヘッダーは無視される", func(t *testing.T) {
		body := sendRequest(t, server, httpRequestDetails{
			Method: http.MethodGet, Path: "/api/v1/languages", Headers: userHeaders("5", true),
		}, http.StatusUnauthorized)
		verifyErrorCode(t, body, "UNAUTHORIZED")
	})

	t.Run("正常系: アクセストークン", func(t *testing.T) {
		sendRequest(t, server, httpRequestDetails{
			Method: http.MethodGet, Path: "/api/v1/languages", Headers: bearer(signTestToken(t, 5, model.TokenTypeAccess, false)),
		}, http.StatusOK)
	})

	t.Run("正常系: me", func(t *testing.T) {
		body := sendRequest(t, server, httpRequestDetails{
			Method: http.MethodGet, Path: "/api/v1/users/me", Headers: bearer(signTestToken(t, 5, model.TokenTypeAccess, false)),
		}, http.StatusOK)
		var res model.UserResponse
		require.NoError(t, json.Unmarshal(body, &res))
		assert.Equal(t, "five@example.com", res.Email)
	})

	t.Run("異常系: リフレッシュトークンはアクセスに使えない", func(t *testing.T) {
		body := sendRequest(t, server, httpRequestDetails{
			Method: http.MethodGet, Path: "/api/v1/languages", Headers: bearer(signTestToken(t, 5, model.TokenTypeRefresh, false)),
		}, http.StatusUnauthorized)
		verifyErrorCode(t, body, "INVALID_TOKEN")
	})

	t.Run("異常系: スタッフ以外は問題を編集できない", func(t *testing.T) {
		body := sendRequest(t, server, httpRequestDetails{
			Method: http.MethodPut, Path: "/api/v1/questions/3",
			Body:    map[string]interface{}{"text": "x", "question_type": "speech", "correct_answer": "x"},
			Headers: bearer(signTestToken(t, 5, model.TokenTypeAccess, false)),
		}, http.StatusForbidden)
		verifyErrorCode(t, body, "FORBIDDEN")
	})
}

package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"lingo_quiz/internal/config"
	"lingo_quiz/internal/model"
	"lingo_quiz/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
)

// JWTAuthMiddleware は Authorization ヘッダーの Bearer トークン (access) を検証するミドルウェア
func JWTAuthMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("JWT auth failed: Authorization header missing")
				appErr := model.NewAppError("UNAUTHORIZED", "Authentication credentials were not provided.", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}

			// "Bearer {token}" の形式を検証
			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				logger.Warn("JWT auth failed: Invalid Authorization header format")
				appErr := model.NewAppError("UNAUTHORIZED", "Authorization header must be 'Bearer <token>'.", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}

			claims, err := ParseToken(cfg, headerParts[1], model.TokenTypeAccess)
			if err != nil {
				logger.Warn("JWT auth failed: Invalid token", "error", err)
				appErr := model.NewAppError("INVALID_TOKEN", "Token is invalid or expired.", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}

			userID, err := strconv.ParseUint(claims.Subject, 10, 64)
			if err != nil || userID == 0 {
				logger.Warn("JWT auth failed: Invalid subject (sub) format", "subject", claims.Subject)
				appErr := model.NewAppError("INVALID_TOKEN", "Token does not identify a user.", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}

			ctx := WithUser(r.Context(), uint(userID), claims.IsStaff)
			ctx = WithLogger(ctx, logger.With("user_id", userID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ParseToken は署名・有効期限・トークン種別を検証してクレームを返します。
func ParseToken(cfg *config.Config, tokenString, wantType string) (*model.JWTCustomClaims, error) {
	claims := &model.JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(cfg.JWT.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}
	if claims.TokenType != wantType {
		return nil, errors.New("unexpected token type: " + claims.TokenType)
	}
	return claims, nil
}

// RequireStaff はスタッフ権限を持つユーザーのみ通過させます。認証ミドルウェアの後に置くこと。
func RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if staff, _ := r.Context().Value(model.IsStaffKey).(bool); !staff {
			logger := GetLogger(r.Context())
			logger.Warn("Staff permission required")
			appErr := model.NewAppError("FORBIDDEN", "You do not have permission to perform this action.", "", model.ErrForbidden)
			webutil.HandleError(w, logger, appErr)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WithUser は認証済みユーザーの情報をコンテキストに設定します。
func WithUser(ctx context.Context, userID uint, isStaff bool) context.Context {
	ctx = context.WithValue(ctx, model.UserIDKey, userID)
	return context.WithValue(ctx, model.IsStaffKey, isStaff)
}

func GetUserIDFromContext(ctx context.Context) (uint, error) {
	value, ok := ctx.Value(model.UserIDKey).(uint)
	if !ok || value == 0 {
		// コンテキストにユーザーIDが見つからない（ミドルウェアが正しく動作していない等）
		return 0, model.NewAppError("UNAUTHORIZED", "Authentication credentials were not provided.", "", model.ErrUnauthorized)
	}
	return value, nil
}

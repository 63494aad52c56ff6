// internal/middleware/dev_auth.go
package middleware

import (
	"net/http"
	"strconv"

	"lingo_quiz/internal/model"
	"lingo_quiz/internal/webutil"
)

// DevUserContextMiddleware は開発時用ミドルウェアです (auth.enabled=false のときに使用)。
// X-User-ID ヘッダーからユーザーIDを取り出し、コンテキストに設定します。
// X-User-Staff: true でスタッフ扱いになります。DBでのユーザー存在チェックは行いません。
func DevUserContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		userIDStr := r.Header.Get("X-User-ID")
		if userIDStr == "" {
			logger.Warn("[DEV AUTH] Failed: X-User-ID header missing")
			appErr := model.NewAppError("UNAUTHORIZED", "[DEV] Missing X-User-ID header.", "", model.ErrUnauthorized)
			webutil.HandleError(w, logger, appErr)
			return
		}

		userID, err := strconv.ParseUint(userIDStr, 10, 64)
		if err != nil || userID == 0 {
			logger.Warn("[DEV AUTH] Failed: Invalid X-User-ID format", "value", userIDStr)
			appErr := model.NewAppError("UNAUTHORIZED", "[DEV] Invalid X-User-ID header.", "", model.ErrUnauthorized)
			webutil.HandleError(w, logger, appErr)
			return
		}
		isStaff, _ := strconv.ParseBool(r.Header.Get("X-User-Staff"))

		logger.Debug("[DEV AUTH] User set to context (no validation)", "user_id", userID, "staff", isStaff)
		ctx := WithUser(r.Context(), uint(userID), isStaff)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

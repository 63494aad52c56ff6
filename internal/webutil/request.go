package webutil

import (
	"encoding/json"
	"net/http"
	"strconv"

	"lingo_quiz/internal/model"

	"github.com/go-chi/chi/v5"
)

// DecodeJSONBody はリクエストボディをデコードします
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.NewAppError("INVALID_REQUEST_BODY", "Request body is required.", "", model.ErrInvalidInput)
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return model.NewAppError("INVALID_REQUEST_BODY", "Malformed request body: "+err.Error(), "", model.ErrInvalidInput)
	}
	return nil
}

// URLParamID はパスパラメータを正の整数IDとして取り出します。
func URLParamID(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, model.NewAppError("INVALID_ID", "Invalid "+name+": "+raw, name, model.ErrInvalidInput)
	}
	return uint(id), nil
}

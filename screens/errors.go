package screens

import (
	"errors"
	"net/http"

	"vennespill/scoring"
)

// statusForError はscoringパッケージのエラー分類をHTTPステータスへ
// 変換します。
func statusForError(err error) int {
	switch {
	case errors.Is(err, scoring.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, scoring.ErrPrecondition):
		return http.StatusConflict
	case errors.Is(err, scoring.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

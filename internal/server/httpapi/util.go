package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ivolkov/filecab/internal/common"
	"github.com/ivolkov/filecab/internal/server/services"
)

// tokenHeader carries the opaque session token on authenticated requests.
const tokenHeader = "X-Token"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, common.ErrorUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrorBadRequest), errors.Is(err, common.ErrorConflict):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError maps service errors to HTTP statuses. Internal failures are
// reported with a fixed message so nothing about the backend leaks out.
func writeError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "Internal server error"
	}
	writeJSON(w, status, map[string]string{"error": msg})
}

func parseJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &common.RequestError{Kind: common.ErrorBadRequest, Msg: "invalid json"}
	}
	return nil
}

// pageQuery reads the "page" query parameter. Absent or unparsable values
// disable pagination.
func pageQuery(r *http.Request) int {
	v := r.URL.Query().Get("page")
	if v == "" {
		return services.NoPagination
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return services.NoPagination
	}
	return n
}

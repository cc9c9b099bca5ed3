package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var validate = validator.New()

type errorResponse struct {
	Error string `json:"error"`
}

// Responder carries the logger and environment flag shared by all handlers.
// Internal errors are logged with detail but answered with a generic message
// in production.
type Responder struct {
	Log        *zap.Logger
	Production bool
}

func (rp *Responder) Internal(w http.ResponseWriter, msg string, err error) {
	rp.Log.Error(msg, zap.Error(err))
	detail := "internal server error"
	if !rp.Production && err != nil {
		detail = msg + ": " + err.Error()
	}
	respondError(w, http.StatusInternalServerError, detail)
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorResponse{Error: msg})
}

func decodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// nowISO is the timestamp format stored on book records and comments.
func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// today is the UTC calendar day used as the view/read dedup key.
func today() string {
	return time.Now().UTC().Format("2006-01-02")
}

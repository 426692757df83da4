package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"transportreports/db"
	"transportreports/ewaybill"
	"transportreports/report"
	"transportreports/repository"
	"transportreports/utils"
)

// ApiResponse is the envelope every JSON reply uses.
type ApiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func writeJSON(w http.ResponseWriter, status int, resp ApiResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, ApiResponse{Success: true, Data: data})
}

func writeFail(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ApiResponse{Success: false, Message: msg})
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	var lrErr *report.InvalidLRError
	var vErr validator.ValidationErrors
	switch {
	case errors.As(err, &lrErr), errors.Is(err, ewaybill.ErrNoEwayBills):
		return http.StatusUnprocessableEntity
	case errors.As(err, &vErr), errors.Is(err, report.ErrUnknownKind), errors.Is(err, utils.ErrNegativeAmount):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// writeError replies with the status for err. Server errors are logged and
// their detail is not sent to the client.
func writeError(w http.ResponseWriter, logger zerolog.Logger, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		writeFail(w, status, "internal server error")
		return
	}
	writeFail(w, status, err.Error())
}

// Pinger is satisfied by the database connections.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	DB     Pinger // nil skips the database check
	Logger zerolog.Logger
}

// Health answers readiness checks: 503 when the database does not answer.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if h.DB != nil {
		ctx, cancel := context.WithTimeout(r.Context(), db.PingTimeout)
		defer cancel()
		if err := h.DB.Ping(ctx); err != nil {
			h.Logger.Warn().Err(err).Msg("health check: database unreachable")
			writeFail(w, http.StatusServiceUnavailable, "database unreachable")
			return
		}
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "ok"})
}

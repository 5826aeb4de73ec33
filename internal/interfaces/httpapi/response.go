package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/livescore/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

const msgInternalError = "Internal server error"

type errorEnvelope struct {
	Error string `json:"error"`
}

type dataEnvelope struct {
	Data any `json:"data"`
}

type successEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type datedListEnvelope struct {
	Success      bool   `json:"success"`
	Date         string `json:"date"`
	TotalLeagues int    `json:"totalLeagues"`
	Data         any    `json:"data"`
}

type archiveEnvelope struct {
	Success bool   `json:"success"`
	Date    string `json:"date"`
	Total   int    `json:"total"`
	Data    any    `json:"data"`
}

// writeJSON encodes into a pooled buffer first so an encoding failure can still
// produce a clean 500 instead of a truncated body.
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	_, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + msgInternalError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.B)
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	status := mapError(err)
	writeJSON(ctx, w, status, errorEnvelope{Error: errorMessage(err, status)})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	writeJSON(ctx, w, http.StatusInternalServerError, errorEnvelope{Error: msgInternalError})
}

func mapError(err error) int {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage only exposes operation messages; anything else is an internal detail.
func errorMessage(err error, status int) string {
	var opErr *usecase.OperationError
	if errors.As(err, &opErr) && opErr.Message != "" {
		return opErr.Message
	}
	if status == http.StatusNotFound {
		return http.StatusText(http.StatusNotFound)
	}
	return msgInternalError
}

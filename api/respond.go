package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
)

func (a *API) writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		a.getLoggerOrBaseLogger(ctx).Error("Failed to marshal response", slog.String("error", err.Error()))
		status = http.StatusInternalServerError
		jsonBody = []byte(`{"code": "InternalError", "message": "failed to encode response"}`)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(jsonBody)
}

// requestErrorHandler answers bodies that passed validation but could not be decoded.
func (a *API) requestErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	a.writeJSON(r.Context(), w, http.StatusBadRequest, Error{
		Code:    InputValidationError,
		Message: err.Error(),
	})
}

func (a *API) responseErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	a.getLoggerOrBaseLogger(r.Context()).Error("Failed to write response", slog.String("error", err.Error()))

	a.writeJSON(r.Context(), w, http.StatusInternalServerError, Error{
		Code:    InternalError,
		Message: "Internal server error",
	})
}

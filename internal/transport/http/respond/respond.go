package respond

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"catalogcore/internal/model"
	"catalogcore/internal/platform/logger"
)

type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func JSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error(ctx, "encode response", logger.ErrorF(err))
	}
}

// Error maps sentinel errors onto status codes and forwards the message.
func Error(ctx context.Context, w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, model.ErrNotFound):
		status = http.StatusNotFound
	}

	JSON(ctx, w, status, errorBody{Code: status, Message: err.Error()})
}

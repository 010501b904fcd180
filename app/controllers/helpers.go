package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"estatehub/app/errs"
	"estatehub/app/repositories"
	"estatehub/app/services"

	"github.com/rs/zerolog"
)

// DefaultRequestTimeout bounds store calls when no timeout is configured.
const DefaultRequestTimeout = 5 * time.Second

func requestContext(r *http.Request, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return context.WithTimeout(r.Context(), timeout)
}

func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func sendMessage(w http.ResponseWriter, status int, message string) {
	sendJSON(w, status, map[string]string{"message": message})
}

// sendError maps a service error onto its response. Anything unexpected is
// logged and answered with a 500 carrying fallback.
func sendError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var httpErr *errs.HTTPError
	switch {
	case errors.Is(err, services.ErrMissingData):
		errs.NewBadRequestError("Missing required data", nil, nil).Write(w)
	case errors.Is(err, services.ErrInvalidInput):
		errs.ValidationError(err).Write(w)
	case errors.Is(err, repositories.ErrNotFound):
		errs.NewNotFoundError("Post not found").Write(w)
	case errors.Is(err, services.ErrNotOwner):
		errs.NewForbiddenError("Not Authorized!").Write(w)
	case errors.As(err, &httpErr):
		httpErr.Write(w)
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Msg(fallback)
		errs.NewInternalServerError(fallback).Write(w)
	}
}

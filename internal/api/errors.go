package api

import (
	"errors"
	"log/slog"
	"net/http"

	errorvalues "github.com/limbo/planner/internal/error_values"
	"github.com/limbo/planner/pkg/httputil"
)

// writeServiceError maps a service error to its response and logs it.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	var vErr *errorvalues.ValidationError
	switch {
	case errors.As(err, &vErr):
		logger.Info(op+" error: validation", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "validation error", vErr)
	case errors.Is(err, errorvalues.ErrUnauthorized):
		logger.Info(op + " error: unauthorized")
		writeUnauthorized(w)
	case errors.Is(err, errorvalues.ErrNotFound):
		logger.Info(op + " error: not found")
		writeNotFound(w)
	case errors.Is(err, errorvalues.ErrUpdateNotSupported):
		logger.Info(op + " error: update not supported")
		httputil.WriteErrorResponse(w, http.StatusMethodNotAllowed, "method not allowed", nil)
	case errors.Is(err, errorvalues.ErrUserExists):
		logger.Info(op + " error: existed user")
		httputil.WriteErrorResponse(w, http.StatusConflict, "user with such name already exists", nil)
	case errors.Is(err, errorvalues.ErrWrongCredentials):
		logger.Info(op + " error: wrong credentials")
		httputil.WriteErrorResponse(w, http.StatusForbidden, "wrong password", nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
	}
}

func writeNotFound(w http.ResponseWriter) {
	httputil.WriteErrorResponse(w, http.StatusNotFound, "not found", nil)
}

func writeBadBody(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	logger.Info(op+" error: invalid body", slog.String("error", err.Error()))
	httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", err)
}

func (s *Server) NotFound(w http.ResponseWriter, r *http.Request) {
	writeNotFound(w)
}

func (s *Server) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	httputil.WriteErrorResponse(w, http.StatusMethodNotAllowed, "method not allowed", nil)
}

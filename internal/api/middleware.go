package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/planner/internal/error_values"
	"github.com/limbo/planner/pkg/httputil"
	jwtservice "github.com/limbo/planner/pkg/jwt_service"
)

type ctxKey string

const (
	requestIDKContextKey ctxKey = "Request-ID"
	loggerContextKey     ctxKey = "Logger"
	uidContextKey        ctxKey = "User-ID"
	claimsContextKey     ctxKey = "Claims"

	sessionCookieName = "session"
	requestIDHeader   = "X-Request-ID"
)

func (s *Server) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.NewString()
		w.Header().Set(requestIDHeader, reqID)
		ctx := context.WithValue(r.Context(), requestIDKContextKey, reqID)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) SettingUpLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := slog.Default()
		reqID, ok := r.Context().Value(requestIDKContextKey).(string)
		if ok && reqID != "" {
			logger = logger.With(slog.String("request_id", reqID))
		}
		logger = logger.With(slog.String("from", r.RemoteAddr), slog.String("method", r.Method), slog.String("path", r.URL.Path))
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) LoggerExtensionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		if uid, ok := r.Context().Value(uidContextKey).(int64); ok {
			logger = logger.With(slog.String("uid", strconv.FormatInt(uid, 10)))
		}
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

// AuthMiddleware resolves the session identity. Every reason a request is
// not authenticated yields the same 401 response.
func (s *Server) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		tokenString, err := GetToken(r)
		if err != nil {
			logger.Info("auth failed: no token")
			writeUnauthorized(w)
			return
		}
		claims, err := s.jwtService.ParseToken(tokenString)
		if err != nil {
			logger.Info("auth failed: invalid token", slog.String("error", err.Error()))
			writeUnauthorized(w)
			return
		}
		revoked, err := s.revoker.IsRevoked(r.Context(), claims.ID)
		if err != nil {
			logger.Error("auth failed: checking revocation error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
			return
		}
		if revoked {
			logger.Info("auth failed: revoked token")
			writeUnauthorized(w)
			return
		}
		// Assuring if user still exists
		_, err = s.userService.GetByID(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, errorvalues.ErrUserNotFound) {
				logger.Info("auth failed: user doesn't exist")
				writeUnauthorized(w)
				return
			}
			logger.Error("error while searching for user", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
			return
		}
		ctx := context.WithValue(r.Context(), uidContextKey, claims.UserID)
		ctx = context.WithValue(ctx, claimsContextKey, claims)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func writeUnauthorized(w http.ResponseWriter) {
	httputil.WriteErrorResponse(w, http.StatusUnauthorized, "unauthorized", nil)
}

func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerContextKey).(*slog.Logger)
	if ok {
		return logger
	}
	return slog.Default()
}

// GetToken takes the bearer token from the Authorization header, falling
// back to the session cookie.
func GetToken(r *http.Request) (string, error) {
	if header := r.Header.Get("Authorization"); header != "" {
		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			return "", errorvalues.ErrInvalidToken
		}
		return parts[1], nil
	}
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", errorvalues.ErrInvalidToken
	}
	return cookie.Value, nil
}

// GetUIDFromContext returns 0 when the request carries no session identity.
func GetUIDFromContext(r *http.Request) int64 {
	uid, _ := r.Context().Value(uidContextKey).(int64)
	return uid
}

func getClaimsFromContext(r *http.Request) (*jwtservice.Claims, bool) {
	claims, ok := r.Context().Value(claimsContextKey).(*jwtservice.Claims)
	return claims, ok
}

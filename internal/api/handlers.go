package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	errorvalues "github.com/limbo/planner/internal/error_values"
	"github.com/limbo/planner/internal/letters"
	"github.com/limbo/planner/internal/service"
	"github.com/limbo/planner/pkg/entity"
	"github.com/limbo/planner/pkg/httputil"
)

type LoginRequest struct {
	Name     string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success  bool   `json:"success"`
	Token    string `json:"token"`
	Username string `json:"username"`
	Theme    string `json:"theme"`
}

type DeleteAccountRequest struct {
	Password string `json:"password"`
}

type MeResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Theme    string `json:"theme"`
}

type DailyLetterResponse struct {
	entity.DailyLetter
	TotalDays int `json:"total_days"`
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.RegisterRequest
	if err := httputil.DecodeJSON(r.Body, &req); err != nil {
		writeBadBody(w, logger, "registering", err)
		return
	}
	user, err := s.userService.Register(r.Context(), &req)
	if err != nil {
		writeServiceError(w, logger, "registering", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, httputil.SuccessResponse{Success: true, ID: user.ID})
	logger.Info("successful registration", "uid", user.ID)
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	if err := httputil.DecodeJSON(r.Body, &req); err != nil {
		writeBadBody(w, logger, "login", err)
		return
	}
	user, err := s.userService.Login(r.Context(), req.Name, req.Password)
	if err != nil {
		if errors.Is(err, errorvalues.ErrWrongCredentials) {
			logger.Info("login error: wrong credentials")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "invalid username or password", nil)
			return
		}
		writeServiceError(w, logger, "login", err)
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.jwtService.TTL().Seconds()),
		HttpOnly: true,
		Secure:   s.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	httputil.WriteJSONResponse(w, http.StatusOK, LoginResponse{
		Success:  true,
		Token:    token,
		Username: user.Name,
		Theme:    user.Theme,
	})
	logger.Info("successful login", "uid", user.ID)
}

func (s *Server) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

// revokeSession revokes the token of the request for the rest of its lifetime.
func (s *Server) revokeSession(r *http.Request) error {
	claims, ok := getClaimsFromContext(r)
	if !ok {
		return errorvalues.ErrUnauthorized
	}
	var ttl time.Duration
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	return s.revoker.Revoke(r.Context(), claims.ID, ttl)
}

func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	if err := s.revokeSession(r); err != nil {
		writeServiceError(w, logger, "logout", err)
		return
	}
	s.clearSessionCookie(w)
	httputil.WriteJSONResponse(w, http.StatusOK, httputil.SuccessResponse{Success: true})
	logger.Info("successful logout")
}

func (s *Server) Me(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, err := s.userService.GetByID(r.Context(), GetUIDFromContext(r))
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			err = errorvalues.ErrUnauthorized
		}
		writeServiceError(w, logger, "get me", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, MeResponse{
		ID:       user.ID,
		Username: user.Name,
		Theme:    user.Theme,
	})
}

func (s *Server) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req DeleteAccountRequest
	if err := httputil.DecodeJSON(r.Body, &req); err != nil {
		writeBadBody(w, logger, "account deletion", err)
		return
	}
	if err := s.userService.DeleteAccount(r.Context(), GetUIDFromContext(r), req.Password); err != nil {
		writeServiceError(w, logger, "account deletion", err)
		return
	}
	if err := s.revokeSession(r); err != nil {
		// The account is already gone; the token no longer resolves to a user.
		logger.Error("account deletion: revoking token error", slog.String("error", err.Error()))
	}
	s.clearSessionCookie(w)
	httputil.WriteJSONResponse(w, http.StatusOK, httputil.SuccessResponse{Success: true})
	logger.Info("account deleted")
}

func (s *Server) UpdateTheme(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.ThemeRequest
	if err := httputil.DecodeJSON(r.Body, &req); err != nil {
		writeBadBody(w, logger, "update theme", err)
		return
	}
	if err := s.userService.UpdateTheme(r.Context(), GetUIDFromContext(r), &req); err != nil {
		writeServiceError(w, logger, "update theme", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, httputil.SuccessResponse{Success: true})
	logger.Info("theme updated", slog.String("theme", req.Theme))
}

func (s *Server) DailyLetter(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, DailyLetterResponse{
		DailyLetter: s.dailyService.DailyLetter(r.Context()),
		TotalDays:   letters.CycleLength,
	})
}

func (s *Server) Stats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	stats, err := s.dailyService.Stats(r.Context(), GetUIDFromContext(r))
	if err != nil {
		writeServiceError(w, logger, "get stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
}

func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	dash, err := s.dailyService.Dashboard(r.Context(), GetUIDFromContext(r))
	if err != nil {
		writeServiceError(w, logger, "get dashboard", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, dash)
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

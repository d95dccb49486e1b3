package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/limbo/planner/internal/service"
	"github.com/limbo/planner/pkg/httputil"
)

// resourceHandlers serves the CRUD routes of one entity kind.
type resourceHandlers[T, C, U any] struct {
	name string
	svc  service.ResourceServiceI[T, C, U]
}

func newResourceHandlers[T, C, U any](name string, svc service.ResourceServiceI[T, C, U]) *resourceHandlers[T, C, U] {
	return &resourceHandlers[T, C, U]{name: name, svc: svc}
}

type crudHandlers interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

func mountResource(r chi.Router, pattern string, h crudHandlers, updatable bool) {
	r.Route(pattern, func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		if updatable {
			r.Put("/{id}", h.Update)
		}
		r.Delete("/{id}", h.Delete)
	})
}

func (h *resourceHandlers[T, C, U]) List(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	items, err := h.svc.List(r.Context(), GetUIDFromContext(r))
	if err != nil {
		writeServiceError(w, logger, "list "+h.name, err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, items)
	logger.Info(h.name + " list provided")
}

func (h *resourceHandlers[T, C, U]) Create(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req C
	if err := httputil.DecodeJSON(r.Body, &req); err != nil {
		writeBadBody(w, logger, "create "+h.name, err)
		return
	}
	id, err := h.svc.Create(r.Context(), GetUIDFromContext(r), &req)
	if err != nil {
		writeServiceError(w, logger, "create "+h.name, err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, httputil.SuccessResponse{Success: true, ID: id})
	logger.Info(h.name+" created", "id", id)
}

func (h *resourceHandlers[T, C, U]) Update(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := pathID(r)
	if !ok {
		writeNotFound(w)
		return
	}
	var req U
	if err := httputil.DecodeJSON(r.Body, &req); err != nil {
		writeBadBody(w, logger, "update "+h.name, err)
		return
	}
	if err := h.svc.Update(r.Context(), GetUIDFromContext(r), id, &req); err != nil {
		writeServiceError(w, logger, "update "+h.name, err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, httputil.SuccessResponse{Success: true})
	logger.Info(h.name+" updated", "id", id)
}

func (h *resourceHandlers[T, C, U]) Delete(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := pathID(r)
	if !ok {
		writeNotFound(w)
		return
	}
	if err := h.svc.Delete(r.Context(), GetUIDFromContext(r), id); err != nil {
		writeServiceError(w, logger, "delete "+h.name, err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, httputil.SuccessResponse{Success: true})
	logger.Info(h.name+" deleted", "id", id)
}

// pathID reads the {id} segment. Malformed ids name no row, so callers
// answer them like missing ones.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

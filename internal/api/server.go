package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/limbo/planner/internal/service"
	"github.com/limbo/planner/internal/session"
	"github.com/limbo/planner/pkg/entity"
)

type Server struct {
	mx           *chi.Mux
	userService  service.UserServiceI
	dailyService service.DailyServiceI
	jwtService   JWTServiceI
	revoker      session.Revoker
	secureCookie bool

	tasks     service.ResourceServiceI[entity.Task, service.CreateTaskRequest, service.UpdateTaskRequest]
	goals     service.ResourceServiceI[entity.Goal, service.CreateGoalRequest, service.UpdateGoalRequest]
	events    service.ResourceServiceI[entity.Event, service.CreateEventRequest, service.NoUpdate]
	reminders service.ResourceServiceI[entity.Reminder, service.CreateReminderRequest, service.UpdateReminderRequest]
	gallery   service.ResourceServiceI[entity.GalleryItem, service.CreateGalleryItemRequest, service.NoUpdate]
}

type ServicesList struct {
	UserService      service.UserServiceI
	DailyService     service.DailyServiceI
	JwtService       JWTServiceI
	Revoker          session.Revoker
	TasksService     service.ResourceServiceI[entity.Task, service.CreateTaskRequest, service.UpdateTaskRequest]
	GoalsService     service.ResourceServiceI[entity.Goal, service.CreateGoalRequest, service.UpdateGoalRequest]
	EventsService    service.ResourceServiceI[entity.Event, service.CreateEventRequest, service.NoUpdate]
	RemindersService service.ResourceServiceI[entity.Reminder, service.CreateReminderRequest, service.UpdateReminderRequest]
	GalleryService   service.ResourceServiceI[entity.GalleryItem, service.CreateGalleryItemRequest, service.NoUpdate]
	// Marks the session cookie Secure; enable behind TLS
	SecureCookie bool
}

func New(servicesOptions *ServicesList) *Server {
	revoker := servicesOptions.Revoker
	if revoker == nil {
		revoker = session.NewMemoryRevoker()
	}
	s := &Server{
		mx:           chi.NewMux(),
		userService:  servicesOptions.UserService,
		dailyService: servicesOptions.DailyService,
		jwtService:   servicesOptions.JwtService,
		revoker:      revoker,
		secureCookie: servicesOptions.SecureCookie,
		tasks:        servicesOptions.TasksService,
		goals:        servicesOptions.GoalsService,
		events:       servicesOptions.EventsService,
		reminders:    servicesOptions.RemindersService,
		gallery:      servicesOptions.GalleryService,
	}
	s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server started", slog.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

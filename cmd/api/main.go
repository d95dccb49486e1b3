package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/limbo/planner/internal/api"
	"github.com/limbo/planner/internal/letters"
	"github.com/limbo/planner/internal/repository"
	"github.com/limbo/planner/internal/repository/sqlitestore"
	"github.com/limbo/planner/internal/service"
	"github.com/limbo/planner/internal/session"
	"github.com/limbo/planner/pkg/cleanup"
	"github.com/limbo/planner/pkg/config"
	jwtservice "github.com/limbo/planner/pkg/jwt_service"
	"github.com/limbo/planner/pkg/logging"
)

func init() {
	service.InitValidator()
}

func main() {
	defer cleanup.CleanUp()
	if err := run(); err != nil {
		slog.Error("planner stopped", slog.String("error", err.Error()))
		cleanup.CleanUp()
		os.Exit(1)
	}
}

func run() error {
	cfg := config.New()
	logger, err := logging.New(logging.Config{
		Level:  cfg.GetString("LOG_LEVEL"),
		Format: cfg.GetString("LOG_FORMAT"),
		File:   cfg.GetString("LOG_FILE"),
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A broken letters table must stop the process before it serves anything.
	table, err := letters.Load()
	if err != nil {
		return fmt.Errorf("load letters: %w", err)
	}
	cal, err := calendarFromConfig(cfg)
	if err != nil {
		return err
	}
	secret, err := cfg.MustString("JWT_SECRET")
	if err != nil {
		return err
	}
	ttl, err := cfg.GetDuration("TOKEN_TTL", jwtservice.DefaultTokenTTL)
	if err != nil {
		return err
	}

	repos, err := openStore(cfg)
	if err != nil {
		return err
	}
	revoker, err := revokerFromConfig(ctx, cfg)
	if err != nil {
		return err
	}

	userService := service.NewUserService(repos.Users)
	if err = seedUser(ctx, cfg, userService); err != nil {
		return err
	}

	serv := api.New(&api.ServicesList{
		UserService:      userService,
		DailyService:     service.NewDailyService(repos, table, cal),
		JwtService:       jwtservice.New(secret, ttl),
		Revoker:          revoker,
		TasksService:     service.NewTasksService(repos.Tasks),
		GoalsService:     service.NewGoalsService(repos.Goals),
		EventsService:    service.NewEventsService(repos.Events),
		RemindersService: service.NewRemindersService(repos.Reminders),
		GalleryService:   service.NewGalleryService(repos.Gallery),
		SecureCookie:     cfg.GetString("COOKIE_SECURE") == "true",
	})
	return serv.Run(ctx, cfg.GetStringOr("API_ADDRESS", ":8080"))
}

func calendarFromConfig(cfg *config.Config) (service.Calendar, error) {
	letterAnchor, err := cfg.GetDate("LETTER_ANCHOR", time.Date(2024, time.March, 22, 0, 0, 0, 0, time.UTC))
	if err != nil {
		return service.Calendar{}, err
	}
	relationshipAnchor, err := cfg.GetDate("RELATIONSHIP_ANCHOR", time.Date(2025, time.September, 7, 0, 0, 0, 0, time.UTC))
	if err != nil {
		return service.Calendar{}, err
	}
	loc, err := cfg.GetLocation("TIMEZONE")
	if err != nil {
		return service.Calendar{}, err
	}
	return service.Calendar{
		LetterAnchor:       letterAnchor,
		RelationshipAnchor: relationshipAnchor,
		Location:           loc,
		Now:                time.Now,
	}, nil
}

func openStore(cfg *config.Config) (service.Repositories, error) {
	switch driver := cfg.GetStringOr("STORE_DRIVER", "sqlite"); driver {
	case "sqlite":
		db, err := sqlitestore.Open(cfg.GetStringOr("SQLITE_PATH", "planner.db"))
		if err != nil {
			return service.Repositories{}, err
		}
		slog.Info("using sqlite store")
		return service.Repositories{
			Users:     sqlitestore.NewUsersRepo(db),
			Tasks:     sqlitestore.NewTasksRepo(db),
			Goals:     sqlitestore.NewGoalsRepo(db),
			Events:    sqlitestore.NewEventsRepo(db),
			Reminders: sqlitestore.NewRemindersRepo(db),
			Gallery:   sqlitestore.NewGalleryRepo(db),
		}, nil
	case "postgres":
		dbCfg := &repository.PGCfg{
			Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
			Username: cfg.GetString("POSTGRES_USER"),
			Password: cfg.GetString("POSTGRES_PASSWORD"),
			DB:       cfg.GetString("POSTGRES_DB"),
		}
		if err := repository.Migrate(dbCfg, cfg.GetStringOr("MIGRATIONS_DIR", "./migrations")); err != nil {
			return service.Repositories{}, err
		}
		pool := repository.NewPool(dbCfg)
		slog.Info("using postgres store")
		return service.Repositories{
			Users:     repository.NewUsersRepoWithConn(pool),
			Tasks:     repository.NewTasksRepo(pool),
			Goals:     repository.NewGoalsRepo(pool),
			Events:    repository.NewEventsRepo(pool),
			Reminders: repository.NewRemindersRepo(pool),
			Gallery:   repository.NewGalleryRepo(pool),
		}, nil
	default:
		return service.Repositories{}, fmt.Errorf("unknown STORE_DRIVER %q", driver)
	}
}

func revokerFromConfig(ctx context.Context, cfg *config.Config) (session.Revoker, error) {
	addr := cfg.GetString("REDIS_ADDR")
	if addr == "" {
		slog.Warn("REDIS_ADDR is not set, logged out tokens are kept in memory")
		return session.NewMemoryRevoker(), nil
	}
	db, err := cfg.GetInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}
	client, err := session.NewRedisClient(ctx, session.RedisCfg{
		Addr:     addr,
		Password: cfg.GetString("REDIS_PASSWORD"),
		DB:       db,
	})
	if err != nil {
		return nil, err
	}
	return session.NewRedisRevoker(client), nil
}

func seedUser(ctx context.Context, cfg *config.Config, us *service.UserService) error {
	name := cfg.GetStringOr("SEED_USERNAME", "princesa")
	password := cfg.GetString("SEED_PASSWORD")
	if password == "" {
		slog.Info("SEED_PASSWORD is not set, skipping default user")
		return nil
	}
	created, err := us.Seed(ctx, name, password)
	if err != nil {
		return fmt.Errorf("seed user: %w", err)
	}
	if created {
		slog.Info("default user created", slog.String("username", name))
	}
	return nil
}

package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/limbo/planner/internal/error_values"
	"github.com/limbo/planner/internal/letters"
	"github.com/limbo/planner/internal/repository/sqlitestore"
	"github.com/limbo/planner/internal/service"
	"github.com/limbo/planner/pkg/entity"
)

type planner struct {
	users     *service.UserService
	tasks     *service.TasksService
	goals     *service.GoalsService
	events    *service.EventsService
	reminders *service.RemindersService
	gallery   *service.GalleryService
	daily     *service.DailyService
	repos     service.Repositories
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func newPlanner(t *testing.T, now string) *planner {
	t.Helper()
	db, err := sqlitestore.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	repos := service.Repositories{
		Users:     sqlitestore.NewUsersRepo(db),
		Tasks:     sqlitestore.NewTasksRepo(db),
		Goals:     sqlitestore.NewGoalsRepo(db),
		Events:    sqlitestore.NewEventsRepo(db),
		Reminders: sqlitestore.NewRemindersRepo(db),
		Gallery:   sqlitestore.NewGalleryRepo(db),
	}
	table, err := letters.Load()
	require.NoError(t, err)
	clock := date(now).Add(15 * time.Hour)
	return &planner{
		users:     service.NewUserService(repos.Users),
		tasks:     service.NewTasksService(repos.Tasks),
		goals:     service.NewGoalsService(repos.Goals),
		events:    service.NewEventsService(repos.Events),
		reminders: service.NewRemindersService(repos.Reminders),
		gallery:   service.NewGalleryService(repos.Gallery),
		daily: service.NewDailyService(repos, table, service.Calendar{
			LetterAnchor:       date("2024-03-22"),
			RelationshipAnchor: date("2025-09-07"),
			Location:           time.UTC,
			Now:                func() time.Time { return clock },
		}),
		repos: repos,
	}
}

func (p *planner) register(t *testing.T, name string) *entity.User {
	t.Helper()
	user, err := p.users.Register(context.Background(), &service.RegisterRequest{Name: name, Password: password})
	require.NoError(t, err)
	return user
}

func TestOwnershipScoping(t *testing.T) {
	p := newPlanner(t, "2025-10-01")
	ctx := context.Background()
	alice := p.register(t, "alice")
	bob := p.register(t, "bob")

	id, err := p.tasks.Create(ctx, alice.ID, &service.CreateTaskRequest{Text: "X"})
	require.NoError(t, err)

	t.Run("created row is listed for its owner only", func(t *testing.T) {
		own, err := p.tasks.List(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, own, 1)
		assert.Equal(t, id, own[0].ID)

		foreign, err := p.tasks.List(ctx, bob.ID)
		require.NoError(t, err)
		assert.Empty(t, foreign)
	})
	t.Run("foreign id behaves like a missing id", func(t *testing.T) {
		req := &service.UpdateTaskRequest{Completed: ptr(true)}
		foreignUpdate := p.tasks.Update(ctx, bob.ID, id, req)
		missingUpdate := p.tasks.Update(ctx, bob.ID, id+1000, req)
		assert.ErrorIs(t, foreignUpdate, errorvalues.ErrNotFound)
		assert.Equal(t, missingUpdate, foreignUpdate)

		foreignDelete := p.tasks.Delete(ctx, bob.ID, id)
		missingDelete := p.tasks.Delete(ctx, bob.ID, id+1000)
		assert.ErrorIs(t, foreignDelete, errorvalues.ErrNotFound)
		assert.Equal(t, missingDelete, foreignDelete)
	})
	t.Run("partial update keeps category", func(t *testing.T) {
		require.NoError(t, p.tasks.Update(ctx, alice.ID, id, &service.UpdateTaskRequest{Completed: ptr(true)}))
		own, err := p.tasks.List(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, own, 1)
		assert.True(t, own[0].Completed)
		assert.Equal(t, "X", own[0].Text)
		assert.Equal(t, "pessoal", own[0].Category)
	})
	t.Run("events cannot be updated", func(t *testing.T) {
		eid, err := p.events.Create(ctx, alice.ID, &service.CreateEventRequest{Title: "dinner", Date: "2025-10-10", Time: "20:00"})
		require.NoError(t, err)
		assert.ErrorIs(t, p.events.Update(ctx, alice.ID, eid, &service.NoUpdate{}), errorvalues.ErrUpdateNotSupported)
	})
}

func TestDeleteAccountCascades(t *testing.T) {
	p := newPlanner(t, "2025-10-01")
	ctx := context.Background()
	alice := p.register(t, "alice")
	bob := p.register(t, "bob")

	for i := 0; i < 3; i++ {
		_, err := p.tasks.Create(ctx, alice.ID, &service.CreateTaskRequest{Text: fmt.Sprintf("task %d", i)})
		require.NoError(t, err)
	}
	for i := 0; i < 2; i++ {
		_, err := p.goals.Create(ctx, alice.ID, &service.CreateGoalRequest{Text: fmt.Sprintf("goal %d", i)})
		require.NoError(t, err)
	}
	_, err := p.reminders.Create(ctx, alice.ID, &service.CreateReminderRequest{Title: "water", Time: "08:00"})
	require.NoError(t, err)
	_, err = p.gallery.Create(ctx, bob.ID, &service.CreateGalleryItemRequest{Caption: "us", Category: "viagem", ImageData: "data:image/png;base64,AA=="})
	require.NoError(t, err)

	require.NoError(t, p.users.DeleteAccount(ctx, alice.ID, password))

	counts := []func() (int, error){
		func() (int, error) { return p.repos.Tasks.CountByUser(ctx, alice.ID) },
		func() (int, error) { return p.repos.Goals.CountByUser(ctx, alice.ID) },
		func() (int, error) { return p.repos.Events.CountByUser(ctx, alice.ID) },
		func() (int, error) { return p.repos.Reminders.CountByUser(ctx, alice.ID) },
		func() (int, error) { return p.repos.Gallery.CountByUser(ctx, alice.ID) },
	}
	for _, count := range counts {
		n, err := count()
		require.NoError(t, err)
		assert.Zero(t, n)
	}
	_, err = p.users.GetByID(ctx, alice.ID)
	assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)

	left, err := p.gallery.List(ctx, bob.ID)
	require.NoError(t, err)
	assert.Len(t, left, 1)
}

func TestStatsAndDashboard(t *testing.T) {
	p := newPlanner(t, "2025-09-06")
	ctx := context.Background()
	alice := p.register(t, "alice")

	_, err := p.tasks.Create(ctx, alice.ID, &service.CreateTaskRequest{Text: "a"})
	require.NoError(t, err)
	_, err = p.goals.Create(ctx, alice.ID, &service.CreateGoalRequest{Text: "b", Progress: 30})
	require.NoError(t, err)

	stats, err := p.daily.Stats(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, -1, stats.DaysTogether)
	assert.Equal(t, "2025-09-07", stats.NextAnniversary)
	assert.Equal(t, 1, stats.TasksCount)
	assert.Equal(t, 1, stats.GoalsCount)
	assert.Zero(t, stats.GalleryCount)

	_, err = p.daily.Stats(ctx, 0)
	assert.ErrorIs(t, err, errorvalues.ErrUnauthorized)

	dash, err := p.daily.Dashboard(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", dash.Username)
	assert.Equal(t, entity.DefaultTheme, dash.Theme)
	assert.Len(t, dash.Tasks, 1)
	assert.Len(t, dash.Goals, 1)
	assert.NotNil(t, dash.Events)
	assert.Empty(t, dash.Events)
	assert.Equal(t, dash.DailyLetter.Day, dash.CurrentDay)
	assert.Equal(t, -1, dash.DaysTogether)

	_, err = p.daily.Dashboard(ctx, alice.ID+100)
	assert.ErrorIs(t, err, errorvalues.ErrUnauthorized)
}

func TestDailyLetterRotation(t *testing.T) {
	cases := []struct {
		today string
		day   int
	}{
		{"2024-03-22", 1},
		{"2024-05-20", 60},
		{"2024-05-21", 1},
		{"2024-03-21", 60},
	}
	for _, c := range cases {
		t.Run(c.today, func(t *testing.T) {
			p := newPlanner(t, c.today)
			letter := p.daily.DailyLetter(context.Background())
			assert.Equal(t, c.day, letter.Day)
			assert.NotEmpty(t, letter.Title)
		})
	}
}

func TestAnniversaryRollsOver(t *testing.T) {
	p := newPlanner(t, "2025-09-08")
	alice := p.register(t, "alice")
	stats, err := p.daily.Stats(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.DaysTogether)
	assert.Equal(t, "2026-09-07", stats.NextAnniversary)
}

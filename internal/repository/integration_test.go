package repository_test

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	_ "github.com/lib/pq"
	errorvalues "github.com/limbo/planner/internal/error_values"
	"github.com/limbo/planner/internal/repository"
	"github.com/limbo/planner/pkg/entity"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type testPGConfig struct {
	connStr string
}

func (c *testPGConfig) ConnString() string {
	return c.connStr
}

func setupTestDB(t *testing.T) *testPGConfig {
	if testing.Short() {
		t.Skip("skipping container based test in short mode")
	}
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("planner"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(context.Background(), "sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	if err = goose.Up(conn, "../../migrations"); err != nil {
		t.Fatal(err)
	}
	return &testPGConfig{connStr: connStr}
}

func TestStoreIntegration(t *testing.T) {
	cfg := setupTestDB(t)
	pool := repository.NewPool(cfg)
	users := repository.NewUsersRepoWithConn(pool)
	tasks := repository.NewTasksRepo(pool)
	goals := repository.NewGoalsRepo(pool)
	events := repository.NewEventsRepo(pool)
	reminders := repository.NewRemindersRepo(pool)
	ctx := context.Background()

	alice := entity.User{Name: "alice", PasswordHash: "h", Theme: entity.DefaultTheme}
	bob := entity.User{Name: "bob", PasswordHash: "h", Theme: entity.DefaultTheme}
	_, err := users.Create(ctx, &alice)
	require.NoError(t, err)
	_, err = users.Create(ctx, &bob)
	require.NoError(t, err)

	t.Run("rows are scoped to the owner", func(t *testing.T) {
		task := entity.Task{UserID: alice.ID, Text: "X", Category: "pessoal"}
		id, err := tasks.Create(ctx, &task)
		require.NoError(t, err)

		_, err = tasks.GetOwned(ctx, id, bob.ID)
		assert.ErrorIs(t, err, errorvalues.ErrNotFound)
		assert.ErrorIs(t, tasks.Delete(ctx, id, bob.ID), errorvalues.ErrNotFound)

		listed, err := tasks.ListByUser(ctx, bob.ID)
		require.NoError(t, err)
		assert.Empty(t, listed)
	})
	t.Run("date and time columns round trip", func(t *testing.T) {
		event := entity.Event{UserID: alice.ID, Title: "dinner", Date: "2025-09-07", Time: "20:30", Category: "pessoal"}
		id, err := events.Create(ctx, &event)
		require.NoError(t, err)
		got, err := events.GetOwned(ctx, id, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, "2025-09-07", got.Date)
		assert.Equal(t, "20:30", got.Time)

		reminder := entity.Reminder{UserID: alice.ID, Title: "water", Time: "08:05", Active: true}
		rid, err := reminders.Create(ctx, &reminder)
		require.NoError(t, err)
		gotReminder, err := reminders.GetOwned(ctx, rid, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, "08:05", gotReminder.Time)
	})
	t.Run("values accepted by validation fit the columns", func(t *testing.T) {
		longName := "u" + strings.Repeat("x", 99)
		long := entity.User{Name: longName, PasswordHash: "h", Theme: entity.DefaultTheme}
		_, err := users.Create(ctx, &long)
		require.NoError(t, err)

		theme := strings.Repeat("t", 64)
		require.NoError(t, users.UpdateTheme(ctx, alice.ID, theme))
		got, err := users.FindByID(ctx, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, theme, got.Theme)

		text := strings.Repeat("a", 2000)
		taskID, err := tasks.Create(ctx, &entity.Task{UserID: alice.ID, Text: text, Category: strings.Repeat("c", 200)})
		require.NoError(t, err)
		gotTask, err := tasks.GetOwned(ctx, taskID, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, text, gotTask.Text)

		goalID, err := goals.Create(ctx, &entity.Goal{UserID: alice.ID, Text: text, Progress: 3000000000})
		require.NoError(t, err)
		gotGoal, err := goals.GetOwned(ctx, goalID, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, 3000000000, gotGoal.Progress)
	})
	t.Run("deleting user cascades", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			_, err := tasks.Create(ctx, &entity.Task{UserID: bob.ID, Text: "t", Category: "pessoal"})
			require.NoError(t, err)
		}
		for i := 0; i < 2; i++ {
			_, err := goals.Create(ctx, &entity.Goal{UserID: bob.ID, Text: "g"})
			require.NoError(t, err)
		}
		require.NoError(t, users.Delete(ctx, bob.ID))

		taskCount, err := tasks.CountByUser(ctx, bob.ID)
		require.NoError(t, err)
		assert.Zero(t, taskCount)
		goalCount, err := goals.CountByUser(ctx, bob.ID)
		require.NoError(t, err)
		assert.Zero(t, goalCount)
		_, err = users.FindByID(ctx, bob.ID)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

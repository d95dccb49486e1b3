package repository

import (
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/limbo/planner/pkg/entity"
)

// Tables owned by users, in the order the cascade deletes them.
var ownedTables = []string{"tasks", "goals", "events", "reminders", "gallery_items"}

var TasksTable = Table[entity.Task]{
	Name:    "tasks",
	Columns: "id, user_id, text, category, completed, created_at",
	Insert:  `INSERT INTO tasks (user_id, text, category, completed) VALUES ($1, $2, $3, $4) RETURNING id, created_at;`,
	InsertArgs: func(t *entity.Task) []any {
		return []any{t.UserID, t.Text, t.Category, t.Completed}
	},
	Update: `UPDATE tasks SET text = $1, category = $2, completed = $3 WHERE id = $4 AND user_id = $5;`,
	UpdateArgs: func(t *entity.Task) []any {
		return []any{t.Text, t.Category, t.Completed, t.ID, t.UserID}
	},
	Scan: func(row pgx.Row) (*entity.Task, error) {
		var t entity.Task
		err := row.Scan(&t.ID, &t.UserID, &t.Text, &t.Category, &t.Completed, &t.CreatedAt)
		return &t, err
	},
	SetKeys: func(t *entity.Task, id int64, createdAt time.Time) {
		t.ID, t.CreatedAt = id, createdAt
	},
}

var GoalsTable = Table[entity.Goal]{
	Name:    "goals",
	Columns: "id, user_id, text, progress, created_at",
	Insert:  `INSERT INTO goals (user_id, text, progress) VALUES ($1, $2, $3) RETURNING id, created_at;`,
	InsertArgs: func(g *entity.Goal) []any {
		return []any{g.UserID, g.Text, g.Progress}
	},
	Update: `UPDATE goals SET text = $1, progress = $2 WHERE id = $3 AND user_id = $4;`,
	UpdateArgs: func(g *entity.Goal) []any {
		return []any{g.Text, g.Progress, g.ID, g.UserID}
	},
	Scan: func(row pgx.Row) (*entity.Goal, error) {
		var g entity.Goal
		err := row.Scan(&g.ID, &g.UserID, &g.Text, &g.Progress, &g.CreatedAt)
		return &g, err
	},
	SetKeys: func(g *entity.Goal, id int64, createdAt time.Time) {
		g.ID, g.CreatedAt = id, createdAt
	},
}

var EventsTable = Table[entity.Event]{
	Name:    "events",
	Columns: "id, user_id, title, to_char(event_date, 'YYYY-MM-DD'), to_char(event_time, 'HH24:MI'), category, created_at",
	Insert:  `INSERT INTO events (user_id, title, event_date, event_time, category) VALUES ($1, $2, $3::date, $4::time, $5) RETURNING id, created_at;`,
	InsertArgs: func(e *entity.Event) []any {
		return []any{e.UserID, e.Title, e.Date, e.Time, e.Category}
	},
	Update: `UPDATE events SET title = $1, event_date = $2::date, event_time = $3::time, category = $4 WHERE id = $5 AND user_id = $6;`,
	UpdateArgs: func(e *entity.Event) []any {
		return []any{e.Title, e.Date, e.Time, e.Category, e.ID, e.UserID}
	},
	Scan: func(row pgx.Row) (*entity.Event, error) {
		var e entity.Event
		err := row.Scan(&e.ID, &e.UserID, &e.Title, &e.Date, &e.Time, &e.Category, &e.CreatedAt)
		return &e, err
	},
	SetKeys: func(e *entity.Event, id int64, createdAt time.Time) {
		e.ID, e.CreatedAt = id, createdAt
	},
}

var RemindersTable = Table[entity.Reminder]{
	Name:    "reminders",
	Columns: "id, user_id, title, to_char(remind_at, 'HH24:MI'), active, created_at",
	Insert:  `INSERT INTO reminders (user_id, title, remind_at, active) VALUES ($1, $2, $3::time, $4) RETURNING id, created_at;`,
	InsertArgs: func(r *entity.Reminder) []any {
		return []any{r.UserID, r.Title, r.Time, r.Active}
	},
	Update: `UPDATE reminders SET title = $1, remind_at = $2::time, active = $3 WHERE id = $4 AND user_id = $5;`,
	UpdateArgs: func(r *entity.Reminder) []any {
		return []any{r.Title, r.Time, r.Active, r.ID, r.UserID}
	},
	Scan: func(row pgx.Row) (*entity.Reminder, error) {
		var r entity.Reminder
		err := row.Scan(&r.ID, &r.UserID, &r.Title, &r.Time, &r.Active, &r.CreatedAt)
		return &r, err
	},
	SetKeys: func(r *entity.Reminder, id int64, createdAt time.Time) {
		r.ID, r.CreatedAt = id, createdAt
	},
}

var GalleryTable = Table[entity.GalleryItem]{
	Name:    "gallery_items",
	Columns: "id, user_id, caption, category, image_data, created_at",
	Insert:  `INSERT INTO gallery_items (user_id, caption, category, image_data) VALUES ($1, $2, $3, $4) RETURNING id, created_at;`,
	InsertArgs: func(g *entity.GalleryItem) []any {
		return []any{g.UserID, g.Caption, g.Category, g.ImageData}
	},
	Update: `UPDATE gallery_items SET caption = $1, category = $2, image_data = $3 WHERE id = $4 AND user_id = $5;`,
	UpdateArgs: func(g *entity.GalleryItem) []any {
		return []any{g.Caption, g.Category, g.ImageData, g.ID, g.UserID}
	},
	Scan: func(row pgx.Row) (*entity.GalleryItem, error) {
		var g entity.GalleryItem
		err := row.Scan(&g.ID, &g.UserID, &g.Caption, &g.Category, &g.ImageData, &g.CreatedAt)
		return &g, err
	},
	SetKeys: func(g *entity.GalleryItem, id int64, createdAt time.Time) {
		g.ID, g.CreatedAt = id, createdAt
	},
}

func NewTasksRepo(conn PgConnection) *OwnedRepository[entity.Task] {
	return NewOwnedRepoWithConn(conn, TasksTable)
}

func NewGoalsRepo(conn PgConnection) *OwnedRepository[entity.Goal] {
	return NewOwnedRepoWithConn(conn, GoalsTable)
}

func NewEventsRepo(conn PgConnection) *OwnedRepository[entity.Event] {
	return NewOwnedRepoWithConn(conn, EventsTable)
}

func NewRemindersRepo(conn PgConnection) *OwnedRepository[entity.Reminder] {
	return NewOwnedRepoWithConn(conn, RemindersTable)
}

func NewGalleryRepo(conn PgConnection) *OwnedRepository[entity.GalleryItem] {
	return NewOwnedRepoWithConn(conn, GalleryTable)
}

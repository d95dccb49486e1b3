package sqlitestore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	errorvalues "github.com/limbo/planner/internal/error_values"
	"github.com/limbo/planner/pkg/entity"
)

// Kind tells the generic repository which columns Update writes and how to
// read the keys of a row.
type Kind[T any] struct {
	Name    string
	Columns []string
	Keys    func(item *T) (id, uid int64)
}

type OwnedRepository[T any] struct {
	db   *gorm.DB
	kind Kind[T]
}

func NewOwnedRepo[T any](db *gorm.DB, kind Kind[T]) *OwnedRepository[T] {
	return &OwnedRepository[T]{db: db, kind: kind}
}

func (r *OwnedRepository[T]) Create(ctx context.Context, item *T) (int64, error) {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return 0, errorvalues.ErrUserNotFound
		}
		return 0, fmt.Errorf("create %s: %w", r.kind.Name, err)
	}
	id, _ := r.kind.Keys(item)
	return id, nil
}

func (r *OwnedRepository[T]) ListByUser(ctx context.Context, uid int64) ([]*T, error) {
	items := make([]*T, 0)
	if err := r.db.WithContext(ctx).Where("user_id = ?", uid).Order("id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", r.kind.Name, err)
	}
	return items, nil
}

func (r *OwnedRepository[T]) GetOwned(ctx context.Context, id, uid int64) (*T, error) {
	var item T
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, uid).First(&item).Error
	switch {
	case err == nil:
		return &item, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, errorvalues.ErrNotFound
	default:
		return nil, fmt.Errorf("find %s: %w", r.kind.Name, err)
	}
}

func (r *OwnedRepository[T]) Update(ctx context.Context, item *T) error {
	id, uid := r.kind.Keys(item)
	res := r.db.WithContext(ctx).Model(new(T)).
		Where("id = ? AND user_id = ?", id, uid).
		Select(r.kind.Columns).
		Updates(item)
	if res.Error != nil {
		return fmt.Errorf("update %s: %w", r.kind.Name, res.Error)
	}
	if res.RowsAffected == 0 {
		return errorvalues.ErrNotFound
	}
	return nil
}

func (r *OwnedRepository[T]) Delete(ctx context.Context, id, uid int64) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, uid).Delete(new(T))
	if res.Error != nil {
		return fmt.Errorf("delete %s: %w", r.kind.Name, res.Error)
	}
	if res.RowsAffected == 0 {
		return errorvalues.ErrNotFound
	}
	return nil
}

func (r *OwnedRepository[T]) CountByUser(ctx context.Context, uid int64) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(new(T)).Where("user_id = ?", uid).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count %s: %w", r.kind.Name, err)
	}
	return int(count), nil
}

var (
	TaskKind = Kind[entity.Task]{
		Name:    "tasks",
		Columns: []string{"text", "category", "completed"},
		Keys:    func(t *entity.Task) (int64, int64) { return t.ID, t.UserID },
	}
	GoalKind = Kind[entity.Goal]{
		Name:    "goals",
		Columns: []string{"text", "progress"},
		Keys:    func(g *entity.Goal) (int64, int64) { return g.ID, g.UserID },
	}
	EventKind = Kind[entity.Event]{
		Name:    "events",
		Columns: []string{"title", "event_date", "event_time", "category"},
		Keys:    func(e *entity.Event) (int64, int64) { return e.ID, e.UserID },
	}
	ReminderKind = Kind[entity.Reminder]{
		Name:    "reminders",
		Columns: []string{"title", "remind_at", "active"},
		Keys:    func(r *entity.Reminder) (int64, int64) { return r.ID, r.UserID },
	}
	GalleryKind = Kind[entity.GalleryItem]{
		Name:    "gallery_items",
		Columns: []string{"caption", "category", "image_data"},
		Keys:    func(g *entity.GalleryItem) (int64, int64) { return g.ID, g.UserID },
	}
)

func NewTasksRepo(db *gorm.DB) *OwnedRepository[entity.Task] {
	return NewOwnedRepo(db, TaskKind)
}

func NewGoalsRepo(db *gorm.DB) *OwnedRepository[entity.Goal] {
	return NewOwnedRepo(db, GoalKind)
}

func NewEventsRepo(db *gorm.DB) *OwnedRepository[entity.Event] {
	return NewOwnedRepo(db, EventKind)
}

func NewRemindersRepo(db *gorm.DB) *OwnedRepository[entity.Reminder] {
	return NewOwnedRepo(db, ReminderKind)
}

func NewGalleryRepo(db *gorm.DB) *OwnedRepository[entity.GalleryItem] {
	return NewOwnedRepo(db, GalleryKind)
}

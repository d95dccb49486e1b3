package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/planner/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database and returns its id
	Create(ctx context.Context, user *entity.User) (int64, error)
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid int64) (*entity.User, error)
	// Stores display theme of the user
	UpdateTheme(ctx context.Context, uid int64, theme string) error
	// Deletes user together with every row it owns, in one transaction
	Delete(ctx context.Context, uid int64) error
}

// OwnedRepositoryI is the store contract shared by every user-owned entity
// kind. Every lookup by id also filters by owner.
type OwnedRepositoryI[T any] interface {
	// Inserts item (UserID must be set) and returns the assigned id
	Create(ctx context.Context, item *T) (int64, error)
	// Lists items owned by uid ordered by id
	ListByUser(ctx context.Context, uid int64) ([]*T, error)
	// Returns item with id owned by uid or ErrNotFound
	GetOwned(ctx context.Context, id, uid int64) (*T, error)
	// Overwrites mutable fields of item matched by its id and owner
	Update(ctx context.Context, item *T) error
	// Deletes item with id owned by uid or returns ErrNotFound
	Delete(ctx context.Context, id, uid int64) error
	// Counts items owned by uid
	CountByUser(ctx context.Context, uid int64) (int, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}

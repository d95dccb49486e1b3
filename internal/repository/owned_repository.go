package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/planner/internal/error_values"
)

// Table describes how one entity kind maps onto its SQL table.
type Table[T any] struct {
	Name string
	// Select list, must start with id and user_id and end with created_at
	Columns string
	// INSERT ... RETURNING id, created_at
	Insert     string
	InsertArgs func(item *T) []any
	// UPDATE ... WHERE id = $n AND user_id = $n+1
	Update     string
	UpdateArgs func(item *T) []any
	Scan       func(row pgx.Row) (*T, error)
	SetKeys    func(item *T, id int64, createdAt time.Time)
}

type OwnedRepository[T any] struct {
	conn  PgConnection
	table Table[T]
}

func NewOwnedRepoWithConn[T any](conn PgConnection, table Table[T]) *OwnedRepository[T] {
	return &OwnedRepository[T]{
		conn:  conn,
		table: table,
	}
}

func (or *OwnedRepository[T]) Create(ctx context.Context, item *T) (int64, error) {
	var (
		id        int64
		createdAt time.Time
	)
	err := or.conn.QueryRow(ctx, or.table.Insert, or.table.InsertArgs(item)...).Scan(&id, &createdAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return 0, errorvalues.ErrUserNotFound
			}
		}
		return 0, fmt.Errorf("creating %s row error: %w", or.table.Name, err)
	}
	or.table.SetKeys(item, id, createdAt)
	return id, nil
}

func (or *OwnedRepository[T]) ListByUser(ctx context.Context, uid int64) ([]*T, error) {
	items := make([]*T, 0)
	rows, err := or.conn.Query(ctx, fmt.Sprintf(`SELECT %s FROM %s WHERE user_id = $1 ORDER BY id;`, or.table.Columns, or.table.Name), uid)
	if err != nil {
		return nil, fmt.Errorf("listing %s by uid error: %w", or.table.Name, err)
	}
	defer rows.Close()
	for rows.Next() {
		item, err := or.table.Scan(rows)
		if err != nil {
			return nil, fmt.Errorf("unmarshalling %s row error: %w", or.table.Name, err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected error after scanning %s: %w", or.table.Name, err)
	}
	return items, nil
}

func (or *OwnedRepository[T]) GetOwned(ctx context.Context, id, uid int64) (*T, error) {
	row := or.conn.QueryRow(ctx, fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1 AND user_id = $2;`, or.table.Columns, or.table.Name), id, uid)
	item, err := or.table.Scan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrNotFound
		}
		return nil, fmt.Errorf("getting %s by id error: %w", or.table.Name, err)
	}
	return item, nil
}

func (or *OwnedRepository[T]) Update(ctx context.Context, item *T) error {
	ct, err := or.conn.Exec(ctx, or.table.Update, or.table.UpdateArgs(item)...)
	if err != nil {
		return fmt.Errorf("updating %s error: %w", or.table.Name, err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrNotFound
	}
	return nil
}

func (or *OwnedRepository[T]) Delete(ctx context.Context, id, uid int64) error {
	ct, err := or.conn.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1 AND user_id = $2;`, or.table.Name), id, uid)
	if err != nil {
		return fmt.Errorf("deleting %s error: %w", or.table.Name, err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrNotFound
	}
	return nil
}

func (or *OwnedRepository[T]) CountByUser(ctx context.Context, uid int64) (int, error) {
	var count int
	row := or.conn.QueryRow(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE user_id = $1;`, or.table.Name), uid)
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("counting %s error: %w", or.table.Name, err)
	}
	return count, nil
}

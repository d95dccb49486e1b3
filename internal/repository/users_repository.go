package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/planner/internal/error_values"
	"github.com/limbo/planner/pkg/entity"
)

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepoWithConn(conn PgConnection) *UsersRepository {
	return &UsersRepository{
		conn: conn,
	}
}

func (ur *UsersRepository) Create(ctx context.Context, user *entity.User) (int64, error) {
	if user == nil {
		return 0, errors.New("user is nil")
	}
	row := ur.conn.QueryRow(ctx, `INSERT INTO users (username, password_hash, theme) VALUES ($1, $2, $3) RETURNING id, created_at;`,
		user.Name,
		user.PasswordHash,
		user.Theme,
	)
	if err := row.Scan(&user.ID, &user.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return 0, errorvalues.ErrUserExists
			}
		}
		return 0, errors.New("creating user db error: " + err.Error())
	}
	return user.ID, nil
}

func (ur *UsersRepository) FindByName(ctx context.Context, name string) (*entity.User, error) {
	var user entity.User
	row := ur.conn.QueryRow(ctx, `SELECT id, username, password_hash, theme, created_at FROM users WHERE username = $1;`, name)
	if err := row.Scan(&user.ID, &user.Name, &user.PasswordHash, &user.Theme, &user.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by name error: " + err.Error())
	}
	return &user, nil
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid int64) (*entity.User, error) {
	var user entity.User
	row := ur.conn.QueryRow(ctx, `SELECT id, username, password_hash, theme, created_at FROM users WHERE id = $1;`, uid)
	if err := row.Scan(&user.ID, &user.Name, &user.PasswordHash, &user.Theme, &user.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by id error: " + err.Error())
	}
	return &user, nil
}

func (ur *UsersRepository) UpdateTheme(ctx context.Context, uid int64, theme string) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET theme = $1 WHERE id = $2;`, theme, uid)
	if err != nil {
		return errors.New("updating theme error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

// Delete removes the owned rows of every kind and then the user itself.
// Nothing is removed unless all statements succeed.
func (ur *UsersRepository) Delete(ctx context.Context, uid int64) error {
	tx, err := ur.conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("starting cascade transaction error: %w", err)
	}
	for _, table := range ownedTables {
		if _, err = tx.Exec(ctx, `DELETE FROM `+table+` WHERE user_id = $1;`, uid); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("deleting %s of user error: %w", table, err)
		}
	}
	ct, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1;`, uid)
	if err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("deleting user error: %w", err)
	}
	if ct.RowsAffected() == 0 {
		_ = tx.Rollback(ctx)
		return errorvalues.ErrUserNotFound
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing cascade error: %w", err)
	}
	return nil
}

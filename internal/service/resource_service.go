package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	errorvalues "github.com/limbo/planner/internal/error_values"
	"github.com/limbo/planner/internal/repository"
)

// Schema describes one entity kind: how a create payload becomes a row and
// how an update payload is applied to a stored row. Apply is nil for kinds
// that cannot be edited.
type Schema[T, C, U any] struct {
	Name  string
	Build func(uid int64, req *C) (*T, error)
	Apply func(item *T, req *U) error
}

type ResourceService[T, C, U any] struct {
	repo   repository.OwnedRepositoryI[T]
	schema Schema[T, C, U]
}

func NewResourceService[T, C, U any](repo repository.OwnedRepositoryI[T], schema Schema[T, C, U]) *ResourceService[T, C, U] {
	if repo == nil {
		log.Fatal("provided nil " + schema.Name + " repository")
	}
	return &ResourceService[T, C, U]{
		repo:   repo,
		schema: schema,
	}
}

func (rs *ResourceService[T, C, U]) List(ctx context.Context, uid int64) ([]*T, error) {
	if uid <= 0 {
		return nil, errorvalues.ErrUnauthorized
	}
	items, err := rs.repo.ListByUser(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("%s repository error: %w", rs.schema.Name, err)
	}
	return items, nil
}

func (rs *ResourceService[T, C, U]) Create(ctx context.Context, uid int64, req *C) (int64, error) {
	if uid <= 0 {
		return 0, errorvalues.ErrUnauthorized
	}
	if req == nil {
		return 0, errorvalues.NewValidationError("", "empty payload")
	}
	if err := validateRequest(req); err != nil {
		return 0, err
	}
	item, err := rs.schema.Build(uid, req)
	if err != nil {
		return 0, err
	}
	id, err := rs.repo.Create(ctx, item)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return 0, errorvalues.ErrUnauthorized
		}
		return 0, fmt.Errorf("%s repository error: %w", rs.schema.Name, err)
	}
	return id, nil
}

// Update changes only the fields present in req. A row owned by another
// user is reported exactly like a missing one.
func (rs *ResourceService[T, C, U]) Update(ctx context.Context, uid, id int64, req *U) error {
	if uid <= 0 {
		return errorvalues.ErrUnauthorized
	}
	if rs.schema.Apply == nil {
		return errorvalues.ErrUpdateNotSupported
	}
	if req == nil {
		return errorvalues.NewValidationError("", "empty payload")
	}
	if err := validateRequest(req); err != nil {
		return err
	}
	item, err := rs.repo.GetOwned(ctx, id, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrNotFound) {
			return err
		}
		return fmt.Errorf("%s repository error: %w", rs.schema.Name, err)
	}
	if err = rs.schema.Apply(item, req); err != nil {
		return err
	}
	if err = rs.repo.Update(ctx, item); err != nil {
		if errors.Is(err, errorvalues.ErrNotFound) {
			return err
		}
		return fmt.Errorf("%s repository error: %w", rs.schema.Name, err)
	}
	return nil
}

func (rs *ResourceService[T, C, U]) Delete(ctx context.Context, uid, id int64) error {
	if uid <= 0 {
		return errorvalues.ErrUnauthorized
	}
	if err := rs.repo.Delete(ctx, id, uid); err != nil {
		if errors.Is(err, errorvalues.ErrNotFound) {
			return err
		}
		return fmt.Errorf("%s repository error: %w", rs.schema.Name, err)
	}
	return nil
}

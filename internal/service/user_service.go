package service

import (
	"context"
	"errors"
	"fmt"

	errorvalues "github.com/limbo/planner/internal/error_values"
	"github.com/limbo/planner/internal/repository"
	"github.com/limbo/planner/pkg/entity"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo repository.UsersRepositoryI
}

func NewUserService(usersRepo repository.UsersRepositoryI) *UserService {
	return &UserService{
		repo: usersRepo,
	}
}

func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (us *UserService) Register(ctx context.Context, req *RegisterRequest) (*entity.User, error) {
	if req == nil {
		return nil, errorvalues.NewValidationError("", "empty payload")
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return us.create(ctx, req.Name, req.Password)
}

func (us *UserService) create(ctx context.Context, name, password string) (*entity.User, error) {
	passwordHash, err := Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password error: %w", err)
	}
	user := &entity.User{
		Name:         name,
		PasswordHash: passwordHash,
		Theme:        entity.DefaultTheme,
	}
	if _, err = us.repo.Create(ctx, user); err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			return nil, err
		}
		return nil, fmt.Errorf("repository creating error: %w", err)
	}
	return user, nil
}

// Login never tells an unknown name apart from a wrong password.
func (us *UserService) Login(ctx context.Context, name, password string) (*entity.User, error) {
	user, err := us.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrWrongCredentials
		}
		return nil, fmt.Errorf("repository searching error: %w", err)
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errorvalues.ErrWrongCredentials
	}
	return user, nil
}

func (us *UserService) GetByID(ctx context.Context, uid int64) (*entity.User, error) {
	user, err := us.repo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("repository searching error: %w", err)
	}
	return user, nil
}

func (us *UserService) UpdateTheme(ctx context.Context, uid int64, req *ThemeRequest) error {
	if uid <= 0 {
		return errorvalues.ErrUnauthorized
	}
	if req == nil {
		return errorvalues.NewValidationError("theme", "is required")
	}
	if err := validateRequest(req); err != nil {
		return err
	}
	if err := us.repo.UpdateTheme(ctx, uid, req.Theme); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return errorvalues.ErrUnauthorized
		}
		return fmt.Errorf("repository updating error: %w", err)
	}
	return nil
}

func (us *UserService) DeleteAccount(ctx context.Context, uid int64, password string) error {
	user, err := us.repo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return errorvalues.ErrUnauthorized
		}
		return fmt.Errorf("repository searching error: %w", err)
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return errorvalues.ErrWrongCredentials
	}
	if err = us.repo.Delete(ctx, user.ID); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return errorvalues.ErrUnauthorized
		}
		return fmt.Errorf("repository deletion error: %w", err)
	}
	return nil
}

// Seed creates the default account unless a user with that name exists.
// The password is not checked against signup rules.
func (us *UserService) Seed(ctx context.Context, name, password string) (bool, error) {
	_, err := us.repo.FindByName(ctx, name)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, errorvalues.ErrUserNotFound) {
		return false, fmt.Errorf("repository searching error: %w", err)
	}
	if _, err = us.create(ctx, name, password); err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

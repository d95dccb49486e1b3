package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	errorvalues "github.com/limbo/planner/internal/error_values"
	"github.com/limbo/planner/internal/repository/mocks"
	"github.com/limbo/planner/internal/service"
	"github.com/limbo/planner/pkg/entity"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

var (
	username = "test_user"
	password = "test_password"
)

func hashed(t *testing.T, pass string) string {
	t.Helper()
	h, err := service.Hash(pass)
	require.NoError(t, err)
	return h
}

func TestRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUsersRepositoryI(ctrl)
	us := service.NewUserService(repo)
	ctx := context.Background()

	t.Run("registered", func(t *testing.T) {
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *entity.User) (int64, error) {
			u.ID = 1
			return 1, nil
		})
		user, err := us.Register(ctx, &service.RegisterRequest{Name: username, Password: password})
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, entity.DefaultTheme, user.Theme)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)))
	})
	t.Run("existed user", func(t *testing.T) {
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), errorvalues.ErrUserExists)
		_, err := us.Register(ctx, &service.RegisterRequest{Name: username, Password: password})
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("invalid name", func(t *testing.T) {
		_, err := us.Register(ctx, &service.RegisterRequest{Name: "_bad name", Password: password})
		var vErr *errorvalues.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "username", vErr.Field)
	})
	t.Run("short password", func(t *testing.T) {
		_, err := us.Register(ctx, &service.RegisterRequest{Name: username, Password: "123"})
		var vErr *errorvalues.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "password", vErr.Field)
	})
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUsersRepositoryI(ctrl)
	us := service.NewUserService(repo)
	ctx := context.Background()
	stored := &entity.User{ID: 3, Name: username, PasswordHash: hashed(t, password), Theme: entity.DefaultTheme}

	t.Run("success", func(t *testing.T) {
		repo.EXPECT().FindByName(gomock.Any(), username).Return(stored, nil)
		user, err := us.Login(ctx, username, password)
		require.NoError(t, err)
		assert.Equal(t, stored, user)
	})
	t.Run("wrong password and unknown user look the same", func(t *testing.T) {
		repo.EXPECT().FindByName(gomock.Any(), username).Return(stored, nil)
		_, errWrong := us.Login(ctx, username, "nope")
		repo.EXPECT().FindByName(gomock.Any(), "ghost").Return(nil, errorvalues.ErrUserNotFound)
		_, errUnknown := us.Login(ctx, "ghost", password)
		assert.ErrorIs(t, errWrong, errorvalues.ErrWrongCredentials)
		assert.ErrorIs(t, errUnknown, errorvalues.ErrWrongCredentials)
	})
	t.Run("db error", func(t *testing.T) {
		repo.EXPECT().FindByName(gomock.Any(), username).Return(nil, errors.New("db error"))
		_, err := us.Login(ctx, username, password)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
}

func TestUpdateTheme(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUsersRepositoryI(ctrl)
	us := service.NewUserService(repo)
	ctx := context.Background()

	t.Run("updated", func(t *testing.T) {
		repo.EXPECT().UpdateTheme(gomock.Any(), int64(1), "dark").Return(nil)
		assert.NoError(t, us.UpdateTheme(ctx, 1, &service.ThemeRequest{Theme: "dark"}))
	})
	t.Run("empty theme", func(t *testing.T) {
		var vErr *errorvalues.ValidationError
		assert.ErrorAs(t, us.UpdateTheme(ctx, 1, &service.ThemeRequest{}), &vErr)
	})
	t.Run("no session", func(t *testing.T) {
		assert.ErrorIs(t, us.UpdateTheme(ctx, 0, &service.ThemeRequest{Theme: "dark"}), errorvalues.ErrUnauthorized)
	})
	t.Run("user gone", func(t *testing.T) {
		repo.EXPECT().UpdateTheme(gomock.Any(), int64(2), "dark").Return(errorvalues.ErrUserNotFound)
		assert.ErrorIs(t, us.UpdateTheme(ctx, 2, &service.ThemeRequest{Theme: "dark"}), errorvalues.ErrUnauthorized)
	})
}

func TestDeleteAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUsersRepositoryI(ctrl)
	us := service.NewUserService(repo)
	ctx := context.Background()
	stored := &entity.User{ID: 5, Name: username, PasswordHash: hashed(t, password)}

	t.Run("wrong password", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), int64(5)).Return(stored, nil)
		assert.ErrorIs(t, us.DeleteAccount(ctx, 5, "nope"), errorvalues.ErrWrongCredentials)
	})
	t.Run("deleted", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), int64(5)).Return(stored, nil)
		repo.EXPECT().Delete(gomock.Any(), int64(5)).Return(nil)
		assert.NoError(t, us.DeleteAccount(ctx, 5, password))
	})
	t.Run("unexisted user", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), int64(6)).Return(nil, errorvalues.ErrUserNotFound)
		assert.ErrorIs(t, us.DeleteAccount(ctx, 6, password), errorvalues.ErrUnauthorized)
	})
}

func TestSeed(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUsersRepositoryI(ctrl)
	us := service.NewUserService(repo)
	ctx := context.Background()

	t.Run("creates missing user", func(t *testing.T) {
		repo.EXPECT().FindByName(gomock.Any(), "princesa").Return(nil, errorvalues.ErrUserNotFound)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(1), nil)
		created, err := us.Seed(ctx, "princesa", "amor")
		require.NoError(t, err)
		assert.True(t, created)
	})
	t.Run("keeps existing user", func(t *testing.T) {
		repo.EXPECT().FindByName(gomock.Any(), "princesa").Return(&entity.User{ID: 1, Name: "princesa"}, nil)
		created, err := us.Seed(ctx, "princesa", "amor")
		require.NoError(t, err)
		assert.False(t, created)
	})
}

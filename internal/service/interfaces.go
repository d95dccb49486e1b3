package service

import (
	"context"

	"github.com/limbo/planner/pkg/entity"
)

type RegisterRequest struct {
	Name     string `json:"username" validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type ThemeRequest struct {
	Theme string `json:"theme" validate:"required,max=64"`
}

type CreateTaskRequest struct {
	Text      string `json:"text" validate:"required"`
	Category  string `json:"category"`
	Completed bool   `json:"completed"`
}

type UpdateTaskRequest struct {
	Text      *string `json:"text" validate:"omitnil,min=1"`
	Category  *string `json:"category" validate:"omitnil,min=1"`
	Completed *bool   `json:"completed"`
}

type CreateGoalRequest struct {
	Text     string `json:"text" validate:"required"`
	Progress int    `json:"progress"`
}

type UpdateGoalRequest struct {
	Text     *string `json:"text" validate:"omitnil,min=1"`
	Progress *int    `json:"progress"`
}

type CreateEventRequest struct {
	Title    string `json:"title" validate:"required"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	Time     string `json:"time" validate:"required,datetime=15:04"`
	Category string `json:"category"`
}

type CreateReminderRequest struct {
	Title  string `json:"title" validate:"required"`
	Time   string `json:"time" validate:"required,datetime=15:04"`
	Active *bool  `json:"active"`
}

type UpdateReminderRequest struct {
	Title  *string `json:"title" validate:"omitnil,min=1"`
	Time   *string `json:"time" validate:"omitnil,datetime=15:04"`
	Active *bool   `json:"active"`
}

type CreateGalleryItemRequest struct {
	Caption   string `json:"caption" validate:"required"`
	Category  string `json:"category" validate:"required"`
	ImageData string `json:"image_data" validate:"required"`
}

// NoUpdate is the update payload of kinds that cannot be edited.
type NoUpdate struct{}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, uid int64) (*entity.User, error)
	UpdateTheme(ctx context.Context, uid int64, req *ThemeRequest) error
	// Checks the password and removes the user with everything it owns
	DeleteAccount(ctx context.Context, uid int64, password string) error
}

// ResourceServiceI is the ownership-scoped CRUD surface of one entity kind.
type ResourceServiceI[T, C, U any] interface {
	List(ctx context.Context, uid int64) ([]*T, error)
	Create(ctx context.Context, uid int64, req *C) (int64, error)
	Update(ctx context.Context, uid, id int64, req *U) error
	Delete(ctx context.Context, uid, id int64) error
}

type DailyServiceI interface {
	DailyLetter(ctx context.Context) entity.DailyLetter
	Stats(ctx context.Context, uid int64) (*entity.Stats, error)
	Dashboard(ctx context.Context, uid int64) (*entity.Dashboard, error)
}

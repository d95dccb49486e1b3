package sqlitestore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	errorvalues "github.com/limbo/planner/internal/error_values"
	"github.com/limbo/planner/pkg/entity"
)

type UsersRepository struct {
	db *gorm.DB
}

func NewUsersRepo(db *gorm.DB) *UsersRepository {
	return &UsersRepository{db: db}
}

func (ur *UsersRepository) Create(ctx context.Context, user *entity.User) (int64, error) {
	if user == nil {
		return 0, errors.New("user is nil")
	}
	if err := ur.db.WithContext(ctx).Omit("Tasks", "Goals", "Events", "Reminders", "Gallery").Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, errorvalues.ErrUserExists
		}
		return 0, fmt.Errorf("creating user db error: %w", err)
	}
	return user.ID, nil
}

func (ur *UsersRepository) FindByName(ctx context.Context, name string) (*entity.User, error) {
	return ur.find(ctx, "username = ?", name)
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid int64) (*entity.User, error) {
	return ur.find(ctx, "id = ?", uid)
}

func (ur *UsersRepository) find(ctx context.Context, cond string, arg any) (*entity.User, error) {
	var user entity.User
	err := ur.db.WithContext(ctx).Where(cond, arg).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, fmt.Errorf("searching user error: %w", err)
	}
	return &user, nil
}

func (ur *UsersRepository) UpdateTheme(ctx context.Context, uid int64, theme string) error {
	res := ur.db.WithContext(ctx).Model(&entity.User{}).Where("id = ?", uid).Update("theme", theme)
	if res.Error != nil {
		return fmt.Errorf("updating theme error: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

// Delete removes every owned row and then the user inside one transaction.
func (ur *UsersRepository) Delete(ctx context.Context, uid int64) error {
	return ur.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owned := []any{
			&entity.Task{},
			&entity.Goal{},
			&entity.Event{},
			&entity.Reminder{},
			&entity.GalleryItem{},
		}
		for _, model := range owned {
			if err := tx.Where("user_id = ?", uid).Delete(model).Error; err != nil {
				return fmt.Errorf("deleting owned rows error: %w", err)
			}
		}
		res := tx.Delete(&entity.User{}, uid)
		if res.Error != nil {
			return fmt.Errorf("deleting user error: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return errorvalues.ErrUserNotFound
		}
		return nil
	})
}

package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/GAJULASAINATH/MacroVerse/internal/models/db_models"
)

type UserRepository interface {
	Insert(ctx context.Context, user *db_models.User) error
	FindById(ctx context.Context, id string) (*db_models.User, error)
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)
	AddCredits(ctx context.Context, id string, amount int64) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

func (u *userRepository) Insert(ctx context.Context, user *db_models.User) error {
	return u.db.WithContext(ctx).Create(user).Error
}

func (u *userRepository) FindById(ctx context.Context, id string) (*db_models.User, error) {
	var user db_models.User
	err := u.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (u *userRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	var user db_models.User
	err := u.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// AddCredits bumps the balance in place and returns the new value. The
// increment happens in SQL so concurrent purchases cannot clobber each other.
func (u *userRepository) AddCredits(ctx context.Context, id string, amount int64) (int64, error) {
	res := u.db.WithContext(ctx).Model(&db_models.User{}).
		Where("id = ?", id).
		UpdateColumn("credits", gorm.Expr("credits + ?", amount))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}

	var user db_models.User
	if err := u.db.WithContext(ctx).Select("credits").First(&user, "id = ?", id).Error; err != nil {
		return 0, err
	}
	return user.Credits, nil
}

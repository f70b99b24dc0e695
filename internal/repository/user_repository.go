package repository

import (
	"context"
	"errors"

	"heartlink/internal/domain/user"
	heartlink_errors "heartlink/pkg/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostgresUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Create(ctx context.Context, u *user.User) error {
	res := r.db.WithContext(ctx).Create(u)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return heartlink_errors.ErrAlreadyExists
		}
		return res.Error
	}
	return nil
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	var u user.User
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, heartlink_errors.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	var u user.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, heartlink_errors.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

func (r *PostgresUserRepository) Update(ctx context.Context, u *user.User) error {
	res := r.db.WithContext(ctx).Save(u)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return heartlink_errors.ErrNotFound
	}
	return nil
}

package repository

import (
	"context"

	"gorm.io/gorm"

	apperrors "jobdock/internal/errors"
	"jobdock/internal/model"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts the user and lets the unique indexes on username and email
// reject duplicates. A duplicate comes back as a DuplicateKeyError naming
// the field that collided.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return translateError(err, map[string]*apperrors.DuplicateKeyError{
			model.UserUsernameIndex: {Field: "username", Value: user.Username},
			model.UserEmailIndex:    {Field: "email", Value: user.Email},
		})
	}
	return nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

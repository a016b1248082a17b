package repository

import (
	"context"
	"time"

	"github.com/NusratJahanNila/plantnet-backend/internal/model"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	TouchLastLogin(ctx context.Context, email string) error
	// UpdateRoleAndClearRequest sets the user's role and deletes any pending
	// seller request for the email in a single transaction.
	UpdateRoleAndClearRequest(ctx context.Context, email string, role model.Role) error
	ListExcept(ctx context.Context, email string) ([]model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) TouchLastLogin(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("email = ?", email).
		Update("last_logged_in", time.Now()).Error
}

func (r *userRepository) UpdateRoleAndClearRequest(ctx context.Context, email string, role model.Role) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.User{}).
			Where("email = ?", email).
			Update("role", role)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("email = ?", email).Delete(&model.SellerRequest{}).Error
	})
}

func (r *userRepository) ListExcept(ctx context.Context, email string) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).
		Where("email <> ?", email).
		Order("created_at desc").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

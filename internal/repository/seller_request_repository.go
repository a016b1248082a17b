package repository

import (
	"context"

	"github.com/NusratJahanNila/plantnet-backend/internal/model"
	"gorm.io/gorm"
)

type SellerRequestRepository interface {
	// Create relies on the unique index on email; a duplicate request
	// surfaces as gorm.ErrDuplicatedKey.
	Create(ctx context.Context, req *model.SellerRequest) error
	List(ctx context.Context) ([]model.SellerRequest, error)
}

type sellerRequestRepository struct {
	db *gorm.DB
}

func NewSellerRequestRepository(db *gorm.DB) SellerRequestRepository {
	return &sellerRequestRepository{db: db}
}

func (r *sellerRequestRepository) Create(ctx context.Context, req *model.SellerRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *sellerRequestRepository) List(ctx context.Context) ([]model.SellerRequest, error) {
	var reqs []model.SellerRequest
	if err := r.db.WithContext(ctx).
		Order("created_at desc").
		Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

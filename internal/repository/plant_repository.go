package repository

import (
	"context"

	"github.com/NusratJahanNila/plantnet-backend/internal/model"
	"gorm.io/gorm"
)

type PlantRepository interface {
	Create(ctx context.Context, plant *model.Plant) error
	FindByID(ctx context.Context, id uint64) (*model.Plant, error)
	List(ctx context.Context) ([]model.Plant, error)
	ListBySeller(ctx context.Context, email string) ([]model.Plant, error)
}

type plantRepository struct {
	db *gorm.DB
}

func NewPlantRepository(db *gorm.DB) PlantRepository {
	return &plantRepository{db: db}
}

func (r *plantRepository) Create(ctx context.Context, plant *model.Plant) error {
	return r.db.WithContext(ctx).Create(plant).Error
}

func (r *plantRepository) FindByID(ctx context.Context, id uint64) (*model.Plant, error) {
	var plant model.Plant
	if err := r.db.WithContext(ctx).First(&plant, id).Error; err != nil {
		return nil, err
	}
	return &plant, nil
}

func (r *plantRepository) List(ctx context.Context) ([]model.Plant, error) {
	var plants []model.Plant
	if err := r.db.WithContext(ctx).
		Order("created_at desc").
		Find(&plants).Error; err != nil {
		return nil, err
	}
	return plants, nil
}

func (r *plantRepository) ListBySeller(ctx context.Context, email string) ([]model.Plant, error) {
	var plants []model.Plant
	if err := r.db.WithContext(ctx).
		Where("seller_email = ?", email).
		Order("created_at desc").
		Find(&plants).Error; err != nil {
		return nil, err
	}
	return plants, nil
}

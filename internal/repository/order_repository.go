package repository

import (
	"context"
	"errors"

	"github.com/NusratJahanNila/plantnet-backend/internal/model"
	"gorm.io/gorm"
)

type OrderRepository interface {
	// CreateWithInventory inserts the order and decrements the plant's
	// quantity by one in a single transaction.
	CreateWithInventory(ctx context.Context, order *model.Order) error
	FindByTransactionID(ctx context.Context, transactionID string) (*model.Order, error)
	ListByCustomer(ctx context.Context, email string) ([]model.Order, error)
	ListBySeller(ctx context.Context, email string) ([]model.Order, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) CreateWithInventory(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		return tx.Model(&model.Plant{}).
			Where("id = ?", order.PlantID).
			Update("quantity", gorm.Expr("quantity - ?", 1)).Error
	})
}

func (r *orderRepository) FindByTransactionID(ctx context.Context, transactionID string) (*model.Order, error) {
	var order model.Order
	if err := r.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) ListByCustomer(ctx context.Context, email string) ([]model.Order, error) {
	var orders []model.Order
	if err := r.db.WithContext(ctx).
		Where("customer_email = ?", email).
		Order("id DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) ListBySeller(ctx context.Context, email string) ([]model.Order, error) {
	var orders []model.Order
	if err := r.db.WithContext(ctx).
		Where("seller_email = ?", email).
		Order("id DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

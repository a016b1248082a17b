package service

import (
	"context"
	"errors"

	"github.com/NusratJahanNila/plantnet-backend/internal/model"
	"github.com/NusratJahanNila/plantnet-backend/internal/repository"
)

type OrderService interface {
	ListByCustomer(ctx context.Context, email string) ([]model.Order, error)
	ListBySeller(ctx context.Context, email string) ([]model.Order, error)
}

type orderService struct {
	orders repository.OrderRepository
}

func NewOrderService(orders repository.OrderRepository) OrderService {
	return &orderService{orders: orders}
}

func (s *orderService) ListByCustomer(ctx context.Context, email string) ([]model.Order, error) {
	if email == "" {
		return nil, errors.New("customer email is required")
	}
	return s.orders.ListByCustomer(ctx, email)
}

func (s *orderService) ListBySeller(ctx context.Context, email string) ([]model.Order, error) {
	if email == "" {
		return nil, errors.New("seller email is required")
	}
	return s.orders.ListBySeller(ctx, email)
}

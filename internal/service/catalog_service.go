package service

import (
	"context"
	"errors"
	"strings"

	"github.com/NusratJahanNila/plantnet-backend/internal/model"
	"github.com/NusratJahanNila/plantnet-backend/internal/repository"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("not found")

type CreatePlantInput struct {
	Name        string
	Description string
	Category    string
	Price       float64
	Quantity    int
	ImageURL    string
	SellerName  string
	SellerEmail string
	SellerImage string
}

type CatalogService interface {
	Create(ctx context.Context, in CreatePlantInput) (*model.Plant, error)
	Get(ctx context.Context, id uint64) (*model.Plant, error)
	List(ctx context.Context) ([]model.Plant, error)
	ListBySeller(ctx context.Context, email string) ([]model.Plant, error)
}

type catalogService struct {
	plants repository.PlantRepository
}

func NewCatalogService(plants repository.PlantRepository) CatalogService {
	return &catalogService{plants: plants}
}

func (s *catalogService) Create(ctx context.Context, in CreatePlantInput) (*model.Plant, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" || len(in.Name) > 120 {
		return nil, errors.New("invalid name")
	}
	if in.Price < 0 {
		return nil, errors.New("invalid price")
	}
	if in.Quantity < 0 {
		return nil, errors.New("invalid quantity")
	}

	plant := &model.Plant{
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		Quantity:    in.Quantity,
		ImageURL:    in.ImageURL,
		SellerName:  in.SellerName,
		SellerEmail: in.SellerEmail,
		SellerImage: in.SellerImage,
	}
	if err := s.plants.Create(ctx, plant); err != nil {
		return nil, err
	}
	return plant, nil
}

func (s *catalogService) Get(ctx context.Context, id uint64) (*model.Plant, error) {
	plant, err := s.plants.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return plant, nil
}

func (s *catalogService) List(ctx context.Context) ([]model.Plant, error) {
	return s.plants.List(ctx)
}

func (s *catalogService) ListBySeller(ctx context.Context, email string) ([]model.Plant, error) {
	return s.plants.ListBySeller(ctx, email)
}

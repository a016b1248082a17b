package service

import (
	"context"
	"errors"
	"time"

	"github.com/NusratJahanNila/plantnet-backend/internal/model"
	"github.com/NusratJahanNila/plantnet-backend/internal/repository"
	"gorm.io/gorm"
)

var ErrAlreadyRequested = errors.New("already_requested")

type UpsertUserInput struct {
	Email    string
	Name     string
	ImageURL string
}

type UserService interface {
	// Upsert is the identity bootstrap: first sight of an email creates a
	// customer record, repeat logins only refresh last_logged_in.
	Upsert(ctx context.Context, in UpsertUserInput) (*model.User, error)
	Role(ctx context.Context, email string) (model.Role, error)
	RequestSeller(ctx context.Context, email string) (*model.SellerRequest, error)
	ListSellerRequests(ctx context.Context) ([]model.SellerRequest, error)
	ListUsersExcept(ctx context.Context, email string) ([]model.User, error)
	UpdateRole(ctx context.Context, email string, role model.Role) error
}

type userService struct {
	users    repository.UserRepository
	requests repository.SellerRequestRepository
}

func NewUserService(users repository.UserRepository, requests repository.SellerRequestRepository) UserService {
	return &userService{users: users, requests: requests}
}

func (s *userService) Upsert(ctx context.Context, in UpsertUserInput) (*model.User, error) {
	if in.Email == "" {
		return nil, errors.New("email is required")
	}

	user, err := s.users.FindByEmail(ctx, in.Email)
	if err == nil {
		if terr := s.users.TouchLastLogin(ctx, in.Email); terr != nil {
			return nil, terr
		}
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = &model.User{
		Email:        in.Email,
		Name:         in.Name,
		ImageURL:     in.ImageURL,
		Role:         model.RoleCustomer,
		LastLoggedIn: time.Now(),
	}
	if cerr := s.users.Create(ctx, user); cerr != nil {
		if errors.Is(cerr, gorm.ErrDuplicatedKey) {
			// Lost a first-login race; treat it as a repeat login.
			if terr := s.users.TouchLastLogin(ctx, in.Email); terr != nil {
				return nil, terr
			}
			return s.users.FindByEmail(ctx, in.Email)
		}
		return nil, cerr
	}
	return user, nil
}

func (s *userService) Role(ctx context.Context, email string) (model.Role, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return user.Role, nil
}

func (s *userService) RequestSeller(ctx context.Context, email string) (*model.SellerRequest, error) {
	req := &model.SellerRequest{Email: email}
	if err := s.requests.Create(ctx, req); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyRequested
		}
		return nil, err
	}
	return req, nil
}

func (s *userService) ListSellerRequests(ctx context.Context) ([]model.SellerRequest, error) {
	return s.requests.List(ctx)
}

func (s *userService) ListUsersExcept(ctx context.Context, email string) ([]model.User, error) {
	return s.users.ListExcept(ctx, email)
}

func (s *userService) UpdateRole(ctx context.Context, email string, role model.Role) error {
	if !model.ValidRole(role) {
		return errors.New("invalid role")
	}
	if err := s.users.UpdateRoleAndClearRequest(ctx, email, role); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

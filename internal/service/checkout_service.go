package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/NusratJahanNila/plantnet-backend/internal/model"
	"github.com/NusratJahanNila/plantnet-backend/internal/payment"
	"github.com/NusratJahanNila/plantnet-backend/internal/repository"
	"gorm.io/gorm"
)

var ErrPaymentIncomplete = errors.New("payment_incomplete")

type CheckoutInput struct {
	PlantID       string
	Name          string
	Description   string
	ImageURL      string
	Price         float64
	Quantity      int64
	CustomerEmail string
}

type PaymentResult struct {
	TransactionID string
	OrderID       uint64
}

type CheckoutService interface {
	// CreateSession opens a hosted-checkout session for a single plant and
	// returns the redirect URL.
	CreateSession(ctx context.Context, in CheckoutInput) (string, error)
	// CompletePayment finalizes the order for a checkout session. At most
	// one order exists per payment intent; resubmitting the same session
	// returns the already-created order.
	CompletePayment(ctx context.Context, sessionID string) (*PaymentResult, error)
}

type checkoutService struct {
	gateway      payment.Gateway
	plants       repository.PlantRepository
	orders       repository.OrderRepository
	clientDomain string
}

func NewCheckoutService(gateway payment.Gateway, plants repository.PlantRepository, orders repository.OrderRepository, clientDomain string) CheckoutService {
	return &checkoutService{gateway: gateway, plants: plants, orders: orders, clientDomain: clientDomain}
}

func (s *checkoutService) CreateSession(ctx context.Context, in CheckoutInput) (string, error) {
	if in.CustomerEmail == "" {
		return "", errors.New("customer email is required")
	}
	if in.Quantity <= 0 {
		in.Quantity = 1
	}
	sess, err := s.gateway.CreateSession(ctx, &payment.SessionRequest{
		PlantID:       in.PlantID,
		Name:          in.Name,
		Description:   in.Description,
		ImageURL:      in.ImageURL,
		Price:         in.Price,
		Quantity:      in.Quantity,
		CustomerEmail: in.CustomerEmail,
		SuccessURL:    fmt.Sprintf("%s/payment-success?session_id={CHECKOUT_SESSION_ID}", s.clientDomain),
		CancelURL:     fmt.Sprintf("%s/plant/%s", s.clientDomain, in.PlantID),
	})
	if err != nil {
		return "", err
	}
	return sess.URL, nil
}

func (s *checkoutService) CompletePayment(ctx context.Context, sessionID string) (*PaymentResult, error) {
	sess, err := s.gateway.RetrieveSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if sess.PaymentIntentID != "" {
		existing, err := s.orders.FindByTransactionID(ctx, sess.PaymentIntentID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return &PaymentResult{TransactionID: sess.PaymentIntentID, OrderID: existing.ID}, nil
		}
	}

	if sess.Status != payment.StatusComplete {
		return nil, ErrPaymentIncomplete
	}

	plantID, err := strconv.ParseUint(sess.PlantID, 10, 64)
	if err != nil {
		return nil, ErrNotFound
	}
	plant, err := s.plants.FindByID(ctx, plantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	order := &model.Order{
		PlantID:       plant.ID,
		TransactionID: sess.PaymentIntentID,
		CustomerEmail: sess.CustomerEmail,
		SellerName:    plant.SellerName,
		SellerEmail:   plant.SellerEmail,
		SellerImage:   plant.SellerImage,
		Name:          plant.Name,
		ImageURL:      plant.ImageURL,
		Category:      plant.Category,
		Status:        model.OrderStatusPending,
		Quantity:      1,
		Price:         float64(sess.AmountTotal) / 100,
	}
	if err := s.orders.CreateWithInventory(ctx, order); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a race against a concurrent submission of the same
			// session; the unique index on transaction_id guarantees a
			// single winner. Return its order.
			winner, ferr := s.orders.FindByTransactionID(ctx, sess.PaymentIntentID)
			if ferr == nil && winner != nil {
				return &PaymentResult{TransactionID: sess.PaymentIntentID, OrderID: winner.ID}, nil
			}
		}
		return nil, err
	}
	return &PaymentResult{TransactionID: sess.PaymentIntentID, OrderID: order.ID}, nil
}

package handler

import (
	"net/http"
	"time"

	"github.com/NusratJahanNila/plantnet-backend/internal/middleware"
	"github.com/NusratJahanNila/plantnet-backend/internal/model"
	"github.com/NusratJahanNila/plantnet-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	svc service.OrderService
}

func NewOrderHandler(svc service.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

type OrderResponse struct {
	ID            uint64        `json:"id"`
	PlantID       uint64        `json:"plantId"`
	TransactionID string        `json:"transactionId"`
	Customer      string        `json:"customer"`
	Seller        SellerPayload `json:"seller"`
	Name          string        `json:"name"`
	Image         string        `json:"image"`
	Category      string        `json:"category"`
	Status        string        `json:"status"`
	Quantity      int           `json:"quantity"`
	Price         float64       `json:"price"`
	CreatedAt     string        `json:"createdAt"`
}

// ListMine returns the verified caller's orders. The customer filter comes
// from the token email set by the auth middleware, never from a parameter.
func (h *OrderHandler) ListMine(c echo.Context) error {
	email, _ := c.Get(middleware.EmailKey).(string)
	if email == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing verified email"))
	}
	orders, err := h.svc.ListByCustomer(c.Request().Context(), email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch orders"))
	}
	return c.JSON(http.StatusOK, toOrderResponses(orders))
}

// ListManaged returns the orders received by the seller in the path.
func (h *OrderHandler) ListManaged(c echo.Context) error {
	email := c.Param("email")
	orders, err := h.svc.ListBySeller(c.Request().Context(), email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch orders"))
	}
	return c.JSON(http.StatusOK, toOrderResponses(orders))
}

func toOrderResponse(o *model.Order) OrderResponse {
	return OrderResponse{
		ID:            o.ID,
		PlantID:       o.PlantID,
		TransactionID: o.TransactionID,
		Customer:      o.CustomerEmail,
		Seller: SellerPayload{
			Name:  o.SellerName,
			Email: o.SellerEmail,
			Image: o.SellerImage,
		},
		Name:      o.Name,
		Image:     o.ImageURL,
		Category:  o.Category,
		Status:    string(o.Status),
		Quantity:  o.Quantity,
		Price:     o.Price,
		CreatedAt: o.CreatedAt.Format(time.RFC3339),
	}
}

func toOrderResponses(orders []model.Order) []OrderResponse {
	resp := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		resp = append(resp, toOrderResponse(&orders[i]))
	}
	return resp
}

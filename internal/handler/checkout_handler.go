package handler

import (
	"net/http"
	"strconv"

	"github.com/NusratJahanNila/plantnet-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type CheckoutHandler struct {
	svc service.CheckoutService
}

func NewCheckoutHandler(svc service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{svc: svc}
}

type CreateCheckoutSessionRequest struct {
	PlantID     uint64  `json:"plantId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
	Quantity    int64   `json:"quantity"`
	Customer    struct {
		Email string `json:"email"`
	} `json:"customer"`
}

type CreateCheckoutSessionResponse struct {
	URL string `json:"url"`
}

func (h *CheckoutHandler) CreateSession(c echo.Context) error {
	var req CreateCheckoutSessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	url, err := h.svc.CreateSession(c.Request().Context(), service.CheckoutInput{
		PlantID:       strconv.FormatUint(req.PlantID, 10),
		Name:          req.Name,
		Description:   req.Description,
		ImageURL:      req.Image,
		Price:         req.Price,
		Quantity:      req.Quantity,
		CustomerEmail: req.Customer.Email,
	})
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
	}
	return c.JSON(http.StatusOK, CreateCheckoutSessionResponse{URL: url})
}

type PaymentSuccessRequest struct {
	SessionID string `json:"sessionId"`
}

type PaymentSuccessResponse struct {
	TransactionID string `json:"transactionId"`
	OrderID       uint64 `json:"orderId"`
}

func (h *CheckoutHandler) PaymentSuccess(c echo.Context) error {
	var req PaymentSuccessRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if req.SessionID == "" {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "sessionId is required"))
	}
	result, err := h.svc.CompletePayment(c.Request().Context(), req.SessionID)
	if err != nil {
		switch err {
		case service.ErrNotFound:
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "plant not found"))
		case service.ErrPaymentIncomplete:
			return c.JSON(http.StatusConflict, NewErrorResponse("payment_incomplete", "checkout session is not complete"))
		default:
			return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to finalize payment"))
		}
	}
	return c.JSON(http.StatusOK, PaymentSuccessResponse{
		TransactionID: result.TransactionID,
		OrderID:       result.OrderID,
	})
}

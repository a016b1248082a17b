package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/NusratJahanNila/plantnet-backend/internal/model"
	"github.com/NusratJahanNila/plantnet-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type PlantHandler struct {
	svc service.CatalogService
}

func NewPlantHandler(svc service.CatalogService) *PlantHandler {
	return &PlantHandler{svc: svc}
}

type SellerPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image"`
}

type PlantResponse struct {
	ID          uint64        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	Price       float64       `json:"price"`
	Quantity    int           `json:"quantity"`
	Image       string        `json:"image"`
	Seller      SellerPayload `json:"seller"`
	CreatedAt   string        `json:"createdAt"`
	UpdatedAt   string        `json:"updatedAt"`
}

type CreatePlantRequest struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	Price       float64       `json:"price"`
	Quantity    int           `json:"quantity"`
	Image       string        `json:"image"`
	Seller      SellerPayload `json:"seller"`
}

func (h *PlantHandler) Create(c echo.Context) error {
	var req CreatePlantRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	plant, err := h.svc.Create(c.Request().Context(), service.CreatePlantInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Quantity:    req.Quantity,
		ImageURL:    req.Image,
		SellerName:  req.Seller.Name,
		SellerEmail: req.Seller.Email,
		SellerImage: req.Seller.Image,
	})
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
	}
	return c.JSON(http.StatusCreated, toPlantResponse(plant))
}

func (h *PlantHandler) Get(c echo.Context) error {
	idParam := c.Param("id")
	id, err := strconv.ParseUint(idParam, 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid id"))
	}
	plant, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		if err == service.ErrNotFound {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "plant not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch plant"))
	}
	return c.JSON(http.StatusOK, toPlantResponse(plant))
}

func (h *PlantHandler) List(c echo.Context) error {
	plants, err := h.svc.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch plants"))
	}
	return c.JSON(http.StatusOK, toPlantResponses(plants))
}

// ListInventory returns the plants listed by the seller in the path. The
// role middleware has already checked the caller may read them.
func (h *PlantHandler) ListInventory(c echo.Context) error {
	email := c.Param("email")
	plants, err := h.svc.ListBySeller(c.Request().Context(), email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch inventory"))
	}
	return c.JSON(http.StatusOK, toPlantResponses(plants))
}

func toPlantResponse(plant *model.Plant) PlantResponse {
	return PlantResponse{
		ID:          plant.ID,
		Name:        plant.Name,
		Description: plant.Description,
		Category:    plant.Category,
		Price:       plant.Price,
		Quantity:    plant.Quantity,
		Image:       plant.ImageURL,
		Seller: SellerPayload{
			Name:  plant.SellerName,
			Email: plant.SellerEmail,
			Image: plant.SellerImage,
		},
		CreatedAt: plant.CreatedAt.Format(time.RFC3339),
		UpdatedAt: plant.UpdatedAt.Format(time.RFC3339),
	}
}

func toPlantResponses(plants []model.Plant) []PlantResponse {
	resp := make([]PlantResponse, 0, len(plants))
	for i := range plants {
		resp = append(resp, toPlantResponse(&plants[i]))
	}
	return resp
}

package handler

import (
	"net/http"
	"time"

	"github.com/NusratJahanNila/plantnet-backend/internal/middleware"
	"github.com/NusratJahanNila/plantnet-backend/internal/model"
	"github.com/NusratJahanNila/plantnet-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

type UpsertUserRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

type UserResponse struct {
	ID           uint64 `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Image        string `json:"image"`
	Role         string `json:"role"`
	CreatedAt    string `json:"createdAt"`
	LastLoggedIn string `json:"lastLoggedIn"`
}

func (h *UserHandler) Upsert(c echo.Context) error {
	var req UpsertUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	user, err := h.svc.Upsert(c.Request().Context(), service.UpsertUserInput{
		Email:    req.Email,
		Name:     req.Name,
		ImageURL: req.Image,
	})
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

type RoleResponse struct {
	Role string `json:"role"`
}

func (h *UserHandler) Role(c echo.Context) error {
	email, _ := c.Get(middleware.EmailKey).(string)
	if email == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing verified email"))
	}
	role, err := h.svc.Role(c.Request().Context(), email)
	if err != nil {
		if err == service.ErrNotFound {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "user not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch role"))
	}
	return c.JSON(http.StatusOK, RoleResponse{Role: string(role)})
}

type SellerRequestResponse struct {
	ID        uint64 `json:"id"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

func (h *UserHandler) BecomeSeller(c echo.Context) error {
	email, _ := c.Get(middleware.EmailKey).(string)
	if email == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing verified email"))
	}
	req, err := h.svc.RequestSeller(c.Request().Context(), email)
	if err != nil {
		if err == service.ErrAlreadyRequested {
			return c.JSON(http.StatusConflict, NewErrorResponse("conflict", "already requested, please wait"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to save request"))
	}
	return c.JSON(http.StatusCreated, toSellerRequestResponse(req))
}

func (h *UserHandler) ListSellerRequests(c echo.Context) error {
	reqs, err := h.svc.ListSellerRequests(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch requests"))
	}
	resp := make([]SellerRequestResponse, 0, len(reqs))
	for i := range reqs {
		resp = append(resp, toSellerRequestResponse(&reqs[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// ListUsers returns every user except the calling admin.
func (h *UserHandler) ListUsers(c echo.Context) error {
	email, _ := c.Get(middleware.EmailKey).(string)
	users, err := h.svc.ListUsersExcept(c.Request().Context(), email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch users"))
	}
	resp := make([]UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, toUserResponse(&users[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

type UpdateRoleRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (h *UserHandler) UpdateRole(c echo.Context) error {
	var req UpdateRoleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if req.Email == "" {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "email is required"))
	}
	err := h.svc.UpdateRole(c.Request().Context(), req.Email, model.Role(req.Role))
	if err != nil {
		if err == service.ErrNotFound {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "user not found"))
		}
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
	}
	return c.JSON(http.StatusOK, map[string]string{"email": req.Email, "role": req.Role})
}

func toUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		Image:        u.ImageURL,
		Role:         string(u.Role),
		CreatedAt:    u.CreatedAt.Format(time.RFC3339),
		LastLoggedIn: u.LastLoggedIn.Format(time.RFC3339),
	}
}

func toSellerRequestResponse(r *model.SellerRequest) SellerRequestResponse {
	return SellerRequestResponse{
		ID:        r.ID,
		Email:     r.Email,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}

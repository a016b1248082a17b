package middleware

import (
	"errors"
	"net/http"

	"github.com/NusratJahanNila/plantnet-backend/internal/model"
	"github.com/NusratJahanNila/plantnet-backend/internal/repository"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// RoleMiddleware gates endpoints on the verified caller's stored role.
// Possession of a valid token is not enough for admin or seller-scoped
// routes.
type RoleMiddleware struct {
	users repository.UserRepository
}

func NewRoleMiddleware(users repository.UserRepository) *RoleMiddleware {
	return &RoleMiddleware{users: users}
}

func (m *RoleMiddleware) role(c echo.Context) (model.Role, error) {
	email, _ := c.Get(EmailKey).(string)
	if email == "" {
		return "", errors.New("missing verified email")
	}
	user, err := m.users.FindByEmail(c.Request().Context(), email)
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

// RequireAdmin runs after RequireAuth and rejects non-admin callers.
func (m *RoleMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		role, err := m.role(c)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal_error"})
		}
		if role != model.RoleAdmin {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
		}
		return next(c)
	}
}

// RequireSelfOrAdmin runs after RequireAuth on routes with an :email path
// parameter. The caller must be reading their own slice of data unless
// they are an admin.
func (m *RoleMiddleware) RequireSelfOrAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		email, _ := c.Get(EmailKey).(string)
		if email != "" && email == c.Param("email") {
			return next(c)
		}
		role, err := m.role(c)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal_error"})
		}
		if role != model.RoleAdmin {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
		}
		return next(c)
	}
}

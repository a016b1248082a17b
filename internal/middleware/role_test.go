package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NusratJahanNila/plantnet-backend/internal/model"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type stubUserRepo struct {
	users map[string]*model.User
}

func (s *stubUserRepo) Create(_ context.Context, _ *model.User) error { return nil }

func (s *stubUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	if u, ok := s.users[email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) TouchLastLogin(_ context.Context, _ string) error { return nil }

func (s *stubUserRepo) UpdateRoleAndClearRequest(_ context.Context, _ string, _ model.Role) error {
	return nil
}

func (s *stubUserRepo) ListExcept(_ context.Context, _ string) ([]model.User, error) {
	return nil, nil
}

func invoke(t *testing.T, mw echo.MiddlewareFunc, email, paramEmail string) (int, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if email != "" {
		c.Set(EmailKey, email)
	}
	if paramEmail != "" {
		c.SetParamNames("email")
		c.SetParamValues(paramEmail)
	}
	called := false
	next := func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	}
	if err := mw(next)(c); err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	return rec.Code, called
}

func TestRequireAdmin(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*model.User{
		"admin@example.com":    {Email: "admin@example.com", Role: model.RoleAdmin},
		"customer@example.com": {Email: "customer@example.com", Role: model.RoleCustomer},
	}}
	mw := NewRoleMiddleware(repo)

	tests := []struct {
		name       string
		email      string
		wantStatus int
		wantNext   bool
	}{
		{"admin passes", "admin@example.com", http.StatusOK, true},
		{"customer rejected", "customer@example.com", http.StatusForbidden, false},
		{"unknown user rejected", "ghost@example.com", http.StatusForbidden, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, called := invoke(t, mw.RequireAdmin, tt.email, "")
			if code != tt.wantStatus || called != tt.wantNext {
				t.Fatalf("code=%d called=%v, want %d/%v", code, called, tt.wantStatus, tt.wantNext)
			}
		})
	}
}

func TestRequireSelfOrAdmin(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*model.User{
		"admin@example.com":  {Email: "admin@example.com", Role: model.RoleAdmin},
		"seller@example.com": {Email: "seller@example.com", Role: model.RoleSeller},
	}}
	mw := NewRoleMiddleware(repo)

	tests := []struct {
		name       string
		email      string
		paramEmail string
		wantStatus int
		wantNext   bool
	}{
		{"self passes", "seller@example.com", "seller@example.com", http.StatusOK, true},
		{"admin reads others", "admin@example.com", "seller@example.com", http.StatusOK, true},
		{"other seller rejected", "seller@example.com", "victim@example.com", http.StatusForbidden, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, called := invoke(t, mw.RequireSelfOrAdmin, tt.email, tt.paramEmail)
			if code != tt.wantStatus || called != tt.wantNext {
				t.Fatalf("code=%d called=%v, want %d/%v", code, called, tt.wantStatus, tt.wantNext)
			}
		})
	}
}

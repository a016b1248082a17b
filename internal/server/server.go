package server

import (
	"net/http"
	"strings"

	"github.com/NusratJahanNila/plantnet-backend/internal/config"
	"github.com/NusratJahanNila/plantnet-backend/internal/handler"
	appmw "github.com/NusratJahanNila/plantnet-backend/internal/middleware"
	"github.com/NusratJahanNila/plantnet-backend/internal/payment"
	"github.com/NusratJahanNila/plantnet-backend/internal/repository"
	"github.com/NusratJahanNila/plantnet-backend/internal/service"
	"github.com/NusratJahanNila/plantnet-backend/internal/storage"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

type Server struct {
	e *echo.Echo
}

func New(db *gorm.DB, cfg *config.Config, authMw *appmw.AuthMiddleware, gateway payment.Gateway, uploader *storage.Uploader) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		AllowOriginFunc: func(origin string) (bool, error) {
			low := strings.ToLower(origin)
			if strings.HasPrefix(low, "http://localhost:") || strings.HasPrefix(low, "http://127.0.0.1:") ||
				strings.HasPrefix(low, "https://localhost:") || strings.HasPrefix(low, "https://127.0.0.1:") {
				return true, nil
			}
			return low == strings.ToLower(cfg.ClientDomain), nil
		},
	}))

	plantRepo := repository.NewPlantRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	userRepo := repository.NewUserRepository(db)
	requestRepo := repository.NewSellerRequestRepository(db)

	catalogSvc := service.NewCatalogService(plantRepo)
	checkoutSvc := service.NewCheckoutService(gateway, plantRepo, orderRepo, cfg.ClientDomain)
	orderSvc := service.NewOrderService(orderRepo)
	userSvc := service.NewUserService(userRepo, requestRepo)

	plantHandler := handler.NewPlantHandler(catalogSvc)
	checkoutHandler := handler.NewCheckoutHandler(checkoutSvc)
	orderHandler := handler.NewOrderHandler(orderSvc)
	userHandler := handler.NewUserHandler(userSvc)

	roleMw := appmw.NewRoleMiddleware(userRepo)

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "PlantNet Server is running..")
	})
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"ok": "true"})
	})

	e.POST("/plants", plantHandler.Create)
	e.GET("/plants", plantHandler.List)
	e.GET("/plants/:id", plantHandler.Get)

	e.POST("/create-checkout-session", checkoutHandler.CreateSession)
	e.POST("/payment-success", checkoutHandler.PaymentSuccess)

	e.GET("/my-orders", orderHandler.ListMine, authMw.RequireAuth)
	e.GET("/manage-orders/:email", orderHandler.ListManaged, authMw.RequireAuth, roleMw.RequireSelfOrAdmin)
	e.GET("/my-inventory/:email", plantHandler.ListInventory, authMw.RequireAuth, roleMw.RequireSelfOrAdmin)

	e.POST("/user", userHandler.Upsert)
	e.GET("/user/role", userHandler.Role, authMw.RequireAuth)
	e.POST("/become-seller", userHandler.BecomeSeller, authMw.RequireAuth)
	e.GET("/seller-requests", userHandler.ListSellerRequests, authMw.RequireAuth, roleMw.RequireAdmin)
	e.GET("/users", userHandler.ListUsers, authMw.RequireAuth, roleMw.RequireAdmin)
	e.PATCH("/update-role", userHandler.UpdateRole, authMw.RequireAuth, roleMw.RequireAdmin)

	if uploader != nil {
		imageHandler := handler.NewImageHandler(uploader)
		e.POST("/images", imageHandler.Upload, authMw.RequireAuth)
	}

	return &Server{e: e}
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}

// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"market/internal/delivery/http/middleware"
	"market/internal/delivery/http/router/handler"
	"market/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	UserAdminHandler *handler.UserAdminHandler
	StatsHandler     *handler.StatsHandler
	ProductHandler   *handler.ProductHandler
	CategoryHandler  *handler.CategoryHandler
	OrderHandler     *handler.OrderHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	userAdminHandler *handler.UserAdminHandler
	statsHandler     *handler.StatsHandler
	productHandler   *handler.ProductHandler
	categoryHandler  *handler.CategoryHandler
	orderHandler     *handler.OrderHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		userAdminHandler: params.UserAdminHandler,
		statsHandler:     params.StatsHandler,
		productHandler:   params.ProductHandler,
		categoryHandler:  params.CategoryHandler,
		orderHandler:     params.OrderHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	protect := r.authMiddleware.Authenticate

	auth := api.Group("/auth")
	{
		auth.POST("/register", r.authHandler.Register)
		auth.POST("/login", r.authHandler.Login)
		auth.POST("/forgot-password", r.authHandler.ForgotPassword)
		auth.POST("/reset-password", r.authHandler.ResetPassword)

		auth.GET("/me", r.authHandler.GetMe, protect)
		auth.PUT("/profile", r.authHandler.UpdateProfile, protect)
		auth.PUT("/password", r.authHandler.UpdatePassword, protect)
		auth.POST("/addresses", r.authHandler.AddAddress, protect)
		auth.POST("/fcm-token", r.authHandler.UpdateFCMToken, protect)
	}

	admin := api.Group("/admin", protect, r.authMiddleware.Authorize(entity.RoleAdmin))
	{
		admin.GET("/stats", r.statsHandler.GetStats)

		admin.GET("/users", r.userAdminHandler.ListUsers)
		admin.POST("/users", r.userAdminHandler.CreateUser)
		admin.GET("/users/:id", r.userAdminHandler.GetUser)
		admin.PUT("/users/:id", r.userAdminHandler.UpdateUser)
		admin.DELETE("/users/:id", r.userAdminHandler.DeleteUser)
		admin.PUT("/users/:id/toggle-status", r.userAdminHandler.ToggleUserStatus)

		admin.GET("/merchants", r.userAdminHandler.ListMerchants)
		admin.PUT("/merchants/:id/approve", r.userAdminHandler.ApproveMerchant)
		admin.PUT("/merchants/:id/reject", r.userAdminHandler.RejectMerchant)
		admin.GET("/delivery", r.userAdminHandler.ListDeliveryUsers)

		admin.GET("/products", r.productHandler.AdminList)
		admin.POST("/products", r.productHandler.AdminCreate)
		admin.GET("/products/:id", r.productHandler.AdminGet)
		admin.PUT("/products/:id", r.productHandler.AdminUpdate)
		admin.DELETE("/products/:id", r.productHandler.AdminDelete)
		admin.PUT("/products/:id/approve", r.productHandler.Approve)
		admin.PUT("/products/:id/reject", r.productHandler.Reject)

		admin.GET("/categories", r.categoryHandler.AdminList)
		admin.POST("/categories", r.categoryHandler.Create)
		admin.GET("/categories/:id", r.categoryHandler.Get)
		admin.PUT("/categories/:id", r.categoryHandler.Update)
		admin.DELETE("/categories/:id", r.categoryHandler.Delete)
		admin.PUT("/categories/:id/toggle-status", r.categoryHandler.ToggleStatus)

		admin.GET("/orders", r.orderHandler.AdminList)
		admin.GET("/orders/:id", r.orderHandler.AdminGet)
		admin.PUT("/orders/:id/status", r.orderHandler.AdminUpdateStatus)
	}

	products := api.Group("/products")
	{
		products.GET("", r.productHandler.PublicList)
		products.GET("/:id", r.productHandler.PublicGet)

		// Static segments win over /:id, so "merchant" is never read as a product ID.
		merchant := products.Group("/merchant", protect, r.authMiddleware.Authorize(entity.RoleMerchant))
		merchant.GET("/my-products", r.productHandler.MerchantList)
		merchant.POST("", r.productHandler.MerchantCreate)
		merchant.PUT("/:id", r.productHandler.MerchantUpdate)
		merchant.DELETE("/:id", r.productHandler.MerchantDelete)
	}

	categories := api.Group("/categories")
	{
		categories.GET("", r.categoryHandler.PublicList)
		categories.GET("/:id", r.categoryHandler.Get)
	}

	orders := api.Group("/orders", protect, r.authMiddleware.Authorize(entity.RoleClient))
	{
		orders.POST("", r.orderHandler.Place)
		orders.GET("", r.orderHandler.ListMine)
		orders.GET("/:id", r.orderHandler.GetMine)
		orders.PUT("/:id/cancel", r.orderHandler.CancelMine)
	}
}

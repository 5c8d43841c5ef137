// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"kalado/internal/delivery/http/middleware"
	"kalado/internal/delivery/http/router/handler"
	"kalado/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProductHandler *handler.ProductHandler
	UserHandler    *handler.UserHandler
	ReportHandler  *handler.ReportHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	productHandler *handler.ProductHandler
	userHandler    *handler.UserHandler
	reportHandler  *handler.ReportHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		productHandler: params.ProductHandler,
		userHandler:    params.UserHandler,
		reportHandler:  params.ReportHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Account and token routes. The verification and reset endpoints stay
	// public; a user locked out of their account has no token to present.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/verify", r.authHandler.VerifyEmail)
		authGroup.POST("/verify/send", r.authHandler.SendVerification)
		authGroup.POST("/forgot-password", r.authHandler.ForgotPassword)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)
		// Validate answers {valid:false} instead of erroring, so it cannot
		// sit behind the auth middleware.
		authGroup.GET("/validate", r.authHandler.Validate)
	}

	authedAuthGroup := e.Group("/auth")
	authedAuthGroup.Use(r.authMiddleware.Authenticate)
	{
		authedAuthGroup.POST("/logout", r.authHandler.Logout)
		authedAuthGroup.PUT("/password", r.authHandler.UpdatePassword)
	}

	godGroup := e.Group("/auth")
	godGroup.Use(r.authMiddleware.Authenticate)
	godGroup.Use(r.authMiddleware.RequireRole(entity.RoleGod))
	{
		godGroup.PUT("/role", r.authHandler.UpdateRole)
	}

	// Catalog reads are public. The full listing also feeds the search
	// worker's reconciliation pass.
	productGroup := e.Group("/api/v1/products")
	{
		productGroup.GET("", r.productHandler.GetAll)
		productGroup.GET("/:id", r.productHandler.Get)
		productGroup.GET("/seller/:sellerId", r.productHandler.GetBySeller)
		productGroup.GET("/category/:category", r.productHandler.GetByCategory)
	}

	productWriteGroup := e.Group("/api/v1/products")
	productWriteGroup.Use(r.authMiddleware.Authenticate)
	{
		productWriteGroup.POST("", r.productHandler.Create)
		productWriteGroup.PUT("/:id", r.productHandler.Update)
		productWriteGroup.PATCH("/:id/status", r.productHandler.UpdateStatus)
		productWriteGroup.DELETE("/:id", r.productHandler.Delete)
	}

	userGroup := e.Group("/api/v1/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/me", r.userHandler.GetMyProfile)
		userGroup.PUT("/me", r.userHandler.UpdateMyProfile)
		userGroup.GET("/:id/profile", r.userHandler.GetProfile)
	}

	userAdminGroup := e.Group("/api/v1/users")
	userAdminGroup.Use(r.authMiddleware.Authenticate)
	userAdminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin, entity.RoleGod))
	{
		userAdminGroup.POST("/:id/block", r.userHandler.BlockUser)
	}

	reportGroup := e.Group("/api/v1/reports")
	reportGroup.Use(r.authMiddleware.Authenticate)
	{
		reportGroup.POST("", r.reportHandler.Submit)
		reportGroup.GET("/mine", r.reportHandler.GetMine)
	}

	reportAdminGroup := e.Group("/api/v1/reports")
	reportAdminGroup.Use(r.authMiddleware.Authenticate)
	reportAdminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin, entity.RoleGod))
	{
		reportAdminGroup.GET("", r.reportHandler.GetByStatus)
		reportAdminGroup.GET("/:id", r.reportHandler.Get)
		reportAdminGroup.PUT("/:id", r.reportHandler.Resolve)
	}
}

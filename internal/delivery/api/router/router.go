// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"eventhub/internal/delivery/api/middleware"
	"eventhub/internal/delivery/api/router/handler"
	"eventhub/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler            *handler.AuthHandler
	LoveDecorationHandler  *handler.LoveDecorationHandler
	PartnerSupplierHandler *handler.PartnerSupplierHandler
	ProfessionHandler      *handler.ProfessionHandler
	WebhookHandler         *handler.WebhookHandler
	AuthMiddleware         *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler            *handler.AuthHandler
	loveDecorationHandler  *handler.LoveDecorationHandler
	partnerSupplierHandler *handler.PartnerSupplierHandler
	professionHandler      *handler.ProfessionHandler
	webhookHandler         *handler.WebhookHandler
	authMiddleware         *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:            params.AuthHandler,
		loveDecorationHandler:  params.LoveDecorationHandler,
		partnerSupplierHandler: params.PartnerSupplierHandler,
		professionHandler:      params.ProfessionHandler,
		webhookHandler:         params.WebhookHandler,
		authMiddleware:         params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authenticated := r.authMiddleware.Authenticate
	adminOnly := r.authMiddleware.RequireRole(entity.RoleAdmin)

	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me, authenticated)
	}

	loveDecorations := e.Group("/love-decorations")
	{
		loveDecorations.POST("", r.loveDecorationHandler.Create)
		loveDecorations.GET("", r.loveDecorationHandler.FindAll)
		loveDecorations.GET("/:id", r.loveDecorationHandler.FindOne)
		loveDecorations.PATCH("/:id", r.loveDecorationHandler.Update, authenticated)
	}

	partnerSuppliers := e.Group("/partner-suppliers")
	{
		partnerSuppliers.POST("", r.partnerSupplierHandler.Create)
		partnerSuppliers.GET("", r.partnerSupplierHandler.FindAll)
		partnerSuppliers.GET("/:id", r.partnerSupplierHandler.FindOne)
		partnerSuppliers.PATCH("/:id", r.partnerSupplierHandler.Update, authenticated)
		partnerSuppliers.PATCH("/:id/status", r.partnerSupplierHandler.UpdateStatus, authenticated, adminOnly)
		partnerSuppliers.GET("/:id/subscription", r.partnerSupplierHandler.Subscription, authenticated)
	}

	professions := e.Group("/professions")
	{
		professions.GET("", r.professionHandler.FindAll)
		professions.GET("/:id", r.professionHandler.FindOne)
		professions.POST("", r.professionHandler.Create, authenticated, adminOnly)
		professions.PATCH("/:id", r.professionHandler.Update, authenticated, adminOnly)
		professions.DELETE("/:id", r.professionHandler.Delete, authenticated, adminOnly)
	}

	webhooks := e.Group("/webhooks")
	{
		webhooks.POST("/stripe", r.webhookHandler.Stripe)
	}
}

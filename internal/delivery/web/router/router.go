// Package router contains routing for the web delivery.
package router

import (
	"redcolabora/internal/delivery/web/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PageHandler     *handler.PageHandler
	SearchHandler   *handler.SearchHandler
	BusinessHandler *handler.BusinessHandler
	AccountHandler  *handler.AccountHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	pageHandler     *handler.PageHandler
	searchHandler   *handler.SearchHandler
	businessHandler *handler.BusinessHandler
	accountHandler  *handler.AccountHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		pageHandler:     params.PageHandler,
		searchHandler:   params.SearchHandler,
		businessHandler: params.BusinessHandler,
		accountHandler:  params.AccountHandler,
	}
}

// RegisterRoutes sets up all the routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	e.GET("/", r.pageHandler.Home)
	e.GET("/dashboard", r.pageHandler.Dashboard)
	e.GET("/profile", r.pageHandler.Profile)

	e.GET("/search", r.searchHandler.Page)

	apiGroup := e.Group("/api")
	{
		apiGroup.GET("/businesses/search", r.searchHandler.API)
	}

	businessGroup := e.Group("/business/:id")
	{
		businessGroup.GET("", r.businessHandler.Detail)
		businessGroup.GET("/qr", r.businessHandler.QRCode)
		businessGroup.POST("/recommendation", r.businessHandler.ToggleRecommendation)
		businessGroup.POST("/reviews", r.businessHandler.SubmitReview)
		businessGroup.POST("/edit", r.businessHandler.Edit)
	}

	// Account routes
	e.GET("/login", r.accountHandler.LoginPage)
	e.POST("/login", r.accountHandler.Login)
	e.POST("/login/resend", r.accountHandler.ResendConfirmation)
	e.GET("/register", r.accountHandler.RegisterPage)
	e.POST("/register", r.accountHandler.Register)
	e.GET("/register/success", r.accountHandler.RegisterSuccess)
	e.POST("/logout", r.accountHandler.Logout)
}

// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"munch/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	ProfileHandler *handler.ProfileHandler
	MenuHandler    *handler.MenuHandler
	CartHandler    *handler.CartHandler
	OrderHandler   *handler.OrderHandler
	SupportHandler *handler.SupportHandler
	MetaHandler    *handler.MetaHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	profileHandler *handler.ProfileHandler
	menuHandler    *handler.MenuHandler
	cartHandler    *handler.CartHandler
	orderHandler   *handler.OrderHandler
	supportHandler *handler.SupportHandler
	metaHandler    *handler.MetaHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		profileHandler: params.ProfileHandler,
		menuHandler:    params.MenuHandler,
		cartHandler:    params.CartHandler,
		orderHandler:   params.OrderHandler,
		supportHandler: params.SupportHandler,
		metaHandler:    params.MetaHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Liveness and metadata
	e.GET("/status", r.metaHandler.Status)
	e.GET("/about", r.metaHandler.About)

	// Account and token flow
	e.POST("/register", r.accountHandler.Register)
	e.POST("/login", r.accountHandler.Login)
	e.GET("/me", r.accountHandler.Me)
	e.POST("/logout", r.accountHandler.Logout)

	// Profile directory and activity tracker
	e.GET("/profiles/summary", r.profileHandler.Summary)
	profileGroup := e.Group("/profile")
	{
		profileGroup.GET("/:email", r.profileHandler.Get)
		profileGroup.PUT("/:email", r.profileHandler.Update)
		profileGroup.DELETE("/:email", r.profileHandler.Delete)
		profileGroup.POST("/:email/login", r.profileHandler.RecordLogin)
		profileGroup.GET("/:email/activity", r.profileHandler.GetActivity)
	}

	// Catalogue views and ratings. Fixed routes go first so echo never
	// mistakes them for a :id parameter.
	menuGroup := e.Group("/menu")
	{
		menuGroup.GET("", r.menuHandler.List)
		menuGroup.GET("/vegetarian", r.menuHandler.Vegetarian)
		menuGroup.GET("/top-rated", r.menuHandler.TopRated)
		menuGroup.GET("/:id", r.menuHandler.GetDish)
		menuGroup.GET("/:id/ratings", r.menuHandler.ListRatings)
		menuGroup.POST("/:id/ratings", r.menuHandler.RateDish)
	}

	// Cart accumulation
	cartGroup := e.Group("/cart")
	{
		cartGroup.GET("/:email", r.cartHandler.GetCart)
		cartGroup.POST("/:email/:itemId", r.cartHandler.AddItem)
	}

	// Order engine
	ordersGroup := e.Group("/orders")
	{
		ordersGroup.GET("/summary", r.orderHandler.Summary)
		ordersGroup.POST("/:email", r.orderHandler.Checkout)
		ordersGroup.GET("/:email", r.orderHandler.ListForUser)
		ordersGroup.PUT("/:orderId/confirm", r.orderHandler.Confirm)
	}

	// Support desk
	e.POST("/support", r.supportHandler.Submit)
}

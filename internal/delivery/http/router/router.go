// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"loyalty/config"
	"loyalty/internal/delivery/http/middleware"
	"loyalty/internal/delivery/http/router/handler"
	"loyalty/internal/domain/authz"
	"loyalty/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler        *handler.UserHandler
	TransactionHandler *handler.TransactionHandler
	EventHandler       *handler.EventHandler
	PromotionHandler   *handler.PromotionHandler
	AuthMiddleware     *middleware.AuthMiddleware
	Metrics            *metrics.Metrics `optional:"true"`
	Config             *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler        *handler.UserHandler
	transactionHandler *handler.TransactionHandler
	eventHandler       *handler.EventHandler
	promotionHandler   *handler.PromotionHandler
	authMiddleware     *middleware.AuthMiddleware
	metrics            *metrics.Metrics
	config             *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:        params.UserHandler,
		transactionHandler: params.TransactionHandler,
		eventHandler:       params.EventHandler,
		promotionHandler:   params.PromotionHandler,
		authMiddleware:     params.AuthMiddleware,
		metrics:            params.Metrics,
		config:             params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	r.registerTransactionRoutes(e.Group("/transactions", r.authMiddleware.Authenticate))
	r.registerUserRoutes(e.Group("/users", r.authMiddleware.Authenticate))
	r.registerEventRoutes(e.Group("/events", r.authMiddleware.Authenticate))
	r.registerPromotionRoutes(e.Group("/promotions", r.authMiddleware.Authenticate))
}

// role returns the route guard for op.
func (r *router) role(op authz.Operation) echo.MiddlewareFunc {
	return r.authMiddleware.RequireRole(authz.MinRole(op))
}

func (r *router) registerTransactionRoutes(g *echo.Group) {
	h := r.transactionHandler

	// Adjustments need a manager; the handler checks that once the type is known.
	g.POST("", h.CreateTransaction, r.role(authz.OpCreatePurchase))
	g.GET("", h.ListTransactions, r.role(authz.OpListTransactions))
	g.GET("/:transactionId", h.GetTransaction, r.role(authz.OpGetTransaction))
	g.PATCH("/:transactionId/suspicious", h.SetSuspicious, r.role(authz.OpSetSuspicious))
	g.PATCH("/:transactionId/processed", h.ProcessRedemption, r.role(authz.OpProcessRedemption))
}

func (r *router) registerUserRoutes(g *echo.Group) {
	users := r.userHandler
	txs := r.transactionHandler

	g.POST("", users.RegisterUser, r.role(authz.OpRegisterUser))
	g.GET("", users.ListUsers, r.role(authz.OpListUsers))

	self := r.role(authz.OpSelfService)
	g.GET("/me", users.GetMe, self)
	g.PATCH("/me", users.UpdateMe, self)
	g.GET("/me/balance", users.GetBalance, self)
	g.POST("/me/transactions", txs.CreateRedemption, self)
	g.GET("/me/transactions", txs.ListMyTransactions, self)

	g.GET("/:userId", users.GetUser, r.role(authz.OpGetUser))
	g.PATCH("/:userId", users.UpdateUser, r.role(authz.OpUpdateUser))
	g.POST("/:userId/transactions", txs.CreateTransfer, self)
}

func (r *router) registerEventRoutes(g *echo.Group) {
	h := r.eventHandler
	view := r.role(authz.OpViewEvents)

	g.POST("", h.CreateEvent, r.role(authz.OpCreateEvent))
	g.GET("", h.ListEvents, view)
	g.GET("/:eventId", h.GetEvent, view)
	// Organizers may edit their own events; the usecase decides.
	g.PATCH("/:eventId", h.UpdateEvent, view)
	g.DELETE("/:eventId", h.DeleteEvent, r.role(authz.OpDeleteEvent))

	g.POST("/:eventId/organizers", h.AddOrganizer, r.role(authz.OpManageOrganizers))
	g.DELETE("/:eventId/organizers/:userId", h.RemoveOrganizer, r.role(authz.OpManageOrganizers))

	g.POST("/:eventId/guests/me", h.RSVP, view)
	g.DELETE("/:eventId/guests/me", h.CancelRSVP, view)
	g.POST("/:eventId/guests", h.AddGuest, view)
	g.DELETE("/:eventId/guests/:userId", h.RemoveGuest, r.role(authz.OpRemoveGuest))

	g.POST("/:eventId/transactions", h.AwardPoints, view)
}

func (r *router) registerPromotionRoutes(g *echo.Group) {
	h := r.promotionHandler
	manage := r.role(authz.OpManagePromotions)
	view := r.role(authz.OpViewPromotions)

	g.POST("", h.CreatePromotion, manage)
	g.GET("", h.ListPromotions, view)
	g.GET("/:promotionId", h.GetPromotion, view)
	g.PATCH("/:promotionId", h.UpdatePromotion, manage)
	g.DELETE("/:promotionId", h.DeletePromotion, manage)
}

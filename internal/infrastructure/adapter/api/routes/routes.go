package routes

import (
	coreport "github.com/parkspot-io/parkspot-api/internal/domain/port/core"
	"github.com/parkspot-io/parkspot-api/internal/infrastructure/adapter/api/handler"
	"github.com/parkspot-io/parkspot-api/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	userHandler *handler.UserHandler,
	slotHandler *handler.SlotHandler,
	reservationHandler *handler.ReservationHandler,
	transactionHandler *handler.TransactionHandler,
) {
	// Registration and balances
	router.POST("/register", userHandler.Register)
	router.GET("/user/:userId/balance", userHandler.GetBalance)

	// Slot registry
	slotRoutes := router.Group("/slots")
	{
		slotRoutes.POST("", slotHandler.Create)
		slotRoutes.GET("", slotHandler.ListNear)
		slotRoutes.GET("/available", slotHandler.ListAvailableNear)
	}

	// Reservations
	reservationRoutes := router.Group("/reservations")
	{
		reservationRoutes.POST("", reservationHandler.Reserve)
		reservationRoutes.DELETE("/:reservationId", reservationHandler.Cancel)
	}

	// Payment log
	router.GET("/transactions", transactionHandler.List)
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}

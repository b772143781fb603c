package routes

import (
	"github.com/gin-gonic/gin"

	"payment_sync/internal/adapter/http/handlers"
)

const (
	PathOrders = "/orders"
)

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, auth gin.HandlerFunc) {
	orders := rg.Group(PathOrders, auth)
	{
		// Platform hooks.
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/:code", orderHandler.GetOrder)
		orders.POST("/:code/cancel", orderHandler.CancelOrder)
		orders.POST("/:code/sync", orderHandler.SyncOrder)
	}
}

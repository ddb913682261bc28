package routes

import (
	"marketplace_escrow/internal/adapter/http/handlers"
	"marketplace_escrow/internal/adapter/http/middleware"
	"marketplace_escrow/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathNeeds    = "/needs"
	PathOffers   = "/offers"
	PathOrders   = "/orders"
	PathDisputes = "/disputes"
)

type marketplaceHandlers struct {
	needs    *handlers.NeedHandler
	offers   *handlers.OfferHandler
	orders   *handlers.OrderHandler
	disputes *handlers.DisputeHandler
}

func addMarketplaceRoutes(rg *gin.RouterGroup, h marketplaceHandlers) {
	needs := rg.Group(PathNeeds)
	{
		needs.POST("", h.needs.CreateNeed)
		needs.GET("", h.needs.ListNeeds)
		needs.GET("/mine", h.needs.ListMyNeeds)
		needs.GET("/:id", h.needs.GetNeed)
		needs.PATCH("/:id", h.needs.UpdateNeed)
		needs.DELETE("/:id", h.needs.DeleteNeed)
		needs.GET("/:id/offers", h.offers.ListNeedOffers)
	}

	offers := rg.Group(PathOffers)
	{
		offers.POST("", h.offers.CreateOffer)
		offers.GET("/sent", h.offers.ListSentOffers)
		offers.GET("/:id", h.offers.GetOffer)
		offers.POST("/:id/accept", h.offers.AcceptOffer)
		offers.POST("/:id/decline", h.offers.DeclineOffer)
		offers.POST("/:id/counter", h.offers.CounterOffer)
	}

	orders := rg.Group(PathOrders)
	{
		orders.POST("", h.orders.CreateOrder)
		orders.GET("", h.orders.ListMyOrders)
		orders.GET("/:id", h.orders.GetOrder)
		orders.PATCH("/:id/status", h.orders.UpdateOrderStatus)
		orders.POST("/:id/confirm-delivery", h.orders.ConfirmDelivery)
		orders.POST("/:id/disputes", h.disputes.CreateDispute)
		orders.GET("/:id/disputes", h.disputes.ListOrderDisputes)
	}

	disputes := rg.Group(PathDisputes)
	{
		disputes.POST("/:id/resolve", middleware.RequireRole(entities.RoleAdmin), h.disputes.ResolveDispute)
	}
}

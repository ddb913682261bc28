package handlers

import (
	"net/http"

	request "marketplace_escrow/internal/adapter/http/dto/request"
	response "marketplace_escrow/internal/adapter/http/dto/response"
	"marketplace_escrow/internal/adapter/http/middleware"
	"marketplace_escrow/internal/usecase"

	"github.com/gin-gonic/gin"
)

// OrderHandler handles escrow orders: payment, progress and delivery.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// CreateOrder godoc
// @Summary      Pay an accepted offer into escrow
// @Description  Replays return the existing order with 200 instead of charging again.
// @Tags         Orders
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        Idempotency-Key header string false "Client idempotency key"
// @Param        input body request.CreateOrderRequest true "Offer and payment method"
// @Success      201  {object}  map[string]interface{}
// @Success      200  {object}  map[string]interface{}
// @Failure      402  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidOrderPayload)
		return
	}

	input := payload.ToInput(c.GetHeader(request.IdempotencyKeyHeader))
	order, created, err := h.usecase.Create(c.Request.Context(), middleware.ActorFrom(c), input)
	if err != nil {
		writeError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"success": true, "order": response.FromOrder(order)})
}

// ListMyOrders godoc
// @Summary      Orders of the caller
// @Tags         Orders
// @Produce      json
// @Security     Bearer
// @Param        role query string false "buyer or seller; both when empty"
// @Success      200  {object}  map[string]interface{}
// @Router       /orders [get]
func (h *OrderHandler) ListMyOrders(c *gin.Context) {
	orders, err := h.usecase.ListMine(c.Request.Context(), middleware.ActorFrom(c), c.Query("role"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "orders": response.FromOrders(orders)})
}

// GetOrder godoc
// @Summary      Get an order
// @Tags         Orders
// @Produce      json
// @Security     Bearer
// @Param        id path string true "Order id"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order": response.FromOrder(order)})
}

// UpdateOrderStatus godoc
// @Summary      Move an order forward or cancel it
// @Tags         Orders
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path string true "Order id"
// @Param        input body request.UpdateOrderStatusRequest true "Target status and note"
// @Success      200  {object}  map[string]interface{}
// @Failure      409  {object}  pkg.HTTPError
// @Router       /orders/{id}/status [patch]
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	var payload request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidOrderPayload)
		return
	}

	order, err := h.usecase.UpdateStatus(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"), payload.OrderStatus(), payload.Note)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order": response.FromOrder(order)})
}

// ConfirmDelivery godoc
// @Summary      Buyer confirms delivery and releases escrow
// @Tags         Orders
// @Produce      json
// @Security     Bearer
// @Param        id path string true "Order id"
// @Success      200  {object}  map[string]interface{}
// @Router       /orders/{id}/confirm-delivery [post]
func (h *OrderHandler) ConfirmDelivery(c *gin.Context) {
	order, err := h.usecase.ConfirmDelivery(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order": response.FromOrder(order)})
}

package handlers

import (
	"net/http"

	request "marketplace_escrow/internal/adapter/http/dto/request"
	response "marketplace_escrow/internal/adapter/http/dto/response"
	"marketplace_escrow/internal/adapter/http/middleware"
	"marketplace_escrow/internal/usecase"

	"github.com/gin-gonic/gin"
)

type DisputeHandler struct {
	usecase usecase.IDisputeUseCase
}

func NewDisputeHandler(uc usecase.IDisputeUseCase) *DisputeHandler {
	return &DisputeHandler{usecase: uc}
}

// CreateDispute godoc
// @Summary      Open a dispute on a delivered order
// @Tags         Disputes
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path string true "Order id"
// @Param        input body request.CreateDisputeRequest true "Reason"
// @Success      201  {object}  map[string]interface{}
// @Failure      409  {object}  pkg.HTTPError
// @Router       /orders/{id}/disputes [post]
func (h *DisputeHandler) CreateDispute(c *gin.Context) {
	var payload request.CreateDisputeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidDisputePayload)
		return
	}

	dispute, err := h.usecase.Create(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"), payload.Reason)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "dispute": response.FromDispute(dispute)})
}

// ListOrderDisputes godoc
// @Summary      Disputes raised on an order
// @Tags         Disputes
// @Produce      json
// @Security     Bearer
// @Param        id path string true "Order id"
// @Success      200  {object}  map[string]interface{}
// @Router       /orders/{id}/disputes [get]
func (h *DisputeHandler) ListOrderDisputes(c *gin.Context) {
	disputes, err := h.usecase.ListByOrderID(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "disputes": response.FromDisputes(disputes)})
}

// ResolveDispute godoc
// @Summary      Resolve a pending dispute (admin)
// @Tags         Disputes
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path string true "Dispute id"
// @Param        input body request.ResolveDisputeRequest true "release or refund"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  pkg.HTTPError
// @Router       /disputes/{id}/resolve [post]
func (h *DisputeHandler) ResolveDispute(c *gin.Context) {
	var payload request.ResolveDisputeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidDisputePayload)
		return
	}

	dispute, err := h.usecase.Resolve(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"), payload.DisputeOutcome(), payload.Resolution)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "dispute": response.FromDispute(dispute)})
}

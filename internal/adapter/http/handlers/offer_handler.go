package handlers

import (
	"context"
	"net/http"

	request "marketplace_escrow/internal/adapter/http/dto/request"
	response "marketplace_escrow/internal/adapter/http/dto/response"
	"marketplace_escrow/internal/adapter/http/middleware"
	"marketplace_escrow/internal/domain/entities"
	"marketplace_escrow/internal/usecase"

	"github.com/gin-gonic/gin"
)

// OfferHandler handles seller offers and the buyer/seller negotiation on them.
type OfferHandler struct {
	usecase usecase.IOfferUseCase
}

func NewOfferHandler(uc usecase.IOfferUseCase) *OfferHandler {
	return &OfferHandler{usecase: uc}
}

// CreateOffer godoc
// @Summary      Make an offer on an open need
// @Tags         Offers
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        input body request.CreateOfferRequest true "Offer details"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /offers [post]
func (h *OfferHandler) CreateOffer(c *gin.Context) {
	var payload request.CreateOfferRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidOfferPayload)
		return
	}

	offer, err := h.usecase.Create(c.Request.Context(), middleware.ActorFrom(c), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "offer": response.FromOffer(offer)})
}

// ListNeedOffers godoc
// @Summary      Offers on a need
// @Description  The need owner sees every offer; a seller sees only their own.
// @Tags         Offers
// @Produce      json
// @Security     Bearer
// @Param        id path string true "Need id"
// @Success      200  {object}  map[string]interface{}
// @Router       /needs/{id}/offers [get]
func (h *OfferHandler) ListNeedOffers(c *gin.Context) {
	offers, err := h.usecase.ListByNeedID(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "offers": response.FromOffers(offers)})
}

// ListSentOffers godoc
// @Summary      Offers made by the caller
// @Tags         Offers
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  map[string]interface{}
// @Router       /offers/sent [get]
func (h *OfferHandler) ListSentOffers(c *gin.Context) {
	offers, err := h.usecase.ListSent(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "offers": response.FromOffers(offers)})
}

// GetOffer godoc
// @Summary      Get an offer
// @Tags         Offers
// @Produce      json
// @Security     Bearer
// @Param        id path string true "Offer id"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  pkg.HTTPError
// @Router       /offers/{id} [get]
func (h *OfferHandler) GetOffer(c *gin.Context) {
	offer, err := h.usecase.GetByID(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "offer": response.FromOffer(offer)})
}

// AcceptOffer godoc
// @Summary      Accept a pending offer
// @Tags         Offers
// @Produce      json
// @Security     Bearer
// @Param        id path string true "Offer id"
// @Success      200  {object}  map[string]interface{}
// @Failure      409  {object}  pkg.HTTPError
// @Router       /offers/{id}/accept [post]
func (h *OfferHandler) AcceptOffer(c *gin.Context) {
	h.decide(c, h.usecase.Accept)
}

// DeclineOffer godoc
// @Summary      Decline a pending offer
// @Tags         Offers
// @Produce      json
// @Security     Bearer
// @Param        id path string true "Offer id"
// @Success      200  {object}  map[string]interface{}
// @Router       /offers/{id}/decline [post]
func (h *OfferHandler) DeclineOffer(c *gin.Context) {
	h.decide(c, h.usecase.Decline)
}

// CounterOffer godoc
// @Summary      Counter a pending offer with a lower amount
// @Tags         Offers
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path string true "Offer id"
// @Param        input body request.CounterOfferRequest true "Counter amount and message"
// @Success      201  {object}  map[string]interface{}
// @Router       /offers/{id}/counter [post]
func (h *OfferHandler) CounterOffer(c *gin.Context) {
	var payload request.CounterOfferRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidOfferPayload)
		return
	}

	counter, err := h.usecase.Counter(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"), payload.Amount, payload.Message)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "offer": response.FromOffer(counter)})
}

func (h *OfferHandler) decide(
	c *gin.Context,
	decision func(ctx context.Context, actor entities.Actor, id string) (entities.Offer, error),
) {
	offer, err := decision(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "offer": response.FromOffer(offer)})
}

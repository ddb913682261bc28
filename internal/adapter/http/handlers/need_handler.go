package handlers

import (
	"net/http"

	request "marketplace_escrow/internal/adapter/http/dto/request"
	response "marketplace_escrow/internal/adapter/http/dto/response"
	"marketplace_escrow/internal/adapter/http/middleware"
	"marketplace_escrow/internal/usecase"

	"github.com/gin-gonic/gin"
)

// NeedHandler handles HTTP requests for buyer needs.
type NeedHandler struct {
	usecase usecase.INeedUseCase
}

func NewNeedHandler(uc usecase.INeedUseCase) *NeedHandler {
	return &NeedHandler{usecase: uc}
}

// CreateNeed godoc
// @Summary      Post a need
// @Tags         Needs
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        input body request.CreateNeedRequest true "Need details"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  pkg.HTTPError
// @Router       /needs [post]
func (h *NeedHandler) CreateNeed(c *gin.Context) {
	var payload request.CreateNeedRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidNeedPayload)
		return
	}

	need, err := h.usecase.Create(c.Request.Context(), middleware.ActorFrom(c), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "need": response.FromNeed(need)})
}

// ListNeeds godoc
// @Summary      Browse needs
// @Tags         Needs
// @Produce      json
// @Security     Bearer
// @Param        status   query string false "Need status"
// @Param        category query string false "Category"
// @Param        search   query string false "Case-insensitive text in title or description"
// @Param        buyerId  query string false "Buyer id"
// @Success      200  {object}  map[string]interface{}
// @Router       /needs [get]
func (h *NeedHandler) ListNeeds(c *gin.Context) {
	var query request.NeedListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		writeAppError(c, errInvalidQuery)
		return
	}

	needs, err := h.usecase.List(c.Request.Context(), query.ToFilter())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "needs": response.FromNeeds(needs)})
}

// ListMyNeeds godoc
// @Summary      Needs posted by the caller
// @Tags         Needs
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  map[string]interface{}
// @Router       /needs/mine [get]
func (h *NeedHandler) ListMyNeeds(c *gin.Context) {
	needs, err := h.usecase.ListMine(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "needs": response.FromNeeds(needs)})
}

// GetNeed godoc
// @Summary      Get a need
// @Tags         Needs
// @Produce      json
// @Security     Bearer
// @Param        id path string true "Need id"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  pkg.HTTPError
// @Router       /needs/{id} [get]
func (h *NeedHandler) GetNeed(c *gin.Context) {
	need, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "need": response.FromNeed(need)})
}

// UpdateNeed godoc
// @Summary      Edit a need
// @Tags         Needs
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path string true "Need id"
// @Param        input body request.UpdateNeedRequest true "Fields to change"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /needs/{id} [patch]
func (h *NeedHandler) UpdateNeed(c *gin.Context) {
	var payload request.UpdateNeedRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidNeedPayload)
		return
	}

	need, err := h.usecase.Update(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"), payload.ToPatch())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "need": response.FromNeed(need)})
}

// DeleteNeed godoc
// @Summary      Delete an open need
// @Tags         Needs
// @Produce      json
// @Security     Bearer
// @Param        id path string true "Need id"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  pkg.HTTPError
// @Router       /needs/{id} [delete]
func (h *NeedHandler) DeleteNeed(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), middleware.ActorFrom(c), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Need deleted"})
}

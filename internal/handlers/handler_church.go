package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	portssvc "github.com/IpitingaJA/church_event_app/internal/core/ports/services"
	"github.com/IpitingaJA/church_event_app/internal/dto"
	"github.com/IpitingaJA/church_event_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// churchHandler handles HTTP requests related to churches. These routes are
// public so the inscription form can populate its church dropdown.
type churchHandler struct {
	churchService portssvc.ChurchSvcFacade
}

func newChurchHandler(cs portssvc.ChurchSvcFacade) *churchHandler {
	return &churchHandler{churchService: cs}
}

// registerChurchRoutes registers routes related to churches.
func registerChurchRoutes(rg *gin.RouterGroup, churchService portssvc.ChurchSvcFacade) {
	h := newChurchHandler(churchService)

	churches := rg.Group("/igrejas")
	{
		churches.POST("", h.createChurch)
		churches.GET("", h.listChurches)
		churches.GET("/:id", h.getChurch)
		churches.PUT("/:id", h.updateChurch)
		churches.DELETE("/:id", h.deleteChurch)
	}
}

// createChurch godoc
// @Summary Create a new church
// @Tags igrejas
// @Accept json
// @Produce json
// @Param church body dto.CreateChurchRequest true "Church details"
// @Success 201 {object} dto.ChurchResponse
// @Failure 400 {object} ErrorResponse "O campo nome é obrigatório"
// @Router /api/igrejas [post]
func (h *churchHandler) createChurch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateChurchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "O campo nome é obrigatório"})
		return
	}
	if strings.TrimSpace(req.Nome) == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "O campo nome é obrigatório"})
		return
	}

	church, err := h.churchService.CreateChurch(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Erro ao criar igreja")
		return
	}

	logger.Info("Church created", slog.String("church_id", church.ChurchID))
	c.JSON(http.StatusCreated, dto.ToChurchResponse(church))
}

// listChurches godoc
// @Summary List all churches
// @Tags igrejas
// @Produce json
// @Success 200 {array} dto.ChurchResponse
// @Router /api/igrejas [get]
func (h *churchHandler) listChurches(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	churches, err := h.churchService.ListChurches(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Erro ao listar igrejas")
		return
	}

	c.JSON(http.StatusOK, dto.ToChurchResponses(churches))
}

// getChurch godoc
// @Summary Get a church by ID
// @Tags igrejas
// @Produce json
// @Param id path string true "Church ID"
// @Success 200 {object} dto.ChurchResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/igrejas/{id} [get]
func (h *churchHandler) getChurch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	church, err := h.churchService.GetChurchByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Erro ao buscar igreja")
		return
	}

	c.JSON(http.StatusOK, dto.ToChurchResponse(church))
}

// updateChurch godoc
// @Summary Update a church
// @Tags igrejas
// @Accept json
// @Produce json
// @Param id path string true "Church ID"
// @Param church body dto.UpdateChurchRequest true "Fields to update"
// @Success 200 {object} dto.ChurchResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/igrejas/{id} [put]
func (h *churchHandler) updateChurch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateChurchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "O campo nome é obrigatório"})
		return
	}

	church, err := h.churchService.UpdateChurch(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, logger, err, "Erro ao atualizar igreja")
		return
	}

	c.JSON(http.StatusOK, dto.ToChurchResponse(church))
}

// deleteChurch godoc
// @Summary Delete a church
// @Tags igrejas
// @Produce json
// @Param id path string true "Church ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse
// @Router /api/igrejas/{id} [delete]
func (h *churchHandler) deleteChurch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.churchService.DeleteChurch(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, logger, err, "Erro ao excluir igreja")
		return
	}

	logger.Info("Church deleted", slog.String("church_id", c.Param("id")))
	c.JSON(http.StatusOK, gin.H{"message": "Igreja excluída com sucesso"})
}

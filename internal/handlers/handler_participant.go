package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	portsrepo "github.com/IpitingaJA/church_event_app/internal/core/ports/repositories"
	portssvc "github.com/IpitingaJA/church_event_app/internal/core/ports/services"
	"github.com/IpitingaJA/church_event_app/internal/dto"
	"github.com/IpitingaJA/church_event_app/internal/middleware"
	"github.com/IpitingaJA/church_event_app/internal/pdf"
	"github.com/gin-gonic/gin"
)

// participantHandler handles HTTP requests related to participants.
type participantHandler struct {
	participantService portssvc.ParticipantSvcFacade
}

func newParticipantHandler(ps portssvc.ParticipantSvcFacade) *participantHandler {
	return &participantHandler{participantService: ps}
}

// registerPublicParticipantRoutes registers the unauthenticated inscription
// endpoint used by the public registration form.
func registerPublicParticipantRoutes(rg *gin.RouterGroup, participantService portssvc.ParticipantSvcFacade) {
	h := newParticipantHandler(participantService)
	rg.POST("/participantes/inscricao", h.inscricao)
}

// registerParticipantRoutes registers the authenticated participant routes.
func registerParticipantRoutes(rg *gin.RouterGroup, participantService portssvc.ParticipantSvcFacade) {
	h := newParticipantHandler(participantService)

	participants := rg.Group("/participantes")
	{
		participants.POST("", h.createParticipant)
		participants.GET("", h.listParticipants)
		participants.GET("/pdf", h.exportPDF)
		participants.GET("/:id_participante", h.getParticipant)
		participants.PUT("/:id_participante", h.updateParticipant)
		participants.DELETE("/:id_participante", h.deleteParticipant)
		participants.PUT("/:id_participante/confirmar-pagamento", h.confirmarPagamento)
		participants.PUT("/:id_participante/cancelar-confirmacao", h.cancelarConfirmacao)
	}
}

// inscricao godoc
// @Summary Public participant registration
// @Description Registers a participant without authentication and sends a confirmation email.
// @Tags participantes
// @Accept json
// @Produce json
// @Param participant body dto.CreateParticipantRequest true "Participant details"
// @Success 201 {object} dto.ParticipantResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Router /api/participantes/inscricao [post]
func (h *participantHandler) inscricao(c *gin.Context) {
	h.create(c, nil)
}

// createParticipant godoc
// @Summary Create a participant
// @Description Registers a participant owned by the authenticated user.
// @Tags participantes
// @Accept json
// @Produce json
// @Param participant body dto.CreateParticipantRequest true "Participant details"
// @Success 201 {object} dto.ParticipantResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/participantes [post]
func (h *participantHandler) createParticipant(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Não autorizado"})
		return
	}
	h.create(c, &userID)
}

func (h *participantHandler) create(c *gin.Context, usuarioID *string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for participant creation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Todos os campos são obrigatórios"})
		return
	}

	participant, err := h.participantService.CreateParticipant(c.Request.Context(), req, usuarioID)
	if err != nil {
		respondError(c, logger, err, "Erro ao cadastrar participante")
		return
	}

	logger.Info("Participant created", slog.String("codigo", participant.Codigo))
	c.JSON(http.StatusCreated, dto.ToParticipantResponse(participant))
}

// listParticipants godoc
// @Summary List participants
// @Description Lists participants, optionally filtered by church name.
// @Tags participantes
// @Produce json
// @Param igreja query string false "Church name filter"
// @Success 200 {array} dto.ParticipantResponse
// @Security BearerAuth
// @Router /api/participantes [get]
func (h *participantHandler) listParticipants(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListParticipantsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Parâmetros inválidos"})
		return
	}

	participants, err := h.participantService.ListParticipants(c.Request.Context(),
		portsrepo.ParticipantFilter{IgrejaNome: params.Igreja})
	if err != nil {
		respondError(c, logger, err, "Erro ao listar participantes")
		return
	}

	c.JSON(http.StatusOK, dto.ToParticipantResponses(participants))
}

// getParticipant godoc
// @Summary Get a participant by code
// @Tags participantes
// @Produce json
// @Param id_participante path string true "Participant code"
// @Success 200 {object} dto.ParticipantResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/participantes/{id_participante} [get]
func (h *participantHandler) getParticipant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	participant, err := h.participantService.GetParticipantByCodigo(c.Request.Context(), c.Param("id_participante"))
	if err != nil {
		respondError(c, logger, err, "Erro ao buscar participante")
		return
	}

	c.JSON(http.StatusOK, dto.ToParticipantResponse(participant))
}

// updateParticipant godoc
// @Summary Update a participant
// @Tags participantes
// @Accept json
// @Produce json
// @Param id_participante path string true "Participant code"
// @Param participant body dto.UpdateParticipantRequest true "Fields to update"
// @Success 200 {object} dto.ParticipantResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/participantes/{id_participante} [put]
func (h *participantHandler) updateParticipant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Corpo da requisição inválido"})
		return
	}

	participant, err := h.participantService.UpdateParticipant(c.Request.Context(), c.Param("id_participante"), req)
	if err != nil {
		respondError(c, logger, err, "Erro ao atualizar participante")
		return
	}

	c.JSON(http.StatusOK, dto.ToParticipantResponse(participant))
}

// deleteParticipant godoc
// @Summary Delete a participant
// @Tags participantes
// @Produce json
// @Param id_participante path string true "Participant code"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/participantes/{id_participante} [delete]
func (h *participantHandler) deleteParticipant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.participantService.DeleteParticipant(c.Request.Context(), c.Param("id_participante")); err != nil {
		respondError(c, logger, err, "Erro ao excluir participante")
		return
	}

	logger.Info("Participant deleted", slog.String("codigo", c.Param("id_participante")))
	c.JSON(http.StatusOK, gin.H{"message": "Participante excluído com sucesso"})
}

// confirmarPagamento godoc
// @Summary Confirm a participant's payment
// @Description Stamps the payment confirmation and sends a notification email. Confirming twice is not an error.
// @Tags participantes
// @Produce json
// @Param id_participante path string true "Participant code"
// @Success 200 {object} dto.ParticipantResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/participantes/{id_participante}/confirmar-pagamento [put]
func (h *participantHandler) confirmarPagamento(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	participant, err := h.participantService.ConfirmarPagamento(c.Request.Context(), c.Param("id_participante"))
	if err != nil {
		respondError(c, logger, err, "Erro ao confirmar pagamento")
		return
	}

	logger.Info("Payment confirmed", slog.String("codigo", participant.Codigo))
	c.JSON(http.StatusOK, dto.ToParticipantResponse(participant))
}

// cancelarConfirmacao godoc
// @Summary Cancel a participant's payment confirmation
// @Tags participantes
// @Produce json
// @Param id_participante path string true "Participant code"
// @Success 200 {object} dto.ParticipantResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/participantes/{id_participante}/cancelar-confirmacao [put]
func (h *participantHandler) cancelarConfirmacao(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	participant, err := h.participantService.CancelarConfirmacao(c.Request.Context(), c.Param("id_participante"))
	if err != nil {
		respondError(c, logger, err, "Erro ao cancelar confirmação")
		return
	}

	logger.Info("Payment confirmation cancelled", slog.String("codigo", participant.Codigo))
	c.JSON(http.StatusOK, dto.ToParticipantResponse(participant))
}

// exportPDF godoc
// @Summary Export participants as PDF
// @Description Renders the participant roster, optionally filtered by church, as a downloadable PDF.
// @Tags participantes
// @Produce application/pdf
// @Param igreja query string false "Church name filter"
// @Success 200 {file} binary
// @Security BearerAuth
// @Router /api/participantes/pdf [get]
func (h *participantHandler) exportPDF(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	igreja := c.Query("igreja")
	participants, err := h.participantService.ListParticipants(c.Request.Context(),
		portsrepo.ParticipantFilter{IgrejaNome: igreja})
	if err != nil {
		respondError(c, logger, err, "Erro ao listar participantes")
		return
	}

	content, err := pdf.RenderParticipants(participants, igreja)
	if err != nil {
		logger.Error("Failed to render participants PDF", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro ao gerar PDF"})
		return
	}

	logger.Info("Participants PDF generated",
		slog.Int("participants", len(participants)),
		slog.String("igreja", igreja))

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", pdf.Filename(igreja)))
	c.Data(http.StatusOK, "application/pdf", content)
}

package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"aruanda/internal/domain"
)

// @Summary Criar evento
// @Description Cadastra um evento da casa (gira, festa, palestra)
// @Tags Eventos
// @Accept json
// @Produce json
// @Param id path int true "ID da casa"
// @Param input body domain.CreateEventoDTO true "Dados do evento"
// @Success 201 {object} map[string]interface{} "ID do evento criado"
// @Failure 400 {object} errorResponseBody "Erro de validação"
// @Failure 404 {object} errorResponseBody "Casa não encontrada"
// @Failure 500 {object} errorResponseBody "Erro interno do servidor"
// @Router /casas/{id}/eventos [post]
func (h *Handler) createEvento(c *gin.Context) {
	casaID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	var req domain.CreateEventoDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("formato de dados inválido", zap.Error(err))
		badRequestResponse(c, "formato de dados inválido")
		return
	}

	if _, err := time.Parse("2006-01-02", req.Data); err != nil {
		badRequestResponse(c, "formato de data inválido, esperado YYYY-MM-DD")
		return
	}

	id, err := h.services.Evento.Create(c.Request.Context(), casaID, req)
	if err != nil {
		h.logger.Error("erro ao criar evento", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "erro ao criar evento")
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary Buscar evento por ID
// @Tags Eventos
// @Produce json
// @Param id path int true "ID do evento"
// @Success 200 {object} domain.Evento "Evento"
// @Failure 400 {object} errorResponseBody "Erro de validação"
// @Failure 404 {object} errorResponseBody "Evento não encontrado"
// @Failure 500 {object} errorResponseBody "Erro interno do servidor"
// @Router /eventos/{id} [get]
func (h *Handler) getEventoByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	evento, err := h.services.Evento.GetByID(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("erro ao buscar evento", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "erro ao buscar evento")
		return
	}

	if evento == nil {
		notFoundResponse(c, "evento não encontrado")
		return
	}

	successResponse(c, http.StatusOK, evento)
}

// @Summary Atualizar evento
// @Tags Eventos
// @Accept json
// @Produce json
// @Param id path int true "ID do evento"
// @Param input body domain.UpdateEventoDTO true "Dados para atualização"
// @Success 200 {object} messageResponseType "Mensagem de sucesso"
// @Failure 400 {object} errorResponseBody "Erro de validação"
// @Failure 404 {object} errorResponseBody "Evento não encontrado"
// @Failure 500 {object} errorResponseBody "Erro interno do servidor"
// @Router /eventos/{id} [put]
func (h *Handler) updateEvento(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	var req domain.UpdateEventoDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "formato de dados inválido")
		return
	}

	err = h.services.Evento.Update(c.Request.Context(), id, req)
	if err != nil {
		h.logger.Error("erro ao atualizar evento", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "erro ao atualizar evento")
		return
	}

	messageResponse(c, http.StatusOK, "evento atualizado com sucesso")
}

// @Summary Remover evento
// @Tags Eventos
// @Produce json
// @Param id path int true "ID do evento"
// @Success 200 {object} messageResponseType "Mensagem de sucesso"
// @Failure 400 {object} errorResponseBody "Erro de validação"
// @Failure 500 {object} errorResponseBody "Erro interno do servidor"
// @Router /eventos/{id} [delete]
func (h *Handler) deleteEvento(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	err = h.services.Evento.Delete(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("erro ao remover evento", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "erro ao remover evento")
		return
	}

	messageResponse(c, http.StatusOK, "evento removido com sucesso")
}

// @Summary Listar eventos
// @Description Lista eventos com filtros de casa e período
// @Tags Eventos
// @Produce json
// @Param casa_id query int false "ID da casa"
// @Param date_from query string false "Data inicial (YYYY-MM-DD)"
// @Param date_to query string false "Data final (YYYY-MM-DD)"
// @Param limit query int false "Limite (padrão 20)"
// @Param offset query int false "Deslocamento (padrão 0)"
// @Success 200 {object} paginatedResponse "Lista de eventos com paginação"
// @Failure 500 {object} errorResponseBody "Erro interno do servidor"
// @Router /eventos [get]
func (h *Handler) getEventos(c *gin.Context) {
	var casaID *int64
	if casaIDStr := c.DefaultQuery("casa_id", ""); casaIDStr != "" {
		id, err := strconv.ParseInt(casaIDStr, 10, 64)
		if err == nil {
			casaID = &id
		}
	}

	var startDate *time.Time
	if dateFrom := c.DefaultQuery("date_from", ""); dateFrom != "" {
		parsedDate, err := time.Parse("2006-01-02", dateFrom)
		if err == nil {
			startDate = &parsedDate
		}
	}

	var endDate *time.Time
	if dateTo := c.DefaultQuery("date_to", ""); dateTo != "" {
		parsedDate, err := time.Parse("2006-01-02", dateTo)
		if err == nil {
			endDate = &parsedDate
		}
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 {
		limit = 20
	}

	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	filter := domain.EventoFilter{
		CasaID:    casaID,
		StartDate: startDate,
		EndDate:   endDate,
		Limit:     limit,
		Offset:    offset,
	}

	eventos, total, err := h.services.Evento.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("erro ao listar eventos", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "erro ao listar eventos")
		return
	}

	page := offset/limit + 1

	paginatedSuccessResponse(c, eventos, total, page, limit)
}

package rest

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"aruanda/internal/domain"
	"aruanda/internal/repository"
	"aruanda/internal/service"
)

// @Summary Criar agendamento
// @Description Reserva um horário e retorna o link de pagamento externo da casa
// @Tags Agendamentos
// @Accept json
// @Produce json
// @Param input body domain.CreateAgendamentoDTO true "Dados do agendamento"
// @Success 201 {object} domain.Agendamento "Agendamento criado"
// @Failure 400 {object} errorResponseBody "Erro de validação"
// @Failure 409 {object} errorResponseBody "Horário ocupado"
// @Failure 500 {object} errorResponseBody "Erro interno do servidor"
// @Router /agendamentos [post]
func (h *Handler) createAgendamento(c *gin.Context) {
	var req domain.CreateAgendamentoDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("formato de dados inválido", zap.Error(err))
		badRequestResponse(c, "formato de dados inválido")
		return
	}

	agendamento, err := h.services.Agendamento.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, repository.ErrHorarioOcupado) {
			conflictResponse(c, err.Error())
			return
		}
		if errors.Is(err, service.ErrAtendimentoNaoEncontrado) {
			notFoundResponse(c, err.Error())
			return
		}
		h.logger.Error("erro ao criar agendamento", zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	createdResponse(c, agendamento)
}

// @Summary Buscar agendamento por ID
// @Tags Agendamentos
// @Produce json
// @Param id path int true "ID do agendamento"
// @Success 200 {object} domain.Agendamento "Agendamento"
// @Failure 400 {object} errorResponseBody "Erro de validação"
// @Failure 404 {object} errorResponseBody "Agendamento não encontrado"
// @Failure 500 {object} errorResponseBody "Erro interno do servidor"
// @Router /agendamentos/{id} [get]
func (h *Handler) getAgendamentoByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	agendamento, err := h.services.Agendamento.GetByID(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("erro ao buscar agendamento", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "erro ao buscar agendamento")
		return
	}

	if agendamento == nil {
		notFoundResponse(c, "agendamento não encontrado")
		return
	}

	successResponse(c, http.StatusOK, agendamento)
}

// @Summary Buscar agendamento por código
// @Description Busca pelo código público usado na confirmação de pagamento
// @Tags Agendamentos
// @Produce json
// @Param codigo path string true "Código do agendamento"
// @Success 200 {object} domain.Agendamento "Agendamento"
// @Failure 404 {object} errorResponseBody "Agendamento não encontrado"
// @Failure 500 {object} errorResponseBody "Erro interno do servidor"
// @Router /agendamentos/codigo/{codigo} [get]
func (h *Handler) getAgendamentoByCodigo(c *gin.Context) {
	codigo := c.Param("codigo")

	agendamento, err := h.services.Agendamento.GetByCodigo(c.Request.Context(), codigo)
	if err != nil {
		h.logger.Error("erro ao buscar agendamento por código", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "erro ao buscar agendamento")
		return
	}

	if agendamento == nil {
		notFoundResponse(c, "agendamento não encontrado")
		return
	}

	successResponse(c, http.StatusOK, agendamento)
}

// @Summary Atualizar status do agendamento
// @Description Aplica uma transição de status (pending → confirmed/cancelled, confirmed → completed/cancelled)
// @Tags Agendamentos
// @Accept json
// @Produce json
// @Param id path int true "ID do agendamento"
// @Param input body domain.UpdateAgendamentoStatusDTO true "Novo status"
// @Success 200 {object} messageResponseType "Mensagem de sucesso"
// @Failure 400 {object} errorResponseBody "Transição inválida"
// @Failure 404 {object} errorResponseBody "Agendamento não encontrado"
// @Failure 500 {object} errorResponseBody "Erro interno do servidor"
// @Router /agendamentos/{id}/status [put]
func (h *Handler) updateAgendamentoStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	var req domain.UpdateAgendamentoStatusDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "formato de dados inválido")
		return
	}

	err = h.services.Agendamento.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, service.ErrTransicaoStatusInvalida) {
			badRequestResponse(c, err.Error())
			return
		}
		h.logger.Error("erro ao atualizar status do agendamento", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "erro ao atualizar status do agendamento")
		return
	}

	messageResponse(c, http.StatusOK, "status atualizado com sucesso")
}

// @Summary Cancelar agendamento
// @Tags Agendamentos
// @Produce json
// @Param id path int true "ID do agendamento"
// @Success 200 {object} messageResponseType "Mensagem de sucesso"
// @Failure 400 {object} errorResponseBody "Erro de validação"
// @Failure 500 {object} errorResponseBody "Erro interno do servidor"
// @Router /agendamentos/{id} [delete]
func (h *Handler) cancelAgendamento(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	err = h.services.Agendamento.Cancel(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTransicaoStatusInvalida) {
			badRequestResponse(c, err.Error())
			return
		}
		h.logger.Error("erro ao cancelar agendamento", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "erro ao cancelar agendamento")
		return
	}

	messageResponse(c, http.StatusOK, "agendamento cancelado com sucesso")
}

// @Summary Listar agendamentos
// @Description Lista agendamentos com filtros de casa, atendimento, status e período
// @Tags Agendamentos
// @Produce json
// @Param casa_id query int false "ID da casa"
// @Param atendimento_id query int false "ID do atendimento"
// @Param status query string false "Status"
// @Param date_from query string false "Data inicial (YYYY-MM-DD)"
// @Param date_to query string false "Data final (YYYY-MM-DD)"
// @Param limit query int false "Limite (padrão 20)"
// @Param offset query int false "Deslocamento (padrão 0)"
// @Success 200 {object} paginatedResponse "Lista de agendamentos com paginação"
// @Failure 500 {object} errorResponseBody "Erro interno do servidor"
// @Router /agendamentos [get]
func (h *Handler) getAgendamentos(c *gin.Context) {
	var casaID *int64
	if casaIDStr := c.DefaultQuery("casa_id", ""); casaIDStr != "" {
		id, err := strconv.ParseInt(casaIDStr, 10, 64)
		if err == nil {
			casaID = &id
		}
	}

	var atendimentoID *int64
	if atendimentoIDStr := c.DefaultQuery("atendimento_id", ""); atendimentoIDStr != "" {
		id, err := strconv.ParseInt(atendimentoIDStr, 10, 64)
		if err == nil {
			atendimentoID = &id
		}
	}

	var status *domain.AgendamentoStatus
	if statusStr := c.DefaultQuery("status", ""); statusStr != "" {
		value := domain.AgendamentoStatus(statusStr)
		status = &value
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

	filter := domain.AgendamentoFilter{
		CasaID:        casaID,
		AtendimentoID: atendimentoID,
		Status:        status,
		StartDate:     startDate,
		EndDate:       endDate,
		Limit:         limit,
		Offset:        offset,
	}

	agendamentos, total, err := h.services.Agendamento.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("erro ao listar agendamentos", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "erro ao listar agendamentos")
		return
	}

	page := offset/limit + 1

	paginatedSuccessResponse(c, agendamentos, total, page, limit)
}

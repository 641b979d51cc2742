package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"aruanda/internal/service"
)

// @Summary Horários disponíveis da semana
// @Description Retorna os horários livres do atendimento na janela rolante de 7 dias a partir de hoje
// @Tags Agenda
// @Produce json
// @Param id path int true "ID da casa"
// @Param atendimento_id query int true "ID do atendimento"
// @Success 200 {object} successResponseBody "Horários disponíveis agrupáveis por data"
// @Failure 400 {object} errorResponseBody "Erro de validação"
// @Failure 404 {object} errorResponseBody "Atendimento não encontrado"
// @Failure 500 {object} errorResponseBody "Erro interno do servidor"
// @Router /casas/{id}/agenda/slots [get]
func (h *Handler) getSlotsDisponiveis(c *gin.Context) {
	casaID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	atendimentoIDStr := c.Query("atendimento_id")
	if atendimentoIDStr == "" {
		badRequestResponse(c, "é necessário informar o atendimento")
		return
	}

	atendimentoID, err := strconv.ParseInt(atendimentoIDStr, 10, 64)
	if err != nil {
		badRequestResponse(c, "formato de ID de atendimento inválido")
		return
	}

	slots, err := h.services.Agenda.SlotsDisponiveisSemana(c.Request.Context(), casaID, atendimentoID)
	if err != nil {
		if errors.Is(err, service.ErrAtendimentoNaoEncontrado) {
			notFoundResponse(c, err.Error())
			return
		}
		if errors.Is(err, service.ErrDuracaoInvalida) {
			badRequestResponse(c, err.Error())
			return
		}
		h.logger.Error("erro ao calcular horários disponíveis", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "erro ao calcular horários disponíveis")
		return
	}

	successResponse(c, http.StatusOK, gin.H{
		"casa_id":        casaID,
		"atendimento_id": atendimentoID,
		"slots":          slots,
	})
}

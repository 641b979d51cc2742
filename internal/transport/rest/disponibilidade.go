package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"aruanda/internal/domain"
)

// @Summary Consultar horários de funcionamento
// @Description Retorna o modelo semanal de funcionamento da casa
// @Tags Disponibilidade
// @Produce json
// @Param id path int true "ID da casa"
// @Success 200 {object} successResponseBody "Modelo semanal"
// @Failure 400 {object} errorResponseBody "Erro de validação"
// @Failure 500 {object} errorResponseBody "Erro interno do servidor"
// @Router /casas/{id}/disponibilidade [get]
func (h *Handler) getDisponibilidade(c *gin.Context) {
	casaID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	dias, err := h.services.Disponibilidade.GetByCasa(c.Request.Context(), casaID)
	if err != nil {
		h.logger.Error("erro ao buscar disponibilidade", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "erro ao buscar disponibilidade")
		return
	}

	successResponse(c, http.StatusOK, dias)
}

type replaceDisponibilidadeRequest struct {
	Dias []domain.DisponibilidadeDiaDTO `json:"dias" binding:"required,dive"`
}

// @Summary Definir horários de funcionamento
// @Description Substitui o modelo semanal inteiro da casa
// @Tags Disponibilidade
// @Accept json
// @Produce json
// @Param id path int true "ID da casa"
// @Param input body replaceDisponibilidadeRequest true "Modelo semanal"
// @Success 200 {object} messageResponseType "Mensagem de sucesso"
// @Failure 400 {object} errorResponseBody "Erro de validação"
// @Failure 404 {object} errorResponseBody "Casa não encontrada"
// @Failure 500 {object} errorResponseBody "Erro interno do servidor"
// @Router /casas/{id}/disponibilidade [put]
func (h *Handler) replaceDisponibilidade(c *gin.Context) {
	casaID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	var req replaceDisponibilidadeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("formato de dados inválido", zap.Error(err))
		badRequestResponse(c, "formato de dados inválido")
		return
	}

	err = h.services.Disponibilidade.Replace(c.Request.Context(), casaID, req.Dias)
	if err != nil {
		h.logger.Error("erro ao gravar disponibilidade", zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	messageResponse(c, http.StatusOK, "disponibilidade atualizada com sucesso")
}

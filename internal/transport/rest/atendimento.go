package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"aruanda/internal/domain"
)

// @Summary Criar atendimento
// @Description Cadastra um novo atendimento oferecido pela casa
// @Tags Atendimentos
// @Accept json
// @Produce json
// @Param id path int true "ID da casa"
// @Param input body domain.CreateAtendimentoDTO true "Dados do atendimento"
// @Success 201 {object} map[string]interface{} "ID do atendimento criado"
// @Failure 400 {object} errorResponseBody "Erro de validação"
// @Failure 404 {object} errorResponseBody "Casa não encontrada"
// @Failure 500 {object} errorResponseBody "Erro interno do servidor"
// @Router /casas/{id}/atendimentos [post]
func (h *Handler) createAtendimento(c *gin.Context) {
	casaID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	var req domain.CreateAtendimentoDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("formato de dados inválido", zap.Error(err))
		badRequestResponse(c, "formato de dados inválido")
		return
	}

	id, err := h.services.Atendimento.Create(c.Request.Context(), casaID, req)
	if err != nil {
		h.logger.Error("erro ao criar atendimento", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "erro ao criar atendimento")
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary Listar atendimentos da casa
// @Description Lista os atendimentos oferecidos por uma casa
// @Tags Atendimentos
// @Produce json
// @Param id path int true "ID da casa"
// @Success 200 {object} successResponseBody "Lista de atendimentos"
// @Failure 400 {object} errorResponseBody "Erro de validação"
// @Failure 500 {object} errorResponseBody "Erro interno do servidor"
// @Router /casas/{id}/atendimentos [get]
func (h *Handler) getAtendimentosByCasa(c *gin.Context) {
	casaID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	atendimentos, err := h.services.Atendimento.ListByCasa(c.Request.Context(), casaID)
	if err != nil {
		h.logger.Error("erro ao listar atendimentos", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "erro ao listar atendimentos")
		return
	}

	successResponse(c, http.StatusOK, atendimentos)
}

// @Summary Buscar atendimento por ID
// @Tags Atendimentos
// @Produce json
// @Param id path int true "ID do atendimento"
// @Success 200 {object} domain.Atendimento "Atendimento"
// @Failure 400 {object} errorResponseBody "Erro de validação"
// @Failure 404 {object} errorResponseBody "Atendimento não encontrado"
// @Failure 500 {object} errorResponseBody "Erro interno do servidor"
// @Router /atendimentos/{id} [get]
func (h *Handler) getAtendimentoByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	atendimento, err := h.services.Atendimento.GetByID(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("erro ao buscar atendimento", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "erro ao buscar atendimento")
		return
	}

	if atendimento == nil {
		notFoundResponse(c, "atendimento não encontrado")
		return
	}

	successResponse(c, http.StatusOK, atendimento)
}

// @Summary Atualizar atendimento
// @Tags Atendimentos
// @Accept json
// @Produce json
// @Param id path int true "ID do atendimento"
// @Param input body domain.UpdateAtendimentoDTO true "Dados para atualização"
// @Success 200 {object} messageResponseType "Mensagem de sucesso"
// @Failure 400 {object} errorResponseBody "Erro de validação"
// @Failure 404 {object} errorResponseBody "Atendimento não encontrado"
// @Failure 500 {object} errorResponseBody "Erro interno do servidor"
// @Router /atendimentos/{id} [put]
func (h *Handler) updateAtendimento(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	var req domain.UpdateAtendimentoDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "formato de dados inválido")
		return
	}

	err = h.services.Atendimento.Update(c.Request.Context(), id, req)
	if err != nil {
		h.logger.Error("erro ao atualizar atendimento", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "erro ao atualizar atendimento")
		return
	}

	messageResponse(c, http.StatusOK, "atendimento atualizado com sucesso")
}

// @Summary Remover atendimento
// @Tags Atendimentos
// @Produce json
// @Param id path int true "ID do atendimento"
// @Success 200 {object} messageResponseType "Mensagem de sucesso"
// @Failure 400 {object} errorResponseBody "Erro de validação"
// @Failure 500 {object} errorResponseBody "Erro interno do servidor"
// @Router /atendimentos/{id} [delete]
func (h *Handler) deleteAtendimento(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	err = h.services.Atendimento.Delete(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("erro ao remover atendimento", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "erro ao remover atendimento")
		return
	}

	messageResponse(c, http.StatusOK, "atendimento removido com sucesso")
}

package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"aruanda/internal/domain"
)

// @Summary Criar casa
// @Description Cadastra uma nova casa espiritual
// @Tags Casas
// @Accept json
// @Produce json
// @Param input body domain.CreateCasaDTO true "Dados da casa"
// @Success 201 {object} map[string]interface{} "ID da casa criada"
// @Failure 400 {object} errorResponseBody "Erro de validação"
// @Failure 500 {object} errorResponseBody "Erro interno do servidor"
// @Router /casas [post]
func (h *Handler) createCasa(c *gin.Context) {
	var req domain.CreateCasaDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("formato de dados inválido", zap.Error(err))
		badRequestResponse(c, "formato de dados inválido")
		return
	}

	id, err := h.services.Casa.Create(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("erro ao criar casa", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "erro ao criar casa")
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary Buscar casa por ID
// @Description Retorna o perfil completo de uma casa
// @Tags Casas
// @Produce json
// @Param id path int true "ID da casa"
// @Success 200 {object} domain.Casa "Casa"
// @Failure 400 {object} errorResponseBody "Erro de validação"
// @Failure 404 {object} errorResponseBody "Casa não encontrada"
// @Failure 500 {object} errorResponseBody "Erro interno do servidor"
// @Router /casas/{id} [get]
func (h *Handler) getCasaByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	casa, err := h.services.Casa.GetByID(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("erro ao buscar casa", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "erro ao buscar casa")
		return
	}

	if casa == nil {
		notFoundResponse(c, "casa não encontrada")
		return
	}

	successResponse(c, http.StatusOK, casa)
}

// @Summary Atualizar casa
// @Description Atualiza o perfil de uma casa existente
// @Tags Casas
// @Accept json
// @Produce json
// @Param id path int true "ID da casa"
// @Param input body domain.UpdateCasaDTO true "Dados para atualização"
// @Success 200 {object} messageResponseType "Mensagem de sucesso"
// @Failure 400 {object} errorResponseBody "Erro de validação"
// @Failure 404 {object} errorResponseBody "Casa não encontrada"
// @Failure 500 {object} errorResponseBody "Erro interno do servidor"
// @Router /casas/{id} [put]
func (h *Handler) updateCasa(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	var req domain.UpdateCasaDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "formato de dados inválido")
		return
	}

	err = h.services.Casa.Update(c.Request.Context(), id, req)
	if err != nil {
		h.logger.Error("erro ao atualizar casa", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "erro ao atualizar casa")
		return
	}

	messageResponse(c, http.StatusOK, "casa atualizada com sucesso")
}

// @Summary Remover casa
// @Description Remove uma casa e seus dados associados
// @Tags Casas
// @Produce json
// @Param id path int true "ID da casa"
// @Success 200 {object} messageResponseType "Mensagem de sucesso"
// @Failure 400 {object} errorResponseBody "Erro de validação"
// @Failure 500 {object} errorResponseBody "Erro interno do servidor"
// @Router /casas/{id} [delete]
func (h *Handler) deleteCasa(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	err = h.services.Casa.Delete(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("erro ao remover casa", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "erro ao remover casa")
		return
	}

	messageResponse(c, http.StatusOK, "casa removida com sucesso")
}

// @Summary Listar casas
// @Description Lista casas com filtros de linha, cidade e situação
// @Tags Casas
// @Produce json
// @Param linha query string false "Linha (umbanda, candomble, kardecista, outra)"
// @Param cidade query string false "Cidade"
// @Param ativa query bool false "Apenas casas ativas"
// @Param limit query int false "Limite (padrão 20)"
// @Param offset query int false "Deslocamento (padrão 0)"
// @Success 200 {object} paginatedResponse "Lista de casas com paginação"
// @Failure 500 {object} errorResponseBody "Erro interno do servidor"
// @Router /casas [get]
func (h *Handler) getCasas(c *gin.Context) {
	var linha *domain.LinhaCasa
	if linhaStr := c.DefaultQuery("linha", ""); linhaStr != "" {
		l := domain.LinhaCasa(linhaStr)
		linha = &l
	}

	var cidade *string
	if cidadeStr := c.DefaultQuery("cidade", ""); cidadeStr != "" {
		cidade = &cidadeStr
	}

	var ativa *bool
	if ativaStr := c.DefaultQuery("ativa", ""); ativaStr != "" {
		value := ativaStr == "true"
		ativa = &value
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 {
		limit = 20
	}

	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	filter := domain.CasaFilter{
		Linha:  linha,
		Cidade: cidade,
		Ativa:  ativa,
		Limit:  limit,
		Offset: offset,
	}

	casas, total, err := h.services.Casa.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("erro ao listar casas", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "erro ao listar casas")
		return
	}

	page := offset/limit + 1

	paginatedSuccessResponse(c, casas, total, page, limit)
}

package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"aruanda/internal/domain"
)

// @Summary Criar produto
// @Description Cadastra um produto vendido pela casa
// @Tags Produtos
// @Accept json
// @Produce json
// @Param id path int true "ID da casa"
// @Param input body domain.CreateProdutoDTO true "Dados do produto"
// @Success 201 {object} map[string]interface{} "ID do produto criado"
// @Failure 400 {object} errorResponseBody "Erro de validação"
// @Failure 404 {object} errorResponseBody "Casa não encontrada"
// @Failure 500 {object} errorResponseBody "Erro interno do servidor"
// @Router /casas/{id}/produtos [post]
func (h *Handler) createProduto(c *gin.Context) {
	casaID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	var req domain.CreateProdutoDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("formato de dados inválido", zap.Error(err))
		badRequestResponse(c, "formato de dados inválido")
		return
	}

	id, err := h.services.Produto.Create(c.Request.Context(), casaID, req)
	if err != nil {
		h.logger.Error("erro ao criar produto", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "erro ao criar produto")
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary Buscar produto por ID
// @Tags Produtos
// @Produce json
// @Param id path int true "ID do produto"
// @Success 200 {object} domain.Produto "Produto"
// @Failure 400 {object} errorResponseBody "Erro de validação"
// @Failure 404 {object} errorResponseBody "Produto não encontrado"
// @Failure 500 {object} errorResponseBody "Erro interno do servidor"
// @Router /produtos/{id} [get]
func (h *Handler) getProdutoByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	produto, err := h.services.Produto.GetByID(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("erro ao buscar produto", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "erro ao buscar produto")
		return
	}

	if produto == nil {
		notFoundResponse(c, "produto não encontrado")
		return
	}

	successResponse(c, http.StatusOK, produto)
}

// @Summary Atualizar produto
// @Tags Produtos
// @Accept json
// @Produce json
// @Param id path int true "ID do produto"
// @Param input body domain.UpdateProdutoDTO true "Dados para atualização"
// @Success 200 {object} messageResponseType "Mensagem de sucesso"
// @Failure 400 {object} errorResponseBody "Erro de validação"
// @Failure 404 {object} errorResponseBody "Produto não encontrado"
// @Failure 500 {object} errorResponseBody "Erro interno do servidor"
// @Router /produtos/{id} [put]
func (h *Handler) updateProduto(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	var req domain.UpdateProdutoDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "formato de dados inválido")
		return
	}

	err = h.services.Produto.Update(c.Request.Context(), id, req)
	if err != nil {
		h.logger.Error("erro ao atualizar produto", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "erro ao atualizar produto")
		return
	}

	messageResponse(c, http.StatusOK, "produto atualizado com sucesso")
}

// @Summary Remover produto
// @Tags Produtos
// @Produce json
// @Param id path int true "ID do produto"
// @Success 200 {object} messageResponseType "Mensagem de sucesso"
// @Failure 400 {object} errorResponseBody "Erro de validação"
// @Failure 500 {object} errorResponseBody "Erro interno do servidor"
// @Router /produtos/{id} [delete]
func (h *Handler) deleteProduto(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "formato de ID inválido")
		return
	}

	err = h.services.Produto.Delete(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("erro ao remover produto", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "erro ao remover produto")
		return
	}

	messageResponse(c, http.StatusOK, "produto removido com sucesso")
}

// @Summary Listar produtos
// @Description Lista produtos com filtros de casa e disponibilidade
// @Tags Produtos
// @Produce json
// @Param casa_id query int false "ID da casa"
// @Param disponivel query bool false "Apenas produtos disponíveis"
// @Param limit query int false "Limite (padrão 20)"
// @Param offset query int false "Deslocamento (padrão 0)"
// @Success 200 {object} paginatedResponse "Lista de produtos com paginação"
// @Failure 500 {object} errorResponseBody "Erro interno do servidor"
// @Router /produtos [get]
func (h *Handler) getProdutos(c *gin.Context) {
	var casaID *int64
	if casaIDStr := c.DefaultQuery("casa_id", ""); casaIDStr != "" {
		id, err := strconv.ParseInt(casaIDStr, 10, 64)
		if err == nil {
			casaID = &id
		}
	}

	var disponivel *bool
	if disponivelStr := c.DefaultQuery("disponivel", ""); disponivelStr != "" {
		value := disponivelStr == "true"
		disponivel = &value
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 {
		limit = 20
	}

	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	filter := domain.ProdutoFilter{
		CasaID:     casaID,
		Disponivel: disponivel,
		Limit:      limit,
		Offset:     offset,
	}

	produtos, total, err := h.services.Produto.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("erro ao listar produtos", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "erro ao listar produtos")
		return
	}

	page := offset/limit + 1

	paginatedSuccessResponse(c, produtos, total, page, limit)
}

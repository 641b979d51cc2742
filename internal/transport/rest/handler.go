package rest

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"aruanda/config"
	"aruanda/internal/service"
)

type Handler struct {
	services *service.Services
	logger   *zap.Logger
	config   *config.Config
}

func NewHandler(services *service.Services, logger *zap.Logger, config *config.Config) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
		config:   config,
	}
}

func (h *Handler) InitRoutes(router *gin.Engine) {
	router.Use(h.loggerMiddleware())

	router.Use(h.errorMiddleware())

	router.Use(h.corsMiddleware())

	api := router.Group("/api/v1")
	{
		casas := api.Group("/casas")
		{
			casas.GET("/", h.getCasas)
			casas.POST("/", h.createCasa)
			casas.GET("/:id", h.getCasaByID)
			casas.PUT("/:id", h.updateCasa)
			casas.DELETE("/:id", h.deleteCasa)

			casas.GET("/:id/atendimentos", h.getAtendimentosByCasa)
			casas.POST("/:id/atendimentos", h.createAtendimento)

			casas.GET("/:id/disponibilidade", h.getDisponibilidade)
			casas.PUT("/:id/disponibilidade", h.replaceDisponibilidade)

			casas.GET("/:id/agenda/slots", h.getSlotsDisponiveis)

			casas.POST("/:id/eventos", h.createEvento)
			casas.POST("/:id/produtos", h.createProduto)
		}

		atendimentos := api.Group("/atendimentos")
		{
			atendimentos.GET("/:id", h.getAtendimentoByID)
			atendimentos.PUT("/:id", h.updateAtendimento)
			atendimentos.DELETE("/:id", h.deleteAtendimento)
		}

		agendamentos := api.Group("/agendamentos")
		{
			agendamentos.POST("/", h.createAgendamento)
			agendamentos.GET("/", h.getAgendamentos)
			agendamentos.GET("/:id", h.getAgendamentoByID)
			agendamentos.GET("/codigo/:codigo", h.getAgendamentoByCodigo)
			agendamentos.PUT("/:id/status", h.updateAgendamentoStatus)
			agendamentos.DELETE("/:id", h.cancelAgendamento)
		}

		eventos := api.Group("/eventos")
		{
			eventos.GET("/", h.getEventos)
			eventos.GET("/:id", h.getEventoByID)
			eventos.PUT("/:id", h.updateEvento)
			eventos.DELETE("/:id", h.deleteEvento)
		}

		produtos := api.Group("/produtos")
		{
			produtos.GET("/", h.getProdutos)
			produtos.GET("/:id", h.getProdutoByID)
			produtos.PUT("/:id", h.updateProduto)
			produtos.DELETE("/:id", h.deleteProduto)
		}
	}
}

package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"aruanda/internal/domain"
	"aruanda/internal/repository"
)

type EventoServiceImpl struct {
	repo     repository.EventoRepository
	casaRepo repository.CasaRepository
	logger   *zap.Logger
}

func NewEventoService(
	repo repository.EventoRepository,
	casaRepo repository.CasaRepository,
	logger *zap.Logger,
) *EventoServiceImpl {
	return &EventoServiceImpl{
		repo:     repo,
		casaRepo: casaRepo,
		logger:   logger,
	}
}

func (s *EventoServiceImpl) Create(ctx context.Context, casaID int64, dto domain.CreateEventoDTO) (int64, error) {
	casa, err := s.casaRepo.GetByID(ctx, casaID)
	if err != nil {
		s.logger.Error("erro ao buscar casa", zap.Int64("casaID", casaID), zap.Error(err))
		return 0, fmt.Errorf("erro ao buscar casa: %w", err)
	}

	if casa == nil {
		return 0, errors.New("casa não encontrada")
	}

	id, err := s.repo.Create(ctx, casaID, dto)
	if err != nil {
		s.logger.Error("erro ao criar evento", zap.Error(err))
		return 0, fmt.Errorf("erro ao criar evento: %w", err)
	}

	return id, nil
}

func (s *EventoServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Evento, error) {
	evento, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("erro ao buscar evento", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("erro ao buscar evento: %w", err)
	}
	return evento, nil
}

func (s *EventoServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateEventoDTO) error {
	evento, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("erro ao buscar evento para atualização", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("erro ao buscar evento: %w", err)
	}

	if evento == nil {
		return errors.New("evento não encontrado")
	}

	err = s.repo.Update(ctx, id, dto)
	if err != nil {
		s.logger.Error("erro ao atualizar evento", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("erro ao atualizar evento: %w", err)
	}

	return nil
}

func (s *EventoServiceImpl) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("erro ao remover evento", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("erro ao remover evento: %w", err)
	}
	return nil
}

func (s *EventoServiceImpl) List(ctx context.Context, filter domain.EventoFilter) ([]domain.Evento, int, error) {
	eventos, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("erro ao listar eventos", zap.Error(err))
		return nil, 0, fmt.Errorf("erro ao listar eventos: %w", err)
	}
	return eventos, total, nil
}

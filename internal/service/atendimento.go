package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"aruanda/internal/domain"
	"aruanda/internal/repository"
)

type AtendimentoServiceImpl struct {
	repo     repository.AtendimentoRepository
	casaRepo repository.CasaRepository
	logger   *zap.Logger
}

func NewAtendimentoService(
	repo repository.AtendimentoRepository,
	casaRepo repository.CasaRepository,
	logger *zap.Logger,
) *AtendimentoServiceImpl {
	return &AtendimentoServiceImpl{
		repo:     repo,
		casaRepo: casaRepo,
		logger:   logger,
	}
}

func (s *AtendimentoServiceImpl) Create(ctx context.Context, casaID int64, dto domain.CreateAtendimentoDTO) (int64, error) {
	casa, err := s.casaRepo.GetByID(ctx, casaID)
	if err != nil {
		s.logger.Error("erro ao buscar casa", zap.Int64("casaID", casaID), zap.Error(err))
		return 0, fmt.Errorf("erro ao buscar casa: %w", err)
	}

	if casa == nil {
		return 0, errors.New("casa não encontrada")
	}

	if dto.DuracaoMinutos <= 0 {
		return 0, ErrDuracaoInvalida
	}

	id, err := s.repo.Create(ctx, casaID, dto)
	if err != nil {
		s.logger.Error("erro ao criar atendimento", zap.Error(err))
		return 0, fmt.Errorf("erro ao criar atendimento: %w", err)
	}

	return id, nil
}

func (s *AtendimentoServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Atendimento, error) {
	atendimento, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("erro ao buscar atendimento", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("erro ao buscar atendimento: %w", err)
	}
	return atendimento, nil
}

func (s *AtendimentoServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateAtendimentoDTO) error {
	atendimento, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("erro ao buscar atendimento para atualização", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("erro ao buscar atendimento: %w", err)
	}

	if atendimento == nil {
		return ErrAtendimentoNaoEncontrado
	}

	if dto.DuracaoMinutos != nil && *dto.DuracaoMinutos <= 0 {
		return ErrDuracaoInvalida
	}

	err = s.repo.Update(ctx, id, dto)
	if err != nil {
		s.logger.Error("erro ao atualizar atendimento", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("erro ao atualizar atendimento: %w", err)
	}

	return nil
}

func (s *AtendimentoServiceImpl) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("erro ao remover atendimento", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("erro ao remover atendimento: %w", err)
	}
	return nil
}

func (s *AtendimentoServiceImpl) ListByCasa(ctx context.Context, casaID int64) ([]domain.Atendimento, error) {
	atendimentos, err := s.repo.ListByCasa(ctx, casaID)
	if err != nil {
		s.logger.Error("erro ao listar atendimentos", zap.Int64("casaID", casaID), zap.Error(err))
		return nil, fmt.Errorf("erro ao listar atendimentos: %w", err)
	}
	return atendimentos, nil
}

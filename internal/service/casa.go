package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"aruanda/internal/domain"
	"aruanda/internal/repository"
	"aruanda/pkg/validator"
)

type CasaServiceImpl struct {
	repo   repository.CasaRepository
	logger *zap.Logger
}

func NewCasaService(repo repository.CasaRepository, logger *zap.Logger) *CasaServiceImpl {
	return &CasaServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *CasaServiceImpl) Create(ctx context.Context, dto domain.CreateCasaDTO) (int64, error) {
	if !dto.Linha.IsValid() {
		return 0, errors.New("linha da casa inválida")
	}

	if dto.Telefone != "" {
		if !validator.ValidateTelefone(dto.Telefone) {
			return 0, errors.New("telefone inválido")
		}
		dto.Telefone = validator.FormatTelefone(dto.Telefone)
	}

	id, err := s.repo.Create(ctx, dto)
	if err != nil {
		s.logger.Error("erro ao criar casa", zap.Error(err))
		return 0, fmt.Errorf("erro ao criar casa: %w", err)
	}

	return id, nil
}

func (s *CasaServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Casa, error) {
	casa, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("erro ao buscar casa", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("erro ao buscar casa: %w", err)
	}
	return casa, nil
}

func (s *CasaServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateCasaDTO) error {
	casa, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("erro ao buscar casa para atualização", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("erro ao buscar casa: %w", err)
	}

	if casa == nil {
		return errors.New("casa não encontrada")
	}

	if dto.Telefone != nil && *dto.Telefone != "" {
		if !validator.ValidateTelefone(*dto.Telefone) {
			return errors.New("telefone inválido")
		}
		formatado := validator.FormatTelefone(*dto.Telefone)
		dto.Telefone = &formatado
	}

	err = s.repo.Update(ctx, id, dto)
	if err != nil {
		s.logger.Error("erro ao atualizar casa", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("erro ao atualizar casa: %w", err)
	}

	return nil
}

func (s *CasaServiceImpl) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("erro ao remover casa", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("erro ao remover casa: %w", err)
	}
	return nil
}

func (s *CasaServiceImpl) List(ctx context.Context, filter domain.CasaFilter) ([]domain.Casa, int, error) {
	casas, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("erro ao listar casas", zap.Error(err))
		return nil, 0, fmt.Errorf("erro ao listar casas: %w", err)
	}
	return casas, total, nil
}

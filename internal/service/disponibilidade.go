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

type DisponibilidadeServiceImpl struct {
	repo     repository.DisponibilidadeRepository
	casaRepo repository.CasaRepository
	logger   *zap.Logger
}

func NewDisponibilidadeService(
	repo repository.DisponibilidadeRepository,
	casaRepo repository.CasaRepository,
	logger *zap.Logger,
) *DisponibilidadeServiceImpl {
	return &DisponibilidadeServiceImpl{
		repo:     repo,
		casaRepo: casaRepo,
		logger:   logger,
	}
}

func (s *DisponibilidadeServiceImpl) GetByCasa(ctx context.Context, casaID int64) ([]domain.DisponibilidadeDia, error) {
	dias, err := s.repo.GetByCasa(ctx, casaID)
	if err != nil {
		s.logger.Error("erro ao buscar disponibilidade", zap.Int64("casaID", casaID), zap.Error(err))
		return nil, fmt.Errorf("erro ao buscar disponibilidade: %w", err)
	}
	return dias, nil
}

// Replace valida e grava o modelo semanal. Dias ativos precisam de
// horários HH:MM válidos com início antes do fim; dias repetidos são
// rejeitados.
func (s *DisponibilidadeServiceImpl) Replace(ctx context.Context, casaID int64, dias []domain.DisponibilidadeDiaDTO) error {
	casa, err := s.casaRepo.GetByID(ctx, casaID)
	if err != nil {
		s.logger.Error("erro ao buscar casa", zap.Int64("casaID", casaID), zap.Error(err))
		return fmt.Errorf("erro ao buscar casa: %w", err)
	}

	if casa == nil {
		return errors.New("casa não encontrada")
	}

	vistos := make(map[int]bool, len(dias))
	for _, dia := range dias {
		if dia.DiaSemana < 0 || dia.DiaSemana > 6 {
			return fmt.Errorf("dia da semana inválido: %d", dia.DiaSemana)
		}

		if vistos[dia.DiaSemana] {
			return fmt.Errorf("dia da semana repetido: %d", dia.DiaSemana)
		}
		vistos[dia.DiaSemana] = true

		if !dia.Ativo {
			continue
		}

		if !validator.ValidateHora(dia.HoraInicio) {
			return fmt.Errorf("hora de início inválida no dia %d, esperado HH:MM", dia.DiaSemana)
		}

		if !validator.ValidateHora(dia.HoraFim) {
			return fmt.Errorf("hora de fim inválida no dia %d, esperado HH:MM", dia.DiaSemana)
		}

		// HH:MM com zero à esquerda compara bem como texto.
		if dia.HoraInicio >= dia.HoraFim {
			return fmt.Errorf("a hora de início deve ser anterior à de fim no dia %d", dia.DiaSemana)
		}
	}

	err = s.repo.Replace(ctx, casaID, dias)
	if err != nil {
		s.logger.Error("erro ao gravar disponibilidade", zap.Int64("casaID", casaID), zap.Error(err))
		return fmt.Errorf("erro ao gravar disponibilidade: %w", err)
	}

	return nil
}

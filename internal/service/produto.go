package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"aruanda/internal/domain"
	"aruanda/internal/repository"
)

type ProdutoServiceImpl struct {
	repo     repository.ProdutoRepository
	casaRepo repository.CasaRepository
	logger   *zap.Logger
}

func NewProdutoService(
	repo repository.ProdutoRepository,
	casaRepo repository.CasaRepository,
	logger *zap.Logger,
) *ProdutoServiceImpl {
	return &ProdutoServiceImpl{
		repo:     repo,
		casaRepo: casaRepo,
		logger:   logger,
	}
}

func (s *ProdutoServiceImpl) Create(ctx context.Context, casaID int64, dto domain.CreateProdutoDTO) (int64, error) {
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
		s.logger.Error("erro ao criar produto", zap.Error(err))
		return 0, fmt.Errorf("erro ao criar produto: %w", err)
	}

	return id, nil
}

func (s *ProdutoServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Produto, error) {
	produto, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("erro ao buscar produto", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("erro ao buscar produto: %w", err)
	}
	return produto, nil
}

func (s *ProdutoServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateProdutoDTO) error {
	produto, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("erro ao buscar produto para atualização", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("erro ao buscar produto: %w", err)
	}

	if produto == nil {
		return errors.New("produto não encontrado")
	}

	err = s.repo.Update(ctx, id, dto)
	if err != nil {
		s.logger.Error("erro ao atualizar produto", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("erro ao atualizar produto: %w", err)
	}

	return nil
}

func (s *ProdutoServiceImpl) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("erro ao remover produto", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("erro ao remover produto: %w", err)
	}
	return nil
}

func (s *ProdutoServiceImpl) List(ctx context.Context, filter domain.ProdutoFilter) ([]domain.Produto, int, error) {
	produtos, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("erro ao listar produtos", zap.Error(err))
		return nil, 0, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	return produtos, total, nil
}

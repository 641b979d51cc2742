package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"aruanda/internal/domain"
)

func novaDisponibilidadeTeste() (*DisponibilidadeServiceImpl, *mockDisponibilidadeRepo, *mockCasaRepo) {
	repo := new(mockDisponibilidadeRepo)
	casaRepo := new(mockCasaRepo)
	svc := NewDisponibilidadeService(repo, casaRepo, zap.NewNop())
	return svc, repo, casaRepo
}

func TestDisponibilidadeReplace(t *testing.T) {
	svc, repo, casaRepo := novaDisponibilidadeTeste()

	casaRepo.On("GetByID", mock.Anything, int64(1)).Return(casaTeste(), nil)

	dias := []domain.DisponibilidadeDiaDTO{
		{DiaSemana: 0, Ativo: false},
		{DiaSemana: 1, HoraInicio: "09:00", HoraFim: "18:00", Ativo: true},
		{DiaSemana: 6, HoraInicio: "10:00", HoraFim: "16:00", Ativo: true},
	}
	repo.On("Replace", mock.Anything, int64(1), dias).Return(nil)

	assert.NoError(t, svc.Replace(context.Background(), 1, dias))
	repo.AssertExpectations(t)
}

func TestDisponibilidadeReplaceRejeitaModeloInvalido(t *testing.T) {
	casos := []struct {
		nome string
		dias []domain.DisponibilidadeDiaDTO
	}{
		{"dia fora da faixa", []domain.DisponibilidadeDiaDTO{
			{DiaSemana: 7, HoraInicio: "09:00", HoraFim: "18:00", Ativo: true},
		}},
		{"dia repetido", []domain.DisponibilidadeDiaDTO{
			{DiaSemana: 1, HoraInicio: "09:00", HoraFim: "18:00", Ativo: true},
			{DiaSemana: 1, HoraInicio: "10:00", HoraFim: "16:00", Ativo: true},
		}},
		{"hora malformada", []domain.DisponibilidadeDiaDTO{
			{DiaSemana: 1, HoraInicio: "9h00", HoraFim: "18:00", Ativo: true},
		}},
		{"início depois do fim", []domain.DisponibilidadeDiaDTO{
			{DiaSemana: 1, HoraInicio: "18:00", HoraFim: "09:00", Ativo: true},
		}},
		{"início igual ao fim", []domain.DisponibilidadeDiaDTO{
			{DiaSemana: 1, HoraInicio: "09:00", HoraFim: "09:00", Ativo: true},
		}},
	}

	for _, caso := range casos {
		t.Run(caso.nome, func(t *testing.T) {
			svc, repo, casaRepo := novaDisponibilidadeTeste()
			casaRepo.On("GetByID", mock.Anything, int64(1)).Return(casaTeste(), nil)

			assert.Error(t, svc.Replace(context.Background(), 1, caso.dias))
			repo.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

// Horários de dias inativos não são validados: o dia não gera slots de
// qualquer forma.
func TestDisponibilidadeReplaceIgnoraHorarioDeDiaInativo(t *testing.T) {
	svc, repo, casaRepo := novaDisponibilidadeTeste()

	casaRepo.On("GetByID", mock.Anything, int64(1)).Return(casaTeste(), nil)

	dias := []domain.DisponibilidadeDiaDTO{{DiaSemana: 0, HoraInicio: "", HoraFim: "", Ativo: false}}
	repo.On("Replace", mock.Anything, int64(1), dias).Return(nil)

	assert.NoError(t, svc.Replace(context.Background(), 1, dias))
}

func TestDisponibilidadeReplaceCasaNaoEncontrada(t *testing.T) {
	svc, repo, casaRepo := novaDisponibilidadeTeste()

	casaRepo.On("GetByID", mock.Anything, int64(42)).Return(nil, nil)

	err := svc.Replace(context.Background(), 42, nil)
	assert.Error(t, err)
	repo.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything, mock.Anything)
}

package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"aruanda/internal/domain"
)

type mockCasaRepo struct {
	mock.Mock
}

func (m *mockCasaRepo) Create(ctx context.Context, dto domain.CreateCasaDTO) (int64, error) {
	args := m.Called(ctx, dto)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCasaRepo) GetByID(ctx context.Context, id int64) (*domain.Casa, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Casa), args.Error(1)
}

func (m *mockCasaRepo) Update(ctx context.Context, id int64, dto domain.UpdateCasaDTO) error {
	args := m.Called(ctx, id, dto)
	return args.Error(0)
}

func (m *mockCasaRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockCasaRepo) List(ctx context.Context, filter domain.CasaFilter) ([]domain.Casa, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Casa), args.Int(1), args.Error(2)
}

type mockAtendimentoRepo struct {
	mock.Mock
}

func (m *mockAtendimentoRepo) Create(ctx context.Context, casaID int64, dto domain.CreateAtendimentoDTO) (int64, error) {
	args := m.Called(ctx, casaID, dto)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAtendimentoRepo) GetByID(ctx context.Context, id int64) (*domain.Atendimento, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Atendimento), args.Error(1)
}

func (m *mockAtendimentoRepo) Update(ctx context.Context, id int64, dto domain.UpdateAtendimentoDTO) error {
	args := m.Called(ctx, id, dto)
	return args.Error(0)
}

func (m *mockAtendimentoRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockAtendimentoRepo) ListByCasa(ctx context.Context, casaID int64) ([]domain.Atendimento, error) {
	args := m.Called(ctx, casaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Atendimento), args.Error(1)
}

type mockDisponibilidadeRepo struct {
	mock.Mock
}

func (m *mockDisponibilidadeRepo) GetByCasa(ctx context.Context, casaID int64) ([]domain.DisponibilidadeDia, error) {
	args := m.Called(ctx, casaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DisponibilidadeDia), args.Error(1)
}

func (m *mockDisponibilidadeRepo) GetByCasaEDia(ctx context.Context, casaID int64, diaSemana int) (*domain.DisponibilidadeDia, error) {
	args := m.Called(ctx, casaID, diaSemana)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DisponibilidadeDia), args.Error(1)
}

func (m *mockDisponibilidadeRepo) Replace(ctx context.Context, casaID int64, dias []domain.DisponibilidadeDiaDTO) error {
	args := m.Called(ctx, casaID, dias)
	return args.Error(0)
}

type mockAgendamentoRepo struct {
	mock.Mock
}

func (m *mockAgendamentoRepo) Create(ctx context.Context, agendamento domain.Agendamento) (int64, error) {
	args := m.Called(ctx, agendamento)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAgendamentoRepo) GetByID(ctx context.Context, id int64) (*domain.Agendamento, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Agendamento), args.Error(1)
}

func (m *mockAgendamentoRepo) GetByCodigo(ctx context.Context, codigo string) (*domain.Agendamento, error) {
	args := m.Called(ctx, codigo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Agendamento), args.Error(1)
}

func (m *mockAgendamentoRepo) UpdateStatus(ctx context.Context, id int64, status domain.AgendamentoStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *mockAgendamentoRepo) List(ctx context.Context, filter domain.AgendamentoFilter) ([]domain.Agendamento, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Agendamento), args.Int(1), args.Error(2)
}

func (m *mockAgendamentoRepo) ListByCasaEPeriodo(ctx context.Context, casaID int64, inicio, fim time.Time) ([]domain.Agendamento, error) {
	args := m.Called(ctx, casaID, inicio, fim)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Agendamento), args.Error(1)
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"aruanda/internal/domain"
	"aruanda/internal/repository"
)

type mockAgendaService struct {
	mock.Mock
}

func (m *mockAgendaService) JanelaSemana(referencia time.Time) []time.Time {
	args := m.Called(referencia)
	return args.Get(0).([]time.Time)
}

func (m *mockAgendaService) GerarSlotsDia(data time.Time, disp *domain.DisponibilidadeDia, duracaoMin int, agendamentos []domain.Agendamento, agora time.Time) []domain.TimeSlot {
	args := m.Called(data, disp, duracaoMin, agendamentos, agora)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.TimeSlot)
}

func (m *mockAgendaService) SlotsDisponiveisSemana(ctx context.Context, casaID, atendimentoID int64) ([]domain.TimeSlot, error) {
	args := m.Called(ctx, casaID, atendimentoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TimeSlot), args.Error(1)
}

func (m *mockAgendaService) HorarioDisponivel(ctx context.Context, casaID int64, data time.Time, horaInicio string, duracaoMin int) (bool, error) {
	args := m.Called(ctx, casaID, data, horaInicio, duracaoMin)
	return args.Bool(0), args.Error(1)
}

func novoAgendamentoTeste() (*AgendamentoServiceImpl, *mockAgendamentoRepo, *mockAtendimentoRepo, *mockCasaRepo, *mockAgendaService) {
	repo := new(mockAgendamentoRepo)
	atendimentoRepo := new(mockAtendimentoRepo)
	casaRepo := new(mockCasaRepo)
	agenda := new(mockAgendaService)

	svc := NewAgendamentoService(repo, atendimentoRepo, casaRepo, agenda, zap.NewNop())
	return svc, repo, atendimentoRepo, casaRepo, agenda
}

func casaTeste() *domain.Casa {
	return &domain.Casa{
		ID:            1,
		Nome:          "Casa de Caridade Pai João",
		Linha:         domain.LinhaUmbanda,
		Cidade:        "São Paulo",
		Estado:        "SP",
		LinkPagamento: "https://pagamento.example/casa-pai-joao",
		Ativa:         true,
	}
}

func dtoTeste() domain.CreateAgendamentoDTO {
	return domain.CreateAgendamentoDTO{
		CasaID:          1,
		AtendimentoID:   10,
		NomeCliente:     "Maria da Silva",
		TelefoneCliente: "(11) 98765-4321",
		EmailCliente:    "maria@example.com",
		Data:            "2025-03-14",
		HoraInicio:      "14:00",
	}
}

func TestAgendamentoCreate(t *testing.T) {
	svc, repo, atendimentoRepo, casaRepo, agenda := novoAgendamentoTeste()

	casaRepo.On("GetByID", mock.Anything, int64(1)).Return(casaTeste(), nil)
	atendimentoRepo.On("GetByID", mock.Anything, int64(10)).
		Return(&domain.Atendimento{ID: 10, CasaID: 1, DuracaoMinutos: 60, Preco: 50, Ativo: true}, nil)
	agenda.On("HorarioDisponivel", mock.Anything, int64(1), dia("2025-03-14"), "14:00", 60).
		Return(true, nil)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(a domain.Agendamento) bool {
		return a.Codigo != "" &&
			a.HoraFim == "15:00" &&
			a.Status == domain.AgendamentoStatusPending &&
			a.NomeCliente == "Maria Da Silva" &&
			a.TelefoneCliente == "+5511987654321" &&
			a.Preco == 50
	})).Return(int64(7), nil)

	repo.On("GetByID", mock.Anything, int64(7)).
		Return(&domain.Agendamento{
			ID: 7, Codigo: "abc", CasaID: 1, AtendimentoID: 10,
			Data: dia("2025-03-14"), HoraInicio: "14:00", HoraFim: "15:00",
			Status: domain.AgendamentoStatusPending,
		}, nil)

	criado, err := svc.Create(context.Background(), dtoTeste())

	assert.NoError(t, err)
	assert.NotNil(t, criado)
	assert.Equal(t, "https://pagamento.example/casa-pai-joao", criado.LinkPagamento)
	repo.AssertExpectations(t)
}

func TestAgendamentoCreateHorarioIndisponivel(t *testing.T) {
	svc, repo, atendimentoRepo, casaRepo, agenda := novoAgendamentoTeste()

	casaRepo.On("GetByID", mock.Anything, int64(1)).Return(casaTeste(), nil)
	atendimentoRepo.On("GetByID", mock.Anything, int64(10)).
		Return(&domain.Atendimento{ID: 10, CasaID: 1, DuracaoMinutos: 60, Ativo: true}, nil)
	agenda.On("HorarioDisponivel", mock.Anything, int64(1), dia("2025-03-14"), "14:00", 60).
		Return(false, nil)

	_, err := svc.Create(context.Background(), dtoTeste())

	assert.Error(t, err)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAgendamentoCreateConflitoNaEscrita(t *testing.T) {
	svc, repo, atendimentoRepo, casaRepo, agenda := novoAgendamentoTeste()

	casaRepo.On("GetByID", mock.Anything, int64(1)).Return(casaTeste(), nil)
	atendimentoRepo.On("GetByID", mock.Anything, int64(10)).
		Return(&domain.Atendimento{ID: 10, CasaID: 1, DuracaoMinutos: 60, Ativo: true}, nil)
	agenda.On("HorarioDisponivel", mock.Anything, int64(1), dia("2025-03-14"), "14:00", 60).
		Return(true, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(int64(0), repository.ErrHorarioOcupado)

	_, err := svc.Create(context.Background(), dtoTeste())

	assert.ErrorIs(t, err, repository.ErrHorarioOcupado)
}

func TestAgendamentoCreateCasaInativa(t *testing.T) {
	svc, _, _, casaRepo, _ := novoAgendamentoTeste()

	inativa := casaTeste()
	inativa.Ativa = false
	casaRepo.On("GetByID", mock.Anything, int64(1)).Return(inativa, nil)

	_, err := svc.Create(context.Background(), dtoTeste())
	assert.Error(t, err)
}

func TestAgendamentoCreateAtendimentoDeOutraCasa(t *testing.T) {
	svc, _, atendimentoRepo, casaRepo, _ := novoAgendamentoTeste()

	casaRepo.On("GetByID", mock.Anything, int64(1)).Return(casaTeste(), nil)
	atendimentoRepo.On("GetByID", mock.Anything, int64(10)).
		Return(&domain.Atendimento{ID: 10, CasaID: 2, DuracaoMinutos: 60, Ativo: true}, nil)

	_, err := svc.Create(context.Background(), dtoTeste())
	assert.ErrorIs(t, err, ErrAtendimentoNaoEncontrado)
}

func TestAgendamentoCreateEmailInvalido(t *testing.T) {
	svc, repo, atendimentoRepo, casaRepo, _ := novoAgendamentoTeste()

	casaRepo.On("GetByID", mock.Anything, int64(1)).Return(casaTeste(), nil)
	atendimentoRepo.On("GetByID", mock.Anything, int64(10)).
		Return(&domain.Atendimento{ID: 10, CasaID: 1, DuracaoMinutos: 60, Ativo: true}, nil)

	dto := dtoTeste()
	dto.EmailCliente = "maria@"

	_, err := svc.Create(context.Background(), dto)
	assert.Error(t, err)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAgendamentoCreateDataInvalida(t *testing.T) {
	svc, _, atendimentoRepo, casaRepo, _ := novoAgendamentoTeste()

	casaRepo.On("GetByID", mock.Anything, int64(1)).Return(casaTeste(), nil)
	atendimentoRepo.On("GetByID", mock.Anything, int64(10)).
		Return(&domain.Atendimento{ID: 10, CasaID: 1, DuracaoMinutos: 60, Ativo: true}, nil)

	dto := dtoTeste()
	dto.Data = "14/03/2025"

	_, err := svc.Create(context.Background(), dto)
	assert.Error(t, err)
}

func TestAgendamentoUpdateStatus(t *testing.T) {
	casos := []struct {
		nome    string
		atual   domain.AgendamentoStatus
		novo    domain.AgendamentoStatus
		permite bool
	}{
		{"pendente para confirmado", domain.AgendamentoStatusPending, domain.AgendamentoStatusConfirmed, true},
		{"pendente para cancelado", domain.AgendamentoStatusPending, domain.AgendamentoStatusCancelled, true},
		{"pendente para concluído", domain.AgendamentoStatusPending, domain.AgendamentoStatusCompleted, false},
		{"confirmado para concluído", domain.AgendamentoStatusConfirmed, domain.AgendamentoStatusCompleted, true},
		{"confirmado para cancelado", domain.AgendamentoStatusConfirmed, domain.AgendamentoStatusCancelled, true},
		{"concluído para cancelado", domain.AgendamentoStatusCompleted, domain.AgendamentoStatusCancelled, false},
		{"cancelado para confirmado", domain.AgendamentoStatusCancelled, domain.AgendamentoStatusConfirmed, false},
	}

	for _, caso := range casos {
		t.Run(caso.nome, func(t *testing.T) {
			svc, repo, _, _, _ := novoAgendamentoTeste()

			repo.On("GetByID", mock.Anything, int64(7)).
				Return(&domain.Agendamento{ID: 7, Status: caso.atual}, nil)
			if caso.permite {
				repo.On("UpdateStatus", mock.Anything, int64(7), caso.novo).Return(nil)
			}

			err := svc.UpdateStatus(context.Background(), 7, caso.novo)

			if caso.permite {
				assert.NoError(t, err)
				repo.AssertExpectations(t)
			} else {
				assert.ErrorIs(t, err, ErrTransicaoStatusInvalida)
				repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestAgendamentoCancel(t *testing.T) {
	svc, repo, _, _, _ := novoAgendamentoTeste()

	repo.On("GetByID", mock.Anything, int64(7)).
		Return(&domain.Agendamento{ID: 7, Status: domain.AgendamentoStatusConfirmed}, nil)
	repo.On("UpdateStatus", mock.Anything, int64(7), domain.AgendamentoStatusCancelled).Return(nil)

	assert.NoError(t, svc.Cancel(context.Background(), 7))
	repo.AssertExpectations(t)
}

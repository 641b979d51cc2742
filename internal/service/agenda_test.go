package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"aruanda/config"
	"aruanda/internal/domain"
)

func novaAgendaTeste(agora time.Time) (*AgendaServiceImpl, *mockAgendamentoRepo, *mockDisponibilidadeRepo, *mockAtendimentoRepo) {
	agendamentoRepo := new(mockAgendamentoRepo)
	disponibilidadeRepo := new(mockDisponibilidadeRepo)
	atendimentoRepo := new(mockAtendimentoRepo)

	svc := NewAgendaService(agendamentoRepo, disponibilidadeRepo, atendimentoRepo, config.AgendaConfig{
		AntecedenciaMinima: 2 * time.Hour,
		IntervaloSlotsMin:  30,
		DiasJanela:         7,
	}, zap.NewNop())
	svc.agora = func() time.Time { return agora }

	return svc, agendamentoRepo, disponibilidadeRepo, atendimentoRepo
}

func dia(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestJanelaSemana(t *testing.T) {
	svc, _, _, _ := novaAgendaTeste(time.Now())

	referencia := time.Date(2025, 3, 12, 15, 42, 11, 0, time.UTC)
	janela := svc.JanelaSemana(referencia)

	assert.Len(t, janela, 7)
	assert.Equal(t, time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), janela[0])
	assert.Equal(t, time.Date(2025, 3, 18, 0, 0, 0, 0, time.UTC), janela[6])
	for i := 1; i < len(janela); i++ {
		assert.Equal(t, 24*time.Hour, janela[i].Sub(janela[i-1]))
	}
}

func TestGerarSlotsDiaSemModelo(t *testing.T) {
	agora := time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC)
	svc, _, _, _ := novaAgendaTeste(agora)

	assert.Nil(t, svc.GerarSlotsDia(dia("2025-03-14"), nil, 60, nil, agora))

	inativo := &domain.DisponibilidadeDia{CasaID: 1, DiaSemana: 5, HoraInicio: "09:00", HoraFim: "18:00", Ativo: false}
	assert.Nil(t, svc.GerarSlotsDia(dia("2025-03-14"), inativo, 60, nil, agora))

	ativo := &domain.DisponibilidadeDia{CasaID: 1, DiaSemana: 5, HoraInicio: "09:00", HoraFim: "18:00", Ativo: true}
	assert.Nil(t, svc.GerarSlotsDia(dia("2025-03-14"), ativo, 0, nil, agora))
	assert.Nil(t, svc.GerarSlotsDia(dia("2025-03-14"), ativo, -30, nil, agora))
}

func TestGerarSlotsDiaHoraInvalidaNoModelo(t *testing.T) {
	agora := time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC)
	svc, _, _, _ := novaAgendaTeste(agora)

	quebrado := &domain.DisponibilidadeDia{CasaID: 1, DiaSemana: 5, HoraInicio: "9h", HoraFim: "18:00", Ativo: true}
	assert.Nil(t, svc.GerarSlotsDia(dia("2025-03-14"), quebrado, 60, nil, agora))
}

// Atendimento de 90 minutos numa janela 09:00-18:00: o último início que
// ainda cabe é 16:30.
func TestGerarSlotsDiaUltimoInicioQueCabe(t *testing.T) {
	agora := time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC)
	svc, _, _, _ := novaAgendaTeste(agora)

	disp := &domain.DisponibilidadeDia{CasaID: 1, DiaSemana: 5, HoraInicio: "09:00", HoraFim: "18:00", Ativo: true}
	slots := svc.GerarSlotsDia(dia("2025-03-14"), disp, 90, nil, agora)

	assert.Len(t, slots, 16)
	assert.Equal(t, "09:00", slots[0].Hora)
	assert.Equal(t, "10:30", slots[0].HoraFim)
	assert.Equal(t, "16:30", slots[len(slots)-1].Hora)
	assert.Equal(t, "18:00", slots[len(slots)-1].HoraFim)
}

// Às 08:00 do próprio dia, com antecedência mínima de 2h, o primeiro
// horário oferecido é 10:00 — 09:00 e 09:30 ficam de fora.
func TestGerarSlotsDiaAntecedenciaMinima(t *testing.T) {
	agora := time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC)
	svc, _, _, _ := novaAgendaTeste(agora)

	disp := &domain.DisponibilidadeDia{CasaID: 1, DiaSemana: 3, HoraInicio: "09:00", HoraFim: "18:00", Ativo: true}
	slots := svc.GerarSlotsDia(dia("2025-03-12"), disp, 60, nil, agora)

	assert.Len(t, slots, 15)
	assert.Equal(t, "10:00", slots[0].Hora)
	for _, slot := range slots {
		assert.NotEqual(t, "09:00", slot.Hora)
		assert.NotEqual(t, "09:30", slot.Hora)
	}
}

// O corte de antecedência não pode depender do fuso em que a data foi
// construída: o parse de "2006-01-02" devolve meia-noite UTC enquanto o
// relógio do servidor corre no fuso local.
func TestGerarSlotsDiaAntecedenciaFusoNaoUTC(t *testing.T) {
	saoPaulo := time.FixedZone("-03", -3*60*60)
	agora := time.Date(2025, 3, 12, 8, 0, 0, 0, saoPaulo)
	svc, _, _, _ := novaAgendaTeste(agora)

	disp := &domain.DisponibilidadeDia{CasaID: 1, DiaSemana: 3, HoraInicio: "09:00", HoraFim: "18:00", Ativo: true}
	slots := svc.GerarSlotsDia(dia("2025-03-12"), disp, 60, nil, agora)

	assert.Len(t, slots, 15)
	assert.Equal(t, "10:00", slots[0].Hora)
}

// Quando agora + antecedência atravessa a meia-noite, o começo do dia
// seguinte também sai.
func TestGerarSlotsDiaAntecedenciaViraODia(t *testing.T) {
	agora := time.Date(2025, 3, 12, 23, 30, 0, 0, time.UTC)
	svc, _, _, _ := novaAgendaTeste(agora)

	disp := &domain.DisponibilidadeDia{CasaID: 1, DiaSemana: 4, HoraInicio: "00:00", HoraFim: "04:00", Ativo: true}
	slots := svc.GerarSlotsDia(dia("2025-03-13"), disp, 60, nil, agora)

	assert.Len(t, slots, 4)
	assert.Equal(t, "01:30", slots[0].Hora)
}

func TestGerarSlotsDiaDataPassada(t *testing.T) {
	agora := time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)
	svc, _, _, _ := novaAgendaTeste(agora)

	disp := &domain.DisponibilidadeDia{CasaID: 1, DiaSemana: 3, HoraInicio: "09:00", HoraFim: "18:00", Ativo: true}
	assert.Empty(t, svc.GerarSlotsDia(dia("2025-03-12"), disp, 60, nil, agora))
}

// Em dias futuros a antecedência mínima não corta nada.
func TestGerarSlotsDiaFuturoSemCorte(t *testing.T) {
	agora := time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC)
	svc, _, _, _ := novaAgendaTeste(agora)

	disp := &domain.DisponibilidadeDia{CasaID: 1, DiaSemana: 4, HoraInicio: "09:00", HoraFim: "18:00", Ativo: true}
	slots := svc.GerarSlotsDia(dia("2025-03-13"), disp, 60, nil, agora)

	assert.Equal(t, "09:00", slots[0].Hora)
}

// Agendamento das 14:00 às 15:00 bloqueia os inícios 13:30, 14:00 e
// 14:30 de um atendimento de 60 minutos; 13:00 e 15:00 continuam livres
// (intervalos meio-abertos: terminar às 14:00 ou começar às 15:00 não
// conflita).
func TestGerarSlotsDiaConflitoMeioAberto(t *testing.T) {
	agora := time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC)
	svc, _, _, _ := novaAgendaTeste(agora)

	disp := &domain.DisponibilidadeDia{CasaID: 1, DiaSemana: 5, HoraInicio: "09:00", HoraFim: "18:00", Ativo: true}
	agendamentos := []domain.Agendamento{
		{CasaID: 1, Data: dia("2025-03-14"), HoraInicio: "14:00", HoraFim: "15:00", Status: domain.AgendamentoStatusPending},
	}

	slots := svc.GerarSlotsDia(dia("2025-03-14"), disp, 60, agendamentos, agora)

	porHora := make(map[string]bool, len(slots))
	for _, slot := range slots {
		porHora[slot.Hora] = slot.Disponivel
	}

	assert.True(t, porHora["13:00"])
	assert.False(t, porHora["13:30"])
	assert.False(t, porHora["14:00"])
	assert.False(t, porHora["14:30"])
	assert.True(t, porHora["15:00"])
}

func TestGerarSlotsDiaStatusNaoOcupante(t *testing.T) {
	agora := time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC)
	svc, _, _, _ := novaAgendaTeste(agora)

	disp := &domain.DisponibilidadeDia{CasaID: 1, DiaSemana: 5, HoraInicio: "09:00", HoraFim: "18:00", Ativo: true}
	agendamentos := []domain.Agendamento{
		{CasaID: 1, Data: dia("2025-03-14"), HoraInicio: "14:00", HoraFim: "15:00", Status: domain.AgendamentoStatusCancelled},
		{CasaID: 1, Data: dia("2025-03-14"), HoraInicio: "10:00", HoraFim: "11:00", Status: domain.AgendamentoStatusCompleted},
	}

	slots := svc.GerarSlotsDia(dia("2025-03-14"), disp, 60, agendamentos, agora)

	for _, slot := range slots {
		assert.True(t, slot.Disponivel, "slot %s deveria estar livre", slot.Hora)
	}
}

func TestGerarSlotsDiaIgnoraOutrasDatas(t *testing.T) {
	agora := time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC)
	svc, _, _, _ := novaAgendaTeste(agora)

	disp := &domain.DisponibilidadeDia{CasaID: 1, DiaSemana: 5, HoraInicio: "09:00", HoraFim: "18:00", Ativo: true}
	agendamentos := []domain.Agendamento{
		{CasaID: 1, Data: dia("2025-03-13"), HoraInicio: "14:00", HoraFim: "15:00", Status: domain.AgendamentoStatusConfirmed},
	}

	slots := svc.GerarSlotsDia(dia("2025-03-14"), disp, 60, agendamentos, agora)

	for _, slot := range slots {
		assert.True(t, slot.Disponivel)
	}
}

func modeloSemanalTeste() []domain.DisponibilidadeDia {
	dias := []domain.DisponibilidadeDia{
		{CasaID: 1, DiaSemana: 0, Ativo: false},
		{CasaID: 1, DiaSemana: 6, HoraInicio: "10:00", HoraFim: "16:00", Ativo: true},
	}
	for diaSemana := 1; diaSemana <= 5; diaSemana++ {
		dias = append(dias, domain.DisponibilidadeDia{
			CasaID: 1, DiaSemana: diaSemana, HoraInicio: "09:00", HoraFim: "18:00", Ativo: true,
		})
	}
	return dias
}

func TestSlotsDisponiveisSemana(t *testing.T) {
	// Quarta-feira, 08:00.
	agora := time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC)
	svc, agendamentoRepo, disponibilidadeRepo, atendimentoRepo := novaAgendaTeste(agora)

	atendimentoRepo.On("GetByID", mock.Anything, int64(10)).
		Return(&domain.Atendimento{ID: 10, CasaID: 1, DuracaoMinutos: 60, Ativo: true}, nil)
	disponibilidadeRepo.On("GetByCasa", mock.Anything, int64(1)).
		Return(modeloSemanalTeste(), nil)
	agendamentoRepo.On("ListByCasaEPeriodo", mock.Anything, int64(1), mock.Anything, mock.Anything).
		Return([]domain.Agendamento{
			{CasaID: 1, Data: dia("2025-03-13"), HoraInicio: "14:00", HoraFim: "15:00", Status: domain.AgendamentoStatusConfirmed},
		}, nil)

	slots, err := svc.SlotsDisponiveisSemana(context.Background(), 1, 10)

	assert.NoError(t, err)
	// qua 15 (antecedência corta 09:00 e 09:30) + qui 14 (3 bloqueados)
	// + sex 17 + sáb 11 + dom 0 + seg 17 + ter 17
	assert.Len(t, slots, 91)

	assert.Equal(t, "2025-03-12", slots[0].Data)
	assert.Equal(t, "10:00", slots[0].Hora)
	assert.Equal(t, "Quarta-feira", slots[0].NomeDia)

	anterior := ""
	for _, slot := range slots {
		assert.True(t, slot.Disponivel)
		assert.NotEqual(t, "2025-03-16", slot.Data, "domingo está inativo")
		if slot.Data == "2025-03-13" {
			assert.NotContains(t, []string{"13:30", "14:00", "14:30"}, slot.Hora)
		}
		chave := slot.Data + " " + slot.Hora
		assert.Less(t, anterior, chave, "slots devem vir ordenados por data e hora")
		anterior = chave
	}

	// O cálculo é determinístico para o mesmo relógio.
	repetido, err := svc.SlotsDisponiveisSemana(context.Background(), 1, 10)
	assert.NoError(t, err)
	assert.Equal(t, slots, repetido)
}

func TestSlotsDisponiveisSemanaAtendimentoNaoEncontrado(t *testing.T) {
	agora := time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC)
	svc, _, _, atendimentoRepo := novaAgendaTeste(agora)

	atendimentoRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, nil)

	_, err := svc.SlotsDisponiveisSemana(context.Background(), 1, 99)
	assert.ErrorIs(t, err, ErrAtendimentoNaoEncontrado)
}

func TestSlotsDisponiveisSemanaAtendimentoDeOutraCasa(t *testing.T) {
	agora := time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC)
	svc, _, _, atendimentoRepo := novaAgendaTeste(agora)

	atendimentoRepo.On("GetByID", mock.Anything, int64(10)).
		Return(&domain.Atendimento{ID: 10, CasaID: 2, DuracaoMinutos: 60, Ativo: true}, nil)

	_, err := svc.SlotsDisponiveisSemana(context.Background(), 1, 10)
	assert.ErrorIs(t, err, ErrAtendimentoNaoEncontrado)
}

func TestSlotsDisponiveisSemanaDuracaoInvalida(t *testing.T) {
	agora := time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC)
	svc, _, _, atendimentoRepo := novaAgendaTeste(agora)

	atendimentoRepo.On("GetByID", mock.Anything, int64(10)).
		Return(&domain.Atendimento{ID: 10, CasaID: 1, DuracaoMinutos: 0, Ativo: true}, nil)

	_, err := svc.SlotsDisponiveisSemana(context.Background(), 1, 10)
	assert.ErrorIs(t, err, ErrDuracaoInvalida)
}

// Quando o modelo semanal ou os agendamentos não podem ser lidos, a
// semana volta vazia em vez de oferecer horários não verificados.
func TestSlotsDisponiveisSemanaFalhaDeBusca(t *testing.T) {
	agora := time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC)

	t.Run("falha no modelo semanal", func(t *testing.T) {
		svc, _, disponibilidadeRepo, atendimentoRepo := novaAgendaTeste(agora)

		atendimentoRepo.On("GetByID", mock.Anything, int64(10)).
			Return(&domain.Atendimento{ID: 10, CasaID: 1, DuracaoMinutos: 60, Ativo: true}, nil)
		disponibilidadeRepo.On("GetByCasa", mock.Anything, int64(1)).
			Return(nil, errors.New("conexão recusada"))

		slots, err := svc.SlotsDisponiveisSemana(context.Background(), 1, 10)
		assert.NoError(t, err)
		assert.Empty(t, slots)
		assert.NotNil(t, slots)
	})

	t.Run("falha nos agendamentos", func(t *testing.T) {
		svc, agendamentoRepo, disponibilidadeRepo, atendimentoRepo := novaAgendaTeste(agora)

		atendimentoRepo.On("GetByID", mock.Anything, int64(10)).
			Return(&domain.Atendimento{ID: 10, CasaID: 1, DuracaoMinutos: 60, Ativo: true}, nil)
		disponibilidadeRepo.On("GetByCasa", mock.Anything, int64(1)).
			Return(modeloSemanalTeste(), nil)
		agendamentoRepo.On("ListByCasaEPeriodo", mock.Anything, int64(1), mock.Anything, mock.Anything).
			Return(nil, errors.New("timeout"))

		slots, err := svc.SlotsDisponiveisSemana(context.Background(), 1, 10)
		assert.NoError(t, err)
		assert.Empty(t, slots)
		assert.NotNil(t, slots)
	})
}

func TestHorarioDisponivel(t *testing.T) {
	agora := time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC)
	svc, agendamentoRepo, disponibilidadeRepo, _ := novaAgendaTeste(agora)

	data := dia("2025-03-14")
	disponibilidadeRepo.On("GetByCasaEDia", mock.Anything, int64(1), 5).
		Return(&domain.DisponibilidadeDia{CasaID: 1, DiaSemana: 5, HoraInicio: "09:00", HoraFim: "18:00", Ativo: true}, nil)
	agendamentoRepo.On("ListByCasaEPeriodo", mock.Anything, int64(1), data, data).
		Return([]domain.Agendamento{
			{CasaID: 1, Data: data, HoraInicio: "14:00", HoraFim: "15:00", Status: domain.AgendamentoStatusPending},
		}, nil)

	livre, err := svc.HorarioDisponivel(context.Background(), 1, data, "15:00", 60)
	assert.NoError(t, err)
	assert.True(t, livre)

	ocupado, err := svc.HorarioDisponivel(context.Background(), 1, data, "14:30", 60)
	assert.NoError(t, err)
	assert.False(t, ocupado)

	foraDaJanela, err := svc.HorarioDisponivel(context.Background(), 1, data, "18:00", 60)
	assert.NoError(t, err)
	assert.False(t, foraDaJanela)
}

// O caminho de escrita recebe a data de um parse em UTC; com o relógio
// num fuso negativo, um horário 2h à frente do relógio local tem de
// continuar livre, e um aquém da antecedência tem de ser recusado.
func TestHorarioDisponivelFusoNaoUTC(t *testing.T) {
	saoPaulo := time.FixedZone("-03", -3*60*60)
	agora := time.Date(2025, 3, 14, 8, 0, 0, 0, saoPaulo)
	svc, agendamentoRepo, disponibilidadeRepo, _ := novaAgendaTeste(agora)

	data := dia("2025-03-14")
	disponibilidadeRepo.On("GetByCasaEDia", mock.Anything, int64(1), 5).
		Return(&domain.DisponibilidadeDia{CasaID: 1, DiaSemana: 5, HoraInicio: "09:00", HoraFim: "18:00", Ativo: true}, nil)
	agendamentoRepo.On("ListByCasaEPeriodo", mock.Anything, int64(1), data, data).
		Return([]domain.Agendamento{}, nil)

	livre, err := svc.HorarioDisponivel(context.Background(), 1, data, "10:00", 60)
	assert.NoError(t, err)
	assert.True(t, livre)

	cedo, err := svc.HorarioDisponivel(context.Background(), 1, data, "09:30", 60)
	assert.NoError(t, err)
	assert.False(t, cedo)
}

func TestHorarioDisponivelDuracaoInvalida(t *testing.T) {
	svc, _, _, _ := novaAgendaTeste(time.Now())

	_, err := svc.HorarioDisponivel(context.Background(), 1, dia("2025-03-14"), "10:00", 0)
	assert.ErrorIs(t, err, ErrDuracaoInvalida)
}

// No caminho de escrita a incerteza é recusa: erro de busca propaga.
func TestHorarioDisponivelPropagaErro(t *testing.T) {
	agora := time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC)
	svc, _, disponibilidadeRepo, _ := novaAgendaTeste(agora)

	disponibilidadeRepo.On("GetByCasaEDia", mock.Anything, int64(1), 5).
		Return(nil, errors.New("conexão recusada"))

	_, err := svc.HorarioDisponivel(context.Background(), 1, dia("2025-03-14"), "10:00", 60)
	assert.Error(t, err)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"aruanda/config"
	"aruanda/internal/domain"
	"aruanda/internal/repository"
)

var (
	ErrDuracaoInvalida          = errors.New("a duração do atendimento deve ser maior que zero")
	ErrAtendimentoNaoEncontrado = errors.New("atendimento não encontrado")
)

// AgendaServiceImpl calcula os horários agendáveis de uma casa numa
// janela rolante de dias a partir de hoje. O cálculo é puramente
// funcional sobre o modelo semanal e os agendamentos existentes; nenhum
// estado é mantido entre chamadas e nenhuma reserva é feita aqui — a
// garantia contra duplo agendamento fica no caminho de escrita
// (AgendamentoRepo.Create).
type AgendaServiceImpl struct {
	agendamentoRepo     repository.AgendamentoRepository
	disponibilidadeRepo repository.DisponibilidadeRepository
	atendimentoRepo     repository.AtendimentoRepository
	cfg                 config.AgendaConfig
	logger              *zap.Logger

	agora func() time.Time
}

func NewAgendaService(
	agendamentoRepo repository.AgendamentoRepository,
	disponibilidadeRepo repository.DisponibilidadeRepository,
	atendimentoRepo repository.AtendimentoRepository,
	cfg config.AgendaConfig,
	logger *zap.Logger,
) *AgendaServiceImpl {
	if cfg.IntervaloSlotsMin <= 0 {
		cfg.IntervaloSlotsMin = 30
	}
	if cfg.DiasJanela <= 0 {
		cfg.DiasJanela = 7
	}

	return &AgendaServiceImpl{
		agendamentoRepo:     agendamentoRepo,
		disponibilidadeRepo: disponibilidadeRepo,
		atendimentoRepo:     atendimentoRepo,
		cfg:                 cfg,
		logger:              logger,
		agora:               time.Now,
	}
}

// JanelaSemana devolve as datas consecutivas da janela, começando na
// data da própria referência. A janela rola a partir de hoje; não há
// ajuste para segunda-feira.
func (s *AgendaServiceImpl) JanelaSemana(referencia time.Time) []time.Time {
	inicio := time.Date(referencia.Year(), referencia.Month(), referencia.Day(), 0, 0, 0, 0, referencia.Location())

	dias := make([]time.Time, 0, s.cfg.DiasJanela)
	for i := 0; i < s.cfg.DiasJanela; i++ {
		dias = append(dias, inicio.AddDate(0, 0, i))
	}

	return dias
}

// GerarSlotsDia enumera os horários candidatos de um dia. Dias sem
// modelo ou inativos não geram nada. No dia corrente, candidatos antes
// de agora + antecedência mínima são descartados. Um candidato fica
// indisponível quando seu intervalo meio-aberto [início, fim) cruza o
// de algum agendamento da mesma data.
func (s *AgendaServiceImpl) GerarSlotsDia(
	data time.Time,
	disp *domain.DisponibilidadeDia,
	duracaoMin int,
	agendamentos []domain.Agendamento,
	agora time.Time,
) []domain.TimeSlot {
	if disp == nil || !disp.Ativo || duracaoMin <= 0 {
		return nil
	}

	inicioMin, err := horaParaMinutos(disp.HoraInicio)
	if err != nil {
		s.logger.Warn("hora de início inválida no modelo semanal",
			zap.Int64("casaID", disp.CasaID),
			zap.Int("diaSemana", disp.DiaSemana),
			zap.String("hora", disp.HoraInicio))
		return nil
	}

	fimMin, err := horaParaMinutos(disp.HoraFim)
	if err != nil {
		s.logger.Warn("hora de fim inválida no modelo semanal",
			zap.Int64("casaID", disp.CasaID),
			zap.Int("diaSemana", disp.DiaSemana),
			zap.String("hora", disp.HoraFim))
		return nil
	}

	dataStr := data.Format("2006-01-02")

	// O corte de antecedência compara horário de parede, não instantes:
	// a data pode chegar em UTC (parse de "2006-01-02") enquanto o
	// relógio do servidor corre em outro fuso. Se o limite cai depois do
	// dia, o dia inteiro sai; se cai antes, nada sai.
	limite := agora.Add(s.cfg.AntecedenciaMinima)
	corteMin := -1
	switch limiteData := limite.Format("2006-01-02"); {
	case dataStr == limiteData:
		corteMin = limite.Hour()*60 + limite.Minute()
		if limite.Second() > 0 || limite.Nanosecond() > 0 {
			corteMin++
		}
	case dataStr < limiteData:
		corteMin = 24 * 60
	}

	var ocupados [][2]int
	for _, agendamento := range agendamentos {
		if agendamento.Data.Format("2006-01-02") != dataStr || !agendamento.Status.Ocupa() {
			continue
		}
		bInicio, err := horaParaMinutos(agendamento.HoraInicio)
		if err != nil {
			continue
		}
		bFim, err := horaParaMinutos(agendamento.HoraFim)
		if err != nil {
			continue
		}
		ocupados = append(ocupados, [2]int{bInicio, bFim})
	}

	var slots []domain.TimeSlot
	for candidato := inicioMin; candidato+duracaoMin <= fimMin; candidato += s.cfg.IntervaloSlotsMin {
		if candidato < corteMin {
			continue
		}

		disponivel := true
		for _, ocupado := range ocupados {
			if candidato < ocupado[1] && candidato+duracaoMin > ocupado[0] {
				disponivel = false
				break
			}
		}

		slots = append(slots, domain.TimeSlot{
			Data:         dataStr,
			Hora:         minutosParaHora(candidato),
			HoraFim:      minutosParaHora(candidato + duracaoMin),
			Disponivel:   disponivel,
			DiaSemana:    int(data.Weekday()),
			NomeDia:      domain.NomeDiaSemana(int(data.Weekday())),
			DataExibicao: data.Format("02/01/2006"),
		})
	}

	return slots
}

// SlotsDisponiveisSemana devolve, em ordem de data e hora, apenas os
// horários livres da janela. Falha ao buscar os dados de conflito é
// tratada de forma conservadora: melhor mostrar a semana vazia do que
// oferecer um horário que não pôde ser verificado.
func (s *AgendaServiceImpl) SlotsDisponiveisSemana(ctx context.Context, casaID, atendimentoID int64) ([]domain.TimeSlot, error) {
	atendimento, err := s.atendimentoRepo.GetByID(ctx, atendimentoID)
	if err != nil {
		s.logger.Error("erro ao buscar atendimento", zap.Int64("atendimentoID", atendimentoID), zap.Error(err))
		return nil, fmt.Errorf("erro ao buscar atendimento: %w", err)
	}

	if atendimento == nil || atendimento.CasaID != casaID {
		return nil, ErrAtendimentoNaoEncontrado
	}

	if atendimento.DuracaoMinutos <= 0 {
		return nil, ErrDuracaoInvalida
	}

	agora := s.agora()
	janela := s.JanelaSemana(agora)

	modelo, err := s.disponibilidadeRepo.GetByCasa(ctx, casaID)
	if err != nil {
		s.logger.Error("erro ao buscar modelo semanal; devolvendo agenda vazia",
			zap.Int64("casaID", casaID), zap.Error(err))
		return []domain.TimeSlot{}, nil
	}

	porDia := make(map[int]*domain.DisponibilidadeDia, len(modelo))
	for i := range modelo {
		porDia[modelo[i].DiaSemana] = &modelo[i]
	}

	agendamentos, err := s.agendamentoRepo.ListByCasaEPeriodo(ctx, casaID, janela[0], janela[len(janela)-1])
	if err != nil {
		s.logger.Error("erro ao buscar agendamentos da janela; devolvendo agenda vazia",
			zap.Int64("casaID", casaID), zap.Error(err))
		return []domain.TimeSlot{}, nil
	}

	slots := []domain.TimeSlot{}
	for _, dia := range janela {
		diaSlots := s.GerarSlotsDia(dia, porDia[int(dia.Weekday())], atendimento.DuracaoMinutos, agendamentos, agora)
		for _, slot := range diaSlots {
			if slot.Disponivel {
				slots = append(slots, slot)
			}
		}
	}

	return slots, nil
}

// HorarioDisponivel confere um horário específico antes da criação de
// um agendamento. Ao contrário da listagem da semana, erros de busca
// aqui são propagados: na escrita, incerteza vira recusa.
func (s *AgendaServiceImpl) HorarioDisponivel(ctx context.Context, casaID int64, data time.Time, horaInicio string, duracaoMin int) (bool, error) {
	if duracaoMin <= 0 {
		return false, ErrDuracaoInvalida
	}

	disp, err := s.disponibilidadeRepo.GetByCasaEDia(ctx, casaID, int(data.Weekday()))
	if err != nil {
		return false, fmt.Errorf("erro ao buscar disponibilidade do dia: %w", err)
	}

	agendamentos, err := s.agendamentoRepo.ListByCasaEPeriodo(ctx, casaID, data, data)
	if err != nil {
		return false, fmt.Errorf("erro ao buscar agendamentos do dia: %w", err)
	}

	for _, slot := range s.GerarSlotsDia(data, disp, duracaoMin, agendamentos, s.agora()) {
		if slot.Hora == horaInicio {
			return slot.Disponivel, nil
		}
	}

	return false, nil
}

func horaParaMinutos(hora string) (int, error) {
	t, err := time.Parse("15:04", hora)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func minutosParaHora(minutos int) string {
	return fmt.Sprintf("%02d:%02d", minutos/60, minutos%60)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"aruanda/internal/domain"
	"aruanda/internal/repository"
	"aruanda/pkg/validator"
)

var ErrTransicaoStatusInvalida = errors.New("transição de status inválida")

type AgendamentoServiceImpl struct {
	repo            repository.AgendamentoRepository
	atendimentoRepo repository.AtendimentoRepository
	casaRepo        repository.CasaRepository
	agenda          AgendaService
	logger          *zap.Logger
}

func NewAgendamentoService(
	repo repository.AgendamentoRepository,
	atendimentoRepo repository.AtendimentoRepository,
	casaRepo repository.CasaRepository,
	agenda AgendaService,
	logger *zap.Logger,
) *AgendamentoServiceImpl {
	return &AgendamentoServiceImpl{
		repo:            repo,
		atendimentoRepo: atendimentoRepo,
		casaRepo:        casaRepo,
		agenda:          agenda,
		logger:          logger,
	}
}

// Create confere o horário contra a agenda da casa antes de inserir. O
// repositório repete a checagem de conflito dentro da transação de
// escrita, então duas criações simultâneas do mesmo horário não passam
// as duas.
func (s *AgendamentoServiceImpl) Create(ctx context.Context, dto domain.CreateAgendamentoDTO) (*domain.Agendamento, error) {
	casa, err := s.casaRepo.GetByID(ctx, dto.CasaID)
	if err != nil {
		s.logger.Error("erro ao buscar casa", zap.Int64("casaID", dto.CasaID), zap.Error(err))
		return nil, fmt.Errorf("erro ao buscar casa: %w", err)
	}

	if casa == nil || !casa.Ativa {
		return nil, errors.New("casa não encontrada ou inativa")
	}

	atendimento, err := s.atendimentoRepo.GetByID(ctx, dto.AtendimentoID)
	if err != nil {
		s.logger.Error("erro ao buscar atendimento", zap.Int64("atendimentoID", dto.AtendimentoID), zap.Error(err))
		return nil, fmt.Errorf("erro ao buscar atendimento: %w", err)
	}

	if atendimento == nil || atendimento.CasaID != dto.CasaID || !atendimento.Ativo {
		return nil, ErrAtendimentoNaoEncontrado
	}

	data, err := time.Parse("2006-01-02", dto.Data)
	if err != nil {
		return nil, errors.New("formato de data inválido, esperado YYYY-MM-DD")
	}

	inicioMin, err := horaParaMinutos(dto.HoraInicio)
	if err != nil {
		return nil, errors.New("formato de hora inválido, esperado HH:MM")
	}

	if !validator.ValidateTelefone(dto.TelefoneCliente) {
		return nil, errors.New("telefone do cliente inválido")
	}

	if dto.EmailCliente != "" && !validator.ValidateEmail(dto.EmailCliente) {
		return nil, errors.New("e-mail do cliente inválido")
	}

	disponivel, err := s.agenda.HorarioDisponivel(ctx, dto.CasaID, data, dto.HoraInicio, atendimento.DuracaoMinutos)
	if err != nil {
		s.logger.Error("erro ao verificar disponibilidade do horário", zap.Error(err))
		return nil, errors.New("erro ao verificar a disponibilidade do horário")
	}

	if !disponivel {
		return nil, errors.New("o horário escolhido não está disponível")
	}

	agendamento := domain.Agendamento{
		Codigo:          uuid.NewString(),
		CasaID:          dto.CasaID,
		AtendimentoID:   dto.AtendimentoID,
		NomeCliente:     validator.FormatNome(dto.NomeCliente),
		TelefoneCliente: validator.FormatTelefone(dto.TelefoneCliente),
		EmailCliente:    dto.EmailCliente,
		Data:            data,
		HoraInicio:      dto.HoraInicio,
		HoraFim:         minutosParaHora(inicioMin + atendimento.DuracaoMinutos),
		Status:          domain.AgendamentoStatusPending,
		Preco:           atendimento.Preco,
		Observacoes:     dto.Observacoes,
	}

	id, err := s.repo.Create(ctx, agendamento)
	if err != nil {
		if errors.Is(err, repository.ErrHorarioOcupado) {
			return nil, err
		}
		s.logger.Error("erro ao criar agendamento", zap.Error(err))
		return nil, errors.New("erro ao criar agendamento")
	}

	criado, err := s.repo.GetByID(ctx, id)
	if err != nil || criado == nil {
		s.logger.Error("erro ao buscar agendamento recém-criado", zap.Int64("id", id), zap.Error(err))
		return nil, errors.New("erro ao buscar agendamento criado")
	}

	// O pagamento acontece fora da plataforma: devolvemos o link da
	// casa para o cliente ser redirecionado.
	criado.LinkPagamento = casa.LinkPagamento

	return criado, nil
}

func (s *AgendamentoServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Agendamento, error) {
	agendamento, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("erro ao buscar agendamento", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("erro ao buscar agendamento: %w", err)
	}
	return agendamento, nil
}

func (s *AgendamentoServiceImpl) GetByCodigo(ctx context.Context, codigo string) (*domain.Agendamento, error) {
	agendamento, err := s.repo.GetByCodigo(ctx, codigo)
	if err != nil {
		s.logger.Error("erro ao buscar agendamento por código", zap.String("codigo", codigo), zap.Error(err))
		return nil, fmt.Errorf("erro ao buscar agendamento: %w", err)
	}
	return agendamento, nil
}

var transicoesValidas = map[domain.AgendamentoStatus][]domain.AgendamentoStatus{
	domain.AgendamentoStatusPending:   {domain.AgendamentoStatusConfirmed, domain.AgendamentoStatusCancelled},
	domain.AgendamentoStatusConfirmed: {domain.AgendamentoStatusCompleted, domain.AgendamentoStatusCancelled},
}

func (s *AgendamentoServiceImpl) UpdateStatus(ctx context.Context, id int64, status domain.AgendamentoStatus) error {
	if !status.IsValid() {
		return errors.New("status inválido")
	}

	agendamento, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("erro ao buscar agendamento", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("erro ao buscar agendamento: %w", err)
	}

	if agendamento == nil {
		return errors.New("agendamento não encontrado")
	}

	permitidos := transicoesValidas[agendamento.Status]
	valido := false
	for _, permitido := range permitidos {
		if status == permitido {
			valido = true
			break
		}
	}

	if !valido {
		return ErrTransicaoStatusInvalida
	}

	err = s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		s.logger.Error("erro ao atualizar status", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("erro ao atualizar status: %w", err)
	}

	return nil
}

func (s *AgendamentoServiceImpl) Cancel(ctx context.Context, id int64) error {
	return s.UpdateStatus(ctx, id, domain.AgendamentoStatusCancelled)
}

func (s *AgendamentoServiceImpl) List(ctx context.Context, filter domain.AgendamentoFilter) ([]domain.Agendamento, int, error) {
	agendamentos, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("erro ao listar agendamentos", zap.Error(err))
		return nil, 0, fmt.Errorf("erro ao listar agendamentos: %w", err)
	}
	return agendamentos, total, nil
}

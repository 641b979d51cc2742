package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"aruanda/config"
	"aruanda/internal/domain"
	"aruanda/internal/repository"
)

type Deps struct {
	Repos  *repository.Repositories
	Logger *zap.Logger
	Config *config.Config
}

type Services struct {
	Casa            CasaService
	Atendimento     AtendimentoService
	Disponibilidade DisponibilidadeService
	Agenda          AgendaService
	Agendamento     AgendamentoService
	Evento          EventoService
	Produto         ProdutoService
}

func NewServices(deps Deps) *Services {
	agenda := NewAgendaService(deps.Repos.Agendamento, deps.Repos.Disponibilidade, deps.Repos.Atendimento, deps.Config.Agenda, deps.Logger)

	return &Services{
		Casa:            NewCasaService(deps.Repos.Casa, deps.Logger),
		Atendimento:     NewAtendimentoService(deps.Repos.Atendimento, deps.Repos.Casa, deps.Logger),
		Disponibilidade: NewDisponibilidadeService(deps.Repos.Disponibilidade, deps.Repos.Casa, deps.Logger),
		Agenda:          agenda,
		Agendamento:     NewAgendamentoService(deps.Repos.Agendamento, deps.Repos.Atendimento, deps.Repos.Casa, agenda, deps.Logger),
		Evento:          NewEventoService(deps.Repos.Evento, deps.Repos.Casa, deps.Logger),
		Produto:         NewProdutoService(deps.Repos.Produto, deps.Repos.Casa, deps.Logger),
	}
}

type CasaService interface {
	Create(ctx context.Context, dto domain.CreateCasaDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Casa, error)
	Update(ctx context.Context, id int64, dto domain.UpdateCasaDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.CasaFilter) ([]domain.Casa, int, error)
}

type AtendimentoService interface {
	Create(ctx context.Context, casaID int64, dto domain.CreateAtendimentoDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Atendimento, error)
	Update(ctx context.Context, id int64, dto domain.UpdateAtendimentoDTO) error
	Delete(ctx context.Context, id int64) error
	ListByCasa(ctx context.Context, casaID int64) ([]domain.Atendimento, error)
}

type DisponibilidadeService interface {
	GetByCasa(ctx context.Context, casaID int64) ([]domain.DisponibilidadeDia, error)
	Replace(ctx context.Context, casaID int64, dias []domain.DisponibilidadeDiaDTO) error
}

type AgendaService interface {
	JanelaSemana(referencia time.Time) []time.Time
	GerarSlotsDia(data time.Time, disp *domain.DisponibilidadeDia, duracaoMin int, agendamentos []domain.Agendamento, agora time.Time) []domain.TimeSlot
	SlotsDisponiveisSemana(ctx context.Context, casaID, atendimentoID int64) ([]domain.TimeSlot, error)
	HorarioDisponivel(ctx context.Context, casaID int64, data time.Time, horaInicio string, duracaoMin int) (bool, error)
}

type AgendamentoService interface {
	Create(ctx context.Context, dto domain.CreateAgendamentoDTO) (*domain.Agendamento, error)
	GetByID(ctx context.Context, id int64) (*domain.Agendamento, error)
	GetByCodigo(ctx context.Context, codigo string) (*domain.Agendamento, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AgendamentoStatus) error
	Cancel(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.AgendamentoFilter) ([]domain.Agendamento, int, error)
}

type EventoService interface {
	Create(ctx context.Context, casaID int64, dto domain.CreateEventoDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Evento, error)
	Update(ctx context.Context, id int64, dto domain.UpdateEventoDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.EventoFilter) ([]domain.Evento, int, error)
}

type ProdutoService interface {
	Create(ctx context.Context, casaID int64, dto domain.CreateProdutoDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Produto, error)
	Update(ctx context.Context, id int64, dto domain.UpdateProdutoDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.ProdutoFilter) ([]domain.Produto, int, error)
}

package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"aruanda/internal/domain"
)

type Repositories struct {
	Casa            CasaRepository
	Atendimento     AtendimentoRepository
	Disponibilidade DisponibilidadeRepository
	Agendamento     AgendamentoRepository
	Evento          EventoRepository
	Produto         ProdutoRepository
}

func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Casa:            NewCasaRepository(db),
		Atendimento:     NewAtendimentoRepository(db),
		Disponibilidade: NewDisponibilidadeRepository(db),
		Agendamento:     NewAgendamentoRepository(db),
		Evento:          NewEventoRepository(db),
		Produto:         NewProdutoRepository(db),
	}
}

type CasaRepository interface {
	Create(ctx context.Context, dto domain.CreateCasaDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Casa, error)
	Update(ctx context.Context, id int64, dto domain.UpdateCasaDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.CasaFilter) ([]domain.Casa, int, error)
}

type AtendimentoRepository interface {
	Create(ctx context.Context, casaID int64, dto domain.CreateAtendimentoDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Atendimento, error)
	Update(ctx context.Context, id int64, dto domain.UpdateAtendimentoDTO) error
	Delete(ctx context.Context, id int64) error
	ListByCasa(ctx context.Context, casaID int64) ([]domain.Atendimento, error)
}

type DisponibilidadeRepository interface {
	GetByCasa(ctx context.Context, casaID int64) ([]domain.DisponibilidadeDia, error)
	GetByCasaEDia(ctx context.Context, casaID int64, diaSemana int) (*domain.DisponibilidadeDia, error)
	Replace(ctx context.Context, casaID int64, dias []domain.DisponibilidadeDiaDTO) error
}

type AgendamentoRepository interface {
	Create(ctx context.Context, agendamento domain.Agendamento) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Agendamento, error)
	GetByCodigo(ctx context.Context, codigo string) (*domain.Agendamento, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AgendamentoStatus) error
	List(ctx context.Context, filter domain.AgendamentoFilter) ([]domain.Agendamento, int, error)
	ListByCasaEPeriodo(ctx context.Context, casaID int64, inicio, fim time.Time) ([]domain.Agendamento, error)
}

type EventoRepository interface {
	Create(ctx context.Context, casaID int64, dto domain.CreateEventoDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Evento, error)
	Update(ctx context.Context, id int64, dto domain.UpdateEventoDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.EventoFilter) ([]domain.Evento, int, error)
}

type ProdutoRepository interface {
	Create(ctx context.Context, casaID int64, dto domain.CreateProdutoDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Produto, error)
	Update(ctx context.Context, id int64, dto domain.UpdateProdutoDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.ProdutoFilter) ([]domain.Produto, int, error)
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"aruanda/internal/domain"
)

// ErrHorarioOcupado é devolvido quando a janela escolhida já tem um
// agendamento pendente ou confirmado na mesma casa.
var ErrHorarioOcupado = errors.New("o horário escolhido já está ocupado")

type AgendamentoRepo struct {
	db *pgxpool.Pool
}

func NewAgendamentoRepository(db *pgxpool.Pool) *AgendamentoRepo {
	return &AgendamentoRepo{db: db}
}

// Create verifica sobreposição e insere dentro da mesma transação. A
// calculadora de slots é apenas uma dica de leitura; a garantia contra
// duplo agendamento vive aqui, no caminho de escrita. A checagem prévia
// dá a mensagem amigável; a corrida entre transações concorrentes é
// fechada pela restrição de exclusão agendamentos_sem_sobreposicao.
func (r *AgendamentoRepo) Create(ctx context.Context, agendamento domain.Agendamento) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	checkQuery := `
		SELECT COUNT(*)
		FROM agendamentos
		WHERE casa_id = $1
		AND data = $2
		AND status IN ('pending', 'confirmed')
		AND hora_inicio < $4
		AND hora_fim > $3
	`

	var count int
	err = tx.QueryRow(ctx, checkQuery,
		agendamento.CasaID,
		agendamento.Data,
		agendamento.HoraInicio,
		agendamento.HoraFim,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao verificar disponibilidade do horário: %w", err)
	}

	if count > 0 {
		return 0, ErrHorarioOcupado
	}

	query := `
		INSERT INTO agendamentos (codigo, casa_id, atendimento_id, nome_cliente, telefone_cliente, email_cliente, data, hora_inicio, hora_fim, status, preco, observacoes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)
		RETURNING id
	`

	now := time.Now()
	var id int64
	err = tx.QueryRow(ctx, query,
		agendamento.Codigo,
		agendamento.CasaID,
		agendamento.AtendimentoID,
		agendamento.NomeCliente,
		agendamento.TelefoneCliente,
		agendamento.EmailCliente,
		agendamento.Data,
		agendamento.HoraInicio,
		agendamento.HoraFim,
		agendamento.Status,
		agendamento.Preco,
		agendamento.Observacoes,
		now,
	).Scan(&id)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23P01" {
			return 0, ErrHorarioOcupado
		}
		return 0, fmt.Errorf("erro ao criar agendamento: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("erro ao confirmar transação: %w", err)
	}

	return id, nil
}

const agendamentoSelect = `
	SELECT a.id, a.codigo, a.casa_id, a.atendimento_id, a.nome_cliente, a.telefone_cliente, a.email_cliente,
	       a.data, a.hora_inicio, a.hora_fim, a.status, a.preco, a.observacoes, a.created_at, a.updated_at,
	       c.nome AS nome_casa, at.nome AS nome_atendimento
	FROM agendamentos a
	JOIN casas c ON a.casa_id = c.id
	JOIN atendimentos at ON a.atendimento_id = at.id
`

func scanAgendamento(row pgx.Row) (*domain.Agendamento, error) {
	var agendamento domain.Agendamento
	err := row.Scan(
		&agendamento.ID,
		&agendamento.Codigo,
		&agendamento.CasaID,
		&agendamento.AtendimentoID,
		&agendamento.NomeCliente,
		&agendamento.TelefoneCliente,
		&agendamento.EmailCliente,
		&agendamento.Data,
		&agendamento.HoraInicio,
		&agendamento.HoraFim,
		&agendamento.Status,
		&agendamento.Preco,
		&agendamento.Observacoes,
		&agendamento.CreatedAt,
		&agendamento.UpdatedAt,
		&agendamento.NomeCasa,
		&agendamento.NomeAtendimento,
	)
	if err != nil {
		return nil, err
	}
	return &agendamento, nil
}

func (r *AgendamentoRepo) GetByID(ctx context.Context, id int64) (*domain.Agendamento, error) {
	query := agendamentoSelect + ` WHERE a.id = $1`

	agendamento, err := scanAgendamento(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar agendamento: %w", err)
	}

	return agendamento, nil
}

func (r *AgendamentoRepo) GetByCodigo(ctx context.Context, codigo string) (*domain.Agendamento, error) {
	query := agendamentoSelect + ` WHERE a.codigo = $1`

	agendamento, err := scanAgendamento(r.db.QueryRow(ctx, query, codigo))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar agendamento por código: %w", err)
	}

	return agendamento, nil
}

func (r *AgendamentoRepo) UpdateStatus(ctx context.Context, id int64, status domain.AgendamentoStatus) error {
	query := `
		UPDATE agendamentos
		SET status = $1, updated_at = $2
		WHERE id = $3
	`

	_, err := r.db.Exec(ctx, query, status, time.Now(), id)
	if err != nil {
		return fmt.Errorf("erro ao atualizar status do agendamento: %w", err)
	}

	return nil
}

func (r *AgendamentoRepo) List(ctx context.Context, filter domain.AgendamentoFilter) ([]domain.Agendamento, int, error) {
	countQuery := `SELECT COUNT(*) FROM agendamentos a WHERE 1=1`
	selectQuery := agendamentoSelect + ` WHERE 1=1`

	var conditions string
	var args []interface{}
	argPos := 1

	if filter.CasaID != nil {
		conditions += fmt.Sprintf(" AND a.casa_id = $%d", argPos)
		args = append(args, *filter.CasaID)
		argPos++
	}

	if filter.AtendimentoID != nil {
		conditions += fmt.Sprintf(" AND a.atendimento_id = $%d", argPos)
		args = append(args, *filter.AtendimentoID)
		argPos++
	}

	if filter.Status != nil {
		conditions += fmt.Sprintf(" AND a.status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}

	if filter.StartDate != nil {
		conditions += fmt.Sprintf(" AND a.data >= $%d", argPos)
		args = append(args, *filter.StartDate)
		argPos++
	}

	if filter.EndDate != nil {
		conditions += fmt.Sprintf(" AND a.data <= $%d", argPos)
		args = append(args, *filter.EndDate)
		argPos++
	}

	countQuery += conditions
	selectQuery += conditions

	selectQuery += fmt.Sprintf(" ORDER BY a.data, a.hora_inicio LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	var total int
	err := r.db.QueryRow(ctx, countQuery, args[:argPos-1]...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao contar agendamentos: %w", err)
	}

	rows, err := r.db.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao listar agendamentos: %w", err)
	}
	defer rows.Close()

	var agendamentos []domain.Agendamento
	for rows.Next() {
		agendamento, err := scanAgendamento(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("erro ao ler linha de agendamento: %w", err)
		}
		agendamentos = append(agendamentos, *agendamento)
	}

	return agendamentos, total, nil
}

// ListByCasaEPeriodo devolve apenas agendamentos que ainda ocupam
// horário (pending/confirmed) dentro da janela; é o contrato consumido
// pela calculadora de slots.
func (r *AgendamentoRepo) ListByCasaEPeriodo(ctx context.Context, casaID int64, inicio, fim time.Time) ([]domain.Agendamento, error) {
	query := `
		SELECT id, codigo, casa_id, atendimento_id, data, hora_inicio, hora_fim, status
		FROM agendamentos
		WHERE casa_id = $1
		AND data >= $2
		AND data <= $3
		AND status IN ('pending', 'confirmed')
		ORDER BY data, hora_inicio
	`

	rows, err := r.db.Query(ctx, query, casaID, inicio, fim)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar agendamentos do período: %w", err)
	}
	defer rows.Close()

	var agendamentos []domain.Agendamento
	for rows.Next() {
		var agendamento domain.Agendamento
		err := rows.Scan(
			&agendamento.ID,
			&agendamento.Codigo,
			&agendamento.CasaID,
			&agendamento.AtendimentoID,
			&agendamento.Data,
			&agendamento.HoraInicio,
			&agendamento.HoraFim,
			&agendamento.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler linha de agendamento: %w", err)
		}
		agendamentos = append(agendamentos, agendamento)
	}

	return agendamentos, nil
}

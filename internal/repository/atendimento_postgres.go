package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"aruanda/internal/domain"
)

type AtendimentoRepo struct {
	db *pgxpool.Pool
}

func NewAtendimentoRepository(db *pgxpool.Pool) *AtendimentoRepo {
	return &AtendimentoRepo{db: db}
}

func (r *AtendimentoRepo) Create(ctx context.Context, casaID int64, dto domain.CreateAtendimentoDTO) (int64, error) {
	query := `
		INSERT INTO atendimentos (casa_id, nome, descricao, duracao_minutos, preco, ativo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, true, $6, $6)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		casaID,
		dto.Nome,
		dto.Descricao,
		dto.DuracaoMinutos,
		dto.Preco,
		time.Now(),
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("erro ao criar atendimento: %w", err)
	}

	return id, nil
}

func (r *AtendimentoRepo) GetByID(ctx context.Context, id int64) (*domain.Atendimento, error) {
	query := `
		SELECT id, casa_id, nome, descricao, duracao_minutos, preco, ativo, created_at, updated_at
		FROM atendimentos
		WHERE id = $1
	`

	var atendimento domain.Atendimento
	err := r.db.QueryRow(ctx, query, id).Scan(
		&atendimento.ID,
		&atendimento.CasaID,
		&atendimento.Nome,
		&atendimento.Descricao,
		&atendimento.DuracaoMinutos,
		&atendimento.Preco,
		&atendimento.Ativo,
		&atendimento.CreatedAt,
		&atendimento.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar atendimento: %w", err)
	}

	return &atendimento, nil
}

func (r *AtendimentoRepo) Update(ctx context.Context, id int64, dto domain.UpdateAtendimentoDTO) error {
	var sets []string
	var args []interface{}
	argPos := 1

	addSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if dto.Nome != nil {
		addSet("nome", *dto.Nome)
	}
	if dto.Descricao != nil {
		addSet("descricao", *dto.Descricao)
	}
	if dto.DuracaoMinutos != nil {
		addSet("duracao_minutos", *dto.DuracaoMinutos)
	}
	if dto.Preco != nil {
		addSet("preco", *dto.Preco)
	}
	if dto.Ativo != nil {
		addSet("ativo", *dto.Ativo)
	}

	if len(sets) == 0 {
		return nil
	}

	addSet("updated_at", time.Now())

	query := fmt.Sprintf("UPDATE atendimentos SET %s WHERE id = $%d", strings.Join(sets, ", "), argPos)
	args = append(args, id)

	_, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar atendimento: %w", err)
	}

	return nil
}

func (r *AtendimentoRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM atendimentos WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("erro ao remover atendimento: %w", err)
	}

	return nil
}

func (r *AtendimentoRepo) ListByCasa(ctx context.Context, casaID int64) ([]domain.Atendimento, error) {
	query := `
		SELECT id, casa_id, nome, descricao, duracao_minutos, preco, ativo, created_at, updated_at
		FROM atendimentos
		WHERE casa_id = $1
		ORDER BY nome
	`

	rows, err := r.db.Query(ctx, query, casaID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar atendimentos: %w", err)
	}
	defer rows.Close()

	var atendimentos []domain.Atendimento
	for rows.Next() {
		var atendimento domain.Atendimento
		err := rows.Scan(
			&atendimento.ID,
			&atendimento.CasaID,
			&atendimento.Nome,
			&atendimento.Descricao,
			&atendimento.DuracaoMinutos,
			&atendimento.Preco,
			&atendimento.Ativo,
			&atendimento.CreatedAt,
			&atendimento.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler linha de atendimento: %w", err)
		}
		atendimentos = append(atendimentos, atendimento)
	}

	return atendimentos, nil
}

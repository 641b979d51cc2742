package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"aruanda/internal/domain"
)

type DisponibilidadeRepo struct {
	db *pgxpool.Pool
}

func NewDisponibilidadeRepository(db *pgxpool.Pool) *DisponibilidadeRepo {
	return &DisponibilidadeRepo{db: db}
}

func (r *DisponibilidadeRepo) GetByCasa(ctx context.Context, casaID int64) ([]domain.DisponibilidadeDia, error) {
	query := `
		SELECT id, casa_id, dia_semana, hora_inicio, hora_fim, ativo, created_at, updated_at
		FROM disponibilidades
		WHERE casa_id = $1
		ORDER BY dia_semana
	`

	rows, err := r.db.Query(ctx, query, casaID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar disponibilidade: %w", err)
	}
	defer rows.Close()

	var dias []domain.DisponibilidadeDia
	for rows.Next() {
		var dia domain.DisponibilidadeDia
		err := rows.Scan(
			&dia.ID,
			&dia.CasaID,
			&dia.DiaSemana,
			&dia.HoraInicio,
			&dia.HoraFim,
			&dia.Ativo,
			&dia.CreatedAt,
			&dia.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler linha de disponibilidade: %w", err)
		}
		dias = append(dias, dia)
	}

	return dias, nil
}

func (r *DisponibilidadeRepo) GetByCasaEDia(ctx context.Context, casaID int64, diaSemana int) (*domain.DisponibilidadeDia, error) {
	query := `
		SELECT id, casa_id, dia_semana, hora_inicio, hora_fim, ativo, created_at, updated_at
		FROM disponibilidades
		WHERE casa_id = $1 AND dia_semana = $2
	`

	var dia domain.DisponibilidadeDia
	err := r.db.QueryRow(ctx, query, casaID, diaSemana).Scan(
		&dia.ID,
		&dia.CasaID,
		&dia.DiaSemana,
		&dia.HoraInicio,
		&dia.HoraFim,
		&dia.Ativo,
		&dia.CreatedAt,
		&dia.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar disponibilidade do dia: %w", err)
	}

	return &dia, nil
}

// Replace troca o modelo semanal inteiro da casa em uma transação, para
// que leitores nunca vejam uma semana pela metade.
func (r *DisponibilidadeRepo) Replace(ctx context.Context, casaID int64, dias []domain.DisponibilidadeDiaDTO) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `DELETE FROM disponibilidades WHERE casa_id = $1`, casaID)
	if err != nil {
		return fmt.Errorf("erro ao limpar disponibilidade anterior: %w", err)
	}

	query := `
		INSERT INTO disponibilidades (casa_id, dia_semana, hora_inicio, hora_fim, ativo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
	`

	now := time.Now()
	for _, dia := range dias {
		_, err = tx.Exec(ctx, query, casaID, dia.DiaSemana, dia.HoraInicio, dia.HoraFim, dia.Ativo, now)
		if err != nil {
			return fmt.Errorf("erro ao gravar disponibilidade do dia %d: %w", dia.DiaSemana, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("erro ao confirmar transação: %w", err)
	}

	return nil
}

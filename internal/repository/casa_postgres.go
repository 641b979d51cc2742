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

type CasaRepo struct {
	db *pgxpool.Pool
}

func NewCasaRepository(db *pgxpool.Pool) *CasaRepo {
	return &CasaRepo{db: db}
}

func (r *CasaRepo) Create(ctx context.Context, dto domain.CreateCasaDTO) (int64, error) {
	query := `
		INSERT INTO casas (nome, descricao, linha, endereco, cidade, estado, telefone, email, foto_url, link_pagamento, ativa, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, true, $11, $11)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		dto.Nome,
		dto.Descricao,
		dto.Linha,
		dto.Endereco,
		dto.Cidade,
		dto.Estado,
		dto.Telefone,
		dto.Email,
		dto.FotoURL,
		dto.LinkPagamento,
		time.Now(),
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("erro ao criar casa: %w", err)
	}

	return id, nil
}

func (r *CasaRepo) GetByID(ctx context.Context, id int64) (*domain.Casa, error) {
	query := `
		SELECT id, nome, descricao, linha, endereco, cidade, estado, telefone, email, foto_url, link_pagamento, ativa, created_at, updated_at
		FROM casas
		WHERE id = $1
	`

	var casa domain.Casa
	err := r.db.QueryRow(ctx, query, id).Scan(
		&casa.ID,
		&casa.Nome,
		&casa.Descricao,
		&casa.Linha,
		&casa.Endereco,
		&casa.Cidade,
		&casa.Estado,
		&casa.Telefone,
		&casa.Email,
		&casa.FotoURL,
		&casa.LinkPagamento,
		&casa.Ativa,
		&casa.CreatedAt,
		&casa.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar casa: %w", err)
	}

	return &casa, nil
}

func (r *CasaRepo) Update(ctx context.Context, id int64, dto domain.UpdateCasaDTO) error {
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
	if dto.Linha != nil {
		addSet("linha", *dto.Linha)
	}
	if dto.Endereco != nil {
		addSet("endereco", *dto.Endereco)
	}
	if dto.Cidade != nil {
		addSet("cidade", *dto.Cidade)
	}
	if dto.Estado != nil {
		addSet("estado", *dto.Estado)
	}
	if dto.Telefone != nil {
		addSet("telefone", *dto.Telefone)
	}
	if dto.Email != nil {
		addSet("email", *dto.Email)
	}
	if dto.FotoURL != nil {
		addSet("foto_url", *dto.FotoURL)
	}
	if dto.LinkPagamento != nil {
		addSet("link_pagamento", *dto.LinkPagamento)
	}
	if dto.Ativa != nil {
		addSet("ativa", *dto.Ativa)
	}

	if len(sets) == 0 {
		return nil
	}

	addSet("updated_at", time.Now())

	query := fmt.Sprintf("UPDATE casas SET %s WHERE id = $%d", strings.Join(sets, ", "), argPos)
	args = append(args, id)

	_, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar casa: %w", err)
	}

	return nil
}

func (r *CasaRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM casas WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("erro ao remover casa: %w", err)
	}

	return nil
}

func (r *CasaRepo) List(ctx context.Context, filter domain.CasaFilter) ([]domain.Casa, int, error) {
	countQuery := `SELECT COUNT(*) FROM casas WHERE 1=1`
	selectQuery := `
		SELECT id, nome, descricao, linha, endereco, cidade, estado, telefone, email, foto_url, link_pagamento, ativa, created_at, updated_at
		FROM casas
		WHERE 1=1
	`

	var conditions string
	var args []interface{}
	argPos := 1

	if filter.Linha != nil {
		conditions += fmt.Sprintf(" AND linha = $%d", argPos)
		args = append(args, *filter.Linha)
		argPos++
	}

	if filter.Cidade != nil {
		conditions += fmt.Sprintf(" AND cidade ILIKE $%d", argPos)
		args = append(args, *filter.Cidade)
		argPos++
	}

	if filter.Ativa != nil {
		conditions += fmt.Sprintf(" AND ativa = $%d", argPos)
		args = append(args, *filter.Ativa)
		argPos++
	}

	countQuery += conditions
	selectQuery += conditions

	selectQuery += fmt.Sprintf(" ORDER BY nome LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	var total int
	err := r.db.QueryRow(ctx, countQuery, args[:argPos-1]...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao contar casas: %w", err)
	}

	rows, err := r.db.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao listar casas: %w", err)
	}
	defer rows.Close()

	var casas []domain.Casa
	for rows.Next() {
		var casa domain.Casa
		err := rows.Scan(
			&casa.ID,
			&casa.Nome,
			&casa.Descricao,
			&casa.Linha,
			&casa.Endereco,
			&casa.Cidade,
			&casa.Estado,
			&casa.Telefone,
			&casa.Email,
			&casa.FotoURL,
			&casa.LinkPagamento,
			&casa.Ativa,
			&casa.CreatedAt,
			&casa.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("erro ao ler linha de casa: %w", err)
		}
		casas = append(casas, casa)
	}

	return casas, total, nil
}

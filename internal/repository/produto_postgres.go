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

type ProdutoRepo struct {
	db *pgxpool.Pool
}

func NewProdutoRepository(db *pgxpool.Pool) *ProdutoRepo {
	return &ProdutoRepo{db: db}
}

func (r *ProdutoRepo) Create(ctx context.Context, casaID int64, dto domain.CreateProdutoDTO) (int64, error) {
	query := `
		INSERT INTO produtos (casa_id, nome, descricao, preco, imagem_url, disponivel, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, true, $6, $6)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		casaID,
		dto.Nome,
		dto.Descricao,
		dto.Preco,
		dto.ImagemURL,
		time.Now(),
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("erro ao criar produto: %w", err)
	}

	return id, nil
}

func (r *ProdutoRepo) GetByID(ctx context.Context, id int64) (*domain.Produto, error) {
	query := `
		SELECT id, casa_id, nome, descricao, preco, imagem_url, disponivel, created_at, updated_at
		FROM produtos
		WHERE id = $1
	`

	var produto domain.Produto
	err := r.db.QueryRow(ctx, query, id).Scan(
		&produto.ID,
		&produto.CasaID,
		&produto.Nome,
		&produto.Descricao,
		&produto.Preco,
		&produto.ImagemURL,
		&produto.Disponivel,
		&produto.CreatedAt,
		&produto.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar produto: %w", err)
	}

	return &produto, nil
}

func (r *ProdutoRepo) Update(ctx context.Context, id int64, dto domain.UpdateProdutoDTO) error {
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
	if dto.Preco != nil {
		addSet("preco", *dto.Preco)
	}
	if dto.ImagemURL != nil {
		addSet("imagem_url", *dto.ImagemURL)
	}
	if dto.Disponivel != nil {
		addSet("disponivel", *dto.Disponivel)
	}

	if len(sets) == 0 {
		return nil
	}

	addSet("updated_at", time.Now())

	query := fmt.Sprintf("UPDATE produtos SET %s WHERE id = $%d", strings.Join(sets, ", "), argPos)
	args = append(args, id)

	_, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar produto: %w", err)
	}

	return nil
}

func (r *ProdutoRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM produtos WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("erro ao remover produto: %w", err)
	}

	return nil
}

func (r *ProdutoRepo) List(ctx context.Context, filter domain.ProdutoFilter) ([]domain.Produto, int, error) {
	countQuery := `SELECT COUNT(*) FROM produtos WHERE 1=1`
	selectQuery := `
		SELECT id, casa_id, nome, descricao, preco, imagem_url, disponivel, created_at, updated_at
		FROM produtos
		WHERE 1=1
	`

	var conditions string
	var args []interface{}
	argPos := 1

	if filter.CasaID != nil {
		conditions += fmt.Sprintf(" AND casa_id = $%d", argPos)
		args = append(args, *filter.CasaID)
		argPos++
	}

	if filter.Disponivel != nil {
		conditions += fmt.Sprintf(" AND disponivel = $%d", argPos)
		args = append(args, *filter.Disponivel)
		argPos++
	}

	countQuery += conditions
	selectQuery += conditions

	selectQuery += fmt.Sprintf(" ORDER BY nome LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	var total int
	err := r.db.QueryRow(ctx, countQuery, args[:argPos-1]...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao contar produtos: %w", err)
	}

	rows, err := r.db.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	defer rows.Close()

	var produtos []domain.Produto
	for rows.Next() {
		var produto domain.Produto
		err := rows.Scan(
			&produto.ID,
			&produto.CasaID,
			&produto.Nome,
			&produto.Descricao,
			&produto.Preco,
			&produto.ImagemURL,
			&produto.Disponivel,
			&produto.CreatedAt,
			&produto.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("erro ao ler linha de produto: %w", err)
		}
		produtos = append(produtos, produto)
	}

	return produtos, total, nil
}

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

type EventoRepo struct {
	db *pgxpool.Pool
}

func NewEventoRepository(db *pgxpool.Pool) *EventoRepo {
	return &EventoRepo{db: db}
}

func (r *EventoRepo) Create(ctx context.Context, casaID int64, dto domain.CreateEventoDTO) (int64, error) {
	data, err := time.Parse("2006-01-02", dto.Data)
	if err != nil {
		return 0, fmt.Errorf("data do evento inválida: %w", err)
	}

	query := `
		INSERT INTO eventos (casa_id, titulo, descricao, data, hora_inicio, hora_fim, local, imagem_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		RETURNING id
	`

	var id int64
	err = r.db.QueryRow(ctx, query,
		casaID,
		dto.Titulo,
		dto.Descricao,
		data,
		dto.HoraInicio,
		dto.HoraFim,
		dto.Local,
		dto.ImagemURL,
		time.Now(),
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("erro ao criar evento: %w", err)
	}

	return id, nil
}

func (r *EventoRepo) GetByID(ctx context.Context, id int64) (*domain.Evento, error) {
	query := `
		SELECT id, casa_id, titulo, descricao, data, hora_inicio, hora_fim, local, imagem_url, created_at, updated_at
		FROM eventos
		WHERE id = $1
	`

	var evento domain.Evento
	err := r.db.QueryRow(ctx, query, id).Scan(
		&evento.ID,
		&evento.CasaID,
		&evento.Titulo,
		&evento.Descricao,
		&evento.Data,
		&evento.HoraInicio,
		&evento.HoraFim,
		&evento.Local,
		&evento.ImagemURL,
		&evento.CreatedAt,
		&evento.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar evento: %w", err)
	}

	return &evento, nil
}

func (r *EventoRepo) Update(ctx context.Context, id int64, dto domain.UpdateEventoDTO) error {
	var sets []string
	var args []interface{}
	argPos := 1

	addSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if dto.Titulo != nil {
		addSet("titulo", *dto.Titulo)
	}
	if dto.Descricao != nil {
		addSet("descricao", *dto.Descricao)
	}
	if dto.Data != nil {
		data, err := time.Parse("2006-01-02", *dto.Data)
		if err != nil {
			return fmt.Errorf("data do evento inválida: %w", err)
		}
		addSet("data", data)
	}
	if dto.HoraInicio != nil {
		addSet("hora_inicio", *dto.HoraInicio)
	}
	if dto.HoraFim != nil {
		addSet("hora_fim", *dto.HoraFim)
	}
	if dto.Local != nil {
		addSet("local", *dto.Local)
	}
	if dto.ImagemURL != nil {
		addSet("imagem_url", *dto.ImagemURL)
	}

	if len(sets) == 0 {
		return nil
	}

	addSet("updated_at", time.Now())

	query := fmt.Sprintf("UPDATE eventos SET %s WHERE id = $%d", strings.Join(sets, ", "), argPos)
	args = append(args, id)

	_, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar evento: %w", err)
	}

	return nil
}

func (r *EventoRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM eventos WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("erro ao remover evento: %w", err)
	}

	return nil
}

func (r *EventoRepo) List(ctx context.Context, filter domain.EventoFilter) ([]domain.Evento, int, error) {
	countQuery := `SELECT COUNT(*) FROM eventos WHERE 1=1`
	selectQuery := `
		SELECT id, casa_id, titulo, descricao, data, hora_inicio, hora_fim, local, imagem_url, created_at, updated_at
		FROM eventos
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

	if filter.StartDate != nil {
		conditions += fmt.Sprintf(" AND data >= $%d", argPos)
		args = append(args, *filter.StartDate)
		argPos++
	}

	if filter.EndDate != nil {
		conditions += fmt.Sprintf(" AND data <= $%d", argPos)
		args = append(args, *filter.EndDate)
		argPos++
	}

	countQuery += conditions
	selectQuery += conditions

	selectQuery += fmt.Sprintf(" ORDER BY data, hora_inicio LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	var total int
	err := r.db.QueryRow(ctx, countQuery, args[:argPos-1]...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao contar eventos: %w", err)
	}

	rows, err := r.db.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao listar eventos: %w", err)
	}
	defer rows.Close()

	var eventos []domain.Evento
	for rows.Next() {
		var evento domain.Evento
		err := rows.Scan(
			&evento.ID,
			&evento.CasaID,
			&evento.Titulo,
			&evento.Descricao,
			&evento.Data,
			&evento.HoraInicio,
			&evento.HoraFim,
			&evento.Local,
			&evento.ImagemURL,
			&evento.CreatedAt,
			&evento.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("erro ao ler linha de evento: %w", err)
		}
		eventos = append(eventos, evento)
	}

	return eventos, total, nil
}

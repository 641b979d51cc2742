package domain

import (
	"time"
)

type Evento struct {
	ID         int64     `json:"id"`
	CasaID     int64     `json:"casa_id"`
	Titulo     string    `json:"titulo"`
	Descricao  string    `json:"descricao"`
	Data       time.Time `json:"data"`
	HoraInicio string    `json:"hora_inicio"`
	HoraFim    string    `json:"hora_fim"`
	Local      string    `json:"local"`
	ImagemURL  string    `json:"imagem_url"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type CreateEventoDTO struct {
	Titulo     string `json:"titulo" binding:"required,min=2"`
	Descricao  string `json:"descricao,omitempty"`
	Data       string `json:"data" binding:"required"`
	HoraInicio string `json:"hora_inicio,omitempty"`
	HoraFim    string `json:"hora_fim,omitempty"`
	Local      string `json:"local,omitempty"`
	ImagemURL  string `json:"imagem_url,omitempty" binding:"omitempty,url"`
}

type UpdateEventoDTO struct {
	Titulo     *string `json:"titulo" binding:"omitempty,min=2"`
	Descricao  *string `json:"descricao"`
	Data       *string `json:"data"`
	HoraInicio *string `json:"hora_inicio"`
	HoraFim    *string `json:"hora_fim"`
	Local      *string `json:"local"`
	ImagemURL  *string `json:"imagem_url" binding:"omitempty,url"`
}

type EventoFilter struct {
	CasaID    *int64     `json:"casa_id"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Limit     int        `json:"limit"`
	Offset    int        `json:"offset"`
}

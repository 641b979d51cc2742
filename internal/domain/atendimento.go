package domain

import (
	"time"
)

type Atendimento struct {
	ID             int64     `json:"id"`
	CasaID         int64     `json:"casa_id"`
	Nome           string    `json:"nome"`
	Descricao      string    `json:"descricao"`
	DuracaoMinutos int       `json:"duracao_minutos"`
	Preco          float64   `json:"preco"`
	Ativo          bool      `json:"ativo"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CreateAtendimentoDTO struct {
	Nome           string  `json:"nome" binding:"required,min=2"`
	Descricao      string  `json:"descricao,omitempty"`
	DuracaoMinutos int     `json:"duracao_minutos" binding:"required,min=10,max=240"`
	Preco          float64 `json:"preco" binding:"min=0"`
}

type UpdateAtendimentoDTO struct {
	Nome           *string  `json:"nome" binding:"omitempty,min=2"`
	Descricao      *string  `json:"descricao"`
	DuracaoMinutos *int     `json:"duracao_minutos" binding:"omitempty,min=10,max=240"`
	Preco          *float64 `json:"preco" binding:"omitempty,min=0"`
	Ativo          *bool    `json:"ativo"`
}

package domain

import (
	"time"
)

type Produto struct {
	ID         int64     `json:"id"`
	CasaID     int64     `json:"casa_id"`
	Nome       string    `json:"nome"`
	Descricao  string    `json:"descricao"`
	Preco      float64   `json:"preco"`
	ImagemURL  string    `json:"imagem_url"`
	Disponivel bool      `json:"disponivel"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type CreateProdutoDTO struct {
	Nome      string  `json:"nome" binding:"required,min=2"`
	Descricao string  `json:"descricao,omitempty"`
	Preco     float64 `json:"preco" binding:"required,min=0"`
	ImagemURL string  `json:"imagem_url,omitempty" binding:"omitempty,url"`
}

type UpdateProdutoDTO struct {
	Nome       *string  `json:"nome" binding:"omitempty,min=2"`
	Descricao  *string  `json:"descricao"`
	Preco      *float64 `json:"preco" binding:"omitempty,min=0"`
	ImagemURL  *string  `json:"imagem_url" binding:"omitempty,url"`
	Disponivel *bool    `json:"disponivel"`
}

type ProdutoFilter struct {
	CasaID     *int64  `json:"casa_id"`
	Disponivel *bool   `json:"disponivel"`
	Limit      int     `json:"limit"`
	Offset     int     `json:"offset"`
}

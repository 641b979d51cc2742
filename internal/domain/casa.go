package domain

import (
	"time"
)

type LinhaCasa string

const (
	LinhaUmbanda    LinhaCasa = "umbanda"
	LinhaCandomble  LinhaCasa = "candomble"
	LinhaKardecista LinhaCasa = "kardecista"
	LinhaOutra      LinhaCasa = "outra"
)

func (l LinhaCasa) IsValid() bool {
	return l == LinhaUmbanda || l == LinhaCandomble || l == LinhaKardecista || l == LinhaOutra
}

type Casa struct {
	ID            int64     `json:"id"`
	Nome          string    `json:"nome"`
	Descricao     string    `json:"descricao"`
	Linha         LinhaCasa `json:"linha"`
	Endereco      string    `json:"endereco"`
	Cidade        string    `json:"cidade"`
	Estado        string    `json:"estado"`
	Telefone      string    `json:"telefone"`
	Email         string    `json:"email"`
	FotoURL       string    `json:"foto_url"`
	LinkPagamento string    `json:"link_pagamento"`
	Ativa         bool      `json:"ativa"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CreateCasaDTO struct {
	Nome          string    `json:"nome" binding:"required,min=2"`
	Descricao     string    `json:"descricao,omitempty"`
	Linha         LinhaCasa `json:"linha" binding:"required,oneof=umbanda candomble kardecista outra"`
	Endereco      string    `json:"endereco,omitempty"`
	Cidade        string    `json:"cidade" binding:"required"`
	Estado        string    `json:"estado" binding:"required,len=2"`
	Telefone      string    `json:"telefone,omitempty"`
	Email         string    `json:"email,omitempty" binding:"omitempty,email"`
	FotoURL       string    `json:"foto_url,omitempty"`
	LinkPagamento string    `json:"link_pagamento,omitempty" binding:"omitempty,url"`
}

type UpdateCasaDTO struct {
	Nome          *string    `json:"nome" binding:"omitempty,min=2"`
	Descricao     *string    `json:"descricao"`
	Linha         *LinhaCasa `json:"linha" binding:"omitempty,oneof=umbanda candomble kardecista outra"`
	Endereco      *string    `json:"endereco"`
	Cidade        *string    `json:"cidade"`
	Estado        *string    `json:"estado" binding:"omitempty,len=2"`
	Telefone      *string    `json:"telefone"`
	Email         *string    `json:"email" binding:"omitempty,email"`
	FotoURL       *string    `json:"foto_url"`
	LinkPagamento *string    `json:"link_pagamento" binding:"omitempty,url"`
	Ativa         *bool      `json:"ativa"`
}

type CasaFilter struct {
	Linha  *LinhaCasa `json:"linha"`
	Cidade *string    `json:"cidade"`
	Ativa  *bool      `json:"ativa"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

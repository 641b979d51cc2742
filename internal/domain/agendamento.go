package domain

import (
	"time"
)

type AgendamentoStatus string

const (
	AgendamentoStatusPending   AgendamentoStatus = "pending"
	AgendamentoStatusConfirmed AgendamentoStatus = "confirmed"
	AgendamentoStatusCompleted AgendamentoStatus = "completed"
	AgendamentoStatusCancelled AgendamentoStatus = "cancelled"
)

func (s AgendamentoStatus) IsValid() bool {
	switch s {
	case AgendamentoStatusPending, AgendamentoStatusConfirmed,
		AgendamentoStatusCompleted, AgendamentoStatusCancelled:
		return true
	}
	return false
}

// Ocupa informa se um agendamento neste status ainda reserva o horário.
// Apenas pending e confirmed contam como conflito na geração de slots.
func (s AgendamentoStatus) Ocupa() bool {
	return s == AgendamentoStatusPending || s == AgendamentoStatusConfirmed
}

type Agendamento struct {
	ID              int64             `json:"id"`
	Codigo          string            `json:"codigo"`
	CasaID          int64             `json:"casa_id"`
	AtendimentoID   int64             `json:"atendimento_id"`
	NomeCliente     string            `json:"nome_cliente"`
	TelefoneCliente string            `json:"telefone_cliente"`
	EmailCliente    string            `json:"email_cliente"`
	Data            time.Time         `json:"data"`
	HoraInicio      string            `json:"hora_inicio"`
	HoraFim         string            `json:"hora_fim"`
	Status          AgendamentoStatus `json:"status"`
	Preco           float64           `json:"preco"`
	LinkPagamento   string            `json:"link_pagamento,omitempty"`
	Observacoes     string            `json:"observacoes,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	NomeCasa        string            `json:"nome_casa,omitempty"`
	NomeAtendimento string            `json:"nome_atendimento,omitempty"`
}

type CreateAgendamentoDTO struct {
	CasaID          int64  `json:"casa_id" binding:"required"`
	AtendimentoID   int64  `json:"atendimento_id" binding:"required"`
	NomeCliente     string `json:"nome_cliente" binding:"required,min=2"`
	TelefoneCliente string `json:"telefone_cliente" binding:"required"`
	EmailCliente    string `json:"email_cliente" binding:"omitempty,email"`
	Data            string `json:"data" binding:"required"`
	HoraInicio      string `json:"hora_inicio" binding:"required"`
	Observacoes     string `json:"observacoes,omitempty"`
}

type UpdateAgendamentoStatusDTO struct {
	Status AgendamentoStatus `json:"status" binding:"required,oneof=pending confirmed completed cancelled"`
}

type AgendamentoFilter struct {
	CasaID        *int64             `json:"casa_id"`
	AtendimentoID *int64             `json:"atendimento_id"`
	Status        *AgendamentoStatus `json:"status"`
	StartDate     *time.Time         `json:"start_date"`
	EndDate       *time.Time         `json:"end_date"`
	Limit         int                `json:"limit"`
	Offset        int                `json:"offset"`
}

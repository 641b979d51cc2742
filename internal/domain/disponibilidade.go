package domain

import (
	"time"
)

// DisponibilidadeDia é a entrada do modelo semanal de funcionamento de
// uma casa: um registro por dia da semana (0 = domingo ... 6 = sábado).
// Dias inativos não geram horários.
type DisponibilidadeDia struct {
	ID         int64     `json:"id"`
	CasaID     int64     `json:"casa_id"`
	DiaSemana  int       `json:"dia_semana"`
	HoraInicio string    `json:"hora_inicio"`
	HoraFim    string    `json:"hora_fim"`
	Ativo      bool      `json:"ativo"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type DisponibilidadeDiaDTO struct {
	DiaSemana  int    `json:"dia_semana" binding:"min=0,max=6"`
	HoraInicio string `json:"hora_inicio" binding:"required"`
	HoraFim    string `json:"hora_fim" binding:"required"`
	Ativo      bool   `json:"ativo"`
}

// TimeSlot é um horário candidato calculado sob demanda; nunca é
// persistido. Disponivel indica ausência de conflito com agendamentos
// existentes na mesma data.
type TimeSlot struct {
	Data         string `json:"data"`
	Hora         string `json:"hora"`
	HoraFim      string `json:"hora_fim"`
	Disponivel   bool   `json:"disponivel"`
	DiaSemana    int    `json:"dia_semana"`
	NomeDia      string `json:"nome_dia"`
	DataExibicao string `json:"data_exibicao"`
}

var nomesDias = [7]string{
	"Domingo",
	"Segunda-feira",
	"Terça-feira",
	"Quarta-feira",
	"Quinta-feira",
	"Sexta-feira",
	"Sábado",
}

func NomeDiaSemana(dia int) string {
	if dia < 0 || dia > 6 {
		return ""
	}
	return nomesDias[dia]
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PagamentoDinheiro      = "DINHEIRO"
	PagamentoCartaoCredito = "CARTAO_CREDITO"
	PagamentoCartaoDebito  = "CARTAO_DEBITO"
	PagamentoPix           = "PIX"
	PagamentoOutro         = "OUTRO"
)

type Receita struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AgendamentoID *uint        `json:"agendamento_id"`
	Agendamento   *Agendamento `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"agendamento,omitempty"`

	Descricao      string          `gorm:"size:255" json:"descricao"`
	Valor          decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"valor"`
	FormaPagamento string          `gorm:"size:20" json:"forma_pagamento"`

	Recebido        bool       `gorm:"default:false;index" json:"recebido"`
	DataRecebimento *time.Time `gorm:"type:date;index" json:"data_recebimento"`

	LinkPagamento string `gorm:"size:500" json:"link_pagamento,omitempty"`
	Observacao    string `gorm:"type:text" json:"observacao"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

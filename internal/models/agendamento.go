package models

import "time"

type Agendamento struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClienteID uint    `gorm:"uniqueIndex:uq_agendamento_cliente_slot" json:"cliente_id"`
	Cliente   Cliente `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"cliente"`

	TratamentoID uint       `gorm:"uniqueIndex:uq_agendamento_tratamento_slot,where:status <> 'CANCELADO'" json:"tratamento_id"`
	Tratamento   Tratamento `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"tratamento"`

	// Data e Hora ("HH:MM") formam o slot. O banco garante a unicidade
	// por (cliente, data, hora) e, fora os cancelados, por
	// (tratamento, data, hora); o pré-check é só cortesia.
	Data time.Time `gorm:"type:date;index;uniqueIndex:uq_agendamento_cliente_slot;uniqueIndex:uq_agendamento_tratamento_slot" json:"data"`
	Hora string    `gorm:"size:5;uniqueIndex:uq_agendamento_cliente_slot;uniqueIndex:uq_agendamento_tratamento_slot" json:"hora"`

	TipoAgendamento string `gorm:"size:20" json:"tipo_agendamento"`
	Status          string `gorm:"size:20;default:'PENDENTE'" json:"status"`

	// Marcador durável de idempotência: o desconto de estoque da
	// conclusão roda no máximo uma vez por agendamento.
	EstoqueDescontado bool `gorm:"default:false" json:"estoque_descontado"`

	Consumos []ConsumoProduto `gorm:"constraint:OnDelete:CASCADE;" json:"consumos,omitempty"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

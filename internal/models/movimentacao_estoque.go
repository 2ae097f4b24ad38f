package models

import "time"

// MovimentacaoEstoque é um registro imutável: criado uma única vez por
// operação do ledger, nunca atualizado.
type MovimentacaoEstoque struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProdutoID uint    `gorm:"index;not null" json:"produto_id"`
	Produto   Produto `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"produto"`

	Tipo       string `gorm:"size:10;not null" json:"tipo"`
	Quantidade int    `gorm:"not null" json:"quantidade"`
	Motivo     string `gorm:"size:255" json:"motivo"`

	// Referencia agrupa as movimentações geradas por uma mesma operação
	// (ex.: todas as saídas da conclusão de um agendamento).
	Referencia string `gorm:"size:36;index" json:"referencia"`

	CreatedAt time.Time `json:"created_at"`
}

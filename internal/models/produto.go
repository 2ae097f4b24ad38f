package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Produto só muda de estoque através do ledger (entrada/saída com
// movimentação); nenhum handler escreve QuantidadeEstoque direto.
type Produto struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Nome         string     `gorm:"size:200;not null" json:"nome"`
	Descricao    string     `gorm:"type:text" json:"descricao"`
	Marca        string     `gorm:"size:100" json:"marca"`
	DataValidade *time.Time `gorm:"type:date" json:"data_validade"`

	PrecoCusto decimal.Decimal `gorm:"type:numeric(10,2)" json:"preco_custo"`
	PrecoVenda decimal.Decimal `gorm:"type:numeric(10,2)" json:"preco_venda"`

	QuantidadeEstoque int `gorm:"default:0" json:"quantidade_estoque"`
	EstoqueMinimo     int `gorm:"default:0" json:"estoque_minimo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type CategoriaDespesa struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Nome string `gorm:"size:50;not null" json:"nome"`
}

type Despesa struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Nome string `gorm:"size:50;not null" json:"nome"`

	CategoriaID uint             `gorm:"not null" json:"categoria_id"`
	Categoria   CategoriaDespesa `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"categoria"`

	Valor decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"valor"`

	DataVencimento time.Time  `gorm:"type:date;index" json:"data_vencimento"`
	DataPagamento  *time.Time `gorm:"type:date;index" json:"data_pagamento"`
	Pago           bool       `gorm:"default:false;index" json:"pago"`

	Fornecedor string `gorm:"size:100" json:"fornecedor"`
	Observacao string `gorm:"type:text" json:"observacao"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TratamentoFacial   = "Facial"
	TratamentoLabial   = "Labial"
	TratamentoGluteos  = "Glúteos"
	TratamentoCorporal = "Corporal"
)

type Tratamento struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Nome       string          `gorm:"size:100;not null" json:"nome"`
	Tipo       string          `gorm:"size:20" json:"tipo"`
	DuracaoMin int             `json:"duracao_min"`
	Preco      decimal.Decimal `gorm:"type:numeric(10,2)" json:"preco"`
	Descricao  string          `gorm:"size:250" json:"descricao"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

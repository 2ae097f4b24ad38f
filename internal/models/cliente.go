package models

import "time"

const (
	GeneroMasculino   = "MASCULINO"
	GeneroFeminino    = "FEMININO"
	GeneroOutro       = "OUTRO"
	GeneroNaoInformar = "NAO_INFORMAR"
)

// Cliente nunca é removido fisicamente; o CPF pode ser limpo
// para resolver cadastros duplicados.
type Cliente struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Nome         string     `gorm:"size:200;not null" json:"nome"`
	Telefone     string     `gorm:"size:14;not null" json:"telefone"`
	Email        string     `gorm:"size:200" json:"email"`
	CPF          *string    `gorm:"size:14;uniqueIndex" json:"cpf"`
	DtNascimento *time.Time `gorm:"type:date" json:"dt_nascimento"`
	Sexo         string     `gorm:"size:25" json:"sexo"`
	Observacoes  string     `gorm:"size:255" json:"observacoes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

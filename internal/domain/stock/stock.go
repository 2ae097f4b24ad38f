package stock

import (
	"fmt"

	"github.com/vittaestetica/clinica-api/internal/httperr"
	"github.com/vittaestetica/clinica-api/internal/models"
)

// ===============================
// Direção da movimentação
// ===============================

type Direction string

const (
	DirectionEntrada Direction = "ENTRADA"
	DirectionSaida   Direction = "SAIDA"
)

// InsufficientError identifica o produto em falta e quanto falta.
// É condição recuperável: o operador repõe estoque e tenta de novo.
type InsufficientError struct {
	ProdutoID  uint
	Produto    string
	Disponivel int
	Necessario int
}

func (e InsufficientError) Error() string {
	return fmt.Sprintf(
		"estoque insuficiente de %q: disponível %d, necessário %d",
		e.Produto, e.Disponivel, e.Necessario,
	)
}

func (e InsufficientError) Faltando() int {
	return e.Necessario - e.Disponivel
}

// Apply é a primitiva única de mutação de estoque. Saídas passam pela
// checagem de suficiência antes de mutar, então QuantidadeEstoque
// nunca fica negativa.
func Apply(p *models.Produto, dir Direction, quantidade int) error {
	if quantidade <= 0 {
		return httperr.ErrBusiness("invalid_quantity")
	}

	switch dir {
	case DirectionEntrada:
		p.QuantidadeEstoque += quantidade
	case DirectionSaida:
		if quantidade > p.QuantidadeEstoque {
			return InsufficientError{
				ProdutoID:  p.ID,
				Produto:    p.Nome,
				Disponivel: p.QuantidadeEstoque,
				Necessario: quantidade,
			}
		}
		p.QuantidadeEstoque -= quantidade
	default:
		return httperr.ErrBusiness("invalid_direction")
	}

	return nil
}

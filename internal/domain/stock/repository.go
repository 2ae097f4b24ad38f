package stock

import (
	"context"

	"github.com/vittaestetica/clinica-api/internal/models"
)

type Repository interface {
	GetProduto(
		ctx context.Context,
		id uint,
	) (*models.Produto, error)

	// RegisterEntry aplica uma entrada de estoque e grava a
	// movimentação correspondente na mesma transação.
	RegisterEntry(
		ctx context.Context,
		produtoID uint,
		quantidade int,
		motivo string,
		ref string,
	) (*models.Produto, error)

	ListMovimentacoes(
		ctx context.Context,
		produtoID uint,
	) ([]models.MovimentacaoEstoque, error)
}

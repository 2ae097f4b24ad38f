package stock

import (
	"context"

	"github.com/google/uuid"

	"github.com/vittaestetica/clinica-api/internal/audit"
	domain "github.com/vittaestetica/clinica-api/internal/domain/stock"
	"github.com/vittaestetica/clinica-api/internal/httperr"
	"github.com/vittaestetica/clinica-api/internal/models"
)

type RestockInput struct {
	ProdutoID  uint
	Quantidade int
	Motivo     string
}

// Restock é a entrada direta de estoque: mesma primitiva de ajuste do
// ledger, direção ENTRADA, sem checagem de suficiência, com a sua
// própria movimentação.
type Restock struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRestock(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Restock {
	return &Restock{
		repo:  repo,
		audit: audit,
	}
}

func (uc *Restock) Execute(
	ctx context.Context,
	in RestockInput,
	userID *uint,
) (*models.Produto, error) {

	if in.Quantidade <= 0 {
		return nil, httperr.ErrBusiness("invalid_quantity")
	}

	ref := uuid.NewString()

	produto, err := uc.repo.RegisterEntry(
		ctx,
		in.ProdutoID,
		in.Quantidade,
		in.Motivo,
		ref,
	)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "stock_entry",
		Entity:   "produto",
		EntityID: &produto.ID,
		Metadata: map[string]any{
			"quantidade": in.Quantidade,
			"referencia": ref,
		},
	})

	return produto, nil
}

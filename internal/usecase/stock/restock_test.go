package stock

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vittaestetica/clinica-api/internal/audit"
	domain "github.com/vittaestetica/clinica-api/internal/domain/stock"
	"github.com/vittaestetica/clinica-api/internal/httperr"
	"github.com/vittaestetica/clinica-api/internal/models"
)

type fakeStockRepo struct {
	produto *models.Produto

	entryErr    error
	entryCalled bool
	entryQty    int
	entryMotivo string
	entryRef    string
}

func (f *fakeStockRepo) GetProduto(_ context.Context, _ uint) (*models.Produto, error) {
	return f.produto, nil
}

func (f *fakeStockRepo) RegisterEntry(
	_ context.Context,
	_ uint,
	quantidade int,
	motivo string,
	ref string,
) (*models.Produto, error) {
	f.entryCalled = true
	f.entryQty = quantidade
	f.entryMotivo = motivo
	f.entryRef = ref

	if f.entryErr != nil {
		return nil, f.entryErr
	}

	f.produto.QuantidadeEstoque += quantidade
	return f.produto, nil
}

func (f *fakeStockRepo) ListMovimentacoes(_ context.Context, _ uint) ([]models.MovimentacaoEstoque, error) {
	return nil, nil
}

var _ domain.Repository = (*fakeStockRepo)(nil)

func TestRestockSuccess(t *testing.T) {
	repo := &fakeStockRepo{
		produto: &models.Produto{ID: 3, Nome: "Sérum", QuantidadeEstoque: 2},
	}
	uc := NewRestock(repo, audit.NewDispatcher(audit.New(nil)))

	produto, err := uc.Execute(context.Background(), RestockInput{
		ProdutoID:  3,
		Quantidade: 10,
		Motivo:     "Reposição mensal",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, 12, produto.QuantidadeEstoque)
	assert.Equal(t, 10, repo.entryQty)
	assert.Equal(t, "Reposição mensal", repo.entryMotivo)

	_, err = uuid.Parse(repo.entryRef)
	assert.NoError(t, err)
}

func TestRestockRejectsNonPositive(t *testing.T) {
	repo := &fakeStockRepo{produto: &models.Produto{ID: 3}}
	uc := NewRestock(repo, audit.NewDispatcher(audit.New(nil)))

	for _, qty := range []int{0, -5} {
		_, err := uc.Execute(context.Background(), RestockInput{
			ProdutoID:  3,
			Quantidade: qty,
		}, nil)

		assert.True(t, httperr.IsBusiness(err, "invalid_quantity"))
		assert.False(t, repo.entryCalled)
	}
}

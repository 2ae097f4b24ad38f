package stock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vittaestetica/clinica-api/internal/httperr"
	"github.com/vittaestetica/clinica-api/internal/models"
)

func TestApplyEntrada(t *testing.T) {
	p := &models.Produto{ID: 1, Nome: "Ácido Hialurônico", QuantidadeEstoque: 3}

	require.NoError(t, Apply(p, DirectionEntrada, 5))
	assert.Equal(t, 8, p.QuantidadeEstoque)
}

func TestApplySaida(t *testing.T) {
	p := &models.Produto{ID: 1, Nome: "Ácido Hialurônico", QuantidadeEstoque: 8}

	require.NoError(t, Apply(p, DirectionSaida, 8))
	assert.Equal(t, 0, p.QuantidadeEstoque)
}

func TestApplySaidaInsuficiente(t *testing.T) {
	p := &models.Produto{ID: 7, Nome: "Botox", QuantidadeEstoque: 2}

	err := Apply(p, DirectionSaida, 5)

	var insufficient InsufficientError
	require.ErrorAs(t, err, &insufficient)

	assert.Equal(t, uint(7), insufficient.ProdutoID)
	assert.Equal(t, "Botox", insufficient.Produto)
	assert.Equal(t, 2, insufficient.Disponivel)
	assert.Equal(t, 5, insufficient.Necessario)
	assert.Equal(t, 3, insufficient.Faltando())

	// Falha não pode mutar o produto.
	assert.Equal(t, 2, p.QuantidadeEstoque)
}

func TestApplyRejectsNonPositive(t *testing.T) {
	p := &models.Produto{QuantidadeEstoque: 10}

	for _, qty := range []int{0, -1, -100} {
		assert.True(t, httperr.IsBusiness(Apply(p, DirectionEntrada, qty), "invalid_quantity"))
		assert.True(t, httperr.IsBusiness(Apply(p, DirectionSaida, qty), "invalid_quantity"))
	}

	assert.Equal(t, 10, p.QuantidadeEstoque)
}

func TestApplyRejectsUnknownDirection(t *testing.T) {
	p := &models.Produto{QuantidadeEstoque: 10}

	err := Apply(p, Direction("AJUSTE"), 1)

	assert.True(t, httperr.IsBusiness(err, "invalid_direction"))
	assert.Equal(t, 10, p.QuantidadeEstoque)
}

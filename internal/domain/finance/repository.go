package finance

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Repository interface {
	// Soma das receitas com recebido=true e data de recebimento
	// dentro do intervalo fechado [start, end].
	SumReceitasRecebidas(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) (decimal.Decimal, error)

	// Soma das despesas com pago=true e data de pagamento dentro do
	// intervalo fechado [start, end].
	SumDespesasPagas(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) (decimal.Decimal, error)
}

package finance

import (
	"context"

	"github.com/shopspring/decimal"

	domain "github.com/vittaestetica/clinica-api/internal/domain/finance"
	"github.com/vittaestetica/clinica-api/internal/timezone"
)

// CashboxSummary é o caixa mensal derivado: calculado na leitura,
// nunca persistido como saldo mutável.
type CashboxSummary struct {
	Ano           int             `json:"ano"`
	Mes           int             `json:"mes"`
	TotalReceitas decimal.Decimal `json:"total_receitas"`
	TotalDespesas decimal.Decimal `json:"total_despesas"`
	Saldo         decimal.Decimal `json:"saldo"`
}

type Cashbox struct {
	repo domain.Repository
}

func NewCashbox(repo domain.Repository) *Cashbox {
	return &Cashbox{repo: repo}
}

func (uc *Cashbox) Execute(
	ctx context.Context,
	ano int,
	mes int,
) (*CashboxSummary, error) {

	first, last, err := domain.MonthRange(ano, mes, timezone.Location())
	if err != nil {
		return nil, err
	}

	receitas, err := uc.repo.SumReceitasRecebidas(ctx, first, last)
	if err != nil {
		return nil, err
	}

	despesas, err := uc.repo.SumDespesasPagas(ctx, first, last)
	if err != nil {
		return nil, err
	}

	return &CashboxSummary{
		Ano:           ano,
		Mes:           mes,
		TotalReceitas: receitas,
		TotalDespesas: despesas,
		Saldo:         receitas.Sub(despesas),
	}, nil
}

package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	domain "github.com/vittaestetica/clinica-api/internal/domain/finance"
	"github.com/vittaestetica/clinica-api/internal/models"
)

type FinanceGormRepository struct {
	db *gorm.DB
}

func NewFinanceGormRepository(db *gorm.DB) *FinanceGormRepository {
	return &FinanceGormRepository{db: db}
}

func (r *FinanceGormRepository) SumReceitasRecebidas(
	ctx context.Context,
	start time.Time,
	end time.Time,
) (decimal.Decimal, error) {

	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&models.Receita{}).
		Select("COALESCE(SUM(valor), 0)").
		Where(
			"recebido = ? AND data_recebimento BETWEEN ? AND ?",
			true, start, end,
		).
		Scan(&total).Error

	return total, err
}

func (r *FinanceGormRepository) SumDespesasPagas(
	ctx context.Context,
	start time.Time,
	end time.Time,
) (decimal.Decimal, error) {

	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&models.Despesa{}).
		Select("COALESCE(SUM(valor), 0)").
		Where(
			"pago = ? AND data_pagamento BETWEEN ? AND ?",
			true, start, end,
		).
		Scan(&total).Error

	return total, err
}

// Compile-time check
var _ domain.Repository = (*FinanceGormRepository)(nil)

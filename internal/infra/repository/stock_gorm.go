package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/vittaestetica/clinica-api/internal/domain/stock"
	"github.com/vittaestetica/clinica-api/internal/models"
)

type StockGormRepository struct {
	db *gorm.DB
}

func NewStockGormRepository(db *gorm.DB) *StockGormRepository {
	return &StockGormRepository{db: db}
}

func (r *StockGormRepository) GetProduto(
	ctx context.Context,
	id uint,
) (*models.Produto, error) {

	var produto models.Produto
	if err := r.db.WithContext(ctx).First(&produto, id).Error; err != nil {
		return nil, err
	}
	return &produto, nil
}

func (r *StockGormRepository) RegisterEntry(
	ctx context.Context,
	produtoID uint,
	quantidade int,
	motivo string,
	ref string,
) (*models.Produto, error) {

	var produto models.Produto

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&produto, produtoID).Error; err != nil {
			return err
		}

		if err := domain.Apply(&produto, domain.DirectionEntrada, quantidade); err != nil {
			return err
		}

		if err := tx.Save(&produto).Error; err != nil {
			return err
		}

		mov := models.MovimentacaoEstoque{
			ProdutoID:  produto.ID,
			Tipo:       string(domain.DirectionEntrada),
			Quantidade: quantidade,
			Motivo:     motivo,
			Referencia: ref,
		}
		return tx.Create(&mov).Error
	})

	if err != nil {
		return nil, err
	}

	return &produto, nil
}

func (r *StockGormRepository) ListMovimentacoes(
	ctx context.Context,
	produtoID uint,
) ([]models.MovimentacaoEstoque, error) {

	var movs []models.MovimentacaoEstoque

	q := r.db.WithContext(ctx).Preload("Produto")
	if produtoID != 0 {
		q = q.Where("produto_id = ?", produtoID)
	}

	if err := q.
		Order("created_at DESC").
		Find(&movs).Error; err != nil {
		return nil, err
	}

	return movs, nil
}

// Compile-time check
var _ domain.Repository = (*StockGormRepository)(nil)

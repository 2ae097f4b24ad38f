package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/vittaestetica/clinica-api/internal/domain/appointment"
	"github.com/vittaestetica/clinica-api/internal/domain/stock"
	"github.com/vittaestetica/clinica-api/internal/httperr"
	"github.com/vittaestetica/clinica-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Tratamento
// --------------------------------------------------

func (r *AppointmentGormRepository) GetTratamento(
	ctx context.Context,
	id uint,
) (*models.Tratamento, error) {

	var tratamento models.Tratamento
	if err := r.db.WithContext(ctx).First(&tratamento, id).Error; err != nil {
		return nil, err
	}
	return &tratamento, nil
}

// --------------------------------------------------
// Admissão
// --------------------------------------------------

// slotConflictScope filtra os agendamentos ativos que ocupam o mesmo
// slot de tratamento. Cancelado não ocupa slot.
func slotConflictScope(
	db *gorm.DB,
	tratamentoID uint,
	data time.Time,
	hora string,
) *gorm.DB {
	return db.
		Model(&models.Agendamento{}).
		Where(
			"tratamento_id = ? AND data = ? AND hora = ? AND status <> ?",
			tratamentoID,
			data,
			hora,
			string(domain.StatusCancelado),
		)
}

// slotRaceError traduz violação de unicidade na inserção: alguém
// ganhou a corrida pelo mesmo horário.
func slotRaceError(err error) error {
	if err != nil && httperr.IsUniqueViolation(err) {
		return httperr.ErrBusiness("slot_conflict")
	}
	return err
}

func (r *AppointmentGormRepository) HasSlotConflict(
	ctx context.Context,
	tratamentoID uint,
	data time.Time,
	hora string,
) (bool, error) {

	var count int64
	if err := slotConflictScope(r.db.WithContext(ctx), tratamentoID, data, hora).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *AppointmentGormRepository) BookSlot(
	ctx context.Context,
	cliente *models.Cliente,
	ag *models.Agendamento,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// Cliente: reusa pelo telefone, senão cria.
		var existing models.Cliente
		findErr := tx.
			Where("telefone = ?", cliente.Telefone).
			First(&existing).Error

		if findErr == nil {
			*cliente = existing
		} else if findErr == gorm.ErrRecordNotFound {
			if err := tx.Create(cliente).Error; err != nil {
				return err
			}
		} else {
			return findErr
		}

		// Re-checa o conflito já dentro da transação, para responder
		// bonito sem depender da corrida. Quem decide de verdade são
		// os índices únicos na inserção.
		var conflicts int64
		if err := slotConflictScope(tx, ag.TratamentoID, ag.Data, ag.Hora).
			Count(&conflicts).Error; err != nil {
			return err
		}
		if conflicts > 0 {
			return httperr.ErrBusiness("slot_conflict")
		}

		ag.ClienteID = cliente.ID
		return tx.Create(ag).Error
	})

	return slotRaceError(err)
}

// --------------------------------------------------
// Agendamento (mudança de estado)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAgendamento(
	ctx context.Context,
	id uint,
) (*models.Agendamento, error) {

	var ag models.Agendamento
	if err := r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Tratamento").
		Preload("Consumos.Produto").
		First(&ag, id).Error; err != nil {
		return nil, err
	}

	return &ag, nil
}

func (r *AppointmentGormRepository) UpdateAgendamento(
	ctx context.Context,
	ag *models.Agendamento,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(ag).Error
}

// --------------------------------------------------
// Conclusão + consumo de estoque (tudo-ou-nada)
// --------------------------------------------------

func (r *AppointmentGormRepository) CompleteWithConsumption(
	ctx context.Context,
	ag *models.Agendamento,
	now time.Time,
	ref string,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var fresh models.Agendamento
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&fresh, ag.ID).Error; err != nil {
			return err
		}

		// Outra requisição pode ter concluído entre a leitura do
		// usecase e o lock; o marcador durável fecha a reexecução.
		if fresh.Status == string(domain.StatusConcluido) && fresh.EstoqueDescontado {
			*ag = fresh
			return nil
		}

		var clienteNome string
		if err := tx.
			Model(&models.Cliente{}).
			Select("nome").
			Where("id = ?", fresh.ClienteID).
			Scan(&clienteNome).Error; err != nil {
			return err
		}

		var consumos []models.ConsumoProduto
		if err := tx.
			Where("agendamento_id = ?", fresh.ID).
			Order("produto_id ASC").
			Find(&consumos).Error; err != nil {
			return err
		}

		for _, consumo := range consumos {
			var produto models.Produto
			if err := tx.
				Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&produto, consumo.ProdutoID).Error; err != nil {
				return err
			}

			// Insuficiência aborta a transação inteira: nenhuma
			// baixa parcial e nenhuma movimentação sobrevivem.
			if err := stock.Apply(&produto, stock.DirectionSaida, consumo.Quantidade); err != nil {
				return err
			}

			if err := tx.Save(&produto).Error; err != nil {
				return err
			}

			mov := models.MovimentacaoEstoque{
				ProdutoID:  produto.ID,
				Tipo:       string(stock.DirectionSaida),
				Quantidade: consumo.Quantidade,
				Motivo:     fmt.Sprintf("Uso no agendamento %d - %s", fresh.ID, clienteNome),
				Referencia: ref,
			}
			if err := tx.Create(&mov).Error; err != nil {
				return err
			}
		}

		if err := domain.Complete(&fresh, now); err != nil {
			return err
		}
		fresh.EstoqueDescontado = true

		if err := tx.
			Omit(clause.Associations).
			Save(&fresh).Error; err != nil {
			return err
		}

		fresh.Cliente = ag.Cliente
		fresh.Tratamento = ag.Tratamento
		fresh.Consumos = ag.Consumos
		*ag = fresh
		return nil
	})
}

// --------------------------------------------------
// Listagens
// --------------------------------------------------

func (r *AppointmentGormRepository) ListForPeriod(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Agendamento, error) {

	var ags []models.Agendamento

	err := r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Tratamento").
		Where(
			"data >= ? AND data < ?",
			start,
			end,
		).
		Order("data ASC, hora ASC").
		Find(&ags).Error

	if err != nil {
		return nil, err
	}

	return ags, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)

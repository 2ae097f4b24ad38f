package appointment

import (
	"context"
	"time"

	"github.com/vittaestetica/clinica-api/internal/models"
)

type Repository interface {
	// -------- Tratamento --------
	GetTratamento(
		ctx context.Context,
		id uint,
	) (*models.Tratamento, error)

	// -------- Admissão (create / conflito) --------
	HasSlotConflict(
		ctx context.Context,
		tratamentoID uint,
		data time.Time,
		hora string,
	) (bool, error)

	// BookSlot persiste cliente (create-or-reuse por telefone) e
	// agendamento numa única transação. A constraint única
	// (cliente, data, hora) fecha a corrida entre pré-check e insert.
	BookSlot(
		ctx context.Context,
		cliente *models.Cliente,
		ag *models.Agendamento,
	) error

	// -------- Agendamento (mudança de estado) --------
	GetAgendamento(
		ctx context.Context,
		id uint,
	) (*models.Agendamento, error)

	UpdateAgendamento(
		ctx context.Context,
		ag *models.Agendamento,
	) error

	// CompleteWithConsumption executa a conclusão como unidade
	// transacional: checagem de suficiência de todas as linhas de
	// consumo, baixa de estoque, movimentações de saída e marcação
	// do agendamento, tudo-ou-nada.
	CompleteWithConsumption(
		ctx context.Context,
		ag *models.Agendamento,
		now time.Time,
		ref string,
	) error

	// -------- Listagens --------
	ListForPeriod(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Agendamento, error)
}

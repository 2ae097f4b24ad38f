package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/vittaestetica/clinica-api/internal/audit"
	domain "github.com/vittaestetica/clinica-api/internal/domain/appointment"
	"github.com/vittaestetica/clinica-api/internal/httperr"
	"github.com/vittaestetica/clinica-api/internal/models"
	"github.com/vittaestetica/clinica-api/internal/timezone"
)

// CompleteAppointment é o ledger de consumo: a transição para
// CONCLUIDO baixa o estoque das linhas de consumo e grava uma
// movimentação de saída por linha, tudo-ou-nada. O marcador
// EstoqueDescontado garante que a baixa roda no máximo uma vez.
type CompleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCompleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	userID *uint,
) (*models.Agendamento, error) {

	ag, err := uc.repo.GetAgendamento(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	// Chamada repetida num agendamento já concluído é no-op.
	if ag.Status == string(domain.StatusConcluido) && ag.EstoqueDescontado {
		return ag, nil
	}

	if err := domain.CanComplete(domain.Status(ag.Status)); err != nil {
		return nil, err
	}

	now := timezone.Now()
	ref := uuid.NewString()

	// Falha de suficiência aborta aqui: o agendamento permanece no
	// status anterior e nenhuma movimentação é criada.
	if err := uc.repo.CompleteWithConsumption(ctx, ag, now, ref); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "appointment_completed",
		Entity:   "agendamento",
		EntityID: &ag.ID,
		Metadata: map[string]any{"referencia": ref},
	})

	return ag, nil
}

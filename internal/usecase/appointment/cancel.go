package appointment

import (
	"context"

	"github.com/vittaestetica/clinica-api/internal/audit"
	domain "github.com/vittaestetica/clinica-api/internal/domain/appointment"
	"github.com/vittaestetica/clinica-api/internal/httperr"
	"github.com/vittaestetica/clinica-api/internal/models"
	"github.com/vittaestetica/clinica-api/internal/timezone"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	userID *uint,
) (*models.Agendamento, error) {

	ag, err := uc.repo.GetAgendamento(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	now := timezone.Now()
	if err := domain.Cancel(ag, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAgendamento(ctx, ag); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "appointment_cancelled",
		Entity:   "agendamento",
		EntityID: &ag.ID,
	})

	return ag, nil
}

package appointment

import (
	"time"

	"github.com/vittaestetica/clinica-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Confirm(ag *models.Agendamento) error {
	if err := CanConfirm(Status(ag.Status)); err != nil {
		return err
	}

	ag.Status = string(StatusConfirmado)
	return nil
}

func Cancel(ag *models.Agendamento, now time.Time) error {
	if err := CanCancel(Status(ag.Status)); err != nil {
		return err
	}

	ag.Status = string(StatusCancelado)
	ag.CancelledAt = &now
	return nil
}

func Complete(ag *models.Agendamento, now time.Time) error {
	if err := CanComplete(Status(ag.Status)); err != nil {
		return err
	}

	ag.Status = string(StatusConcluido)
	ag.CompletedAt = &now
	return nil
}

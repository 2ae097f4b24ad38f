package appointment

import (
	"context"
	"time"

	domain "github.com/vittaestetica/clinica-api/internal/domain/appointment"
	"github.com/vittaestetica/clinica-api/internal/dto"
	"github.com/vittaestetica/clinica-api/internal/models"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(
	repo domain.Repository,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
	}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	date time.Time,
) ([]dto.AppointmentListDTO, error) {

	start := time.Date(
		date.Year(),
		date.Month(),
		date.Day(),
		0, 0, 0, 0,
		date.Location(),
	)
	end := start.AddDate(0, 0, 1)

	agendamentos, err := uc.repo.ListForPeriod(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return toListDTO(agendamentos), nil
}

func toListDTO(agendamentos []models.Agendamento) []dto.AppointmentListDTO {
	out := make([]dto.AppointmentListDTO, 0, len(agendamentos))
	for _, ag := range agendamentos {
		out = append(out, dto.AppointmentListDTO{
			ID:             ag.ID,
			Data:           ag.Data,
			Hora:           ag.Hora,
			Status:         ag.Status,
			Tipo:           ag.TipoAgendamento,
			ClienteNome:    ag.Cliente.Nome,
			TratamentoNome: ag.Tratamento.Nome,
		})
	}
	return out
}

package appointment

import (
	"context"
	"time"

	"github.com/vittaestetica/clinica-api/internal/audit"
	domain "github.com/vittaestetica/clinica-api/internal/domain/appointment"
	"github.com/vittaestetica/clinica-api/internal/httperr"
	"github.com/vittaestetica/clinica-api/internal/models"
	"github.com/vittaestetica/clinica-api/internal/timezone"
	"github.com/vittaestetica/clinica-api/internal/whatsapp"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type BookAppointmentInput struct {
	Nome     string
	Email    string
	Telefone string

	TratamentoID    uint
	TipoAgendamento string

	// Data/hora já no fuso da clínica.
	DataHora time.Time
}

type BookAppointmentResult struct {
	Agendamento *models.Agendamento
	WhatsAppURL string
}

// ======================================================
// USE CASE
// ======================================================

// BookAppointment é a admissão: decide se o horário proposto é legal e
// livre de conflito antes de qualquer persistência. Nenhuma mutação de
// estoque ou financeira acontece aqui.
type BookAppointment struct {
	repo           domain.Repository
	audit          *audit.Dispatcher
	whatsAppNumber string
}

func NewBookAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	whatsAppNumber string,
) *BookAppointment {
	return &BookAppointment{
		repo:           repo,
		audit:          audit,
		whatsAppNumber: whatsAppNumber,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*BookAppointmentResult, error) {

	if !domain.IsValidTipo(domain.Tipo(in.TipoAgendamento)) {
		return nil, httperr.ErrBusiness("invalid_tipo_agendamento")
	}

	// Passado + expediente, nessa ordem.
	if err := domain.ValidateSlot(in.DataHora, timezone.Now()); err != nil {
		return nil, err
	}

	tratamento, err := uc.repo.GetTratamento(ctx, in.TratamentoID)
	if err != nil {
		return nil, httperr.ErrBusiness("tratamento_not_found")
	}

	data := truncateToDay(in.DataHora)
	hora := in.DataHora.Format("15:04")

	// Pré-check: o mesmo tratamento não pode estar ocupado no mesmo
	// dia e hora, mesmo que o cliente seja outro.
	conflict, err := uc.repo.HasSlotConflict(ctx, tratamento.ID, data, hora)
	if err != nil {
		return nil, err
	}
	if conflict {
		uc.audit.Dispatch(audit.Event{
			Action: "booking_conflict",
			Entity: "agendamento",
			Metadata: map[string]any{
				"tratamento_id": tratamento.ID,
				"data":          data.Format("2006-01-02"),
				"hora":          hora,
			},
		})
		return nil, httperr.ErrBusiness("slot_conflict")
	}

	cliente := &models.Cliente{
		Nome:     in.Nome,
		Telefone: in.Telefone,
		Email:    in.Email,
	}

	ag := &models.Agendamento{
		TratamentoID:    tratamento.ID,
		Data:            data,
		Hora:            hora,
		TipoAgendamento: in.TipoAgendamento,
		Status:          string(domain.InitialStatus()),
	}

	if err := uc.repo.BookSlot(ctx, cliente, ag); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_booked",
		Entity:   "agendamento",
		EntityID: &ag.ID,
		Metadata: map[string]any{
			"cliente_id":    cliente.ID,
			"tratamento_id": tratamento.ID,
			"data":          data.Format("2006-01-02"),
			"hora":          hora,
		},
	})

	link := whatsapp.Link(uc.whatsAppNumber, whatsapp.Booking{
		Nome:       cliente.Nome,
		Telefone:   cliente.Telefone,
		Tratamento: tratamento.Nome,
		Data:       data.Format("02/01/2006"),
		Hora:       hora,
		Tipo:       in.TipoAgendamento,
	})

	ag.Cliente = *cliente
	ag.Tratamento = *tratamento

	return &BookAppointmentResult{
		Agendamento: ag,
		WhatsAppURL: link,
	}, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/vittaestetica/clinica-api/internal/httperr"
	ucAppointment "github.com/vittaestetica/clinica-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

// BookingHandler atende o formulário público de agendamento.
type BookingHandler struct {
	bookUC *ucAppointment.BookAppointment
}

func NewBookingHandler(bookUC *ucAppointment.BookAppointment) *BookingHandler {
	return &BookingHandler{bookUC: bookUC}
}

// ======================================================
// REQUEST
// ======================================================

type BookingRequest struct {
	Nome     string `form:"nome" json:"nome" binding:"required"`
	Email    string `form:"email" json:"email" binding:"required,email"`
	Telefone string `form:"telefone" json:"telefone" binding:"required"`

	TratamentoID    uint   `form:"tratamento_id" json:"tratamento_id" binding:"required"`
	TipoAgendamento string `form:"tipo_agendamento" json:"tipo_agendamento" binding:"required"`

	// DD/MM/YYYY HH:MM
	DataHora string `form:"data_hora" json:"data_hora" binding:"required"`
}

var bookingFieldNames = map[string]string{
	"Nome":            "nome",
	"Email":           "email",
	"Telefone":        "telefone",
	"TratamentoID":    "tratamento_id",
	"TipoAgendamento": "tipo_agendamento",
	"DataHora":        "data_hora",
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req BookingRequest
	if err := c.ShouldBind(&req); err != nil {
		fieldErrors(c, bindingErrors(err))
		return
	}

	dataHora, err := parseDataHora(strings.TrimSpace(req.DataHora))
	if err != nil {
		fieldErrors(c, map[string][]string{
			"data_hora": {"Data ou hora inválida. Use o formato DD/MM/AAAA HH:MM."},
		})
		return
	}

	result, err := h.bookUC.Execute(c.Request.Context(), ucAppointment.BookAppointmentInput{
		Nome:            strings.TrimSpace(req.Nome),
		Email:           strings.ToLower(strings.TrimSpace(req.Email)),
		Telefone:        strings.TrimSpace(req.Telefone),
		TratamentoID:    req.TratamentoID,
		TipoAgendamento: strings.ToUpper(strings.TrimSpace(req.TipoAgendamento)),
		DataHora:        dataHora,
	})

	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":       "success",
		"agendamento":  result.Agendamento,
		"whatsapp_url": result.WhatsAppURL,
	})
}

// ======================================================
// ERRORS
// ======================================================

func fieldErrors(c *gin.Context, errs map[string][]string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"status": "error",
		"errors": errs,
	})
}

func bindingErrors(err error) map[string][]string {
	out := map[string][]string{}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			field, ok := bookingFieldNames[fe.Field()]
			if !ok {
				field = strings.ToLower(fe.Field())
			}

			msg := "Este campo é obrigatório."
			if fe.Tag() == "email" {
				msg = "E-mail inválido."
			}
			out[field] = append(out[field], msg)
		}
		return out
	}

	out["__all__"] = []string{"Dados inválidos."}
	return out
}

func mapBookingErrors(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "invalid_tipo_agendamento"):
		fieldErrors(c, map[string][]string{
			"tipo_agendamento": {"Tipo de agendamento inválido."},
		})

	case httperr.IsBusiness(err, "past_datetime"):
		fieldErrors(c, map[string][]string{
			"data_hora": {"Não é possível agendar em datas passadas."},
		})

	case httperr.IsBusiness(err, "outside_business_hours"):
		fieldErrors(c, map[string][]string{
			"data_hora": {"Horário fora do expediente (seg-sex 10:00-18:00, sáb 12:00-16:00)."},
		})

	case httperr.IsBusiness(err, "tratamento_not_found"):
		fieldErrors(c, map[string][]string{
			"tratamento_id": {"Selecione um tratamento válido."},
		})

	case httperr.IsBusiness(err, "slot_conflict"):
		fieldErrors(c, map[string][]string{
			"data_hora": {"Já existe um agendamento neste horário para este tratamento."},
		})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Ocorreu um erro inesperado.",
		})
	}
}

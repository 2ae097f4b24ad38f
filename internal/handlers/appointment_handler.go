package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vittaestetica/clinica-api/internal/domain/stock"
	"github.com/vittaestetica/clinica-api/internal/httperr"
	"github.com/vittaestetica/clinica-api/internal/httpresp"
	"github.com/vittaestetica/clinica-api/internal/middleware"
	ucAppointment "github.com/vittaestetica/clinica-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	confirmUC     *ucAppointment.ConfirmAppointment
	completeUC    *ucAppointment.CompleteAppointment
	cancelUC      *ucAppointment.CancelAppointment
	listByDateUC  *ucAppointment.ListAppointmentsByDate
	listByMonthUC *ucAppointment.ListAppointmentsByMonth
}

func NewAppointmentHandler(
	confirmUC *ucAppointment.ConfirmAppointment,
	completeUC *ucAppointment.CompleteAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	listByDateUC *ucAppointment.ListAppointmentsByDate,
	listByMonthUC *ucAppointment.ListAppointmentsByMonth,
) *AppointmentHandler {
	return &AppointmentHandler{
		confirmUC:     confirmUC,
		completeUC:    completeUC,
		cancelUC:      cancelUC,
		listByDateUC:  listByDateUC,
		listByMonthUC: listByMonthUC,
	}
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	date, err := parseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	out, err := h.listByDateUC.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	out, err := h.listByMonthUC.Execute(c.Request.Context(), year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":         year,
		"month":        month,
		"agendamentos": out,
	})
}

// ======================================================
// TRANSIÇÕES
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	id, userID, ok := appointmentParams(c)
	if !ok {
		return
	}

	ag, err := h.confirmUC.Execute(c.Request.Context(), id, &userID)
	if err != nil {
		mapTransitionErrors(c, err)
		return
	}

	c.JSON(http.StatusOK, ag)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, userID, ok := appointmentParams(c)
	if !ok {
		return
	}

	ag, err := h.cancelUC.Execute(c.Request.Context(), id, &userID)
	if err != nil {
		mapTransitionErrors(c, err)
		return
	}

	c.JSON(http.StatusOK, ag)
}

// Complete dispara o consumo de estoque: insuficiência volta 409 com o
// produto em falta e o agendamento permanece no status anterior.
func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, userID, ok := appointmentParams(c)
	if !ok {
		return
	}

	ag, err := h.completeUC.Execute(c.Request.Context(), id, &userID)
	if err != nil {
		var insufficient stock.InsufficientError
		if errors.As(err, &insufficient) {
			c.JSON(http.StatusConflict, gin.H{
				"error_code": "insufficient_stock",
				"message":    insufficient.Error(),
				"produto_id": insufficient.ProdutoID,
				"produto":    insufficient.Produto,
				"disponivel": insufficient.Disponivel,
				"necessario": insufficient.Necessario,
				"faltando":   insufficient.Faltando(),
			})
			return
		}

		mapTransitionErrors(c, err)
		return
	}

	c.JSON(http.StatusOK, ag)
}

// ======================================================
// HELPERS
// ======================================================

func appointmentParams(c *gin.Context) (uint, uint, bool) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, 0, false
	}

	return uint(id), userID, true
}

func mapTransitionErrors(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "appointment_not_found"):
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
	case httperr.IsBusiness(err, "invalid_state"):
		httperr.BadRequest(c, "invalid_state", "Transição de status não permitida.")
	default:
		httperr.Internal(c, "appointment_transition_failed", "Erro ao atualizar agendamento.")
	}
}

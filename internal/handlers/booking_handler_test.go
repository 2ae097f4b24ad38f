package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vittaestetica/clinica-api/internal/audit"
	domain "github.com/vittaestetica/clinica-api/internal/domain/appointment"
	"github.com/vittaestetica/clinica-api/internal/httperr"
	"github.com/vittaestetica/clinica-api/internal/models"
	"github.com/vittaestetica/clinica-api/internal/timezone"
	ucAppointment "github.com/vittaestetica/clinica-api/internal/usecase/appointment"
)

// ======================================================
// FAKE REPOSITORY
// ======================================================

type fakeBookingRepo struct {
	tratamento *models.Tratamento
	conflict   bool
}

func (f *fakeBookingRepo) GetTratamento(_ context.Context, _ uint) (*models.Tratamento, error) {
	if f.tratamento == nil {
		return nil, httperr.ErrBusiness("tratamento_not_found")
	}
	return f.tratamento, nil
}

func (f *fakeBookingRepo) HasSlotConflict(_ context.Context, _ uint, _ time.Time, _ string) (bool, error) {
	return f.conflict, nil
}

func (f *fakeBookingRepo) BookSlot(_ context.Context, cliente *models.Cliente, ag *models.Agendamento) error {
	cliente.ID = 1
	ag.ID = 42
	ag.ClienteID = cliente.ID
	return nil
}

func (f *fakeBookingRepo) GetAgendamento(_ context.Context, _ uint) (*models.Agendamento, error) {
	return nil, httperr.ErrBusiness("appointment_not_found")
}

func (f *fakeBookingRepo) UpdateAgendamento(_ context.Context, _ *models.Agendamento) error {
	return nil
}

func (f *fakeBookingRepo) CompleteWithConsumption(_ context.Context, _ *models.Agendamento, _ time.Time, _ string) error {
	return nil
}

func (f *fakeBookingRepo) ListForPeriod(_ context.Context, _, _ time.Time) ([]models.Agendamento, error) {
	return nil, nil
}

var _ domain.Repository = (*fakeBookingRepo)(nil)

// ======================================================
// HELPERS
// ======================================================

func bookingRouter(repo *fakeBookingRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	uc := ucAppointment.NewBookAppointment(
		repo,
		audit.NewDispatcher(audit.New(nil)),
		"5511940709836",
	)

	r := gin.New()
	r.POST("/api/public/agendamentos", NewBookingHandler(uc).Create)
	return r
}

func postBooking(t *testing.T, r *gin.Engine, payload map[string]any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/public/agendamentos", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// futureSlot devolve "DD/MM/AAAA HH:MM" do próximo dia pedido.
func futureSlot(wd time.Weekday, hour int) string {
	d := timezone.Now().AddDate(0, 0, 1)
	for d.Weekday() != wd {
		d = d.AddDate(0, 0, 1)
	}
	slot := time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, timezone.Location())
	return slot.Format("02/01/2006 15:04")
}

func validPayload() map[string]any {
	return map[string]any{
		"nome":             "Maria Silva",
		"email":            "maria@example.com",
		"telefone":         "11988887777",
		"tratamento_id":    1,
		"tipo_agendamento": "AVALIACAO",
		"data_hora":        futureSlot(time.Monday, 11),
	}
}

type bookingErrorResponse struct {
	Status string              `json:"status"`
	Errors map[string][]string `json:"errors"`
}

func decodeErrors(t *testing.T, w *httptest.ResponseRecorder) bookingErrorResponse {
	t.Helper()

	var resp bookingErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// ======================================================
// TESTS
// ======================================================

func TestBookingCreateSuccess(t *testing.T) {
	r := bookingRouter(&fakeBookingRepo{
		tratamento: &models.Tratamento{ID: 1, Nome: "Limpeza de Pele"},
	})

	w := postBooking(t, r, validPayload())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Status      string             `json:"status"`
		Agendamento models.Agendamento `json:"agendamento"`
		WhatsAppURL string             `json:"whatsapp_url"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, uint(42), resp.Agendamento.ID)
	assert.Equal(t, "PENDENTE", resp.Agendamento.Status)
	assert.Equal(t, "11:00", resp.Agendamento.Hora)
	assert.Contains(t, resp.WhatsAppURL, "https://wa.me/5511940709836?text=")
}

func TestBookingCreateMissingFields(t *testing.T) {
	r := bookingRouter(&fakeBookingRepo{})

	w := postBooking(t, r, map[string]any{"nome": "Maria"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeErrors(t, w)
	assert.Equal(t, "error", resp.Status)

	for _, field := range []string{"email", "telefone", "tratamento_id", "tipo_agendamento", "data_hora"} {
		assert.Contains(t, resp.Errors, field)
	}
	assert.NotContains(t, resp.Errors, "nome")
}

func TestBookingCreateInvalidEmail(t *testing.T) {
	r := bookingRouter(&fakeBookingRepo{})

	payload := validPayload()
	payload["email"] = "not-an-email"

	w := postBooking(t, r, payload)
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeErrors(t, w)
	require.Contains(t, resp.Errors, "email")
	assert.Equal(t, []string{"E-mail inválido."}, resp.Errors["email"])
}

func TestBookingCreateBadDateFormat(t *testing.T) {
	r := bookingRouter(&fakeBookingRepo{})

	payload := validPayload()
	payload["data_hora"] = "2025-03-17 11:00"

	w := postBooking(t, r, payload)
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeErrors(t, w)
	assert.Contains(t, resp.Errors, "data_hora")
}

func TestBookingCreateOutsideBusinessHours(t *testing.T) {
	r := bookingRouter(&fakeBookingRepo{
		tratamento: &models.Tratamento{ID: 1},
	})

	payload := validPayload()
	payload["data_hora"] = futureSlot(time.Saturday, 11)

	w := postBooking(t, r, payload)
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeErrors(t, w)
	require.Contains(t, resp.Errors, "data_hora")
	assert.Contains(t, resp.Errors["data_hora"][0], "expediente")
}

func TestBookingCreateSlotConflict(t *testing.T) {
	r := bookingRouter(&fakeBookingRepo{
		tratamento: &models.Tratamento{ID: 1},
		conflict:   true,
	})

	w := postBooking(t, r, validPayload())
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeErrors(t, w)
	require.Contains(t, resp.Errors, "data_hora")
	assert.Contains(t, resp.Errors["data_hora"][0], "Já existe um agendamento")
}

func TestBookingCreateUnknownTreatment(t *testing.T) {
	r := bookingRouter(&fakeBookingRepo{})

	w := postBooking(t, r, validPayload())
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeErrors(t, w)
	assert.Contains(t, resp.Errors, "tratamento_id")
}

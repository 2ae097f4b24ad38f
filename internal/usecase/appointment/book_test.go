package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vittaestetica/clinica-api/internal/audit"
	domain "github.com/vittaestetica/clinica-api/internal/domain/appointment"
	"github.com/vittaestetica/clinica-api/internal/httperr"
	"github.com/vittaestetica/clinica-api/internal/models"
	"github.com/vittaestetica/clinica-api/internal/timezone"
)

// ======================================================
// FAKE REPOSITORY
// ======================================================

type fakeRepo struct {
	tratamentos map[uint]*models.Tratamento

	conflict    bool
	conflictErr error

	bookErr    error
	bookedAg   *models.Agendamento
	bookedCli  *models.Cliente
	bookCalled bool

	agendamentos map[uint]*models.Agendamento

	completeErr    error
	completeCalled bool
	completeRef    string
	completeNow    time.Time

	updated []*models.Agendamento
	listed  []models.Agendamento
}

func (f *fakeRepo) GetTratamento(_ context.Context, id uint) (*models.Tratamento, error) {
	t, ok := f.tratamentos[id]
	if !ok {
		return nil, httperr.ErrBusiness("tratamento_not_found")
	}
	return t, nil
}

func (f *fakeRepo) HasSlotConflict(_ context.Context, _ uint, _ time.Time, _ string) (bool, error) {
	return f.conflict, f.conflictErr
}

func (f *fakeRepo) BookSlot(_ context.Context, cliente *models.Cliente, ag *models.Agendamento) error {
	f.bookCalled = true
	if f.bookErr != nil {
		return f.bookErr
	}

	cliente.ID = 10
	ag.ID = 77
	ag.ClienteID = cliente.ID

	f.bookedCli = cliente
	f.bookedAg = ag
	return nil
}

func (f *fakeRepo) GetAgendamento(_ context.Context, id uint) (*models.Agendamento, error) {
	ag, ok := f.agendamentos[id]
	if !ok {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	return ag, nil
}

func (f *fakeRepo) UpdateAgendamento(_ context.Context, ag *models.Agendamento) error {
	f.updated = append(f.updated, ag)
	return nil
}

func (f *fakeRepo) CompleteWithConsumption(
	_ context.Context,
	ag *models.Agendamento,
	now time.Time,
	ref string,
) error {
	f.completeCalled = true
	f.completeRef = ref
	f.completeNow = now

	if f.completeErr != nil {
		return f.completeErr
	}

	ag.Status = string(domain.StatusConcluido)
	ag.CompletedAt = &now
	ag.EstoqueDescontado = true
	return nil
}

func (f *fakeRepo) ListForPeriod(_ context.Context, _, _ time.Time) ([]models.Agendamento, error) {
	return f.listed, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil))
}

// nextWeekdayAt devolve o próximo dia útil pedido (sempre no futuro),
// no horário dado, no fuso da clínica.
func nextWeekdayAt(wd time.Weekday, hour int) time.Time {
	d := timezone.Now().AddDate(0, 0, 1)
	for d.Weekday() != wd {
		d = d.AddDate(0, 0, 1)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, timezone.Location())
}

// ======================================================
// TESTS
// ======================================================

func validInput() BookAppointmentInput {
	return BookAppointmentInput{
		Nome:            "Maria Silva",
		Email:           "maria@example.com",
		Telefone:        "11988887777",
		TratamentoID:    1,
		TipoAgendamento: string(domain.TipoAvaliacao),
		DataHora:        nextWeekdayAt(time.Monday, 11),
	}
}

func newBookUC(repo *fakeRepo) *BookAppointment {
	return NewBookAppointment(repo, testDispatcher(), "5511940709836")
}

func TestBookAppointmentSuccess(t *testing.T) {
	repo := &fakeRepo{
		tratamentos: map[uint]*models.Tratamento{
			1: {ID: 1, Nome: "Limpeza de Pele"},
		},
	}

	in := validInput()
	result, err := newBookUC(repo).Execute(context.Background(), in)
	require.NoError(t, err)

	require.True(t, repo.bookCalled)
	ag := result.Agendamento

	assert.Equal(t, uint(77), ag.ID)
	assert.Equal(t, string(domain.StatusPendente), ag.Status)
	assert.Equal(t, "11:00", ag.Hora)
	wantDay := time.Date(
		in.DataHora.Year(), in.DataHora.Month(), in.DataHora.Day(),
		0, 0, 0, 0, in.DataHora.Location(),
	)
	assert.Equal(t, wantDay, ag.Data)
	assert.Equal(t, "Limpeza de Pele", ag.Tratamento.Nome)
	assert.Equal(t, "Maria Silva", ag.Cliente.Nome)

	assert.Contains(t, result.WhatsAppURL, "https://wa.me/5511940709836?text=")
	assert.Contains(t, result.WhatsAppURL, "Agendamento")
}

func TestBookAppointmentInvalidTipo(t *testing.T) {
	repo := &fakeRepo{}

	in := validInput()
	in.TipoAgendamento = "CONSULTA"

	_, err := newBookUC(repo).Execute(context.Background(), in)

	assert.True(t, httperr.IsBusiness(err, "invalid_tipo_agendamento"))
	assert.False(t, repo.bookCalled)
}

func TestBookAppointmentPastDatetime(t *testing.T) {
	repo := &fakeRepo{}

	in := validInput()
	in.DataHora = timezone.Now().AddDate(0, 0, -1)

	_, err := newBookUC(repo).Execute(context.Background(), in)

	assert.True(t, httperr.IsBusiness(err, "past_datetime"))
	assert.False(t, repo.bookCalled)
}

func TestBookAppointmentOutsideBusinessHours(t *testing.T) {
	repo := &fakeRepo{
		tratamentos: map[uint]*models.Tratamento{1: {ID: 1}},
	}

	in := validInput()
	in.DataHora = nextWeekdayAt(time.Sunday, 12)

	_, err := newBookUC(repo).Execute(context.Background(), in)

	assert.True(t, httperr.IsBusiness(err, "outside_business_hours"))
	assert.False(t, repo.bookCalled)
}

func TestBookAppointmentTreatmentNotFound(t *testing.T) {
	repo := &fakeRepo{tratamentos: map[uint]*models.Tratamento{}}

	_, err := newBookUC(repo).Execute(context.Background(), validInput())

	assert.True(t, httperr.IsBusiness(err, "tratamento_not_found"))
	assert.False(t, repo.bookCalled)
}

func TestBookAppointmentSlotConflict(t *testing.T) {
	repo := &fakeRepo{
		tratamentos: map[uint]*models.Tratamento{1: {ID: 1}},
		conflict:    true,
	}

	_, err := newBookUC(repo).Execute(context.Background(), validInput())

	assert.True(t, httperr.IsBusiness(err, "slot_conflict"))
	assert.False(t, repo.bookCalled)
}

func TestBookAppointmentRaceLostOnInsert(t *testing.T) {
	// Pré-check passou mas a constraint única do banco barrou o insert.
	repo := &fakeRepo{
		tratamentos: map[uint]*models.Tratamento{1: {ID: 1}},
		bookErr:     httperr.ErrBusiness("slot_conflict"),
	}

	_, err := newBookUC(repo).Execute(context.Background(), validInput())

	assert.True(t, httperr.IsBusiness(err, "slot_conflict"))
}

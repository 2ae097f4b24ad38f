package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/vittaestetica/clinica-api/internal/domain/appointment"
	"github.com/vittaestetica/clinica-api/internal/httperr"
	"github.com/vittaestetica/clinica-api/internal/models"
)

func TestConfirmAppointment(t *testing.T) {
	ag := &models.Agendamento{ID: 4, Status: string(domain.StatusPendente)}
	repo := &fakeRepo{agendamentos: map[uint]*models.Agendamento{4: ag}}

	uc := NewConfirmAppointment(repo, testDispatcher())

	result, err := uc.Execute(context.Background(), 4, nil)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmado), result.Status)
	require.Len(t, repo.updated, 1)
}

func TestConfirmAppointmentInvalidState(t *testing.T) {
	ag := &models.Agendamento{ID: 4, Status: string(domain.StatusCancelado)}
	repo := &fakeRepo{agendamentos: map[uint]*models.Agendamento{4: ag}}

	uc := NewConfirmAppointment(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), 4, nil)

	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	assert.Empty(t, repo.updated)
}

func TestCancelAppointment(t *testing.T) {
	ag := &models.Agendamento{ID: 4, Status: string(domain.StatusConfirmado)}
	repo := &fakeRepo{agendamentos: map[uint]*models.Agendamento{4: ag}}

	uc := NewCancelAppointment(repo, testDispatcher())

	result, err := uc.Execute(context.Background(), 4, nil)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelado), result.Status)
	assert.NotNil(t, result.CancelledAt)
	require.Len(t, repo.updated, 1)
}

func TestCancelAppointmentNotFound(t *testing.T) {
	repo := &fakeRepo{agendamentos: map[uint]*models.Agendamento{}}

	uc := NewCancelAppointment(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), 9, nil)

	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

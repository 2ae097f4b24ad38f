package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vittaestetica/clinica-api/internal/httperr"
	"github.com/vittaestetica/clinica-api/internal/models"
)

func TestIsValidTipo(t *testing.T) {
	assert.True(t, IsValidTipo(TipoAvaliacao))
	assert.True(t, IsValidTipo(TipoProcedimento))
	assert.False(t, IsValidTipo(Tipo("CONSULTA")))
	assert.False(t, IsValidTipo(Tipo("")))
}

func TestTransitionGuards(t *testing.T) {
	cases := []struct {
		name    string
		guard   func(Status) error
		from    Status
		allowed bool
	}{
		{"confirma pendente", CanConfirm, StatusPendente, true},
		{"não reconfirma confirmado", CanConfirm, StatusConfirmado, false},
		{"não confirma concluído", CanConfirm, StatusConcluido, false},
		{"não confirma cancelado", CanConfirm, StatusCancelado, false},

		{"cancela pendente", CanCancel, StatusPendente, true},
		{"cancela confirmado", CanCancel, StatusConfirmado, true},
		{"não cancela concluído", CanCancel, StatusConcluido, false},
		{"não recancela cancelado", CanCancel, StatusCancelado, false},

		{"conclui pendente", CanComplete, StatusPendente, true},
		{"conclui confirmado", CanComplete, StatusConfirmado, true},
		{"não reconclui concluído", CanComplete, StatusConcluido, false},
		{"não conclui cancelado", CanComplete, StatusCancelado, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.guard(tc.from)

			if tc.allowed {
				assert.NoError(t, err)
				return
			}
			assert.True(t, httperr.IsBusiness(err, "invalid_state"))
		})
	}
}

func TestConfirm(t *testing.T) {
	ag := &models.Agendamento{Status: string(StatusPendente)}

	require.NoError(t, Confirm(ag))
	assert.Equal(t, string(StatusConfirmado), ag.Status)
}

func TestCancelStampsTimestamp(t *testing.T) {
	now := time.Date(2025, 3, 17, 11, 0, 0, 0, time.UTC)
	ag := &models.Agendamento{Status: string(StatusConfirmado)}

	require.NoError(t, Cancel(ag, now))

	assert.Equal(t, string(StatusCancelado), ag.Status)
	require.NotNil(t, ag.CancelledAt)
	assert.Equal(t, now, *ag.CancelledAt)
}

func TestCompleteStampsTimestamp(t *testing.T) {
	now := time.Date(2025, 3, 17, 11, 0, 0, 0, time.UTC)
	ag := &models.Agendamento{Status: string(StatusPendente)}

	require.NoError(t, Complete(ag, now))

	assert.Equal(t, string(StatusConcluido), ag.Status)
	require.NotNil(t, ag.CompletedAt)
	assert.Equal(t, now, *ag.CompletedAt)
}

func TestCompleteRejectsCancelled(t *testing.T) {
	ag := &models.Agendamento{Status: string(StatusCancelado)}

	err := Complete(ag, time.Now())

	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	assert.Equal(t, string(StatusCancelado), ag.Status)
	assert.Nil(t, ag.CompletedAt)
}

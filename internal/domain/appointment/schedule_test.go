package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vittaestetica/clinica-api/internal/httperr"
)

func slot(t *testing.T, day string, hour, minute int) time.Time {
	t.Helper()

	d, err := time.Parse("2006-01-02", day)
	require.NoError(t, err)

	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, time.UTC)
}

func TestValidateSlot(t *testing.T) {
	// Referência fixa: sábado 01/03/2025, meio-dia.
	now := slot(t, "2025-03-01", 12, 0)

	cases := []struct {
		name     string
		proposed time.Time
		wantCode string
	}{
		{
			name:     "rejeita horário no passado",
			proposed: slot(t, "2025-02-28", 11, 0),
			wantCode: "past_datetime",
		},
		{
			name:     "segunda dentro do expediente",
			proposed: slot(t, "2025-03-17", 11, 0),
		},
		{
			name:     "segunda na abertura exata",
			proposed: slot(t, "2025-03-17", 10, 0),
		},
		{
			name:     "segunda no fechamento exato",
			proposed: slot(t, "2025-03-17", 18, 0),
		},
		{
			name:     "segunda um minuto antes de abrir",
			proposed: slot(t, "2025-03-17", 9, 59),
			wantCode: "outside_business_hours",
		},
		{
			name:     "segunda um minuto depois de fechar",
			proposed: slot(t, "2025-03-17", 18, 1),
			wantCode: "outside_business_hours",
		},
		{
			name:     "sexta dentro do expediente",
			proposed: slot(t, "2025-03-21", 17, 30),
		},
		{
			name:     "sábado antes da janela reduzida",
			proposed: slot(t, "2025-03-15", 11, 0),
			wantCode: "outside_business_hours",
		},
		{
			name:     "sábado na abertura exata",
			proposed: slot(t, "2025-03-15", 12, 0),
		},
		{
			name:     "sábado no fechamento exato",
			proposed: slot(t, "2025-03-15", 16, 0),
		},
		{
			name:     "sábado depois da janela reduzida",
			proposed: slot(t, "2025-03-15", 16, 30),
			wantCode: "outside_business_hours",
		},
		{
			name:     "domingo sempre fechado",
			proposed: slot(t, "2025-03-16", 12, 0),
			wantCode: "outside_business_hours",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateSlot(tc.proposed, now)

			if tc.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, httperr.IsBusiness(err, tc.wantCode),
				"expected %s, got %v", tc.wantCode, err)
		})
	}
}

func TestValidateSlotPastBeatsSchedule(t *testing.T) {
	// Horário válido pela janela, mas já passou: o código de erro
	// tem que ser past_datetime, não outside_business_hours.
	now := slot(t, "2025-03-18", 12, 0)
	proposed := slot(t, "2025-03-17", 11, 0)

	err := ValidateSlot(proposed, now)
	assert.True(t, httperr.IsBusiness(err, "past_datetime"))
}

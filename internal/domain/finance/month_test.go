package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vittaestetica/clinica-api/internal/httperr"
)

func TestMonthRange(t *testing.T) {
	loc := time.UTC

	cases := []struct {
		name    string
		ano     int
		mes     int
		lastDay int
	}{
		{"janeiro", 2025, 1, 31},
		{"fevereiro comum", 2025, 2, 28},
		{"fevereiro bissexto", 2024, 2, 29},
		{"abril", 2025, 4, 30},
		{"dezembro", 2025, 12, 31},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			first, last, err := MonthRange(tc.ano, tc.mes, loc)
			require.NoError(t, err)

			assert.Equal(t, time.Date(tc.ano, time.Month(tc.mes), 1, 0, 0, 0, 0, loc), first)
			assert.Equal(t, time.Date(tc.ano, time.Month(tc.mes), tc.lastDay, 0, 0, 0, 0, loc), last)
		})
	}
}

func TestMonthRangeRejectsInvalidInput(t *testing.T) {
	loc := time.UTC

	for _, mes := range []int{0, 13, -1} {
		_, _, err := MonthRange(2025, mes, loc)
		assert.True(t, httperr.IsBusiness(err, "invalid_month"), "mes=%d", mes)
	}

	for _, ano := range []int{1999, 2101} {
		_, _, err := MonthRange(ano, 6, loc)
		assert.True(t, httperr.IsBusiness(err, "invalid_year"), "ano=%d", ano)
	}
}

func TestMonthRangeKeepsLocation(t *testing.T) {
	loc := time.FixedZone("America/Sao_Paulo", -3*60*60)

	first, last, err := MonthRange(2025, 3, loc)
	require.NoError(t, err)

	assert.Equal(t, loc, first.Location())
	assert.Equal(t, loc, last.Location())
}

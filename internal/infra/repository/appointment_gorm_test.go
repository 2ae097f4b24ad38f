package repository

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
	"gorm.io/gorm/utils/tests"

	domain "github.com/vittaestetica/clinica-api/internal/domain/appointment"
	"github.com/vittaestetica/clinica-api/internal/httperr"
	"github.com/vittaestetica/clinica-api/internal/models"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)
	return db
}

// Postgres não aceita FOR UPDATE junto com agregação; o re-check de
// slot precisa ser um count puro.
func TestSlotConflictScopeCountWithoutLock(t *testing.T) {
	db := dryRunDB(t)
	data := time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC)

	var count int64
	stmt := slotConflictScope(db, 7, data, "11:00").
		Count(&count).Statement

	sql := stmt.SQL.String()
	assert.Contains(t, sql, "count(*)")
	assert.NotContains(t, sql, "FOR UPDATE")
	assert.Equal(
		t,
		[]interface{}{uint(7), data, "11:00", string(domain.StatusCancelado)},
		stmt.Vars,
	)
}

// Duas transações concorrentes pelo mesmo slot livre passam ambas
// pelo count; quem barra a segunda é o índice único parcial por
// tratamento, então ele tem que existir no schema.
func TestAgendamentoSlotUniqueIndexes(t *testing.T) {
	s, err := schema.Parse(&models.Agendamento{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	indexes := map[string]*schema.Index{}
	for _, idx := range s.ParseIndexes() {
		indexes[idx.Name] = idx
	}

	cases := []struct {
		name  string
		cols  []string
		where string
	}{
		{
			name:  "uq_agendamento_tratamento_slot",
			cols:  []string{"tratamento_id", "data", "hora"},
			where: "status <> 'CANCELADO'",
		},
		{
			name: "uq_agendamento_cliente_slot",
			cols: []string{"cliente_id", "data", "hora"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			idx, ok := indexes[tc.name]
			require.True(t, ok, "índice não declarado no modelo")

			assert.Equal(t, "UNIQUE", idx.Class)
			assert.Equal(t, tc.where, idx.Where)

			cols := make([]string, 0, len(idx.Fields))
			for _, f := range idx.Fields {
				cols = append(cols, f.DBName)
			}
			assert.ElementsMatch(t, tc.cols, cols)
		})
	}
}

func TestSlotRaceError(t *testing.T) {
	t.Run("unique violation vira slot_conflict", func(t *testing.T) {
		raw := &pgconn.PgError{
			Code:           "23505",
			ConstraintName: "uq_agendamento_tratamento_slot",
		}
		err := slotRaceError(fmt.Errorf("insert agendamento: %w", raw))

		assert.True(t, httperr.IsBusiness(err, "slot_conflict"))
	})

	t.Run("outros erros passam intactos", func(t *testing.T) {
		boom := errors.New("connection reset")
		assert.Equal(t, boom, slotRaceError(boom))
	})

	t.Run("nil continua nil", func(t *testing.T) {
		assert.NoError(t, slotRaceError(nil))
	})
}

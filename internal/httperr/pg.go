package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

// IsUniqueViolation detecta violação de constraint única do Postgres.
// É o árbitro final contra corridas de reserva do mesmo horário: duas
// requisições podem passar pelo pré-check, mas só uma insere.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

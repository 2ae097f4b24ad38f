package finance

import (
	"time"

	"github.com/vittaestetica/clinica-api/internal/httperr"
)

// MonthRange devolve o primeiro e o último dia do mês, à meia-noite no
// fuso informado. AddDate cuida do tamanho do mês, inclusive fevereiro
// em ano bissexto.
func MonthRange(ano, mes int, loc *time.Location) (time.Time, time.Time, error) {
	if mes < 1 || mes > 12 {
		return time.Time{}, time.Time{}, httperr.ErrBusiness("invalid_month")
	}
	if ano < 2000 || ano > 2100 {
		return time.Time{}, time.Time{}, httperr.ErrBusiness("invalid_year")
	}

	first := time.Date(ano, time.Month(mes), 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1)

	return first, last, nil
}

package handlers

import (
	"time"

	"github.com/vittaestetica/clinica-api/internal/timezone"
)

// Formato de entrada do formulário público de agendamento.
const dataHoraLayout = "02/01/2006 15:04"

func parseDataHora(s string) (time.Time, error) {
	return time.ParseInLocation(dataHoraLayout, s, timezone.Location())
}

func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, timezone.Location())
}

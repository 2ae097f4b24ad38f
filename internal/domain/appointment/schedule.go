package appointment

import (
	"time"

	"github.com/vittaestetica/clinica-api/internal/httperr"
)

// Janelas de atendimento da clínica, em minutos do dia, ambas as
// bordas inclusas. Domingo não atende.
const (
	weekdayOpen  = 10 * 60 // 10:00
	weekdayClose = 18 * 60 // 18:00

	saturdayOpen  = 12 * 60 // 12:00
	saturdayClose = 16 * 60 // 16:00
)

// ValidateSlot decide se a data/hora proposta é legal: não pode estar
// no passado e precisa cair dentro do expediente do dia da semana.
func ValidateSlot(proposed time.Time, now time.Time) error {
	if proposed.Before(now) {
		return httperr.ErrBusiness("past_datetime")
	}

	minute := proposed.Hour()*60 + proposed.Minute()

	switch wd := proposed.Weekday(); {
	case wd >= time.Monday && wd <= time.Friday:
		if minute < weekdayOpen || minute > weekdayClose {
			return httperr.ErrBusiness("outside_business_hours")
		}
	case wd == time.Saturday:
		if minute < saturdayOpen || minute > saturdayClose {
			return httperr.ErrBusiness("outside_business_hours")
		}
	default:
		return httperr.ErrBusiness("outside_business_hours")
	}

	return nil
}

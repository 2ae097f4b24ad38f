package timezone

import "time"

// A clínica opera num fuso único.
const DefaultTimezone = "America/Sao_Paulo"

func Location() *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}

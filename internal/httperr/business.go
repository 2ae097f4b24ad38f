package httperr

import "errors"

// BusinessError é uma rejeição de regra da clínica, identificada por um
// código estável ("slot_conflict", "outside_business_hours",
// "past_datetime"...). Os handlers mapeiam código em status HTTP e
// mensagem em português; o resto da pilha só propaga.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// IsBusiness responde se err carrega exatamente o código dado.
func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

package appointment

import "github.com/vittaestetica/clinica-api/internal/httperr"

// ===============================
// Status do Agendamento
// ===============================

type Status string

const (
	StatusPendente   Status = "PENDENTE"
	StatusConfirmado Status = "CONFIRMADO"
	StatusConcluido  Status = "CONCLUIDO"
	StatusCancelado  Status = "CANCELADO"
)

// ===============================
// Tipo do Agendamento
// ===============================

type Tipo string

const (
	TipoAvaliacao    Tipo = "AVALIACAO"
	TipoProcedimento Tipo = "PROCEDIMENTO"
)

func IsValidTipo(t Tipo) bool {
	return t == TipoAvaliacao || t == TipoProcedimento
}

// ===============================
// Validações de transição
// ===============================

func CanConfirm(current Status) error {
	if current != StatusPendente {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanCancel(current Status) error {
	if current != StatusPendente && current != StatusConfirmado {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete define se um agendamento pode ser concluído. A conclusão
// é a transição terminal que dispara o consumo de estoque.
func CanComplete(current Status) error {
	if current != StatusPendente && current != StatusConfirmado {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPendente
}

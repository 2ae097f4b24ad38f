package dto

import "time"

type AppointmentListDTO struct {
	ID             uint      `json:"id"`
	Data           time.Time `json:"data"`
	Hora           string    `json:"hora"`
	Status         string    `json:"status"`
	Tipo           string    `json:"tipo_agendamento"`
	ClienteNome    string    `json:"cliente_nome"`
	TratamentoNome string    `json:"tratamento_nome"`
}

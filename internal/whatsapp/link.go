package whatsapp

import (
	"fmt"
	"net/url"
)

// Booking é o conteúdo da mensagem de confirmação enviada ao cliente.
type Booking struct {
	Nome       string
	Telefone   string
	Tratamento string
	Data       string // DD/MM/YYYY
	Hora       string // HH:MM
	Tipo       string
}

func Message(b Booking) string {
	return fmt.Sprintf(
		"Agendamento:\nNome: %s\nTelefone: %s\nTratamento: %s\nData: %s\nHora: %s\nTipo: %s",
		b.Nome, b.Telefone, b.Tratamento, b.Data, b.Hora, b.Tipo,
	)
}

// Link monta o deep-link para o WhatsApp com a mensagem codificada.
// Nenhuma chamada de rede acontece aqui: o navegador do cliente é quem
// segue o link.
func Link(number string, b Booking) string {
	return fmt.Sprintf(
		"https://wa.me/%s?text=%s",
		number,
		url.QueryEscape(Message(b)),
	)
}

package payments

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/vittaestetica/clinica-api/internal/models"
)

// MercadoPago cria links de pagamento (preferências de checkout) para
// receitas em aberto. Sem MP_ACCESS_TOKEN o recurso fica desligado.
type MercadoPago struct {
	prefs preference.Client
}

func New(accessToken string) (*MercadoPago, error) {
	if accessToken == "" {
		return &MercadoPago{}, nil
	}

	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}

	return &MercadoPago{prefs: preference.NewClient(cfg)}, nil
}

func (m *MercadoPago) Enabled() bool {
	return m.prefs != nil
}

// PaymentLink cria a preferência e devolve a URL de checkout.
func (m *MercadoPago) PaymentLink(
	ctx context.Context,
	receita *models.Receita,
) (string, error) {

	titulo := receita.Descricao
	if titulo == "" {
		titulo = fmt.Sprintf("Receita #%d", receita.ID)
	}

	valor, _ := receita.Valor.Float64()

	pref, err := m.prefs.Create(ctx, preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:     titulo,
				Quantity:  1,
				UnitPrice: valor,
			},
		},
		ExternalReference: fmt.Sprintf("receita-%d", receita.ID),
	})
	if err != nil {
		return "", err
	}

	return pref.InitPoint, nil
}

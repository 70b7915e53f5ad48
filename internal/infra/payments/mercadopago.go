package payments

import (
	"context"
	"errors"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/BruksfildServices01/viki/internal/models"
)

// preferenceCreator é o subconjunto do cliente do SDK que usamos.
type preferenceCreator interface {
	Create(ctx context.Context, request preference.Request) (*preference.Response, error)
}

// MercadoPagoProvider cria um checkout hospedado (preference) por serviço.
// O link é reutilizável; o atendimento vai no client_reference_id.
type MercadoPagoProvider struct {
	client   preferenceCreator
	currency string
}

func NewMercadoPagoProvider(accessToken, currency string) (*MercadoPagoProvider, error) {
	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, err
	}
	return &MercadoPagoProvider{
		client:   preference.NewClient(cfg),
		currency: currency,
	}, nil
}

func (p *MercadoPagoProvider) CreatePaymentLink(ctx context.Context, svc models.Service) (string, error) {
	price, _ := svc.Price.Float64()

	res, err := p.client.Create(ctx, preference.Request{
		Items: []preference.ItemRequest{
			{
				ID:         svc.ID,
				Title:      svc.Name,
				Quantity:   1,
				UnitPrice:  price,
				CurrencyID: p.currency,
			},
		},
		ExternalReference: svc.ID,
	})
	if err != nil {
		return "", err
	}
	if res == nil || res.InitPoint == "" {
		return "", errors.New("mercadopago: preference without init_point")
	}

	return res.InitPoint, nil
}

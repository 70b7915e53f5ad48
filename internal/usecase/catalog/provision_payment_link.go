package catalog

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/viki/internal/audit"
	domain "github.com/BruksfildServices01/viki/internal/domain/catalog"
	"github.com/BruksfildServices01/viki/internal/httperr"
	"github.com/BruksfildServices01/viki/internal/logging"
	"github.com/BruksfildServices01/viki/internal/models"
)

// LinkProvider cria um checkout hospedado para o serviço.
type LinkProvider interface {
	CreatePaymentLink(ctx context.Context, svc models.Service) (string, error)
}

// ProvisionPaymentLink é a ação do operador que resolve "no_payment_link".
type ProvisionPaymentLink struct {
	repo     domain.Repository
	provider LinkProvider
	audit    *audit.Dispatcher
}

func NewProvisionPaymentLink(
	repo domain.Repository,
	provider LinkProvider,
	audit *audit.Dispatcher,
) *ProvisionPaymentLink {
	return &ProvisionPaymentLink{
		repo:     repo,
		provider: provider,
		audit:    audit,
	}
}

func (uc *ProvisionPaymentLink) Execute(
	ctx context.Context,
	stylistID string,
	serviceID string,
) (*models.Service, error) {

	fields := logrus.Fields{
		"action":     "provision_payment_link",
		"stylist_id": stylistID,
		"service_id": serviceID,
	}

	svc, err := ownedService(ctx, uc.repo, stylistID, serviceID)
	if err != nil {
		return nil, logging.StoreFailure(ctx, err, fields)
	}

	// link já existente nunca é trocado
	if svc.HasPaymentLink() {
		return svc, nil
	}

	if uc.provider == nil {
		return nil, httperr.ErrPolicy("link_provider_disabled")
	}

	link, err := uc.provider.CreatePaymentLink(ctx, *svc)
	if err != nil {
		return nil, logging.StoreFailure(ctx, err, fields)
	}

	svc.PaymentLinkURL = &link
	if err := uc.repo.SaveService(ctx, svc); err != nil {
		return nil, logging.StoreFailure(ctx, err, fields)
	}

	logrus.WithContext(ctx).WithFields(fields).Info("payment link provisioned")

	uc.audit.Dispatch(audit.Event{
		StylistID: stylistID,
		Action:    "payment_link_provisioned",
		Entity:    "service",
		EntityID:  svc.ID,
	})

	return svc, nil
}

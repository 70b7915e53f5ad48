package catalog

import (
	"context"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/viki/internal/audit"
	domain "github.com/BruksfildServices01/viki/internal/domain/catalog"
	"github.com/BruksfildServices01/viki/internal/httperr"
	"github.com/BruksfildServices01/viki/internal/logging"
	"github.com/BruksfildServices01/viki/internal/models"
)

type ServiceInput struct {
	Name           *string
	Price          *decimal.Decimal
	PaymentLinkURL *string
}

// ======================================================
// CREATE
// ======================================================

type CreateService struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateService(repo domain.Repository, audit *audit.Dispatcher) *CreateService {
	return &CreateService{repo: repo, audit: audit}
}

func (uc *CreateService) Execute(
	ctx context.Context,
	stylistID string,
	in ServiceInput,
) (*models.Service, error) {

	if strings.TrimSpace(stylistID) == "" {
		return nil, httperr.ErrValidation("missing_stylist")
	}
	if in.Name == nil || in.Price == nil {
		return nil, httperr.ErrValidation("missing_required")
	}

	svc := &models.Service{StylistID: stylistID}
	if err := apply(svc, in); err != nil {
		return nil, err
	}

	if err := uc.repo.CreateService(ctx, svc); err != nil {
		return nil, logging.StoreFailure(ctx, err, logrus.Fields{
			"action":     "create_service",
			"stylist_id": stylistID,
		})
	}

	uc.audit.Dispatch(audit.Event{
		StylistID: stylistID,
		Action:    "service_created",
		Entity:    "service",
		EntityID:  svc.ID,
		Metadata:  map[string]any{"name": svc.Name, "price": svc.Price.StringFixed(2)},
	})

	return svc, nil
}

// ======================================================
// UPDATE
// ======================================================

type UpdateService struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateService(repo domain.Repository, audit *audit.Dispatcher) *UpdateService {
	return &UpdateService{repo: repo, audit: audit}
}

func (uc *UpdateService) Execute(
	ctx context.Context,
	stylistID string,
	serviceID string,
	in ServiceInput,
) (*models.Service, error) {

	fields := logrus.Fields{
		"action":     "update_service",
		"stylist_id": stylistID,
		"service_id": serviceID,
	}

	svc, err := ownedService(ctx, uc.repo, stylistID, serviceID)
	if err != nil {
		return nil, logging.StoreFailure(ctx, err, fields)
	}

	if err := apply(svc, in); err != nil {
		return nil, err
	}

	if err := uc.repo.SaveService(ctx, svc); err != nil {
		return nil, logging.StoreFailure(ctx, err, fields)
	}

	uc.audit.Dispatch(audit.Event{
		StylistID: stylistID,
		Action:    "service_updated",
		Entity:    "service",
		EntityID:  svc.ID,
	})

	return svc, nil
}

// ======================================================
// HELPERS
// ======================================================

// ownedService esconde serviços de outros estilistas como not found.
func ownedService(
	ctx context.Context,
	repo domain.Repository,
	stylistID string,
	serviceID string,
) (*models.Service, error) {

	svc, err := repo.GetService(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if svc.StylistID != stylistID {
		return nil, httperr.ErrNotFound("service_not_found")
	}
	return svc, nil
}

func apply(svc *models.Service, in ServiceInput) error {
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return httperr.ErrValidation("missing_name")
		}
		svc.Name = name
	}

	if in.Price != nil {
		if !domain.ValidPrice(*in.Price) {
			return httperr.ErrValidation("invalid_price")
		}
		svc.Price = in.Price.Round(2)
	}

	if in.PaymentLinkURL != nil {
		link := strings.TrimSpace(*in.PaymentLinkURL)
		if link == "" {
			svc.PaymentLinkURL = nil
			return nil
		}
		u, err := url.Parse(link)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return httperr.ErrValidation("invalid_payment_link")
		}
		svc.PaymentLinkURL = &link
	}

	return nil
}

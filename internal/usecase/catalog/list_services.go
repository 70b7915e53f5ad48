package catalog

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	domain "github.com/BruksfildServices01/viki/internal/domain/catalog"
	"github.com/BruksfildServices01/viki/internal/httperr"
	"github.com/BruksfildServices01/viki/internal/logging"
	"github.com/BruksfildServices01/viki/internal/models"
)

// ======================================================
// LIST BY STYLIST
// ======================================================

type ListServicesByStylist struct {
	repo domain.Repository
}

func NewListServicesByStylist(repo domain.Repository) *ListServicesByStylist {
	return &ListServicesByStylist{repo: repo}
}

// Execute ordena por nome; estilista sem serviços devolve lista vazia.
func (uc *ListServicesByStylist) Execute(
	ctx context.Context,
	stylistID string,
) ([]models.Service, error) {

	stylistID = strings.TrimSpace(stylistID)
	if stylistID == "" {
		return nil, httperr.ErrValidation("missing_stylist")
	}

	services, err := uc.repo.ListServicesByStylist(ctx, stylistID)
	if err != nil {
		return nil, logging.StoreFailure(ctx, err, logrus.Fields{
			"action":     "list_services",
			"stylist_id": stylistID,
		})
	}
	if services == nil {
		services = []models.Service{}
	}

	return services, nil
}

// ======================================================
// RESOLVE NAMES
// ======================================================

type ResolveNames struct {
	repo domain.Repository
}

func NewResolveNames(repo domain.Repository) *ResolveNames {
	return &ResolveNames{repo: repo}
}

// Execute é best-effort: ids sem correspondência são omitidos, então o
// resultado pode ser menor que a entrada.
func (uc *ResolveNames) Execute(ctx context.Context, serviceIDs []string) ([]string, error) {
	services, err := uc.Services(ctx, serviceIDs)
	if err != nil {
		return nil, err
	}
	return domain.Names(services), nil
}

// Services devolve os serviços encontrados na ordem dos ids pedidos.
func (uc *ResolveNames) Services(ctx context.Context, serviceIDs []string) ([]models.Service, error) {
	found, err := uc.repo.GetServicesByIDs(ctx, serviceIDs)
	if err != nil {
		return nil, logging.StoreFailure(ctx, err, logrus.Fields{"action": "resolve_names"})
	}
	return domain.OrderByIDs(found, serviceIDs), nil
}

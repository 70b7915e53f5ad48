package catalog

import (
	"context"

	"github.com/BruksfildServices01/viki/internal/models"
)

type Repository interface {
	ListServicesByStylist(
		ctx context.Context,
		stylistID string,
	) ([]models.Service, error)

	GetServicesByIDs(
		ctx context.Context,
		serviceIDs []string,
	) ([]models.Service, error)

	GetService(
		ctx context.Context,
		serviceID string,
	) (*models.Service, error)

	CreateService(
		ctx context.Context,
		svc *models.Service,
	) error

	SaveService(
		ctx context.Context,
		svc *models.Service,
	) error
}

package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/viki/internal/domain/catalog"
	"github.com/BruksfildServices01/viki/internal/httperr"
	"github.com/BruksfildServices01/viki/internal/models"
)

type ServiceGormRepository struct {
	db *gorm.DB
}

func NewServiceGormRepository(db *gorm.DB) *ServiceGormRepository {
	return &ServiceGormRepository{db: db}
}

func (r *ServiceGormRepository) ListServicesByStylist(
	ctx context.Context,
	stylistID string,
) ([]models.Service, error) {

	var services []models.Service
	err := r.db.WithContext(ctx).
		Where("stylist_id = ?", stylistID).
		Order("name ASC").
		Order("id ASC").
		Find(&services).Error

	if err != nil {
		return nil, err
	}

	return services, nil
}

func (r *ServiceGormRepository) GetServicesByIDs(
	ctx context.Context,
	serviceIDs []string,
) ([]models.Service, error) {

	if len(serviceIDs) == 0 {
		return []models.Service{}, nil
	}

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("id IN ?", serviceIDs).
		Find(&services).Error; err != nil {
		return nil, err
	}

	return services, nil
}

func (r *ServiceGormRepository) GetService(
	ctx context.Context,
	serviceID string,
) (*models.Service, error) {

	var svc models.Service
	err := r.db.WithContext(ctx).
		Where("id = ?", serviceID).
		First(&svc).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrNotFound("service_not_found")
	}
	if err != nil {
		return nil, err
	}

	return &svc, nil
}

func (r *ServiceGormRepository) CreateService(
	ctx context.Context,
	svc *models.Service,
) error {
	return r.db.WithContext(ctx).Create(svc).Error
}

func (r *ServiceGormRepository) SaveService(
	ctx context.Context,
	svc *models.Service,
) error {
	return r.db.WithContext(ctx).Save(svc).Error
}

// Compile-time check
var _ catalog.Repository = (*ServiceGormRepository)(nil)

package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/viki/internal/domain/finance"
	"github.com/BruksfildServices01/viki/internal/models"
)

type LedgerGormRepository struct {
	db *gorm.DB
}

func NewLedgerGormRepository(db *gorm.DB) *LedgerGormRepository {
	return &LedgerGormRepository{db: db}
}

// --------------------------------------------------
// Payments / paid appointments
// --------------------------------------------------

func (r *LedgerGormRepository) ListPaidAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	err := r.db.WithContext(ctx).
		Where("paid = ?", true).
		Order("preferred_at DESC").
		Order("id ASC").
		Find(&apps).Error

	if err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *LedgerGormRepository) ListPayments(
	ctx context.Context,
) ([]models.Payment, error) {

	var payments []models.Payment
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id ASC").
		Find(&payments).Error

	if err != nil {
		return nil, err
	}

	return payments, nil
}

func (r *LedgerGormRepository) CreatePayment(
	ctx context.Context,
	p *models.Payment,
) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// Compile-time check
var _ finance.Repository = (*LedgerGormRepository)(nil)

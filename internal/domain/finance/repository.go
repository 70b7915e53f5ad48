package finance

import (
	"context"

	"github.com/BruksfildServices01/viki/internal/models"
)

type Repository interface {
	// ordenados por created_at desc
	ListPayments(ctx context.Context) ([]models.Payment, error)

	// paid = true, ordenados por preferred_at desc
	ListPaidAppointments(ctx context.Context) ([]models.Appointment, error)

	CreatePayment(ctx context.Context, p *models.Payment) error
}

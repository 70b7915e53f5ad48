package appointment

import (
	"context"

	"github.com/BruksfildServices01/viki/internal/models"
)

type Repository interface {
	// -------- Appointment (create) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		appointmentID string,
	) (*models.Appointment, error)

	// UpdateAppointmentState grava status/preferred_at/paid somente se o
	// status atual ainda for `expected`; false = outro escritor venceu.
	UpdateAppointmentState(
		ctx context.Context,
		ap *models.Appointment,
		expected Status,
	) (bool, error)

	// -------- Listing --------
	ListAppointmentsByStatus(
		ctx context.Context,
		stylistID string,
		status Status,
	) ([]models.Appointment, error)
}

package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/viki/internal/audit"
	domain "github.com/BruksfildServices01/viki/internal/domain/appointment"
	"github.com/BruksfildServices01/viki/internal/httperr"
	"github.com/BruksfildServices01/viki/internal/models"
)

type RescheduleAppointment struct {
	t   transition
	loc *time.Location
}

func NewRescheduleAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	loc *time.Location,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		t:   transition{repo: repo, audit: audit, action: "rescheduled"},
		loc: loc,
	}
}

// Execute troca preferred_at e deixa o atendimento confirmado.
func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	stylistID string,
	appointmentID string,
	at time.Time,
) (*models.Appointment, error) {

	return uc.t.run(ctx, stylistID, appointmentID, always(func(ap *models.Appointment) error {
		return domain.Reschedule(ap, at)
	}))
}

// ExecuteAt recebe data (YYYY-MM-DD) e hora (HH:MM) no fuso do salão.
func (uc *RescheduleAppointment) ExecuteAt(
	ctx context.Context,
	stylistID string,
	appointmentID string,
	date string,
	clock string,
) (*models.Appointment, error) {

	at, err := domain.ResolvePreferredAt(date, clock, uc.loc)
	if err != nil {
		return nil, err
	}
	if at == nil {
		return nil, httperr.ErrValidation("invalid_date_or_time")
	}

	return uc.Execute(ctx, stylistID, appointmentID, *at)
}

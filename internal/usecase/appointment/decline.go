package appointment

import (
	"context"

	"github.com/BruksfildServices01/viki/internal/audit"
	domain "github.com/BruksfildServices01/viki/internal/domain/appointment"
	"github.com/BruksfildServices01/viki/internal/models"
)

type DeclineAppointment struct {
	t transition
}

func NewDeclineAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeclineAppointment {
	return &DeclineAppointment{
		t: transition{repo: repo, audit: audit, action: "declined"},
	}
}

func (uc *DeclineAppointment) Execute(
	ctx context.Context,
	stylistID string,
	appointmentID string,
) (*models.Appointment, error) {
	return uc.t.run(ctx, stylistID, appointmentID, always(domain.Decline))
}

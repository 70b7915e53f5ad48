package appointment

import (
	"context"

	"github.com/BruksfildServices01/viki/internal/audit"
	domain "github.com/BruksfildServices01/viki/internal/domain/appointment"
	"github.com/BruksfildServices01/viki/internal/models"
)

type ConfirmAppointment struct {
	t transition
}

func NewConfirmAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ConfirmAppointment {
	return &ConfirmAppointment{
		t: transition{repo: repo, audit: audit, action: "confirmed"},
	}
}

// Execute exige status requested; reconfirmar é rejeitado.
func (uc *ConfirmAppointment) Execute(
	ctx context.Context,
	stylistID string,
	appointmentID string,
) (*models.Appointment, error) {
	return uc.t.run(ctx, stylistID, appointmentID, always(domain.Confirm))
}

package appointment

import (
	"context"

	"github.com/BruksfildServices01/viki/internal/audit"
	domain "github.com/BruksfildServices01/viki/internal/domain/appointment"
	"github.com/BruksfildServices01/viki/internal/models"
)

// MarkPaidManually só altera o próprio atendimento; não cria Payment.
type MarkPaidManually struct {
	t transition
}

func NewMarkPaidManually(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *MarkPaidManually {
	return &MarkPaidManually{
		t: transition{repo: repo, audit: audit, action: "marked_paid"},
	}
}

// Execute é idempotente: já pago e concluído não gera escrita.
func (uc *MarkPaidManually) Execute(
	ctx context.Context,
	stylistID string,
	appointmentID string,
) (*models.Appointment, error) {
	return uc.t.run(ctx, stylistID, appointmentID, domain.MarkPaid)
}

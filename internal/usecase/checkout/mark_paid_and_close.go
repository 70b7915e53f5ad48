package checkout

import (
	"context"

	"github.com/BruksfildServices01/viki/internal/models"
)

// FinancePath é para onde a tela segue depois do pagamento manual.
const FinancePath = "/finance"

type PaidMarker interface {
	Execute(ctx context.Context, stylistID, appointmentID string) (*models.Appointment, error)
}

type CloseResult struct {
	Appointment *models.Appointment `json:"appointment"`
	RedirectTo  string              `json:"redirect_to"`
}

// MarkPaidAndClose só compõe o pagamento manual com a navegação.
type MarkPaidAndClose struct {
	markPaid PaidMarker
}

func NewMarkPaidAndClose(markPaid PaidMarker) *MarkPaidAndClose {
	return &MarkPaidAndClose{markPaid: markPaid}
}

func (uc *MarkPaidAndClose) Execute(
	ctx context.Context,
	stylistID string,
	appointmentID string,
) (*CloseResult, error) {

	ap, err := uc.markPaid.Execute(ctx, stylistID, appointmentID)
	if err != nil {
		return nil, err
	}

	return &CloseResult{Appointment: ap, RedirectTo: FinancePath}, nil
}

package finance

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/viki/internal/audit"
	domain "github.com/BruksfildServices01/viki/internal/domain/finance"
	"github.com/BruksfildServices01/viki/internal/httperr"
	"github.com/BruksfildServices01/viki/internal/logging"
	"github.com/BruksfildServices01/viki/internal/models"
)

type RecordPaymentInput struct {
	AppointmentID *string
	AmountCents   *int64
	Method        *string
}

// RecordPayment registra um lançamento manual (dinheiro, conciliação
// externa). Não há captura de pagamento aqui.
type RecordPayment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRecordPayment(repo domain.Repository, audit *audit.Dispatcher) *RecordPayment {
	return &RecordPayment{repo: repo, audit: audit}
}

func (uc *RecordPayment) Execute(
	ctx context.Context,
	stylistID string,
	in RecordPaymentInput,
) (*models.Payment, error) {

	if in.AmountCents != nil && *in.AmountCents < 0 {
		return nil, httperr.ErrValidation("invalid_amount")
	}

	p := &models.Payment{
		AppointmentID: blankToNil(in.AppointmentID),
		AmountCents:   in.AmountCents,
		Method:        blankToNil(in.Method),
	}

	if err := uc.repo.CreatePayment(ctx, p); err != nil {
		return nil, logging.StoreFailure(ctx, err, logrus.Fields{
			"action":     "record_payment",
			"stylist_id": stylistID,
		})
	}

	uc.audit.Dispatch(audit.Event{
		StylistID: stylistID,
		Action:    "payment_recorded",
		Entity:    "payment",
		EntityID:  p.ID,
		Metadata: map[string]any{
			"amount": domain.FormatAmount(p.AmountCents),
		},
	})

	return p, nil
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

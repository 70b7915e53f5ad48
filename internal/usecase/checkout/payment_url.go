package checkout

import (
	"context"

	"github.com/sirupsen/logrus"

	domain "github.com/BruksfildServices01/viki/internal/domain/checkout"
)

// BuildPaymentURL escolhe o primeiro serviço selecionado com link e devolve
// a URL do provedor com client_reference_id.
type BuildPaymentURL struct {
	checkout *GetCheckout
}

func NewBuildPaymentURL(checkout *GetCheckout) *BuildPaymentURL {
	return &BuildPaymentURL{checkout: checkout}
}

func (uc *BuildPaymentURL) Execute(
	ctx context.Context,
	stylistID string,
	appointmentID string,
	selected []string,
) (string, error) {

	co, err := uc.checkout.Execute(ctx, stylistID, appointmentID, selected)
	if err != nil {
		return "", err
	}

	svc, _ := co.Selection.FirstPayable()

	url, err := domain.BuildPaymentURL(co.Appointment.ID, svc)
	if err != nil {
		return "", err
	}

	logrus.WithContext(ctx).
		WithField("appointment_id", co.Appointment.ID).
		WithField("service_id", svc.ID).
		Info("checkout handed off to payment link")

	return url, nil
}

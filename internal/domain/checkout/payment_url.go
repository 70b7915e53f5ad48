package checkout

import (
	"net/url"

	"github.com/BruksfildServices01/viki/internal/httperr"
	"github.com/BruksfildServices01/viki/internal/models"
)

const ClientReferenceParam = "client_reference_id"

// BuildPaymentURL anexa client_reference_id=<appointment> ao link do serviço
// para o provedor correlacionar o pagamento ao atendimento.
func BuildPaymentURL(appointmentID string, svc models.Service) (string, error) {
	if !svc.HasPaymentLink() {
		return "", httperr.ErrPolicy("no_payment_link")
	}

	u, err := url.Parse(*svc.PaymentLinkURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", httperr.ErrPolicy("invalid_payment_link")
	}

	q := u.Query()
	q.Set(ClientReferenceParam, appointmentID)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

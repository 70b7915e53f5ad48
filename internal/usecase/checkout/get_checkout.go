package checkout

import (
	"context"

	"github.com/sirupsen/logrus"

	apdomain "github.com/BruksfildServices01/viki/internal/domain/appointment"
	catalogdomain "github.com/BruksfildServices01/viki/internal/domain/catalog"
	domain "github.com/BruksfildServices01/viki/internal/domain/checkout"
	"github.com/BruksfildServices01/viki/internal/httperr"
	"github.com/BruksfildServices01/viki/internal/logging"
	"github.com/BruksfildServices01/viki/internal/models"
)

// Checkout é a tela de fechamento: atendimento, cardápio do estilista e a
// seleção corrente (só da requisição, nada é persistido).
type Checkout struct {
	Appointment *models.Appointment
	Services    []models.Service
	Selection   *domain.Selection
}

type GetCheckout struct {
	appointments apdomain.Repository
	services     catalogdomain.Repository
}

func NewGetCheckout(
	appointments apdomain.Repository,
	services catalogdomain.Repository,
) *GetCheckout {
	return &GetCheckout{
		appointments: appointments,
		services:     services,
	}
}

// Execute aplica os toggles na ordem recebida; ids fora do cardápio são
// ignorados.
func (uc *GetCheckout) Execute(
	ctx context.Context,
	stylistID string,
	appointmentID string,
	toggles []string,
) (*Checkout, error) {

	fields := logrus.Fields{
		"action":         "checkout",
		"stylist_id":     stylistID,
		"appointment_id": appointmentID,
	}

	ap, err := uc.appointments.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, logging.StoreFailure(ctx, err, fields)
	}
	if ap.StylistID != stylistID {
		return nil, httperr.ErrNotFound("appointment_not_found")
	}

	services, err := uc.services.ListServicesByStylist(ctx, stylistID)
	if err != nil {
		return nil, logging.StoreFailure(ctx, err, fields)
	}

	byID := make(map[string]models.Service, len(services))
	for _, s := range services {
		byID[s.ID] = s
	}

	sel := domain.NewSelection(ap.ID)
	for _, id := range toggles {
		if svc, ok := byID[id]; ok {
			sel.Toggle(svc)
		}
	}

	return &Checkout{
		Appointment: ap,
		Services:    services,
		Selection:   sel,
	}, nil
}

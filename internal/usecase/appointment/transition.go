package appointment

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/viki/internal/audit"
	domain "github.com/BruksfildServices01/viki/internal/domain/appointment"
	"github.com/BruksfildServices01/viki/internal/httperr"
	"github.com/BruksfildServices01/viki/internal/logging"
	"github.com/BruksfildServices01/viki/internal/metrics"
	"github.com/BruksfildServices01/viki/internal/models"
)

// mutation aplica a ação de domínio; changed=false dispensa a escrita.
type mutation func(ap *models.Appointment) (changed bool, err error)

// transition lê, valida e grava com compare-and-swap no status lido.
type transition struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	action string
}

func (t transition) run(
	ctx context.Context,
	stylistID string,
	appointmentID string,
	mutate mutation,
) (ap *models.Appointment, err error) {

	defer func() { metrics.RecordTransition(t.action, err) }()

	fields := logrus.Fields{
		"action":         t.action,
		"stylist_id":     stylistID,
		"appointment_id": appointmentID,
	}

	ap, err = t.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, logging.StoreFailure(ctx, err, fields)
	}
	if ap.StylistID != stylistID {
		return nil, httperr.ErrNotFound("appointment_not_found")
	}

	from := domain.Status(ap.Status)

	changed, err := mutate(ap)
	if err != nil {
		return nil, err
	}
	if !changed {
		return ap, nil
	}

	ok, err := t.repo.UpdateAppointmentState(ctx, ap, from)
	if err != nil {
		return nil, logging.StoreFailure(ctx, err, fields)
	}
	if !ok {
		return nil, httperr.ErrInvalidTransition("concurrent_update")
	}

	logrus.WithContext(ctx).WithFields(fields).
		WithField("from", string(from)).
		WithField("to", ap.Status).
		Info("appointment transition")

	t.audit.Dispatch(audit.Event{
		StylistID: stylistID,
		Action:    "appointment_" + t.action,
		Entity:    "appointment",
		EntityID:  ap.ID,
		Metadata: map[string]any{
			"from": string(from),
			"to":   ap.Status,
		},
	})

	return ap, nil
}

func always(fn func(ap *models.Appointment) error) mutation {
	return func(ap *models.Appointment) (bool, error) {
		if err := fn(ap); err != nil {
			return false, err
		}
		return true, nil
	}
}

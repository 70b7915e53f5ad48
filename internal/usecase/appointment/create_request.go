package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/viki/internal/audit"
	domain "github.com/BruksfildServices01/viki/internal/domain/appointment"
	"github.com/BruksfildServices01/viki/internal/httperr"
	"github.com/BruksfildServices01/viki/internal/logging"
	"github.com/BruksfildServices01/viki/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateRequestInput struct {
	StylistID   string
	ClientID    *string
	ServiceIDs  []string
	PreferredAt *time.Time
	Notes       string
}

// ServiceResolver devolve os serviços na ordem dos ids, omitindo os
// inexistentes.
type ServiceResolver interface {
	Services(ctx context.Context, serviceIDs []string) ([]models.Service, error)
}

// ======================================================
// USE CASE
// ======================================================

type CreateRequest struct {
	repo     domain.Repository
	services ServiceResolver
	audit    *audit.Dispatcher
}

func NewCreateRequest(
	repo domain.Repository,
	services ServiceResolver,
	audit *audit.Dispatcher,
) *CreateRequest {
	return &CreateRequest{
		repo:     repo,
		services: services,
		audit:    audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute grava o pedido (status requested) com os serviços estruturados e
// as notas legadas no mesmo insert.
func (uc *CreateRequest) Execute(
	ctx context.Context,
	in CreateRequestInput,
) (*models.Appointment, error) {

	stylistID := strings.TrimSpace(in.StylistID)
	if stylistID == "" {
		return nil, httperr.ErrValidation("missing_stylist")
	}

	ids := compactIDs(in.ServiceIDs)
	if len(ids) == 0 {
		return nil, httperr.ErrValidation("missing_services")
	}

	fields := logrus.Fields{
		"action":     "create_request",
		"stylist_id": stylistID,
	}

	// --------------------------------------------------
	// Serviços (best-effort, nomes congelados)
	// --------------------------------------------------
	services, err := uc.services.Services(ctx, ids)
	if err != nil {
		return nil, logging.StoreFailure(ctx, err, fields)
	}

	requested := make([]models.AppointmentService, 0, len(services))
	names := make([]string, 0, len(services))
	for i, svc := range services {
		requested = append(requested, models.AppointmentService{
			ServiceID:   svc.ID,
			ServiceName: svc.Name,
			Position:    i,
		})
		names = append(names, svc.Name)
	}

	notes := strings.TrimSpace(in.Notes)

	// --------------------------------------------------
	// Criação
	// --------------------------------------------------
	ap := &models.Appointment{
		StylistID:   stylistID,
		ClientID:    in.ClientID,
		Status:      string(domain.InitialStatus()),
		PreferredAt: in.PreferredAt,
		Notes:       domain.RenderServiceNotes(notes, names),
		Paid:        false,
		Services:    requested,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, logging.StoreFailure(ctx, err, fields)
	}

	logrus.WithContext(ctx).WithFields(fields).
		WithField("appointment_id", ap.ID).
		Info("appointment requested")

	uc.audit.Dispatch(audit.Event{
		StylistID: stylistID,
		Action:    "appointment_requested",
		Entity:    "appointment",
		EntityID:  ap.ID,
		Metadata:  map[string]any{"services": names},
	})

	return ap, nil
}

func compactIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return out
}

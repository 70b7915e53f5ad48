package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	domain "github.com/BruksfildServices01/viki/internal/domain/appointment"
	"github.com/BruksfildServices01/viki/internal/dto"
	"github.com/BruksfildServices01/viki/internal/httperr"
	"github.com/BruksfildServices01/viki/internal/logging"
)

type ListPendingRequests struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListPendingRequests(
	repo domain.Repository,
	loc *time.Location,
) *ListPendingRequests {
	return &ListPendingRequests{
		repo: repo,
		loc:  loc,
	}
}

// Execute lista os pedidos em requested, mais recentes primeiro.
func (uc *ListPendingRequests) Execute(
	ctx context.Context,
	stylistID string,
) ([]dto.PendingRequestDTO, error) {

	if strings.TrimSpace(stylistID) == "" {
		return nil, httperr.ErrValidation("missing_stylist")
	}

	appointments, err := uc.repo.ListAppointmentsByStatus(ctx, stylistID, domain.StatusRequested)
	if err != nil {
		return nil, logging.StoreFailure(ctx, err, logrus.Fields{
			"action":     "list_pending_requests",
			"stylist_id": stylistID,
		})
	}

	out := make([]dto.PendingRequestDTO, 0, len(appointments))
	for _, ap := range appointments {
		item := dto.PendingRequestDTO{
			ID:          ap.ID,
			Status:      ap.Status,
			PreferredAt: ap.PreferredAt,
			WhenLabel:   domain.DisplayPreferredAt(ap.PreferredAt, uc.loc),
			Services:    make([]string, 0, len(ap.Services)),
			Notes:       ap.Notes,
			CreatedAt:   ap.CreatedAt,
		}
		if ap.Client != nil {
			item.ClientName = ap.Client.FullName
			item.ClientPhone = ap.Client.Phone
		}
		for _, s := range ap.Services {
			item.Services = append(item.Services, s.ServiceName)
		}
		out = append(out, item)
	}

	return out, nil
}

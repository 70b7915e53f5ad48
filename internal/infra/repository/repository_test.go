package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/viki/internal/domain/appointment"
	"github.com/BruksfildServices01/viki/internal/httperr"
	"github.com/BruksfildServices01/viki/internal/models"
	"github.com/BruksfildServices01/viki/internal/testutil"
)

func TestAppointmentCreateAndGet(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repo := NewAppointmentGormRepository(db)
	clients := NewClientGormRepository(db)

	c := &models.Client{FullName: "Jane", Phone: "5551234567"}
	require.NoError(t, clients.CreateClient(ctx, c))
	require.NotEmpty(t, c.ID)

	ap := &models.Appointment{
		StylistID: "stylist-1",
		ClientID:  &c.ID,
		Status:    string(domain.StatusRequested),
		Services: []models.AppointmentService{
			{ServiceID: "b", ServiceName: "Color", Position: 1},
			{ServiceID: "a", ServiceName: "Cut", Position: 0},
		},
	}
	require.NoError(t, repo.CreateAppointment(ctx, ap))
	require.NotEmpty(t, ap.ID)

	got, err := repo.GetAppointment(ctx, ap.ID)
	require.NoError(t, err)
	require.Equal(t, "Jane", got.Client.FullName)
	require.Len(t, got.Services, 2)
	require.Equal(t, "Cut", got.Services[0].ServiceName)
	require.Nil(t, got.PreferredAt)
	require.False(t, got.Paid)

	_, err = repo.GetAppointment(ctx, "missing")
	require.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestUpdateAppointmentStateIsConditional(t *testing.T) {
	ctx := context.Background()
	repo := NewAppointmentGormRepository(testutil.NewDB(t))

	ap := &models.Appointment{StylistID: "stylist-1", Status: string(domain.StatusRequested)}
	require.NoError(t, repo.CreateAppointment(ctx, ap))

	at := time.Date(2026, 11, 2, 15, 0, 0, 0, time.UTC)
	ap.Status = string(domain.StatusConfirmed)
	ap.PreferredAt = &at

	ok, err := repo.UpdateAppointmentState(ctx, ap, domain.StatusRequested)
	require.NoError(t, err)
	require.True(t, ok)

	// status já mudou: a segunda escrita condicionada a requested não aplica
	stale := *ap
	stale.Status = string(domain.StatusDeclined)
	ok, err = repo.UpdateAppointmentState(ctx, &stale, domain.StatusRequested)
	require.NoError(t, err)
	require.False(t, ok)

	got, err := repo.GetAppointment(ctx, ap.ID)
	require.NoError(t, err)
	require.Equal(t, string(domain.StatusConfirmed), got.Status)
	require.True(t, got.PreferredAt.Equal(at))
}

func TestListAppointmentsByStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewAppointmentGormRepository(testutil.NewDB(t))

	base := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	for i, spec := range []struct {
		stylist string
		status  domain.Status
	}{
		{"stylist-1", domain.StatusRequested},
		{"stylist-1", domain.StatusRequested},
		{"stylist-1", domain.StatusConfirmed},
		{"stylist-2", domain.StatusRequested},
	} {
		require.NoError(t, repo.CreateAppointment(ctx, &models.Appointment{
			StylistID: spec.stylist,
			Status:    string(spec.status),
			Notes:     string(rune('a' + i)),
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	got, err := repo.ListAppointmentsByStatus(ctx, "stylist-1", domain.StatusRequested)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "b", got[0].Notes)
	require.Equal(t, "a", got[1].Notes)
}

func TestClientPhoneIsUnique(t *testing.T) {
	ctx := context.Background()
	repo := NewClientGormRepository(testutil.NewDB(t))

	require.NoError(t, repo.CreateClient(ctx, &models.Client{FullName: "Jane", Phone: "5551234567"}))
	err := repo.CreateClient(ctx, &models.Client{FullName: "Janet", Phone: "5551234567"})
	require.True(t, httperr.IsUniqueViolation(err))

	found, err := repo.FindClientByPhone(ctx, "5551234567")
	require.NoError(t, err)
	require.NoError(t, repo.UpdateClientName(ctx, found.ID, "Jane Doe"))

	list, err := repo.ListClients(ctx, "doe")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Jane Doe", list[0].FullName)

	_, err = repo.FindClientByPhone(ctx, "000")
	require.True(t, httperr.IsKind(err, httperr.KindNotFound))
}

func TestServicesByStylistOrderedByName(t *testing.T) {
	ctx := context.Background()
	repo := NewServiceGormRepository(testutil.NewDB(t))

	for _, name := range []string{"Color", "Blowout", "Cut"} {
		require.NoError(t, repo.CreateService(ctx, &models.Service{
			StylistID: "stylist-1",
			Name:      name,
			Price:     decimal.RequireFromString("49.99"),
		}))
	}
	require.NoError(t, repo.CreateService(ctx, &models.Service{
		StylistID: "stylist-2", Name: "Shave", Price: decimal.NewFromInt(20),
	}))

	got, err := repo.ListServicesByStylist(ctx, "stylist-1")
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, "Blowout", got[0].Name)
	require.Equal(t, "Color", got[1].Name)
	require.Equal(t, "Cut", got[2].Name)
	require.True(t, got[0].Price.Equal(decimal.RequireFromString("49.99")))

	none, err := repo.ListServicesByStylist(ctx, "nobody")
	require.NoError(t, err)
	require.Empty(t, none)

	byIDs, err := repo.GetServicesByIDs(ctx, []string{got[2].ID, "missing"})
	require.NoError(t, err)
	require.Len(t, byIDs, 1)

	_, err = repo.GetService(ctx, "missing")
	require.True(t, httperr.IsBusiness(err, "service_not_found"))
}

func TestLedgerQueries(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	ledger := NewLedgerGormRepository(db)
	appts := NewAppointmentGormRepository(db)

	older := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 9, 5, 10, 0, 0, 0, time.UTC)

	amount := int64(4000)
	require.NoError(t, ledger.CreatePayment(ctx, &models.Payment{AmountCents: &amount, CreatedAt: older}))
	require.NoError(t, ledger.CreatePayment(ctx, &models.Payment{CreatedAt: newer}))

	payments, err := ledger.ListPayments(ctx)
	require.NoError(t, err)
	require.Len(t, payments, 2)
	require.True(t, payments[0].CreatedAt.Equal(newer))
	require.Equal(t, int64(4000), *payments[1].AmountCents)

	require.NoError(t, appts.CreateAppointment(ctx, &models.Appointment{
		StylistID: "s", Status: string(domain.StatusCompleted), Paid: true, PreferredAt: &older,
	}))
	require.NoError(t, appts.CreateAppointment(ctx, &models.Appointment{
		StylistID: "s", Status: string(domain.StatusCompleted), Paid: true, PreferredAt: &newer,
	}))
	require.NoError(t, appts.CreateAppointment(ctx, &models.Appointment{
		StylistID: "s", Status: string(domain.StatusConfirmed),
	}))

	paid, err := ledger.ListPaidAppointments(ctx)
	require.NoError(t, err)
	require.Len(t, paid, 2)
	require.True(t, paid[0].PreferredAt.Equal(newer))
}

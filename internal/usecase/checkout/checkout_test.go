package checkout

import (
	"context"
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/viki/internal/httperr"
	"github.com/BruksfildServices01/viki/internal/infra/repository"
	"github.com/BruksfildServices01/viki/internal/models"
	"github.com/BruksfildServices01/viki/internal/testutil"
	appointmentuc "github.com/BruksfildServices01/viki/internal/usecase/appointment"
)

type fixture struct {
	get   *GetCheckout
	close *MarkPaidAndClose
	ap    *models.Appointment
	cut   models.Service
	color models.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	db := testutil.NewDB(t)

	services := repository.NewServiceGormRepository(db)
	appointments := repository.NewAppointmentGormRepository(db)

	link := "https://pay.example/color?lang=en"
	cut := models.Service{StylistID: "stylist-1", Name: "Cut", Price: decimal.NewFromInt(40)}
	color := models.Service{StylistID: "stylist-1", Name: "Color", Price: decimal.NewFromInt(90), PaymentLinkURL: &link}
	other := models.Service{StylistID: "stylist-2", Name: "Beard", Price: decimal.NewFromInt(20)}
	for _, s := range []*models.Service{&cut, &color, &other} {
		require.NoError(t, services.CreateService(ctx, s))
	}

	ap := &models.Appointment{StylistID: "stylist-1", Status: "confirmed"}
	require.NoError(t, appointments.CreateAppointment(ctx, ap))

	return &fixture{
		get:   NewGetCheckout(appointments, services),
		close: NewMarkPaidAndClose(appointmentuc.NewMarkPaidManually(appointments, nil)),
		ap:    ap,
		cut:   cut,
		color: color,
	}
}

func TestGetCheckoutTogglesAndTotals(t *testing.T) {
	f := newFixture(t)

	co, err := f.get.Execute(context.Background(), "stylist-1", f.ap.ID, []string{f.cut.ID, f.color.ID, "foreign"})
	require.NoError(t, err)
	require.Len(t, co.Services, 2)
	require.Equal(t, "Color", co.Services[0].Name)
	require.True(t, co.Selection.Total().Equal(decimal.NewFromInt(130)))

	// toggle duplo remove
	co, err = f.get.Execute(context.Background(), "stylist-1", f.ap.ID, []string{f.cut.ID, f.color.ID, f.cut.ID})
	require.NoError(t, err)
	require.Len(t, co.Selection.Services(), 1)
	require.Equal(t, "Color", co.Selection.Services()[0].Name)

	_, err = f.get.Execute(context.Background(), "stylist-2", f.ap.ID, nil)
	require.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestBuildPaymentURL(t *testing.T) {
	f := newFixture(t)
	uc := NewBuildPaymentURL(f.get)

	raw, err := uc.Execute(context.Background(), "stylist-1", f.ap.ID, []string{f.cut.ID, f.color.ID})
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	require.Equal(t, "pay.example", u.Host)
	require.Equal(t, f.ap.ID, u.Query().Get("client_reference_id"))
	require.Equal(t, "en", u.Query().Get("lang"))

	_, err = uc.Execute(context.Background(), "stylist-1", f.ap.ID, []string{f.cut.ID})
	require.True(t, httperr.IsBusiness(err, "no_payment_link"))
	require.True(t, httperr.IsKind(err, httperr.KindPolicy))
}

func TestMarkPaidAndClose(t *testing.T) {
	f := newFixture(t)

	res, err := f.close.Execute(context.Background(), "stylist-1", f.ap.ID)
	require.NoError(t, err)
	require.Equal(t, FinancePath, res.RedirectTo)
	require.True(t, res.Appointment.Paid)
	require.Equal(t, "completed", res.Appointment.Status)
}

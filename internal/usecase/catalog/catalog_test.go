package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/viki/internal/httperr"
	"github.com/BruksfildServices01/viki/internal/infra/repository"
	"github.com/BruksfildServices01/viki/internal/models"
	"github.com/BruksfildServices01/viki/internal/testutil"
)

func strPtr(s string) *string { return &s }

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func seed(t *testing.T, repo *repository.ServiceGormRepository, stylistID, name, p string) *models.Service {
	t.Helper()
	svc, err := NewCreateService(repo, nil).Execute(context.Background(), stylistID, ServiceInput{
		Name: strPtr(name), Price: price(p),
	})
	require.NoError(t, err)
	return svc
}

func TestListServicesByStylist(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewServiceGormRepository(testutil.NewDB(t))

	seed(t, repo, "stylist-1", "Cut", "40")
	seed(t, repo, "stylist-1", "Blowout", "35")
	seed(t, repo, "stylist-2", "Color", "90")

	got, err := NewListServicesByStylist(repo).Execute(ctx, "stylist-1")
	require.NoError(t, err)
	require.Equal(t, []string{"Blowout", "Cut"}, []string{got[0].Name, got[1].Name})

	empty, err := NewListServicesByStylist(repo).Execute(ctx, "nobody")
	require.NoError(t, err)
	require.NotNil(t, empty)
	require.Empty(t, empty)

	_, err = NewListServicesByStylist(repo).Execute(ctx, " ")
	require.True(t, httperr.IsBusiness(err, "missing_stylist"))
}

func TestResolveNamesOmitsUnknownIDs(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewServiceGormRepository(testutil.NewDB(t))

	cut := seed(t, repo, "stylist-1", "Cut", "40")
	color := seed(t, repo, "stylist-1", "Color", "90")

	names, err := NewResolveNames(repo).Execute(ctx, []string{color.ID, "missing", cut.ID})
	require.NoError(t, err)
	require.Equal(t, []string{"Color", "Cut"}, names)

	names, err = NewResolveNames(repo).Execute(ctx, nil)
	require.NoError(t, err)
	require.Empty(t, names)
}

func TestCreateAndUpdateServiceValidation(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewServiceGormRepository(testutil.NewDB(t))

	_, err := NewCreateService(repo, nil).Execute(ctx, "stylist-1", ServiceInput{Name: strPtr("Cut"), Price: price("0")})
	require.True(t, httperr.IsBusiness(err, "invalid_price"))

	_, err = NewCreateService(repo, nil).Execute(ctx, "stylist-1", ServiceInput{Name: strPtr("Cut")})
	require.True(t, httperr.IsBusiness(err, "missing_required"))

	svc := seed(t, repo, "stylist-1", "Cut", "40.00")

	updated, err := NewUpdateService(repo, nil).Execute(ctx, "stylist-1", svc.ID, ServiceInput{
		Price:          price("45.5"),
		PaymentLinkURL: strPtr("https://pay.example/cut"),
	})
	require.NoError(t, err)
	require.Equal(t, "45.50", updated.Price.StringFixed(2))
	require.Equal(t, "Cut", updated.Name)
	require.True(t, updated.HasPaymentLink())

	_, err = NewUpdateService(repo, nil).Execute(ctx, "stylist-1", svc.ID, ServiceInput{PaymentLinkURL: strPtr("not a url")})
	require.True(t, httperr.IsBusiness(err, "invalid_payment_link"))

	_, err = NewUpdateService(repo, nil).Execute(ctx, "stylist-2", svc.ID, ServiceInput{Name: strPtr("Mine")})
	require.True(t, httperr.IsBusiness(err, "service_not_found"))
}

type fakeProvider struct {
	calls int
	link  string
	err   error
}

func (f *fakeProvider) CreatePaymentLink(ctx context.Context, svc models.Service) (string, error) {
	f.calls++
	return f.link, f.err
}

func TestProvisionPaymentLink(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewServiceGormRepository(testutil.NewDB(t))
	svc := seed(t, repo, "stylist-1", "Color", "90")

	provider := &fakeProvider{link: "https://mp.example/checkout/1"}
	uc := NewProvisionPaymentLink(repo, provider, nil)

	got, err := uc.Execute(ctx, "stylist-1", svc.ID)
	require.NoError(t, err)
	require.Equal(t, "https://mp.example/checkout/1", *got.PaymentLinkURL)

	stored, err := repo.GetService(ctx, svc.ID)
	require.NoError(t, err)
	require.Equal(t, "https://mp.example/checkout/1", *stored.PaymentLinkURL)

	// segunda chamada reaproveita o link
	_, err = uc.Execute(ctx, "stylist-1", svc.ID)
	require.NoError(t, err)
	require.Equal(t, 1, provider.calls)
}

func TestProvisionPaymentLinkFailures(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewServiceGormRepository(testutil.NewDB(t))
	svc := seed(t, repo, "stylist-1", "Color", "90")

	_, err := NewProvisionPaymentLink(repo, nil, nil).Execute(ctx, "stylist-1", svc.ID)
	require.True(t, httperr.IsBusiness(err, "link_provider_disabled"))

	_, err = NewProvisionPaymentLink(repo, &fakeProvider{err: errors.New("timeout")}, nil).Execute(ctx, "stylist-1", svc.ID)
	require.True(t, httperr.IsKind(err, httperr.KindStore))

	stored, err := repo.GetService(ctx, svc.ID)
	require.NoError(t, err)
	require.False(t, stored.HasPaymentLink())
}

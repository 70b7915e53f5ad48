package finance

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/viki/internal/domain/finance"
	"github.com/BruksfildServices01/viki/internal/httperr"
	"github.com/BruksfildServices01/viki/internal/infra/repository"
	"github.com/BruksfildServices01/viki/internal/models"
	"github.com/BruksfildServices01/viki/internal/testutil"
)

var fixedNow = time.Date(2026, 10, 19, 23, 30, 0, 0, time.UTC)

func newBuild(db *gorm.DB) *BuildLedger {
	uc := NewBuildLedger(repository.NewLedgerGormRepository(db))
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func paidAppointment(t *testing.T, db *gorm.DB, at *time.Time) *models.Appointment {
	t.Helper()
	ap := &models.Appointment{StylistID: "stylist-1", Status: "completed", Paid: true, PreferredAt: at}
	require.NoError(t, db.Create(ap).Error)
	return ap
}

func i64(v int64) *int64 { return &v }
func str(s string) *string { return &s }

func TestBuildLedgerSynthesizesFromPaidAppointments(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)

	at := time.Date(2026, 10, 1, 10, 0, 0, 0, time.UTC)
	withTime := paidAppointment(t, db, &at)
	withoutTime := paidAppointment(t, db, nil)
	require.NoError(t, db.Create(&models.Appointment{StylistID: "stylist-1", Status: "confirmed"}).Error)

	ledger, err := newBuild(db).Execute(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.SourceSynthetic, ledger.Source)
	require.Len(t, ledger.Entries, 2)

	for _, e := range ledger.Entries {
		require.True(t, e.Synthetic)
		require.Nil(t, e.AmountCents)
		require.Equal(t, domain.UnknownMethod, *e.Method)
		require.NotEmpty(t, e.PaymentID)
	}

	// sem preferred_at usa "agora", que é o mais recente
	require.Equal(t, withoutTime.ID, *ledger.Entries[0].AppointmentID)
	require.True(t, ledger.Entries[0].CreatedAt.Equal(fixedNow))
	require.Equal(t, withTime.ID, *ledger.Entries[1].AppointmentID)
	require.True(t, ledger.Entries[1].CreatedAt.Equal(at))
}

func TestBuildLedgerPrefersPaymentsAndIsDeterministic(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	paidAppointment(t, db, nil)

	ledgerRepo := repository.NewLedgerGormRepository(db)
	require.NoError(t, ledgerRepo.CreatePayment(ctx, &models.Payment{
		AmountCents: i64(4000), Method: str("cash"),
		CreatedAt: time.Date(2026, 10, 2, 9, 0, 0, 0, time.UTC),
	}))
	require.NoError(t, ledgerRepo.CreatePayment(ctx, &models.Payment{
		AmountCents: i64(9000), Method: str("card"),
		CreatedAt: time.Date(2026, 10, 5, 9, 0, 0, 0, time.UTC),
	}))

	uc := newBuild(db)
	first, err := uc.Execute(ctx)
	require.NoError(t, err)
	second, err := uc.Execute(ctx)
	require.NoError(t, err)

	require.Equal(t, domain.SourcePayments, first.Source)
	require.Len(t, first.Entries, 2)
	require.Equal(t, first, second)
	require.Equal(t, int64(9000), *first.Entries[0].AmountCents)
	for _, e := range first.Entries {
		require.False(t, e.Synthetic)
	}
}

type fakeArchiver struct {
	filename string
	body     []byte
	err      error
}

func (f *fakeArchiver) Archive(ctx context.Context, filename, contentType string, body []byte) (string, error) {
	f.filename = filename
	f.body = body
	return "exports/" + filename, f.err
}

func TestExportLedger(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)

	require.NoError(t, repository.NewLedgerGormRepository(db).CreatePayment(ctx, &models.Payment{
		AmountCents: i64(1250), Method: str("Smith, Jane"),
		CreatedAt: time.Date(2026, 10, 2, 9, 0, 0, 0, time.UTC),
	}))

	archiver := &fakeArchiver{}
	loc := time.FixedZone("JST", 9*60*60)

	file, err := NewExportLedger(newBuild(db), archiver, loc).Execute(ctx)
	require.NoError(t, err)
	require.Equal(t, "viki_finance_2026-10-20.csv", file.Filename)
	require.Equal(t, "text/csv", file.ContentType)
	require.Equal(t, file.Filename, archiver.filename)
	require.Equal(t, file.Body, archiver.body)

	rows, err := csv.NewReader(bytes.NewReader(file.Body)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, domain.ExportHeader, rows[0])
	require.Equal(t, "12.50", rows[1][2])
	require.Equal(t, "Smith, Jane", rows[1][3])
	require.Equal(t, "2026-10-02T09:00:00.000Z", rows[1][4])
}

func TestExportLedgerIgnoresArchiveFailure(t *testing.T) {
	db := testutil.NewDB(t)

	file, err := NewExportLedger(newBuild(db), &fakeArchiver{err: errors.New("denied")}, time.UTC).
		Execute(context.Background())
	require.NoError(t, err)
	require.Equal(t, "payment_id,appointment_id,amount,method,created_at\n", string(file.Body))
}

func TestRecordPayment(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	uc := NewRecordPayment(repository.NewLedgerGormRepository(db), nil)

	_, err := uc.Execute(ctx, "stylist-1", RecordPaymentInput{AmountCents: i64(-1)})
	require.True(t, httperr.IsBusiness(err, "invalid_amount"))

	p, err := uc.Execute(ctx, "stylist-1", RecordPaymentInput{AmountCents: i64(4000), Method: str("  ")})
	require.NoError(t, err)
	require.NotEmpty(t, p.ID)
	require.Nil(t, p.Method)

	ledger, err := newBuild(db).Execute(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.SourcePayments, ledger.Source)
	require.Len(t, ledger.Entries, 1)
}

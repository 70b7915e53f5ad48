package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/viki/internal/httperr"
	"github.com/BruksfildServices01/viki/internal/models"
)

func newAppointment(status Status) *models.Appointment {
	return &models.Appointment{ID: "ap-1", StylistID: "stylist-1", Status: string(status)}
}

func TestConfirmOnlyFromRequested(t *testing.T) {
	ap := newAppointment(StatusRequested)
	require.NoError(t, Confirm(ap))
	require.Equal(t, string(StatusConfirmed), ap.Status)

	err := Confirm(ap)
	require.True(t, httperr.IsKind(err, httperr.KindInvalidTransition))
	require.Equal(t, string(StatusConfirmed), ap.Status)
}

func TestDeclineOnlyFromRequested(t *testing.T) {
	ap := newAppointment(StatusRequested)
	require.NoError(t, Confirm(ap))

	err := Decline(ap)
	require.True(t, httperr.IsKind(err, httperr.KindInvalidTransition))

	ap = newAppointment(StatusRequested)
	require.NoError(t, Decline(ap))
	require.Equal(t, string(StatusDeclined), ap.Status)
}

func TestReschedule(t *testing.T) {
	at := time.Date(2026, 11, 2, 15, 0, 0, 0, time.UTC)

	for _, from := range []Status{StatusRequested, StatusConfirmed} {
		ap := newAppointment(from)
		require.NoError(t, Reschedule(ap, at))
		require.Equal(t, string(StatusConfirmed), ap.Status)
		require.True(t, ap.PreferredAt.Equal(at))
	}

	for _, from := range []Status{StatusDeclined, StatusCompleted} {
		ap := newAppointment(from)
		err := Reschedule(ap, at)
		require.True(t, httperr.IsKind(err, httperr.KindInvalidTransition), from)
		require.Nil(t, ap.PreferredAt)
	}
}

func TestMarkPaid(t *testing.T) {
	ap := newAppointment(StatusConfirmed)

	changed, err := MarkPaid(ap)
	require.NoError(t, err)
	require.True(t, changed)
	require.True(t, ap.Paid)
	require.Equal(t, string(StatusCompleted), ap.Status)

	changed, err = MarkPaid(ap)
	require.NoError(t, err)
	require.False(t, changed)
	require.Equal(t, string(StatusCompleted), ap.Status)

	declined := newAppointment(StatusDeclined)
	_, err = MarkPaid(declined)
	require.True(t, httperr.IsKind(err, httperr.KindInvalidTransition))
	require.False(t, declined.Paid)
}

func TestTerminalStates(t *testing.T) {
	require.True(t, StatusDeclined.IsTerminal())
	require.True(t, StatusCompleted.IsTerminal())
	require.False(t, StatusRequested.IsTerminal())
	require.False(t, StatusConfirmed.IsTerminal())
	require.Equal(t, StatusRequested, InitialStatus())
}

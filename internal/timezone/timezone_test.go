package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLocationFallsBackToDefault(t *testing.T) {
	require.Equal(t, "UTC", Location("").String())
	require.Equal(t, "UTC", Location("Not/AZone").String())
	require.Equal(t, "America/New_York", Location("America/New_York").String())
}

func TestParseDateTime(t *testing.T) {
	loc := Location("America/New_York")

	got, err := ParseDateTime("2026-03-10", "14:30", loc)
	require.NoError(t, err)
	require.True(t, got.Equal(time.Date(2026, 3, 10, 18, 30, 0, 0, time.UTC)))

	_, err = ParseDateTime("2026-03-10", "2pm", loc)
	require.Error(t, err)
}

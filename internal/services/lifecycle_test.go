package services

import (
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}

func TestDaysUntil(t *testing.T) {
	now := mustDate(t, "2024-06-15")

	days, err := DaysUntil("2024-07-01", now)
	require.NoError(t, err)
	assert.Equal(t, 16, days)

	days, err = DaysUntil("2024-06-15", now)
	require.NoError(t, err)
	assert.Equal(t, 0, days)

	days, err = DaysUntil("2024-06-14", now)
	require.NoError(t, err)
	assert.Equal(t, -1, days)

	// Partial days round up, so later-today clock positions still count the
	// calendar day boundary.
	days, err = DaysUntil("2024-06-16", now.Add(5*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, days)

	_, err = DaysUntil("15/06/2024", now)
	assert.Error(t, err)
}

func TestCalibrationStatus(t *testing.T) {
	now := mustDate(t, "2024-06-15")

	assert.Equal(t, StatusUnspecified, CalibrationStatus(null.String{}, now))
	assert.Equal(t, StatusUnspecified, CalibrationStatus(null.StringFrom(""), now))
	assert.Equal(t, StatusUnspecified, CalibrationStatus(null.StringFrom("not-a-date"), now))

	assert.Equal(t, StatusOverdue, CalibrationStatus(null.StringFrom("2024-06-01"), now))
	assert.Equal(t, StatusDueSoon, CalibrationStatus(null.StringFrom("2024-07-01"), now))
	// Exactly 30 days out is still inside the warning band.
	assert.Equal(t, StatusDueSoon, CalibrationStatus(null.StringFrom("2024-07-15"), now))
	assert.Equal(t, StatusNormal, CalibrationStatus(null.StringFrom("2024-07-16"), now))
}

func TestExpiryStatus(t *testing.T) {
	now := mustDate(t, "2024-06-15")

	assert.Equal(t, StatusUnspecified, ExpiryStatus(null.String{}, now))
	assert.Equal(t, StatusExpired, ExpiryStatus(null.StringFrom("2024-06-10"), now))
	assert.Equal(t, StatusNearExpiry, ExpiryStatus(null.StringFrom("2024-07-15"), now))
	assert.Equal(t, StatusNormal, ExpiryStatus(null.StringFrom("2024-12-31"), now))
}

func TestQaDueUrgency(t *testing.T) {
	now := mustDate(t, "2024-03-08")

	assert.Equal(t, UrgencyNormal, QaDueUrgency(null.String{}, now))
	assert.Equal(t, UrgencyOverdue, QaDueUrgency(null.StringFrom("2024-03-07"), now))
	assert.Equal(t, UrgencyUrgent, QaDueUrgency(null.StringFrom("2024-03-10"), now))
	assert.Equal(t, UrgencyUrgent, QaDueUrgency(null.StringFrom("2024-03-11"), now))
	assert.Equal(t, UrgencyNormal, QaDueUrgency(null.StringFrom("2024-03-20"), now))
}

func TestRetentionCutoff(t *testing.T) {
	now := mustDate(t, "2024-06-15")
	assert.Equal(t, mustDate(t, "2019-06-15"), RetentionCutoff(now))
}

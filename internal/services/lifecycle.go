package services

import (
	"math"
	"time"

	"lab-system/pkg/constants"

	"github.com/aarondl/null/v8"
)

// Status labels derived from dates. All derivation is pure and recomputed on
// every read; nothing below is ever stored.
const (
	StatusUnspecified = "unspecified"
	StatusNormal      = "normal"

	StatusDueSoon = "due-soon"
	StatusOverdue = "overdue"

	StatusNearExpiry = "near-expiry"
	StatusExpired    = "expired"

	UrgencyOverdue = "overdue"
	UrgencyUrgent  = "urgent"
	UrgencyNormal  = "normal"
)

// DaysUntil counts the days from now until the target date, using ceiling
// division so a target later today still reads as "today" (0), and a target
// exactly 30 days out lands inside the warning band.
func DaysUntil(target string, now time.Time) (int, error) {
	t, err := time.ParseInLocation(constants.DateLayout, target, now.Location())
	if err != nil {
		return 0, err
	}
	diff := t.Sub(now)
	return int(math.Ceil(diff.Hours() / 24)), nil
}

// CalibrationStatus classifies a next-calibration date against now.
func CalibrationStatus(nextCalibration null.String, now time.Time) string {
	return classify(nextCalibration, now, constants.CalibrationWarningDays, StatusOverdue, StatusDueSoon)
}

// ExpiryStatus classifies a chemical expiry date against now.
func ExpiryStatus(expiryDate null.String, now time.Time) string {
	return classify(expiryDate, now, constants.ExpiryWarningDays, StatusExpired, StatusNearExpiry)
}

func classify(date null.String, now time.Time, warningDays int, pastLabel, soonLabel string) string {
	if !date.Valid || date.String == "" {
		return StatusUnspecified
	}
	days, err := DaysUntil(date.String, now)
	if err != nil {
		return StatusUnspecified
	}
	switch {
	case days < 0:
		return pastLabel
	case days <= warningDays:
		return soonLabel
	default:
		return StatusNormal
	}
}

// QaDueUrgency classifies a QA sample due date on the tight turnaround band.
func QaDueUrgency(dueDate null.String, now time.Time) string {
	if !dueDate.Valid || dueDate.String == "" {
		return UrgencyNormal
	}
	days, err := DaysUntil(dueDate.String, now)
	if err != nil {
		return UrgencyNormal
	}
	switch {
	case days < 0:
		return UrgencyOverdue
	case days <= constants.QaSampleUrgentDays:
		return UrgencyUrgent
	default:
		return UrgencyNormal
	}
}

// RetentionCutoff is the oldest calibration date still shown in history views.
func RetentionCutoff(now time.Time) time.Time {
	return now.AddDate(-constants.HistoryRetentionYears, 0, 0)
}

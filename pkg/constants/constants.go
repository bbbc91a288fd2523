package constants

// Date layout used by every date field coming from the client forms.
const DateLayout = "2006-01-02"

const (
	// Calibration and chemical expiry share the same warning band.
	CalibrationWarningDays = 30
	ExpiryWarningDays      = 30

	// QA turnaround is tracked on a much tighter band.
	QaSampleUrgentDays = 3

	// Calibration history older than this is hidden from every view.
	HistoryRetentionYears = 5
)

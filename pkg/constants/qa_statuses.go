package constants

// --- QA SAMPLE STATUSES ---
const (
	QaStatusReceived  = "received"
	QaStatusTesting   = "testing"
	QaStatusCompleted = "completed"
	QaStatusDelivered = "delivered"
)

var QaSampleStatuses = []string{
	QaStatusReceived,
	QaStatusTesting,
	QaStatusCompleted,
	QaStatusDelivered,
}

// QaSampleTransitions is the only legal forward path of an intake request.
// There is deliberately no "cancelled" state for QA samples.
var QaSampleTransitions = map[string][]string{
	QaStatusReceived:  {QaStatusTesting},
	QaStatusTesting:   {QaStatusCompleted},
	QaStatusCompleted: {QaStatusDelivered},
	QaStatusDelivered: {},
}

func IsQaSampleStatus(status string) bool {
	for _, s := range QaSampleStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func CanTransitionQaSample(from, to string) bool {
	for _, s := range QaSampleTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

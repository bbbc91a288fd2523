package dto

type DashboardStatsDTO struct {
	ExpiredChemicals    int `json:"expiredChemicals"`
	NearExpiryChemicals int `json:"nearExpiryChemicals"`

	OverdueCalibrations int `json:"overdueCalibrations"`
	DueSoonCalibrations int `json:"dueSoonCalibrations"`

	PendingTasks    int `json:"pendingTasks"`
	InProgressTasks int `json:"inProgressTasks"`

	PassedTrainings int `json:"passedTrainings"`

	OpenQaSamples int `json:"openQaSamples"`
}

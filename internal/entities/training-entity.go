package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type Training struct {
	ID           uint64 `json:"id"`
	EmployeeName string `json:"employeeName"`
	Course       string `json:"course"`

	TrainingDate null.String `json:"trainingDate"`
	Result       null.String `json:"result"`
	Score        null.Int    `json:"score"`
	Trainer      null.String `json:"trainer"`
	CertificateNo null.String `json:"certificateNo"`

	Notes null.String `json:"notes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

const TrainingResultPassed = "passed"

package dto

import "github.com/aarondl/null/v8"

type CreateTrainingDTO struct {
	EmployeeName string `json:"employeeName" validate:"required,max=255"`
	Course       string `json:"course" validate:"required,max=255"`

	TrainingDate  null.String `json:"trainingDate" validate:"omitempty,labdate"`
	Result        null.String `json:"result"`
	Score         null.Int    `json:"score" validate:"omitempty,gte=0,lte=100"`
	Trainer       null.String `json:"trainer"`
	CertificateNo null.String `json:"certificateNo"`

	Notes null.String `json:"notes"`
}

type UpdateTrainingDTO struct {
	EmployeeName *string `json:"employeeName,omitempty" validate:"omitempty,max=255"`
	Course       *string `json:"course,omitempty" validate:"omitempty,max=255"`

	TrainingDate  *string `json:"trainingDate,omitempty" validate:"omitempty,labdate"`
	Result        *string `json:"result,omitempty"`
	Score         *int    `json:"score,omitempty" validate:"omitempty,gte=0,lte=100"`
	Trainer       *string `json:"trainer,omitempty"`
	CertificateNo *string `json:"certificateNo,omitempty"`

	Notes *string `json:"notes,omitempty"`
}

package dto

import "github.com/aarondl/null/v8"

type CreateGlasswareDTO struct {
	Code  string `json:"code" validate:"required,max=50"`
	Type  string `json:"type" validate:"required,max=255"`
	LotNo string `json:"lotNo" validate:"omitempty,max=100"`

	Capacity null.String `json:"capacity"`
	Brand    null.String `json:"brand"`
	Location null.String `json:"location"`

	LastCalibration    null.String `json:"lastCalibration" validate:"omitempty,labdate"`
	NextCalibration    null.String `json:"nextCalibration" validate:"omitempty,labdate"`
	CalibrationResult  null.String `json:"calibrationResult"`
	CertificateNo      null.String `json:"certificateNo"`
	CalibratedBy       null.String `json:"calibratedBy"`
	CalibrationMethod  null.String `json:"calibrationMethod"`
	CalibrationRemarks null.String `json:"calibrationRemarks"`

	Notes null.String `json:"notes"`
}

type UpdateGlasswareDTO struct {
	Code  *string `json:"code,omitempty" validate:"omitempty,max=50"`
	Type  *string `json:"type,omitempty" validate:"omitempty,max=255"`
	LotNo *string `json:"lotNo,omitempty" validate:"omitempty,max=100"`

	Capacity *string `json:"capacity,omitempty"`
	Brand    *string `json:"brand,omitempty"`
	Location *string `json:"location,omitempty"`

	LastCalibration    *string `json:"lastCalibration,omitempty" validate:"omitempty,labdate"`
	NextCalibration    *string `json:"nextCalibration,omitempty" validate:"omitempty,labdate"`
	CalibrationResult  *string `json:"calibrationResult,omitempty"`
	CertificateNo      *string `json:"certificateNo,omitempty"`
	CalibratedBy       *string `json:"calibratedBy,omitempty"`
	CalibrationMethod  *string `json:"calibrationMethod,omitempty"`
	CalibrationRemarks *string `json:"calibrationRemarks,omitempty"`

	Notes *string `json:"notes,omitempty"`
}

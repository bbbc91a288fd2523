package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Glassware is consolidated in reports by Type rather than Name, since a lab
// keeps many physically interchangeable pieces of the same type.
type Glassware struct {
	ID    uint64 `json:"id"`
	Code  string `json:"code"`
	Type  string `json:"type"`
	LotNo string `json:"lotNo"`

	Capacity null.String `json:"capacity"`
	Brand    null.String `json:"brand"`
	Location null.String `json:"location"`

	LastCalibration    null.String `json:"lastCalibration"`
	NextCalibration    null.String `json:"nextCalibration"`
	CalibrationResult  null.String `json:"calibrationResult"`
	CertificateNo      null.String `json:"certificateNo"`
	CalibratedBy       null.String `json:"calibratedBy"`
	CalibrationMethod  null.String `json:"calibrationMethod"`
	CalibrationRemarks null.String `json:"calibrationRemarks"`

	Notes null.String `json:"notes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

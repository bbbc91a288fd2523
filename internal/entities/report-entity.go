package entities

import "github.com/aarondl/null/v8"

// CalibrationReportRow is one line of the cross-equipment calibration report:
// the current calibration state of a single tool or glassware item.
type CalibrationReportRow struct {
	EquipmentKind string `json:"equipmentKind"`
	Code          string `json:"code"`
	Name          string `json:"name"`
	Label         string `json:"label"`

	Location          null.String `json:"location"`
	LastCalibration   null.String `json:"lastCalibration"`
	NextCalibration   null.String `json:"nextCalibration"`
	CalibrationResult null.String `json:"calibrationResult"`
	CertificateNo     null.String `json:"certificateNo"`
	CalibratedBy      null.String `json:"calibratedBy"`

	// Derived from NextCalibration at read time.
	Status string `json:"status"`
}

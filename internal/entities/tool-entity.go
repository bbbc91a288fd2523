package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Tool is a calibrated instrument. The last/next calibration fields mirror
// the newest ledger record for this tool; the tool services keep the two in
// step on every write.
type Tool struct {
	ID       uint64 `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	SerialNo string `json:"serialNo"`

	Brand    null.String `json:"brand"`
	Model    null.String `json:"model"`
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

package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

const (
	EquipmentKindTool      = "tool"
	EquipmentKindGlassware = "glassware"
)

// CalibrationRecord is one row of the append-only calibration ledger. It is
// never updated or deleted once written.
type CalibrationRecord struct {
	ID            uint64 `json:"id"`
	EquipmentID   uint64 `json:"equipmentId"`
	EquipmentKind string `json:"equipmentKind"`

	CalibrationDate string `json:"calibrationDate"`
	Result          string `json:"result"`

	CertificateNo   null.String `json:"certificateNo"`
	CalibratedBy    null.String `json:"calibratedBy"`
	Method          null.String `json:"method"`
	Remarks         null.String `json:"remarks"`
	NextCalibration null.String `json:"nextCalibration"`

	CreatedAt time.Time `json:"createdAt"`
}

// ConsolidatedCalibrationRecord annotates a ledger row with the equipment it
// came from, for history views stitched across equipment-id churn.
type ConsolidatedCalibrationRecord struct {
	CalibrationRecord
	EquipmentCode  string `json:"equipmentCode"`
	EquipmentLabel string `json:"equipmentLabel"`
}

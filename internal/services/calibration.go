package services

import (
	"context"
	"sort"
	"time"

	"lab-system/internal/entities"
	"lab-system/internal/repositories"
	"lab-system/pkg/constants"

	"github.com/aarondl/null/v8"
)

// calibrationSnapshot is the slice of an equipment record the ledger cares
// about. Tools and glassware share it.
type calibrationSnapshot struct {
	LastCalibration   null.String
	NextCalibration   null.String
	CalibrationResult null.String
	CertificateNo     null.String
	CalibratedBy      null.String
	Method            null.String
	Remarks           null.String
}

func toolSnapshot(t entities.Tool) calibrationSnapshot {
	return calibrationSnapshot{
		LastCalibration:   t.LastCalibration,
		NextCalibration:   t.NextCalibration,
		CalibrationResult: t.CalibrationResult,
		CertificateNo:     t.CertificateNo,
		CalibratedBy:      t.CalibratedBy,
		Method:            t.CalibrationMethod,
		Remarks:           t.CalibrationRemarks,
	}
}

func glasswareSnapshot(g entities.Glassware) calibrationSnapshot {
	return calibrationSnapshot{
		LastCalibration:   g.LastCalibration,
		NextCalibration:   g.NextCalibration,
		CalibrationResult: g.CalibrationResult,
		CertificateNo:     g.CertificateNo,
		CalibratedBy:      g.CalibratedBy,
		Method:            g.CalibrationMethod,
		Remarks:           g.CalibrationRemarks,
	}
}

// complete reports whether the snapshot is a recordable calibration event:
// both the date and the outcome must be present.
func (s calibrationSnapshot) complete() bool {
	return s.LastCalibration.Valid && s.LastCalibration.String != "" &&
		s.CalibrationResult.Valid && s.CalibrationResult.String != ""
}

// changedFrom is the idempotence guard: the ledger grows only when the
// calibration date or the outcome actually moved, never on unrelated edits.
func (s calibrationSnapshot) changedFrom(prev calibrationSnapshot) bool {
	return s.LastCalibration.String != prev.LastCalibration.String ||
		s.LastCalibration.Valid != prev.LastCalibration.Valid ||
		s.CalibrationResult.String != prev.CalibrationResult.String ||
		s.CalibrationResult.Valid != prev.CalibrationResult.Valid
}

// appendCalibrationRecord writes one ledger row for the snapshot.
func appendCalibrationRecord(ctx context.Context, ledger repositories.CalibrationRecordRepositoryInterface, equipmentID uint64, kind string, snap calibrationSnapshot) error {
	_, err := ledger.Append(ctx, entities.CalibrationRecord{
		EquipmentID:     equipmentID,
		EquipmentKind:   kind,
		CalibrationDate: snap.LastCalibration.String,
		Result:          snap.CalibrationResult.String,
		CertificateNo:   snap.CertificateNo,
		CalibratedBy:    snap.CalibratedBy,
		Method:          snap.Method,
		Remarks:         snap.Remarks,
		NextCalibration: snap.NextCalibration,
	})
	return err
}

// windowAndSort drops records older than the retention horizon and orders the
// rest newest first.
func windowAndSort(records []entities.CalibrationRecord, now time.Time) []entities.CalibrationRecord {
	cutoff := RetentionCutoff(now)

	kept := make([]entities.CalibrationRecord, 0, len(records))
	for _, record := range records {
		date, err := time.Parse(constants.DateLayout, record.CalibrationDate)
		if err != nil {
			continue
		}
		if date.Before(cutoff) {
			continue
		}
		kept = append(kept, record)
	}

	// Ties on the date fall back to append order, so a same-day re-test
	// surfaces its latest outcome first.
	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].CalibrationDate != kept[j].CalibrationDate {
			return kept[i].CalibrationDate > kept[j].CalibrationDate
		}
		return kept[i].ID > kept[j].ID
	})
	return kept
}

// consolidate annotates windowed records with the equipment they came from.
func consolidate(records []entities.CalibrationRecord, codes map[uint64]string, labels map[uint64]string, now time.Time) []entities.ConsolidatedCalibrationRecord {
	windowed := windowAndSort(records, now)

	out := make([]entities.ConsolidatedCalibrationRecord, 0, len(windowed))
	for _, record := range windowed {
		out = append(out, entities.ConsolidatedCalibrationRecord{
			CalibrationRecord: record,
			EquipmentCode:     codes[record.EquipmentID],
			EquipmentLabel:    labels[record.EquipmentID],
		})
	}
	return out
}

package repositories

import (
	"context"
	"time"

	"lab-system/internal/entities"
	"lab-system/internal/memstore"
)

// CalibrationRecordRepositoryInterface is append-only by contract: there is
// deliberately no update or delete.
type CalibrationRecordRepositoryInterface interface {
	Append(ctx context.Context, record entities.CalibrationRecord) (*entities.CalibrationRecord, error)
	ListByEquipment(ctx context.Context, equipmentID uint64) ([]entities.CalibrationRecord, error)
	ListByEquipmentIDs(ctx context.Context, equipmentIDs []uint64) ([]entities.CalibrationRecord, error)
}

type CalibrationRecordRepository struct {
	storage *memstore.Collection[entities.CalibrationRecord]
}

func NewCalibrationRecordRepository(seq *memstore.Sequence) CalibrationRecordRepositoryInterface {
	return &CalibrationRecordRepository{storage: memstore.NewCollection[entities.CalibrationRecord](seq)}
}

func (r *CalibrationRecordRepository) Append(ctx context.Context, record entities.CalibrationRecord) (*entities.CalibrationRecord, error) {
	created := r.storage.Insert(func(id uint64) entities.CalibrationRecord {
		record.ID = id
		record.CreatedAt = time.Now()
		return record
	})
	return &created, nil
}

func (r *CalibrationRecordRepository) ListByEquipment(ctx context.Context, equipmentID uint64) ([]entities.CalibrationRecord, error) {
	records := make([]entities.CalibrationRecord, 0)
	for _, record := range r.storage.All() {
		if record.EquipmentID == equipmentID {
			records = append(records, record)
		}
	}
	return records, nil
}

func (r *CalibrationRecordRepository) ListByEquipmentIDs(ctx context.Context, equipmentIDs []uint64) ([]entities.CalibrationRecord, error) {
	wanted := make(map[uint64]struct{}, len(equipmentIDs))
	for _, id := range equipmentIDs {
		wanted[id] = struct{}{}
	}

	records := make([]entities.CalibrationRecord, 0)
	for _, record := range r.storage.All() {
		if _, ok := wanted[record.EquipmentID]; ok {
			records = append(records, record)
		}
	}
	return records, nil
}

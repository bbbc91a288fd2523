package services

import (
	"context"
	"time"

	"lab-system/internal/dto"
	"lab-system/internal/entities"
	"lab-system/internal/repositories"
	apperrors "lab-system/pkg/errors"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"
)

type GlasswareServiceInterface interface {
	GetGlassware(ctx context.Context) ([]entities.Glassware, error)
	FindGlassware(ctx context.Context, id uint64) (*entities.Glassware, error)
	CreateGlassware(ctx context.Context, createDTO dto.CreateGlasswareDTO) (*entities.Glassware, error)
	UpdateGlassware(ctx context.Context, id uint64, updateDTO dto.UpdateGlasswareDTO) (*entities.Glassware, error)
	DeleteGlassware(ctx context.Context, id uint64) error
	GetCalibrationHistory(ctx context.Context, id uint64) ([]entities.CalibrationRecord, error)
	GetCalibrationHistoryByType(ctx context.Context, id uint64) ([]entities.ConsolidatedCalibrationRecord, error)
}

type GlasswareService struct {
	repo   repositories.GlasswareRepositoryInterface
	ledger repositories.CalibrationRecordRepositoryInterface
	logger *zap.Logger
	clock  func() time.Time
}

func NewGlasswareService(
	repo repositories.GlasswareRepositoryInterface,
	ledger repositories.CalibrationRecordRepositoryInterface,
	logger *zap.Logger,
) GlasswareServiceInterface {
	return &GlasswareService{repo: repo, ledger: ledger, logger: logger, clock: time.Now}
}

func (s *GlasswareService) GetGlassware(ctx context.Context) ([]entities.Glassware, error) {
	return s.repo.GetGlassware(ctx)
}

func (s *GlasswareService) FindGlassware(ctx context.Context, id uint64) (*entities.Glassware, error) {
	return s.repo.FindGlassware(ctx, id)
}

func (s *GlasswareService) CreateGlassware(ctx context.Context, createDTO dto.CreateGlasswareDTO) (*entities.Glassware, error) {
	if existing, err := s.repo.FindByCode(ctx, createDTO.Code); err == nil && existing != nil {
		return nil, apperrors.ErrCodeTaken
	}

	item := entities.Glassware{
		Code:               createDTO.Code,
		Type:               createDTO.Type,
		LotNo:              createDTO.LotNo,
		Capacity:           createDTO.Capacity,
		Brand:              createDTO.Brand,
		Location:           createDTO.Location,
		LastCalibration:    createDTO.LastCalibration,
		NextCalibration:    createDTO.NextCalibration,
		CalibrationResult:  createDTO.CalibrationResult,
		CertificateNo:      createDTO.CertificateNo,
		CalibratedBy:       createDTO.CalibratedBy,
		CalibrationMethod:  createDTO.CalibrationMethod,
		CalibrationRemarks: createDTO.CalibrationRemarks,
		Notes:              createDTO.Notes,
	}

	created, err := s.repo.CreateGlassware(ctx, item)
	if err != nil {
		return nil, err
	}

	if snap := glasswareSnapshot(*created); snap.complete() {
		if err := appendCalibrationRecord(ctx, s.ledger, created.ID, entities.EquipmentKindGlassware, snap); err != nil {
			s.logger.Error("failed to append calibration record on glassware create", zap.Uint64("id", created.ID), zap.Error(err))
			return nil, err
		}
	}

	return created, nil
}

func (s *GlasswareService) UpdateGlassware(ctx context.Context, id uint64, updateDTO dto.UpdateGlasswareDTO) (*entities.Glassware, error) {
	if updateDTO.Code != nil {
		if existing, err := s.repo.FindByCode(ctx, *updateDTO.Code); err == nil && existing != nil && existing.ID != id {
			return nil, apperrors.ErrCodeTaken
		}
	}

	var prevSnap, nextSnap calibrationSnapshot
	updated, err := s.repo.UpdateGlassware(ctx, id, func(current entities.Glassware) entities.Glassware {
		prevSnap = glasswareSnapshot(current)
		next := mergeGlassware(current, updateDTO)
		nextSnap = glasswareSnapshot(next)
		return next
	})
	if err != nil {
		return nil, err
	}

	if nextSnap.complete() && nextSnap.changedFrom(prevSnap) {
		if err := appendCalibrationRecord(ctx, s.ledger, id, entities.EquipmentKindGlassware, nextSnap); err != nil {
			s.logger.Error("failed to append calibration record on glassware update", zap.Uint64("id", id), zap.Error(err))
			return nil, err
		}
	}

	return updated, nil
}

func (s *GlasswareService) DeleteGlassware(ctx context.Context, id uint64) error {
	return s.repo.DeleteGlassware(ctx, id)
}

func (s *GlasswareService) GetCalibrationHistory(ctx context.Context, id uint64) ([]entities.CalibrationRecord, error) {
	records, err := s.ledger.ListByEquipment(ctx, id)
	if err != nil {
		return nil, err
	}
	return windowAndSort(records, s.clock()), nil
}

func (s *GlasswareService) GetCalibrationHistoryByType(ctx context.Context, id uint64) ([]entities.ConsolidatedCalibrationRecord, error) {
	item, err := s.repo.FindGlassware(ctx, id)
	if err != nil {
		return nil, err
	}

	siblings, err := s.repo.FindByType(ctx, item.Type)
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(siblings))
	codes := make(map[uint64]string, len(siblings))
	labels := make(map[uint64]string, len(siblings))
	for _, sibling := range siblings {
		ids = append(ids, sibling.ID)
		codes[sibling.ID] = sibling.Code
		labels[sibling.ID] = sibling.LotNo
	}

	records, err := s.ledger.ListByEquipmentIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	return consolidate(records, codes, labels, s.clock()), nil
}

func mergeGlassware(current entities.Glassware, changes dto.UpdateGlasswareDTO) entities.Glassware {
	merged := current

	if changes.Code != nil {
		merged.Code = *changes.Code
	}
	if changes.Type != nil {
		merged.Type = *changes.Type
	}
	if changes.LotNo != nil {
		merged.LotNo = *changes.LotNo
	}
	if changes.Capacity != nil {
		merged.Capacity = null.StringFrom(*changes.Capacity)
	}
	if changes.Brand != nil {
		merged.Brand = null.StringFrom(*changes.Brand)
	}
	if changes.Location != nil {
		merged.Location = null.StringFrom(*changes.Location)
	}
	if changes.LastCalibration != nil {
		merged.LastCalibration = null.StringFrom(*changes.LastCalibration)
	}
	if changes.NextCalibration != nil {
		merged.NextCalibration = null.StringFrom(*changes.NextCalibration)
	}
	if changes.CalibrationResult != nil {
		merged.CalibrationResult = null.StringFrom(*changes.CalibrationResult)
	}
	if changes.CertificateNo != nil {
		merged.CertificateNo = null.StringFrom(*changes.CertificateNo)
	}
	if changes.CalibratedBy != nil {
		merged.CalibratedBy = null.StringFrom(*changes.CalibratedBy)
	}
	if changes.CalibrationMethod != nil {
		merged.CalibrationMethod = null.StringFrom(*changes.CalibrationMethod)
	}
	if changes.CalibrationRemarks != nil {
		merged.CalibrationRemarks = null.StringFrom(*changes.CalibrationRemarks)
	}
	if changes.Notes != nil {
		merged.Notes = null.StringFrom(*changes.Notes)
	}

	return merged
}

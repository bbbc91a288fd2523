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

type ToolServiceInterface interface {
	GetTools(ctx context.Context) ([]entities.Tool, error)
	FindTool(ctx context.Context, id uint64) (*entities.Tool, error)
	CreateTool(ctx context.Context, createDTO dto.CreateToolDTO) (*entities.Tool, error)
	UpdateTool(ctx context.Context, id uint64, updateDTO dto.UpdateToolDTO) (*entities.Tool, error)
	DeleteTool(ctx context.Context, id uint64) error
	GetCalibrationHistory(ctx context.Context, id uint64) ([]entities.CalibrationRecord, error)
	GetCalibrationHistoryByName(ctx context.Context, id uint64) ([]entities.ConsolidatedCalibrationRecord, error)
}

type ToolService struct {
	repo   repositories.ToolRepositoryInterface
	ledger repositories.CalibrationRecordRepositoryInterface
	logger *zap.Logger
	clock  func() time.Time
}

func NewToolService(
	repo repositories.ToolRepositoryInterface,
	ledger repositories.CalibrationRecordRepositoryInterface,
	logger *zap.Logger,
) ToolServiceInterface {
	return &ToolService{repo: repo, ledger: ledger, logger: logger, clock: time.Now}
}

func (s *ToolService) GetTools(ctx context.Context) ([]entities.Tool, error) {
	return s.repo.GetTools(ctx)
}

func (s *ToolService) FindTool(ctx context.Context, id uint64) (*entities.Tool, error) {
	return s.repo.FindTool(ctx, id)
}

func (s *ToolService) CreateTool(ctx context.Context, createDTO dto.CreateToolDTO) (*entities.Tool, error) {
	if existing, err := s.repo.FindByCode(ctx, createDTO.Code); err == nil && existing != nil {
		return nil, apperrors.ErrCodeTaken
	}

	tool := entities.Tool{
		Code:               createDTO.Code,
		Name:               createDTO.Name,
		SerialNo:           createDTO.SerialNo,
		Brand:              createDTO.Brand,
		Model:              createDTO.Model,
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

	created, err := s.repo.CreateTool(ctx, tool)
	if err != nil {
		return nil, err
	}

	if snap := toolSnapshot(*created); snap.complete() {
		if err := appendCalibrationRecord(ctx, s.ledger, created.ID, entities.EquipmentKindTool, snap); err != nil {
			s.logger.Error("failed to append calibration record on tool create", zap.Uint64("id", created.ID), zap.Error(err))
			return nil, err
		}
	}

	return created, nil
}

func (s *ToolService) UpdateTool(ctx context.Context, id uint64, updateDTO dto.UpdateToolDTO) (*entities.Tool, error) {
	if updateDTO.Code != nil {
		if existing, err := s.repo.FindByCode(ctx, *updateDTO.Code); err == nil && existing != nil && existing.ID != id {
			return nil, apperrors.ErrCodeTaken
		}
	}

	var prevSnap, nextSnap calibrationSnapshot
	updated, err := s.repo.UpdateTool(ctx, id, func(current entities.Tool) entities.Tool {
		prevSnap = toolSnapshot(current)
		next := mergeTool(current, updateDTO)
		nextSnap = toolSnapshot(next)
		return next
	})
	if err != nil {
		return nil, err
	}

	// The ledger grows only on genuine calibration events.
	if nextSnap.complete() && nextSnap.changedFrom(prevSnap) {
		if err := appendCalibrationRecord(ctx, s.ledger, id, entities.EquipmentKindTool, nextSnap); err != nil {
			s.logger.Error("failed to append calibration record on tool update", zap.Uint64("id", id), zap.Error(err))
			return nil, err
		}
	}

	return updated, nil
}

func (s *ToolService) DeleteTool(ctx context.Context, id uint64) error {
	return s.repo.DeleteTool(ctx, id)
}

func (s *ToolService) GetCalibrationHistory(ctx context.Context, id uint64) ([]entities.CalibrationRecord, error) {
	// Nonexistent equipment reads as "nothing recorded yet", not an error.
	records, err := s.ledger.ListByEquipment(ctx, id)
	if err != nil {
		return nil, err
	}
	return windowAndSort(records, s.clock()), nil
}

func (s *ToolService) GetCalibrationHistoryByName(ctx context.Context, id uint64) ([]entities.ConsolidatedCalibrationRecord, error) {
	tool, err := s.repo.FindTool(ctx, id)
	if err != nil {
		return nil, err
	}

	siblings, err := s.repo.FindByName(ctx, tool.Name)
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(siblings))
	codes := make(map[uint64]string, len(siblings))
	labels := make(map[uint64]string, len(siblings))
	for _, sibling := range siblings {
		ids = append(ids, sibling.ID)
		codes[sibling.ID] = sibling.Code
		labels[sibling.ID] = sibling.SerialNo
	}

	records, err := s.ledger.ListByEquipmentIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	return consolidate(records, codes, labels, s.clock()), nil
}

func mergeTool(current entities.Tool, changes dto.UpdateToolDTO) entities.Tool {
	merged := current

	if changes.Code != nil {
		merged.Code = *changes.Code
	}
	if changes.Name != nil {
		merged.Name = *changes.Name
	}
	if changes.SerialNo != nil {
		merged.SerialNo = *changes.SerialNo
	}
	if changes.Brand != nil {
		merged.Brand = null.StringFrom(*changes.Brand)
	}
	if changes.Model != nil {
		merged.Model = null.StringFrom(*changes.Model)
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

package services

import (
	"context"
	"time"

	"lab-system/internal/entities"
	"lab-system/internal/repositories"

	"go.uber.org/zap"
)

type ReportServiceInterface interface {
	GetCalibrationReport(ctx context.Context) ([]entities.CalibrationReportRow, error)
}

type ReportService struct {
	tools     repositories.ToolRepositoryInterface
	glassware repositories.GlasswareRepositoryInterface
	logger    *zap.Logger
	clock     func() time.Time
}

func NewReportService(
	tools repositories.ToolRepositoryInterface,
	glassware repositories.GlasswareRepositoryInterface,
	logger *zap.Logger,
) ReportServiceInterface {
	return &ReportService{tools: tools, glassware: glassware, logger: logger, clock: time.Now}
}

// GetCalibrationReport flattens tools and glassware into one row set, each row
// carrying the item's current calibration state and derived status.
func (s *ReportService) GetCalibrationReport(ctx context.Context) ([]entities.CalibrationReportRow, error) {
	now := s.clock()

	tools, err := s.tools.GetTools(ctx)
	if err != nil {
		return nil, err
	}
	glassware, err := s.glassware.GetGlassware(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]entities.CalibrationReportRow, 0, len(tools)+len(glassware))
	for _, tool := range tools {
		rows = append(rows, entities.CalibrationReportRow{
			EquipmentKind:     entities.EquipmentKindTool,
			Code:              tool.Code,
			Name:              tool.Name,
			Label:             tool.SerialNo,
			Location:          tool.Location,
			LastCalibration:   tool.LastCalibration,
			NextCalibration:   tool.NextCalibration,
			CalibrationResult: tool.CalibrationResult,
			CertificateNo:     tool.CertificateNo,
			CalibratedBy:      tool.CalibratedBy,
			Status:            CalibrationStatus(tool.NextCalibration, now),
		})
	}
	for _, item := range glassware {
		rows = append(rows, entities.CalibrationReportRow{
			EquipmentKind:     entities.EquipmentKindGlassware,
			Code:              item.Code,
			Name:              item.Type,
			Label:             item.LotNo,
			Location:          item.Location,
			LastCalibration:   item.LastCalibration,
			NextCalibration:   item.NextCalibration,
			CalibrationResult: item.CalibrationResult,
			CertificateNo:     item.CertificateNo,
			CalibratedBy:      item.CalibratedBy,
			Status:            CalibrationStatus(item.NextCalibration, now),
		})
	}

	return rows, nil
}

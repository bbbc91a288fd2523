package services

import (
	"context"
	"time"

	"lab-system/internal/dto"
	"lab-system/internal/entities"
	"lab-system/internal/repositories"
	"lab-system/pkg/constants"

	"go.uber.org/zap"
)

type DashboardServiceInterface interface {
	GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error)
}

type DashboardService struct {
	tools     repositories.ToolRepositoryInterface
	glassware repositories.GlasswareRepositoryInterface
	chemicals repositories.ChemicalRepositoryInterface
	tasks     repositories.TaskRepositoryInterface
	trainings repositories.TrainingRepositoryInterface
	qaSamples repositories.QaSampleRepositoryInterface
	logger    *zap.Logger
	clock     func() time.Time
}

func NewDashboardService(
	tools repositories.ToolRepositoryInterface,
	glassware repositories.GlasswareRepositoryInterface,
	chemicals repositories.ChemicalRepositoryInterface,
	tasks repositories.TaskRepositoryInterface,
	trainings repositories.TrainingRepositoryInterface,
	qaSamples repositories.QaSampleRepositoryInterface,
	logger *zap.Logger,
) DashboardServiceInterface {
	return &DashboardService{
		tools:     tools,
		glassware: glassware,
		chemicals: chemicals,
		tasks:     tasks,
		trainings: trainings,
		qaSamples: qaSamples,
		logger:    logger,
		clock:     time.Now,
	}
}

func (s *DashboardService) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	now := s.clock()
	stats := &dto.DashboardStatsDTO{}

	chemicals, err := s.chemicals.GetChemicals(ctx, "")
	if err != nil {
		return nil, err
	}
	for _, chemical := range chemicals {
		switch ExpiryStatus(chemical.ExpiryDate, now) {
		case StatusExpired:
			stats.ExpiredChemicals++
		case StatusNearExpiry:
			stats.NearExpiryChemicals++
		}
	}

	tools, err := s.tools.GetTools(ctx)
	if err != nil {
		return nil, err
	}
	for _, tool := range tools {
		switch CalibrationStatus(tool.NextCalibration, now) {
		case StatusOverdue:
			stats.OverdueCalibrations++
		case StatusDueSoon:
			stats.DueSoonCalibrations++
		}
	}

	glassware, err := s.glassware.GetGlassware(ctx)
	if err != nil {
		return nil, err
	}
	for _, item := range glassware {
		switch CalibrationStatus(item.NextCalibration, now) {
		case StatusOverdue:
			stats.OverdueCalibrations++
		case StatusDueSoon:
			stats.DueSoonCalibrations++
		}
	}

	tasks, err := s.tasks.GetTasks(ctx, "")
	if err != nil {
		return nil, err
	}
	for _, task := range tasks {
		switch task.Status {
		case constants.TaskStatusPending:
			stats.PendingTasks++
		case constants.TaskStatusInProgress:
			stats.InProgressTasks++
		}
	}

	trainings, err := s.trainings.GetTrainings(ctx)
	if err != nil {
		return nil, err
	}
	for _, training := range trainings {
		if training.Result.Valid && training.Result.String == entities.TrainingResultPassed {
			stats.PassedTrainings++
		}
	}

	samples, err := s.qaSamples.GetQaSamples(ctx, "")
	if err != nil {
		return nil, err
	}
	for _, sample := range samples {
		if sample.Status != constants.QaStatusDelivered {
			stats.OpenQaSamples++
		}
	}

	return stats, nil
}

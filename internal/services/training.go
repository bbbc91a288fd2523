package services

import (
	"context"

	"lab-system/internal/dto"
	"lab-system/internal/entities"
	"lab-system/internal/repositories"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"
)

type TrainingServiceInterface interface {
	GetTrainings(ctx context.Context) ([]entities.Training, error)
	FindTraining(ctx context.Context, id uint64) (*entities.Training, error)
	CreateTraining(ctx context.Context, createDTO dto.CreateTrainingDTO) (*entities.Training, error)
	UpdateTraining(ctx context.Context, id uint64, updateDTO dto.UpdateTrainingDTO) (*entities.Training, error)
	DeleteTraining(ctx context.Context, id uint64) error
}

type TrainingService struct {
	repo   repositories.TrainingRepositoryInterface
	logger *zap.Logger
}

func NewTrainingService(repo repositories.TrainingRepositoryInterface, logger *zap.Logger) TrainingServiceInterface {
	return &TrainingService{repo: repo, logger: logger}
}

func (s *TrainingService) GetTrainings(ctx context.Context) ([]entities.Training, error) {
	return s.repo.GetTrainings(ctx)
}

func (s *TrainingService) FindTraining(ctx context.Context, id uint64) (*entities.Training, error) {
	return s.repo.FindTraining(ctx, id)
}

func (s *TrainingService) CreateTraining(ctx context.Context, createDTO dto.CreateTrainingDTO) (*entities.Training, error) {
	training := entities.Training{
		EmployeeName:  createDTO.EmployeeName,
		Course:        createDTO.Course,
		TrainingDate:  createDTO.TrainingDate,
		Result:        createDTO.Result,
		Score:         createDTO.Score,
		Trainer:       createDTO.Trainer,
		CertificateNo: createDTO.CertificateNo,
		Notes:         createDTO.Notes,
	}

	return s.repo.CreateTraining(ctx, training)
}

func (s *TrainingService) UpdateTraining(ctx context.Context, id uint64, updateDTO dto.UpdateTrainingDTO) (*entities.Training, error) {
	return s.repo.UpdateTraining(ctx, id, func(current entities.Training) entities.Training {
		merged := current
		if updateDTO.EmployeeName != nil {
			merged.EmployeeName = *updateDTO.EmployeeName
		}
		if updateDTO.Course != nil {
			merged.Course = *updateDTO.Course
		}
		if updateDTO.TrainingDate != nil {
			merged.TrainingDate = null.StringFrom(*updateDTO.TrainingDate)
		}
		if updateDTO.Result != nil {
			merged.Result = null.StringFrom(*updateDTO.Result)
		}
		if updateDTO.Score != nil {
			merged.Score = null.IntFrom(*updateDTO.Score)
		}
		if updateDTO.Trainer != nil {
			merged.Trainer = null.StringFrom(*updateDTO.Trainer)
		}
		if updateDTO.CertificateNo != nil {
			merged.CertificateNo = null.StringFrom(*updateDTO.CertificateNo)
		}
		if updateDTO.Notes != nil {
			merged.Notes = null.StringFrom(*updateDTO.Notes)
		}
		return merged
	})
}

func (s *TrainingService) DeleteTraining(ctx context.Context, id uint64) error {
	return s.repo.DeleteTraining(ctx, id)
}

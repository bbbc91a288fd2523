package services

import (
	"context"
	"fmt"
	"net/http"

	"lab-system/internal/dto"
	"lab-system/internal/entities"
	"lab-system/internal/repositories"
	"lab-system/pkg/constants"
	apperrors "lab-system/pkg/errors"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type QaSampleServiceInterface interface {
	GetQaSamples(ctx context.Context, status string) ([]entities.QaSample, error)
	FindQaSample(ctx context.Context, id uint64) (*entities.QaSample, error)
	CreateQaSample(ctx context.Context, createDTO dto.CreateQaSampleDTO) (*entities.QaSample, error)
	UpdateQaSample(ctx context.Context, id uint64, updateDTO dto.UpdateQaSampleDTO) (*entities.QaSample, error)
	DeleteQaSample(ctx context.Context, id uint64) error
}

type QaSampleService struct {
	repo   repositories.QaSampleRepositoryInterface
	logger *zap.Logger
}

func NewQaSampleService(repo repositories.QaSampleRepositoryInterface, logger *zap.Logger) QaSampleServiceInterface {
	return &QaSampleService{repo: repo, logger: logger}
}

func (s *QaSampleService) GetQaSamples(ctx context.Context, status string) ([]entities.QaSample, error) {
	if status != "" && !constants.IsQaSampleStatus(status) {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, "Unknown sample status filter", apperrors.ErrBadRequest)
	}
	return s.repo.GetQaSamples(ctx, status)
}

func (s *QaSampleService) FindQaSample(ctx context.Context, id uint64) (*entities.QaSample, error) {
	return s.repo.FindQaSample(ctx, id)
}

func (s *QaSampleService) CreateQaSample(ctx context.Context, createDTO dto.CreateQaSampleDTO) (*entities.QaSample, error) {
	requestNo := createDTO.RequestNo
	if requestNo == "" {
		requestNo = fmt.Sprintf("QA-%s", uuid.NewString())
	}

	if existing, err := s.repo.FindByRequestNo(ctx, requestNo); err == nil && existing != nil {
		return nil, apperrors.ErrCodeTaken
	}

	if err := checkDueAfterReceived(createDTO.ReceivedDate, createDTO.DueDate); err != nil {
		return nil, err
	}

	sample := entities.QaSample{
		RequestNo:       requestNo,
		Status:          constants.QaStatusReceived,
		CustomerName:    createDTO.CustomerName,
		CustomerContact: createDTO.CustomerContact,
		DeliveryMethod:  createDTO.DeliveryMethod,
		Storage:         createDTO.Storage,
		PostTesting:     createDTO.PostTesting,
		Condition:       createDTO.Condition,
		ReceivedDate:    createDTO.ReceivedDate,
		DueDate:         createDTO.DueDate,
		Samples:         samplesFromDTO(createDTO.Samples),
	}

	return s.repo.CreateQaSample(ctx, sample)
}

func (s *QaSampleService) UpdateQaSample(ctx context.Context, id uint64, updateDTO dto.UpdateQaSampleDTO) (*entities.QaSample, error) {
	current, err := s.repo.FindQaSample(ctx, id)
	if err != nil {
		return nil, err
	}

	if updateDTO.Status != nil && *updateDTO.Status != current.Status {
		if !constants.CanTransitionQaSample(current.Status, *updateDTO.Status) {
			return nil, apperrors.NewHttpError(
				http.StatusBadRequest,
				fmt.Sprintf("Cannot move sample from %q to %q", current.Status, *updateDTO.Status),
				apperrors.ErrBadRequest,
			)
		}
	}

	receivedDate := current.ReceivedDate
	if updateDTO.ReceivedDate != nil {
		receivedDate = *updateDTO.ReceivedDate
	}
	dueDate := current.DueDate
	if updateDTO.DueDate != nil {
		dueDate = null.StringFrom(*updateDTO.DueDate)
	}
	if err := checkDueAfterReceived(receivedDate, dueDate); err != nil {
		return nil, err
	}

	var invalidTransition bool
	updated, err := s.repo.UpdateQaSample(ctx, id, func(current entities.QaSample) entities.QaSample {
		if updateDTO.Status != nil && *updateDTO.Status != current.Status &&
			!constants.CanTransitionQaSample(current.Status, *updateDTO.Status) {
			invalidTransition = true
			return current
		}

		merged := current
		if updateDTO.Status != nil {
			merged.Status = *updateDTO.Status
		}
		if updateDTO.CustomerName != nil {
			merged.CustomerName = *updateDTO.CustomerName
		}
		if updateDTO.CustomerContact != nil {
			merged.CustomerContact = null.StringFrom(*updateDTO.CustomerContact)
		}
		if updateDTO.DeliveryMethod != nil {
			merged.DeliveryMethod = null.StringFrom(*updateDTO.DeliveryMethod)
		}
		if updateDTO.Storage != nil {
			merged.Storage = null.StringFrom(*updateDTO.Storage)
		}
		if updateDTO.PostTesting != nil {
			merged.PostTesting = null.StringFrom(*updateDTO.PostTesting)
		}
		if updateDTO.Condition != nil {
			merged.Condition = null.StringFrom(*updateDTO.Condition)
		}
		if updateDTO.ReceivedDate != nil {
			merged.ReceivedDate = *updateDTO.ReceivedDate
		}
		if updateDTO.DueDate != nil {
			merged.DueDate = null.StringFrom(*updateDTO.DueDate)
		}
		if updateDTO.Samples != nil {
			merged.Samples = samplesFromDTO(*updateDTO.Samples)
		}
		return merged
	})
	if err != nil {
		return nil, err
	}
	if invalidTransition {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, "Sample status changed concurrently", apperrors.ErrBadRequest)
	}
	return updated, nil
}

func (s *QaSampleService) DeleteQaSample(ctx context.Context, id uint64) error {
	return s.repo.DeleteQaSample(ctx, id)
}

// checkDueAfterReceived rejects a due date earlier than the received date.
// Dates share a fixed layout, so the string comparison matches chronology.
func checkDueAfterReceived(receivedDate string, dueDate null.String) error {
	if !dueDate.Valid || dueDate.String == "" {
		return nil
	}
	if dueDate.String < receivedDate {
		return apperrors.NewHttpError(http.StatusBadRequest, "Due date precedes received date", apperrors.ErrBadRequest)
	}
	return nil
}

func samplesFromDTO(items []dto.SampleDTO) []entities.Sample {
	samples := make([]entities.Sample, 0, len(items))
	for _, item := range items {
		tests := make([]entities.ItemTest, 0, len(item.ItemTests))
		for _, test := range item.ItemTests {
			tests = append(tests, entities.ItemTest{
				Name:          test.Name,
				Specification: test.Specification,
				Unit:          test.Unit,
				Method:        test.Method,
			})
		}
		samples = append(samples, entities.Sample{
			SampleNo:        item.SampleNo,
			Names:           append([]string(nil), item.Names...),
			Description:     item.Description,
			AnalysisRequest: item.AnalysisRequest,
			ItemTests:       tests,
		})
	}
	return samples
}

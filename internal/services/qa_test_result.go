package services

import (
	"context"

	"lab-system/internal/dto"
	"lab-system/internal/entities"
	"lab-system/internal/repositories"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"
)

type QaTestResultServiceInterface interface {
	GetQaTestResults(ctx context.Context, requestNo string) ([]entities.QaTestResult, error)
	FindQaTestResult(ctx context.Context, id uint64) (*entities.QaTestResult, error)
	CreateQaTestResult(ctx context.Context, createDTO dto.CreateQaTestResultDTO) (*entities.QaTestResult, error)
	UpdateQaTestResult(ctx context.Context, id uint64, updateDTO dto.UpdateQaTestResultDTO) (*entities.QaTestResult, error)
	DeleteQaTestResult(ctx context.Context, id uint64) error
}

type QaTestResultService struct {
	repo   repositories.QaTestResultRepositoryInterface
	logger *zap.Logger
}

func NewQaTestResultService(repo repositories.QaTestResultRepositoryInterface, logger *zap.Logger) QaTestResultServiceInterface {
	return &QaTestResultService{repo: repo, logger: logger}
}

func (s *QaTestResultService) GetQaTestResults(ctx context.Context, requestNo string) ([]entities.QaTestResult, error) {
	return s.repo.GetQaTestResults(ctx, requestNo)
}

func (s *QaTestResultService) FindQaTestResult(ctx context.Context, id uint64) (*entities.QaTestResult, error) {
	return s.repo.FindQaTestResult(ctx, id)
}

func (s *QaTestResultService) CreateQaTestResult(ctx context.Context, createDTO dto.CreateQaTestResultDTO) (*entities.QaTestResult, error) {
	result := entities.QaTestResult{
		RequestNo: createDTO.RequestNo,
		SampleNo:  createDTO.SampleNo,
		TestDate:  createDTO.TestDate,
		TestedBy:  createDTO.TestedBy,
		Items:     testItemsFromDTO(createDTO.Items),
	}

	return s.repo.CreateQaTestResult(ctx, result)
}

func (s *QaTestResultService) UpdateQaTestResult(ctx context.Context, id uint64, updateDTO dto.UpdateQaTestResultDTO) (*entities.QaTestResult, error) {
	return s.repo.UpdateQaTestResult(ctx, id, func(current entities.QaTestResult) entities.QaTestResult {
		merged := current
		if updateDTO.RequestNo != nil {
			merged.RequestNo = *updateDTO.RequestNo
		}
		if updateDTO.SampleNo != nil {
			merged.SampleNo = *updateDTO.SampleNo
		}
		if updateDTO.TestDate != nil {
			merged.TestDate = null.StringFrom(*updateDTO.TestDate)
		}
		if updateDTO.TestedBy != nil {
			merged.TestedBy = null.StringFrom(*updateDTO.TestedBy)
		}
		if updateDTO.Items != nil {
			merged.Items = testItemsFromDTO(*updateDTO.Items)
		}
		return merged
	})
}

func (s *QaTestResultService) DeleteQaTestResult(ctx context.Context, id uint64) error {
	return s.repo.DeleteQaTestResult(ctx, id)
}

// testItemsFromDTO copies the submitted items and recomputes the derived
// averages. Client-sent averages are never trusted.
func testItemsFromDTO(items []dto.TestItemDTO) []entities.TestItem {
	out := make([]entities.TestItem, 0, len(items))
	for _, item := range items {
		entry := entities.TestItem{
			TestType:   item.TestType,
			Result:     item.Result,
			Ph1:        item.Ph1,
			Ph2:        item.Ph2,
			SampleName: item.SampleName,
			Active1:    item.Active1,
			Active2:    item.Active2,
			Active3:    item.Active3,
			Density:    item.Density,
			Moisture:   item.Moisture,
			Viscosity:  item.Viscosity,
			Remarks:    item.Remarks,
		}
		entry.PhAverage = averageOf(item.Ph1, item.Ph2)
		entry.ActiveAverage = averageOf(item.Active1, item.Active2, item.Active3)
		out = append(out, entry)
	}
	return out
}

// averageOf averages the readings that are present; with none present the
// average stays null.
func averageOf(readings ...null.Float64) null.Float64 {
	var sum float64
	var count int
	for _, reading := range readings {
		if reading.Valid {
			sum += reading.Float64
			count++
		}
	}
	if count == 0 {
		return null.Float64{}
	}
	return null.Float64From(sum / float64(count))
}

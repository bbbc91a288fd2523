package repositories

import (
	"context"
	"time"

	"lab-system/internal/entities"
	"lab-system/internal/memstore"
	apperrors "lab-system/pkg/errors"
)

type QaTestResultRepositoryInterface interface {
	GetQaTestResults(ctx context.Context, requestNo string) ([]entities.QaTestResult, error)
	FindQaTestResult(ctx context.Context, id uint64) (*entities.QaTestResult, error)
	CreateQaTestResult(ctx context.Context, result entities.QaTestResult) (*entities.QaTestResult, error)
	UpdateQaTestResult(ctx context.Context, id uint64, mutate func(entities.QaTestResult) entities.QaTestResult) (*entities.QaTestResult, error)
	DeleteQaTestResult(ctx context.Context, id uint64) error
}

type QaTestResultRepository struct {
	storage *memstore.Collection[entities.QaTestResult]
}

func NewQaTestResultRepository(seq *memstore.Sequence) QaTestResultRepositoryInterface {
	return &QaTestResultRepository{storage: memstore.NewCollection[entities.QaTestResult](seq)}
}

func (r *QaTestResultRepository) GetQaTestResults(ctx context.Context, requestNo string) ([]entities.QaTestResult, error) {
	results := make([]entities.QaTestResult, 0)
	for _, result := range r.storage.All() {
		if requestNo == "" || result.RequestNo == requestNo {
			results = append(results, result)
		}
	}
	return results, nil
}

func (r *QaTestResultRepository) FindQaTestResult(ctx context.Context, id uint64) (*entities.QaTestResult, error) {
	result, ok := r.storage.Get(id)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &result, nil
}

func (r *QaTestResultRepository) CreateQaTestResult(ctx context.Context, result entities.QaTestResult) (*entities.QaTestResult, error) {
	now := time.Now()
	created := r.storage.Insert(func(id uint64) entities.QaTestResult {
		result.ID = id
		result.CreatedAt = now
		result.UpdatedAt = now
		return result
	})
	return &created, nil
}

func (r *QaTestResultRepository) UpdateQaTestResult(ctx context.Context, id uint64, mutate func(entities.QaTestResult) entities.QaTestResult) (*entities.QaTestResult, error) {
	updated, ok := r.storage.Replace(id, func(current entities.QaTestResult) entities.QaTestResult {
		next := mutate(current)
		next.ID = current.ID
		next.CreatedAt = current.CreatedAt
		next.UpdatedAt = time.Now()
		return next
	})
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &updated, nil
}

func (r *QaTestResultRepository) DeleteQaTestResult(ctx context.Context, id uint64) error {
	if !r.storage.Delete(id) {
		return apperrors.ErrNotFound
	}
	return nil
}

package repositories

import (
	"context"
	"time"

	"lab-system/internal/entities"
	"lab-system/internal/memstore"
	apperrors "lab-system/pkg/errors"
)

type QaSampleRepositoryInterface interface {
	GetQaSamples(ctx context.Context, status string) ([]entities.QaSample, error)
	FindQaSample(ctx context.Context, id uint64) (*entities.QaSample, error)
	FindByRequestNo(ctx context.Context, requestNo string) (*entities.QaSample, error)
	CreateQaSample(ctx context.Context, sample entities.QaSample) (*entities.QaSample, error)
	UpdateQaSample(ctx context.Context, id uint64, mutate func(entities.QaSample) entities.QaSample) (*entities.QaSample, error)
	DeleteQaSample(ctx context.Context, id uint64) error
}

type QaSampleRepository struct {
	storage *memstore.Collection[entities.QaSample]
}

func NewQaSampleRepository(seq *memstore.Sequence) QaSampleRepositoryInterface {
	return &QaSampleRepository{storage: memstore.NewCollection[entities.QaSample](seq)}
}

func (r *QaSampleRepository) GetQaSamples(ctx context.Context, status string) ([]entities.QaSample, error) {
	samples := make([]entities.QaSample, 0)
	for _, sample := range r.storage.All() {
		if status == "" || sample.Status == status {
			samples = append(samples, sample)
		}
	}
	return samples, nil
}

func (r *QaSampleRepository) FindQaSample(ctx context.Context, id uint64) (*entities.QaSample, error) {
	sample, ok := r.storage.Get(id)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &sample, nil
}

func (r *QaSampleRepository) FindByRequestNo(ctx context.Context, requestNo string) (*entities.QaSample, error) {
	for _, sample := range r.storage.All() {
		if sample.RequestNo == requestNo {
			return &sample, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *QaSampleRepository) CreateQaSample(ctx context.Context, sample entities.QaSample) (*entities.QaSample, error) {
	now := time.Now()
	created := r.storage.Insert(func(id uint64) entities.QaSample {
		sample.ID = id
		sample.CreatedAt = now
		sample.UpdatedAt = now
		return sample
	})
	return &created, nil
}

func (r *QaSampleRepository) UpdateQaSample(ctx context.Context, id uint64, mutate func(entities.QaSample) entities.QaSample) (*entities.QaSample, error) {
	updated, ok := r.storage.Replace(id, func(current entities.QaSample) entities.QaSample {
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

func (r *QaSampleRepository) DeleteQaSample(ctx context.Context, id uint64) error {
	if !r.storage.Delete(id) {
		return apperrors.ErrNotFound
	}
	return nil
}

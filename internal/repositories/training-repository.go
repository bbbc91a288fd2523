package repositories

import (
	"context"
	"time"

	"lab-system/internal/entities"
	"lab-system/internal/memstore"
	apperrors "lab-system/pkg/errors"
)

type TrainingRepositoryInterface interface {
	GetTrainings(ctx context.Context) ([]entities.Training, error)
	FindTraining(ctx context.Context, id uint64) (*entities.Training, error)
	CreateTraining(ctx context.Context, training entities.Training) (*entities.Training, error)
	UpdateTraining(ctx context.Context, id uint64, mutate func(entities.Training) entities.Training) (*entities.Training, error)
	DeleteTraining(ctx context.Context, id uint64) error
}

type TrainingRepository struct {
	storage *memstore.Collection[entities.Training]
}

func NewTrainingRepository(seq *memstore.Sequence) TrainingRepositoryInterface {
	return &TrainingRepository{storage: memstore.NewCollection[entities.Training](seq)}
}

func (r *TrainingRepository) GetTrainings(ctx context.Context) ([]entities.Training, error) {
	return r.storage.All(), nil
}

func (r *TrainingRepository) FindTraining(ctx context.Context, id uint64) (*entities.Training, error) {
	training, ok := r.storage.Get(id)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &training, nil
}

func (r *TrainingRepository) CreateTraining(ctx context.Context, training entities.Training) (*entities.Training, error) {
	now := time.Now()
	created := r.storage.Insert(func(id uint64) entities.Training {
		training.ID = id
		training.CreatedAt = now
		training.UpdatedAt = now
		return training
	})
	return &created, nil
}

func (r *TrainingRepository) UpdateTraining(ctx context.Context, id uint64, mutate func(entities.Training) entities.Training) (*entities.Training, error) {
	updated, ok := r.storage.Replace(id, func(current entities.Training) entities.Training {
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

func (r *TrainingRepository) DeleteTraining(ctx context.Context, id uint64) error {
	if !r.storage.Delete(id) {
		return apperrors.ErrNotFound
	}
	return nil
}

package repositories

import (
	"context"
	"time"

	"lab-system/internal/entities"
	"lab-system/internal/memstore"
	apperrors "lab-system/pkg/errors"
)

type TaskRepositoryInterface interface {
	GetTasks(ctx context.Context, status string) ([]entities.Task, error)
	FindTask(ctx context.Context, id uint64) (*entities.Task, error)
	CreateTask(ctx context.Context, task entities.Task) (*entities.Task, error)
	UpdateTask(ctx context.Context, id uint64, mutate func(entities.Task) entities.Task) (*entities.Task, error)
	DeleteTask(ctx context.Context, id uint64) error
}

type TaskRepository struct {
	storage *memstore.Collection[entities.Task]
}

func NewTaskRepository(seq *memstore.Sequence) TaskRepositoryInterface {
	return &TaskRepository{storage: memstore.NewCollection[entities.Task](seq)}
}

func (r *TaskRepository) GetTasks(ctx context.Context, status string) ([]entities.Task, error) {
	tasks := make([]entities.Task, 0)
	for _, task := range r.storage.All() {
		if status == "" || task.Status == status {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

func (r *TaskRepository) FindTask(ctx context.Context, id uint64) (*entities.Task, error) {
	task, ok := r.storage.Get(id)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &task, nil
}

func (r *TaskRepository) CreateTask(ctx context.Context, task entities.Task) (*entities.Task, error) {
	now := time.Now()
	created := r.storage.Insert(func(id uint64) entities.Task {
		task.ID = id
		task.CreatedAt = now
		task.UpdatedAt = now
		return task
	})
	return &created, nil
}

func (r *TaskRepository) UpdateTask(ctx context.Context, id uint64, mutate func(entities.Task) entities.Task) (*entities.Task, error) {
	updated, ok := r.storage.Replace(id, func(current entities.Task) entities.Task {
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

func (r *TaskRepository) DeleteTask(ctx context.Context, id uint64) error {
	if !r.storage.Delete(id) {
		return apperrors.ErrNotFound
	}
	return nil
}

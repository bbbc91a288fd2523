package repositories

import (
	"context"
	"time"

	"lab-system/internal/entities"
	"lab-system/internal/memstore"
	apperrors "lab-system/pkg/errors"
)

type ToolRepositoryInterface interface {
	GetTools(ctx context.Context) ([]entities.Tool, error)
	FindTool(ctx context.Context, id uint64) (*entities.Tool, error)
	FindByCode(ctx context.Context, code string) (*entities.Tool, error)
	FindByName(ctx context.Context, name string) ([]entities.Tool, error)
	CreateTool(ctx context.Context, tool entities.Tool) (*entities.Tool, error)
	UpdateTool(ctx context.Context, id uint64, mutate func(entities.Tool) entities.Tool) (*entities.Tool, error)
	DeleteTool(ctx context.Context, id uint64) error
}

type ToolRepository struct {
	storage *memstore.Collection[entities.Tool]
}

func NewToolRepository(seq *memstore.Sequence) ToolRepositoryInterface {
	return &ToolRepository{storage: memstore.NewCollection[entities.Tool](seq)}
}

func (r *ToolRepository) GetTools(ctx context.Context) ([]entities.Tool, error) {
	return r.storage.All(), nil
}

func (r *ToolRepository) FindTool(ctx context.Context, id uint64) (*entities.Tool, error) {
	tool, ok := r.storage.Get(id)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &tool, nil
}

func (r *ToolRepository) FindByCode(ctx context.Context, code string) (*entities.Tool, error) {
	for _, tool := range r.storage.All() {
		if tool.Code == code {
			return &tool, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *ToolRepository) FindByName(ctx context.Context, name string) ([]entities.Tool, error) {
	tools := make([]entities.Tool, 0)
	for _, tool := range r.storage.All() {
		if tool.Name == name {
			tools = append(tools, tool)
		}
	}
	return tools, nil
}

func (r *ToolRepository) CreateTool(ctx context.Context, tool entities.Tool) (*entities.Tool, error) {
	now := time.Now()
	created := r.storage.Insert(func(id uint64) entities.Tool {
		tool.ID = id
		tool.CreatedAt = now
		tool.UpdatedAt = now
		return tool
	})
	return &created, nil
}

func (r *ToolRepository) UpdateTool(ctx context.Context, id uint64, mutate func(entities.Tool) entities.Tool) (*entities.Tool, error) {
	updated, ok := r.storage.Replace(id, func(current entities.Tool) entities.Tool {
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

func (r *ToolRepository) DeleteTool(ctx context.Context, id uint64) error {
	if !r.storage.Delete(id) {
		return apperrors.ErrNotFound
	}
	return nil
}

package repositories

import (
	"context"
	"time"

	"lab-system/internal/entities"
	"lab-system/internal/memstore"
	apperrors "lab-system/pkg/errors"
)

type GlasswareRepositoryInterface interface {
	GetGlassware(ctx context.Context) ([]entities.Glassware, error)
	FindGlassware(ctx context.Context, id uint64) (*entities.Glassware, error)
	FindByCode(ctx context.Context, code string) (*entities.Glassware, error)
	FindByType(ctx context.Context, glasswareType string) ([]entities.Glassware, error)
	CreateGlassware(ctx context.Context, item entities.Glassware) (*entities.Glassware, error)
	UpdateGlassware(ctx context.Context, id uint64, mutate func(entities.Glassware) entities.Glassware) (*entities.Glassware, error)
	DeleteGlassware(ctx context.Context, id uint64) error
}

type GlasswareRepository struct {
	storage *memstore.Collection[entities.Glassware]
}

func NewGlasswareRepository(seq *memstore.Sequence) GlasswareRepositoryInterface {
	return &GlasswareRepository{storage: memstore.NewCollection[entities.Glassware](seq)}
}

func (r *GlasswareRepository) GetGlassware(ctx context.Context) ([]entities.Glassware, error) {
	return r.storage.All(), nil
}

func (r *GlasswareRepository) FindGlassware(ctx context.Context, id uint64) (*entities.Glassware, error) {
	item, ok := r.storage.Get(id)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &item, nil
}

func (r *GlasswareRepository) FindByCode(ctx context.Context, code string) (*entities.Glassware, error) {
	for _, item := range r.storage.All() {
		if item.Code == code {
			return &item, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *GlasswareRepository) FindByType(ctx context.Context, glasswareType string) ([]entities.Glassware, error) {
	items := make([]entities.Glassware, 0)
	for _, item := range r.storage.All() {
		if item.Type == glasswareType {
			items = append(items, item)
		}
	}
	return items, nil
}

func (r *GlasswareRepository) CreateGlassware(ctx context.Context, item entities.Glassware) (*entities.Glassware, error) {
	now := time.Now()
	created := r.storage.Insert(func(id uint64) entities.Glassware {
		item.ID = id
		item.CreatedAt = now
		item.UpdatedAt = now
		return item
	})
	return &created, nil
}

func (r *GlasswareRepository) UpdateGlassware(ctx context.Context, id uint64, mutate func(entities.Glassware) entities.Glassware) (*entities.Glassware, error) {
	updated, ok := r.storage.Replace(id, func(current entities.Glassware) entities.Glassware {
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

func (r *GlasswareRepository) DeleteGlassware(ctx context.Context, id uint64) error {
	if !r.storage.Delete(id) {
		return apperrors.ErrNotFound
	}
	return nil
}

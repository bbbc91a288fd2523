package repositories

import (
	"context"
	"time"

	"lab-system/internal/entities"
	"lab-system/internal/memstore"
	apperrors "lab-system/pkg/errors"
)

type MsdsRepositoryInterface interface {
	GetMsds(ctx context.Context, category string) ([]entities.Msds, error)
	FindMsds(ctx context.Context, id uint64) (*entities.Msds, error)
	CreateMsds(ctx context.Context, sheet entities.Msds) (*entities.Msds, error)
	UpdateMsds(ctx context.Context, id uint64, mutate func(entities.Msds) entities.Msds) (*entities.Msds, error)
	DeleteMsds(ctx context.Context, id uint64) error
}

type MsdsRepository struct {
	storage *memstore.Collection[entities.Msds]
}

func NewMsdsRepository(seq *memstore.Sequence) MsdsRepositoryInterface {
	return &MsdsRepository{storage: memstore.NewCollection[entities.Msds](seq)}
}

func (r *MsdsRepository) GetMsds(ctx context.Context, category string) ([]entities.Msds, error) {
	sheets := make([]entities.Msds, 0)
	for _, sheet := range r.storage.All() {
		if category == "" || sheet.Category == category {
			sheets = append(sheets, sheet)
		}
	}
	return sheets, nil
}

func (r *MsdsRepository) FindMsds(ctx context.Context, id uint64) (*entities.Msds, error) {
	sheet, ok := r.storage.Get(id)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &sheet, nil
}

func (r *MsdsRepository) CreateMsds(ctx context.Context, sheet entities.Msds) (*entities.Msds, error) {
	now := time.Now()
	created := r.storage.Insert(func(id uint64) entities.Msds {
		sheet.ID = id
		sheet.CreatedAt = now
		sheet.UpdatedAt = now
		return sheet
	})
	return &created, nil
}

func (r *MsdsRepository) UpdateMsds(ctx context.Context, id uint64, mutate func(entities.Msds) entities.Msds) (*entities.Msds, error) {
	updated, ok := r.storage.Replace(id, func(current entities.Msds) entities.Msds {
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

func (r *MsdsRepository) DeleteMsds(ctx context.Context, id uint64) error {
	if !r.storage.Delete(id) {
		return apperrors.ErrNotFound
	}
	return nil
}

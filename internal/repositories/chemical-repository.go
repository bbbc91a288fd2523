package repositories

import (
	"context"
	"time"

	"lab-system/internal/entities"
	"lab-system/internal/memstore"
	apperrors "lab-system/pkg/errors"
)

type ChemicalRepositoryInterface interface {
	GetChemicals(ctx context.Context, category string) ([]entities.Chemical, error)
	FindChemical(ctx context.Context, id uint64) (*entities.Chemical, error)
	FindByCode(ctx context.Context, code string) (*entities.Chemical, error)
	CreateChemical(ctx context.Context, chemical entities.Chemical) (*entities.Chemical, error)
	UpdateChemical(ctx context.Context, id uint64, mutate func(entities.Chemical) entities.Chemical) (*entities.Chemical, error)
	DeleteChemical(ctx context.Context, id uint64) error
}

type ChemicalRepository struct {
	storage *memstore.Collection[entities.Chemical]
}

func NewChemicalRepository(seq *memstore.Sequence) ChemicalRepositoryInterface {
	return &ChemicalRepository{storage: memstore.NewCollection[entities.Chemical](seq)}
}

// GetChemicals filters by category when one is given.
func (r *ChemicalRepository) GetChemicals(ctx context.Context, category string) ([]entities.Chemical, error) {
	chemicals := make([]entities.Chemical, 0)
	for _, chemical := range r.storage.All() {
		if category == "" || chemical.Category == category {
			chemicals = append(chemicals, chemical)
		}
	}
	return chemicals, nil
}

func (r *ChemicalRepository) FindChemical(ctx context.Context, id uint64) (*entities.Chemical, error) {
	chemical, ok := r.storage.Get(id)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &chemical, nil
}

func (r *ChemicalRepository) FindByCode(ctx context.Context, code string) (*entities.Chemical, error) {
	for _, chemical := range r.storage.All() {
		if chemical.Code == code {
			return &chemical, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *ChemicalRepository) CreateChemical(ctx context.Context, chemical entities.Chemical) (*entities.Chemical, error) {
	now := time.Now()
	created := r.storage.Insert(func(id uint64) entities.Chemical {
		chemical.ID = id
		chemical.CreatedAt = now
		chemical.UpdatedAt = now
		return chemical
	})
	return &created, nil
}

func (r *ChemicalRepository) UpdateChemical(ctx context.Context, id uint64, mutate func(entities.Chemical) entities.Chemical) (*entities.Chemical, error) {
	updated, ok := r.storage.Replace(id, func(current entities.Chemical) entities.Chemical {
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

func (r *ChemicalRepository) DeleteChemical(ctx context.Context, id uint64) error {
	if !r.storage.Delete(id) {
		return apperrors.ErrNotFound
	}
	return nil
}

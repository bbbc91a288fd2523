package repositories

import (
	"context"
	"time"

	"lab-system/internal/entities"
	"lab-system/internal/memstore"
	apperrors "lab-system/pkg/errors"
)

type DocumentRepositoryInterface interface {
	GetDocuments(ctx context.Context, category string) ([]entities.Document, error)
	FindDocument(ctx context.Context, id uint64) (*entities.Document, error)
	FindByCode(ctx context.Context, code string) (*entities.Document, error)
	CreateDocument(ctx context.Context, document entities.Document) (*entities.Document, error)
	UpdateDocument(ctx context.Context, id uint64, mutate func(entities.Document) entities.Document) (*entities.Document, error)
	DeleteDocument(ctx context.Context, id uint64) error
}

type DocumentRepository struct {
	storage *memstore.Collection[entities.Document]
}

func NewDocumentRepository(seq *memstore.Sequence) DocumentRepositoryInterface {
	return &DocumentRepository{storage: memstore.NewCollection[entities.Document](seq)}
}

func (r *DocumentRepository) GetDocuments(ctx context.Context, category string) ([]entities.Document, error) {
	documents := make([]entities.Document, 0)
	for _, document := range r.storage.All() {
		if category == "" || document.Category == category {
			documents = append(documents, document)
		}
	}
	return documents, nil
}

func (r *DocumentRepository) FindDocument(ctx context.Context, id uint64) (*entities.Document, error) {
	document, ok := r.storage.Get(id)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &document, nil
}

func (r *DocumentRepository) FindByCode(ctx context.Context, code string) (*entities.Document, error) {
	for _, document := range r.storage.All() {
		if document.Code == code {
			return &document, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *DocumentRepository) CreateDocument(ctx context.Context, document entities.Document) (*entities.Document, error) {
	now := time.Now()
	created := r.storage.Insert(func(id uint64) entities.Document {
		document.ID = id
		document.CreatedAt = now
		document.UpdatedAt = now
		return document
	})
	return &created, nil
}

func (r *DocumentRepository) UpdateDocument(ctx context.Context, id uint64, mutate func(entities.Document) entities.Document) (*entities.Document, error) {
	updated, ok := r.storage.Replace(id, func(current entities.Document) entities.Document {
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

func (r *DocumentRepository) DeleteDocument(ctx context.Context, id uint64) error {
	if !r.storage.Delete(id) {
		return apperrors.ErrNotFound
	}
	return nil
}

package services

import (
	"context"

	"lab-system/internal/dto"
	"lab-system/internal/entities"
	"lab-system/internal/repositories"
	apperrors "lab-system/pkg/errors"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"
)

type DocumentServiceInterface interface {
	GetDocuments(ctx context.Context, category string) ([]entities.Document, error)
	FindDocument(ctx context.Context, id uint64) (*entities.Document, error)
	CreateDocument(ctx context.Context, createDTO dto.CreateDocumentDTO) (*entities.Document, error)
	UpdateDocument(ctx context.Context, id uint64, updateDTO dto.UpdateDocumentDTO) (*entities.Document, error)
	DeleteDocument(ctx context.Context, id uint64) error
}

type DocumentService struct {
	repo   repositories.DocumentRepositoryInterface
	logger *zap.Logger
}

func NewDocumentService(repo repositories.DocumentRepositoryInterface, logger *zap.Logger) DocumentServiceInterface {
	return &DocumentService{repo: repo, logger: logger}
}

func (s *DocumentService) GetDocuments(ctx context.Context, category string) ([]entities.Document, error) {
	return s.repo.GetDocuments(ctx, category)
}

func (s *DocumentService) FindDocument(ctx context.Context, id uint64) (*entities.Document, error) {
	return s.repo.FindDocument(ctx, id)
}

func (s *DocumentService) CreateDocument(ctx context.Context, createDTO dto.CreateDocumentDTO) (*entities.Document, error) {
	if existing, err := s.repo.FindByCode(ctx, createDTO.Code); err == nil && existing != nil {
		return nil, apperrors.ErrCodeTaken
	}

	document := entities.Document{
		Code:          createDTO.Code,
		Title:         createDTO.Title,
		Category:      createDTO.Category,
		Version:       createDTO.Version,
		EffectiveDate: createDTO.EffectiveDate,
		ReviewDate:    createDTO.ReviewDate,
		FilePath:      createDTO.FilePath,
		Notes:         createDTO.Notes,
	}

	return s.repo.CreateDocument(ctx, document)
}

func (s *DocumentService) UpdateDocument(ctx context.Context, id uint64, updateDTO dto.UpdateDocumentDTO) (*entities.Document, error) {
	if updateDTO.Code != nil {
		if existing, err := s.repo.FindByCode(ctx, *updateDTO.Code); err == nil && existing != nil && existing.ID != id {
			return nil, apperrors.ErrCodeTaken
		}
	}

	return s.repo.UpdateDocument(ctx, id, func(current entities.Document) entities.Document {
		merged := current
		if updateDTO.Code != nil {
			merged.Code = *updateDTO.Code
		}
		if updateDTO.Title != nil {
			merged.Title = *updateDTO.Title
		}
		if updateDTO.Category != nil {
			merged.Category = *updateDTO.Category
		}
		if updateDTO.Version != nil {
			merged.Version = null.StringFrom(*updateDTO.Version)
		}
		if updateDTO.EffectiveDate != nil {
			merged.EffectiveDate = null.StringFrom(*updateDTO.EffectiveDate)
		}
		if updateDTO.ReviewDate != nil {
			merged.ReviewDate = null.StringFrom(*updateDTO.ReviewDate)
		}
		if updateDTO.FilePath != nil {
			merged.FilePath = null.StringFrom(*updateDTO.FilePath)
		}
		if updateDTO.Notes != nil {
			merged.Notes = null.StringFrom(*updateDTO.Notes)
		}
		return merged
	})
}

func (s *DocumentService) DeleteDocument(ctx context.Context, id uint64) error {
	return s.repo.DeleteDocument(ctx, id)
}

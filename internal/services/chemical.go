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

type ChemicalServiceInterface interface {
	GetChemicals(ctx context.Context, category string) ([]entities.Chemical, error)
	FindChemical(ctx context.Context, id uint64) (*entities.Chemical, error)
	CreateChemical(ctx context.Context, createDTO dto.CreateChemicalDTO) (*entities.Chemical, error)
	UpdateChemical(ctx context.Context, id uint64, updateDTO dto.UpdateChemicalDTO) (*entities.Chemical, error)
	DeleteChemical(ctx context.Context, id uint64) error
}

type ChemicalService struct {
	repo   repositories.ChemicalRepositoryInterface
	logger *zap.Logger
}

func NewChemicalService(repo repositories.ChemicalRepositoryInterface, logger *zap.Logger) ChemicalServiceInterface {
	return &ChemicalService{repo: repo, logger: logger}
}

func (s *ChemicalService) GetChemicals(ctx context.Context, category string) ([]entities.Chemical, error) {
	return s.repo.GetChemicals(ctx, category)
}

func (s *ChemicalService) FindChemical(ctx context.Context, id uint64) (*entities.Chemical, error) {
	return s.repo.FindChemical(ctx, id)
}

func (s *ChemicalService) CreateChemical(ctx context.Context, createDTO dto.CreateChemicalDTO) (*entities.Chemical, error) {
	if existing, err := s.repo.FindByCode(ctx, createDTO.Code); err == nil && existing != nil {
		return nil, apperrors.ErrCodeTaken
	}

	chemical := entities.Chemical{
		Code:         createDTO.Code,
		Name:         createDTO.Name,
		Category:     createDTO.Category,
		Grade:        createDTO.Grade,
		CasNo:        createDTO.CasNo,
		Quantity:     createDTO.Quantity,
		Unit:         createDTO.Unit,
		Location:     createDTO.Location,
		ReceivedDate: createDTO.ReceivedDate,
		ExpiryDate:   createDTO.ExpiryDate,
		Notes:        createDTO.Notes,
	}

	return s.repo.CreateChemical(ctx, chemical)
}

func (s *ChemicalService) UpdateChemical(ctx context.Context, id uint64, updateDTO dto.UpdateChemicalDTO) (*entities.Chemical, error) {
	if updateDTO.Code != nil {
		if existing, err := s.repo.FindByCode(ctx, *updateDTO.Code); err == nil && existing != nil && existing.ID != id {
			return nil, apperrors.ErrCodeTaken
		}
	}

	return s.repo.UpdateChemical(ctx, id, func(current entities.Chemical) entities.Chemical {
		merged := current
		if updateDTO.Code != nil {
			merged.Code = *updateDTO.Code
		}
		if updateDTO.Name != nil {
			merged.Name = *updateDTO.Name
		}
		if updateDTO.Category != nil {
			merged.Category = *updateDTO.Category
		}
		if updateDTO.Grade != nil {
			merged.Grade = null.StringFrom(*updateDTO.Grade)
		}
		if updateDTO.CasNo != nil {
			merged.CasNo = null.StringFrom(*updateDTO.CasNo)
		}
		if updateDTO.Quantity != nil {
			merged.Quantity = null.Float64From(*updateDTO.Quantity)
		}
		if updateDTO.Unit != nil {
			merged.Unit = null.StringFrom(*updateDTO.Unit)
		}
		if updateDTO.Location != nil {
			merged.Location = null.StringFrom(*updateDTO.Location)
		}
		if updateDTO.ReceivedDate != nil {
			merged.ReceivedDate = null.StringFrom(*updateDTO.ReceivedDate)
		}
		if updateDTO.ExpiryDate != nil {
			merged.ExpiryDate = null.StringFrom(*updateDTO.ExpiryDate)
		}
		if updateDTO.Notes != nil {
			merged.Notes = null.StringFrom(*updateDTO.Notes)
		}
		return merged
	})
}

func (s *ChemicalService) DeleteChemical(ctx context.Context, id uint64) error {
	return s.repo.DeleteChemical(ctx, id)
}

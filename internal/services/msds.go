package services

import (
	"context"

	"lab-system/internal/dto"
	"lab-system/internal/entities"
	"lab-system/internal/repositories"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"
)

type MsdsServiceInterface interface {
	GetMsds(ctx context.Context, category string) ([]entities.Msds, error)
	FindMsds(ctx context.Context, id uint64) (*entities.Msds, error)
	CreateMsds(ctx context.Context, createDTO dto.CreateMsdsDTO) (*entities.Msds, error)
	UpdateMsds(ctx context.Context, id uint64, updateDTO dto.UpdateMsdsDTO) (*entities.Msds, error)
	DeleteMsds(ctx context.Context, id uint64) error
}

type MsdsService struct {
	repo   repositories.MsdsRepositoryInterface
	logger *zap.Logger
}

func NewMsdsService(repo repositories.MsdsRepositoryInterface, logger *zap.Logger) MsdsServiceInterface {
	return &MsdsService{repo: repo, logger: logger}
}

func (s *MsdsService) GetMsds(ctx context.Context, category string) ([]entities.Msds, error) {
	return s.repo.GetMsds(ctx, category)
}

func (s *MsdsService) FindMsds(ctx context.Context, id uint64) (*entities.Msds, error) {
	return s.repo.FindMsds(ctx, id)
}

func (s *MsdsService) CreateMsds(ctx context.Context, createDTO dto.CreateMsdsDTO) (*entities.Msds, error) {
	sheet := entities.Msds{
		ChemicalName: createDTO.ChemicalName,
		Category:     createDTO.Category,
		Manufacturer: createDTO.Manufacturer,
		IssuedDate:   createDTO.IssuedDate,
		ReviewDate:   createDTO.ReviewDate,
		FilePath:     createDTO.FilePath,
		Notes:        createDTO.Notes,
	}

	return s.repo.CreateMsds(ctx, sheet)
}

func (s *MsdsService) UpdateMsds(ctx context.Context, id uint64, updateDTO dto.UpdateMsdsDTO) (*entities.Msds, error) {
	return s.repo.UpdateMsds(ctx, id, func(current entities.Msds) entities.Msds {
		merged := current
		if updateDTO.ChemicalName != nil {
			merged.ChemicalName = *updateDTO.ChemicalName
		}
		if updateDTO.Category != nil {
			merged.Category = *updateDTO.Category
		}
		if updateDTO.Manufacturer != nil {
			merged.Manufacturer = null.StringFrom(*updateDTO.Manufacturer)
		}
		if updateDTO.IssuedDate != nil {
			merged.IssuedDate = null.StringFrom(*updateDTO.IssuedDate)
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

func (s *MsdsService) DeleteMsds(ctx context.Context, id uint64) error {
	return s.repo.DeleteMsds(ctx, id)
}

package dto

import "github.com/aarondl/null/v8"

type CreateDocumentDTO struct {
	Code     string `json:"code" validate:"required,max=50"`
	Title    string `json:"title" validate:"required,max=255"`
	Category string `json:"category" validate:"required,max=100"`

	Version       null.String `json:"version"`
	EffectiveDate null.String `json:"effectiveDate" validate:"omitempty,labdate"`
	ReviewDate    null.String `json:"reviewDate" validate:"omitempty,labdate"`
	FilePath      null.String `json:"filePath"`

	Notes null.String `json:"notes"`
}

type UpdateDocumentDTO struct {
	Code     *string `json:"code,omitempty" validate:"omitempty,max=50"`
	Title    *string `json:"title,omitempty" validate:"omitempty,max=255"`
	Category *string `json:"category,omitempty" validate:"omitempty,max=100"`

	Version       *string `json:"version,omitempty"`
	EffectiveDate *string `json:"effectiveDate,omitempty" validate:"omitempty,labdate"`
	ReviewDate    *string `json:"reviewDate,omitempty" validate:"omitempty,labdate"`
	FilePath      *string `json:"filePath,omitempty"`

	Notes *string `json:"notes,omitempty"`
}

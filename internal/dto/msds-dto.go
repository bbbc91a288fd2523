package dto

import "github.com/aarondl/null/v8"

type CreateMsdsDTO struct {
	ChemicalName string `json:"chemicalName" validate:"required,max=255"`
	Category     string `json:"category" validate:"required,max=100"`

	Manufacturer null.String `json:"manufacturer"`
	IssuedDate   null.String `json:"issuedDate" validate:"omitempty,labdate"`
	ReviewDate   null.String `json:"reviewDate" validate:"omitempty,labdate"`
	FilePath     null.String `json:"filePath"`

	Notes null.String `json:"notes"`
}

type UpdateMsdsDTO struct {
	ChemicalName *string `json:"chemicalName,omitempty" validate:"omitempty,max=255"`
	Category     *string `json:"category,omitempty" validate:"omitempty,max=100"`

	Manufacturer *string `json:"manufacturer,omitempty"`
	IssuedDate   *string `json:"issuedDate,omitempty" validate:"omitempty,labdate"`
	ReviewDate   *string `json:"reviewDate,omitempty" validate:"omitempty,labdate"`
	FilePath     *string `json:"filePath,omitempty"`

	Notes *string `json:"notes,omitempty"`
}

package dto

import "github.com/aarondl/null/v8"

type CreateChemicalDTO struct {
	Code     string `json:"code" validate:"required,max=50"`
	Name     string `json:"name" validate:"required,max=255"`
	Category string `json:"category" validate:"required,max=100"`

	Grade    null.String  `json:"grade"`
	CasNo    null.String  `json:"casNo"`
	Quantity null.Float64 `json:"quantity" validate:"omitempty,gte=0"`
	Unit     null.String  `json:"unit"`
	Location null.String  `json:"location"`

	ReceivedDate null.String `json:"receivedDate" validate:"omitempty,labdate"`
	ExpiryDate   null.String `json:"expiryDate" validate:"omitempty,labdate"`

	Notes null.String `json:"notes"`
}

type UpdateChemicalDTO struct {
	Code     *string `json:"code,omitempty" validate:"omitempty,max=50"`
	Name     *string `json:"name,omitempty" validate:"omitempty,max=255"`
	Category *string `json:"category,omitempty" validate:"omitempty,max=100"`

	Grade    *string  `json:"grade,omitempty"`
	CasNo    *string  `json:"casNo,omitempty"`
	Quantity *float64 `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	Unit     *string  `json:"unit,omitempty"`
	Location *string  `json:"location,omitempty"`

	ReceivedDate *string `json:"receivedDate,omitempty" validate:"omitempty,labdate"`
	ExpiryDate   *string `json:"expiryDate,omitempty" validate:"omitempty,labdate"`

	Notes *string `json:"notes,omitempty"`
}

package dto

import "github.com/aarondl/null/v8"

type TestItemDTO struct {
	TestType string `json:"testType" validate:"required,oneof=Appearance pH ActiveIngredient Density Re-emulsification Persistence-foaming Aging Moisture Viscosity FormulaTest"`

	Result null.String `json:"result"`

	Ph1 null.Float64 `json:"ph1" validate:"omitempty,gte=0,lte=14"`
	Ph2 null.Float64 `json:"ph2" validate:"omitempty,gte=0,lte=14"`

	SampleName null.String  `json:"sampleName"`
	Active1    null.Float64 `json:"active1" validate:"omitempty,gte=0"`
	Active2    null.Float64 `json:"active2" validate:"omitempty,gte=0"`
	Active3    null.Float64 `json:"active3" validate:"omitempty,gte=0"`

	Density   null.Float64 `json:"density" validate:"omitempty,gte=0"`
	Moisture  null.Float64 `json:"moisture" validate:"omitempty,gte=0"`
	Viscosity null.Float64 `json:"viscosity" validate:"omitempty,gte=0"`

	Remarks null.String `json:"remarks"`
}

type CreateQaTestResultDTO struct {
	RequestNo string `json:"requestNo" validate:"required,max=100"`
	SampleNo  string `json:"sampleNo" validate:"required,max=100"`

	TestDate null.String `json:"testDate" validate:"omitempty,labdate"`
	TestedBy null.String `json:"testedBy"`

	Items []TestItemDTO `json:"items" validate:"required,min=1,dive"`
}

type UpdateQaTestResultDTO struct {
	RequestNo *string `json:"requestNo,omitempty" validate:"omitempty,max=100"`
	SampleNo  *string `json:"sampleNo,omitempty" validate:"omitempty,max=100"`

	TestDate *string `json:"testDate,omitempty" validate:"omitempty,labdate"`
	TestedBy *string `json:"testedBy,omitempty"`

	// A non-nil slice replaces the test items wholesale.
	Items *[]TestItemDTO `json:"items,omitempty" validate:"omitempty,min=1,dive"`
}

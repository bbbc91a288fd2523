package dto

import "github.com/aarondl/null/v8"

type ItemTestDTO struct {
	Name          string      `json:"name" validate:"required,max=255"`
	Specification null.String `json:"specification"`
	Unit          null.String `json:"unit"`
	Method        null.String `json:"method"`
}

type SampleDTO struct {
	SampleNo        string        `json:"sampleNo" validate:"required,max=100"`
	Names           []string      `json:"names" validate:"required,min=1,dive,required"`
	Description     null.String   `json:"description"`
	AnalysisRequest null.String   `json:"analysisRequest"`
	ItemTests       []ItemTestDTO `json:"itemTests" validate:"omitempty,dive"`
}

type CreateQaSampleDTO struct {
	// Left blank, a request number is generated.
	RequestNo string `json:"requestNo" validate:"omitempty,max=100"`

	CustomerName    string      `json:"customerName" validate:"required,max=255"`
	CustomerContact null.String `json:"customerContact"`
	DeliveryMethod  null.String `json:"deliveryMethod"`
	Storage         null.String `json:"storage"`
	PostTesting     null.String `json:"postTesting"`
	Condition       null.String `json:"condition"`

	ReceivedDate string      `json:"receivedDate" validate:"required,labdate"`
	DueDate      null.String `json:"dueDate" validate:"omitempty,labdate"`

	Samples []SampleDTO `json:"samples" validate:"required,min=1,dive"`
}

type UpdateQaSampleDTO struct {
	Status *string `json:"status,omitempty" validate:"omitempty,qastatus"`

	CustomerName    *string `json:"customerName,omitempty" validate:"omitempty,max=255"`
	CustomerContact *string `json:"customerContact,omitempty"`
	DeliveryMethod  *string `json:"deliveryMethod,omitempty"`
	Storage         *string `json:"storage,omitempty"`
	PostTesting     *string `json:"postTesting,omitempty"`
	Condition       *string `json:"condition,omitempty"`

	ReceivedDate *string `json:"receivedDate,omitempty" validate:"omitempty,labdate"`
	DueDate      *string `json:"dueDate,omitempty" validate:"omitempty,labdate"`

	// A non-nil slice replaces the sample list wholesale.
	Samples *[]SampleDTO `json:"samples,omitempty" validate:"omitempty,min=1,dive"`
}

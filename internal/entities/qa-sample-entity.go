package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// ItemTest is a single requested test against a sample. Like Subtask it has
// no identity of its own.
type ItemTest struct {
	Name          string      `json:"name"`
	Specification null.String `json:"specification"`
	Unit          null.String `json:"unit"`
	Method        null.String `json:"method"`
}

// Sample is one physical sample inside an intake request. A sample can carry
// several display names when the customer ships blends under multiple labels.
type Sample struct {
	SampleNo        string      `json:"sampleNo"`
	Names           []string    `json:"names"`
	Description     null.String `json:"description"`
	AnalysisRequest null.String `json:"analysisRequest"`
	ItemTests       []ItemTest  `json:"itemTests"`
}

// QaSample is a customer intake request. Status walks the fixed path
// received -> testing -> completed -> delivered.
type QaSample struct {
	ID        uint64 `json:"id"`
	RequestNo string `json:"requestNo"`
	Status    string `json:"status"`

	CustomerName    string      `json:"customerName"`
	CustomerContact null.String `json:"customerContact"`
	DeliveryMethod  null.String `json:"deliveryMethod"`
	Storage         null.String `json:"storage"`
	PostTesting     null.String `json:"postTesting"`
	Condition       null.String `json:"condition"`

	ReceivedDate string      `json:"receivedDate"`
	DueDate      null.String `json:"dueDate"`

	Samples []Sample `json:"samples"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

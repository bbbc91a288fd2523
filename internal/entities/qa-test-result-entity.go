package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Test item variants keyed by TestItem.TestType.
const (
	TestTypeAppearance         = "Appearance"
	TestTypePh                 = "pH"
	TestTypeActiveIngredient   = "ActiveIngredient"
	TestTypeDensity            = "Density"
	TestTypeReemulsification   = "Re-emulsification"
	TestTypePersistenceFoaming = "Persistence-foaming"
	TestTypeAging              = "Aging"
	TestTypeMoisture           = "Moisture"
	TestTypeViscosity          = "Viscosity"
	TestTypeFormulaTest        = "FormulaTest"
)

// TestItem is a tagged variant: TestType decides which of the optional field
// groups carries data. PhAverage and ActiveAverage are derived server-side
// and overwritten on every write.
type TestItem struct {
	TestType string `json:"testType"`

	// Free-text outcome used by Appearance, Re-emulsification,
	// Persistence-foaming, Aging and FormulaTest.
	Result null.String `json:"result"`

	// pH replicate pair.
	Ph1       null.Float64 `json:"ph1"`
	Ph2       null.Float64 `json:"ph2"`
	PhAverage null.Float64 `json:"phAverage"`

	// Active-ingredient replicates; SampleName says which display name of a
	// multi-name sample the readings belong to.
	SampleName    null.String  `json:"sampleName"`
	Active1       null.Float64 `json:"active1"`
	Active2       null.Float64 `json:"active2"`
	Active3       null.Float64 `json:"active3"`
	ActiveAverage null.Float64 `json:"activeAverage"`

	// Single-reading variants.
	Density   null.Float64 `json:"density"`
	Moisture  null.Float64 `json:"moisture"`
	Viscosity null.Float64 `json:"viscosity"`

	Remarks null.String `json:"remarks"`
}

// QaTestResult references its sample by requestNo + sampleNo rather than by
// the intake request's generated id, so results can be edited independently
// of (and outlive) the originating request.
type QaTestResult struct {
	ID        uint64 `json:"id"`
	RequestNo string `json:"requestNo"`
	SampleNo  string `json:"sampleNo"`

	TestDate null.String `json:"testDate"`
	TestedBy null.String `json:"testedBy"`

	Items []TestItem `json:"items"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

package services

import (
	"context"
	"testing"

	"lab-system/internal/dto"
	"lab-system/internal/entities"
	"lab-system/internal/memstore"
	"lab-system/internal/repositories"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newQaTestResultServiceForTest() QaTestResultServiceInterface {
	return NewQaTestResultService(repositories.NewQaTestResultRepository(memstore.NewSequence()), zap.NewNop())
}

func TestCreateQaTestResultDerivesAverages(t *testing.T) {
	svc := newQaTestResultServiceForTest()

	created, err := svc.CreateQaTestResult(context.Background(), dto.CreateQaTestResultDTO{
		RequestNo: "QA-2024-001",
		SampleNo:  "S-01",
		TestDate:  null.StringFrom("2024-03-05"),
		Items: []dto.TestItemDTO{
			{
				TestType: entities.TestTypePh,
				Ph1:      null.Float64From(6.8),
				Ph2:      null.Float64From(7.0),
			},
			{
				TestType:   entities.TestTypeActiveIngredient,
				SampleName: null.StringFrom("Glyphosate 48%"),
				Active1:    null.Float64From(47.8),
				Active2:    null.Float64From(48.2),
			},
			{
				TestType: entities.TestTypeAppearance,
				Result:   null.StringFrom("ของเหลวสีเหลืองใส"),
			},
		},
	})
	require.NoError(t, err)
	require.Len(t, created.Items, 3)

	assert.InDelta(t, 6.9, created.Items[0].PhAverage.Float64, 1e-9)
	// Two of three replicates present: average over the present ones.
	assert.InDelta(t, 48.0, created.Items[1].ActiveAverage.Float64, 1e-9)
	assert.False(t, created.Items[2].PhAverage.Valid)
	assert.False(t, created.Items[2].ActiveAverage.Valid)
}

func TestUpdateQaTestResultRecomputesAverages(t *testing.T) {
	svc := newQaTestResultServiceForTest()
	ctx := context.Background()

	created, err := svc.CreateQaTestResult(ctx, dto.CreateQaTestResultDTO{
		RequestNo: "QA-2024-001",
		SampleNo:  "S-01",
		Items: []dto.TestItemDTO{
			{TestType: entities.TestTypePh, Ph1: null.Float64From(6.0), Ph2: null.Float64From(6.4)},
		},
	})
	require.NoError(t, err)
	assert.InDelta(t, 6.2, created.Items[0].PhAverage.Float64, 1e-9)

	replacement := []dto.TestItemDTO{
		{TestType: entities.TestTypePh, Ph1: null.Float64From(7.0), Ph2: null.Float64From(7.2)},
	}
	updated, err := svc.UpdateQaTestResult(ctx, created.ID, dto.UpdateQaTestResultDTO{Items: &replacement})
	require.NoError(t, err)
	assert.InDelta(t, 7.1, updated.Items[0].PhAverage.Float64, 1e-9)
}

func TestGetQaTestResultsFilterByRequestNo(t *testing.T) {
	svc := newQaTestResultServiceForTest()
	ctx := context.Background()

	_, err := svc.CreateQaTestResult(ctx, dto.CreateQaTestResultDTO{
		RequestNo: "QA-2024-001",
		SampleNo:  "S-01",
		Items:     []dto.TestItemDTO{{TestType: entities.TestTypeDensity, Density: null.Float64From(1.12)}},
	})
	require.NoError(t, err)

	_, err = svc.CreateQaTestResult(ctx, dto.CreateQaTestResultDTO{
		RequestNo: "QA-2024-002",
		SampleNo:  "S-01",
		Items:     []dto.TestItemDTO{{TestType: entities.TestTypeMoisture, Moisture: null.Float64From(0.4)}},
	})
	require.NoError(t, err)

	results, err := svc.GetQaTestResults(ctx, "QA-2024-001")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "QA-2024-001", results[0].RequestNo)

	all, err := svc.GetQaTestResults(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

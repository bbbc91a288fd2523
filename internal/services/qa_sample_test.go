package services

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"lab-system/internal/dto"
	"lab-system/internal/memstore"
	"lab-system/internal/repositories"
	"lab-system/pkg/constants"
	apperrors "lab-system/pkg/errors"
	"lab-system/pkg/utils"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newQaSampleServiceForTest() QaSampleServiceInterface {
	return NewQaSampleService(repositories.NewQaSampleRepository(memstore.NewSequence()), zap.NewNop())
}

func intakeDTO() dto.CreateQaSampleDTO {
	return dto.CreateQaSampleDTO{
		CustomerName: "บริษัท เคมีเกษตร จำกัด",
		ReceivedDate: "2024-03-01",
		DueDate:      null.StringFrom("2024-03-10"),
		Samples: []dto.SampleDTO{
			{SampleNo: "S-01", Names: []string{"Glyphosate 48%"}},
		},
	}
}

func TestCreateQaSampleGeneratesRequestNo(t *testing.T) {
	svc := newQaSampleServiceForTest()

	created, err := svc.CreateQaSample(context.Background(), intakeDTO())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(created.RequestNo, "QA-"))
	assert.Equal(t, constants.QaStatusReceived, created.Status)
	require.Len(t, created.Samples, 1)
	assert.Equal(t, "S-01", created.Samples[0].SampleNo)
}

func TestCreateQaSampleKeepsExplicitRequestNo(t *testing.T) {
	svc := newQaSampleServiceForTest()

	in := intakeDTO()
	in.RequestNo = "QA-2024-001"
	created, err := svc.CreateQaSample(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "QA-2024-001", created.RequestNo)

	_, err = svc.CreateQaSample(context.Background(), in)
	assert.ErrorIs(t, err, apperrors.ErrCodeTaken)
}

func TestCreateQaSampleRejectsDueBeforeReceived(t *testing.T) {
	svc := newQaSampleServiceForTest()

	in := intakeDTO()
	in.DueDate = null.StringFrom("2024-02-28")
	_, err := svc.CreateQaSample(context.Background(), in)
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestUpdateQaSampleStatusTransitions(t *testing.T) {
	svc := newQaSampleServiceForTest()
	ctx := context.Background()

	created, err := svc.CreateQaSample(ctx, intakeDTO())
	require.NoError(t, err)

	// Skipping a step is rejected.
	_, err = svc.UpdateQaSample(ctx, created.ID, dto.UpdateQaSampleDTO{Status: utils.StringPtr(constants.QaStatusCompleted)})
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)

	// Walking the fixed path works.
	for _, status := range []string{constants.QaStatusTesting, constants.QaStatusCompleted, constants.QaStatusDelivered} {
		updated, err := svc.UpdateQaSample(ctx, created.ID, dto.UpdateQaSampleDTO{Status: utils.StringPtr(status)})
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}

	// Delivered is terminal.
	_, err = svc.UpdateQaSample(ctx, created.ID, dto.UpdateQaSampleDTO{Status: utils.StringPtr(constants.QaStatusReceived)})
	assert.Error(t, err)
}

func TestUpdateQaSampleSameStatusIsNoopTransition(t *testing.T) {
	svc := newQaSampleServiceForTest()
	ctx := context.Background()

	created, err := svc.CreateQaSample(ctx, intakeDTO())
	require.NoError(t, err)

	updated, err := svc.UpdateQaSample(ctx, created.ID, dto.UpdateQaSampleDTO{
		Status:       utils.StringPtr(constants.QaStatusReceived),
		CustomerName: utils.StringPtr("ลูกค้าใหม่"),
	})
	require.NoError(t, err)
	assert.Equal(t, constants.QaStatusReceived, updated.Status)
	assert.Equal(t, "ลูกค้าใหม่", updated.CustomerName)
}

func TestUpdateQaSampleRevalidatesDates(t *testing.T) {
	svc := newQaSampleServiceForTest()
	ctx := context.Background()

	created, err := svc.CreateQaSample(ctx, intakeDTO())
	require.NoError(t, err)

	// Moving receivedDate past the stored dueDate fails.
	_, err = svc.UpdateQaSample(ctx, created.ID, dto.UpdateQaSampleDTO{ReceivedDate: utils.StringPtr("2024-03-15")})
	assert.Error(t, err)

	// Moving both together is fine.
	updated, err := svc.UpdateQaSample(ctx, created.ID, dto.UpdateQaSampleDTO{
		ReceivedDate: utils.StringPtr("2024-03-15"),
		DueDate:      utils.StringPtr("2024-03-20"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", updated.ReceivedDate)
}

func TestUpdateQaSampleReplacesSamplesWholesale(t *testing.T) {
	svc := newQaSampleServiceForTest()
	ctx := context.Background()

	created, err := svc.CreateQaSample(ctx, intakeDTO())
	require.NoError(t, err)

	replacement := []dto.SampleDTO{
		{SampleNo: "S-02", Names: []string{"Paraquat 27.6%", "พาราควอต"}},
		{SampleNo: "S-03", Names: []string{"Atrazine 90%"}},
	}
	updated, err := svc.UpdateQaSample(ctx, created.ID, dto.UpdateQaSampleDTO{Samples: &replacement})
	require.NoError(t, err)
	require.Len(t, updated.Samples, 2)
	assert.Equal(t, "S-02", updated.Samples[0].SampleNo)
	assert.Equal(t, []string{"Paraquat 27.6%", "พาราควอต"}, updated.Samples[0].Names)
}

func TestQaSampleDueUrgencyScenario(t *testing.T) {
	now := mustDate(t, "2024-03-08")

	days, err := DaysUntil("2024-03-10", now)
	require.NoError(t, err)
	assert.Equal(t, 2, days)
	assert.Equal(t, UrgencyUrgent, QaDueUrgency(null.StringFrom("2024-03-10"), now))
}

func TestGetQaSamplesStatusFilter(t *testing.T) {
	svc := newQaSampleServiceForTest()
	ctx := context.Background()

	first, err := svc.CreateQaSample(ctx, intakeDTO())
	require.NoError(t, err)

	second := intakeDTO()
	second.RequestNo = "QA-2024-002"
	_, err = svc.CreateQaSample(ctx, second)
	require.NoError(t, err)

	_, err = svc.UpdateQaSample(ctx, first.ID, dto.UpdateQaSampleDTO{Status: utils.StringPtr(constants.QaStatusTesting)})
	require.NoError(t, err)

	testing2, err := svc.GetQaSamples(ctx, constants.QaStatusTesting)
	require.NoError(t, err)
	assert.Len(t, testing2, 1)

	_, err = svc.GetQaSamples(ctx, "bogus")
	assert.Error(t, err)
}

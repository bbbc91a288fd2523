package services

import (
	"context"
	"testing"
	"time"

	"lab-system/internal/dto"
	"lab-system/internal/entities"
	"lab-system/internal/memstore"
	"lab-system/internal/repositories"
	apperrors "lab-system/pkg/errors"
	"lab-system/pkg/utils"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newToolServiceForTest(t *testing.T, now string) (*ToolService, repositories.CalibrationRecordRepositoryInterface) {
	t.Helper()
	seq := memstore.NewSequence()
	ledger := repositories.NewCalibrationRecordRepository(seq)
	svc := &ToolService{
		repo:   repositories.NewToolRepository(seq),
		ledger: ledger,
		logger: zap.NewNop(),
		clock:  func() time.Time { return mustDate(t, now) },
	}
	return svc, ledger
}

func TestCreateToolAppendsLedgerRecord(t *testing.T) {
	svc, _ := newToolServiceForTest(t, "2024-06-15")
	ctx := context.Background()

	created, err := svc.CreateTool(ctx, dto.CreateToolDTO{
		Code:              "T-001",
		Name:              "เครื่องชั่งดิจิตอล",
		SerialNo:          "SN-1001",
		LastCalibration:   null.StringFrom("2024-01-01"),
		NextCalibration:   null.StringFrom("2024-07-01"),
		CalibrationResult: null.StringFrom("ผ่าน"),
	})
	require.NoError(t, err)

	history, err := svc.GetCalibrationHistory(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "2024-01-01", history[0].CalibrationDate)
	assert.Equal(t, "ผ่าน", history[0].Result)
	assert.Equal(t, entities.EquipmentKindTool, history[0].EquipmentKind)

	// 16 days out lands inside the 30-day warning band.
	assert.Equal(t, StatusDueSoon, CalibrationStatus(created.NextCalibration, mustDate(t, "2024-06-15")))
}

func TestCreateToolWithoutCalibrationSkipsLedger(t *testing.T) {
	svc, _ := newToolServiceForTest(t, "2024-06-15")
	ctx := context.Background()

	created, err := svc.CreateTool(ctx, dto.CreateToolDTO{Code: "T-002", Name: "pH Meter"})
	require.NoError(t, err)

	history, err := svc.GetCalibrationHistory(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestCreateToolDuplicateCode(t *testing.T) {
	svc, _ := newToolServiceForTest(t, "2024-06-15")
	ctx := context.Background()

	_, err := svc.CreateTool(ctx, dto.CreateToolDTO{Code: "T-001", Name: "Balance"})
	require.NoError(t, err)

	_, err = svc.CreateTool(ctx, dto.CreateToolDTO{Code: "T-001", Name: "Another Balance"})
	assert.ErrorIs(t, err, apperrors.ErrCodeTaken)
}

func TestUpdateToolLedgerGrowsOnlyOnCalibrationChange(t *testing.T) {
	svc, _ := newToolServiceForTest(t, "2024-06-15")
	ctx := context.Background()

	created, err := svc.CreateTool(ctx, dto.CreateToolDTO{
		Code:              "T-001",
		Name:              "Balance",
		LastCalibration:   null.StringFrom("2024-01-01"),
		CalibrationResult: null.StringFrom("ผ่าน"),
	})
	require.NoError(t, err)

	// Unrelated edit: no new record.
	_, err = svc.UpdateTool(ctx, created.ID, dto.UpdateToolDTO{Notes: utils.StringPtr("moved to room 2")})
	require.NoError(t, err)

	history, err := svc.GetCalibrationHistory(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, history, 1)

	// Outcome flip on a fresh calibration date: one more record, newest first.
	_, err = svc.UpdateTool(ctx, created.ID, dto.UpdateToolDTO{
		LastCalibration:   utils.StringPtr("2024-06-10"),
		CalibrationResult: utils.StringPtr("ไม่ผ่าน"),
	})
	require.NoError(t, err)

	history, err = svc.GetCalibrationHistory(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "2024-06-10", history[0].CalibrationDate)
	assert.Equal(t, "ไม่ผ่าน", history[0].Result)
	assert.Equal(t, "2024-01-01", history[1].CalibrationDate)
}

func TestUpdateToolResultOnlyChangeOrdersNewestFirst(t *testing.T) {
	svc, _ := newToolServiceForTest(t, "2024-06-15")
	ctx := context.Background()

	created, err := svc.CreateTool(ctx, dto.CreateToolDTO{
		Code:              "T-001",
		Name:              "Balance",
		LastCalibration:   null.StringFrom("2024-01-01"),
		CalibrationResult: null.StringFrom("ผ่าน"),
	})
	require.NoError(t, err)

	// Outcome flips but the calibration date stays the same.
	_, err = svc.UpdateTool(ctx, created.ID, dto.UpdateToolDTO{CalibrationResult: utils.StringPtr("ไม่ผ่าน")})
	require.NoError(t, err)

	history, err := svc.GetCalibrationHistory(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)

	// Same-date records come back latest append first, so the head of the
	// history matches the tool's stored calibration state.
	assert.Equal(t, "ไม่ผ่าน", history[0].Result)
	assert.Equal(t, "ผ่าน", history[1].Result)
	assert.Greater(t, history[0].ID, history[1].ID)

	found, err := svc.FindTool(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, found.CalibrationResult.String, history[0].Result)

	// Re-sending the identical calibration fields appends nothing.
	_, err = svc.UpdateTool(ctx, created.ID, dto.UpdateToolDTO{CalibrationResult: utils.StringPtr("ไม่ผ่าน")})
	require.NoError(t, err)

	history, err = svc.GetCalibrationHistory(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestGetCalibrationHistoryAppliesRetentionWindow(t *testing.T) {
	svc, ledger := newToolServiceForTest(t, "2024-06-15")
	ctx := context.Background()

	created, err := svc.CreateTool(ctx, dto.CreateToolDTO{
		Code:              "T-001",
		Name:              "Balance",
		LastCalibration:   null.StringFrom("2024-01-01"),
		CalibrationResult: null.StringFrom("ผ่าน"),
	})
	require.NoError(t, err)

	_, err = ledger.Append(ctx, entities.CalibrationRecord{
		EquipmentID:     created.ID,
		EquipmentKind:   entities.EquipmentKindTool,
		CalibrationDate: "2017-03-01",
		Result:          "ผ่าน",
	})
	require.NoError(t, err)

	history, err := svc.GetCalibrationHistory(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "2024-01-01", history[0].CalibrationDate)
}

func TestGetCalibrationHistoryMissingToolIsEmpty(t *testing.T) {
	svc, _ := newToolServiceForTest(t, "2024-06-15")

	history, err := svc.GetCalibrationHistory(context.Background(), 99)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestGetCalibrationHistoryByNameConsolidates(t *testing.T) {
	svc, _ := newToolServiceForTest(t, "2024-06-15")
	ctx := context.Background()

	first, err := svc.CreateTool(ctx, dto.CreateToolDTO{
		Code:              "T-001",
		Name:              "เครื่องชั่งดิจิตอล",
		SerialNo:          "SN-1001",
		LastCalibration:   null.StringFrom("2024-01-01"),
		CalibrationResult: null.StringFrom("ผ่าน"),
	})
	require.NoError(t, err)

	_, err = svc.CreateTool(ctx, dto.CreateToolDTO{
		Code:              "T-002",
		Name:              "เครื่องชั่งดิจิตอล",
		SerialNo:          "SN-1002",
		LastCalibration:   null.StringFrom("2024-03-01"),
		CalibrationResult: null.StringFrom("ผ่าน"),
	})
	require.NoError(t, err)

	_, err = svc.CreateTool(ctx, dto.CreateToolDTO{
		Code:              "T-003",
		Name:              "pH Meter",
		LastCalibration:   null.StringFrom("2024-02-01"),
		CalibrationResult: null.StringFrom("ผ่าน"),
	})
	require.NoError(t, err)

	consolidated, err := svc.GetCalibrationHistoryByName(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, consolidated, 2)
	assert.Equal(t, "2024-03-01", consolidated[0].CalibrationDate)
	assert.Equal(t, "T-002", consolidated[0].EquipmentCode)
	assert.Equal(t, "SN-1002", consolidated[0].EquipmentLabel)
	assert.Equal(t, "2024-01-01", consolidated[1].CalibrationDate)
	assert.Equal(t, "T-001", consolidated[1].EquipmentCode)
}

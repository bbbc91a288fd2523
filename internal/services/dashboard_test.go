package services

import (
	"context"
	"testing"
	"time"

	"lab-system/internal/entities"
	"lab-system/internal/memstore"
	"lab-system/internal/repositories"
	"lab-system/pkg/constants"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDashboardStats(t *testing.T) {
	seq := memstore.NewSequence()
	toolRepo := repositories.NewToolRepository(seq)
	glasswareRepo := repositories.NewGlasswareRepository(seq)
	chemicalRepo := repositories.NewChemicalRepository(seq)
	taskRepo := repositories.NewTaskRepository(seq)
	trainingRepo := repositories.NewTrainingRepository(seq)
	qaSampleRepo := repositories.NewQaSampleRepository(seq)

	svc := &DashboardService{
		tools:     toolRepo,
		glassware: glasswareRepo,
		chemicals: chemicalRepo,
		tasks:     taskRepo,
		trainings: trainingRepo,
		qaSamples: qaSampleRepo,
		logger:    zap.NewNop(),
		clock:     func() time.Time { return mustDate(t, "2024-06-15") },
	}
	ctx := context.Background()

	_, err := chemicalRepo.CreateChemical(ctx, entities.Chemical{Code: "C-1", Name: "Acetone", Category: "solvent", ExpiryDate: null.StringFrom("2024-06-01")})
	require.NoError(t, err)
	_, err = chemicalRepo.CreateChemical(ctx, entities.Chemical{Code: "C-2", Name: "Methanol", Category: "solvent", ExpiryDate: null.StringFrom("2024-07-01")})
	require.NoError(t, err)
	_, err = chemicalRepo.CreateChemical(ctx, entities.Chemical{Code: "C-3", Name: "NaCl", Category: "salt"})
	require.NoError(t, err)

	_, err = toolRepo.CreateTool(ctx, entities.Tool{Code: "T-1", Name: "Balance", NextCalibration: null.StringFrom("2024-05-01")})
	require.NoError(t, err)
	_, err = glasswareRepo.CreateGlassware(ctx, entities.Glassware{Code: "G-1", Type: "Volumetric flask", NextCalibration: null.StringFrom("2024-07-01")})
	require.NoError(t, err)

	_, err = taskRepo.CreateTask(ctx, entities.Task{Title: "A", Status: constants.TaskStatusPending})
	require.NoError(t, err)
	_, err = taskRepo.CreateTask(ctx, entities.Task{Title: "B", Status: constants.TaskStatusInProgress})
	require.NoError(t, err)
	_, err = taskRepo.CreateTask(ctx, entities.Task{Title: "C", Status: constants.TaskStatusCompleted})
	require.NoError(t, err)

	_, err = trainingRepo.CreateTraining(ctx, entities.Training{EmployeeName: "สมชาย", Course: "ISO 17025", Result: null.StringFrom(entities.TrainingResultPassed)})
	require.NoError(t, err)
	_, err = trainingRepo.CreateTraining(ctx, entities.Training{EmployeeName: "สมหญิง", Course: "ISO 17025", Result: null.StringFrom("failed")})
	require.NoError(t, err)

	_, err = qaSampleRepo.CreateQaSample(ctx, entities.QaSample{RequestNo: "QA-1", Status: constants.QaStatusReceived, CustomerName: "X", ReceivedDate: "2024-06-01"})
	require.NoError(t, err)
	_, err = qaSampleRepo.CreateQaSample(ctx, entities.QaSample{RequestNo: "QA-2", Status: constants.QaStatusDelivered, CustomerName: "Y", ReceivedDate: "2024-05-01"})
	require.NoError(t, err)

	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.ExpiredChemicals)
	assert.Equal(t, 1, stats.NearExpiryChemicals)
	assert.Equal(t, 1, stats.OverdueCalibrations)
	assert.Equal(t, 1, stats.DueSoonCalibrations)
	assert.Equal(t, 1, stats.PendingTasks)
	assert.Equal(t, 1, stats.InProgressTasks)
	assert.Equal(t, 1, stats.PassedTrainings)
	assert.Equal(t, 1, stats.OpenQaSamples)
}

func TestCalibrationReportRows(t *testing.T) {
	seq := memstore.NewSequence()
	toolRepo := repositories.NewToolRepository(seq)
	glasswareRepo := repositories.NewGlasswareRepository(seq)

	svc := &ReportService{
		tools:     toolRepo,
		glassware: glasswareRepo,
		logger:    zap.NewNop(),
		clock:     func() time.Time { return mustDate(t, "2024-06-15") },
	}
	ctx := context.Background()

	_, err := toolRepo.CreateTool(ctx, entities.Tool{
		Code: "T-1", Name: "Balance", SerialNo: "SN-1",
		NextCalibration: null.StringFrom("2024-05-01"),
	})
	require.NoError(t, err)
	_, err = glasswareRepo.CreateGlassware(ctx, entities.Glassware{
		Code: "G-1", Type: "Burette", LotNo: "L-9",
	})
	require.NoError(t, err)

	rows, err := svc.GetCalibrationReport(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, entities.EquipmentKindTool, rows[0].EquipmentKind)
	assert.Equal(t, "SN-1", rows[0].Label)
	assert.Equal(t, StatusOverdue, rows[0].Status)

	assert.Equal(t, entities.EquipmentKindGlassware, rows[1].EquipmentKind)
	assert.Equal(t, "L-9", rows[1].Label)
	assert.Equal(t, StatusUnspecified, rows[1].Status)
}

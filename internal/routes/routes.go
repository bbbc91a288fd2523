package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"lab-system/internal/controllers"
	"lab-system/internal/memstore"
	"lab-system/internal/repositories"
	"lab-system/internal/services"
)

func InitRouter(e *echo.Echo, seq *memstore.Sequence, logger *zap.Logger) {
	logger.Info("InitRouter: registering routes")

	api := e.Group("/api")

	// Repositories share the sequence so ids stay unique across kinds.
	toolRepo := repositories.NewToolRepository(seq)
	glasswareRepo := repositories.NewGlasswareRepository(seq)
	ledgerRepo := repositories.NewCalibrationRecordRepository(seq)
	chemicalRepo := repositories.NewChemicalRepository(seq)
	documentRepo := repositories.NewDocumentRepository(seq)
	trainingRepo := repositories.NewTrainingRepository(seq)
	msdsRepo := repositories.NewMsdsRepository(seq)
	taskRepo := repositories.NewTaskRepository(seq)
	qaSampleRepo := repositories.NewQaSampleRepository(seq)
	qaTestResultRepo := repositories.NewQaTestResultRepository(seq)

	toolService := services.NewToolService(toolRepo, ledgerRepo, logger)
	glasswareService := services.NewGlasswareService(glasswareRepo, ledgerRepo, logger)
	chemicalService := services.NewChemicalService(chemicalRepo, logger)
	documentService := services.NewDocumentService(documentRepo, logger)
	trainingService := services.NewTrainingService(trainingRepo, logger)
	msdsService := services.NewMsdsService(msdsRepo, logger)
	taskService := services.NewTaskService(taskRepo, logger)
	qaSampleService := services.NewQaSampleService(qaSampleRepo, logger)
	qaTestResultService := services.NewQaTestResultService(qaTestResultRepo, logger)
	dashboardService := services.NewDashboardService(toolRepo, glasswareRepo, chemicalRepo, taskRepo, trainingRepo, qaSampleRepo, logger)
	reportService := services.NewReportService(toolRepo, glasswareRepo, logger)

	runToolRouter(api, controllers.NewToolController(toolService, logger))
	runGlasswareRouter(api, controllers.NewGlasswareController(glasswareService, logger))
	runChemicalRouter(api, controllers.NewChemicalController(chemicalService, logger))
	runDocumentRouter(api, controllers.NewDocumentController(documentService, logger))
	runTrainingRouter(api, controllers.NewTrainingController(trainingService, logger))
	runMsdsRouter(api, controllers.NewMsdsController(msdsService, logger))
	runTaskRouter(api, controllers.NewTaskController(taskService, logger))
	runQaSampleRouter(api, controllers.NewQaSampleController(qaSampleService, logger))
	runQaTestResultRouter(api, controllers.NewQaTestResultController(qaTestResultService, logger))
	runDashboardRouter(api, controllers.NewDashboardController(dashboardService, logger))
	runReportRouter(api, controllers.NewReportController(reportService, logger))

	logger.Info("InitRouter: routes registered")
}

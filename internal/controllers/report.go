package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"lab-system/internal/entities"
	"lab-system/internal/services"
	"lab-system/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

func (c *ReportController) GetCalibrationReport(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	format := strings.ToLower(ctx.QueryParam("format"))

	rows, err := c.reportService.GetCalibrationReport(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if format == "xlsx" {
		return c.respondWithXLSX(ctx, rows)
	}

	return utils.SuccessResponse(ctx, rows, "Successfully", http.StatusOK)
}

var calibrationReportHeaders = []string{
	"Kind", "Code", "Name", "Serial/Lot", "Location",
	"Last Calibration", "Next Calibration", "Result", "Certificate No", "Calibrated By", "Status",
}

func reportRowToSlice(row entities.CalibrationReportRow) []interface{} {
	return []interface{}{
		row.EquipmentKind, row.Code, row.Name, row.Label, row.Location.String,
		row.LastCalibration.String, row.NextCalibration.String, row.CalibrationResult.String,
		row.CertificateNo.String, row.CalibratedBy.String, row.Status,
	}
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, rows []entities.CalibrationReportRow) error {
	f := excelize.NewFile()
	sheet := "Calibration"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &calibrationReportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "K1", style)

	for i, item := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := reportRowToSlice(item)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "B", "D", 20)
	f.SetColWidth(sheet, "E", "E", 25)
	f.SetColWidth(sheet, "F", "K", 18)

	fileName := fmt.Sprintf("calibration_report_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}

package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/GAJULASAINATH/MacroVerse/internal/services"
	"github.com/GAJULASAINATH/MacroVerse/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
}

func NewReportController(reportService services.ReportServiceInterface) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

// GetMonthlyReport godoc
// @Summary Download the monthly PDF report
// @Description Aggregate the month's food log, generate a narrative and stream a compiled PDF
// @Tags Nutrition
// @Produce application/pdf
// @Param month query int true "Month, 0-11 (0 = January, 11 = December)"
// @Success 200 {file} binary
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Security BearerAuth
// @Router /main-core/getMonthlyReport [post]
func (r *ReportController) GetMonthlyReport(c *gin.Context) {
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 0 || month > 11 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid month. Use 0-11 (0 = January, 11 = December)")
		return
	}

	userID := c.GetString("user_id")

	result, svcErr := r.reportService.GenerateMonthlyReport(c.Request.Context(), userID, month)
	if svcErr != nil {
		utils.HandleServiceError(c, svcErr)
		return
	}

	if result.NoData {
		utils.RespondSuccess(c, nil, "No data for report")
		return
	}

	// Cleanup runs after the stream is done, whether the client read the
	// whole file or hung up; its failures are logged inside and never
	// touch the response.
	defer result.Cleanup()

	c.FileAttachment(result.PDFPath, result.Filename)
}

package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GAJULASAINATH/MacroVerse/internal/services"
	"github.com/GAJULASAINATH/MacroVerse/pkg/utils"
)

type FoodController struct {
	analysisService services.AnalysisServiceInterface
}

func NewFoodController(analysisService services.AnalysisServiceInterface) *FoodController {
	return &FoodController{
		analysisService: analysisService,
	}
}

// AnalyzeFoodImage godoc
// @Summary Analyze a food photo
// @Description Estimate macro and micro nutrients from an uploaded food image and log the macros to today's entry
// @Tags Nutrition
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Food photo"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Security BearerAuth
// @Router /main-core/analyzeFoodImage [post]
func (f *FoodController) AnalyzeFoodImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "No image uploaded")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "No image uploaded")
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Failed to read image")
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	userID := c.GetString("user_id")

	estimate, err := f.analysisService.AnalyzeFood(c.Request.Context(), userID, image, mimeType)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, estimate, "Food image analyzed successfully")
}

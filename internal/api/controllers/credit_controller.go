package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GAJULASAINATH/MacroVerse/internal/models/request_models"
	"github.com/GAJULASAINATH/MacroVerse/internal/services"
	"github.com/GAJULASAINATH/MacroVerse/pkg/utils"
)

type CreditController struct {
	creditService services.CreditServiceInterface
}

func NewCreditController(creditService services.CreditServiceInterface) *CreditController {
	return &CreditController{
		creditService: creditService,
	}
}

// AddCredits godoc
// @Summary Add analysis credits
// @Description Add purchased credits to the authenticated user's balance
// @Tags Credits
// @Accept json
// @Produce json
// @Param action query string true "Must be 'add'"
// @Param request body request_models.AddCreditsRequest true "Credit amount"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /pricing/addCredits [post]
func (ct *CreditController) AddCredits(c *gin.Context) {
	if c.Query("action") != "add" {
		utils.HandleServiceError(c, utils.ErrInvalidAction)
		return
	}

	var req request_models.AddCreditsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userID := c.GetString("user_id")
	balance, err := ct.creditService.AddCredits(c.Request.Context(), userID, req.Credits)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"credits": balance}, "Credits added successfully")
}

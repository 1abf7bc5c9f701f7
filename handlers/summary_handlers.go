// handlers/summary_handlers.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hisaab-app/hisaab-backend/models"
	"github.com/hisaab-app/hisaab-backend/utils"
)

// GetSummary handles the recompute query: total spent, balances and the
// settlement plan. Summary is null until the group has members and expenses.
func GetSummary(c *gin.Context) {
	var request models.GroupIDRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError("Invalid request"))
		return
	}

	group, err := handlerServices.GroupService.GetGroup(request.GroupID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	summary := handlerServices.SummaryService.GetSummary(group)
	utils.HandleSuccess(c, models.SummaryResponse{
		Summary: summary,
		Lines:   handlerServices.SummaryService.BalanceLines(summary),
	})
}

// GetReport handles the shareable text report for a group
func GetReport(c *gin.Context) {
	var request models.GroupIDRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError("Invalid request"))
		return
	}

	group, err := handlerServices.GroupService.GetGroup(request.GroupID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	summary := handlerServices.SummaryService.GetSummary(group)
	report := handlerServices.SummaryService.BuildReport(group, summary)
	utils.HandleSuccess(c, gin.H{"report": report})
}

// handlers/expense_handlers.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hisaab-app/hisaab-backend/models"
	"github.com/hisaab-app/hisaab-backend/utils"
)

// AddExpense handles adding an expense with either an equal or a
// custom-amount split
func AddExpense(c *gin.Context) {
	var request models.AddExpenseRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError("Invalid request"))
		return
	}

	expense, err := handlerServices.GroupService.AddExpense(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, expense)
}

// RemoveExpense handles removing a single expense
func RemoveExpense(c *gin.Context) {
	var request models.RemoveExpenseRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError("Invalid request"))
		return
	}

	if err := handlerServices.GroupService.RemoveExpense(request.GroupID, request.ExpenseID); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"removed": request.ExpenseID})
}

// ResetExpenses handles clearing every expense in a group
func ResetExpenses(c *gin.Context) {
	var request models.GroupIDRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError("Invalid request"))
		return
	}

	if err := handlerServices.GroupService.ResetExpenses(request.GroupID); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"reset": request.GroupID})
}

// ListExpenses handles listing a group's expenses
func ListExpenses(c *gin.Context) {
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

	utils.HandleSuccess(c, group.Expenses)
}

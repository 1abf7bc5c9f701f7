// handlers/excel_handlers.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hisaab-app/hisaab-backend/models"
	"github.com/hisaab-app/hisaab-backend/utils"
)

// ExportGroupToExcel exports a group's ledger and summary to Excel format
func ExportGroupToExcel(c *gin.Context) {
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

	excelFile, filename, err := handlerServices.ExcelService.ExportGroupToExcel(group)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export group: " + err.Error()})
		return
	}

	// Set headers for file download
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Header("Content-Transfer-Encoding", "binary")

	if err := excelFile.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file: " + err.Error()})
		return
	}
}

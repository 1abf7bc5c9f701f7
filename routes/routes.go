package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/hisaab-app/hisaab-backend/handlers"
)

// SetupRoutes configures all API routes for the application
func SetupRoutes(router *gin.Engine, hs *handlers.HandlerServices) {
	handlers.InitHandlers(hs)

	v1 := router.Group("/api/v1")
	{
		// Group endpoints
		v1.POST("/groups/create", handlers.CreateGroup)
		v1.POST("/groups/list", handlers.ListGroups)
		v1.POST("/groups/get", handlers.GetGroup)
		v1.POST("/groups/delete", handlers.DeleteGroup)

		// Member endpoints
		v1.POST("/members/add", handlers.AddMember)
		v1.POST("/members/remove", handlers.RemoveMember)

		// Expense endpoints
		v1.POST("/expenses/add", handlers.AddExpense)
		v1.POST("/expenses/remove", handlers.RemoveExpense)
		v1.POST("/expenses/reset", handlers.ResetExpenses)
		v1.POST("/expenses/list", handlers.ListExpenses)

		// Summary endpoints
		v1.POST("/groups/summary", handlers.GetSummary)
		v1.POST("/groups/report", handlers.GetReport)
		v1.POST("/groups/export", handlers.ExportGroupToExcel)
	}
}

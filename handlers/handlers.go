package handlers

import (
	"github.com/hisaab-app/hisaab-backend/cache"
	"github.com/hisaab-app/hisaab-backend/repository"
	"github.com/hisaab-app/hisaab-backend/services"
)

// HandlerServices contains all service dependencies
type HandlerServices struct {
	GroupService   *services.GroupService
	SummaryService *services.SummaryService
	ExcelService   *services.ExcelService
}

// NewHandlerServices wires the service graph on top of a store and a cache
func NewHandlerServices(store repository.GroupStore, c cache.Cache) *HandlerServices {
	ledgerService := services.NewLedgerService()
	summaryService := services.NewSummaryService(services.NewBalanceService(), services.NewSettlementService(), c)
	return &HandlerServices{
		GroupService:   services.NewGroupService(store, ledgerService, c),
		SummaryService: summaryService,
		ExcelService:   services.NewExcelService(summaryService),
	}
}

var handlerServices *HandlerServices

// InitHandlers initializes the handler services
func InitHandlers(hs *HandlerServices) {
	handlerServices = hs
}

package routes

import (
	"github.com/gin-gonic/gin"

	"sponsortrack/internal/handlers"
	"sponsortrack/internal/realtime"
)

func SetupRoutes(
	r *gin.Engine,
	orgHandler *handlers.OrganizationHandler,
	accountHandler *handlers.AccountHandler,
	dealHandler *handlers.DealHandler,
	healthHandler *handlers.HealthHandler,
	dealHub *realtime.DealHub,
) *gin.Engine {

	// ---- service
	r.GET("/", orgHandler.Welcome)
	r.GET("/healthz", healthHandler.Check)

	api := r.Group("/api")

	// ORGANIZATIONS
	orgs := api.Group("/organizations")
	{
		orgs.GET("", orgHandler.List)
		orgs.GET("/:id", orgHandler.GetByID)
		orgs.POST("", orgHandler.Create)
		orgs.PUT("/:id", orgHandler.Update)
		orgs.DELETE("/:id", orgHandler.Delete)
	}

	// ACCOUNTS
	accounts := api.Group("/accounts")
	{
		accounts.GET("", accountHandler.List)
		accounts.GET("/organization/:organization_id", accountHandler.ListByOrganization)
		accounts.GET("/:id", accountHandler.GetByID)
		accounts.POST("", accountHandler.Create)
		accounts.PUT("/:id", accountHandler.Update)
		accounts.DELETE("/:id", accountHandler.Delete)
	}

	// DEALS
	deals := api.Group("/deals")
	{
		deals.GET("", dealHandler.List)
		deals.GET("/view", dealHandler.View)
		deals.GET("/export.xlsx", dealHandler.ExportXLSX)
		deals.GET("/report.pdf", dealHandler.ReportPDF)
		deals.GET("/events", dealHub.ServeWS)
		deals.GET("/account/:account_id", dealHandler.ListByAccount)
		deals.GET("/organization/:organization_id", dealHandler.ListByOrganization)
		deals.GET("/status/:status", dealHandler.ListByStatus)
		deals.GET("/:id", dealHandler.GetByID)
		deals.POST("", dealHandler.Create)
		deals.PUT("/:id", dealHandler.Update)
		deals.DELETE("/:id", dealHandler.Delete)
	}

	return r
}

package routes

import (
	"workshop_jobs/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathJobs        = "/jobs"
	PathPayments    = "/payments"
	PathSettlements = "/settlements"
	PathAnalytics   = "/analytics"
	PathDocuments   = "/documents"
)

func addJobRoutes(rg *gin.RouterGroup, jobs *handlers.JobHandler, payments *handlers.PaymentHandler, settlements *handlers.SettlementHandler) {
	j := rg.Group(PathJobs)
	{
		j.POST("", jobs.Create)
		j.GET("", jobs.List)
		j.GET("/:job_id", jobs.Get)
		j.PUT("/:job_id", jobs.Update)
	}

	p := rg.Group(PathPayments)
	{
		p.POST("", payments.Record)
		p.GET("", payments.List)
		p.PUT("/:payment_id/confirm", payments.Confirm)
	}

	s := rg.Group(PathSettlements)
	{
		s.POST("", settlements.Submit)
		s.GET("", settlements.List)
		s.PUT("/:settlement_id/confirm", settlements.Confirm)
	}
}

func addReportRoutes(rg *gin.RouterGroup, reports *handlers.ReportHandler) {
	a := rg.Group(PathAnalytics)
	{
		a.GET("/dashboard", reports.Dashboard)
		a.GET("/export", reports.ExportJobs)
	}

	d := rg.Group(PathDocuments)
	{
		d.GET("/job-card/:job_id", reports.JobCard)
		d.GET("/invoice/:job_id", reports.Invoice)
	}
}

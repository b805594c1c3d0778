package handlers

import (
	"fmt"
	"net/http"
	"workshop_jobs/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ReportHandler serves the analytics rollup and the generated files.
type ReportHandler struct {
	analytics usecase.IAnalyticsUseCase
	documents usecase.IDocumentUseCase
	log       logrus.FieldLogger
}

func NewReportHandler(analytics usecase.IAnalyticsUseCase, documents usecase.IDocumentUseCase, log logrus.FieldLogger) *ReportHandler {
	return &ReportHandler{analytics: analytics, documents: documents, log: log}
}

// Dashboard godoc
// @Summary   Revenue and status rollup of the owner's workshop
// @Tags      analytics
// @Produce   json
// @Security  Bearer
// @Success   200  {object}  entities.DashboardReport
// @Failure   403  {object}  pkg.HTTPError
// @Router    /analytics/dashboard [get]
func (h *ReportHandler) Dashboard(c *gin.Context) {
	report, err := h.analytics.Dashboard(c.Request.Context(), caller(c))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// ExportJobs godoc
// @Summary   Spreadsheet of every job in the owner's workshop
// @Tags      analytics
// @Produce   application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security  Bearer
// @Success   200  {file}    file
// @Failure   403  {object}  pkg.HTTPError
// @Router    /analytics/export [get]
func (h *ReportHandler) ExportJobs(c *gin.Context) {
	doc, err := h.analytics.ExportJobs(c.Request.Context(), caller(c))
	h.send(c, doc, err)
}

// JobCard godoc
// @Summary   Printable job card
// @Tags      documents
// @Produce   application/pdf
// @Security  Bearer
// @Param     job_id  path      string  true  "Job ID"
// @Success   200     {file}    file
// @Failure   404     {object}  pkg.HTTPError
// @Router    /documents/job-card/{job_id} [get]
func (h *ReportHandler) JobCard(c *gin.Context) {
	doc, err := h.documents.JobCard(c.Request.Context(), caller(c), c.Param("job_id"))
	h.send(c, doc, err)
}

// Invoice godoc
// @Summary   Printable invoice with the payment history
// @Tags      documents
// @Produce   application/pdf
// @Security  Bearer
// @Param     job_id  path      string  true  "Job ID"
// @Success   200     {file}    file
// @Failure   404     {object}  pkg.HTTPError
// @Router    /documents/invoice/{job_id} [get]
func (h *ReportHandler) Invoice(c *gin.Context) {
	doc, err := h.documents.Invoice(c.Request.Context(), caller(c), c.Param("job_id"))
	h.send(c, doc, err)
}

func (h *ReportHandler) send(c *gin.Context, doc usecase.Document, err error) {
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, doc.ContentType, doc.Body)
}

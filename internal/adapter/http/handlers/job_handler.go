package handlers

import (
	"net/http"
	request "workshop_jobs/internal/adapter/http/dto/request"
	"workshop_jobs/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type JobHandler struct {
	usecase usecase.IJobUseCase
	log     logrus.FieldLogger
}

func NewJobHandler(uc usecase.IJobUseCase, log logrus.FieldLogger) *JobHandler {
	return &JobHandler{usecase: uc, log: log}
}

// Create godoc
// @Summary   Open a repair job
// @Tags      jobs
// @Accept    json
// @Produce   json
// @Security  Bearer
// @Param     body  body      request.JobRequest  true  "Job"
// @Success   201   {object}  entities.Job
// @Failure   400   {object}  pkg.HTTPError
// @Failure   403   {object}  pkg.HTTPError
// @Router    /jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	var payload request.JobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidRequest(c)
		return
	}

	job, err := h.usecase.Create(c.Request.Context(), caller(c), payload.ToInput())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// List godoc
// @Summary   Jobs visible to the caller, newest first
// @Tags      jobs
// @Produce   json
// @Security  Bearer
// @Param     status      query     string  false  "Job status"
// @Param     manager_id  query     string  false  "Manager user ID (owners only)"
// @Success   200         {array}   entities.JobSummary
// @Router    /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	var query request.JobListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		writeInvalidRequest(c)
		return
	}

	jobs, err := h.usecase.List(c.Request.Context(), caller(c), query.ToFilter())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// Get godoc
// @Summary   Job with payments and audit trail
// @Tags      jobs
// @Produce   json
// @Security  Bearer
// @Param     job_id  path      string  true  "Job ID"
// @Success   200     {object}  entities.JobDetail
// @Failure   403     {object}  pkg.HTTPError
// @Failure   404     {object}  pkg.HTTPError
// @Router    /jobs/{job_id} [get]
func (h *JobHandler) Get(c *gin.Context) {
	detail, err := h.usecase.Get(c.Request.Context(), caller(c), c.Param("job_id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Update godoc
// @Summary   Change job fields or status
// @Tags      jobs
// @Accept    json
// @Produce   json
// @Security  Bearer
// @Param     job_id  path      string                   true  "Job ID"
// @Param     body    body      request.JobPatchRequest  true  "Changes"
// @Success   200     {object}  entities.Job
// @Failure   400     {object}  pkg.HTTPError
// @Failure   404     {object}  pkg.HTTPError
// @Router    /jobs/{job_id} [put]
func (h *JobHandler) Update(c *gin.Context) {
	var payload request.JobPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidRequest(c)
		return
	}

	job, err := h.usecase.Update(c.Request.Context(), caller(c), c.Param("job_id"), payload.ToPatch())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

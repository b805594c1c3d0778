package handlers

import (
	"net/http"
	request "workshop_jobs/internal/adapter/http/dto/request"
	"workshop_jobs/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
	log     logrus.FieldLogger
}

func NewPaymentHandler(uc usecase.IPaymentUseCase, log logrus.FieldLogger) *PaymentHandler {
	return &PaymentHandler{usecase: uc, log: log}
}

// Record godoc
// @Summary   Record a payment collected against a job
// @Tags      payments
// @Accept    json
// @Produce   json
// @Security  Bearer
// @Param     body  body      request.PaymentRequest  true  "Payment"
// @Success   201   {object}  entities.Payment
// @Failure   400   {object}  pkg.HTTPError
// @Failure   404   {object}  pkg.HTTPError
// @Router    /payments [post]
func (h *PaymentHandler) Record(c *gin.Context) {
	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidRequest(c)
		return
	}

	p, err := h.usecase.Record(c.Request.Context(), caller(c), payload.ToInput())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// List godoc
// @Summary   Payments visible to the caller, newest first
// @Tags      payments
// @Produce   json
// @Security  Bearer
// @Param     job_id     query     string  false  "Job ID"
// @Param     confirmed  query     bool    false  "Confirmation state"
// @Success   200        {array}   entities.PaymentView
// @Router    /payments [get]
func (h *PaymentHandler) List(c *gin.Context) {
	var query request.PaymentListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		writeInvalidRequest(c)
		return
	}

	payments, err := h.usecase.List(c.Request.Context(), caller(c), query.ToFilter())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// Confirm godoc
// @Summary   Owner confirms a payment
// @Tags      payments
// @Produce   json
// @Security  Bearer
// @Param     payment_id  path      string  true  "Payment ID"
// @Success   200         {object}  entities.Payment
// @Failure   404         {object}  pkg.HTTPError
// @Router    /payments/{payment_id}/confirm [put]
func (h *PaymentHandler) Confirm(c *gin.Context) {
	p, err := h.usecase.Confirm(c.Request.Context(), caller(c), c.Param("payment_id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

package handlers

import (
	"net/http"
	request "workshop_jobs/internal/adapter/http/dto/request"
	"workshop_jobs/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type SettlementHandler struct {
	usecase usecase.ISettlementUseCase
	log     logrus.FieldLogger
}

func NewSettlementHandler(uc usecase.ISettlementUseCase, log logrus.FieldLogger) *SettlementHandler {
	return &SettlementHandler{usecase: uc, log: log}
}

// Submit godoc
// @Summary   Manager hands over collected cash
// @Tags      settlements
// @Accept    json
// @Produce   json
// @Security  Bearer
// @Param     body  body      request.SettlementRequest  true  "Settlement"
// @Success   201   {object}  entities.Settlement
// @Failure   400   {object}  pkg.HTTPError
// @Failure   403   {object}  pkg.HTTPError
// @Router    /settlements [post]
func (h *SettlementHandler) Submit(c *gin.Context) {
	var payload request.SettlementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidRequest(c)
		return
	}

	s, err := h.usecase.Submit(c.Request.Context(), caller(c), payload.ToInput())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, s)
}

// List godoc
// @Summary   Settlements visible to the caller, newest first
// @Tags      settlements
// @Produce   json
// @Security  Bearer
// @Param     confirmed  query     bool  false  "Confirmation state"
// @Success   200        {array}   entities.SettlementView
// @Router    /settlements [get]
func (h *SettlementHandler) List(c *gin.Context) {
	var query request.SettlementListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		writeInvalidRequest(c)
		return
	}

	settlements, err := h.usecase.List(c.Request.Context(), caller(c), query.Confirmed)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, settlements)
}

// Confirm godoc
// @Summary   Owner confirms a settlement
// @Tags      settlements
// @Produce   json
// @Security  Bearer
// @Param     settlement_id  path      string  true  "Settlement ID"
// @Success   200            {object}  entities.Settlement
// @Failure   404            {object}  pkg.HTTPError
// @Router    /settlements/{settlement_id}/confirm [put]
func (h *SettlementHandler) Confirm(c *gin.Context) {
	s, err := h.usecase.Confirm(c.Request.Context(), caller(c), c.Param("settlement_id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

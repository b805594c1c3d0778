package handlers

import (
	"net/http"
	request "workshop_jobs/internal/adapter/http/dto/request"
	response "workshop_jobs/internal/adapter/http/dto/response"
	"workshop_jobs/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type WorkshopHandler struct {
	usecase usecase.IWorkshopUseCase
	log     logrus.FieldLogger
}

func NewWorkshopHandler(uc usecase.IWorkshopUseCase, log logrus.FieldLogger) *WorkshopHandler {
	return &WorkshopHandler{usecase: uc, log: log}
}

// Create godoc
// @Summary   Create the caller's workshop
// @Tags      workshops
// @Accept    json
// @Produce   json
// @Security  Bearer
// @Param     body  body      request.WorkshopRequest  true  "Workshop"
// @Success   201   {object}  entities.Workshop
// @Failure   403   {object}  pkg.HTTPError
// @Failure   409   {object}  pkg.HTTPError
// @Router    /workshops [post]
func (h *WorkshopHandler) Create(c *gin.Context) {
	var payload request.WorkshopRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidRequest(c)
		return
	}

	w, err := h.usecase.Create(c.Request.Context(), caller(c), payload.ToInput())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, w)
}

// GetMine godoc
// @Summary   Workshop the caller owns or works for
// @Tags      workshops
// @Produce   json
// @Security  Bearer
// @Success   200  {object}  entities.Workshop
// @Failure   404  {object}  pkg.HTTPError
// @Router    /workshops/me [get]
func (h *WorkshopHandler) GetMine(c *gin.Context) {
	w, err := h.usecase.GetMine(c.Request.Context(), caller(c))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

// Update godoc
// @Summary   Update workshop details
// @Tags      workshops
// @Accept    json
// @Produce   json
// @Security  Bearer
// @Param     workshop_id  path      string                        true  "Workshop ID"
// @Param     body         body      request.WorkshopPatchRequest  true  "Changes"
// @Success   200          {object}  entities.Workshop
// @Failure   404          {object}  pkg.HTTPError
// @Router    /workshops/{workshop_id} [put]
func (h *WorkshopHandler) Update(c *gin.Context) {
	var payload request.WorkshopPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidRequest(c)
		return
	}

	w, err := h.usecase.Update(c.Request.Context(), caller(c), c.Param("workshop_id"), payload.ToPatch())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

// IssueInviteCode godoc
// @Summary   Issue a single-use manager invite code
// @Tags      workshops
// @Produce   json
// @Security  Bearer
// @Param     workshop_id  path      string  true  "Workshop ID"
// @Success   201          {object}  entities.InviteCode
// @Failure   404          {object}  pkg.HTTPError
// @Router    /workshops/{workshop_id}/invite-codes [post]
func (h *WorkshopHandler) IssueInviteCode(c *gin.Context) {
	code, err := h.usecase.IssueInviteCode(c.Request.Context(), caller(c), c.Param("workshop_id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, code)
}

// ListInviteCodes godoc
// @Summary   Invite codes of a workshop, newest first
// @Tags      workshops
// @Produce   json
// @Security  Bearer
// @Param     workshop_id  path      string  true  "Workshop ID"
// @Success   200          {array}   entities.InviteCode
// @Router    /workshops/{workshop_id}/invite-codes [get]
func (h *WorkshopHandler) ListInviteCodes(c *gin.Context) {
	codes, err := h.usecase.ListInviteCodes(c.Request.Context(), caller(c), c.Param("workshop_id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, codes)
}

// RevokeInviteCode godoc
// @Summary   Deactivate an unused invite code
// @Tags      workshops
// @Produce   json
// @Security  Bearer
// @Param     workshop_id  path      string  true  "Workshop ID"
// @Param     code         path      string  true  "Invite code"
// @Success   200          {object}  response.MessageResponse
// @Failure   404          {object}  pkg.HTTPError
// @Router    /workshops/{workshop_id}/invite-codes/{code} [delete]
func (h *WorkshopHandler) RevokeInviteCode(c *gin.Context) {
	if err := h.usecase.RevokeInviteCode(c.Request.Context(), caller(c), c.Param("workshop_id"), c.Param("code")); err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("Invite code revoked"))
}

package handlers

import (
	"net/http"
	response "workshop_jobs/internal/adapter/http/dto/response"
	"workshop_jobs/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ManagerHandler struct {
	usecase usecase.IManagerUseCase
	log     logrus.FieldLogger
}

func NewManagerHandler(uc usecase.IManagerUseCase, log logrus.FieldLogger) *ManagerHandler {
	return &ManagerHandler{usecase: uc, log: log}
}

// List godoc
// @Summary   Active managers of the owner's workshop
// @Tags      managers
// @Produce   json
// @Security  Bearer
// @Success   200  {array}   entities.ManagerView
// @Failure   403  {object}  pkg.HTTPError
// @Router    /managers [get]
func (h *ManagerHandler) List(c *gin.Context) {
	managers, err := h.usecase.List(c.Request.Context(), caller(c))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, managers)
}

// Remove godoc
// @Summary   Detach a manager from the workshop
// @Tags      managers
// @Produce   json
// @Security  Bearer
// @Param     manager_id  path      string  true  "Manager binding ID"
// @Success   200         {object}  response.MessageResponse
// @Failure   404         {object}  pkg.HTTPError
// @Router    /managers/{manager_id} [delete]
func (h *ManagerHandler) Remove(c *gin.Context) {
	if err := h.usecase.Remove(c.Request.Context(), caller(c), c.Param("manager_id")); err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("Manager removed"))
}

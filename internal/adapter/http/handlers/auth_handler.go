package handlers

import (
	"net/http"
	request "workshop_jobs/internal/adapter/http/dto/request"
	response "workshop_jobs/internal/adapter/http/dto/response"
	"workshop_jobs/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	usecase usecase.IAuthUseCase
	log     logrus.FieldLogger
}

func NewAuthHandler(uc usecase.IAuthUseCase, log logrus.FieldLogger) *AuthHandler {
	return &AuthHandler{usecase: uc, log: log}
}

// Register godoc
// @Summary      Register an owner or a manager
// @Description  Managers must present an unused invite code.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      request.RegisterRequest  true  "Account"
// @Success      201   {object}  response.SessionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var payload request.RegisterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidRequest(c)
		return
	}

	session, err := h.usecase.Register(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromSession(session))
}

// Login godoc
// @Summary  Exchange credentials for a session token
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body  body      request.LoginRequest  true  "Credentials"
// @Success  200   {object}  response.SessionResponse
// @Failure  401   {object}  pkg.HTTPError
// @Router   /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidRequest(c)
		return
	}

	session, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSession(session))
}

// Me godoc
// @Summary   Current account profile
// @Tags      auth
// @Produce   json
// @Security  Bearer
// @Success   200  {object}  response.ProfileResponse
// @Failure   401  {object}  pkg.HTTPError
// @Router    /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	profile, err := h.usecase.Me(c.Request.Context(), caller(c))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProfile(profile))
}

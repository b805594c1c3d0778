package routes

import (
	"workshop_jobs/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth      = "/auth"
	PathWorkshops = "/workshops"
	PathManagers  = "/managers"
)

func addAuthRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler, session gin.HandlerFunc) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.GET("/me", session, h.Me)
	}
}

func addWorkshopRoutes(rg *gin.RouterGroup, workshops *handlers.WorkshopHandler, managers *handlers.ManagerHandler) {
	w := rg.Group(PathWorkshops)
	{
		w.POST("", workshops.Create)
		w.GET("/me", workshops.GetMine)
		w.PUT("/:workshop_id", workshops.Update)
		w.POST("/:workshop_id/invite-codes", workshops.IssueInviteCode)
		w.GET("/:workshop_id/invite-codes", workshops.ListInviteCodes)
		w.DELETE("/:workshop_id/invite-codes/:code", workshops.RevokeInviteCode)
	}

	m := rg.Group(PathManagers)
	{
		m.GET("", managers.List)
		m.DELETE("/:manager_id", managers.Remove)
	}
}

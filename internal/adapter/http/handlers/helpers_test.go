package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"workshop_jobs/internal/domain/entities"
	"workshop_jobs/internal/infrastructure/logging"

	"github.com/gin-gonic/gin"
)

var (
	testOwner   = entities.User{ID: "owner-1", Email: "owner@example.com", Name: "Ravi", Role: entities.RoleOwner}
	testManager = entities.User{ID: "mgr-1", Email: "mgr@example.com", Name: "Asha", Role: entities.RoleManager}
	testLog     = logging.Discard()
)

// asUser stands in for RequireSession in handler tests.
func asUser(u entities.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ctxUser, u)
		c.Set(ctxUserID, u.ID)
		c.Next()
	}
}

func newTestRouter(u entities.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(asUser(u))
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

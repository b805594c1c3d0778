package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"workshop_jobs/internal/adapter/http/handlers/mocks"
	"workshop_jobs/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestRequireSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	setup := func(t *testing.T) (*gin.Engine, *mocks.MockIAuthUseCase) {
		ctrl := gomock.NewController(t)
		auth := mocks.NewMockIAuthUseCase(ctrl)
		r := gin.New()
		r.GET("/v1/private", RequireSession(auth, testLog), func(c *gin.Context) {
			c.String(http.StatusOK, c.GetString(ctxUserID)+":"+caller(c).Email)
		})
		return r, auth
	}

	send := func(r *gin.Engine, header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/v1/private", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("missing header", func(t *testing.T) {
		r, _ := setup(t)
		if w := send(r, ""); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong scheme", func(t *testing.T) {
		r, _ := setup(t)
		if w := send(r, "Basic abc"); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		r, auth := setup(t)
		auth.EXPECT().ResolveSession(gomock.Any(), "tok").Return(testOwner, usecase.ErrSessionExpired)
		w := send(r, "Bearer tok")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid token", func(t *testing.T) {
		r, auth := setup(t)
		auth.EXPECT().ResolveSession(gomock.Any(), "tok").Return(testOwner, nil)
		w := send(r, "bearer  tok ")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "owner-1:owner@example.com" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

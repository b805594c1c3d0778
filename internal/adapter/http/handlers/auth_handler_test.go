package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	request "workshop_jobs/internal/adapter/http/dto/request"
	response "workshop_jobs/internal/adapter/http/dto/response"
	"workshop_jobs/internal/adapter/http/handlers/mocks"
	"workshop_jobs/internal/domain/entities"
	"workshop_jobs/internal/usecase"
	"workshop_jobs/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAuthHandler_Register(t *testing.T) {
	request.RegisterValidators()

	setup := func(t *testing.T) (*gin.Engine, *mocks.MockIAuthUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc, testLog)
		r := newTestRouter(entities.User{})
		r.POST("/v1/auth/register", h.Register)
		return r, uc
	}

	t.Run("invalid json", func(t *testing.T) {
		r, _ := setup(t)
		if w := do(r, http.MethodPost, "/v1/auth/register", "{"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown role rejected before the use case", func(t *testing.T) {
		r, _ := setup(t)
		body := `{"email":"a@b.com","password":"pw","name":"A","phone":"1","role":"admin"}`
		if w := do(r, http.MethodPost, "/v1/auth/register", body); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(usecase.Session{}, usecase.ErrEmailAlreadyRegistered)
		body := `{"email":"a@b.com","password":"pw","name":"A","phone":"1","role":"owner"}`
		w := do(r, http.MethodPost, "/v1/auth/register", body)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var e pkg.HTTPError
		_ = json.Unmarshal(w.Body.Bytes(), &e)
		if e.Code != "EMAIL_ALREADY_REGISTERED" {
			t.Fatalf("unexpected code: %s", e.Code)
		}
	})

	t.Run("manager with invite", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().Register(gomock.Any(), usecase.RegisterInput{
			Email: "m@b.com", Password: "pw", Name: "M", Phone: "2", Role: "manager", InviteCode: "ABCD1234",
		}).Return(usecase.Session{
			Token:   "tok",
			Profile: usecase.Profile{ID: "u-1", Email: "m@b.com", Role: entities.RoleManager, WorkshopID: "w-1"},
		}, nil)

		body := `{"email":"m@b.com","password":"pw","name":"M","phone":"2","role":"manager","invite_code":"ABCD1234"}`
		w := do(r, http.MethodPost, "/v1/auth/register", body)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var got response.SessionResponse
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got.Token != "tok" || got.TokenType != "bearer" || got.User.WorkshopID == nil || *got.User.WorkshopID != "w-1" {
			t.Fatalf("unexpected session: %+v", got)
		}
	})
}

func TestAuthHandler_LoginAndMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIAuthUseCase(ctrl)
	h := NewAuthHandler(uc, testLog)

	r := newTestRouter(testOwner)
	r.POST("/v1/auth/login", h.Login)
	r.GET("/v1/auth/me", h.Me)

	t.Run("missing password", func(t *testing.T) {
		if w := do(r, http.MethodPost, "/v1/auth/login", `{"email":"a@b.com"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bad credentials", func(t *testing.T) {
		uc.EXPECT().Login(gomock.Any(), "a@b.com", "nope").Return(usecase.Session{}, usecase.ErrInvalidCredentials)
		if w := do(r, http.MethodPost, "/v1/auth/login", `{"email":"a@b.com","password":"nope"}`); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("login ok", func(t *testing.T) {
		uc.EXPECT().Login(gomock.Any(), "a@b.com", "pw").Return(usecase.Session{Token: "tok"}, nil)
		if w := do(r, http.MethodPost, "/v1/auth/login", `{"email":"a@b.com","password":"pw"}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("me without workshop", func(t *testing.T) {
		uc.EXPECT().Me(gomock.Any(), testOwner).Return(usecase.Profile{ID: testOwner.ID, Role: entities.RoleOwner}, nil)
		w := do(r, http.MethodGet, "/v1/auth/me", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if v, ok := body["workshop_id"]; !ok || v != nil {
			t.Fatalf("expected null workshop_id, got %v", body)
		}
	})
}

package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"workshop_jobs/internal/adapter/http/handlers/mocks"
	"workshop_jobs/internal/domain/entities"
	"workshop_jobs/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestWorkshopHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIWorkshopUseCase(ctrl)
	h := NewWorkshopHandler(uc, testLog)

	r := newTestRouter(testOwner)
	r.POST("/v1/workshops", h.Create)
	r.GET("/v1/workshops/me", h.GetMine)
	r.PUT("/v1/workshops/:workshop_id", h.Update)
	r.POST("/v1/workshops/:workshop_id/invite-codes", h.IssueInviteCode)
	r.GET("/v1/workshops/:workshop_id/invite-codes", h.ListInviteCodes)
	r.DELETE("/v1/workshops/:workshop_id/invite-codes/:code", h.RevokeInviteCode)

	t.Run("create conflict", func(t *testing.T) {
		uc.EXPECT().Create(gomock.Any(), testOwner, usecase.WorkshopInput{Name: "Garage", Phone: "123"}).
			Return(entities.Workshop{}, usecase.ErrWorkshopAlreadyExists)
		if w := do(r, http.MethodPost, "/v1/workshops", `{"name":"Garage","phone":"123"}`); w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("create ok", func(t *testing.T) {
		uc.EXPECT().Create(gomock.Any(), testOwner, gomock.Any()).
			Return(entities.Workshop{ID: "w-1", Name: "Garage", Currency: "INR"}, nil)
		w := do(r, http.MethodPost, "/v1/workshops", `{"name":"Garage","phone":"123"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var got entities.Workshop
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if got.ID != "w-1" {
			t.Fatalf("unexpected workshop: %+v", got)
		}
	})

	t.Run("bad currency", func(t *testing.T) {
		if w := do(r, http.MethodPost, "/v1/workshops", `{"name":"Garage","phone":"123","currency":"RUPEE"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("get mine not found", func(t *testing.T) {
		uc.EXPECT().GetMine(gomock.Any(), testOwner).Return(entities.Workshop{}, usecase.ErrWorkshopNotFound)
		if w := do(r, http.MethodGet, "/v1/workshops/me", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("update passes path id", func(t *testing.T) {
		uc.EXPECT().Update(gomock.Any(), testOwner, "w-1", gomock.Any()).
			DoAndReturn(func(_ any, _ entities.User, _ string, p usecase.WorkshopPatch) (entities.Workshop, error) {
				if p.Name == nil || *p.Name != "New" || p.Phone != nil {
					t.Fatalf("unexpected patch: %+v", p)
				}
				return entities.Workshop{ID: "w-1", Name: "New"}, nil
			})
		if w := do(r, http.MethodPut, "/v1/workshops/w-1", `{"name":"New"}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invite codes", func(t *testing.T) {
		uc.EXPECT().IssueInviteCode(gomock.Any(), testOwner, "w-1").Return(entities.InviteCode{Code: "ABCD1234", Active: true}, nil)
		if w := do(r, http.MethodPost, "/v1/workshops/w-1/invite-codes", ""); w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}

		uc.EXPECT().ListInviteCodes(gomock.Any(), testOwner, "w-1").Return([]entities.InviteCode{}, nil)
		w := do(r, http.MethodGet, "/v1/workshops/w-1/invite-codes", "")
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("expected empty list, got %d %s", w.Code, w.Body.String())
		}

		uc.EXPECT().RevokeInviteCode(gomock.Any(), testOwner, "w-1", "ABCD1234").Return(usecase.ErrInviteCodeNotFound)
		if w := do(r, http.MethodDelete, "/v1/workshops/w-1/invite-codes/ABCD1234", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestManagerHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIManagerUseCase(ctrl)
	h := NewManagerHandler(uc, testLog)

	r := newTestRouter(testOwner)
	r.GET("/v1/managers", h.List)
	r.DELETE("/v1/managers/:manager_id", h.Remove)

	t.Run("list", func(t *testing.T) {
		uc.EXPECT().List(gomock.Any(), testOwner).Return([]entities.ManagerView{
			{ManagerBinding: entities.ManagerBinding{ID: "b-1", UserID: "mgr-1", Active: true}, User: &testManager},
		}, nil)
		w := do(r, http.MethodGet, "/v1/managers", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got []entities.ManagerView
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if len(got) != 1 || got[0].User == nil || got[0].User.Name != "Asha" {
			t.Fatalf("unexpected list: %+v", got)
		}
	})

	t.Run("remove foreign binding", func(t *testing.T) {
		uc.EXPECT().Remove(gomock.Any(), testOwner, "b-9").Return(usecase.ErrManagerNotFound)
		if w := do(r, http.MethodDelete, "/v1/managers/b-9", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("remove ok", func(t *testing.T) {
		uc.EXPECT().Remove(gomock.Any(), testOwner, "b-1").Return(nil)
		if w := do(r, http.MethodDelete, "/v1/managers/b-1", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

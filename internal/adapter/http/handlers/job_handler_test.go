package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	request "workshop_jobs/internal/adapter/http/dto/request"
	"workshop_jobs/internal/adapter/http/handlers/mocks"
	"workshop_jobs/internal/domain/entities"
	"workshop_jobs/internal/usecase"
	"workshop_jobs/pkg"

	"go.uber.org/mock/gomock"
)

const jobBody = `{"customer_name":"Kiran","phone":"999","car_model":"Swift","vehicle_number":"KA01","work_description":"Brakes","estimated_amount":1500}`

func TestJobHandler_Create(t *testing.T) {
	request.RegisterValidators()

	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIJobUseCase(ctrl)
	h := NewJobHandler(uc, testLog)

	r := newTestRouter(testManager)
	r.POST("/v1/jobs", h.Create)

	t.Run("missing vehicle", func(t *testing.T) {
		body := `{"customer_name":"Kiran","phone":"999","car_model":"Swift","work_description":"Brakes"}`
		if w := do(r, http.MethodPost, "/v1/jobs", body); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("negative estimate", func(t *testing.T) {
		body := `{"customer_name":"Kiran","phone":"999","car_model":"Swift","vehicle_number":"KA01","work_description":"Brakes","estimated_amount":-1}`
		if w := do(r, http.MethodPost, "/v1/jobs", body); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("owner rejected", func(t *testing.T) {
		uc.EXPECT().Create(gomock.Any(), testManager, gomock.Any()).Return(entities.Job{}, usecase.ErrManagerOnly)
		w := do(r, http.MethodPost, "/v1/jobs", jobBody)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
		var e pkg.HTTPError
		_ = json.Unmarshal(w.Body.Bytes(), &e)
		if e.Code != "MANAGER_ONLY" {
			t.Fatalf("unexpected code: %s", e.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		uc.EXPECT().Create(gomock.Any(), testManager, gomock.Any()).
			DoAndReturn(func(_ any, _ entities.User, in usecase.JobInput) (entities.Job, error) {
				if in.VehicleNumber != "KA01" || in.EstimatedAmount != 1500 {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Job{ID: "job-1", Status: entities.JobStatusPending}, nil
			})
		if w := do(r, http.MethodPost, "/v1/jobs", jobBody); w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("storage failure", func(t *testing.T) {
		uc.EXPECT().Create(gomock.Any(), testManager, gomock.Any()).Return(entities.Job{}, errors.New("boom"))
		if w := do(r, http.MethodPost, "/v1/jobs", jobBody); w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestJobHandler_ListGetUpdate(t *testing.T) {
	request.RegisterValidators()

	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIJobUseCase(ctrl)
	h := NewJobHandler(uc, testLog)

	r := newTestRouter(testOwner)
	r.GET("/v1/jobs", h.List)
	r.GET("/v1/jobs/:job_id", h.Get)
	r.PUT("/v1/jobs/:job_id", h.Update)

	t.Run("list with filters", func(t *testing.T) {
		uc.EXPECT().List(gomock.Any(), testOwner, usecase.JobListFilter{Status: "completed", ManagerID: "mgr-1"}).
			Return([]entities.JobSummary{}, nil)
		w := do(r, http.MethodGet, "/v1/jobs?status=completed&manager_id=mgr-1", "")
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("expected empty list, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("list unknown status", func(t *testing.T) {
		if w := do(r, http.MethodGet, "/v1/jobs?status=parked", ""); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("get forbidden", func(t *testing.T) {
		uc.EXPECT().Get(gomock.Any(), testOwner, "job-9").Return(entities.JobDetail{}, usecase.ErrAccessDenied)
		if w := do(r, http.MethodGet, "/v1/jobs/job-9", ""); w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("get detail", func(t *testing.T) {
		detail := entities.JobDetail{
			JobSummary: entities.JobSummary{Job: entities.Job{ID: "job-1"}, TotalPaid: 500, RemainingAmount: 1000},
			Payments:   []entities.Payment{{ID: "p-1", Amount: 500}},
			Updates:    []entities.JobUpdate{{ID: "u-1", UpdateType: entities.JobUpdateCreated}},
		}
		uc.EXPECT().Get(gomock.Any(), testOwner, "job-1").Return(detail, nil)
		w := do(r, http.MethodGet, "/v1/jobs/job-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got entities.JobDetail
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if got.ID != "job-1" || got.RemainingAmount != 1000 || len(got.Payments) != 1 || len(got.Updates) != 1 {
			t.Fatalf("unexpected detail: %+v", got)
		}
	})

	t.Run("update status", func(t *testing.T) {
		uc.EXPECT().Update(gomock.Any(), testOwner, "job-1", gomock.Any()).
			DoAndReturn(func(_ any, _ entities.User, _ string, p usecase.JobPatch) (entities.Job, error) {
				if p.Status == nil || *p.Status != "completed" || p.CustomerName != nil {
					t.Fatalf("unexpected patch: %+v", p)
				}
				return entities.Job{ID: "job-1", Status: entities.JobStatusCompleted}, nil
			})
		if w := do(r, http.MethodPut, "/v1/jobs/job-1", `{"status":"completed"}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("update transition refused", func(t *testing.T) {
		uc.EXPECT().Update(gomock.Any(), testOwner, "job-1", gomock.Any()).Return(entities.Job{}, usecase.ErrStatusTransition)
		if w := do(r, http.MethodPut, "/v1/jobs/job-1", `{"status":"pending"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

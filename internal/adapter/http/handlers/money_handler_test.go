package handlers

import (
	"net/http"
	"testing"
	"workshop_jobs/internal/adapter/http/handlers/mocks"
	"workshop_jobs/internal/domain/entities"
	"workshop_jobs/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestPaymentHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	h := NewPaymentHandler(uc, testLog)

	r := newTestRouter(testManager)
	r.POST("/v1/payments", h.Record)
	r.GET("/v1/payments", h.List)
	r.PUT("/v1/payments/:payment_id/confirm", h.Confirm)

	t.Run("zero amount", func(t *testing.T) {
		if w := do(r, http.MethodPost, "/v1/payments", `{"job_id":"job-1","amount":0,"payment_type":"cash"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("record on foreign job", func(t *testing.T) {
		uc.EXPECT().Record(gomock.Any(), testManager, usecase.PaymentInput{JobID: "job-9", Amount: 200, PaymentType: "cash"}).
			Return(entities.Payment{}, usecase.ErrJobNotFound)
		if w := do(r, http.MethodPost, "/v1/payments", `{"job_id":"job-9","amount":200,"payment_type":"cash"}`); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("record ok", func(t *testing.T) {
		uc.EXPECT().Record(gomock.Any(), testManager, gomock.Any()).Return(entities.Payment{ID: "p-1", Amount: 200}, nil)
		if w := do(r, http.MethodPost, "/v1/payments", `{"job_id":"job-1","amount":200,"payment_type":"upi","notes":"gpay"}`); w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("list unconfirmed", func(t *testing.T) {
		uc.EXPECT().List(gomock.Any(), testManager, gomock.Any()).
			DoAndReturn(func(_ any, _ entities.User, f usecase.PaymentListFilter) ([]entities.PaymentView, error) {
				if f.JobID != "job-1" || f.Confirmed == nil || *f.Confirmed {
					t.Fatalf("unexpected filter: %+v", f)
				}
				return []entities.PaymentView{}, nil
			})
		if w := do(r, http.MethodGet, "/v1/payments?job_id=job-1&confirmed=false", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("list bad flag", func(t *testing.T) {
		if w := do(r, http.MethodGet, "/v1/payments?confirmed=maybe", ""); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("confirm by manager", func(t *testing.T) {
		uc.EXPECT().Confirm(gomock.Any(), testManager, "p-1").Return(entities.Payment{}, usecase.ErrOwnerOnly)
		if w := do(r, http.MethodPut, "/v1/payments/p-1/confirm", ""); w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestSettlementHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockISettlementUseCase(ctrl)
	h := NewSettlementHandler(uc, testLog)

	r := newTestRouter(testManager)
	r.POST("/v1/settlements", h.Submit)
	r.GET("/v1/settlements", h.List)
	r.PUT("/v1/settlements/:settlement_id/confirm", h.Confirm)

	t.Run("submit", func(t *testing.T) {
		uc.EXPECT().Submit(gomock.Any(), testManager, usecase.SettlementInput{Amount: 700, JobIDs: []string{"job-1"}, Notes: "evening"}).
			Return(entities.Settlement{ID: "s-1", Amount: 700}, nil)
		w := do(r, http.MethodPost, "/v1/settlements", `{"amount":700,"job_ids":["job-1"],"notes":"evening"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("list confirmed", func(t *testing.T) {
		uc.EXPECT().List(gomock.Any(), testManager, gomock.Any()).
			DoAndReturn(func(_ any, _ entities.User, confirmed *bool) ([]entities.SettlementView, error) {
				if confirmed == nil || !*confirmed {
					t.Fatalf("expected confirmed=true")
				}
				return []entities.SettlementView{}, nil
			})
		if w := do(r, http.MethodGet, "/v1/settlements?confirmed=true", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("confirm missing", func(t *testing.T) {
		uc.EXPECT().Confirm(gomock.Any(), testManager, "s-9").Return(entities.Settlement{}, usecase.ErrSettlementNotFound)
		if w := do(r, http.MethodPut, "/v1/settlements/s-9/confirm", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

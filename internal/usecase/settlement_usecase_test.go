package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"workshop_jobs/internal/domain/entities"
	"workshop_jobs/internal/usecase/interfaces"

	"go.uber.org/mock/gomock"
)

func TestSettlementUseCase_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("owner cannot submit", func(t *testing.T) {
		f := newFixture(t)
		if _, err := f.settlement().Submit(ctx, ownerUser, SettlementInput{Amount: 10}); !errors.Is(err, ErrManagerOnly) {
			t.Fatalf("expected ErrManagerOnly, got %v", err)
		}
	})

	t.Run("manager without binding", func(t *testing.T) {
		f := newFixture(t)
		f.managerResolves(managerUser, entities.ManagerBinding{}, entities.Workshop{})

		if _, err := f.settlement().Submit(ctx, managerUser, SettlementInput{Amount: 10}); !errors.Is(err, ErrManagerRecordNotFound) {
			t.Fatalf("expected ErrManagerRecordNotFound, got %v", err)
		}
	})

	t.Run("stores job ids unvalidated", func(t *testing.T) {
		f := newFixture(t)
		f.managerResolves(managerUser, binding1, workshop1)
		f.settlements.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Settlement{})).DoAndReturn(
			func(_ context.Context, s entities.Settlement) (entities.Settlement, error) {
				if s.WorkshopID != "w-1" || s.ManagerID != "m-1" || s.ConfirmedByOwner {
					t.Fatalf("unexpected settlement: %+v", s)
				}
				if len(s.JobIDs) != 2 || s.JobIDs[1] != "does-not-exist" {
					t.Fatalf("unexpected job ids: %v", s.JobIDs)
				}
				return s, nil
			},
		)

		_, err := f.settlement().Submit(ctx, managerUser, SettlementInput{Amount: 4500, JobIDs: []string{"j-1", " does-not-exist ", ""}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("nil job ids become empty", func(t *testing.T) {
		f := newFixture(t)
		f.managerResolves(managerUser, binding1, workshop1)
		f.settlements.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Settlement) (entities.Settlement, error) {
				if s.JobIDs == nil {
					t.Fatalf("expected non-nil job ids")
				}
				return s, nil
			},
		)

		if _, err := f.settlement().Submit(ctx, managerUser, SettlementInput{Amount: 1}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestSettlementUseCase_List(t *testing.T) {
	ctx := context.Background()

	t.Run("owner without workshop gets empty list", func(t *testing.T) {
		f := newFixture(t)
		f.ownerResolves(ownerUser, entities.Workshop{})

		list, err := f.settlement().List(ctx, ownerUser, nil)
		if err != nil || list == nil || len(list) != 0 {
			t.Fatalf("unexpected result: %v %v", list, err)
		}
	})

	t.Run("manager sees own submissions newest first", func(t *testing.T) {
		f := newFixture(t)
		f.settlements.EXPECT().List(gomock.Any(), entities.SettlementFilter{ManagerID: "m-1"}).Return([]entities.Settlement{
			{ID: "s-1", ManagerID: "m-1", SubmittedDate: fixedNow.Add(-time.Hour)},
			{ID: "s-2", ManagerID: "m-1", SubmittedDate: fixedNow},
		}, nil)
		f.users.EXPECT().ListByIDs(gomock.Any(), []string{"m-1"}).Return([]entities.User{managerUser}, nil)

		list, err := f.settlement().List(ctx, managerUser, nil)
		if err != nil || len(list) != 2 || list[0].ID != "s-2" || list[0].ManagerName != "Ravi" {
			t.Fatalf("unexpected result: %+v %v", list, err)
		}
	})
}

func TestSettlementUseCase_Confirm(t *testing.T) {
	ctx := context.Background()

	t.Run("foreign workshop", func(t *testing.T) {
		f := newFixture(t)
		f.settlements.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Settlement{ID: "s-1", WorkshopID: "w-2"}, nil)
		f.ownerResolves(ownerUser, workshop1)

		if _, err := f.settlement().Confirm(ctx, ownerUser, "s-1"); !errors.Is(err, ErrSettlementNotFound) {
			t.Fatalf("expected ErrSettlementNotFound, got %v", err)
		}
	})

	t.Run("settlement removed before the write", func(t *testing.T) {
		f := newFixture(t)
		f.settlements.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Settlement{ID: "s-1", WorkshopID: "w-1"}, nil)
		f.ownerResolves(ownerUser, workshop1)
		f.settlements.EXPECT().Confirm(gomock.Any(), "s-1", fixedNow).Return(entities.Settlement{}, interfaces.ErrNotFound)

		if _, err := f.settlement().Confirm(ctx, ownerUser, "s-1"); !errors.Is(err, ErrSettlementNotFound) {
			t.Fatalf("expected ErrSettlementNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		f.settlements.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Settlement{ID: "s-1", WorkshopID: "w-1"}, nil)
		f.ownerResolves(ownerUser, workshop1)
		f.settlements.EXPECT().Confirm(gomock.Any(), "s-1", fixedNow).Return(entities.Settlement{ID: "s-1", WorkshopID: "w-1", ConfirmedByOwner: true}, nil)

		s, err := f.settlement().Confirm(ctx, ownerUser, "s-1")
		if err != nil || !s.ConfirmedByOwner {
			t.Fatalf("unexpected result: %+v %v", s, err)
		}
	})
}

package usecase

import (
	"context"
	"errors"
	"testing"

	"workshop_jobs/internal/domain/entities"

	"go.uber.org/mock/gomock"
)

func TestManagerUseCase_List(t *testing.T) {
	ctx := context.Background()

	t.Run("non owner", func(t *testing.T) {
		f := newFixture(t)
		if _, err := f.manager().List(ctx, managerUser); !errors.Is(err, ErrOwnerOnly) {
			t.Fatalf("expected ErrOwnerOnly, got %v", err)
		}
	})

	t.Run("owner without workshop gets empty list", func(t *testing.T) {
		f := newFixture(t)
		f.ownerResolves(ownerUser, entities.Workshop{})

		list, err := f.manager().List(ctx, ownerUser)
		if err != nil || list == nil || len(list) != 0 {
			t.Fatalf("unexpected result: %v %v", list, err)
		}
	})

	t.Run("enriches with profile", func(t *testing.T) {
		f := newFixture(t)
		f.ownerResolves(ownerUser, workshop1)
		f.managers.EXPECT().ListActiveByWorkshopID(gomock.Any(), "w-1").Return([]entities.ManagerBinding{binding1, binding2}, nil)
		f.users.EXPECT().ListByIDs(gomock.Any(), []string{"m-1", "m-2"}).Return([]entities.User{managerUser}, nil)

		list, err := f.manager().List(ctx, ownerUser)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) != 2 || list[0].User == nil || list[0].User.Name != "Ravi" || list[1].User != nil {
			t.Fatalf("unexpected list: %+v", list)
		}
	})
}

func TestManagerUseCase_Remove(t *testing.T) {
	ctx := context.Background()

	t.Run("owner without workshop", func(t *testing.T) {
		f := newFixture(t)
		f.ownerResolves(ownerUser, entities.Workshop{})

		if err := f.manager().Remove(ctx, ownerUser, "b-1"); !errors.Is(err, ErrWorkshopNotFound) {
			t.Fatalf("expected ErrWorkshopNotFound, got %v", err)
		}
	})

	t.Run("no active binding", func(t *testing.T) {
		f := newFixture(t)
		f.ownerResolves(ownerUser, workshop1)
		f.managers.EXPECT().Deactivate(gomock.Any(), "w-1", "b-1").Return(false, nil)

		if err := f.manager().Remove(ctx, ownerUser, "b-1"); !errors.Is(err, ErrManagerNotFound) {
			t.Fatalf("expected ErrManagerNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		f.ownerResolves(ownerUser, workshop1)
		f.managers.EXPECT().Deactivate(gomock.Any(), "w-1", "b-1").Return(true, nil)

		if err := f.manager().Remove(ctx, ownerUser, "b-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

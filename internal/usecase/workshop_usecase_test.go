package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"workshop_jobs/internal/domain/entities"
	"workshop_jobs/internal/usecase/interfaces"

	"go.uber.org/mock/gomock"
)

func TestWorkshopUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("non owner", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.workshop().Create(ctx, managerUser, WorkshopInput{Name: "G", Phone: "1"})
		if !errors.Is(err, ErrOwnerOnly) || !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrOwnerOnly, got %v", err)
		}
	})

	t.Run("second workshop", func(t *testing.T) {
		f := newFixture(t)
		f.workshops.EXPECT().GetByOwnerID(gomock.Any(), "o-1").Return(workshop1, nil)

		_, err := f.workshop().Create(ctx, ownerUser, WorkshopInput{Name: "G", Phone: "1"})
		if !errors.Is(err, ErrWorkshopAlreadyExists) || !errors.Is(err, ErrConflict) {
			t.Fatalf("expected conflict, got %v", err)
		}
	})

	t.Run("concurrent second workshop", func(t *testing.T) {
		f := newFixture(t)
		f.workshops.EXPECT().GetByOwnerID(gomock.Any(), "o-1").Return(entities.Workshop{}, nil)
		f.workshops.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Workshop{}, interfaces.ErrDuplicateKey)

		_, err := f.workshop().Create(ctx, ownerUser, WorkshopInput{Name: "G", Phone: "1"})
		if !errors.Is(err, ErrWorkshopAlreadyExists) {
			t.Fatalf("expected conflict, got %v", err)
		}
	})

	t.Run("success defaults currency", func(t *testing.T) {
		f := newFixture(t)
		f.workshops.EXPECT().GetByOwnerID(gomock.Any(), "o-1").Return(entities.Workshop{}, nil)
		f.workshops.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Workshop{})).DoAndReturn(
			func(_ context.Context, w entities.Workshop) (entities.Workshop, error) {
				if w.ID == "" || w.OwnerID != "o-1" || w.Name != "Speed Garage" || w.Currency != "INR" {
					t.Fatalf("unexpected workshop: %+v", w)
				}
				return w, nil
			},
		)

		w, err := f.workshop().Create(ctx, ownerUser, WorkshopInput{Name: " Speed Garage ", Phone: "999"})
		if err != nil || w.ID == "" {
			t.Fatalf("unexpected result: %+v %v", w, err)
		}
	})
}

func TestWorkshopUseCase_GetMine(t *testing.T) {
	ctx := context.Background()

	t.Run("manager resolves via binding", func(t *testing.T) {
		f := newFixture(t)
		f.managerResolves(managerUser, binding1, workshop1)

		w, err := f.workshop().GetMine(ctx, managerUser)
		if err != nil || w.ID != "w-1" {
			t.Fatalf("unexpected result: %+v %v", w, err)
		}
	})

	t.Run("owner without workshop", func(t *testing.T) {
		f := newFixture(t)
		f.ownerResolves(ownerUser, entities.Workshop{})

		_, err := f.workshop().GetMine(ctx, ownerUser)
		if !errors.Is(err, ErrWorkshopNotFound) || !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrWorkshopNotFound, got %v", err)
		}
	})
}

func TestWorkshopUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("foreign workshop", func(t *testing.T) {
		f := newFixture(t)
		f.workshops.EXPECT().GetByID(gomock.Any(), "w-9").Return(entities.Workshop{ID: "w-9", OwnerID: "o-9"}, nil)

		_, err := f.workshop().Update(ctx, ownerUser, "w-9", WorkshopPatch{Name: strPtr("Mine")})
		if !errors.Is(err, ErrWorkshopNotFound) {
			t.Fatalf("expected ErrWorkshopNotFound, got %v", err)
		}
	})

	t.Run("partial update keeps absent fields", func(t *testing.T) {
		f := newFixture(t)
		current := workshop1
		current.Address = "MG Road"
		f.workshops.EXPECT().GetByID(gomock.Any(), "w-1").Return(current, nil)
		f.workshops.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Workshop{})).DoAndReturn(
			func(_ context.Context, w entities.Workshop) (entities.Workshop, error) {
				if w.Name != "Turbo Garage" || w.Address != "MG Road" || w.Currency != "USD" {
					t.Fatalf("unexpected workshop: %+v", w)
				}
				return w, nil
			},
		)

		_, err := f.workshop().Update(ctx, ownerUser, "w-1", WorkshopPatch{Name: strPtr("Turbo Garage"), Currency: strPtr("usd")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("workshop removed before the write", func(t *testing.T) {
		f := newFixture(t)
		f.workshops.EXPECT().GetByID(gomock.Any(), "w-1").Return(workshop1, nil)
		f.workshops.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Workshop{}, interfaces.ErrNotFound)

		if _, err := f.workshop().Update(ctx, ownerUser, "w-1", WorkshopPatch{Name: strPtr("Turbo Garage")}); !errors.Is(err, ErrWorkshopNotFound) {
			t.Fatalf("expected ErrWorkshopNotFound, got %v", err)
		}
	})

	t.Run("no change skips write", func(t *testing.T) {
		f := newFixture(t)
		f.workshops.EXPECT().GetByID(gomock.Any(), "w-1").Return(workshop1, nil)

		w, err := f.workshop().Update(ctx, ownerUser, "w-1", WorkshopPatch{Name: strPtr("Speed Garage")})
		if err != nil || w.Name != "Speed Garage" {
			t.Fatalf("unexpected result: %+v %v", w, err)
		}
	})

	t.Run("blank required field", func(t *testing.T) {
		f := newFixture(t)
		f.workshops.EXPECT().GetByID(gomock.Any(), "w-1").Return(workshop1, nil)

		_, err := f.workshop().Update(ctx, ownerUser, "w-1", WorkshopPatch{Phone: strPtr(" ")})
		if !errors.Is(err, ErrMissingFields) {
			t.Fatalf("expected ErrMissingFields, got %v", err)
		}
	})
}

func TestWorkshopUseCase_IssueInviteCode(t *testing.T) {
	ctx := context.Background()

	t.Run("retries on collision", func(t *testing.T) {
		f := newFixture(t)
		uc := f.workshop()
		codes := []string{"AAAA1111", "BBBB2222"}
		uc.newCode = func() string {
			c := codes[0]
			codes = codes[1:]
			return c
		}

		f.workshops.EXPECT().GetByID(gomock.Any(), "w-1").Return(workshop1, nil)
		gomock.InOrder(
			f.invites.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.InviteCode{}, interfaces.ErrDuplicateKey),
			f.invites.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.InviteCode{})).DoAndReturn(
				func(_ context.Context, c entities.InviteCode) (entities.InviteCode, error) {
					if c.Code != "BBBB2222" || c.WorkshopID != "w-1" || !c.Active || c.CreatedBy != "o-1" {
						t.Fatalf("unexpected code: %+v", c)
					}
					return c, nil
				},
			),
		)

		c, err := uc.IssueInviteCode(ctx, ownerUser, "w-1")
		if err != nil || c.Code != "BBBB2222" {
			t.Fatalf("unexpected result: %+v %v", c, err)
		}
	})

	t.Run("gives up after repeated collisions", func(t *testing.T) {
		f := newFixture(t)
		f.workshops.EXPECT().GetByID(gomock.Any(), "w-1").Return(workshop1, nil)
		f.invites.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.InviteCode{}, interfaces.ErrDuplicateKey).Times(inviteCodeAttempts)

		_, err := f.workshop().IssueInviteCode(ctx, ownerUser, "w-1")
		if !errors.Is(err, ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})

	t.Run("store error is not retried", func(t *testing.T) {
		f := newFixture(t)
		f.workshops.EXPECT().GetByID(gomock.Any(), "w-1").Return(workshop1, nil)
		f.invites.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.InviteCode{}, errors.New("db"))

		_, err := f.workshop().IssueInviteCode(ctx, ownerUser, "w-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestRandomInviteCode(t *testing.T) {
	c := randomInviteCode()
	if len(c) != inviteCodeLength || strings.ToUpper(c) != c {
		t.Fatalf("unexpected code %q", c)
	}
}

func TestWorkshopUseCase_InviteCodes(t *testing.T) {
	ctx := context.Background()

	t.Run("list returns empty slice", func(t *testing.T) {
		f := newFixture(t)
		f.workshops.EXPECT().GetByID(gomock.Any(), "w-1").Return(workshop1, nil)
		f.invites.EXPECT().ListByWorkshopID(gomock.Any(), "w-1").Return(nil, nil)

		codes, err := f.workshop().ListInviteCodes(ctx, ownerUser, "w-1")
		if err != nil || codes == nil || len(codes) != 0 {
			t.Fatalf("unexpected result: %v %v", codes, err)
		}
	})

	t.Run("revoke unknown code", func(t *testing.T) {
		f := newFixture(t)
		f.workshops.EXPECT().GetByID(gomock.Any(), "w-1").Return(workshop1, nil)
		f.invites.EXPECT().Deactivate(gomock.Any(), "w-1", "ABCD1234").Return(false, nil)

		err := f.workshop().RevokeInviteCode(ctx, ownerUser, "w-1", "abcd1234")
		if !errors.Is(err, ErrInviteCodeNotFound) {
			t.Fatalf("expected ErrInviteCodeNotFound, got %v", err)
		}
	})

	t.Run("revoke success", func(t *testing.T) {
		f := newFixture(t)
		f.workshops.EXPECT().GetByID(gomock.Any(), "w-1").Return(workshop1, nil)
		f.invites.EXPECT().Deactivate(gomock.Any(), "w-1", "ABCD1234").Return(true, nil)

		if err := f.workshop().RevokeInviteCode(ctx, ownerUser, "w-1", "ABCD1234"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

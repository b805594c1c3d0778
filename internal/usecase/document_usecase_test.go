package usecase

import (
	"context"
	"errors"
	"testing"

	"workshop_jobs/internal/domain/entities"

	"go.uber.org/mock/gomock"
)

func TestDocumentUseCase(t *testing.T) {
	ctx := context.Background()

	expectVisibleJob := func(f *fixture) {
		f.ownerResolves(ownerUser, workshop1)
		f.jobs.EXPECT().GetByID(gomock.Any(), "0123456789").Return(sampleJob("0123456789", "m-1", fixedNow), nil)
		f.payments.EXPECT().List(gomock.Any(), entities.PaymentFilter{JobID: "0123456789"}).Return(nil, nil)
		f.jobs.EXPECT().ListUpdates(gomock.Any(), "0123456789").Return(nil, nil)
		f.users.EXPECT().ListByIDs(gomock.Any(), []string{"m-1"}).Return(nil, nil)
		f.workshops.EXPECT().GetByID(gomock.Any(), "w-1").Return(workshop1, nil)
	}

	t.Run("job card", func(t *testing.T) {
		f := newFixture(t)
		expectVisibleJob(f)
		f.renderer.EXPECT().JobCard(workshop1, gomock.Any()).Return([]byte("%PDF"), nil)

		uc := NewDocumentUseCase(f.job(""), f.workshops, f.renderer)
		doc, err := uc.JobCard(ctx, ownerUser, "0123456789")
		if err != nil || doc.Filename != "job_card_01234567.pdf" || doc.ContentType != "application/pdf" {
			t.Fatalf("unexpected result: %+v %v", doc, err)
		}
	})

	t.Run("invoice", func(t *testing.T) {
		f := newFixture(t)
		expectVisibleJob(f)
		f.renderer.EXPECT().Invoice(workshop1, gomock.Any()).Return([]byte("%PDF"), nil)

		uc := NewDocumentUseCase(f.job(""), f.workshops, f.renderer)
		doc, err := uc.Invoice(ctx, ownerUser, "0123456789")
		if err != nil || doc.Filename != "invoice_01234567.pdf" {
			t.Fatalf("unexpected result: %+v %v", doc, err)
		}
	})

	t.Run("follows job access rule", func(t *testing.T) {
		f := newFixture(t)
		f.managerResolves(peerUser, binding2, workshop1)
		f.jobs.EXPECT().GetByID(gomock.Any(), "j-1").Return(sampleJob("j-1", "m-1", fixedNow), nil)

		uc := NewDocumentUseCase(f.job(""), f.workshops, f.renderer)
		if _, err := uc.JobCard(ctx, peerUser, "j-1"); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected forbidden, got %v", err)
		}
	})
}

package interfaces

import (
	"context"
	"time"
	"workshop_jobs/internal/domain/entities"
)

//go:generate mockgen -source=job_repository_interface.go -destination=mocks/job_repository_interface.go -package=mock_interfaces

// IJobRepository persists jobs together with their audit entries. Every
// write that changes a job carries the JobUpdate recording it.
type IJobRepository interface {
	Create(ctx context.Context, j entities.Job, created entities.JobUpdate) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	// List returns matching jobs newest first. It needs a workshop or a
	// manager to query by.
	List(ctx context.Context, f entities.JobFilter) ([]entities.Job, error)
	// Update writes only the named fields of j plus updated_at, and stamps
	// completed_at from j unless the stored row already has one. It returns
	// the stored job, or ErrNotFound when the job is gone.
	Update(ctx context.Context, j entities.Job, fields []string, modified entities.JobUpdate) (entities.Job, error)
	ListUpdates(ctx context.Context, jobID string) ([]entities.JobUpdate, error)
}

// IPaymentRepository persists payments. Create also appends the payment
// audit entry of the job.
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment, audit entities.JobUpdate) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	// List returns matching payments newest first.
	List(ctx context.Context, f entities.PaymentFilter) ([]entities.Payment, error)
	// Confirm marks the payment confirmed at the given time. It returns
	// ErrNotFound when the payment is gone.
	Confirm(ctx context.Context, id string, at time.Time) (entities.Payment, error)
}

// ISettlementRepository persists settlements.
type ISettlementRepository interface {
	Create(ctx context.Context, s entities.Settlement) (entities.Settlement, error)
	GetByID(ctx context.Context, id string) (entities.Settlement, error)
	// List returns matching settlements newest first.
	List(ctx context.Context, f entities.SettlementFilter) ([]entities.Settlement, error)
	// Confirm marks the settlement confirmed at the given time. It returns
	// ErrNotFound when the settlement is gone.
	Confirm(ctx context.Context, id string, at time.Time) (entities.Settlement, error)
}

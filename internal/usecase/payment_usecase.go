package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	"workshop_jobs/internal/domain/entities"
	"workshop_jobs/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type PaymentInput struct {
	JobID       string
	Amount      float64
	PaymentType string
	Notes       string
}

type PaymentListFilter struct {
	JobID     string
	Confirmed *bool
}

// IPaymentUseCase exposes payment collection and owner confirmation.
type IPaymentUseCase interface {
	Record(ctx context.Context, caller entities.User, in PaymentInput) (entities.Payment, error)
	List(ctx context.Context, caller entities.User, f PaymentListFilter) ([]entities.PaymentView, error)
	Confirm(ctx context.Context, caller entities.User, paymentID string) (entities.Payment, error)
}

type PaymentUseCase struct {
	payments  interfaces.IPaymentRepository
	jobs      interfaces.IJobRepository
	workshops interfaces.IWorkshopRepository
	users     interfaces.IUserRepository
	scopes    *ScopeResolver
	log       logrus.FieldLogger
	now       func() time.Time
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	payments interfaces.IPaymentRepository,
	jobs interfaces.IJobRepository,
	workshops interfaces.IWorkshopRepository,
	users interfaces.IUserRepository,
	scopes *ScopeResolver,
	log logrus.FieldLogger,
) *PaymentUseCase {
	return &PaymentUseCase{
		payments:  payments,
		jobs:      jobs,
		workshops: workshops,
		users:     users,
		scopes:    scopes,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Record stores an unconfirmed payment. Amounts above the remaining
// balance are accepted.
func (u *PaymentUseCase) Record(ctx context.Context, caller entities.User, in PaymentInput) (entities.Payment, error) {
	jobID := strings.TrimSpace(in.JobID)
	paymentType := strings.TrimSpace(in.PaymentType)
	if jobID == "" || paymentType == "" {
		return entities.Payment{}, ErrMissingFields
	}
	if in.Amount <= 0 {
		return entities.Payment{}, ErrInvalidAmount
	}

	scope, err := u.scopes.Resolve(ctx, caller)
	if err != nil {
		return entities.Payment{}, err
	}
	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return entities.Payment{}, err
	}
	if job.ID == "" || !scope.CanSeeJob(job) {
		return entities.Payment{}, ErrJobNotFound
	}

	var currency string
	if scope.HasWorkshop() && scope.WorkshopID() == job.WorkshopID {
		currency = scope.Workshop.CurrencyOrDefault()
	} else {
		w, err := u.workshops.GetByID(ctx, job.WorkshopID)
		if err != nil {
			return entities.Payment{}, err
		}
		currency = w.CurrencyOrDefault()
	}

	now := u.now()
	payment := entities.Payment{
		ID:                   uuid.NewString(),
		JobID:                job.ID,
		Amount:               in.Amount,
		PaymentType:          paymentType,
		Notes:                strings.TrimSpace(in.Notes),
		CollectedByManagerID: caller.ID,
		PaymentDate:          now,
	}
	audit := entities.JobUpdate{
		ID:          uuid.NewString(),
		JobID:       job.ID,
		UpdatedBy:   caller.ID,
		UpdateType:  entities.JobUpdatePayment,
		Description: fmt.Sprintf("Payment of %s %s recorded", currency, decimal.NewFromFloat(in.Amount).String()),
		Timestamp:   now,
	}

	payment, err = u.payments.Create(ctx, payment, audit)
	if err != nil {
		return entities.Payment{}, err
	}

	u.log.WithFields(logrus.Fields{"payment_id": payment.ID, "job_id": job.ID, "amount": payment.Amount}).Info("[payment][usecase] payment recorded")
	return payment, nil
}

// List scopes managers to what they collected and owners to their
// workshop's jobs. An owner without a workshop gets an empty result.
func (u *PaymentUseCase) List(ctx context.Context, caller entities.User, f PaymentListFilter) ([]entities.PaymentView, error) {
	filter := entities.PaymentFilter{
		JobID:     strings.TrimSpace(f.JobID),
		Confirmed: f.Confirmed,
	}

	var jobs []entities.Job
	switch caller.Role {
	case entities.RoleManager:
		filter.CollectedBy = caller.ID
		var err error
		if jobs, err = u.jobs.List(ctx, entities.JobFilter{ManagerID: caller.ID}); err != nil {
			return nil, err
		}
	case entities.RoleOwner:
		scope, err := u.scopes.Resolve(ctx, caller)
		if err != nil {
			return nil, err
		}
		if !scope.HasWorkshop() {
			return []entities.PaymentView{}, nil
		}
		if jobs, err = u.jobs.List(ctx, entities.JobFilter{WorkshopID: scope.WorkshopID()}); err != nil {
			return nil, err
		}
		filter.JobIDs = make([]string, 0, len(jobs))
		for _, j := range jobs {
			filter.JobIDs = append(filter.JobIDs, j.ID)
		}
	default:
		return nil, ErrAccessDenied
	}

	out := []entities.PaymentView{}
	if filter.JobIDs != nil && len(filter.JobIDs) == 0 {
		return out, nil
	}

	payments, err := u.payments.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	jobsByID := make(map[string]entities.Job, len(jobs))
	for _, j := range jobs {
		jobsByID[j.ID] = j
	}
	collectors := make([]string, 0, len(payments))
	for _, p := range payments {
		collectors = append(collectors, p.CollectedByManagerID)
	}
	names, err := userNames(ctx, u.users, collectors)
	if err != nil {
		return nil, err
	}

	for _, p := range payments {
		view := entities.PaymentView{Payment: p, ManagerName: names[p.CollectedByManagerID]}
		if j, ok := jobsByID[p.JobID]; ok {
			view.Job = &entities.PaymentJobRef{CustomerName: j.CustomerName, VehicleNumber: j.VehicleNumber}
		}
		out = append(out, view)
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].PaymentDate.After(out[b].PaymentDate) })
	return out, nil
}

// Confirm marks the payment confirmed. Confirming again re-stamps it.
func (u *PaymentUseCase) Confirm(ctx context.Context, caller entities.User, paymentID string) (entities.Payment, error) {
	if caller.Role != entities.RoleOwner {
		return entities.Payment{}, ErrOwnerOnly
	}
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}

	payment, err := u.payments.GetByID(ctx, paymentID)
	if err != nil {
		return entities.Payment{}, err
	}
	if payment.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	job, err := u.jobs.GetByID(ctx, payment.JobID)
	if err != nil {
		return entities.Payment{}, err
	}
	if job.ID == "" {
		return entities.Payment{}, ErrJobNotFound
	}

	scope, err := u.scopes.Resolve(ctx, caller)
	if err != nil {
		return entities.Payment{}, err
	}
	if !scope.CanSeeJob(job) {
		return entities.Payment{}, ErrPaymentNotFound
	}

	payment, err = u.payments.Confirm(ctx, payment.ID, u.now())
	if errors.Is(err, interfaces.ErrNotFound) {
		return entities.Payment{}, ErrPaymentNotFound
	}
	if err != nil {
		return entities.Payment{}, err
	}

	u.log.WithFields(logrus.Fields{"payment_id": payment.ID, "workshop_id": scope.WorkshopID()}).Info("[payment][usecase] payment confirmed")
	return payment, nil
}
